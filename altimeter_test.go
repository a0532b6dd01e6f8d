// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.20
//

package goisa

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltitudeRoundTrip(t *testing.T) {
	t.Parallel()

	for alt := 0.0; alt <= MesopauseAlt; alt += 37 {
		atm := CalcAtmosphere(alt, 0)

		sol, err := AltitudeFromPressure(atm.Pres, 0)
		require.NoError(t, err)
		require.True(t, sol.Resolved(), "pressure at %v", alt)
		if !assert.InDelta(t, alt, sol.Alt, 1e-6, "pressure at %v", alt) {
			return
		}

		sol, err = AltitudeFromDensity(atm.Dens, 0)
		require.NoError(t, err)
		require.True(t, sol.Resolved(), "density at %v", alt)
		if !assert.InDelta(t, alt, sol.Alt, 1e-6, "density at %v", alt) {
			return
		}
	}
}

func TestAltitudeLayerBoundaries(t *testing.T) {
	t.Parallel()

	for _, b := range layerBases {
		atm := CalcAtmosphere(b, 0)
		sol, err := AltitudeFromPressure(atm.Pres, 0)
		require.NoError(t, err)
		assert.InDelta(t, b, sol.Alt, 1e-6)
	}
}

func TestAltitudeTempOffset(t *testing.T) {
	t.Parallel()

	t.Run("pressure ignores the offset", func(t *testing.T) {
		atm := CalcAtmosphere(5000, 15)
		sol, err := AltitudeFromPressure(atm.Pres, 15)
		require.NoError(t, err)
		assert.InDelta(t, 5000, sol.Alt, 1e-6)
		assert.Zero(t, sol.Dens)
	})

	t.Run("density is unadjusted before the search", func(t *testing.T) {
		for _, to := range []float64{-20, 10, 25} {
			for alt := 37.0; alt < AccurateAlt; alt += 473 {
				atm := CalcAtmosphere(alt, to)
				sol, err := AltitudeFromDensity(atm.Dens, to)
				require.NoError(t, err)
				require.True(t, sol.Resolved())
				if !assert.InDelta(t, alt, sol.Alt, 0.01, "alt %v offset %v", alt, to) {
					return
				}
			}
		}
	})

	t.Run("on the coarse grid", func(t *testing.T) {
		for _, alt := range []float64{15000, 40000, 60000} {
			atm := CalcAtmosphere(alt, 15)
			sol, err := AltitudeFromDensity(atm.Dens, 15)
			require.NoError(t, err)
			assert.InDelta(t, alt, sol.Alt, 1e-6)
			assert.InEpsilon(t, CalcAtmosphere(alt, 0).Dens, sol.Dens, 1e-9)
		}
	})
}

func TestAltitudeOutsideChart(t *testing.T) {
	t.Parallel()

	t.Run("above the ceiling is unresolved", func(t *testing.T) {
		for _, alt := range []float64{90500, 95000, 120000} {
			sol, err := AltitudeFromPressure(CalcAtmosphere(alt, 0).Pres, 0)
			require.NoError(t, err)
			assert.False(t, sol.Resolved())
			assert.Equal(t, AltUnresolved, sol.Status)
			assert.Equal(t, 0.0, sol.Alt)
			assert.Equal(t, "unresolved", sol.Status.String())
		}
	})

	t.Run("between mesopause and ceiling", func(t *testing.T) {
		sol, err := AltitudeFromPressure(CalcAtmosphere(89000, 0).Pres, 0)
		require.NoError(t, err)
		require.True(t, sol.Resolved())
		assert.InDelta(t, 89000, sol.Alt, 1e-6)
	})

	t.Run("sea level is a resolved zero", func(t *testing.T) {
		sol, err := AltitudeFromPressure(PRES0, 0)
		require.NoError(t, err)
		assert.Equal(t, AltResolved, sol.Status)
		assert.Equal(t, 0.0, sol.Alt)

		sol, err = AltitudeFromDensity(DENS0, 0)
		require.NoError(t, err)
		assert.True(t, sol.Resolved())
		assert.Equal(t, 0.0, sol.Alt)
	})

	t.Run("below sea level", func(t *testing.T) {
		sol, err := AltitudeFromDensity(CalcAtmosphere(-300, 0).Dens, 0)
		require.NoError(t, err)
		assert.InDelta(t, -300, sol.Alt, 1e-6)

		sol, err = AltitudeFromPressure(CalcAtmosphere(MinAlt, 0).Pres, 0)
		require.NoError(t, err)
		require.True(t, sol.Resolved())
		assert.InDelta(t, MinAlt, sol.Alt, 1e-6)
		assert.GreaterOrEqual(t, sol.Alt, MinAlt)
	})

	t.Run("beyond the minimum altitude", func(t *testing.T) {
		for _, pres := range []float64{110000, 200000, 1e7} {
			sol, err := AltitudeFromPressure(pres, 0)
			require.NoError(t, err)
			assert.Equal(t, AltBelowRange, sol.Status, "pressure %v", pres)
			assert.False(t, sol.Resolved())
			assert.Equal(t, 0.0, sol.Alt)
			assert.Equal(t, "below range", sol.Status.String())
		}
		for _, to := range []float64{0, 15, -20} {
			dens := CalcAtmosphere(MinAlt, to).Dens * 1.0001
			sol, err := AltitudeFromDensity(dens, to)
			require.NoError(t, err)
			assert.Equal(t, AltBelowRange, sol.Status, "offset %v", to)
		}
	})
}

func TestAltitudeNearMinimum(t *testing.T) {
	t.Parallel()

	// Targets met on the first pre-pass step are extrapolated
	for _, to := range []float64{-20, 15, 25} {
		for _, alt := range []float64{MinAlt, -605, -600} {
			sol, err := AltitudeFromDensity(CalcAtmosphere(alt, to).Dens, to)
			require.NoError(t, err)
			require.True(t, sol.Resolved(), "alt %v offset %v", alt, to)
			assert.InDelta(t, alt, sol.Alt, 2e-3, "alt %v offset %v", alt, to)
			assert.GreaterOrEqual(t, sol.Alt, MinAlt)
		}
	}
}

func TestAltitudeOffsetLimit(t *testing.T) {
	t.Parallel()

	assert.True(t, densityDecreasing(0))
	assert.True(t, densityDecreasing(-175))
	assert.True(t, densityDecreasing(100))
	assert.False(t, densityDecreasing(-176))
	assert.False(t, densityDecreasing(-250))
	assert.False(t, densityDecreasing(-300))

	_, err := AltitudeFromDensity(CalcAtmosphere(3000, -250).Dens, -250)
	assert.ErrorIs(t, err, ErrOffset)

	// Pressure does not see the offset
	sol, err := AltitudeFromPressure(CalcAtmosphere(3000, -250).Pres, -250)
	require.NoError(t, err)
	assert.InDelta(t, 3000, sol.Alt, 1e-6)
}

func TestCalcAltitudeInvalid(t *testing.T) {
	t.Parallel()

	p, d := 50000.0, 0.5
	zero, neg := 0.0, -1.0
	nan, inf := math.NaN(), math.Inf(1)

	tests := []struct {
		name string
		pres *float64
		dens *float64
		want error
	}{
		{"neither", nil, nil, ErrReading},
		{"both", &p, &d, ErrReading},
		{"zero pressure", &zero, nil, ErrNonPositive},
		{"zero density", nil, &zero, ErrNonPositive},
		{"negative density", nil, &neg, ErrNonPositive},
		{"NaN pressure", &nan, nil, ErrNonPositive},
		{"infinite pressure", &inf, nil, ErrNonFinite},
		{"infinite density", nil, &inf, ErrNonFinite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := CalcAltitude(tc.pres, tc.dens, 0)
			assert.Nil(t, sol)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestUnadjustDensity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.5, unadjustDensity(0.5, 0))
	// Never bracketed below the chart top: unchanged
	assert.Equal(t, 1e-12, unadjustDensity(1e-12, 10))
	// Colder air is denser, so the standard density searched for is lower
	assert.Less(t, unadjustDensity(0.7, -20), 0.7)
	assert.Greater(t, unadjustDensity(0.7, 20), 0.7)

	// Bracketed on the first step: close to the standard density at that height
	for _, alt := range []float64{MinAlt, -605} {
		std := CalcAtmosphere(alt, 0).Dens
		assert.InEpsilon(t, std, unadjustDensity(CalcAtmosphere(alt, 15).Dens, 15), 1e-6)
	}
}
