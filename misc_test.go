// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.17
//

package goisa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"m", 1000},
		{"FT", 304.8},
		{"fl", 30480},
	}
	for _, tc := range tests {
		var u Unit
		require.NoError(t, u.Set(tc.in))
		assert.InDelta(t, tc.want, u.ToMeters(1000), 1e-9, tc.in)
	}

	var u Unit
	assert.Error(t, u.Set("nm"))
	assert.Equal(t, "m", u.String())
}

func TestOptFloat(t *testing.T) {
	t.Parallel()

	var o OptFloat
	assert.Nil(t, o.Ptr())
	assert.Equal(t, "", o.String())

	require.NoError(t, o.Set("0"))
	assert.True(t, o.Given)
	require.NotNil(t, o.Ptr())
	assert.Equal(t, 0.0, *o.Ptr())

	assert.Error(t, o.Set("abc"))
}

func TestRangeFlag(t *testing.T) {
	t.Parallel()

	var r Range
	require.NoError(t, r.Set("0 20000 21"))
	assert.Equal(t, Range{Lo: 0, Hi: 20000, N: 21}, r)
	assert.Equal(t, "0 20000 21", r.String())

	assert.Error(t, r.Set("0 20000"))
	assert.Error(t, r.Set("100 0 5"))
	assert.Error(t, r.Set("0 100 1"))
	assert.Error(t, r.Set("a b c"))
}

func TestTropSiteFlag(t *testing.T) {
	t.Parallel()

	var p TropSite
	assert.Equal(t, "", p.String())
	require.NoError(t, p.Set("35.5 10 100"))
	assert.Equal(t, TropSite{Lat: 35.5, Elev: 10, Doy: 100, Given: true}, p)
	assert.Equal(t, "35.5 10 100", p.String())

	var q TropSite
	assert.Error(t, q.Set("35 10"))
	assert.Error(t, q.Set("95 10 100"))
	assert.Error(t, q.Set("35 0 100"))
	assert.Error(t, q.Set("35 10 400"))
	assert.Error(t, q.Set("35 x 100"))
	assert.False(t, q.Given)
}

func TestFlightLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FL000", FlightLevel(0))
	assert.Equal(t, "FL050", FlightLevel(1524))
	assert.Equal(t, "FL100", FlightLevel(10000*FeetToMeters))
	assert.Equal(t, "FL361", FlightLevel(11000))
	assert.Equal(t, "FL410", FlightLevel(41000*FeetToMeters))
}

func TestConversions(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 15.0, KelvinToCelsius(TEMP0), 1e-9)
	assert.InDelta(t, 180.0, ToDeg(ToRad(180)), 1e-12)
	assert.Equal(t, 9.0, SQ(-3))
}
