// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.20
//

package goisa

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrReading     = errors.New("exactly one of pressure or density is required")
	ErrNonPositive = errors.New("reading must be positive")
	ErrNonFinite   = errors.New("reading must be finite")
	ErrOffset      = errors.New("density does not decrease with altitude at this temperature offset")
)

type AltStatus int

const (
	AltResolved AltStatus = iota
	// Search passed ChartTop without converging
	AltUnresolved
	// Reading is beyond the value at MinAlt
	AltBelowRange
)

func (s AltStatus) String() string {
	switch s {
	case AltResolved:
		return "resolved"
	case AltUnresolved:
		return "unresolved"
	case AltBelowRange:
		return "below range"
	default:
		return "UNKNOWN!"
	}
}

// Altimeter solution
type AltSol struct {
	Alt    float64   // Geopotential altitude [m]; 0 unless resolved
	Status AltStatus // Check before using Alt
	Dens   float64   // Density searched for after removing the offset (density readings only)
}

func (s *AltSol) Resolved() bool {
	return s.Status == AltResolved
}

// Altitude from a measured pressure [Pa]
// Pressure does not depend on the temperature offset in this model.
func AltitudeFromPressure(pres, to float64) (*AltSol, error) {
	return CalcAltitude(&pres, nil, to)
}

// Altitude from a measured density [kg/m^3] at a temperature offset [K]
func AltitudeFromDensity(dens, to float64) (*AltSol, error) {
	return CalcAltitude(nil, &dens, to)
}

// Altitude producing the reading. Exactly one of pres and dens must be non-nil.
func CalcAltitude(pres, dens *float64, to float64) (*AltSol, error) {
	if (pres == nil) == (dens == nil) {
		return nil, ErrReading
	}
	sol := &AltSol{}
	var rd reading
	if pres != nil {
		if err := checkReading("pressure", *pres); err != nil {
			return nil, err
		}
		if *pres > standardAtmosphere(MinAlt).Pres {
			return belowRange(sol), nil
		}
		rd = reading{val: *pres, isPres: true}
	} else {
		if err := checkReading("density", *dens); err != nil {
			return nil, err
		}
		if to != 0 && !densityDecreasing(to) {
			return nil, fmt.Errorf("offset %g K: %w", to, ErrOffset)
		}
		if *dens > calcAtmosphere(MinAlt, to).Dens {
			return belowRange(sol), nil
		}
		sol.Dens = unadjustDensity(*dens, to)
		rd = reading{val: sol.Dens}
	}

	alt, ok := rd.search()
	if !ok {
		PrintD(1, "altimeter search unresolved above %.0f m\n", ChartTop)
		sol.Status = AltUnresolved
		return sol, nil
	}
	// In range readings land at or above MinAlt up to rounding
	sol.Alt = max(alt, MinAlt)
	PrintD(2, "altimeter: %.3f m\n", sol.Alt)
	return sol, nil
}

func checkReading(name string, v float64) error {
	if !(v > 0) {
		return fmt.Errorf("%s %g: %w", name, v, ErrNonPositive)
	}
	if math.IsInf(v, 1) {
		return fmt.Errorf("%s %g: %w", name, v, ErrNonFinite)
	}
	return nil
}

func belowRange(sol *AltSol) *AltSol {
	PrintD(1, "altimeter reading beyond the value at %.0f m\n", MinAlt)
	sol.Status = AltBelowRange
	return sol
}

// Whether the offset atmosphere's density falls monotonically from MinAlt to
// ChartTop. d(ln rho)/dh = -(G0*(T+to) + lr*R*T) / (R*T*(T+to)) within a layer,
// linear in T, so checking both ends of each layer is enough.
func densityDecreasing(to float64) bool {
	for i, lr := range lapseRates {
		lo, hi := layerBases[i], ChartTop
		if i == 0 {
			lo = MinAlt
		}
		if i+1 < len(layerBases) {
			hi = layerBases[i+1]
		}
		for _, alt := range []float64{lo, hi} {
			t := standardAtmosphere(alt).Temp
			if t+to <= 0 || G0*(t+to)+lr*R*t <= 0 {
				return false
			}
		}
	}
	return true
}

type reading struct {
	val    float64
	isPres bool
}

// State at the base of the layer being searched
type layerState struct {
	base float64
	pres float64
	dens float64
	temp float64
}

func newLayerState(base float64) layerState {
	atm := standardAtmosphere(base)
	return layerState{base: base, pres: atm.Pres, dens: atm.Dens, temp: atm.Temp}
}

// Height at which the reading is met, extrapolating from the layer base
func (st layerState) invert(lr float64, rd reading) float64 {
	if lr != 0 {
		var t1 float64
		if rd.isPres {
			t1 = st.temp * math.Pow(rd.val/st.pres, R*lr/-G0)
		} else {
			t1 = st.temp * math.Pow(rd.val/st.dens, 1.0/(-G0/(R*lr)-1.0))
		}
		return (t1-st.temp)/lr + st.base
	}
	// Isothermal
	ref := st.dens
	if rd.isPres {
		ref = st.pres
	}
	return math.Log(rd.val/ref)*R*st.temp/-G0 + st.base
}

// Walk the layers upward from sea level until the candidate height stays
// within the layer it was computed for.
func (rd reading) search() (float64, bool) {
	st := layerState{base: 0, pres: PRES0, dens: DENS0, temp: TEMP0}
	h := 0.0
	for h >= st.base {
		lr, _ := NextLapseRate(st.base)
		h = st.invert(lr, rd)
		next, _ := NextBoundary(st.base)
		if next > ChartTop {
			return 0, false
		}
		st = newLayerState(next)
	}
	return h, true
}

// Density the offset-free search should look for
// The closed form inversions assume no offset, so step up from -600 m in
// 100 m increments until the offset atmosphere is at or below the target,
// interpolate the temperature between the bracketing steps and undo the
// offset correction. A target met on the first step is extrapolated from the
// first two steps. Returns dens unchanged if nothing brackets it.
func unadjustDensity(dens, to float64) float64 {
	if to == 0 {
		return dens
	}
	var last *Atmosphere
	for guess := -6; guess < 900; guess++ {
		atm := calcAtmosphere(float64(guess)*100.0, to)
		if atm.Dens <= dens {
			if last == nil {
				last = calcAtmosphere(float64(guess+1)*100.0, to)
			}
			w := (atm.Dens - dens) / (atm.Dens - last.Dens)
			t := atm.Temp*(1-w) + last.Temp*w
			return dens * t / (t - to)
		}
		last = atm
	}
	PrintD(1, "density %g not bracketed below %.0f m, offset ignored\n", dens, ChartTop)
	return dens
}
