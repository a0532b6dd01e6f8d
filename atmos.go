// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.14
//

package goisa

import (
	"fmt"
	"math"
	"strings"
)

// Non-fatal conditions raised while computing an atmosphere
type Warn uint8

const (
	WarnClamped     Warn = 1 << iota // Altitude raised to MinAlt
	WarnInaccurate                   // Altitude above AccurateAlt
	WarnNonPhysical                  // Offset temperature <= 0 K, density not corrected
)

func (w Warn) Has(f Warn) bool {
	return w&f != 0
}

func (w Warn) String() string {
	var s []string
	if w.Has(WarnClamped) {
		s = append(s, "clamped")
	}
	if w.Has(WarnInaccurate) {
		s = append(s, "inaccurate")
	}
	if w.Has(WarnNonPhysical) {
		s = append(s, "nonphysical")
	}
	return strings.Join(s, ",")
}

type Atmosphere struct {
	Alt        float64 // Geopotential altitude [m]
	Temp       float64 // Temperature [K]
	TempOffset float64 // Offset from the standard temperature [K]
	Pres       float64 // Pressure [Pa]
	Dens       float64 // Density [kg/m^3]
	GeoAlt     float64 // Geometric altitude [m]
	Grav       float64 // Gravitational acceleration [m/s^2]
	Warn       Warn
}

func (a *Atmosphere) String() string {
	return fmt.Sprintf("alt=%.2f T=%.2f To=%.2f p=%.2f rho=%.6f ga=%.2f g=%.5f",
		a.Alt, a.Temp, a.TempOffset, a.Pres, a.Dens, a.GeoAlt, a.Grav)
}

// Atmosphere at a geopotential altitude [m] with a temperature offset [K]
// - Altitudes below MinAlt are computed at MinAlt (WarnClamped)
// - Altitudes above AccurateAlt are computed but flagged (WarnInaccurate)
func CalcAtmosphere(alt, to float64) *Atmosphere {
	atm := calcAtmosphere(alt, to)
	if atm.Warn.Has(WarnClamped) {
		PrintD(1, "altitude %.1f m below %.0f m, clamped\n", alt, MinAlt)
	}
	if atm.Warn.Has(WarnInaccurate) {
		PrintD(1, "*** Warning *** not accurate above %.0f meters (alt=%.1f)\n", AccurateAlt, alt)
	}
	PrintD(2, "atmosphere: %s\n", atm)
	return atm
}

// Same as CalcAtmosphere without debug output (used by the altimeter search)
func calcAtmosphere(alt, to float64) *Atmosphere {
	var w Warn
	if alt < MinAlt {
		alt = MinAlt
		w |= WarnClamped
	}
	if alt > AccurateAlt {
		w |= WarnInaccurate
	}
	atm := standardAtmosphere(alt)
	atm.TempOffset = to
	atm.Warn = w

	// Correct density for the offset once, on the standard temperature
	if atm.Temp+to <= 0 {
		atm.Warn |= WarnNonPhysical
	} else if to != 0 && atm.Dens > 0 {
		atm.Dens = atm.Dens * atm.Temp / (atm.Temp + to)
	}
	atm.Temp += to
	return atm
}

// Standard (offset-free) atmosphere, solved from the base of the layer
// containing alt, which is itself solved from the layer below.
// alt must not be below MinAlt.
func standardAtmosphere(alt float64) *Atmosphere {
	if alt == 0 {
		return &Atmosphere{
			Temp: TEMP0,
			Pres: PRES0,
			Dens: DENS0,
			Grav: G0,
		}
	}
	base, _ := LayerBase(alt)
	lr, _ := LayerLapseRate(alt)
	atm0 := standardAtmosphere(base)

	atm := &Atmosphere{Alt: alt}
	if lr != 0 {
		// Polytropic layer
		atm.Temp = atm0.Temp + lr*(alt-base)
		ex := -G0 / (lr * R)
		atm.Pres = atm0.Pres * math.Pow(atm.Temp/atm0.Temp, ex)
		atm.Dens = atm0.Dens * math.Pow(atm.Temp/atm0.Temp, ex-1)
	} else {
		// Isothermal layer
		con := math.Exp(-G0 / (R * atm0.Temp) * (alt - base))
		atm.Temp = atm0.Temp
		atm.Pres = atm0.Pres * con
		atm.Dens = atm0.Dens * con
	}
	atm.GeoAlt = GeometricAlt(alt)
	atm.Grav = Gravity(atm.GeoAlt)
	return atm
}

// Geometric altitude (true height above sea level) from geopotential altitude
func GeometricAlt(alt float64) float64 {
	return Re * alt / (Re - alt)
}

// Gravitational acceleration at a geometric altitude (inverse square law)
func Gravity(geoAlt float64) float64 {
	return G0 * SQ(Re/(Re+geoAlt))
}
