// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.20
//

package goisa

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Columns of the atmosphere table
const (
	ColAlt = iota
	ColGeoAlt
	ColTemp
	ColPres
	ColDens
	ColGrav
	NumCols
)

var ColNames = [NumCols]string{"alt(m)", "geo_alt(m)", "temp(K)", "pres(Pa)", "dens(kg/m3)", "grav(m/s2)"}

// n altitudes evenly spaced over [lo, hi]
func ProfileAlts(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Atmosphere table, one row per altitude
// Rows are independent and are computed concurrently.
func Table(alts []float64, to float64) *mat.Dense {
	if len(alts) == 0 {
		return nil
	}
	T := mat.NewDense(len(alts), NumCols, nil)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, alt := range alts {
		g.Go(func() error {
			atm := calcAtmosphere(alt, to)
			T.SetRow(i, []float64{atm.Alt, atm.GeoAlt, atm.Temp, atm.Pres, atm.Dens, atm.Grav})
			return nil
		})
	}
	_ = g.Wait() // rows never fail
	if DBG_ >= 3 {
		PrintMat(T)
	}
	return T
}

// Altimeter solutions for a list of pressures [Pa], in input order
func PressureAltitudes(pres []float64, to float64) ([]AltSol, error) {
	sols := make([]AltSol, len(pres))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pres {
		g.Go(func() error {
			sol, err := AltitudeFromPressure(p, to)
			if err != nil {
				return err
			}
			sols[i] = *sol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sols, nil
}
