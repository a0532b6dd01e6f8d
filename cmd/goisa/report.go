// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.20
//

package main

import (
	"fmt"
	"io"

	m "github.com/mkhts/goisa"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"
)

// Round half away from zero for display
func round(x float64, places int32) string {
	return decimal.NewFromFloat(x).Round(places).String()
}

// Print the atmosphere report
func printAtmosphere(w io.Writer, atm *m.Atmosphere) {
	if atm.Warn.Has(m.WarnInaccurate) {
		fmt.Fprintf(w, "*** Warning *** Calculator is NOT accurate above %.0f meters!\n", m.AccurateAlt)
	}
	if atm.Warn.Has(m.WarnClamped) {
		fmt.Fprintf(w, "*** Warning *** Altitude raised to %.0f meters\n", m.MinAlt)
	}
	fmt.Fprintf(w, "Altitude: %s m (%s ft)\n", round(atm.Alt, 2), round(atm.Alt/m.FeetToMeters, 1))
	fmt.Fprintf(w, "Geometric Altitude: %s m\n", round(atm.GeoAlt, 2))
	fmt.Fprintf(w, "Pressure: %s Pa\n", round(atm.Pres, 2))
	fmt.Fprintf(w, "Density: %s kg/m³\n", round(atm.Dens, 6))
	fmt.Fprintf(w, "Temperature: %s K (%s °C)\n", round(atm.Temp, 2), round(m.KelvinToCelsius(atm.Temp), 2))
	fmt.Fprintf(w, "Gravity: %s m/s²\n", round(atm.Grav, 5))
}

// Print the altimeter result
func printAltitude(w io.Writer, sol *m.AltSol) {
	switch sol.Status {
	case m.AltUnresolved:
		fmt.Fprintf(w, "Altitude unresolved: reading is above %.0f meters\n", m.ChartTop)
		return
	case m.AltBelowRange:
		fmt.Fprintf(w, "Altitude unresolved: reading is below %.0f meters\n", m.MinAlt)
		return
	}
	fmt.Fprintf(w, "You are at %s (%s m)\n", m.FlightLevel(sol.Alt), round(sol.Alt, 2))
}

// Print a converted airspeed in m/s and knots
func printSpeed(w io.Writer, name string, v float64) {
	fmt.Fprintf(w, "Your %s is %s m/s (%s kt)\n", name, round(v, 2), round(v/m.KnotsToMeters, 1))
}

// Print the slant tropospheric delay and its Niell mapping factor
func printTrop(w io.Writer, site m.TropSite, alt, to float64) {
	lat, elev := m.ToRad(site.Lat), m.ToRad(site.Elev)
	delay := m.TropDelay(alt, lat, elev, to)
	if delay == 0 {
		fmt.Fprintf(w, "Tropospheric delay: not modeled at this altitude\n")
		return
	}
	fmt.Fprintf(w, "Tropospheric delay: %s m\n", round(delay, 3))
	fmt.Fprintf(w, "Niell mapping: %s\n", round(m.TropMapf(site.Doy, lat, alt, elev), 4))
}

// Print the atmosphere table
func printTable(w io.Writer, T *mat.Dense) {
	if T == nil {
		return
	}
	fmt.Fprintf(w, "%%")
	for _, c := range m.ColNames {
		fmt.Fprintf(w, " %12s", c)
	}
	fmt.Fprintf(w, "\n")
	r, _ := T.Dims()
	for i := range r {
		row := T.RawRowView(i)
		fmt.Fprintf(w, "  %12.2f %12.2f %12.2f %12.4f %12.6g %12.5f\n",
			row[m.ColAlt], row[m.ColGeoAlt], row[m.ColTemp], row[m.ColPres], row[m.ColDens], row[m.ColGrav])
	}
}
