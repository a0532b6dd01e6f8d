// This code is adapted from RTKLIB.
// The author gratefully acknowledges T.Takasu for his outstanding contribution in developing RTKLIB.
//
// Last modified: 2025.10.20
//

package goisa

import (
	"math"
)

// Tropospheric delay [m] for a receiver at geopotential altitude alt [m],
// latitude lat [rad] and satellite elevation elev [rad], using the
// Saastamoinen model fed with the ISA pressure and temperature (dry air).
// Returns 0 outside -100 m to 10 km or for non-positive elevation.
func TropDelay(alt, lat, elev, to float64) float64 {
	if alt < -100.0 || 1e4 < alt || elev <= 0.0 {
		return 0.0
	}
	hgt := max(alt, 0.0)
	atm := calcAtmosphere(hgt, to)
	pres := atm.Pres / 100.0 // hPa
	z := math.Pi/2.0 - elev
	return 0.0022768 * pres / (1.0 - 0.00266*math.Cos(2.0*lat) - 0.00028*GeometricAlt(hgt)/1e3) / math.Cos(z)
}

// Niell hydrostatic coefficients a, b, c at latitudes 15, 30, 45, 60, 75 deg
var (
	niellAvg = [3][5]float64{
		{1.2769934e-3, 1.2683230e-3, 1.2465397e-3, 1.2196049e-3, 1.2045996e-3},
		{2.9153695e-3, 2.9152299e-3, 2.9288445e-3, 2.9022565e-3, 2.9024912e-3},
		{62.610505e-3, 62.837393e-3, 63.721774e-3, 63.824265e-3, 64.258455e-3},
	}
	niellAmp = [3][5]float64{
		{0.0000000e-0, 1.2709626e-5, 2.6523662e-5, 3.4000452e-5, 4.1202191e-5},
		{0.0000000e-0, 2.1414979e-5, 3.0160779e-5, 7.2562722e-5, 11.723375e-5},
		{0.0000000e-0, 9.0128400e-5, 4.3497037e-5, 84.795348e-5, 170.37206e-5},
	}
	niellHgt = [3]float64{2.53e-5, 5.49e-3, 1.14e-3}
)

// Niell hydrostatic mapping function, scaling the zenith delay to elevation elev [rad]
// - doy: day of year, lat [rad], alt: geopotential altitude [m]
// The height correction uses the geometric altitude of alt.
func TropMapf(doy int, lat, alt, elev float64) float64 {
	if alt < -1000.0 || alt > 20000.0 || elev <= 0.0 {
		return 0.0
	}
	latd := ToDeg(lat)
	y := (float64(doy) - 28.0) / 365.25
	if latd < 0.0 {
		y += 0.5 // southern hemisphere seasons
	}
	season := math.Cos(2 * math.Pi * y)
	latd = math.Abs(latd)

	var abc [3]float64
	for i := range abc {
		abc[i] = latInterp(niellAvg[i], latd) - latInterp(niellAmp[i], latd)*season
	}
	sinel := math.Sin(elev)
	dm := (1.0/sinel - marini(sinel, niellHgt)) * GeometricAlt(alt) / 1e3
	return marini(sinel, abc) + dm
}

// Linear interpolation of a 15 deg latitude table, held at the ends
func latInterp(tbl [5]float64, latd float64) float64 {
	i := int(latd / 15.0)
	if i < 1 {
		return tbl[0]
	} else if i > 4 {
		return tbl[4]
	}
	return tbl[i-1]*(1.0-latd/15.0+float64(i)) + tbl[i]*(latd/15.0-float64(i))
}

// Marini continued fraction, normalized to 1 at zenith
func marini(sinel float64, abc [3]float64) float64 {
	a, b, c := abc[0], abc[1], abc[2]
	return (1.0 + a/(1.0+b/(1.0+c))) / (sinel + (a / (sinel + b/(sinel+c))))
}
