// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package goisa

const (
	R      = 287.0     // Specific gas constant for air [J/(kg K)]
	G0     = 9.80665   // Standard gravity [m/s^2]
	TEMP0  = 288.15    // Sea level temperature [K]
	PRES0  = 101325.0  // Sea level pressure [Pa]
	DENS0  = 1.225     // Sea level density [kg/m^3]
	Re     = 6356766.0 // Earth's radius for geopotential conversion [m]
	KELVIN = 273.15    // 0 degC in K
)

const (
	MinAlt        = -610.0  // Lowest modeled altitude [m]
	AccurateAlt   = 80000.0 // Results above this altitude are not accurate [m]
	MesopauseAlt  = 84852.0 // Base of the last layer [m]
	ChartTop      = 90000.0 // Ceiling of the altimeter search [m]
	beyondChart   = 90001.0 // Returned by NextBoundary above the ceiling
	FeetToMeters  = 0.3048
	FLToMeters    = 30.48 // 100 ft
	KnotsToMeters = 0.514444
)

// Layer boundaries [m] and lapse rates [K/m], index for index
var layerBases = [...]float64{0, 11000, 20000, 32000, 47000, 51000, 71000, 84852}
var lapseRates = [...]float64{-0.0065, 0, 0.001, 0.0028, 0, -0.0028, -0.002, 0}
