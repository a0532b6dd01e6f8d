// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.14
//

package goisa

import (
	"math"
)

// Equivalent airspeed from true airspeed at an altitude [m] and temperature offset [K]
func EAS(tas, alt, to float64) float64 {
	atm := CalcAtmosphere(alt, to)
	return tas * math.Sqrt(atm.Dens/DENS0)
}

// True airspeed from equivalent airspeed at an altitude [m] and temperature offset [K]
func TAS(eas, alt, to float64) float64 {
	atm := CalcAtmosphere(alt, to)
	return eas * math.Sqrt(DENS0/atm.Dens)
}
