// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package goisa

import (
	"golang.org/x/exp/slices"
)

// Index of the layer for the altitude
// - inclusive: an altitude on a boundary belongs to the layer below it
// - otherwise it belongs to the layer starting at the boundary
// - false if below MinAlt
func layerIndex(alt float64, inclusive bool) (int, bool) {
	if alt < MinAlt {
		return 0, false
	}
	i := slices.IndexFunc(layerBases[1:], func(b float64) bool {
		if inclusive {
			return alt <= b
		}
		return alt < b
	})
	if i < 0 {
		return len(layerBases) - 1, true // mesopause
	}
	return i, true
}

// Lapse rate of the layer containing alt. Boundaries select the layer below.
func LayerLapseRate(alt float64) (float64, bool) {
	i, ok := layerIndex(alt, true)
	if !ok {
		return 0, false
	}
	return lapseRates[i], true
}

// Base altitude of the layer containing alt. Boundaries select the layer below.
func LayerBase(alt float64) (float64, bool) {
	i, ok := layerIndex(alt, true)
	if !ok {
		return 0, false
	}
	return layerBases[i], true
}

// Lapse rate of the layer starting at or continuing through alt (for the altimeter)
func NextLapseRate(alt float64) (float64, bool) {
	i, ok := layerIndex(alt, false)
	if !ok {
		return 0, false
	}
	return lapseRates[i], true
}

// First boundary strictly above alt (for the altimeter)
// - ChartTop for altitudes in [MesopauseAlt, ChartTop)
// - a value above ChartTop once the search has run off the chart
func NextBoundary(alt float64) (float64, bool) {
	if alt < MinAlt {
		return 0, false
	}
	for _, b := range layerBases[1:] {
		if alt < b {
			return b, true
		}
	}
	if alt < ChartTop {
		return ChartTop, true
	}
	return beyondChart, true
}
