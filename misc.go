// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.16
//

package goisa

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func SQ(x float64) float64 {
	return x * x
}

func ToDeg(rad float64) float64 {
	return rad / math.Pi * 180.0
}

func ToRad(deg float64) float64 {
	return deg / 180.0 * math.Pi
}

func KelvinToCelsius(t float64) float64 {
	return t - KELVIN
}

// Flight level string (hundreds of feet, at least 3 digits)
func FlightLevel(alt float64) string {
	return fmt.Sprintf("FL%03d", int(math.Round(alt/FLToMeters)))
}

// ------------------------------------
// Debug print function
// ------------------------------------

func PrintMat(X mat.Matrix) {
	r, c := X.Dims()
	fmt.Fprintf(os.Stderr, "(%d x %d)\n", r, c)
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	fmt.Fprintf(os.Stderr, "%v\n", fa)
}

func PrintA(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

func PrintAIf(cond bool, format string, a ...any) {
	if cond {
		PrintA(format, a...)
	}
}

// Debug display level
var DBG_ int

// Debug display
func PrintD(v int, format string, a ...any) {
	PrintAIf(DBG_ >= v, format, a...)
}

func PrintE(err error) {
	fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
}

// ------------------------------------
// For command argument parsing
// ------------------------------------

// Altitude input unit (m, ft, fl)
type Unit int

const (
	Meters = iota
	Feet
	FlightLevels
)

func (p *Unit) Set(s string) error {
	switch strings.ToLower(s) {
	case "m":
		*p = Meters
	case "ft":
		*p = Feet
	case "fl":
		*p = FlightLevels
	default:
		return fmt.Errorf("unknown unit %q (m, ft, fl)", s)
	}
	return nil
}

func (p *Unit) String() string {
	switch *p {
	case Meters:
		return "m"
	case Feet:
		return "ft"
	case FlightLevels:
		return "fl"
	default:
		return "UNKNOWN!"
	}
}

// Convert a value in this unit to meters
func (p Unit) ToMeters(v float64) float64 {
	switch p {
	case Feet:
		return v * FeetToMeters
	case FlightLevels:
		return v * FLToMeters
	default:
		return v
	}
}

// Float flag that remembers whether it was given, so 0 is not "absent"
type OptFloat struct {
	V     float64
	Given bool
}

func (p *OptFloat) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	p.V = v
	p.Given = true
	return nil
}

func (p *OptFloat) String() string {
	if p == nil || !p.Given {
		return ""
	}
	return strconv.FormatFloat(p.V, 'g', -1, 64)
}

// Pointer to the value, nil if not given
func (p *OptFloat) Ptr() *float64 {
	if !p.Given {
		return nil
	}
	v := p.V
	return &v
}

// Altitude range "lo hi n" (for tables and plots)
type Range struct {
	Lo, Hi float64
	N      int
}

func (p *Range) Set(s string) error {
	var err error
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("range needs \"lo hi n\": %q", s)
	}
	p.Lo, err = strconv.ParseFloat(f[0], 64)
	if err != nil {
		return err
	}
	p.Hi, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	p.N, err = strconv.Atoi(f[2])
	if err != nil {
		return err
	}
	if p.N < 2 || p.Hi <= p.Lo {
		return fmt.Errorf("invalid range %q", s)
	}
	return nil
}

func (p *Range) String() string {
	if p == nil || p.N == 0 {
		return ""
	}
	return fmt.Sprintf("%g %g %d", p.Lo, p.Hi, p.N)
}

// Receiver latitude [deg], satellite elevation [deg] and day of year for the
// tropospheric delay at the -a altitude
type TropSite struct {
	Lat, Elev float64
	Doy       int
	Given     bool
}

func (p *TropSite) Set(s string) error {
	var err error
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("site needs \"lat elev doy\": %q", s)
	}
	p.Lat, err = strconv.ParseFloat(f[0], 64)
	if err != nil {
		return err
	}
	p.Elev, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	p.Doy, err = strconv.Atoi(f[2])
	if err != nil {
		return err
	}
	if math.Abs(p.Lat) > 90 || p.Elev <= 0 || p.Elev > 90 || p.Doy < 1 || p.Doy > 366 {
		return fmt.Errorf("invalid site %q", s)
	}
	p.Given = true
	return nil
}

func (p *TropSite) String() string {
	if p == nil || !p.Given {
		return ""
	}
	return fmt.Sprintf("%g %g %d", p.Lat, p.Elev, p.Doy)
}
