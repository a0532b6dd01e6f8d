// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.17
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	m "github.com/mkhts/goisa"
)

const menuText = `--------------------------------------------
International Standard Atmosphere Calculator
--------------------------------------------
What do you want to do?
1) Enter an altitude in meters
2) Enter an altitude in feet
3) Enter an altitude in flight level (FL)
4) Enter a pressure in Pascals
5) Enter a density in kg/m³
6) Convert TAS to EAS
7) Convert EAS to TAS
8) Quit
`

// Console reading numbers line by line
type console struct {
	sc  *bufio.Scanner
	out io.Writer
}

// Ask for a number. io.EOF when the input ends.
func (c *console) ask(prompt string) (float64, error) {
	fmt.Fprint(c.out, prompt)
	if !c.sc.Scan() {
		if err := c.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	return strconv.ParseFloat(strings.TrimSpace(c.sc.Text()), 64)
}

// Interactive menu loop. Returns on choice 8 or at the end of the input.
func runMenu(in io.Reader, out io.Writer) error {
	c := &console{sc: bufio.NewScanner(in), out: out}
	for {
		fmt.Fprint(out, menuText)
		choice, err := c.ask("Your choice: ")
		if err == io.EOF {
			return nil
		} else if err != nil {
			if _, ok := err.(*strconv.NumError); !ok {
				return err
			}
			fmt.Fprintln(out, "Try again!")
			continue
		}
		if choice == 8 {
			return nil
		}
		if err := menuItem(c, int(choice)); err == io.EOF {
			return nil
		} else if err != nil {
			if _, ok := err.(*strconv.NumError); !ok {
				return err
			}
			fmt.Fprintln(out, "Try again!")
		}
	}
}

// Process one menu choice
func menuItem(c *console, choice int) error {
	switch choice {
	case 1, 2, 3:
		v, err := c.ask("Input Altitude: ")
		if err != nil {
			return err
		}
		to, err := c.ask("Input temperature offset: ")
		if err != nil {
			return err
		}
		unit := m.Unit(choice - 1)
		printAtmosphere(c.out, m.CalcAtmosphere(unit.ToMeters(v), to))
	case 4, 5:
		prompt := "Input pressure (Pascals): "
		if choice == 5 {
			prompt = "Input density (kg/m³): "
		}
		v, err := c.ask(prompt)
		if err != nil {
			return err
		}
		to, err := c.ask("Input temperature offset: ")
		if err != nil {
			return err
		}
		var sol *m.AltSol
		if choice == 4 {
			sol, err = m.AltitudeFromPressure(v, to)
		} else {
			sol, err = m.AltitudeFromDensity(v, to)
		}
		if err != nil {
			fmt.Fprintf(c.out, "%s\n", err)
			return nil
		}
		printAltitude(c.out, sol)
	case 6, 7:
		prompt := "Input True Airspeed (m/s): "
		if choice == 7 {
			prompt = "Input Equivalent Airspeed (m/s): "
		}
		speed, err := c.ask(prompt)
		if err != nil {
			return err
		}
		alt, err := c.ask("Input Altitude (m): ")
		if err != nil {
			return err
		}
		to, err := c.ask("Input temperature offset: ")
		if err != nil {
			return err
		}
		if choice == 6 {
			printSpeed(c.out, "EAS", m.EAS(speed, alt, to))
		} else {
			printSpeed(c.out, "TAS", m.TAS(speed, alt, to))
		}
	default:
		fmt.Fprintln(c.out, "Try again!")
	}
	return nil
}
