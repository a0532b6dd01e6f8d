// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.20
//

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mkhts/goisa"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs(os.Args[1:])
	if err != nil {
		if err != flag.ErrHelp {
			m.PrintE(err)
		}
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args, os.Stdin, os.Stdout); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Main application processing
func runApplication(args cmdOpt, in io.Reader, out io.Writer) error {

	if args.interactive {
		return runMenu(in, out)
	}

	if args.plotFn != "" {
		if err := writeProfilePlot(args.plotFn, args.plotRange, args.tempOffset); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
	}

	if args.table.N > 0 {
		alts := m.ProfileAlts(args.unit.ToMeters(args.table.Lo), args.unit.ToMeters(args.table.Hi), args.table.N)
		printTable(out, m.Table(alts, args.tempOffset))
	}

	if args.pres.Given || args.dens.Given {
		sol, err := m.CalcAltitude(args.pres.Ptr(), args.dens.Ptr(), args.tempOffset)
		if err != nil {
			return fmt.Errorf("altimeter failed: %w", err)
		}
		printAltitude(out, sol)
	}

	if args.alt.Given {
		alt := args.unit.ToMeters(args.alt.V)
		atm := m.CalcAtmosphere(alt, args.tempOffset)
		printAtmosphere(out, atm)
		if args.tas.Given {
			printSpeed(out, "EAS", m.EAS(args.tas.V, alt, args.tempOffset))
		}
		if args.eas.Given {
			printSpeed(out, "TAS", m.TAS(args.eas.V, alt, args.tempOffset))
		}
		if args.trop.Given {
			printTrop(out, args.trop, alt, args.tempOffset)
		}
	}

	return nil
}

// Structure to hold command line argument information
type cmdOpt struct {
	interactive bool
	alt         m.OptFloat
	unit        m.Unit
	tempOffset  float64
	pres        m.OptFloat
	dens        m.OptFloat
	tas         m.OptFloat
	eas         m.OptFloat
	trop        m.TropSite
	table       m.Range
	plotFn      string
	plotRange   m.Range
}

// Parse command line arguments
func parseArgs(argv []string) (a cmdOpt, err error) {
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	fs.Usage = func() {
		m.PrintA(`
[Usage]
	%s [-i]                                   interactive menu
	%s [Options] -a altitude [-tas v] [-eas v] [-trop site] atmosphere at an altitude
	%s [Options] -p pressure | -d density      altimeter
	%s [Options] -table "lo hi n"              atmosphere table

[Options]
`, fs.Name(), fs.Name(), fs.Name(), fs.Name())
		fs.PrintDefaults()
	}
	fs.BoolVar(&a.interactive, "i", false, "Interactive menu. Also the default when no altitude, pressure, density, table or plot is given.")
	fs.Var(&a.alt, "a", "Geopotential altitude in the unit given by -u")
	fs.Var(&a.unit, "u", "Altitude unit for -a and -table. m(meters), ft(feet), fl(flight level)")
	fs.Float64Var(&a.tempOffset, "t", 0, "Temperature offset from the standard atmosphere [K]")
	fs.Var(&a.pres, "p", "Measured pressure [Pa]. Prints the altitude.")
	fs.Var(&a.dens, "d", "Measured density [kg/m^3]. Prints the altitude. Cannot be combined with -p.")
	fs.Var(&a.tas, "tas", "True airspeed [m/s] to convert to EAS at the -a altitude")
	fs.Var(&a.eas, "eas", "Equivalent (indicated) airspeed [m/s] to convert to TAS at the -a altitude")
	fs.Var(&a.trop, "trop", "Tropospheric delay at the -a altitude. Latitude [deg], elevation [deg] and day of year like -trop \"35 10 100\"")
	fs.Var(&a.table, "table", "Print a table over an altitude range. Enclose in quotes like -table \"0 20000 21\"")
	fs.StringVar(&a.plotFn, "plot", "", "Write temperature and pressure profile plots (png, svg or pdf). The pressure plot gets a _pres suffix.")
	a.plotRange = m.Range{Lo: m.MinAlt, Hi: m.MesopauseAlt, N: 200}
	fs.Var(&a.plotRange, "pr", "Altitude range [m] of the -plot profile. Enclose in quotes like -pr \"0 50000 100\"")
	var dbg int
	fs.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(warnings), 2(detailed display), 3(tables)")
	if err = fs.Parse(argv); err != nil {
		return a, err
	}
	if fs.NArg() > 0 {
		return a, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if a.pres.Given && a.dens.Given {
		return a, fmt.Errorf("-p and -d cannot be combined: %w", m.ErrReading)
	}
	if (a.tas.Given || a.eas.Given || a.trop.Given) && !a.alt.Given {
		return a, fmt.Errorf("-tas, -eas and -trop need an altitude (-a option)")
	}
	if !a.alt.Given && !a.pres.Given && !a.dens.Given && a.table.N == 0 && a.plotFn == "" {
		a.interactive = true
	}
	m.DBG_ = dbg
	return
}
