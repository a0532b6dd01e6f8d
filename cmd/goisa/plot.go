// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.20
//

package main

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	m "github.com/mkhts/goisa"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Profile panel: one table column against altitude
type profile struct {
	col   int
	title string
	label string
	scale float64
}

var profiles = []profile{
	{m.ColTemp, "Temperature", "Temperature (K)", 1},
	{m.ColPres, "Pressure", "Pressure (hPa)", 0.01},
}

// Write the temperature profile to fn and the pressure profile next to it
// (name_pres.ext). With a non-zero offset the standard profile is drawn too.
func writeProfilePlot(fn string, r m.Range, to float64) error {
	alts := m.ProfileAlts(r.Lo, r.Hi, r.N)

	offsets := []float64{to}
	if to != 0 {
		offsets = append(offsets, 0)
	}
	tables := make([]*mat.Dense, len(offsets))
	for i, o := range offsets {
		tables[i] = m.Table(alts, o)
	}

	for i, pf := range profiles {
		out := fn
		if i > 0 {
			out = profileFile(fn, "pres")
		}
		p, err := profilePlot(pf, offsets, tables, to)
		if err != nil {
			return err
		}
		if err := p.Save(6*vg.Inch, 8*vg.Inch, out); err != nil {
			return err
		}
		m.PrintD(1, "plot written to %s\n", out)
	}
	return nil
}

func profilePlot(pf profile, offsets []float64, tables []*mat.Dense, to float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s profile (offset %+.1f K)", pf.title, to)
	p.X.Label.Text = pf.label
	p.Y.Label.Text = "Altitude (km)"

	colors := []color.Color{color.RGBA{R: 200, A: 255}, color.RGBA{B: 200, A: 255}}
	for i, o := range offsets {
		line, err := plotter.NewLine(profilePoints(tables[i], pf.col, pf.scale))
		if err != nil {
			return nil, err
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("ISA%+.1f", o), line)
	}
	p.Legend.Top = true
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// dir/name.ext -> dir/name_suffix.ext
func profileFile(fn, suffix string) string {
	ext := filepath.Ext(fn)
	return strings.TrimSuffix(fn, ext) + "_" + suffix + ext
}

// Table column (scaled) against altitude in km
func profilePoints(T *mat.Dense, col int, scale float64) plotter.XYs {
	r, _ := T.Dims()
	pts := make(plotter.XYs, r)
	for i := range r {
		pts[i] = plotter.XY{X: T.At(i, col) * scale, Y: T.At(i, m.ColAlt) / 1000}
	}
	return pts
}
