/*
 * mmplot.go, part of gomm.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package mmplot draws energy profiles of gomm force-field terms as
//PNG files. Energies are plotted in kcal/mol and angles in degrees,
//since those are the units force-field people think in.
package mmplot

import (
	"fmt"
	"image/color"

	mm "github.com/rmera/gomm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "E (kcal/mol)"
	p.Add(plotter.NewGrid())
	return p
}

func savePlot(p *plot.Plot, pts plotter.XYs, plotname string) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(l)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 9*vg.Centimeter, filename)
}

// StretchProfile plots the harmonic stretch energy between dmin and
// dmax A, with n sampled points, and saves it as plotname.png.
func StretchProfile(bs mm.BondStretch, dmin, dmax float64, n int, title, plotname string) error {
	if n < 2 || dmax <= dmin {
		return fmt.Errorf("bad profile range [%g,%g]/%d", dmin, dmax, n)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		d := dmin + (dmax-dmin)*float64(i)/float64(n-1)
		pts[i].X = d
		pts[i].Y = bs.Energy(d) / mm.EnergyUnitsPerKcal
	}
	p := basicPlot(title, "d (A)")
	return savePlot(p, pts, plotname)
}

// BendProfile plots the harmonic bend energy over [0,180] degrees.
func BendProfile(bb mm.BondBend, n int, title, plotname string) error {
	if n < 2 {
		return fmt.Errorf("bad profile resolution %d", n)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		deg := 180 * float64(i) / float64(n-1)
		pts[i].X = deg
		pts[i].Y = bb.Energy(deg*mm.RadiansPerDegree) / mm.EnergyUnitsPerKcal
	}
	p := basicPlot(title, "theta (deg)")
	return savePlot(p, pts, plotname)
}

// TorsionProfile plots the Fourier-sum torsion energy over [-180,180]
// degrees.
func TorsionProfile(bt mm.BondTorsion, n int, title, plotname string) error {
	if n < 2 {
		return fmt.Errorf("bad profile resolution %d", n)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		deg := -180 + 360*float64(i)/float64(n-1)
		pts[i].X = deg
		pts[i].Y = bt.Energy(deg*mm.RadiansPerDegree) / mm.EnergyUnitsPerKcal
	}
	p := basicPlot(title, "theta (deg)")
	return savePlot(p, pts, plotname)
}

// LJProfile plots the Lennard-Jones 12-6 energy for a combined pair
// (dij = separation at the minimum, in A; eij = well depth in
// internal units, as stored in the atom-class tables) between dmin and
// dmax.
func LJProfile(dij, eij, dmin, dmax float64, n int, title, plotname string) error {
	if n < 2 || dmax <= dmin || dmin <= 0 {
		return fmt.Errorf("bad profile range [%g,%g]/%d", dmin, dmax, n)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		d := dmin + (dmax-dmin)*float64(i)/float64(n-1)
		rho := dij / d
		rho2 := rho * rho
		rho6 := rho2 * rho2 * rho2
		pts[i].X = d
		pts[i].Y = eij * (rho6*rho6 - 2*rho6) / mm.EnergyUnitsPerKcal
	}
	p := basicPlot(title, "d (A)")
	return savePlot(p, pts, plotname)
}
