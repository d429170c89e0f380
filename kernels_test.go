/*
 * kernels_test.go, part of gomm.
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

package mm

import (
	"math"
	"testing"

	"github.com/rmera/gomm/spatial"
	"gonum.org/v1/gonum/floats/scalar"
)

func notNaN(vs ...spatial.Vec) bool {
	for _, v := range vs {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
			return false
		}
	}
	return true
}

func TestBendAngleAndEnergy(Te *testing.T) {
	bb := BondBend{K: 50 * EnergyUnitsPerKcal, Theta0: 109.5 * RadiansPerDegree}
	//a 90 degree angle in the xy plane
	c := spatial.Vec{}
	r := spatial.Vec{X: 1.2}
	s := spatial.Vec{Y: 1.4}
	theta, pe, cf, rf, sf := bb.harmonic(c, r, s)
	if !scalar.EqualWithinAbs(theta, math.Pi/2, 1e-12) {
		Te.Errorf("theta: %g", theta)
	}
	x := math.Pi/2 - bb.Theta0
	if !scalar.EqualWithinAbs(pe, bb.K*x*x, 1e-9) {
		Te.Errorf("bend energy: %g", pe)
	}
	//force closure
	net := cf.Add(rf).Add(sf)
	if !scalar.EqualWithinAbs(net.Norm(), 0, 1e-9) {
		Te.Errorf("bend forces don't close: %v", net)
	}
	//below the nominal angle the end atoms are pushed apart
	if rf.Dot(s) >= 0 || sf.Dot(r) >= 0 {
		Te.Errorf("bend force direction wrong: rf=%v sf=%v", rf, sf)
	}
}

func TestBendAtEquilibrium(Te *testing.T) {
	bb := BondBend{K: 50 * EnergyUnitsPerKcal, Theta0: math.Pi / 2}
	_, pe, cf, rf, sf := bb.harmonic(spatial.Vec{}, spatial.Vec{X: 1}, spatial.Vec{Y: 1})
	if pe != 0 {
		Te.Errorf("energy at equilibrium: %g", pe)
	}
	if rf.Norm() != 0 || sf.Norm() != 0 || cf.Norm() != 0 {
		Te.Errorf("forces at equilibrium: %v %v %v", rf, sf, cf)
	}
}

func TestBendDegenerate(Te *testing.T) {
	bb := BondBend{K: 50 * EnergyUnitsPerKcal, Theta0: 2}
	//colinear: theta comes out 0, the push is along some stable
	//perpendicular, and nothing is NaN
	theta, pe, cf, rf, sf := bb.harmonic(spatial.Vec{}, spatial.Vec{X: 1}, spatial.Vec{X: 2})
	if theta != 0 {
		Te.Errorf("colinear theta: %g", theta)
	}
	if !notNaN(cf, rf, sf) || math.IsNaN(pe) {
		Te.Error("colinear bend produced NaN")
	}
	if !scalar.EqualWithinAbs(cf.Add(rf).Add(sf).Norm(), 0, 1e-9) {
		Te.Error("colinear bend forces don't close")
	}
	//end atom on top of the center: no angle, zero everything
	_, pe, cf, rf, sf = bb.harmonic(spatial.Vec{}, spatial.Vec{}, spatial.Vec{X: 1})
	if pe != 0 || !notNaN(cf, rf, sf) {
		Te.Error("zero-length bend arm not handled")
	}
}

// torsion angle convention: cis is 0, and the sign follows the right
// hand rule about the x->y axis
func TestTorsionAngleConvention(Te *testing.T) {
	bt := BondTorsion{Terms: []TorsionTerm{{Periodicity: 1, Amplitude: 1, Theta0: 0}}}
	x := spatial.Vec{}
	y := spatial.Vec{Z: 1}
	r := spatial.Vec{X: 1} //r->x points -x
	for _, tc := range []struct {
		sdeg float64
	}{{0}, {60}, {-60}, {120}, {179}} {
		ang := tc.sdeg * RadiansPerDegree
		s := spatial.Vec{X: math.Cos(ang), Y: math.Sin(ang), Z: 1}
		theta, _, rf, xf, yf, sf := bt.periodic(r, x, y, s)
		if !scalar.EqualWithinAbs(theta, ang, 1e-12) {
			Te.Errorf("theta for %g deg: got %g deg", tc.sdeg, theta/RadiansPerDegree)
		}
		net := rf.Add(xf).Add(yf).Add(sf)
		if !scalar.EqualWithinAbs(net.Norm(), 0, 1e-9) {
			Te.Errorf("torsion forces don't close at %g deg: %v", tc.sdeg, net)
		}
	}
}

func TestTorsionEnergyAndTorqueZero(Te *testing.T) {
	//n=3, amp=0.16 kcal, phase 0: at theta=60 deg the energy is
	//amp*(1+cos 180) = 0 and so is the torque; an energy minimum
	bt := BondTorsion{Terms: []TorsionTerm{{Periodicity: 3, Amplitude: 0.16 * EnergyUnitsPerKcal, Theta0: 0}}}
	x := spatial.Vec{}
	y := spatial.Vec{Z: 1}
	r := spatial.Vec{X: 1}
	ang := 60 * RadiansPerDegree
	s := spatial.Vec{X: math.Cos(ang), Y: math.Sin(ang), Z: 1}
	_, pe, rf, xf, yf, sf := bt.periodic(r, x, y, s)
	if !scalar.EqualWithinAbs(pe, 0, 1e-9) {
		Te.Errorf("energy at the minimum: %g", pe)
	}
	for _, f := range []spatial.Vec{rf, xf, yf, sf} {
		if !scalar.EqualWithinAbs(f.Norm(), 0, 1e-9) {
			Te.Errorf("force at the minimum: %v", f)
		}
	}
	//at theta=0 the energy is 2*amp and the torque still 0 (a maximum)
	s0 := spatial.Vec{X: 1, Z: 1}
	_, pe, _, _, _, _ = bt.periodic(r, x, y, s0)
	if !scalar.EqualWithinAbs(pe, 2*0.16*EnergyUnitsPerKcal, 1e-9) {
		Te.Errorf("energy at cis: %g", pe)
	}
}

func TestTorsionFourierSum(Te *testing.T) {
	bt := BondTorsion{Terms: []TorsionTerm{
		{Periodicity: 1, Amplitude: 0.2 * EnergyUnitsPerKcal, Theta0: 0},
		{Periodicity: 2, Amplitude: 0.25 * EnergyUnitsPerKcal, Theta0: math.Pi},
		{Periodicity: 3, Amplitude: 0.18 * EnergyUnitsPerKcal, Theta0: 0},
	}}
	theta := 42 * RadiansPerDegree
	want := 0.0
	for _, t := range bt.Terms {
		want += t.Amplitude * (1 + math.Cos(float64(t.Periodicity)*theta-t.Theta0))
	}
	if got := bt.Energy(theta); !scalar.EqualWithinAbs(got, want, 1e-9) {
		Te.Errorf("Fourier sum: got %g want %g", got, want)
	}
}

func TestTorsionDegenerateAxis(Te *testing.T) {
	bt := BondTorsion{Terms: []TorsionTerm{{Periodicity: 3, Amplitude: 0.16 * EnergyUnitsPerKcal, Theta0: 0}}}
	//x and y on top of each other: no axis. Forces must stay finite
	//and sum to zero.
	x := spatial.Vec{}
	y := spatial.Vec{}
	r := spatial.Vec{X: 1}
	s := spatial.Vec{Y: 1}
	_, pe, rf, xf, yf, sf := bt.periodic(r, x, y, s)
	if math.IsNaN(pe) || !notNaN(rf, xf, yf, sf) {
		Te.Error("degenerate axis produced NaN")
	}
	net := rf.Add(xf).Add(yf).Add(sf)
	if !scalar.EqualWithinAbs(net.Norm(), 0, 1e-9) {
		Te.Errorf("degenerate-axis forces don't close: %v", net)
	}
	//r aligned with the axis: no torque possible, everything zero
	_, pe, rf, xf, yf, sf = bt.periodic(spatial.Vec{Z: -1}, spatial.Vec{}, spatial.Vec{Z: 1}, spatial.Vec{X: 1, Z: 1})
	if pe != 0 || rf.Norm() != 0 || xf.Norm() != 0 || yf.Norm() != 0 || sf.Norm() != 0 {
		Te.Error("aligned-arm torsion should be all zeros")
	}
}

func TestStretchEnergyHelper(Te *testing.T) {
	bs := BondStretch{K: 300 * EnergyUnitsPerKcal, D0: 1}
	if bs.Energy(1) != 0 {
		Te.Error("stretch energy at the nominal length")
	}
	if !scalar.EqualWithinAbs(bs.Energy(1.2), 300*EnergyUnitsPerKcal*0.04, 1e-9) {
		Te.Errorf("stretch energy at 1.2: %g", bs.Energy(1.2))
	}
}
