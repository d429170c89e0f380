/*
 * params_test.go, part of gomm.
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

	"gonum.org/v1/gonum/floats/scalar"
)

// a force field with a couple of classes to hang parameters on
func testFF(Te *testing.T) *ForceField {
	F := New()
	defs := []struct {
		id      int
		name    string
		element int
		valence int
	}{
		{0, "CT", 6, 4},
		{1, "HC", 1, 1},
		{2, "OH", 8, 2},
		{3, "N3", 7, 3},
	}
	for _, d := range defs {
		if err := F.DefineAtomClass(d.id, d.name, d.element, d.valence, 1.5, 0.1); err != nil {
			Te.Fatal(err)
		}
	}
	return F
}

func TestDefineAtomClassValidation(Te *testing.T) {
	F := New()
	if err := F.DefineAtomClass(-1, "bad", 6, 4, 1.9, 0.1); !IsKind(err, InvalidArgument) {
		Te.Errorf("negative id: got %v", err)
	}
	if err := F.DefineAtomClass(0, "bad", 205, 4, 1.9, 0.1); !IsKind(err, InvalidArgument) {
		Te.Errorf("unknown element: got %v", err)
	}
	if err := F.DefineAtomClass(0, "bad", 6, -1, 1.9, 0.1); !IsKind(err, InvalidArgument) {
		Te.Errorf("negative valence: got %v", err)
	}
	if err := F.DefineAtomClass(0, "bad", 6, 4, math.NaN(), 0.1); !IsKind(err, InvalidArgument) {
		Te.Errorf("NaN radius: got %v", err)
	}
	if err := F.DefineAtomClass(0, "CT", 6, 4, 1.9, 0.1); err != nil {
		Te.Fatal(err)
	}
	if err := F.DefineAtomClass(0, "CT2", 6, 4, 1.9, 0.1); !IsKind(err, AlreadyDefined) {
		Te.Errorf("duplicate class: got %v", err)
	}
	//the failed redefinition must not have clobbered anything
	if F.atomClasses[0].Name != "CT" {
		Te.Error("failed redefinition mutated the table")
	}
}

func TestUnitConversionOnIngestion(Te *testing.T) {
	F := testFF(Te)
	if err := F.DefineBondStretch(0, 1, 340, 1.09); err != nil {
		Te.Fatal(err)
	}
	bs, ok := F.getBondStretch(0, 1)
	if !ok {
		Te.Fatal("stretch parameter not found")
	}
	if !scalar.EqualWithinAbs(bs.K, 340*EnergyUnitsPerKcal, 1e-9) {
		Te.Errorf("stretch stiffness not converted: %g", bs.K)
	}
	if bs.D0 != 1.09 {
		Te.Errorf("nominal length mangled: %g", bs.D0)
	}
	if err := F.DefineBondBend(1, 0, 1, 33, 109.5); err != nil {
		Te.Fatal(err)
	}
	bb, ok := F.getBondBend(1, 0, 1)
	if !ok {
		Te.Fatal("bend parameter not found")
	}
	if !scalar.EqualWithinAbs(bb.Theta0, 109.5*math.Pi/180, 1e-12) {
		Te.Errorf("bend angle not in radians: %g", bb.Theta0)
	}
	if err := F.DefineBondTorsion(1, 0, 0, 1, TorsionSpec{3, 0.15, 0}); err != nil {
		Te.Fatal(err)
	}
	bt, ok := F.getBondTorsion(1, 0, 0, 1)
	if !ok {
		Te.Fatal("torsion parameter not found")
	}
	if !scalar.EqualWithinAbs(bt.Terms[0].Amplitude, 0.15*EnergyUnitsPerKcal, 1e-9) {
		Te.Errorf("torsion amplitude not converted: %g", bt.Terms[0].Amplitude)
	}
}

// a parameter defined with key K must match both K and its reversal
func TestKeyCanonicalization(Te *testing.T) {
	F := testFF(Te)
	if err := F.DefineBondStretch(2, 0, 300, 1.4); err != nil {
		Te.Fatal(err)
	}
	if _, ok := F.getBondStretch(0, 2); !ok {
		Te.Error("stretch not found under reversed pair")
	}
	if err := F.DefineBondStretch(0, 2, 300, 1.4); !IsKind(err, AlreadyDefined) {
		Te.Error("reversed pair redefinition was not caught")
	}

	if err := F.DefineBondBend(0, 2, 1, 50, 108); err != nil {
		Te.Fatal(err)
	}
	if _, ok := F.getBondBend(1, 2, 0); !ok {
		Te.Error("bend not found under reversed triple")
	}
	//the middle class stays put: (0,1,2) is a different key
	if _, ok := F.getBondBend(0, 1, 2); ok {
		Te.Error("bend matched a triple with a different center")
	}

	if err := F.DefineBondTorsion(0, 1, 2, 3, TorsionSpec{2, 0.5, 180}); err != nil {
		Te.Fatal(err)
	}
	if _, ok := F.getBondTorsion(3, 2, 1, 0); !ok {
		Te.Error("torsion not found under reversed quad")
	}
	if _, ok := F.getBondTorsion(3, 1, 2, 0); ok {
		Te.Error("torsion matched a scrambled quad")
	}
}

func TestTorsionTermValidation(Te *testing.T) {
	F := testFF(Te)
	if err := F.DefineBondTorsion(0, 0, 0, 0); !IsKind(err, InvalidArgument) {
		Te.Errorf("no terms: got %v", err)
	}
	if err := F.DefineBondTorsion(0, 0, 0, 0, TorsionSpec{7, 0.1, 0}); !IsKind(err, InvalidArgument) {
		Te.Errorf("periodicity 7: got %v", err)
	}
	if err := F.DefineBondTorsion(0, 0, 0, 0, TorsionSpec{3, -0.1, 0}); !IsKind(err, InvalidArgument) {
		Te.Errorf("negative amplitude: got %v", err)
	}
	if err := F.DefineBondTorsion(0, 0, 0, 0, TorsionSpec{3, 0.1, 270}); !IsKind(err, InvalidArgument) {
		Te.Errorf("phase 270: got %v", err)
	}
	if err := F.DefineBondTorsion(0, 0, 0, 0,
		TorsionSpec{3, 0.1, 0}, TorsionSpec{3, 0.2, 0}); !IsKind(err, InvalidArgument) {
		Te.Errorf("repeated periodicity: got %v", err)
	}
	if err := F.DefineBondTorsion(0, 0, 0, 0,
		TorsionSpec{1, 0.2, 0}, TorsionSpec{2, 0.25, 180}, TorsionSpec{3, 0.18, 0}); err != nil {
		Te.Fatal(err)
	}
	bt, _ := F.getBondTorsion(0, 0, 0, 0)
	if len(bt.Terms) != 3 {
		Te.Errorf("expected 3 terms, got %d", len(bt.Terms))
	}
}

func TestScaleFactorValidation(Te *testing.T) {
	F := New()
	if err := F.SetVdw14ScaleFactor(0.5); err != nil {
		Te.Fatal(err)
	}
	for _, bad := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		if err := F.SetCoulomb15ScaleFactor(bad); !IsKind(err, InvalidArgument) {
			Te.Errorf("scale %g accepted", bad)
		}
	}
}

// All rules must reduce to (r, e) for a class paired with itself.
func TestMixingRulesSelfPair(Te *testing.T) {
	const r, e = 1.7, 0.12
	for _, rule := range []VdwMixingRule{WaldmanHagler, LorentzBerthelot, Jorgensen, HalgrenHHG, Kong} {
		rmin, emin := rule.combine(r, r, e, e)
		if !scalar.EqualWithinAbsOrRel(rmin, r, 1e-10, 1e-10) {
			Te.Errorf("%v: self-pair radius %g, want %g", rule, rmin, r)
		}
		if !scalar.EqualWithinAbsOrRel(emin, e, 1e-10, 1e-10) {
			Te.Errorf("%v: self-pair depth %g, want %g", rule, emin, e)
		}
	}
}

func TestWaldmanHaglerAgainstHandValues(Te *testing.T) {
	//hand-computed: ri=1, rj=2, ei=0.1, ej=0.2
	//r6 = (1+64)/2 = 32.5 -> r = 32.5^(1/6)
	//er6 = sqrt(0.1*1 * 0.2*64) = sqrt(1.28)
	//e = er6/r6
	rmin, emin := WaldmanHagler.combine(1, 2, 0.1, 0.2)
	wantR := math.Pow(32.5, 1.0/6.0)
	wantE := math.Sqrt(1.28) / 32.5
	if !scalar.EqualWithinAbs(rmin, wantR, 1e-12) {
		Te.Errorf("WH radius: %g want %g", rmin, wantR)
	}
	if !scalar.EqualWithinAbs(emin, wantE, 1e-12) {
		Te.Errorf("WH depth: %g want %g", emin, wantE)
	}
}

func TestLorentzBerthelotAgainstHandValues(Te *testing.T) {
	rmin, emin := LorentzBerthelot.combine(1, 2, 0.1, 0.4)
	if !scalar.EqualWithinAbs(rmin, 1.5, 1e-14) {
		Te.Errorf("LB radius: %g", rmin)
	}
	if !scalar.EqualWithinAbs(emin, 0.2, 1e-14) {
		Te.Errorf("LB depth: %g", emin)
	}
}

func TestSetVdwMixingRule(Te *testing.T) {
	F := New()
	if F.VdwMixingRule() != WaldmanHagler {
		Te.Error("default mixing rule is not Waldman-Hagler")
	}
	if err := F.SetVdwMixingRule(VdwMixingRule(99)); !IsKind(err, InvalidArgument) {
		Te.Error("bogus rule accepted")
	}
	if err := F.SetVdwMixingRule(Jorgensen); err != nil {
		Te.Fatal(err)
	}
	if F.VdwMixingRule() != Jorgensen {
		Te.Error("rule did not change")
	}
}
