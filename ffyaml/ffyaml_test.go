/*
 * ffyaml_test.go, part of gomm.
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

package ffyaml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	mm "github.com/rmera/gomm"
	"github.com/rmera/gomm/spatial"
)

func half() *float64 { h := 0.5; return &h }

func testLibrary() *Library {
	return &Library{
		AtomClasses: []AtomClassDef{
			{Id: 0, Name: "CT", Element: 6, Valence: 4, VdwRadius: 1.9, VdwWellDepth: 0.1094},
			{Id: 1, Name: "HC", Element: 1, Valence: 1, VdwRadius: 1.487, VdwWellDepth: 0.0157},
		},
		ChargedAtomTypes: []ChargedAtomTypeDef{
			{Id: 0, Name: "CT-03", AtomClass: 0, PartialCharge: -0.06},
			{Id: 1, Name: "HC-03", AtomClass: 1, PartialCharge: 0.02},
		},
		BondStretches: []BondStretchDef{
			{Classes: [2]int{0, 0}, Stiffness: 310, Length: 1.526},
			{Classes: [2]int{0, 1}, Stiffness: 340, Length: 1.09},
		},
		BondBends: []BondBendDef{
			{Classes: [3]int{1, 0, 1}, Stiffness: 35, Angle: 109.5},
			{Classes: [3]int{0, 0, 1}, Stiffness: 50, Angle: 109.5},
		},
		BondTorsions: []BondTorsionDef{
			{Classes: [4]int{1, 0, 0, 1}, Terms: []TorsionTermDef{{Periodicity: 3, Amplitude: 0.15, Phase: 0}}},
		},
		Scales: &ScalesDef{Vdw14: half(), Coulomb14: half()},
	}
}

func TestSaveLoadRoundtrip(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "amber-ish.yaml")
	lib := testLibrary()
	if err := Save(path, lib); err != nil {
		Te.Fatal(err)
	}
	lib2, err := Load(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(lib2.AtomClasses) != 2 || lib2.AtomClasses[1].Name != "HC" {
		Te.Errorf("atom classes mangled: %+v", lib2.AtomClasses)
	}
	if len(lib2.BondTorsions) != 1 || lib2.BondTorsions[0].Terms[0].Periodicity != 3 {
		Te.Errorf("torsions mangled: %+v", lib2.BondTorsions)
	}
	if lib2.Scales == nil || lib2.Scales.Vdw14 == nil || *lib2.Scales.Vdw14 != 0.5 {
		Te.Errorf("scales mangled: %+v", lib2.Scales)
	}
	if lib2.Scales.Vdw12 != nil {
		Te.Error("absent scale materialized on load")
	}
}

func TestApply(Te *testing.T) {
	F := mm.New()
	if err := testLibrary().Apply(F); err != nil {
		Te.Fatal(err)
	}
	//a quick end-to-end sanity check: the parameters must be usable
	//by a realize
	a, _ := F.AddAtom(0)
	b, _ := F.AddAtom(1)
	F.AddBond(a, b)
	F.AttachAtomToBody(a, 0, spatial.Vec{})
	F.AttachAtomToBody(b, 1, spatial.Vec{X: 1.09})
	if err := F.RealizeTopology(); err != nil {
		Te.Fatal(err)
	}
}

func TestApplyReportsContext(Te *testing.T) {
	lib := testLibrary()
	//a stretch referring to a class that is never defined
	lib.BondStretches = append(lib.BondStretches, BondStretchDef{Classes: [2]int{0, 9}, Stiffness: 1, Length: 1})
	F := mm.New()
	err := lib.Apply(F)
	if err == nil {
		Te.Fatal("bad library applied cleanly")
	}
	var mmErr mm.Error
	if !errors.As(err, &mmErr) || mmErr.Kind() != mm.InvalidArgument {
		Te.Errorf("expected a wrapped InvalidArgument, got %v", err)
	}
}

func TestLoadRejectsGarbage(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte(":\t this is not yaml {"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		Te.Error("garbage loaded cleanly")
	}
}
