/*
 * elements_test.go, part of gomm.
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
	"testing"

	"github.com/rmera/gomm/spatial"
)

func TestDefaultElements(Te *testing.T) {
	F := New()
	c, err := F.ElementInfo(6)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Symbol != "C" || c.Mass != 12.011 {
		Te.Errorf("carbon: %+v", c)
	}
	if _, err := F.ElementInfo(43); !IsKind(err, InvalidArgument) { //no technetium in the default table
		Te.Errorf("missing element: got %v", err)
	}
	if _, err := F.ElementInfo(0); !IsKind(err, InvalidArgument) {
		Te.Errorf("atomic number 0: got %v", err)
	}
}

func TestDefineElement(Te *testing.T) {
	F := New()
	if err := F.DefineElement(43, "Tc", "Technetium", 98.0); err != nil {
		Te.Fatal(err)
	}
	if err := F.DefineElement(43, "Tc", "Technetium", 98.0); !IsKind(err, AlreadyDefined) {
		Te.Errorf("redefinition: got %v", err)
	}
	if err := F.DefineElement(6, "C", "Carbon", 12.011); !IsKind(err, AlreadyDefined) {
		Te.Errorf("redefining a default: got %v", err)
	}
	if err := F.DefineElement(-2, "X", "Bogus", 1); !IsKind(err, InvalidArgument) {
		Te.Errorf("negative atomic number: got %v", err)
	}
	if err := F.DefineElement(120, "X", "Bogus", -1); !IsKind(err, InvalidArgument) {
		Te.Errorf("negative mass: got %v", err)
	}
	if err := F.SetElementColor(43, Cyan); err != nil {
		Te.Fatal(err)
	}
	e, _ := F.ElementInfo(43)
	if e.DefaultColor != Cyan {
		Te.Errorf("color not set: %+v", e.DefaultColor)
	}
}

func TestAtomQueries(Te *testing.T) {
	F := New()
	F.DefineAtomClass(0, "OW", 8, 2, 1.77, 0.152)
	F.DefineChargedAtomType(0, "OW-tip3", 0, -0.834)
	id, err := F.AddAtom(0)
	if err != nil {
		Te.Fatal(err)
	}
	if m, _ := F.AtomMass(id); m != 15.999 {
		Te.Errorf("oxygen mass: %g", m)
	}
	if r, _ := F.AtomRadius(id); r != 1.77 {
		Te.Errorf("radius: %g", r)
	}
	if col, _ := F.AtomDefaultColor(id); col != Red {
		Te.Errorf("color: %+v", col)
	}
	if el, _ := F.AtomElement(id); el != 8 {
		Te.Errorf("element: %d", el)
	}
	//body queries before attachment fail cleanly
	if _, err := F.AtomBody(id); !IsKind(err, InvalidArgument) {
		Te.Errorf("body of a free atom: got %v", err)
	}
	F.AttachAtomToBody(id, 2, spatial.Vec{Y: 0.5})
	if b, _ := F.AtomBody(id); b != 2 {
		Te.Errorf("body: %d", b)
	}
	if st, _ := F.AtomStationOnBody(id); st.Y != 0.5 {
		Te.Errorf("station: %v", st)
	}
	ct, err := F.ChargedAtomTypeInfo(0)
	if err != nil {
		Te.Fatal(err)
	}
	if ct.PartialCharge != -0.834 {
		Te.Errorf("partial charge: %g", ct.PartialCharge)
	}
	ac, err := F.AtomClassInfo(0)
	if err != nil {
		Te.Fatal(err)
	}
	if ac.Name != "OW" || ac.VdwDij != nil {
		Te.Errorf("atom class info: %+v", ac)
	}
}
