/*
 * graph_test.go, part of gomm.
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

package mmgraph

import (
	"sort"
	"testing"

	mm "github.com/rmera/gomm"
)

// a 5-chain plus a lone atom
func testTopology(Te *testing.T) *Topology {
	F := mm.New()
	if err := F.DefineAtomClass(0, "CT", 6, 4, 1.9, 0.1); err != nil {
		Te.Fatal(err)
	}
	if err := F.DefineChargedAtomType(0, "CT0", 0, 0); err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 6; i++ {
		if _, err := F.AddAtom(0); err != nil {
			Te.Fatal(err)
		}
	}
	for i := 0; i < 4; i++ {
		if _, err := F.AddBond(i, i+1); err != nil {
			Te.Fatal(err)
		}
	}
	T, err := FromForceField(F)
	if err != nil {
		Te.Fatal(err)
	}
	return T
}

func TestBondDistance(Te *testing.T) {
	T := testTopology(Te)
	cases := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 4, 4},
		{2, 4, 2},
		{0, 5, -1}, //different molecules
	}
	for _, c := range cases {
		if got := T.BondDistance(c.a, c.b); got != c.want {
			Te.Errorf("BondDistance(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFragment(Te *testing.T) {
	T := testTopology(Te)
	frag := T.Fragment(2)
	sort.Ints(frag)
	want := []int{0, 1, 2, 3, 4}
	if len(frag) != len(want) {
		Te.Fatalf("fragment of atom 2: %v", frag)
	}
	for i := range want {
		if frag[i] != want[i] {
			Te.Fatalf("fragment of atom 2: %v", frag)
		}
	}
	if lone := T.Fragment(5); len(lone) != 1 || lone[0] != 5 {
		Te.Errorf("fragment of the lone atom: %v", lone)
	}
}
