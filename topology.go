/*
 * topology.go, part of gomm.
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
	"sort"

	"github.com/rmera/gomm/spatial"
)

// Atom is one atom of the molecule. Before realize it only carries its
// charged type and direct (1-2) bonds; realize fills in the body
// assignment, the longer-range neighbor lists, their cross-body
// projections and the bonded parameters bound to them.
type Atom struct {
	id              int
	chargedAtomType int

	bond12 []int

	//filled once the atom, or a cluster containing it, is attached
	//to a body
	bodyId   int
	stationB spatial.Vec

	//topological cache, rebuilt by every realize. The atom itself is
	//always the "1" so it is not stored: a bond13 entry (b,c) means
	//the path a-b-c.
	bond13 []intPair
	bond14 []intTriple
	bond15 []intQuad

	//same lists restricted to tuples with at least one atom on
	//another body. These drive both the bonded terms and the
	//nonbonded scaling masks.
	xbond12 []int
	xbond13 []intPair
	xbond14 []intTriple
	xbond15 []intQuad

	stretch []BondStretch //aligned 1:1 with xbond12
	bend    []BondBend    //aligned 1:1 with xbond13
	torsion []BondTorsion //aligned 1:1 with xbond14
}

func (a *Atom) isValid() bool { return a != nil && a.id >= 0 && a.chargedAtomType >= 0 }

func (a *Atom) isAttachedToBody() bool { return a.bodyId >= 0 }

func (a *Atom) attachToBody(body int, station spatial.Vec) {
	a.bodyId = body
	a.stationB = station
}

func (a *Atom) isBondedTo(other int) bool {
	for _, b := range a.bond12 {
		if b == other {
			return true
		}
	}
	return false
}

func (a *Atom) invalidateTopologicalCache() {
	a.bodyId = -1
	a.stationB = spatial.Vec{}
	a.bond13 = nil
	a.bond14 = nil
	a.bond15 = nil
	a.xbond12 = nil
	a.xbond13 = nil
	a.xbond14 = nil
	a.xbond15 = nil
	a.stretch = nil
	a.bend = nil
	a.torsion = nil
}

// Bond is an unordered pair of atom ids, stored lower-first.
type Bond struct {
	atoms intPair
}

// AddAtom creates a new atom of the given charged atom type and
// returns its id. Ids are dense and start at 0.
func (F *ForceField) AddAtom(chargedAtomType int) (int, error) {
	if !F.isValidChargedAtomType(chargedAtomType) {
		return -1, errorf(InvalidArgument, "charged atom type %d is undefined", chargedAtomType)
	}
	id := len(F.atoms)
	F.atoms = append(F.atoms, &Atom{id: id, chargedAtomType: chargedAtomType, bodyId: -1})
	F.invalidateTopologicalCache()
	return id, nil
}

// AddBond records a covalent bond between two existing atoms and
// returns the bond id. The pair is canonicalized lower-first; adding a
// bond that already exists returns the existing id.
func (F *ForceField) AddBond(atom1, atom2 int) (int, error) {
	if !F.isValidAtom(atom1) {
		return -1, errorf(InvalidArgument, "atom %d is undefined", atom1)
	}
	if !F.isValidAtom(atom2) {
		return -1, errorf(InvalidArgument, "atom %d is undefined", atom2)
	}
	if atom1 == atom2 {
		return -1, errorf(InvalidArgument, "atom %d cannot bond to itself", atom1)
	}
	if atom1 > atom2 {
		atom1, atom2 = atom2, atom1
	}
	a1 := F.atoms[atom1]
	a2 := F.atoms[atom2]
	if a1.isBondedTo(atom2) {
		for i, b := range F.bonds {
			if b.atoms[0] == atom1 && b.atoms[1] == atom2 {
				return i, nil
			}
		}
		panic("gomm: atom bond lists and bond table disagree") //can't happen unless the library itself is broken
	}
	F.bonds = append(F.bonds, &Bond{atoms: intPair{atom1, atom2}})
	a1.bond12 = append(a1.bond12, atom2)
	a2.bond12 = append(a2.bond12, atom1)
	F.invalidateTopologicalCache()
	return len(F.bonds) - 1, nil
}

// realizeBondPaths chases the bond graph outward from every atom,
// recording each reachable atom at its shortest bond-graph distance
// only, up to 1-5. The expansion is breadth-first: the 1-3 list is
// built from the direct bonds of the 1-2 atoms, skipping anything
// already seen, and so on one hop at a time.
func (F *ForceField) realizeBondPaths() {
	for anum, a := range F.atoms {
		sort.Ints(a.bond12)

		seen := make(map[int]bool, 4*len(a.bond12)+1)
		seen[anum] = true
		for _, b := range a.bond12 {
			seen[b] = true
		}

		a.bond13 = nil
		for _, b := range a.bond12 {
			for _, c := range F.atoms[b].bond12 {
				if seen[c] {
					continue //there was already a shorter path
				}
				seen[c] = true
				a.bond13 = append(a.bond13, intPair{b, c})
			}
		}
		sort.Slice(a.bond13, func(i, j int) bool { return lessPair(a.bond13[i], a.bond13[j]) })

		a.bond14 = nil
		for _, p := range a.bond13 {
			for _, d := range F.atoms[p[1]].bond12 {
				if seen[d] {
					continue
				}
				seen[d] = true
				a.bond14 = append(a.bond14, intTriple{p[0], p[1], d})
			}
		}
		sort.Slice(a.bond14, func(i, j int) bool { return lessTriple(a.bond14[i], a.bond14[j]) })

		a.bond15 = nil
		for _, t := range a.bond14 {
			for _, e := range F.atoms[t[2]].bond12 {
				if seen[e] {
					continue
				}
				seen[e] = true
				a.bond15 = append(a.bond15, intQuad{t[0], t[1], t[2], e})
			}
		}
		sort.Slice(a.bond15, func(i, j int) bool { return lessQuad(a.bond15[i], a.bond15[j]) })
	}
}

// realizeCrossBodyBonds copies into the xbond lists every tuple with at
// least one atom on a body other than the owner's. Each cross-body
// bond thus shows up in the lists of both end atoms; the force loop
// processes only the copy owned by the lower-id end, but both copies
// are needed for the nonbonded scaling masks.
func (F *ForceField) realizeCrossBodyBonds() {
	for _, a := range F.atoms {
		a.xbond12 = nil
		a.xbond13 = nil
		a.xbond14 = nil
		a.xbond15 = nil
		for _, b := range a.bond12 {
			if F.atoms[b].bodyId != a.bodyId {
				a.xbond12 = append(a.xbond12, b)
			}
		}
		for _, p := range a.bond13 {
			if F.atoms[p[0]].bodyId != a.bodyId || F.atoms[p[1]].bodyId != a.bodyId {
				a.xbond13 = append(a.xbond13, p)
			}
		}
		for _, t := range a.bond14 {
			if F.atoms[t[0]].bodyId != a.bodyId || F.atoms[t[1]].bodyId != a.bodyId ||
				F.atoms[t[2]].bodyId != a.bodyId {
				a.xbond14 = append(a.xbond14, t)
			}
		}
		for _, q := range a.bond15 {
			if F.atoms[q[0]].bodyId != a.bodyId || F.atoms[q[1]].bodyId != a.bodyId ||
				F.atoms[q[2]].bodyId != a.bodyId || F.atoms[q[3]].bodyId != a.bodyId {
				a.xbond15 = append(a.xbond15, q)
			}
		}
	}
}

// realizeBondedParams binds a parameter record to every cross-body
// 1-2, 1-3 and 1-4 tuple, by canonicalized class key. A missing
// parameter aborts the whole realize.
func (F *ForceField) realizeBondedParams() error {
	for anum, a := range F.atoms {
		aclass := F.atomClassOf(anum)
		a.stretch = make([]BondStretch, len(a.xbond12))
		for i, b := range a.xbond12 {
			bs, ok := F.getBondStretch(aclass, F.atomClassOf(b))
			if !ok {
				return errorf(ParameterMissing, "no stretch parameters for atom classes (%d,%d), needed by bond %d-%d",
					aclass, F.atomClassOf(b), anum, b)
			}
			a.stretch[i] = bs
		}
		a.bend = make([]BondBend, len(a.xbond13))
		for i, p := range a.xbond13 {
			bb, ok := F.getBondBend(aclass, F.atomClassOf(p[0]), F.atomClassOf(p[1]))
			if !ok {
				return errorf(ParameterMissing, "no bend parameters for atom classes (%d,%d,%d), needed by atoms %d-%d-%d",
					aclass, F.atomClassOf(p[0]), F.atomClassOf(p[1]), anum, p[0], p[1])
			}
			a.bend[i] = bb
		}
		a.torsion = make([]BondTorsion, len(a.xbond14))
		for i, t := range a.xbond14 {
			bt, ok := F.getBondTorsion(aclass, F.atomClassOf(t[0]), F.atomClassOf(t[1]), F.atomClassOf(t[2]))
			if !ok {
				return errorf(ParameterMissing, "no torsion parameters for atom classes (%d,%d,%d,%d), needed by atoms %d-%d-%d-%d",
					aclass, F.atomClassOf(t[0]), F.atomClassOf(t[1]), F.atomClassOf(t[2]), anum, t[0], t[1], t[2])
			}
			a.torsion[i] = bt
		}
	}
	return nil
}

func lessPair(a, b intPair) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

func lessTriple(a, b intTriple) bool {
	for i := 0; i < 2; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return a[2] < b[2]
}

func lessQuad(a, b intQuad) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return a[3] < b[3]
}
