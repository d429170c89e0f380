/*
 * realize.go, part of gomm.
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

// RealizeTopology compiles the declared topology into the caches the
// per-step computation consumes: the per-pair vdW tables on the atom
// classes, the flat atom index on each body, body and station on each
// atom, the 1-3/1-4/1-5 neighbor lists with their cross-body
// projections, and the bonded parameters bound to them.
//
// It is idempotent: once it succeeds, further calls are no-ops until
// the topology is mutated again. On failure nothing is considered
// valid and the error reports the first problem found.
func (F *ForceField) RealizeTopology() error {
	if F.topologicalCacheValid {
		return nil
	}
	F.invalidateAllTopologicalCacheEntries()

	//force field: combined vdW parameters for all pairs of atom
	//classes. Only the diagonal and upper triangle are filled: each
	//class holds entries for itself and all higher-numbered classes.
	for i, ic := range F.atomClasses {
		if !ic.isValid() {
			continue
		}
		n := len(F.atomClasses) - i
		ic.VdwDij = make([]float64, n)
		ic.VdwEij = make([]float64, n)
		for j := i; j < len(F.atomClasses); j++ {
			jc := F.atomClasses[j]
			if !jc.isValid() {
				continue
			}
			ic.VdwDij[j-i], ic.VdwEij[j-i] = F.applyMixingRule(
				ic.VdwRadius, jc.VdwRadius, ic.VdwWellDepth, jc.VdwWellDepth)
		}
	}

	//molecule: bodies flatten their cluster's atom placements, then
	//every placed atom is stamped with its body and station.
	for _, b := range F.bodies {
		if !b.isValid() {
			continue //unused body numbers are fine
		}
		F.realizeBody(b)
	}
	for _, a := range F.atoms {
		a.bodyId = -1
	}
	for bnum, b := range F.bodies {
		if !b.isValid() {
			continue
		}
		for _, ap := range b.allAtoms {
			a := F.atoms[ap.AtomId]
			if a.bodyId >= 0 {
				panic("cant happen: atom on two bodies survived the placement checks")
			}
			a.bodyId = bnum
			a.stationB = ap.Station
		}
	}
	for _, a := range F.atoms {
		if !a.isAttachedToBody() {
			return errorf(StructureConflict, "atom %d is not attached to any body", a.id)
		}
	}

	F.realizeBondPaths()
	F.realizeCrossBodyBonds()
	if err := F.realizeBondedParams(); err != nil {
		return errDecorate(err, "RealizeTopology")
	}

	F.topologicalCacheValid = true
	return nil
}

// invalidateAllTopologicalCacheEntries wipes every derived cache so a
// fresh realize starts from the declared state only.
func (F *ForceField) invalidateAllTopologicalCacheEntries() {
	F.topologicalCacheValid = false
	for _, a := range F.atoms {
		a.invalidateTopologicalCache()
	}
	for _, b := range F.bodies {
		if b != nil {
			b.invalidateTopologicalCache()
		}
	}
	for _, c := range F.atomClasses {
		if c.isValid() {
			c.invalidateTopologicalCache()
		}
	}
	//reattach: the cluster tree itself is declared state, so the
	//atoms' body/station stamps are rebuilt from the bodies' cluster
	//expansion above rather than kept here.
}

// TopologyRealized tells whether the topological cache is valid.
func (F *ForceField) TopologyRealized() bool { return F.topologicalCacheValid }
