/*
 * dump.go, part of gomm.
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
	"fmt"
	"io"
)

// Dump writes a human-readable description of the whole force field to
// w: catalogs, molecule, clusters, bodies, and the topological caches
// as they currently stand; the header line says whether they are
// valid. The format is for eyeballs only and may change; don't parse
// it.
func (F *ForceField) Dump(w io.Writer) {
	fmt.Fprintf(w, "Dump of gomm ForceField:\n")
	fmt.Fprintf(w, "  NBodies=%d NClusters=%d NAtoms=%d NAtomClasses=%d NChargedAtomTypes=%d NBonds=%d\n",
		len(F.bodies), len(F.clusters), len(F.atoms), len(F.atomClasses), len(F.chargedAtomTypes), len(F.bonds))
	fmt.Fprintf(w, "  mixing rule: %v; topology realized: %v\n", F.mixingRule, F.topologicalCacheValid)
	fmt.Fprintf(w, "  scales vdw(12,13,14,15)=(%g,%g,%g,%g) coulomb=(%g,%g,%g,%g)\n",
		F.vdwScale12, F.vdwScale13, F.vdwScale14, F.vdwScale15,
		F.coulombScale12, F.coulombScale13, F.coulombScale14, F.coulombScale15)
	for i, b := range F.bodies {
		if !b.isValid() {
			continue
		}
		fmt.Fprintf(w, "  Body %d: clusterId=%d\n    allAtoms=", i, b.clusterId)
		for _, ap := range b.allAtoms {
			fmt.Fprintf(w, " %d(%g,%g,%g)", ap.AtomId, ap.Station.X, ap.Station.Y, ap.Station.Z)
		}
		fmt.Fprintf(w, "\n")
	}
	for i, c := range F.clusters {
		fmt.Fprintf(w, "  Cluster %d('%s'):\n", i, c.name)
		fmt.Fprintf(w, "    direct atoms:")
		for _, ap := range c.directAtoms {
			fmt.Fprintf(w, " %d:(%g,%g,%g)", ap.AtomId, ap.Station.X, ap.Station.Y, ap.Station.Z)
		}
		fmt.Fprintf(w, "\n    direct clusters:")
		for _, cp := range c.directClusters {
			fmt.Fprintf(w, " %d", cp.ClusterId)
		}
		fmt.Fprintf(w, "\n    all atoms:")
		for _, ap := range c.allAtoms {
			fmt.Fprintf(w, " %d:(%g,%g,%g)", ap.AtomId, ap.Station.X, ap.Station.Y, ap.Station.Z)
		}
		if c.isAttachedToBody() {
			fmt.Fprintf(w, "\n    attached to body %d\n", c.bodyId)
		} else {
			fmt.Fprintf(w, "\n    not attached to any body\n")
		}
	}
	for i, a := range F.atoms {
		F.dumpAtom(w, i, a)
	}
	for i, c := range F.atomClasses {
		if !c.isValid() {
			continue
		}
		fmt.Fprintf(w, "  AtomClass %d(%s): element=%d valence=%d vdwRad=%g vdwDepth(Kcal)=%g\n",
			i, c.Name, c.Element, c.Valence, c.VdwRadius, c.VdwWellDepth/EnergyUnitsPerKcal)
		if c.VdwDij != nil {
			fmt.Fprintf(w, "    vdwDij:")
			for _, d := range c.VdwDij {
				fmt.Fprintf(w, " %g", d)
			}
			fmt.Fprintf(w, "\n    vdwEij(Kcal):")
			for _, e := range c.VdwEij {
				fmt.Fprintf(w, " %g", e/EnergyUnitsPerKcal)
			}
			fmt.Fprintf(w, "\n")
		}
	}
	for i, t := range F.chargedAtomTypes {
		if !t.isValid() {
			continue
		}
		fmt.Fprintf(w, "  ChargedAtomType %d(%s): atomClass=%d chg=%g\n", i, t.Name, t.AtomClass, t.PartialCharge)
	}
}

func (F *ForceField) dumpAtom(w io.Writer, id int, a *Atom) {
	fmt.Fprintf(w, "  Atom %d: chargedAtomType=%d body=%d station=%g %g %g\n",
		id, a.chargedAtomType, a.bodyId, a.stationB.X, a.stationB.Y, a.stationB.Z)
	fmt.Fprintf(w, "    bond 1-2:")
	for _, b := range a.bond12 {
		fmt.Fprintf(w, " %d", b)
	}
	fmt.Fprintf(w, "\n    bond 1-3:")
	for _, p := range a.bond13 {
		fmt.Fprintf(w, " %d-%d", p[0], p[1])
	}
	fmt.Fprintf(w, "\n    bond 1-4:")
	for _, t := range a.bond14 {
		fmt.Fprintf(w, " %d-%d-%d", t[0], t[1], t[2])
	}
	fmt.Fprintf(w, "\n    bond 1-5:")
	for _, q := range a.bond15 {
		fmt.Fprintf(w, " %d-%d-%d-%d", q[0], q[1], q[2], q[3])
	}
	fmt.Fprintf(w, "\n    xbond 1-2:")
	for _, b := range a.xbond12 {
		fmt.Fprintf(w, " %d", b)
	}
	fmt.Fprintf(w, "\n    xbond 1-3:")
	for _, p := range a.xbond13 {
		fmt.Fprintf(w, " %d-%d", p[0], p[1])
	}
	fmt.Fprintf(w, "\n    xbond 1-4:")
	for _, t := range a.xbond14 {
		fmt.Fprintf(w, " %d-%d-%d", t[0], t[1], t[2])
	}
	fmt.Fprintf(w, "\n    xbond 1-5:")
	for _, q := range a.xbond15 {
		fmt.Fprintf(w, " %d-%d-%d-%d", q[0], q[1], q[2], q[3])
	}
	fmt.Fprintf(w, "\n")
}
