/*
 * doc.go, part of gomm.
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

/*Package mm is the main package of the gomm library. It implements a
classical molecular-mechanics force field for a multibody dynamics
engine: atoms, partitioned onto rigid bodies through a hierarchy of
rigid clusters, interact through bonded (stretch, bend, torsion) and
nonbonded (Coulomb, Lennard-Jones 12-6) terms, and the resulting
atomic forces are handed to the multibody side as one spatial force
per rigid body.


	**gomm Capabilities**

    Declarative construction: elements, atom classes, charged atom
	types, harmonic stretch/bend and periodic torsion parameters,
	atoms, bonds, clusters, body attachments.

    A realize pipeline that compiles the declared topology once:
	per-pair van der Waals tables by combining rule (Waldman-Hagler
	by default), shortest-path 1-3/1-4/1-5 neighbor lists, cross-body
	interaction lists, a flat atoms-per-body index.

    A per-step kernel that adds potential energy and per-body spatial
	forces into caller-owned accumulators, with 1-2/1-3/1-4/1-5
	nonbonded scaling.

    Composite mass properties (mass, center of mass, inertia) of any
	cluster.

    A human-readable dump of everything.

The library uses a consistent internal unit set: length A, mass Da,
time ps, charge e; energies come out in Da-A^2/ps^2. Parameters are
taken in the usual kcal/mol and degree units and converted on
ingestion.

Subpackages provide the small spatial types (spatial), a gonum graph
view of the bond topology (mmgraph), energy-profile plotting (mmplot),
YAML parameter libraries (ffyaml) and a compressed energy/force
trajectory recorder (enetraj).

Nonbonded cutoffs, periodic boundary conditions and implicit-solvent
models are out of scope; so is the multibody integrator itself, which
is only seen through the BodyConfigurer interface.
*/
package mm
