/*
 * forces.go, part of gomm.
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

	"github.com/rmera/gomm/spatial"
)

// BodyConfigurer supplies, each step, the rigid transform taking a
// body's frame to the ground frame. The surrounding multibody system
// implements this.
type BodyConfigurer interface {
	BodyTransform(body int) spatial.Transform
}

// AddInForcesAndEnergy evaluates the force field at the current body
// configuration, adding the potential energy into pe and a spatial
// force per body into rbForces (indexed by body id, which the caller
// zeroes at the start of the step). The topology must have been
// realized.
//
// Strategy, body by body: for each atom, emit its cross-body stretch,
// bend and torsion terms (each term once, from its lower-id end), then
// set the bonded scale masks and run the nonbonded loop against all
// higher-numbered bodies, then reset the masks.
func (F *ForceField) AddInForcesAndEnergy(conf BodyConfigurer, pe *float64, rbForces []spatial.SpatialVec) error {
	if !F.topologicalCacheValid {
		return errorf(InvalidArgument, "topology has not been realized")
	}
	if pe == nil {
		return errorf(InvalidArgument, "nil energy accumulator")
	}
	if len(rbForces) < len(F.bodies) {
		return errorf(InvalidArgument, "force accumulator holds %d bodies but %d are in use", len(rbForces), len(F.bodies))
	}

	//scale factor temps, all ones except while an atom's neighborhood
	//is being processed
	vdwScale := make([]float64, len(F.atoms))
	coulombScale := make([]float64, len(F.atoms))
	for i := range vdwScale {
		vdwScale[i] = 1
		coulombScale[i] = 1
	}

	//per-body ground transforms, fetched once
	xG := make([]spatial.Transform, len(F.bodies))
	for b, body := range F.bodies {
		if body.isValid() {
			xG[b] = conf.BodyTransform(b)
		}
	}

	for b1, body1 := range F.bodies {
		if !body1.isValid() {
			continue
		}
		xGB1 := xG[b1]
		for _, ap1 := range body1.allAtoms {
			a1num := ap1.AtomId
			a1 := F.atoms[a1num]
			a1type := F.chargedAtomTypes[a1.chargedAtomType]
			a1cnum := a1type.AtomClass
			a1class := F.atomClasses[a1cnum]
			a1StationG := xGB1.R.Apply(a1.stationB)
			a1PosG := xGB1.P.Add(a1StationG)
			q1Fac := CoulombFac * a1type.PartialCharge

			//Bonded. Each cross-body bond appears in the lists of both
			//end atoms; only the lower-id end emits it.

			//bond stretch (1-2)
			for b12, a2num := range a1.xbond12 {
				if a2num < a1num {
					continue //the other end owns this bond
				}
				a2 := F.atoms[a2num]
				b2 := a2.bodyId
				xGB2 := xG[b2]
				a2StationG := xGB2.R.Apply(a2.stationB)
				a2PosG := xGB2.P.Add(a2StationG)
				r := a2PosG.Sub(a1PosG)
				d := r.Norm()

				bs := a1.stretch[b12]
				x := d - bs.D0
				*pe += bs.K * x * x //no factor of 1/2
				var f2 spatial.Vec
				if d != 0 {
					f2 = r.Scale(-2 * bs.K * x / d)
				}
				//a zero-length bond gives no direction to push along;
				//leave the force at zero rather than spreading NaNs
				rbForces[b2] = rbForces[b2].Add(spatial.SpatialAt(a2StationG, f2))
				rbForces[b1] = rbForces[b1].Sub(spatial.SpatialAt(a1StationG, f2))
			}

			//bond bend (1-2-3), atom 2 central
			for b13, p := range a1.xbond13 {
				a2num, a3num := p[0], p[1]
				if a3num < a1num {
					continue
				}
				a2 := F.atoms[a2num]
				a3 := F.atoms[a3num]
				b2 := a2.bodyId
				b3 := a3.bodyId
				xGB2 := xG[b2]
				xGB3 := xG[b3]
				a2StationG := xGB2.R.Apply(a2.stationB)
				a3StationG := xGB3.R.Apply(a3.stationB)
				a2PosG := xGB2.P.Add(a2StationG)
				a3PosG := xGB3.P.Add(a3StationG)

				_, energy, f2, f1, f3 := a1.bend[b13].harmonic(a2PosG, a1PosG, a3PosG)
				*pe += energy
				rbForces[b1] = rbForces[b1].Add(spatial.SpatialAt(a1StationG, f1))
				rbForces[b2] = rbForces[b2].Add(spatial.SpatialAt(a2StationG, f2))
				rbForces[b3] = rbForces[b3].Add(spatial.SpatialAt(a3StationG, f3))
			}

			//bond torsion (1-2-3-4)
			for b14, t := range a1.xbond14 {
				a2num, a3num, a4num := t[0], t[1], t[2]
				if a4num < a1num {
					continue
				}
				a2 := F.atoms[a2num]
				a3 := F.atoms[a3num]
				a4 := F.atoms[a4num]
				b2 := a2.bodyId
				b3 := a3.bodyId
				b4 := a4.bodyId
				xGB2 := xG[b2]
				xGB3 := xG[b3]
				xGB4 := xG[b4]
				a2StationG := xGB2.R.Apply(a2.stationB)
				a3StationG := xGB3.R.Apply(a3.stationB)
				a4StationG := xGB4.R.Apply(a4.stationB)
				a2PosG := xGB2.P.Add(a2StationG)
				a3PosG := xGB3.P.Add(a3StationG)
				a4PosG := xGB4.P.Add(a4StationG)

				_, energy, f1, f2, f3, f4 := a1.torsion[b14].periodic(a1PosG, a2PosG, a3PosG, a4PosG)
				*pe += energy
				rbForces[b1] = rbForces[b1].Add(spatial.SpatialAt(a1StationG, f1))
				rbForces[b2] = rbForces[b2].Add(spatial.SpatialAt(a2StationG, f2))
				rbForces[b3] = rbForces[b3].Add(spatial.SpatialAt(a3StationG, f3))
				rbForces[b4] = rbForces[b4].Add(spatial.SpatialAt(a4StationG, f4))
			}

			//Nonbonded, against every atom of every higher body.
			F.scaleBondedAtoms(a1, vdwScale, coulombScale)
			for b2 := b1 + 1; b2 < len(F.bodies); b2++ {
				body2 := F.bodies[b2]
				if !body2.isValid() {
					continue
				}
				xGB2 := xG[b2]
				for _, ap2 := range body2.allAtoms {
					a2num := ap2.AtomId
					a2 := F.atoms[a2num]
					a2type := F.chargedAtomTypes[a2.chargedAtomType]
					a2cnum := a2type.AtomClass
					a2class := F.atomClasses[a2cnum]

					a2StationG := xGB2.R.Apply(a2.stationB)
					a2PosG := xGB2.P.Add(a2StationG)
					r := a2PosG.Sub(a1PosG) //from a1 to a2
					d2 := r.NormSq()

					ood := 1 / math.Sqrt(d2)
					ood2 := ood * ood

					//Coulomb
					qq := coulombScale[a2num] * q1Fac * a2type.PartialCharge
					eCoulomb := qq * ood  //scale*(1/(4*pi*e0)) * q1*q2/d
					fCoulomb := eCoulomb  //factor of 1/d^2 still missing

					//van der Waals; the lower-numbered class owns the
					//combined parameters
					var dij, eij float64
					if a1cnum <= a2cnum {
						dij = a1class.VdwDij[a2cnum-a1cnum]
						eij = a1class.VdwEij[a2cnum-a1cnum]
					} else {
						dij = a2class.VdwDij[a1cnum-a2cnum]
						eij = a2class.VdwEij[a1cnum-a2cnum]
					}
					ddij2 := dij * dij * ood2 //(dmin_ij/d)^2
					ddij6 := ddij2 * ddij2 * ddij2
					ddij12 := ddij6 * ddij6

					eijScale := vdwScale[a2num] * eij
					eVdw := eijScale * (ddij12 - 2*ddij6)
					fVdw := 12 * eijScale * (ddij12 - ddij6) //factor of 1/d^2 still missing

					fj := r.Scale((fCoulomb + fVdw) * ood2) //to apply on a2
					*pe += eCoulomb + eVdw
					rbForces[b2] = rbForces[b2].Add(spatial.SpatialAt(a2StationG, fj))
					rbForces[b1] = rbForces[b1].Sub(spatial.SpatialAt(a1StationG, fj))
				}
			}
			F.unscaleBondedAtoms(a1, vdwScale, coulombScale)
		}
	}
	return nil
}

// scaleBondedAtoms overwrites the scale temps at the indices of the
// atoms bonded 1-2 through 1-5 to a (cross-body only). The 1-4 and 1-5
// writes are skipped entirely when those factors are 1, which is the
// default, so the common case touches only the short lists.
func (F *ForceField) scaleBondedAtoms(a *Atom, vdwScale, coulombScale []float64) {
	for _, ix := range a.xbond12 {
		vdwScale[ix] = F.vdwScale12
		coulombScale[ix] = F.coulombScale12
	}
	for _, p := range a.xbond13 {
		ix := p[1] //the 2nd atom is the 1-3
		vdwScale[ix] = F.vdwScale13
		coulombScale[ix] = F.coulombScale13
	}
	if F.vdwScale14 != 1 || F.coulombScale14 != 1 {
		for _, t := range a.xbond14 {
			ix := t[2] //the 3rd atom is the 1-4
			vdwScale[ix] = F.vdwScale14
			coulombScale[ix] = F.coulombScale14
		}
	}
	if F.vdwScale15 != 1 || F.coulombScale15 != 1 {
		for _, q := range a.xbond15 {
			ix := q[3] //the 4th atom is the 1-5
			vdwScale[ix] = F.vdwScale15
			coulombScale[ix] = F.coulombScale15
		}
	}
}

// unscaleBondedAtoms puts back the 1s, touching the same indices
// scaleBondedAtoms wrote and nothing else.
func (F *ForceField) unscaleBondedAtoms(a *Atom, vdwScale, coulombScale []float64) {
	for _, ix := range a.xbond12 {
		vdwScale[ix] = 1
		coulombScale[ix] = 1
	}
	for _, p := range a.xbond13 {
		vdwScale[p[1]] = 1
		coulombScale[p[1]] = 1
	}
	if F.vdwScale14 != 1 || F.coulombScale14 != 1 {
		for _, t := range a.xbond14 {
			vdwScale[t[2]] = 1
			coulombScale[t[2]] = 1
		}
	}
	if F.vdwScale15 != 1 || F.coulombScale15 != 1 {
		for _, q := range a.xbond15 {
			vdwScale[q[3]] = 1
			coulombScale[q[3]] = 1
		}
	}
}
