/*
 * kernels.go, part of gomm.
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

//The geometry kernels below take positions in the ground frame and
//return the deformation coordinate, the potential energy and a force
//per atom. They never produce NaN: degenerate configurations get a
//deterministic fallback direction, or zero force where no torque can
//be produced at all. Whatever happens, the returned forces sum to
//zero.

// harmonic computes the bond-bend term for a central atom at cG bonded
// to atoms at rG and sG: theta is the r-c-s angle, the energy is
// K*(theta-Theta0)^2 and the forces rotate r and s about the plane
// normal while the central atom takes the balancing reaction.
func (bb BondBend) harmonic(cG, rG, sG spatial.Vec) (theta, pe float64, cf, rf, sf spatial.Vec) {
	r := rG.Sub(cG)
	s := sG.Sub(cG)
	rr := r.NormSq()
	ss := s.NormSq()
	if rr == 0 || ss == 0 {
		//an end atom sits on the central one; no angle is defined
		//and no finite force can fix that
		return 0, 0, spatial.Vec{}, spatial.Vec{}, spatial.Vec{}
	}

	rs := r.Dot(s)
	rxs := r.Cross(s)
	rxslen := rxs.Norm()
	theta = math.Atan2(rxslen, rs)
	bend := theta - bb.Theta0
	pe = bb.K * bend * bend //no factor of 1/2

	//p is a unit vector perpendicular to r and s. If they are
	//colinear there is no unique bending plane, so we pick a stable
	//companion direction; the energy is unaffected, only the
	//direction of the restoring push.
	var p spatial.Vec
	if rxslen != 0 {
		p = rxs.Scale(1 / rxslen)
	} else {
		p = r.Perp()
	}
	ffac := -2 * bb.K * bend
	rf = r.Cross(p).Scale(ffac / rr)
	sf = p.Cross(s).Scale(ffac / ss)
	cf = rf.Add(sf).Scale(-1) //makes the net force zero
	return theta, pe, cf, rf, sf
}

// periodic computes the torsion term for atoms bonded r-x-y-s, with
// rotation about the axis v=y-x. The torsion angle follows the polymer
// convention: theta=0 when r and s are cis across the axis, positive
// under the right-hand rule about v. The energy is the Fourier sum
// sum_n A_n*(1+cos(n*theta - theta0_n)) and the scalar torque about
// the axis is distributed over the four atoms so that the net force
// and, about the axis, the net torque match.
//
// This code is modeled in part after Tinker's torsion gradient
// (etors1.f).
func (bt BondTorsion) periodic(rG, xG, yG, sG spatial.Vec) (theta, pe float64, rf, xf, yf, sf spatial.Vec) {
	//all vectors point along the r->x->y->s direction
	r := xG.Sub(rG)
	s := sG.Sub(yG)
	xy := yG.Sub(xG)

	//Unit vector v along the axis, with increasingly desperate
	//fallbacks for overlapping atoms. oov==0 signals there is no
	//real axis.
	vv := xy.NormSq()
	var oov float64
	if vv != 0 {
		oov = 1 / math.Sqrt(vv)
	}
	var v spatial.Vec
	switch {
	case oov != 0:
		v = xy.Scale(oov)
	case r.Cross(s).Norm() != 0:
		v = r.Cross(s).Unit()
	default:
		v = r.Perp()
	}

	//Plane normals. v serves as the "x" axis of both planes; r and s
	//lie in them, so t=rXv and u=vXs are the normals. theta is 0 when
	//they are aligned.
	t := r.Cross(v)
	u := v.Cross(s)
	tt := t.NormSq()
	uu := u.NormSq()
	//if either r or s is aligned with the axis no torque can be
	//produced
	if tt == 0 || uu == 0 {
		return 0, 0, spatial.Vec{}, spatial.Vec{}, spatial.Vec{}, spatial.Vec{}
	}

	txu := t.Cross(u)
	ootu := 1 / math.Sqrt(tt*uu)
	cth := t.Dot(u) * ootu
	sth := v.Dot(txu) * ootu
	theta = math.Atan2(sth, cth)

	var torque float64
	for _, term := range bt.Terms {
		pe += term.Energy(theta)
		torque += term.Torque(theta)
	}

	ry := yG.Sub(rG) //from r->y
	xs := sG.Sub(xG) //from x->s
	dedt := t.Cross(v).Scale(torque / tt)
	dedu := u.Cross(v).Scale(-torque / uu)

	rf = dedt.Cross(v)
	sf = dedu.Cross(v)
	if oov == 0 {
		//no axis; at least keep the forces summing to zero
		xf = rf.Scale(-1)
		yf = sf.Scale(-1)
	} else {
		xf = ry.Cross(dedt).Add(dedu.Cross(s)).Scale(oov)
		yf = dedt.Cross(r).Add(xs.Cross(dedu)).Scale(oov)
	}
	return theta, pe, rf, xf, yf, sf
}
