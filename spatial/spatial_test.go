/*
 * spatial_test.go, part of gomm.
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

package spatial

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-12

func vecsClose(a, b Vec, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func TestVecOps(Te *testing.T) {
	v := Vec{1, 2, 3}
	w := Vec{-2, 0.5, 4}
	if got := v.Add(w); !vecsClose(got, Vec{-1, 2.5, 7}, tol) {
		Te.Errorf("Add: got %v", got)
	}
	if got := v.Sub(w); !vecsClose(got, Vec{3, 1.5, -1}, tol) {
		Te.Errorf("Sub: got %v", got)
	}
	if got := v.Dot(w); !scalar.EqualWithinAbs(got, -2+1+12, tol) {
		Te.Errorf("Dot: got %v", got)
	}
	//cross product is perpendicular to both arguments
	c := v.Cross(w)
	if !scalar.EqualWithinAbs(c.Dot(v), 0, tol) || !scalar.EqualWithinAbs(c.Dot(w), 0, tol) {
		Te.Errorf("Cross not perpendicular: %v", c)
	}
	if !scalar.EqualWithinAbs(Vec{3, 4, 0}.Norm(), 5, tol) {
		Te.Error("Norm of (3,4,0) is not 5")
	}
}

func TestPerp(Te *testing.T) {
	for _, v := range []Vec{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 2, 3}, {-5, 0.001, 2}} {
		p := v.Perp()
		if !scalar.EqualWithinAbs(p.Norm(), 1, 1e-10) {
			Te.Errorf("Perp of %v is not unit: %v", v, p)
		}
		if !scalar.EqualWithinAbs(p.Dot(v), 0, 1e-10) {
			Te.Errorf("Perp of %v is not perpendicular: %v", v, p)
		}
	}
	//even a zero vector gets some unit direction
	if !scalar.EqualWithinAbs((Vec{}).Perp().Norm(), 1, tol) {
		Te.Error("Perp of zero vector is not unit")
	}
}

func TestRotation(Te *testing.T) {
	R := RotationAboutZ(math.Pi / 2)
	got := R.Apply(Vec{1, 0, 0})
	if !vecsClose(got, Vec{0, 1, 0}, 1e-12) {
		Te.Errorf("90 deg rotation about z of x-hat: got %v", got)
	}
	//composition against a single rotation by the summed angle
	R2 := RotationAboutZ(math.Pi / 6).Compose(RotationAboutZ(math.Pi / 3))
	R3 := RotationAboutZ(math.Pi / 2)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(R2[i][j], R3[i][j], 1e-12) {
				Te.Errorf("rotation composition mismatch at %d,%d", i, j)
			}
		}
	}
	//transpose undoes
	back := R.Transpose().Apply(got)
	if !vecsClose(back, Vec{1, 0, 0}, 1e-12) {
		Te.Errorf("transpose didn't invert: got %v", back)
	}
}

func TestRotationDenseRoundtrip(Te *testing.T) {
	R := RotationAboutY(0.73)
	R2, err := RotationFromDense(R.Dense())
	if err != nil {
		Te.Fatal(err)
	}
	if R != R2 {
		Te.Errorf("dense roundtrip changed the rotation: %v vs %v", R, R2)
	}
}

func TestTransformCompose(Te *testing.T) {
	//X∘Y applied to v must equal X applied to (Y applied to v)
	X := Transform{R: RotationAboutZ(0.3), P: Vec{1, -2, 0.5}}
	Y := Transform{R: RotationAboutX(1.1), P: Vec{0, 3, -1}}
	v := Vec{0.2, 0.4, -0.8}
	direct := X.Apply(Y.Apply(v))
	composed := X.Compose(Y).Apply(v)
	if !vecsClose(direct, composed, 1e-12) {
		Te.Errorf("compose mismatch: %v vs %v", direct, composed)
	}
}

func TestSpatialAt(Te *testing.T) {
	s := SpatialAt(Vec{0, 1, 0}, Vec{1, 0, 0})
	//torque = station x force = (0,1,0)x(1,0,0) = (0,0,-1)
	if !vecsClose(s.Torque, Vec{0, 0, -1}, tol) || !vecsClose(s.Force, Vec{1, 0, 0}, tol) {
		Te.Errorf("SpatialAt: got %+v", s)
	}
}
