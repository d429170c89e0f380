/*
 * spatial.go, part of gomm.
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

//Package spatial provides the small fixed-size geometric types used
//throughout gomm: 3D vectors, rotations, rigid transforms and spatial
//(torque+force) vectors. Unlike the big coordinate matrices of a whole
//molecule, these are value types; they are meant to be cheap to copy
//and to live happily in inner loops.
package spatial

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point math errors

// Vec is a point or direction in 3D space, in whatever frame the caller
// is working on.
type Vec struct {
	X, Y, Z float64
}

// NewVec builds a Vec from a 3-element slice. It panics if the slice
// doesn't have exactly 3 elements, as this is considered a programming
// error.
func NewVec(data []float64) Vec {
	if len(data) != 3 {
		panic("spatial: NewVec requires exactly 3 elements")
	}
	return Vec{data[0], data[1], data[2]}
}

// Add returns v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns a*v.
func (v Vec) Scale(a float64) Vec {
	return Vec{a * v.X, a * v.Y, a * v.Z}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vec) Cross(w Vec) Vec {
	return Vec{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// NormSq returns the squared Euclidean norm of v. It is cheaper than
// Norm and enough for comparisons.
func (v Vec) NormSq() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean norm of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

// IsZero tells whether all components of v are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Unit returns v scaled to unit length. It panics on a zero vector;
// callers that may hand in degenerate geometry should check first or
// use Perp.
func (v Vec) Unit() Vec {
	n := v.Norm()
	if n == 0 {
		panic("spatial: Unit of a zero vector")
	}
	return v.Scale(1 / n)
}

// Perp returns a deterministic unit vector perpendicular to v: the
// coordinate axis least aligned with v is crossed against it. The
// choice is arbitrary but stable, which is all the degenerate-geometry
// fallbacks in the force kernels need.
func (v Vec) Perp() Vec {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	var axis Vec
	switch {
	case ax <= ay && ax <= az:
		axis = Vec{1, 0, 0}
	case ay <= az:
		axis = Vec{0, 1, 0}
	default:
		axis = Vec{0, 0, 1}
	}
	p := axis.Cross(v)
	n := p.Norm()
	if n <= appzero {
		//v itself is (nearly) zero, any direction will do
		return Vec{0, 0, 1}
	}
	return p.Scale(1 / n)
}

// Rotation is a 3x3 rotation matrix, row-major.
type Rotation [3][3]float64

// IdentityRot returns the identity rotation.
func IdentityRot() Rotation {
	return Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotationAboutX returns the rotation by gamma radians about the X axis.
func RotationAboutX(gamma float64) Rotation {
	s, c := math.Sin(gamma), math.Cos(gamma)
	return Rotation{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

// RotationAboutY returns the rotation by gamma radians about the Y axis.
func RotationAboutY(gamma float64) Rotation {
	s, c := math.Sin(gamma), math.Cos(gamma)
	return Rotation{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

// RotationAboutZ returns the rotation by gamma radians about the Z axis.
func RotationAboutZ(gamma float64) Rotation {
	s, c := math.Sin(gamma), math.Cos(gamma)
	return Rotation{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

// Apply returns R*v.
func (R Rotation) Apply(v Vec) Vec {
	return Vec{
		R[0][0]*v.X + R[0][1]*v.Y + R[0][2]*v.Z,
		R[1][0]*v.X + R[1][1]*v.Y + R[1][2]*v.Z,
		R[2][0]*v.X + R[2][1]*v.Y + R[2][2]*v.Z,
	}
}

// Compose returns R*S, the rotation that applies S first and R second.
func (R Rotation) Compose(S Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = R[i][0]*S[0][j] + R[i][1]*S[1][j] + R[i][2]*S[2][j]
		}
	}
	return out
}

// Transpose returns the transpose (inverse, for a proper rotation) of R.
func (R Rotation) Transpose() Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = R[j][i]
		}
	}
	return out
}

// Dense returns R as a gonum dense matrix, for interoperation with the
// rest of the gonum ecosystem.
func (R Rotation) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		R[0][0], R[0][1], R[0][2],
		R[1][0], R[1][1], R[1][2],
		R[2][0], R[2][1], R[2][2],
	})
}

// RotationFromDense builds a Rotation from a 3x3 gonum matrix. The
// matrix is not checked for orthonormality, only for shape.
func RotationFromDense(m mat.Matrix) (Rotation, error) {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return Rotation{}, Error{message: "matrix is not 3x3", deco: []string{"RotationFromDense"}}
	}
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out, nil
}

// Transform is a rigid transform: rotation R followed by translation P.
// X.Apply(v) takes a point expressed in X's "from" frame and returns it
// in the "to" frame.
type Transform struct {
	R Rotation
	P Vec
}

// IdentityTransform returns the identity rigid transform.
func IdentityTransform() Transform {
	return Transform{R: IdentityRot()}
}

// Translation returns the pure-translation transform by p.
func Translation(p Vec) Transform {
	return Transform{R: IdentityRot(), P: p}
}

// Apply returns R*v + P.
func (X Transform) Apply(v Vec) Vec {
	return X.R.Apply(v).Add(X.P)
}

// Compose returns X∘Y, the transform that applies Y first and X second.
func (X Transform) Compose(Y Transform) Transform {
	return Transform{
		R: X.R.Compose(Y.R),
		P: X.R.Apply(Y.P).Add(X.P),
	}
}

// SpatialVec is a spatial force on a rigid body: a torque about the
// body origin plus a linear force, both in the ground frame.
type SpatialVec struct {
	Torque Vec
	Force  Vec
}

// SpatialAt builds the spatial force equivalent to the point force f
// applied at station (a vector from the body origin, ground frame).
func SpatialAt(station, f Vec) SpatialVec {
	return SpatialVec{Torque: station.Cross(f), Force: f}
}

// Add returns s+t.
func (s SpatialVec) Add(t SpatialVec) SpatialVec {
	return SpatialVec{Torque: s.Torque.Add(t.Torque), Force: s.Force.Add(t.Force)}
}

// Sub returns s-t.
func (s SpatialVec) Sub(t SpatialVec) SpatialVec {
	return SpatialVec{Torque: s.Torque.Sub(t.Torque), Force: s.Force.Sub(t.Force)}
}

// Error is the error type for the spatial package, in the same
// decorate-as-you-go style of the rest of the library.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

// Decorate returns the error's decoration with deco (the name of the
// calling function) appended. The receiver is a copy, so the
// decoration stored in err itself is not changed.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
