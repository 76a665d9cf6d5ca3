// Copyright 2024 the Vortice.Mathematics Go authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vortice

import "fmt"

// Plane is a plane in implicit signed-distance form: a point P is on the
// plane when Dot(Normal, P) + D == 0, in front of it when the expression is
// positive and behind it when negative.
type Plane struct {
	Normal Vector3
	D      float32
}

// NewPlane returns a new [Plane] with the given normal and distance.
func NewPlane(normal Vector3, d float32) Plane {
	return Plane{Normal: normal, D: d}
}

// PlaneFromPoints returns the plane through the three given points, with the
// normal oriented by their counter-clockwise winding.
func PlaneFromPoints(a, b, c Vector3) Plane {
	normal := b.Sub(a).Cross(c.Sub(a)).Normal()
	return Plane{Normal: normal, D: -normal.Dot(a)}
}

// Normalized returns this plane with its normal scaled to unit length and D
// rescaled to keep the same point set.
func (p Plane) Normalized() Plane {
	length := p.Normal.Length()
	if length == 0 {
		return p
	}
	inv := 1 / length
	return Plane{Normal: p.Normal.MulScalar(inv), D: p.D * inv}
}

// DistanceToPoint returns the signed distance from the plane to the given
// point: positive in front, negative behind. The distance is Euclidean only
// when the normal is unit length.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.Normal.Dot(point) + p.D
}

// ClassifyPoint returns which side of the plane the given point lies on,
// with points exactly on the plane reported as intersecting.
func (p Plane) ClassifyPoint(point Vector3) PlaneIntersectionType {
	d := p.DistanceToPoint(point)
	if d > 0 {
		return PlaneFront
	}
	if d < 0 {
		return PlaneBack
	}
	return PlaneIntersecting
}

func (p Plane) String() string {
	return fmt.Sprintf("Normal:%v D:%v", p.Normal, p.D)
}
