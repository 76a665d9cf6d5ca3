// Copyright 2024 the Vortice.Mathematics Go authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vortice

import "fmt"

// BoundingSphere is a bounding volume defined by a center point and a
// radius. Radius is expected to be non-negative.
type BoundingSphere struct {
	Center Vector3
	Radius float32
}

// NewBoundingSphere returns a new [BoundingSphere] with the given center and radius.
func NewBoundingSphere(center Vector3, radius float32) BoundingSphere {
	return BoundingSphere{Center: center, Radius: radius}
}

// BoundingSphereFromPoints returns a sphere containing all the given points,
// centered on their centroid with the radius reaching the farthest point.
// An empty sequence yields the zero sphere.
func BoundingSphereFromPoints(points []Vector3) BoundingSphere {
	if len(points) == 0 {
		return BoundingSphere{}
	}
	var center Vector3
	for _, p := range points {
		center.SetAdd(p)
	}
	center = center.DivScalar(float32(len(points)))
	var radiusSq float32
	for _, p := range points {
		radiusSq = Max(radiusSq, center.DistanceToSquared(p))
	}
	return BoundingSphere{Center: center, Radius: Sqrt(radiusSq)}
}

// BoundingSphereFromBox returns the tightest sphere enclosing the given box,
// centered on the box center with the radius reaching its corners.
func BoundingSphereFromBox(box BoundingBox) BoundingSphere {
	return BoundingSphere{Center: box.Center(), Radius: box.Size().Length() * 0.5}
}

// MergedBoundingSphere returns the smallest sphere containing both a and b.
func MergedBoundingSphere(a, b BoundingSphere) BoundingSphere {
	diff := b.Center.Sub(a.Center)
	dist := diff.Length()
	if dist <= a.Radius-b.Radius {
		return a
	}
	if dist <= b.Radius-a.Radius {
		return b
	}
	// neither encloses the other: span the two far poles
	radius := (dist + a.Radius + b.Radius) * 0.5
	center := a.Center
	if dist > 0 {
		center = a.Center.Add(diff.MulScalar((radius - a.Radius) / dist))
	}
	return BoundingSphere{Center: center, Radius: radius}
}

// ContainsPoint classifies the given point against this sphere:
// Contains if it lies within or on the surface, Disjoint otherwise.
func (s BoundingSphere) ContainsPoint(point Vector3) ContainmentType {
	if s.Center.DistanceToSquared(point) <= s.Radius*s.Radius {
		return Contains
	}
	return Disjoint
}

// ContainsSphere classifies other against this sphere.
func (s BoundingSphere) ContainsSphere(other BoundingSphere) ContainmentType {
	dist := s.Center.DistanceTo(other.Center)
	if s.Radius+other.Radius < dist {
		return Disjoint
	}
	if dist+other.Radius <= s.Radius {
		return Contains
	}
	return Intersects
}

// IntersectsSphere returns whether other overlaps this sphere.
func (s BoundingSphere) IntersectsSphere(other BoundingSphere) bool {
	rsum := s.Radius + other.Radius
	return s.Center.DistanceToSquared(other.Center) <= rsum*rsum
}

// IntersectsBox returns whether the given box overlaps this sphere.
func (s BoundingSphere) IntersectsBox(box BoundingBox) bool {
	return box.IntersectsSphere(s)
}

// Equals returns whether this sphere has the same center and radius as other.
func (s BoundingSphere) Equals(other BoundingSphere) bool {
	return s == other
}

func (s BoundingSphere) String() string {
	return fmt.Sprintf("Center:%v Radius:%v", s.Center, s.Radius)
}
