// Copyright 2024 the Vortice.Mathematics Go authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vortice

import (
	"errors"
	"fmt"
)

// BoundingBox represents an axis-aligned bounding box (AABB) defined by two
// points: the point with minimum coordinates and the point with maximum
// coordinates. Boxes produced by the constructors in this package satisfy
// Min <= Max on every component; a deliberately inverted box (see
// [EmptyBoundingBox]) is tolerated by all operations.
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// CornerCount is the number of corners of a [BoundingBox].
const CornerCount = 8

// ErrCornerBufferTooSmall is returned by [BoundingBox.Corners] when the
// destination buffer has fewer than [CornerCount] slots.
var ErrCornerBufferTooSmall = errors.New("vortice: corner buffer needs at least 8 slots")

// NewBoundingBox returns a new [BoundingBox] from the given minimum and
// maximum points.
func NewBoundingBox(min, max Vector3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// EmptyBoundingBox returns the inverted sentinel box with Min at +Infinity
// and Max at -Infinity, the identity element for [MergedBoundingBox] and the
// starting state for point folds.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{Min: Vector3Scalar(Infinity), Max: Vector3Scalar(-Infinity)}
}

// IsEmpty returns true if this bounding box is inverted (max < min on any component).
func (b BoundingBox) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// BoundingBoxFromPoints returns the smallest [BoundingBox] that contains all
// the given points, folding a running componentwise min/max over the
// sequence. An empty sequence yields the inverted sentinel box of
// [EmptyBoundingBox]; that is documented behavior, not an error.
func BoundingBoxFromPoints(points []Vector3) BoundingBox {
	nb := EmptyBoundingBox()
	for _, p := range points {
		nb.Min.SetMin(p)
		nb.Max.SetMax(p)
	}
	return nb
}

// BoundingBoxFromSphere returns the tightest [BoundingBox] enclosing the
// given sphere.
func BoundingBoxFromSphere(sphere BoundingSphere) BoundingBox {
	return BoundingBox{
		Min: sphere.Center.SubScalar(sphere.Radius),
		Max: sphere.Center.AddScalar(sphere.Radius),
	}
}

// MergedBoundingBox returns the smallest [BoundingBox] containing both a and b.
func MergedBoundingBox(a, b BoundingBox) BoundingBox {
	return BoundingBox{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Union returns the union of this box with other, the smallest box containing both.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return MergedBoundingBox(b, other)
}

// Center returns the center of the bounding box.
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Extent returns the half-size of the bounding box: the vector from its
// center to its maximum point.
func (b BoundingBox) Extent() Vector3 {
	return b.Max.Sub(b.Min).MulScalar(0.5)
}

// Size returns the size of this bounding box: the vector from its minimum
// point to its maximum point.
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Width returns the extent of the box along the X axis.
func (b BoundingBox) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the extent of the box along the Y axis.
func (b BoundingBox) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// Depth returns the extent of the box along the Z axis.
func (b BoundingBox) Depth() float32 {
	return b.Max.Z - b.Min.Z
}

// Volume returns the volume of the box.
func (b BoundingBox) Volume() float32 {
	sz := b.Size()
	return sz.X * sz.Y * sz.Z
}

// SurfaceArea returns the total area of the six faces of the box.
func (b BoundingBox) SurfaceArea() float32 {
	sz := b.Size()
	return 2 * (sz.X*sz.Y + sz.X*sz.Z + sz.Y*sz.Z)
}

// Perimeter returns the total length of the twelve edges of the box.
func (b BoundingBox) Perimeter() float32 {
	sz := b.Size()
	return 4 * (sz.X + sz.Y + sz.Z)
}

// ClampPoint returns the given point clamped inside this box.
func (b BoundingBox) ClampPoint(point Vector3) Vector3 {
	return point.Clamp(b.Min, b.Max)
}

// Corners writes the eight corners of the box into dst, which must have at
// least [CornerCount] slots. It returns [ErrCornerBufferTooSmall] without
// writing anything if dst is too small. The caller supplies the buffer so
// per-frame loops can enumerate corners without allocating.
func (b BoundingBox) Corners(dst []Vector3) error {
	if len(dst) < CornerCount {
		return ErrCornerBufferTooSmall
	}
	dst[0] = Vec3(b.Min.X, b.Max.Y, b.Max.Z)
	dst[1] = Vec3(b.Max.X, b.Max.Y, b.Max.Z)
	dst[2] = Vec3(b.Max.X, b.Min.Y, b.Max.Z)
	dst[3] = Vec3(b.Min.X, b.Min.Y, b.Max.Z)
	dst[4] = Vec3(b.Min.X, b.Max.Y, b.Min.Z)
	dst[5] = Vec3(b.Max.X, b.Max.Y, b.Min.Z)
	dst[6] = Vec3(b.Max.X, b.Min.Y, b.Min.Z)
	dst[7] = Vec3(b.Min.X, b.Min.Y, b.Min.Z)
	return nil
}

// ContainsPoint classifies the given point against this box: Contains if the
// point lies within or on all six faces, otherwise Disjoint. A point can
// never partially overlap a box, so Intersects is not a possible result.
func (b BoundingBox) ContainsPoint(point Vector3) ContainmentType {
	if b.Min.X <= point.X && point.X <= b.Max.X &&
		b.Min.Y <= point.Y && point.Y <= b.Max.Y &&
		b.Min.Z <= point.Z && point.Z <= b.Max.Z {
		return Contains
	}
	return Disjoint
}

// ContainsBox classifies other against this box: Disjoint if the boxes are
// separated on any axis, Contains if this box fully encloses other on every
// axis, Intersects otherwise.
func (b BoundingBox) ContainsBox(other BoundingBox) ContainmentType {
	if b.Max.X < other.Min.X || b.Min.X > other.Max.X {
		return Disjoint
	}
	if b.Max.Y < other.Min.Y || b.Min.Y > other.Max.Y {
		return Disjoint
	}
	if b.Max.Z < other.Min.Z || b.Min.Z > other.Max.Z {
		return Disjoint
	}
	if b.Min.X <= other.Min.X && other.Max.X <= b.Max.X &&
		b.Min.Y <= other.Min.Y && other.Max.Y <= b.Max.Y &&
		b.Min.Z <= other.Min.Z && other.Max.Z <= b.Max.Z {
		return Contains
	}
	return Intersects
}

// ContainsSphere classifies the given sphere against this box. The center is
// clamped into the box and the squared distance to the clamped point decides
// Disjoint; Contains requires the center to clear every face by at least the
// radius and every axis extent to exceed the radius.
func (b BoundingBox) ContainsSphere(sphere BoundingSphere) ContainmentType {
	clamped := sphere.Center.Clamp(b.Min, b.Max)
	distSq := sphere.Center.DistanceToSquared(clamped)
	r := sphere.Radius
	if distSq > r*r {
		return Disjoint
	}
	if b.Min.X+r <= sphere.Center.X && sphere.Center.X <= b.Max.X-r && b.Max.X-b.Min.X > r &&
		b.Min.Y+r <= sphere.Center.Y && sphere.Center.Y <= b.Max.Y-r && b.Max.Y-b.Min.Y > r &&
		b.Min.Z+r <= sphere.Center.Z && sphere.Center.Z <= b.Max.Z-r && b.Max.Z-b.Min.Z > r {
		return Contains
	}
	return Intersects
}

// IntersectsBox returns whether other overlaps this box, using the six
// splitting planes to rule out intersection.
func (b BoundingBox) IntersectsBox(other BoundingBox) bool {
	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y ||
		other.Max.Z < b.Min.Z || other.Min.Z > b.Max.Z {
		return false
	}
	return true
}

// IntersectsSphere returns whether the given sphere overlaps this box,
// by measuring from the sphere center to its clamped image inside the box.
func (b BoundingBox) IntersectsSphere(sphere BoundingSphere) bool {
	clamped := sphere.Center.Clamp(b.Min, b.Max)
	return sphere.Center.DistanceToSquared(clamped) <= sphere.Radius*sphere.Radius
}

// IntersectsPlane classifies this box against the given plane by testing the
// two corners that are extreme along the plane normal: if even the most
// negative corner is in front the whole box is, and symmetrically for back.
func (b BoundingBox) IntersectsPlane(plane Plane) PlaneIntersectionType {
	var pos, neg Vector3
	if plane.Normal.X >= 0 {
		pos.X = b.Max.X
		neg.X = b.Min.X
	} else {
		pos.X = b.Min.X
		neg.X = b.Max.X
	}
	if plane.Normal.Y >= 0 {
		pos.Y = b.Max.Y
		neg.Y = b.Min.Y
	} else {
		pos.Y = b.Min.Y
		neg.Y = b.Max.Y
	}
	if plane.Normal.Z >= 0 {
		pos.Z = b.Max.Z
		neg.Z = b.Min.Z
	} else {
		pos.Z = b.Min.Z
		neg.Z = b.Max.Z
	}
	if plane.Normal.Dot(neg)+plane.D > 0 {
		return PlaneFront
	}
	if plane.Normal.Dot(pos)+plane.D < 0 {
		return PlaneBack
	}
	return PlaneIntersecting
}

// Transform returns this box re-fitted to remain axis-aligned under the
// given affine transform, without enumerating corners: the center is
// transformed directly and the new half-extent is the absolute linear part
// applied to the old half-extent. This is the exact tight bound for
// rotation, scale and translation; under skew or projective components it is
// a safe over-approximation (the result always contains the transformed box
// but may be wider than necessary).
func (b BoundingBox) Transform(m *Matrix4) BoundingBox {
	center := b.Center().MulMatrix4AsPoint(m)
	extent := b.Extent()
	ne := Vec3(
		Abs(m[0])*extent.X+Abs(m[4])*extent.Y+Abs(m[8])*extent.Z,
		Abs(m[1])*extent.X+Abs(m[5])*extent.Y+Abs(m[9])*extent.Z,
		Abs(m[2])*extent.X+Abs(m[6])*extent.Y+Abs(m[10])*extent.Z,
	)
	return BoundingBox{Min: center.Sub(ne), Max: center.Add(ne)}
}

// Equals returns whether this box has the same Min and Max as other.
func (b BoundingBox) Equals(other BoundingBox) bool {
	return b == other
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("Min:%v Max:%v", b.Min, b.Max)
}
