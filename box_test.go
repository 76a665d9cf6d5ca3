// Copyright 2024 the Vortice.Mathematics Go authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vortice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-5

func tolAssertEqualVector3(t *testing.T, tol float64, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestBoundingBoxMetrics(t *testing.T) {
	b := NewBoundingBox(Vec3(0, 0, 0), Vec3(1, 1, 1))

	assert.Equal(t, float32(1), b.Volume())
	assert.Equal(t, float32(6), b.SurfaceArea())
	assert.Equal(t, float32(12), b.Perimeter())
	assert.Equal(t, Vec3(0.5, 0.5, 0.5), b.Center())
	assert.Equal(t, Vec3(0.5, 0.5, 0.5), b.Extent())
	assert.Equal(t, Vec3(1, 1, 1), b.Size())
	assert.Equal(t, float32(1), b.Width())
	assert.Equal(t, float32(1), b.Height())
	assert.Equal(t, float32(1), b.Depth())
}

func TestBoundingBoxContainsPoint(t *testing.T) {
	b := NewBoundingBox(Vec3(-1, -1, -1), Vec3(1, 1, 1))

	assert.Equal(t, Contains, b.ContainsPoint(Vec3(0, 0, 0)))
	assert.Equal(t, Contains, b.ContainsPoint(Vec3(1, 1, 1))) // on the face
	assert.Equal(t, Contains, b.ContainsPoint(Vec3(-1, 0, 1)))
	assert.Equal(t, Disjoint, b.ContainsPoint(Vec3(1.001, 0, 0)))
	assert.Equal(t, Disjoint, b.ContainsPoint(Vec3(0, -2, 0)))
}

func TestBoundingBoxContainsBox(t *testing.T) {
	a := NewBoundingBox(Vec3(0, 0, 0), Vec3(10, 10, 10))

	inner := NewBoundingBox(Vec3(1, 1, 1), Vec3(2, 2, 2))
	assert.Equal(t, Contains, a.ContainsBox(inner))
	assert.True(t, a.IntersectsBox(inner))

	partial := NewBoundingBox(Vec3(5, 5, 5), Vec3(15, 15, 15))
	assert.Equal(t, Intersects, a.ContainsBox(partial))
	assert.True(t, a.IntersectsBox(partial))

	// contained on two axes but poking out on the third must not be Contains
	poking := NewBoundingBox(Vec3(1, 1, 1), Vec3(2, 2, 12))
	assert.Equal(t, Intersects, a.ContainsBox(poking))

	apart := NewBoundingBox(Vec3(20, 20, 20), Vec3(30, 30, 30))
	assert.Equal(t, Disjoint, a.ContainsBox(apart))
	assert.False(t, a.IntersectsBox(apart))

	// separated on one axis only is still fully disjoint
	slid := NewBoundingBox(Vec3(1, 1, 20), Vec3(2, 2, 30))
	assert.Equal(t, Disjoint, a.ContainsBox(slid))
}

func TestBoundingBoxContainsSphere(t *testing.T) {
	b := NewBoundingBox(Vec3(-0.5, -0.5, -0.5), Vec3(0.5, 0.5, 0.5))

	// sphere pokes out on every axis but the box is inside the sphere
	s := NewBoundingSphere(Vec3(0, 0, 0), 1)
	assert.Equal(t, Intersects, b.ContainsSphere(s))
	assert.True(t, b.IntersectsSphere(s))

	big := NewBoundingBox(Vec3(-10, -10, -10), Vec3(10, 10, 10))
	assert.Equal(t, Contains, big.ContainsSphere(s))

	far := NewBoundingSphere(Vec3(10, 0, 0), 1)
	assert.Equal(t, Disjoint, b.ContainsSphere(far))
	assert.False(t, b.IntersectsSphere(far))

	touching := NewBoundingSphere(Vec3(1.5, 0, 0), 1)
	assert.Equal(t, Intersects, b.ContainsSphere(touching))
	assert.True(t, b.IntersectsSphere(touching))
}

func TestBoundingBoxNaNInputs(t *testing.T) {
	b := NewBoundingBox(Vec3(-1, -1, -1), Vec3(1, 1, 1))

	// NaN is not detected specially: every comparison against it is false,
	// so classification falls through to Disjoint/false.
	assert.Equal(t, Disjoint, b.ContainsPoint(Vec3(NaN(), 0, 0)))
	assert.Equal(t, Disjoint, b.ContainsPoint(Vec3(0, NaN(), 0)))

	nanSphere := NewBoundingSphere(Vec3(NaN(), NaN(), NaN()), 1)
	assert.False(t, b.IntersectsSphere(nanSphere))

	// ContainsSphere falls through both the Disjoint and Contains guards,
	// whose comparisons are all false for NaN, and lands on Intersects.
	assert.Equal(t, Intersects, b.ContainsSphere(nanSphere))
}

func TestBoundingBoxFromPoints(t *testing.T) {
	points := []Vector3{
		{0, 0, 0},
		{1, 2, 3},
		{-1, 5, -2},
		{0.5, -4, 1},
	}
	b := BoundingBoxFromPoints(points)

	assert.Equal(t, Vec3(-1, -4, -2), b.Min)
	assert.Equal(t, Vec3(1, 5, 3), b.Max)
	for _, p := range points {
		assert.Equal(t, Contains, b.ContainsPoint(p))
	}

	empty := BoundingBoxFromPoints(nil)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, Disjoint, empty.ContainsPoint(Vec3(0, 0, 0)))
}

func TestBoundingBoxFromSphere(t *testing.T) {
	s := NewBoundingSphere(Vec3(1, 2, 3), 2)
	b := BoundingBoxFromSphere(s)

	assert.Equal(t, Vec3(-1, 0, 1), b.Min)
	assert.Equal(t, Vec3(3, 4, 5), b.Max)
	assert.Equal(t, Contains, b.ContainsSphere(s))
}

func TestMergedBoundingBox(t *testing.T) {
	a := NewBoundingBox(Vec3(0, 0, 0), Vec3(1, 1, 1))
	b := NewBoundingBox(Vec3(-3, 2, 0.5), Vec3(-1, 4, 2))
	m := MergedBoundingBox(a, b)

	assert.Equal(t, Contains, m.ContainsBox(a))
	assert.Equal(t, Contains, m.ContainsBox(b))
	assert.Equal(t, m, a.Union(b))

	// the empty box is the identity element
	assert.Equal(t, a, MergedBoundingBox(a, EmptyBoundingBox()))
}

func TestBoundingBoxCorners(t *testing.T) {
	b := NewBoundingBox(Vec3(-1, -2, -3), Vec3(1, 2, 3))

	short := make([]Vector3, 7)
	assert.ErrorIs(t, b.Corners(short), ErrCornerBufferTooSmall)

	corners := make([]Vector3, CornerCount)
	assert.NoError(t, b.Corners(corners))
	assert.Contains(t, corners, b.Min)
	assert.Contains(t, corners, b.Max)
	refit := BoundingBoxFromPoints(corners)
	assert.Equal(t, b, refit)
}

func TestBoundingBoxIntersectsPlane(t *testing.T) {
	b := NewBoundingBox(Vec3(-1, -1, -1), Vec3(1, 1, 1))

	above := NewPlane(Vec3(0, 0, 1), 2) // z == -2
	assert.Equal(t, PlaneFront, b.IntersectsPlane(above))

	below := NewPlane(Vec3(0, 0, 1), -2) // z == 2
	assert.Equal(t, PlaneBack, b.IntersectsPlane(below))

	through := NewPlane(Vec3(0, 0, 1), 0)
	assert.Equal(t, PlaneIntersecting, b.IntersectsPlane(through))

	// flipped normal swaps front and back
	assert.Equal(t, PlaneBack, b.IntersectsPlane(NewPlane(Vec3(0, 0, -1), -2)))

	diagonal := NewPlane(Vec3(1, 1, 1).Normal(), -10)
	assert.Equal(t, PlaneBack, b.IntersectsPlane(diagonal))
}

func TestBoundingBoxTransform(t *testing.T) {
	b := NewBoundingBox(Vec3(-1, -2, -3), Vec3(1, 2, 3))

	assert.Equal(t, b, b.Transform(Identity4()))

	moved := b.Transform(NewTranslation4(10, 20, 30))
	assert.Equal(t, Vec3(9, 18, 27), moved.Min)
	assert.Equal(t, Vec3(11, 22, 33), moved.Max)

	scaled := b.Transform(NewScale4(2, 2, 2))
	assert.Equal(t, Vec3(-2, -4, -6), scaled.Min)
	assert.Equal(t, Vec3(2, 4, 6), scaled.Max)

	var rot Matrix4
	rot.SetRotationZ(Pi / 2)
	turned := b.Transform(&rot)
	tolAssertEqualVector3(t, standardTol, Vec3(-2, -1, -3), turned.Min)
	tolAssertEqualVector3(t, standardTol, Vec3(2, 1, 3), turned.Max)
}

func TestBoundingBoxTransformContainsCorners(t *testing.T) {
	b := NewBoundingBox(Vec3(-1, -2, -3), Vec3(1, 2, 3))

	var m Matrix4
	m.SetRotationY(0.7)
	m = *NewTranslation4(3, -1, 2).Mul(&m)

	refit := b.Transform(&m)
	var corners [CornerCount]Vector3
	assert.NoError(t, b.Corners(corners[:]))
	for _, c := range corners {
		tc := c.MulMatrix4AsPoint(&m)
		assert.InDelta(t, 0, refit.ClampPoint(tc).DistanceTo(tc), standardTol)
	}
}
