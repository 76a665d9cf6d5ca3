// Copyright 2024 the Vortice.Mathematics Go authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vortice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaneDistanceToPoint(t *testing.T) {
	p := NewPlane(Vec3(0, 1, 0), -2) // y == 2

	assert.Equal(t, float32(3), p.DistanceToPoint(Vec3(0, 5, 0)))
	assert.Equal(t, float32(-2), p.DistanceToPoint(Vec3(7, 0, 3)))
	assert.Equal(t, float32(0), p.DistanceToPoint(Vec3(1, 2, 1)))
}

func TestPlaneClassifyPoint(t *testing.T) {
	p := NewPlane(Vec3(0, 1, 0), -2)

	assert.Equal(t, PlaneFront, p.ClassifyPoint(Vec3(0, 5, 0)))
	assert.Equal(t, PlaneBack, p.ClassifyPoint(Vec3(0, 0, 0)))
	assert.Equal(t, PlaneIntersecting, p.ClassifyPoint(Vec3(9, 2, -4)))
}

func TestPlaneFromPoints(t *testing.T) {
	// counter-clockwise in the y == 1 plane, normal points up
	p := PlaneFromPoints(Vec3(0, 1, 0), Vec3(0, 1, 1), Vec3(1, 1, 0))

	tolAssertEqualVector3(t, standardTol, Vec3(0, 1, 0), p.Normal)
	assert.InDelta(t, -1, p.D, standardTol)
	assert.InDelta(t, 0, p.DistanceToPoint(Vec3(5, 1, 5)), standardTol)
}

func TestPlaneNormalized(t *testing.T) {
	p := NewPlane(Vec3(0, 0, 10), 20).Normalized()

	assert.Equal(t, Vec3(0, 0, 1), p.Normal)
	assert.Equal(t, float32(2), p.D)
	assert.InDelta(t, 1, p.Normal.Length(), standardTol)

	// degenerate normal stays untouched
	z := NewPlane(Vec3(0, 0, 0), 3)
	assert.Equal(t, z, z.Normalized())
}
