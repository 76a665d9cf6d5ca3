// Copyright 2024 the Vortice.Mathematics Go authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vortice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Ops(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)

	assert.Equal(t, Vec3(5, -3, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, Vec3(4, -10, 18), a.Mul(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())

	assert.Equal(t, float32(12), a.Dot(b)) // 4 - 10 + 18
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assert.Equal(t, float32(25), Vec3(3, 4, 0).LengthSquared())
	assert.InDelta(t, 1, b.Normal().Length(), standardTol)

	assert.Equal(t, Vec3(1, -5, 3), a.Min(b))
	assert.Equal(t, Vec3(4, 2, 6), a.Max(b))
	assert.Equal(t, Vec3(1, 4, 5), Vec3(1, 4, -5).Abs())
}

func TestVector3Clamp(t *testing.T) {
	min := Vec3(0, 0, 0)
	max := Vec3(1, 1, 1)

	assert.Equal(t, Vec3(0.5, 0, 1), Vec3(0.5, -2, 3).Clamp(min, max))
	assert.Equal(t, Vec3(1, 1, 1), Vec3(5, 5, 5).Clamp(min, max))
	assert.Equal(t, Vec3(0.25, 0.5, 0.75), Vec3(0.25, 0.5, 0.75).Clamp(min, max))
}

func TestVector3Distance(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 6, 3)

	assert.Equal(t, float32(5), a.DistanceTo(b))
	assert.Equal(t, float32(25), a.DistanceToSquared(b))
	assert.Equal(t, float32(0), a.DistanceTo(a))
}

func TestVector3Lerp(t *testing.T) {
	a := Vec3(0, 0, 0)
	b := Vec3(10, -10, 4)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec3(5, -5, 2), a.Lerp(b, 0.5))
}

func TestVector2Ops(t *testing.T) {
	a := Vec2(3, 4)

	assert.Equal(t, float32(5), a.Length())
	n := a.Normal()
	assert.InDelta(t, 0.6, n.X, standardTol)
	assert.InDelta(t, 0.8, n.Y, standardTol)
	assert.Equal(t, float32(11), a.Dot(Vec2(1, 2)))
	assert.Equal(t, Vec2(1, 2), Vec2(0.6, 1.8).Round())
	assert.Equal(t, Vec2(3, 2), a.Min(Vec2(5, 2)))
	assert.Equal(t, Vec2(5, 4), a.Max(Vec2(5, 2)))
}

func TestVector4Homogeneous(t *testing.T) {
	v := Vec4(2, 4, 6, 2)
	assert.Equal(t, Vec3(1, 2, 3), v.PerspDiv())

	p := Vector4FromVector3(Vec3(1, 2, 3), 1)
	assert.Equal(t, Vec4(1, 2, 3, 1), p)

	moved := p.MulMatrix4(NewTranslation4(10, 20, 30))
	assert.Equal(t, Vec4(11, 22, 33, 1), moved)
}
