// Copyright 2024 the Vortice.Mathematics Go authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vortice

import "fmt"

// Ray is a half-line starting at Position and extending along Direction.
// Direction does not have to be normalized; intersection distances are
// parametric multiples of it, so they are world-space distances only when it
// is a unit vector.
type Ray struct {
	Position  Vector3
	Direction Vector3
}

// NewRay returns a new [Ray] with the given position and direction.
func NewRay(position, direction Vector3) Ray {
	return Ray{Position: position, Direction: direction}
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float32) Vector3 {
	return r.Position.Add(r.Direction.MulScalar(t))
}

// IntersectsBox performs the slab-method intersection test against the given
// box and returns the nearest entry parameter along the ray, which is
// negative when the ray origin is inside the box. The second result reports
// whether the ray hits the box at all.
//
// A directional component that is exactly zero means the ray is parallel to
// that slab: the test fails right away unless the origin already lies within
// the slab on that axis. The zero case is guarded explicitly instead of
// leaning on infinity arithmetic.
func (r Ray) IntersectsBox(box BoundingBox) (float32, bool) {
	distance := float32(-MaxFloat32)
	tmax := float32(MaxFloat32)

	if r.Direction.X == 0 {
		if r.Position.X < box.Min.X || r.Position.X > box.Max.X {
			return 0, false
		}
	} else {
		inv := 1 / r.Direction.X
		t1 := (box.Min.X - r.Position.X) * inv
		t2 := (box.Max.X - r.Position.X) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		distance = Max(distance, t1)
		tmax = Min(tmax, t2)
		if distance > tmax {
			return 0, false
		}
	}

	if r.Direction.Y == 0 {
		if r.Position.Y < box.Min.Y || r.Position.Y > box.Max.Y {
			return 0, false
		}
	} else {
		inv := 1 / r.Direction.Y
		t1 := (box.Min.Y - r.Position.Y) * inv
		t2 := (box.Max.Y - r.Position.Y) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		distance = Max(distance, t1)
		tmax = Min(tmax, t2)
		if distance > tmax {
			return 0, false
		}
	}

	if r.Direction.Z == 0 {
		if r.Position.Z < box.Min.Z || r.Position.Z > box.Max.Z {
			return 0, false
		}
	} else {
		inv := 1 / r.Direction.Z
		t1 := (box.Min.Z - r.Position.Z) * inv
		t2 := (box.Max.Z - r.Position.Z) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		distance = Max(distance, t1)
		tmax = Min(tmax, t2)
		if distance > tmax {
			return 0, false
		}
	}

	// the whole overlap interval behind the origin is a miss for a half-line
	if tmax < 0 {
		return 0, false
	}
	// a zero direction vector inside the box never produced an entry parameter
	if distance == float32(-MaxFloat32) {
		distance = 0
	}
	return distance, true
}

// IntersectsSphere returns the nearest non-negative parameter at which the
// ray hits the given sphere, and whether it hits at all. A ray starting
// inside the sphere reports the exit point.
func (r Ray) IntersectsSphere(sphere BoundingSphere) (float32, bool) {
	m := r.Position.Sub(sphere.Center)
	b := m.Dot(r.Direction)
	c := m.LengthSquared() - sphere.Radius*sphere.Radius
	if c > 0 && b > 0 {
		return 0, false
	}
	a := r.Direction.LengthSquared()
	disc := b*b - a*c
	if disc < 0 || a == 0 {
		return 0, false
	}
	t := (-b - Sqrt(disc)) / a
	if t < 0 {
		t = (-b + Sqrt(disc)) / a
	}
	return t, true
}

// IntersectsPlane returns the parameter at which the ray crosses the given
// plane, and whether it crosses it at all. A ray parallel to the plane or
// pointing away from it reports no intersection.
func (r Ray) IntersectsPlane(plane Plane) (float32, bool) {
	denom := plane.Normal.Dot(r.Direction)
	if denom == 0 {
		return 0, false
	}
	t := -(plane.Normal.Dot(r.Position) + plane.D) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

func (r Ray) String() string {
	return fmt.Sprintf("Position:%v Direction:%v", r.Position, r.Direction)
}
