// Copyright 2024 the Vortice.Mathematics Go authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vortice

// ContainmentType describes how one bounding volume contains another:
// not at all, partially, or entirely.
type ContainmentType int32

const (
	// Disjoint means the two bounding volumes do not overlap at all.
	Disjoint ContainmentType = iota

	// Intersects means the two bounding volumes partially overlap.
	Intersects

	// Contains means one bounding volume entirely encloses the other.
	Contains

	ContainmentTypeN
)

func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Intersects:
		return "Intersects"
	case Contains:
		return "Contains"
	}
	return "Unknown"
}

// PlaneIntersectionType describes the relation of a bounding volume to a plane.
type PlaneIntersectionType int32

const (
	// PlaneFront means the volume lies entirely in the positive half-space of the plane.
	PlaneFront PlaneIntersectionType = iota

	// PlaneBack means the volume lies entirely in the negative half-space of the plane.
	PlaneBack

	// PlaneIntersecting means the plane cuts through the volume.
	PlaneIntersecting

	PlaneIntersectionTypeN
)

func (p PlaneIntersectionType) String() string {
	switch p {
	case PlaneFront:
		return "Front"
	case PlaneBack:
		return "Back"
	case PlaneIntersecting:
		return "Intersecting"
	}
	return "Unknown"
}
