// Copyright 2024 the Vortice.Mathematics Go authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vortice

import "fmt"

// Packed vector types store several small integer lanes in one machine word
// to shrink per-vertex attribute storage. All of them share a single
// lane-parameterized encode/decode pair; the concrete types only differ in
// lane count, lane width, signedness and word width. Encoding is lossy
// (round to nearest, then saturate into the lane range, silently); decoding
// a valid word is exact.

// laneFormat describes one integer lane within a packed word.
type laneFormat struct {
	bits   uint32 // lane width in bits
	shift  uint32 // bit offset of the lane within the word
	signed bool
}

// rangeMin returns the smallest value representable in the lane.
func (l laneFormat) rangeMin() float32 {
	if l.signed {
		return -float32(int64(1) << (l.bits - 1))
	}
	return 0
}

// rangeMax returns the largest value representable in the lane.
func (l laneFormat) rangeMax() float32 {
	if l.signed {
		return float32(int64(1)<<(l.bits-1) - 1)
	}
	return float32(int64(1)<<l.bits - 1)
}

// packLane rounds v to the nearest integer, saturates it into the lane's
// representable range and merges its bit pattern into word at the lane
// offset. Out-of-range values saturate; encoding never fails.
func packLane(word uint64, l laneFormat, v float32) uint64 {
	iv := int64(Round(Clamp(v, l.rangeMin(), l.rangeMax())))
	mask := uint64(1)<<l.bits - 1
	return word | (uint64(iv)&mask)<<l.shift
}

// unpackLane extracts the lane from word, sign-extending when the lane is
// signed.
func unpackLane(word uint64, l laneFormat) int32 {
	mask := uint64(1)<<l.bits - 1
	raw := (word >> l.shift) & mask
	if l.signed && raw&(uint64(1)<<(l.bits-1)) != 0 {
		raw |= ^mask
	}
	return int32(int64(raw))
}

var (
	short2Lanes = [2]laneFormat{
		{bits: 16, shift: 0, signed: true},
		{bits: 16, shift: 16, signed: true},
	}
	short4Lanes = [4]laneFormat{
		{bits: 16, shift: 0, signed: true},
		{bits: 16, shift: 16, signed: true},
		{bits: 16, shift: 32, signed: true},
		{bits: 16, shift: 48, signed: true},
	}
	byte4Lanes = [4]laneFormat{
		{bits: 8, shift: 0, signed: false},
		{bits: 8, shift: 8, signed: false},
		{bits: 8, shift: 16, signed: false},
		{bits: 8, shift: 24, signed: false},
	}
)

// Short2 packs two signed 16-bit lanes into a 32-bit word, X in the low half.
type Short2 struct {
	PackedValue uint32
}

// NewShort2 encodes the given components into a [Short2], rounding to
// nearest and saturating into [-32768, 32767].
func NewShort2(x, y float32) Short2 {
	var w uint64
	w = packLane(w, short2Lanes[0], x)
	w = packLane(w, short2Lanes[1], y)
	return Short2{PackedValue: uint32(w)}
}

// X returns the first lane.
func (s Short2) X() int16 {
	return int16(unpackLane(uint64(s.PackedValue), short2Lanes[0]))
}

// Y returns the second lane.
func (s Short2) Y() int16 {
	return int16(unpackLane(uint64(s.PackedValue), short2Lanes[1]))
}

// Vector2 returns the lanes as a float vector.
func (s Short2) Vector2() Vector2 {
	return Vec2(float32(s.X()), float32(s.Y()))
}

func (s Short2) String() string {
	return fmt.Sprintf("(%v, %v)", s.X(), s.Y())
}

// Short4 packs four signed 16-bit lanes into a 64-bit word, X in the lowest
// 16 bits.
type Short4 struct {
	PackedValue uint64
}

// NewShort4 encodes the given components into a [Short4], rounding to
// nearest and saturating into [-32768, 32767].
func NewShort4(x, y, z, w float32) Short4 {
	var pv uint64
	pv = packLane(pv, short4Lanes[0], x)
	pv = packLane(pv, short4Lanes[1], y)
	pv = packLane(pv, short4Lanes[2], z)
	pv = packLane(pv, short4Lanes[3], w)
	return Short4{PackedValue: pv}
}

// X returns the first lane.
func (s Short4) X() int16 {
	return int16(unpackLane(s.PackedValue, short4Lanes[0]))
}

// Y returns the second lane.
func (s Short4) Y() int16 {
	return int16(unpackLane(s.PackedValue, short4Lanes[1]))
}

// Z returns the third lane.
func (s Short4) Z() int16 {
	return int16(unpackLane(s.PackedValue, short4Lanes[2]))
}

// W returns the fourth lane.
func (s Short4) W() int16 {
	return int16(unpackLane(s.PackedValue, short4Lanes[3]))
}

// Vector4 returns the lanes as a float vector.
func (s Short4) Vector4() Vector4 {
	return Vec4(float32(s.X()), float32(s.Y()), float32(s.Z()), float32(s.W()))
}

func (s Short4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", s.X(), s.Y(), s.Z(), s.W())
}

// Byte4 packs four unsigned 8-bit lanes into a 32-bit word, X in the lowest
// 8 bits.
type Byte4 struct {
	PackedValue uint32
}

// NewByte4 encodes the given components into a [Byte4], rounding to nearest
// and saturating into [0, 255].
func NewByte4(x, y, z, w float32) Byte4 {
	var pv uint64
	pv = packLane(pv, byte4Lanes[0], x)
	pv = packLane(pv, byte4Lanes[1], y)
	pv = packLane(pv, byte4Lanes[2], z)
	pv = packLane(pv, byte4Lanes[3], w)
	return Byte4{PackedValue: uint32(pv)}
}

// X returns the first lane.
func (b Byte4) X() uint8 {
	return uint8(unpackLane(uint64(b.PackedValue), byte4Lanes[0]))
}

// Y returns the second lane.
func (b Byte4) Y() uint8 {
	return uint8(unpackLane(uint64(b.PackedValue), byte4Lanes[1]))
}

// Z returns the third lane.
func (b Byte4) Z() uint8 {
	return uint8(unpackLane(uint64(b.PackedValue), byte4Lanes[2]))
}

// W returns the fourth lane.
func (b Byte4) W() uint8 {
	return uint8(unpackLane(uint64(b.PackedValue), byte4Lanes[3]))
}

// Vector4 returns the lanes as a float vector.
func (b Byte4) Vector4() Vector4 {
	return Vec4(float32(b.X()), float32(b.Y()), float32(b.Z()), float32(b.W()))
}

func (b Byte4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", b.X(), b.Y(), b.Z(), b.W())
}

// NormalizedShort2 packs two signed 16-bit lanes into a 32-bit word like
// [Short2], but represents the normalized float range [-1, 1] scaled by
// 32767.
type NormalizedShort2 struct {
	PackedValue uint32
}

// NewNormalizedShort2 encodes the given normalized components, saturating
// them into [-1, 1] before scaling.
func NewNormalizedShort2(x, y float32) NormalizedShort2 {
	var w uint64
	w = packLane(w, short2Lanes[0], Clamp(x, -1, 1)*32767)
	w = packLane(w, short2Lanes[1], Clamp(y, -1, 1)*32767)
	return NormalizedShort2{PackedValue: uint32(w)}
}

// Vector2 returns the lanes rescaled into [-1, 1]. The raw lane value
// -32768 maps to -1 as well, so the range stays symmetric.
func (s NormalizedShort2) Vector2() Vector2 {
	x := float32(unpackLane(uint64(s.PackedValue), short2Lanes[0])) / 32767
	y := float32(unpackLane(uint64(s.PackedValue), short2Lanes[1])) / 32767
	return Vec2(Max(x, -1), Max(y, -1))
}

func (s NormalizedShort2) String() string {
	return s.Vector2().String()
}
