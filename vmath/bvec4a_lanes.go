// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !amd64 || !goexperiment.simd || purego

package vmath

// BVec4A is a 4-lane vector mask, the result of comparing two 4-lane
// vectors. Every lane is either all ones (true) or all zeros (false).
//
// In builds with GOEXPERIMENT=simd on amd64 the mask is backed by a 128-bit
// SIMD register; elsewhere it is backed by a lane array. Both
// representations are 16 bytes and behave identically. The zero value is
// the all-false mask.
//
// BVec4A values must be compared with Equal rather than ==, since the
// register representation is not guaranteed to be comparable.
//
// In this build each lane is stored as a uint32 holding 0 or 0xffffffff,
// and the mask has the 4-byte alignment of uint32.
type BVec4A struct {
	lanes [4]uint32
}

// NewBVec4A creates a mask from four independent lane values.
func NewBVec4A(x, y, z, w bool) BVec4A {
	return BVec4A{lanes: [4]uint32{laneBits(x), laneBits(y), laneBits(z), laneBits(w)}}
}

// Bitmask returns a bitmask with the lowest four bits set from the lanes of
// m: lane x goes into bit 0, lane y into bit 1, and so on. It reads the
// most significant bit of each lane, like a movemask instruction.
func (m BVec4A) Bitmask() uint32 {
	return m.lanes[0]>>31 |
		(m.lanes[1]>>31)<<1 |
		(m.lanes[2]>>31)<<2 |
		(m.lanes[3]>>31)<<3
}

// And returns the lane-wise AND of m and o.
func (m BVec4A) And(o BVec4A) BVec4A {
	return BVec4A{lanes: [4]uint32{
		m.lanes[0] & o.lanes[0],
		m.lanes[1] & o.lanes[1],
		m.lanes[2] & o.lanes[2],
		m.lanes[3] & o.lanes[3],
	}}
}

// Or returns the lane-wise OR of m and o.
func (m BVec4A) Or(o BVec4A) BVec4A {
	return BVec4A{lanes: [4]uint32{
		m.lanes[0] | o.lanes[0],
		m.lanes[1] | o.lanes[1],
		m.lanes[2] | o.lanes[2],
		m.lanes[3] | o.lanes[3],
	}}
}

// Xor returns the lane-wise XOR of m and o.
func (m BVec4A) Xor(o BVec4A) BVec4A {
	return BVec4A{lanes: [4]uint32{
		m.lanes[0] ^ o.lanes[0],
		m.lanes[1] ^ o.lanes[1],
		m.lanes[2] ^ o.lanes[2],
		m.lanes[3] ^ o.lanes[3],
	}}
}

// Not returns the lane-wise complement of m, computed as all-ones AND NOT m.
func (m BVec4A) Not() BVec4A {
	return BVec4A{lanes: [4]uint32{
		laneTrue &^ m.lanes[0],
		laneTrue &^ m.lanes[1],
		laneTrue &^ m.lanes[2],
		laneTrue &^ m.lanes[3],
	}}
}

const maskBackend = MaskLanes
