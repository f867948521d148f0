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

//go:build amd64 && goexperiment.simd && !purego

package vmath

import (
	"simd/archsimd"
)

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
// In this build the mask lives in one 128-bit register with four 32-bit
// lanes. Go aligns it to 8 bytes, not 16; archsimd loads and stores do not
// need 16-byte alignment.
type BVec4A struct {
	v archsimd.Int32x4
}

// NewBVec4A creates a mask from four independent lane values.
func NewBVec4A(x, y, z, w bool) BVec4A {
	lanes := [4]int32{
		int32(laneBits(x)),
		int32(laneBits(y)),
		int32(laneBits(z)),
		int32(laneBits(w)),
	}
	return BVec4A{v: archsimd.LoadInt32x4Slice(lanes[:])}
}

// Bitmask returns a bitmask with the lowest four bits set from the lanes of
// m: lane x goes into bit 0, lane y into bit 1, and so on.
//
// A lane's sign bit is its most significant bit, so comparing against zero
// and extracting the comparison mask compiles to a single movemask over
// the register.
func (m BVec4A) Bitmask() uint32 {
	var zero archsimd.Int32x4
	return uint32(m.v.Less(zero).ToBits())
}

// And returns the lane-wise AND of m and o.
func (m BVec4A) And(o BVec4A) BVec4A {
	return BVec4A{v: m.v.And(o.v)}
}

// Or returns the lane-wise OR of m and o.
func (m BVec4A) Or(o BVec4A) BVec4A {
	return BVec4A{v: m.v.Or(o.v)}
}

// Xor returns the lane-wise XOR of m and o.
func (m BVec4A) Xor(o BVec4A) BVec4A {
	return BVec4A{v: m.v.Xor(o.v)}
}

// Not returns the lane-wise complement of m, computed as all-ones AND NOT m.
// SSE has no register complement instruction.
func (m BVec4A) Not() BVec4A {
	return BVec4A{v: archsimd.BroadcastInt32x4(-1).AndNot(m.v)}
}

// Register returns the register holding the mask lanes.
func (m BVec4A) Register() archsimd.Int32x4 {
	return m.v
}

const maskBackend = MaskSSE
