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

package vmath

import (
	"fmt"
	"hash/maphash"
)

// Lane encodings shared by both BVec4A representations.
const (
	laneTrue  uint32 = 0xff_ff_ff_ff
	laneFalse uint32 = 0

	// bvec4aAll is the bitmask with one bit set per lane.
	bvec4aAll uint32 = 0b1111
)

func laneBits(b bool) uint32 {
	if b {
		return laneTrue
	}
	return laneFalse
}

func checkMaskLane(i int) {
	if uint(i) >= 4 {
		panic(fmt.Sprintf("vmath: BVec4A lane index %d out of range [0, 4)", i))
	}
}

// SplatBVec4A creates a mask with all lanes set to v.
func SplatBVec4A(v bool) BVec4A {
	return NewBVec4A(v, v, v, v)
}

// BVec4AFromArray creates a mask from four booleans, lane i from a[i].
func BVec4AFromArray(a [4]bool) BVec4A {
	return NewBVec4A(a[0], a[1], a[2], a[3])
}

// BVec4AFromBitmask creates a mask where lane i is true iff bit i of bits
// is set. Bits above the fourth are ignored.
func BVec4AFromBitmask(bits uint32) BVec4A {
	return NewBVec4A(bits&1 != 0, bits&2 != 0, bits&4 != 0, bits&8 != 0)
}

// Any returns true if any of the lanes are true.
func (m BVec4A) Any() bool {
	return m.Bitmask() != 0
}

// All returns true if all the lanes are true.
func (m BVec4A) All() bool {
	return m.Bitmask() == bvec4aAll
}

// None returns true if no lane is true.
func (m BVec4A) None() bool {
	return m.Bitmask() == 0
}

// Test returns the value of lane i. It panics if i is not in [0, 4).
func (m BVec4A) Test(i int) bool {
	checkMaskLane(i)
	return (m.Bitmask()>>i)&1 != 0
}

// Set sets lane i to v. It panics if i is not in [0, 4).
func (m *BVec4A) Set(i int, v bool) {
	checkMaskLane(i)
	bits := m.Bitmask()
	if v {
		bits |= 1 << i
	} else {
		bits &^= 1 << i
	}
	*m = BVec4AFromBitmask(bits)
}

// AndAssign sets m to m.And(o).
func (m *BVec4A) AndAssign(o BVec4A) {
	*m = m.And(o)
}

// OrAssign sets m to m.Or(o).
func (m *BVec4A) OrAssign(o BVec4A) {
	*m = m.Or(o)
}

// XorAssign sets m to m.Xor(o).
func (m *BVec4A) XorAssign(o BVec4A) {
	*m = m.Xor(o)
}

// Equal reports whether m and o have the same truth value in every lane.
func (m BVec4A) Equal(o BVec4A) bool {
	return m.Bitmask() == o.Bitmask()
}

// Hash returns a hash of the mask's truth values. Masks that are Equal
// hash identically for the same seed.
func (m BVec4A) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, m.Bitmask())
}

// ToBoolArray returns the truth value of each lane.
func (m BVec4A) ToBoolArray() [4]bool {
	bits := m.Bitmask()
	return [4]bool{
		bits&1 != 0,
		bits&2 != 0,
		bits&4 != 0,
		bits&8 != 0,
	}
}

// ToUint32Array returns the bit pattern of each lane: 0 for false and
// 0xffffffff for true.
func (m BVec4A) ToUint32Array() [4]uint32 {
	bits := m.Bitmask()
	return [4]uint32{
		laneBits(bits&1 != 0),
		laneBits((bits>>1)&1 != 0),
		laneBits((bits>>2)&1 != 0),
		laneBits((bits>>3)&1 != 0),
	}
}

// String formats the mask as "[true, false, true, false]".
func (m BVec4A) String() string {
	a := m.ToBoolArray()
	return fmt.Sprintf("[%t, %t, %t, %t]", a[0], a[1], a[2], a[3])
}

// GoString formats the lane bit patterns, as in
// "BVec4A(0xffffffff, 0x0, 0xffffffff, 0x0)".
func (m BVec4A) GoString() string {
	a := m.ToUint32Array()
	return fmt.Sprintf("BVec4A(%#x, %#x, %#x, %#x)", a[0], a[1], a[2], a[3])
}
