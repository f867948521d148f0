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
	"hash/maphash"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allBoolArrays returns the 16 possible lane assignments, indexed by bitmask.
func allBoolArrays() [16][4]bool {
	var out [16][4]bool
	for bits := range 16 {
		for i := range 4 {
			out[bits][i] = bits&(1<<i) != 0
		}
	}
	return out
}

func TestBVec4ANew(t *testing.T) {
	tests := []struct {
		name  string
		lanes [4]bool
		want  uint32
	}{
		{"none", [4]bool{false, false, false, false}, 0b0000},
		{"x", [4]bool{true, false, false, false}, 0b0001},
		{"y", [4]bool{false, true, false, false}, 0b0010},
		{"z", [4]bool{false, false, true, false}, 0b0100},
		{"w", [4]bool{false, false, false, true}, 0b1000},
		{"xz", [4]bool{true, false, true, false}, 0b0101},
		{"all", [4]bool{true, true, true, true}, 0b1111},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBVec4A(tt.lanes[0], tt.lanes[1], tt.lanes[2], tt.lanes[3])
			assert.Equal(t, tt.want, m.Bitmask())
			assert.Equal(t, tt.lanes, m.ToBoolArray())
			assert.True(t, BVec4AFromArray(tt.lanes).Equal(m))
		})
	}
}

func TestBVec4AAnyAll(t *testing.T) {
	full := NewBVec4A(true, true, true, true)
	assert.True(t, full.All())
	assert.True(t, full.Any())
	assert.False(t, full.None())

	empty := NewBVec4A(false, false, false, false)
	assert.False(t, empty.Any())
	assert.False(t, empty.All())
	assert.True(t, empty.None())

	partial := NewBVec4A(false, true, false, false)
	assert.True(t, partial.Any())
	assert.False(t, partial.All())
}

func TestBVec4ADefault(t *testing.T) {
	var m BVec4A
	assert.Equal(t, uint32(0), m.Bitmask())
	assert.True(t, m.Equal(SplatBVec4A(false)))
	assert.Equal(t, [4]uint32{0, 0, 0, 0}, m.ToUint32Array())
}

func TestBVec4ALogicalOpsDistribute(t *testing.T) {
	arrays := allBoolArrays()
	for ai, a := range arrays {
		for bi, b := range arrays {
			ma, mb := BVec4AFromArray(a), BVec4AFromArray(b)
			abits, bbits := uint32(ai), uint32(bi)

			require.Equal(t, abits&bbits, ma.And(mb).Bitmask(), "and %v %v", a, b)
			require.Equal(t, abits|bbits, ma.Or(mb).Bitmask(), "or %v %v", a, b)
			require.Equal(t, abits^bbits, ma.Xor(mb).Bitmask(), "xor %v %v", a, b)
		}
	}
}

func TestBVec4AAssignOps(t *testing.T) {
	a := NewBVec4A(true, true, false, false)
	b := NewBVec4A(true, false, true, false)

	m := a
	m.AndAssign(b)
	assert.Equal(t, uint32(0b0001), m.Bitmask())

	m = a
	m.OrAssign(b)
	assert.Equal(t, uint32(0b0111), m.Bitmask())

	m = a
	m.XorAssign(b)
	assert.Equal(t, uint32(0b0110), m.Bitmask())
}

func TestBVec4ANot(t *testing.T) {
	m := NewBVec4A(true, false, true, false)
	assert.True(t, m.Not().Equal(NewBVec4A(false, true, false, true)))

	for bits, a := range allBoolArrays() {
		got := BVec4AFromArray(a).Not()
		require.Equal(t, ^uint32(bits)&0xf, got.Bitmask())
		// Complemented lanes must still be all-ones or all-zeros.
		for i, lane := range got.ToUint32Array() {
			require.Contains(t, []uint32{0, 0xffffffff}, lane, "lane %d", i)
		}
		require.True(t, got.Not().Equal(BVec4AFromArray(a)))
	}
}

func TestBVec4AArrays(t *testing.T) {
	for bits, a := range allBoolArrays() {
		m := BVec4AFromArray(a)
		bools := m.ToBoolArray()
		words := m.ToUint32Array()
		for i := range 4 {
			want := (m.Bitmask()>>i)&1 != 0
			require.Equal(t, want, bools[i], "bitmask %04b lane %d", bits, i)
			if want {
				require.Equal(t, uint32(0xffffffff), words[i])
			} else {
				require.Equal(t, uint32(0), words[i])
			}
		}
	}
}

func TestBVec4AFromBitmask(t *testing.T) {
	for bits := range uint32(16) {
		assert.Equal(t, bits, BVec4AFromBitmask(bits).Bitmask())
	}
	// Only the four lane bits are read.
	assert.Equal(t, uint32(0b1010), BVec4AFromBitmask(0xf0|0b1010).Bitmask())
}

func TestBVec4ATestSet(t *testing.T) {
	var m BVec4A
	m.Set(2, true)
	assert.True(t, m.Test(2))
	assert.False(t, m.Test(0))
	assert.Equal(t, uint32(0b0100), m.Bitmask())

	m.Set(0, true)
	m.Set(2, false)
	assert.Equal(t, uint32(0b0001), m.Bitmask())

	assert.Panics(t, func() { m.Test(4) })
	assert.Panics(t, func() { m.Set(-1, true) })
}

func TestBVec4AEqualHash(t *testing.T) {
	seed := maphash.MakeSeed()

	// Same truth values reached through different operator sequences.
	a := NewBVec4A(true, false, true, false)
	b := NewBVec4A(true, true, true, true).And(NewBVec4A(true, false, true, false))
	c := NewBVec4A(false, true, false, true).Not()
	d := NewBVec4A(true, true, false, false).Xor(NewBVec4A(false, true, true, false))

	for _, m := range []BVec4A{b, c, d} {
		assert.True(t, a.Equal(m))
		assert.Equal(t, a.Hash(seed), m.Hash(seed))
	}
	assert.False(t, a.Equal(a.Not()))
}

func TestBVec4AFormat(t *testing.T) {
	m := NewBVec4A(true, false, true, false)
	assert.Equal(t, "[true, false, true, false]", m.String())
	assert.Equal(t, "BVec4A(0xffffffff, 0x0, 0xffffffff, 0x0)", m.GoString())
}

func TestBVec4ALayout(t *testing.T) {
	assert.Equal(t, uintptr(16), unsafe.Sizeof(BVec4A{}))
	switch CurrentMaskBackend() {
	case MaskLanes:
		assert.Equal(t, uintptr(4), unsafe.Alignof(BVec4A{}))
	case MaskSSE:
		assert.Equal(t, uintptr(8), unsafe.Alignof(BVec4A{}))
	default:
		t.Fatalf("unknown mask backend %v", CurrentMaskBackend())
	}
}

func TestBVec4AAllocs(t *testing.T) {
	a := NewBVec4A(true, false, true, false)
	b := NewBVec4A(false, false, true, true)
	var sink uint32
	allocs := testing.AllocsPerRun(100, func() {
		sink += a.And(b).Or(a.Not()).Xor(b).Bitmask()
	})
	assert.Zero(t, allocs)
	_ = sink
}
