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
	"math"
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecLayout(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Vec2{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(Vec3{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Vec4{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(IVec4{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(UVec4{}))
	assert.Equal(t, 3, Vec3{}.Len())
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, NewVec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, NewVec3(4, 2.5, 2), b.Div(a))
	assert.Equal(t, NewVec3(-1, -2, -3), a.Neg())
	assert.Equal(t, NewVec3(3, 4, 5), a.AddScalar(2))
	assert.Equal(t, NewVec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, SplatVec3(1), a.One())

	// Operands are values: a and b are unchanged.
	assert.Equal(t, NewVec3(1, 2, 3), a)
	assert.Equal(t, NewVec3(4, 5, 6), b)
}

func TestVecRem(t *testing.T) {
	assert.Equal(t, NewVec2(1, -1), NewVec2(7, -7).Rem(SplatVec2(3)))
	assert.Equal(t, NewVec4(0.5, 1, 0, 2), NewVec4(2.5, 4, 6, 2).Rem(NewVec4(1, 3, 2, 5)))
	assert.Equal(t, NewIVec4(1, -1, 0, 2), NewIVec4(7, -7, 6, 2).Rem(NewIVec4(3, 3, 2, 5)))
	assert.Equal(t, NewUVec4(1, 2, 0, 4), NewUVec4(7, 8, 6, 4).Rem(NewUVec4(3, 3, 2, 5)))
}

func TestVecFloatEdgeCases(t *testing.T) {
	// Division by zero follows IEEE 754.
	q := NewVec2(1, -1).Div(SplatVec2(0))
	assert.True(t, math.IsInf(float64(q.X()), 1))
	assert.True(t, math.IsInf(float64(q.Y()), -1))

	assert.Panics(t, func() { NewIVec4(1, 2, 3, 4).Div(NewIVec4(1, 0, 1, 1)) })
}

func TestVecIntWrap(t *testing.T) {
	assert.Equal(t, NewUVec4(math.MaxUint32, 0, 1, 2), NewUVec4(1, 0, math.MaxUint32, math.MaxUint32-1).Neg())
	top := SplatIVec4(math.MaxInt32)
	assert.Equal(t, SplatIVec4(math.MinInt32), top.Add(SplatIVec4(1)))
	assert.Equal(t, NewIVec4(1, 2, 0, math.MinInt32), NewIVec4(-1, 2, 0, math.MinInt32).Abs())
}

func TestVecMinMax(t *testing.T) {
	a := NewVec4(1, 5, 3, 8)
	b := NewVec4(4, 2, 3, 9)
	assert.Equal(t, NewVec4(1, 2, 3, 8), a.Min(b))
	assert.Equal(t, NewVec4(4, 5, 3, 9), a.Max(b))
	assert.Equal(t, float32(1), a.MinElement())
	assert.Equal(t, float32(8), a.MaxElement())
	assert.Equal(t, float32(17), a.ElementSum())
	assert.Equal(t, float32(120), a.ElementProduct())
}

func TestVecLength(t *testing.T) {
	v := NewVec2(3, -4)
	assert.Equal(t, float32(25), v.LengthSquared())
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, NewVec2(3, 4), v.Abs())
}

func TestVecBitwise(t *testing.T) {
	a := NewUVec4(0b1100, 0b1010, 0xff, 0)
	b := NewUVec4(0b1010, 0b1010, 0x0f, 0)
	assert.Equal(t, NewUVec4(0b1000, 0b1010, 0x0f, 0), a.And(b))
	assert.Equal(t, NewUVec4(0b1110, 0b1010, 0xff, 0), a.Or(b))
	assert.Equal(t, NewUVec4(0b0110, 0, 0xf0, 0), a.Xor(b))
	assert.Equal(t, NewUVec4(^uint32(0b1100), ^uint32(0b1010), ^uint32(0xff), math.MaxUint32), a.Not())
	assert.Equal(t, NewUVec4(0b110000, 0b101000, 0x3fc, 0), a.Shl(2))
	assert.Equal(t, NewUVec4(0b11, 0b10, 0x3f, 0), a.Shr(2))

	// Signed right shift is arithmetic.
	assert.Equal(t, NewIVec4(-4, 4, -1, 0), NewIVec4(-8, 8, -1, 1).Shr(1))
}

func TestVecCompare(t *testing.T) {
	a := NewVec4(1, 2, 3, 4)
	b := NewVec4(4, 2, 1, 4)

	assert.Equal(t, uint32(0b1010), a.CmpEq(b).Bitmask())
	assert.Equal(t, uint32(0b0101), a.CmpNe(b).Bitmask())
	assert.Equal(t, uint32(0b0001), a.CmpLt(b).Bitmask())
	assert.Equal(t, uint32(0b1011), a.CmpLe(b).Bitmask())
	assert.Equal(t, uint32(0b0100), a.CmpGt(b).Bitmask())
	assert.Equal(t, uint32(0b1110), a.CmpGe(b).Bitmask())

	// NaN compares false everywhere except !=.
	nan := float32(math.NaN())
	n := NewVec4(nan, 0, 0, 0)
	assert.False(t, n.CmpEq(n).Test(0))
	assert.True(t, n.CmpNe(n).Test(0))

	assert.True(t, NewIVec4(-1, 0, 1, 2).CmpLt(SplatIVec4(0)).Equal(NewBVec4A(true, false, false, false)))
	assert.True(t, NewUVec4(math.MaxUint32, 0, 1, 2).CmpGt(SplatUVec4(1)).Equal(NewBVec4A(true, false, false, true)))
}

func TestVecSelect(t *testing.T) {
	m := NewBVec4A(true, false, true, false)
	assert.Equal(t, NewVec4(1, 20, 3, 40), SelectVec4(m, NewVec4(1, 2, 3, 4), NewVec4(10, 20, 30, 40)))
	assert.Equal(t, NewIVec4(-1, 2, -3, 4), SelectIVec4(m.Not().Not(), NewIVec4(-1, -2, -3, -4), NewIVec4(1, 2, 3, 4)))
	assert.Equal(t, SplatUVec4(7), SelectUVec4(SplatBVec4A(false), SplatUVec4(1), SplatUVec4(7)))
}

func TestVecElem(t *testing.T) {
	v := NewVec3(1, 2, 3)
	*v.Elem(1) = 20
	assert.Equal(t, NewVec3(1, 20, 3), v)
	assert.Equal(t, float32(3), v.Z())
	assert.Equal(t, [3]float32{1, 20, 3}, v.ToArray())
	assert.Panics(t, func() { v.Elem(3) })
}

func TestVecFormat(t *testing.T) {
	assert.Equal(t, "[1, 2.5, -3]", NewVec3(1, 2.5, -3).String())
	assert.Equal(t, "Vec3(1, 2.5, -3)", NewVec3(1, 2.5, -3).GoString())
	assert.Equal(t, "[1, -2, 3, -4]", NewIVec4(1, -2, 3, -4).String())
	assert.Equal(t, "UVec4(1, 2, 3, 4)", NewUVec4(1, 2, 3, 4).GoString())
	assert.Equal(t, "[0, 0]", Vec2{}.String())
}

func TestVecComparable(t *testing.T) {
	seen := map[Vec3]int{}
	seen[NewVec3(1, 2, 3)]++
	seen[NewVec3(1, 2, 3)]++
	seen[Vec3{}]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[NewVec3(1, 2, 3)])
}

func TestSumProduct(t *testing.T) {
	vals := []Vec3{NewVec3(1, 2, 3), NewVec3(4, 5, 6), NewVec3(-1, 1, 0.5)}
	vs := []*Vec3{&vals[0], &vals[1], &vals[2]}
	assert.Equal(t, NewVec3(4, 8, 9.5), Sum(slices.Values(vs)))
	assert.Equal(t, NewVec3(-4, 10, 9), Product(slices.Values(vs)))

	var none []*IVec4
	assert.Equal(t, IVec4{}, Sum(slices.Values(none)))
	assert.Equal(t, SplatIVec4(1), Product(slices.Values(none)))
}

func TestVecAllocs(t *testing.T) {
	a := NewVec4(1, 2, 3, 4)
	b := NewVec4(4, 3, 2, 1)
	var sink Vec4
	allocs := testing.AllocsPerRun(100, func() {
		sink = SelectVec4(a.CmpLt(b), a.Add(b), a.Mul(b).Rem(b))
	})
	require.Zero(t, allocs)
	_ = sink
}
