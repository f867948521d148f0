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

package flavor

import (
	"hash/maphash"
	"unsafe"

	"github.com/ajroetker/vecflavor/vmath"
)

// Vector is a backing vector of type B tagged with flavor F.
//
// Vector has no fields besides the backing value, so its size, alignment
// and memory layout are those of B. FromRawPtr and FromRawSlice depend on
// this: adding a field to Vector makes them undefined behavior.
//
// The zero Vector wraps the zero backing value. Vectors of the same flavor
// can be compared with == and used as map keys.
type Vector[B vmath.Backing[B], F Flavor[B]] struct {
	vec B
}

// FromRaw wraps a backing value without transforming it.
func FromRaw[F Flavor[B], B vmath.Backing[B]](b B) Vector[B, F] {
	return Vector[B, F]{vec: b}
}

// From converts src into a Vector of flavor F using the declared rule r.
func From[S any, B vmath.Backing[B], F Flavor[B]](r Rule[S, B, F], src S) Vector[B, F] {
	return r.Apply(src)
}

// Into converts v into flavor T using the declared rule r. This is the only
// way to move a vector from one flavor to another.
func Into[B vmath.Backing[B], F Flavor[B], TB vmath.Backing[TB], T Flavor[TB]](v Vector[B, F], r Rule[Vector[B, F], TB, T]) Vector[TB, T] {
	return r.Apply(v)
}

// FromRawPtr reinterprets a pointer to a backing value as a pointer to a
// Vector of flavor F. Both pointers refer to the same memory.
func FromRawPtr[F Flavor[B], B vmath.Backing[B]](b *B) *Vector[B, F] {
	return (*Vector[B, F])(unsafe.Pointer(b))
}

// FromRawSlice reinterprets a slice of backing values as a slice of Vectors
// of flavor F sharing the same backing array.
func FromRawSlice[F Flavor[B], B vmath.Backing[B]](bs []B) []Vector[B, F] {
	if bs == nil {
		return nil
	}
	return unsafe.Slice((*Vector[B, F])(unsafe.Pointer(unsafe.SliceData(bs))), len(bs))
}

// RawSlice reinterprets a slice of Vectors as a slice of their backing
// values sharing the same backing array.
func RawSlice[B vmath.Backing[B], F Flavor[B]](vs []Vector[B, F]) []B {
	if vs == nil {
		return nil
	}
	return unsafe.Slice((*B)(unsafe.Pointer(unsafe.SliceData(vs))), len(vs))
}

// Raw returns the backing value.
func (v Vector[B, F]) Raw() B {
	return v.vec
}

// RawPtr returns a pointer to the backing value inside v.
func (v *Vector[B, F]) RawPtr() *B {
	return &v.vec
}

// Map applies a pure transform to the backing value and wraps the result in
// the same flavor.
func (v Vector[B, F]) Map(f func(B) B) Vector[B, F] {
	return Vector[B, F]{vec: f(v.vec)}
}

// Len returns the number of lanes of the backing vector.
func (v Vector[B, F]) Len() int {
	return v.vec.Len()
}

// Equal reports whether v and o have equal backing values.
func (v Vector[B, F]) Equal(o Vector[B, F]) bool {
	return v.vec == o.vec
}

// Hash returns the hash of the backing value. Equal vectors hash
// identically for the same seed.
func (v Vector[B, F]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, v.vec)
}

// String formats v like its backing value.
func (v Vector[B, F]) String() string {
	return v.vec.String()
}

// GoString formats v like its backing value.
func (v Vector[B, F]) GoString() string {
	return v.vec.GoString()
}
