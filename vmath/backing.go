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
	"iter"
)

// Backing is the capability set of a vector type that can be wrapped by a
// flavor. B is the implementing type itself.
//
// The contract is closed over the exact types of this package: B must be
// one of Vec2, Vec3, Vec4, IVec4 or UVec4. A type that embeds one of them,
// or merely has the same methods, does not satisfy it.
//
// The zero value of a Backing type is its default value.
type Backing[B any] interface {
	family
	comparable
	fmt.Stringer
	fmt.GoStringer

	// Len returns the number of lanes.
	Len() int

	Add(o B) B
	Sub(o B) B
	Mul(o B) B
	Div(o B) B
	Rem(o B) B
	Neg() B

	// One returns the multiplicative identity (all lanes one).
	One() B

	backing()
}

// Bitwise is the additional capability set of integer backing vectors,
// IVec4 and UVec4.
type Bitwise[B any] interface {
	bitwiseFamily
	Backing[B]

	And(o B) B
	Or(o B) B
	Xor(o B) B
	Not() B
	Shl(n uint32) B
	Shr(n uint32) B
}

// Indexed gives read/write access to the lanes of a backing vector.
// Elem panics if i is out of range.
type Indexed[E Lanes] interface {
	Elem(i int) *E
}

// Sum adds up the vectors of seq. The sum of an empty sequence is the zero
// vector.
func Sum[B Backing[B]](seq iter.Seq[*B]) B {
	var acc B
	for v := range seq {
		acc = acc.Add(*v)
	}
	return acc
}

// Product multiplies the vectors of seq lane by lane. The product of an
// empty sequence has all lanes set to one.
func Product[B Backing[B]](seq iter.Seq[*B]) B {
	var zero B
	acc := zero.One()
	for v := range seq {
		acc = acc.Mul(*v)
	}
	return acc
}
