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
	"iter"

	"github.com/ajroetker/vecflavor/vmath"
)

// Arithmetic operators. The right-hand side must have the same flavor; the
// identity rule is implied. Operands of other types go through the *From
// functions below.

// Add returns v + rhs.
func (v Vector[B, F]) Add(rhs Vector[B, F]) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Add(rhs.vec) })
}

// Sub returns v - rhs.
func (v Vector[B, F]) Sub(rhs Vector[B, F]) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Sub(rhs.vec) })
}

// Mul returns the lane-wise product of v and rhs.
func (v Vector[B, F]) Mul(rhs Vector[B, F]) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Mul(rhs.vec) })
}

// Div returns the lane-wise quotient of v and rhs.
func (v Vector[B, F]) Div(rhs Vector[B, F]) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Div(rhs.vec) })
}

// Rem returns the lane-wise remainder of v and rhs.
func (v Vector[B, F]) Rem(rhs Vector[B, F]) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Rem(rhs.vec) })
}

// Neg returns -v.
func (v Vector[B, F]) Neg() Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Neg() })
}

// AddAssign sets v to v + rhs.
func (v *Vector[B, F]) AddAssign(rhs Vector[B, F]) {
	v.vec = v.vec.Add(rhs.vec)
}

// SubAssign sets v to v - rhs.
func (v *Vector[B, F]) SubAssign(rhs Vector[B, F]) {
	v.vec = v.vec.Sub(rhs.vec)
}

// MulAssign sets v to the lane-wise product of v and rhs.
func (v *Vector[B, F]) MulAssign(rhs Vector[B, F]) {
	v.vec = v.vec.Mul(rhs.vec)
}

// DivAssign sets v to the lane-wise quotient of v and rhs.
func (v *Vector[B, F]) DivAssign(rhs Vector[B, F]) {
	v.vec = v.vec.Div(rhs.vec)
}

// RemAssign sets v to the lane-wise remainder of v and rhs.
func (v *Vector[B, F]) RemAssign(rhs Vector[B, F]) {
	v.vec = v.vec.Rem(rhs.vec)
}

// Rule-normalized operators: rhs is converted into F's backing
// representation by r before the backing operator runs.

// AddFrom returns v + r(rhs).
func AddFrom[S any, B vmath.Backing[B], F Flavor[B]](v Vector[B, F], r Rule[S, B, F], rhs S) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Add(r.Backing(rhs)) })
}

// SubFrom returns v - r(rhs).
func SubFrom[S any, B vmath.Backing[B], F Flavor[B]](v Vector[B, F], r Rule[S, B, F], rhs S) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Sub(r.Backing(rhs)) })
}

// MulFrom returns the lane-wise product of v and r(rhs).
func MulFrom[S any, B vmath.Backing[B], F Flavor[B]](v Vector[B, F], r Rule[S, B, F], rhs S) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Mul(r.Backing(rhs)) })
}

// DivFrom returns the lane-wise quotient of v and r(rhs).
func DivFrom[S any, B vmath.Backing[B], F Flavor[B]](v Vector[B, F], r Rule[S, B, F], rhs S) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Div(r.Backing(rhs)) })
}

// RemFrom returns the lane-wise remainder of v and r(rhs).
func RemFrom[S any, B vmath.Backing[B], F Flavor[B]](v Vector[B, F], r Rule[S, B, F], rhs S) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Rem(r.Backing(rhs)) })
}

// Bitwise operators exist only for flavors backed by integer vectors.
//
// There are no assigning variants: the backing vectors have none either,
// and v = And(v, rhs) is just as cheap.

// And returns the lane-wise bitwise AND of v and rhs.
func And[B vmath.Bitwise[B], F Flavor[B]](v, rhs Vector[B, F]) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.And(rhs.vec) })
}

// Or returns the lane-wise bitwise OR of v and rhs.
func Or[B vmath.Bitwise[B], F Flavor[B]](v, rhs Vector[B, F]) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Or(rhs.vec) })
}

// Xor returns the lane-wise bitwise XOR of v and rhs.
func Xor[B vmath.Bitwise[B], F Flavor[B]](v, rhs Vector[B, F]) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Xor(rhs.vec) })
}

// Not returns the lane-wise bitwise complement of v.
func Not[B vmath.Bitwise[B], F Flavor[B]](v Vector[B, F]) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Not() })
}

// Shl shifts every lane of v left by n bits. The shift count is a plain
// count, not a vector, so no rule applies to it.
func Shl[B vmath.Bitwise[B], F Flavor[B]](v Vector[B, F], n uint32) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Shl(n) })
}

// Shr shifts every lane of v right by n bits.
func Shr[B vmath.Bitwise[B], F Flavor[B]](v Vector[B, F], n uint32) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Shr(n) })
}

// AndFrom returns the lane-wise bitwise AND of v and r(rhs).
func AndFrom[S any, B vmath.Bitwise[B], F Flavor[B]](v Vector[B, F], r Rule[S, B, F], rhs S) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.And(r.Backing(rhs)) })
}

// OrFrom returns the lane-wise bitwise OR of v and r(rhs).
func OrFrom[S any, B vmath.Bitwise[B], F Flavor[B]](v Vector[B, F], r Rule[S, B, F], rhs S) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Or(r.Backing(rhs)) })
}

// XorFrom returns the lane-wise bitwise XOR of v and r(rhs).
func XorFrom[S any, B vmath.Bitwise[B], F Flavor[B]](v Vector[B, F], r Rule[S, B, F], rhs S) Vector[B, F] {
	return v.Map(func(lhs B) B { return lhs.Xor(r.Backing(rhs)) })
}

// Reductions.

// Sum adds up the vectors of seq using the backing type's own reduction.
// The sum of an empty sequence is the zero vector.
func Sum[B vmath.Backing[B], F Flavor[B]](seq iter.Seq[*Vector[B, F]]) Vector[B, F] {
	return Vector[B, F]{vec: vmath.Sum(rawSeq(seq))}
}

// Product multiplies the vectors of seq lane by lane using the backing
// type's own reduction. The product of an empty sequence has all lanes set
// to one.
func Product[B vmath.Backing[B], F Flavor[B]](seq iter.Seq[*Vector[B, F]]) Vector[B, F] {
	return Vector[B, F]{vec: vmath.Product(rawSeq(seq))}
}

func rawSeq[B vmath.Backing[B], F Flavor[B]](seq iter.Seq[*Vector[B, F]]) iter.Seq[*B] {
	return func(yield func(*B) bool) {
		for v := range seq {
			if !yield(v.RawPtr()) {
				return
			}
		}
	}
}
