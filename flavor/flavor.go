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

// Package flavor provides strongly typed vectors that share a backing
// representation without sharing an identity.
//
// A flavor is a zero-size tag type that names exactly one backing vector
// type from package vmath:
//
//	type PositionFlavor struct{}
//
//	func (PositionFlavor) Backing() vmath.Vec3 { return vmath.Vec3{} }
//
//	type Position = flavor.Vector[vmath.Vec3, PositionFlavor]
//
// A Vector has the same memory layout as its backing value and forwards
// construction, indexing, arithmetic and reductions to it. Two flavors never
// mix implicitly: Position.Add only accepts a Position. Any other operand
// first has to be normalized through a Rule declared by the flavor's
// author, so crossing a flavor boundary without a rule fails to compile:
//
//	var PositionFromVelocity = flavor.Declare[PositionFlavor](func(v Velocity) vmath.Vec3 {
//		return v.Raw()
//	})
//
//	p = flavor.AddFrom(p, PositionFromVelocity, v)
//
// Everything in this package works on values; nothing allocates.
package flavor

import "github.com/ajroetker/vecflavor/vmath"

// Flavor is the constraint satisfied by flavor tag types. A tag must have
// an empty struct as its underlying type, so it occupies no storage, and a
// Backing method naming its backing vector type. Because a type has only one
// Backing method, a flavor has exactly one backing type.
//
// Backing is never called by this package; by convention it returns the
// zero backing value.
type Flavor[B vmath.Backing[B]] interface {
	~struct{}
	Backing() B
}
