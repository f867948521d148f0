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

// Package vmath provides the fixed-size backing vectors that typed vector
// flavors wrap, and the BVec4A mask produced by comparing them.
//
// The backing family is closed: only the types declared in this package
// satisfy Backing. They are plain arrays, so a Vec3 has exactly the memory
// layout of [3]float32 and can be copied, compared with == and used as a
// map key.
//
// Basic usage:
//
//	a := vmath.NewVec4(1, 2, 3, 4)
//	b := vmath.SplatVec4(2)
//	m := a.CmpGt(b) // BVec4A
//	if m.Any() {
//		// ...
//	}
//
// The BVec4A representation is chosen at build time. With
// GOEXPERIMENT=simd on amd64 it lives in a 128-bit register; every other
// build (and any build with the purego tag) uses a four lane array with the
// same observable behavior.
package vmath

//go:generate go run ../cmd/vecgen -output .

// Floats is a constraint for the floating-point lane type.
type Floats interface {
	~float32
}

// SignedInts is a constraint for the signed integer lane type.
type SignedInts interface {
	~int32
}

// UnsignedInts is a constraint for the unsigned integer lane type.
type UnsignedInts interface {
	~uint32
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a backing
// vector lane. Every lane is 32 bits wide.
type Lanes interface {
	Floats | Integers
}
