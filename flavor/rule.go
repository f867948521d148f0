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

import "github.com/ajroetker/vecflavor/vmath"

// Rule is a declared conversion from values of type S into the backing
// representation of flavor F. The pair (F, S) is part of the type, so a rule
// can only be used where exactly that conversion is expected.
//
// Rules are created with Declare, and by the Identity and RawRule helpers.
// The zero Rule, including a composite literal such as
// Rule[Velocity, vmath.Vec3, PositionFlavor]{}, is not a declared rule. It
// compiles wherever a declared one would, but every use of it (Backing,
// Apply and the *From operators) panics. IsDeclared tells the two apart.
type Rule[S any, B vmath.Backing[B], F Flavor[B]] struct {
	convert func(S) B
}

// Declare declares the conversion rule from S into flavor F. It is the only
// way to allow a type other than F itself to be used where an F is expected.
//
// Declare is meant to be called once, for a package-level variable:
//
//	var VelocityFromScalar = flavor.Declare[VelocityFlavor](vmath.SplatVec3)
func Declare[F Flavor[B], S any, B vmath.Backing[B]](fn func(S) B) Rule[S, B, F] {
	if fn == nil {
		panic("flavor: Declare with nil conversion function")
	}
	return Rule[S, B, F]{convert: fn}
}

// Identity returns the rule converting a Vector of flavor F into its own
// backing value. It is the only rule that exists without being declared.
func Identity[B vmath.Backing[B], F Flavor[B]]() Rule[Vector[B, F], B, F] {
	return Rule[Vector[B, F], B, F]{convert: func(v Vector[B, F]) B { return v.vec }}
}

// RawRule returns a rule accepting bare backing values for flavor F. Authors
// who want raw values to mix with their flavor declare it explicitly:
//
//	var PositionFromRaw = flavor.RawRule[vmath.Vec3, PositionFlavor]()
func RawRule[B vmath.Backing[B], F Flavor[B]]() Rule[B, B, F] {
	return Rule[B, B, F]{convert: rawIdentity[B]}
}

func rawIdentity[B any](b B) B { return b }

// IsDeclared reports whether r was created by Declare, Identity or RawRule.
func (r Rule[S, B, F]) IsDeclared() bool {
	return r.convert != nil
}

// Backing converts src into F's backing representation.
func (r Rule[S, B, F]) Backing(src S) B {
	if r.convert == nil {
		panic("flavor: use of undeclared (zero) Rule")
	}
	return r.convert(src)
}

// Apply converts src into a Vector of flavor F.
func (r Rule[S, B, F]) Apply(src S) Vector[B, F] {
	return Vector[B, F]{vec: r.Backing(src)}
}
