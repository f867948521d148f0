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
	"fmt"
	"unsafe"

	"github.com/ajroetker/vecflavor/vmath"
)

// Lane is a single lane of a flavored vector. It has the layout of E and
// keeps the flavor tag F at element granularity, so a lane of a Position
// cannot be mistaken for a lane of a Velocity.
//
// Lanes are obtained from Index. F is limited to zero-size tag types; the
// backing type of the flavor is not part of the lane type.
type Lane[E vmath.Lanes, F interface{ ~struct{} }] struct {
	v E
}

// Index returns a reference to lane i of v. Writes through the returned
// Lane modify v. It panics if i is out of range.
//
// The lane type cannot be inferred from the vector type and has to be
// given explicitly:
//
//	x := flavor.Index[float32](&p, 0)
func Index[E vmath.Lanes, B vmath.Backing[B], F Flavor[B], PB interface {
	*B
	vmath.Indexed[E]
}](v *Vector[B, F], i int) *Lane[E, F] {
	return (*Lane[E, F])(unsafe.Pointer(PB(&v.vec).Elem(i)))
}

// Get returns the lane value.
func (l *Lane[E, F]) Get() E {
	return l.v
}

// Set overwrites the lane value.
func (l *Lane[E, F]) Set(e E) {
	l.v = e
}

// Ptr returns a pointer to the bare lane value.
func (l *Lane[E, F]) Ptr() *E {
	return &l.v
}

// String formats the lane value.
func (l *Lane[E, F]) String() string {
	return fmt.Sprint(l.v)
}
