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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/vecflavor/vmath"
)

func TestIndex(t *testing.T) {
	m := FromRaw[meters](vmath.NewVec3(1, 2, 3))

	y := Index[float32](&m, 1)
	assert.Equal(t, float32(2), y.Get())
	assert.Equal(t, "2", y.String())

	y.Set(20)
	assert.Equal(t, vmath.NewVec3(1, 20, 3), m.Raw())

	*Index[float32](&m, 2).Ptr() = 30
	assert.Equal(t, vmath.NewVec3(1, 20, 30), m.Raw())

	assert.Panics(t, func() { Index[float32](&m, 3) })
}

func TestIndexIntegerLanes(t *testing.T) {
	b := FromRaw[bits](vmath.NewUVec4(1, 2, 3, 4))
	for i := range 4 {
		l := Index[uint32](&b, i)
		l.Set(l.Get() * 10)
	}
	assert.Equal(t, vmath.NewUVec4(10, 20, 30, 40), b.Raw())
}

func TestLaneLayout(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(float32(0)), unsafe.Sizeof(Lane[float32, meters]{}))
	assert.Equal(t, unsafe.Alignof(int32(0)), unsafe.Alignof(Lane[int32, offsets]{}))
}
