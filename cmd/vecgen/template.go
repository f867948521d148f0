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

package main

const familyTemplateText = `// Code generated by vecgen. DO NOT EDIT.

package {{.Package}}

// family is the closed set of backing vector types.
type family interface {
	{{.All}}
}

// bitwiseFamily is the subset of family with integer lanes.
type bitwiseFamily interface {
	{{.Bitwise}}
}
`

const vecTemplateText = `// Code generated by vecgen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
{{- if .IsFloat}}
	"math"
{{- end}}
)

// {{.Name}} is a {{.Lanes}}-lane vector of {{.Elem}} values.
type {{.Name}} [{{.Lanes}}]{{.Elem}}

// New{{.Name}} creates a vector from its lanes.
func New{{.Name}}({{.Params}}) {{.Name}} {
	return {{.Name}}{ {{- .Args -}} }
}

// Splat{{.Name}} creates a vector with all lanes set to v.
func Splat{{.Name}}(v {{.Elem}}) {{.Name}} {
	return {{.Name}}{ {{- .Repeat "v" ", " -}} }
}

func ({{.Name}}) backing() {}

// Len returns the number of lanes.
func ({{.Name}}) Len() int { return {{.Lanes}} }

// Elem returns a pointer to lane i. It panics if i is out of range.
func (v *{{.Name}}) Elem(i int) *{{.Elem}} { return &v[i] }
{{range $i, $f := .Fields}}
// {{$f}} returns lane {{$i}}.
func (v {{$.Name}}) {{$f}}() {{$.Elem}} { return v[{{$i}}] }
{{end}}
// ToArray returns the lanes as an array.
func (v {{.Name}}) ToArray() [{{.Lanes}}]{{.Elem}} { return [{{.Lanes}}]{{.Elem}}(v) }

// One returns a vector with all lanes set to one.
func ({{.Name}}) One() {{.Name}} { return Splat{{.Name}}(1) }

// Add returns the lane-wise sum v + o.
func (v {{.Name}}) Add(o {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Sub returns the lane-wise difference v - o.
func (v {{.Name}}) Sub(o {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] -= o[i]
	}
	return v
}

// Mul returns the lane-wise product v * o.
func (v {{.Name}}) Mul(o {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] *= o[i]
	}
	return v
}

// Div returns the lane-wise quotient v / o.
{{- if .IsInt}}
// It panics if a lane of o is zero.
{{- end}}
func (v {{.Name}}) Div(o {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] /= o[i]
	}
	return v
}

// Rem returns the lane-wise remainder of v / o, truncated toward zero.
func (v {{.Name}}) Rem(o {{.Name}}) {{.Name}} {
	for i := range v {
{{- if .IsFloat}}
		v[i] = {{.Elem}}(math.Mod(float64(v[i]), float64(o[i])))
{{- else}}
		v[i] %= o[i]
{{- end}}
	}
	return v
}

// Neg returns the lane-wise negation -v.
{{- if not .IsSigned}}
// Unsigned lanes wrap around.
{{- end}}
func (v {{.Name}}) Neg() {{.Name}} {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// AddScalar adds s to every lane.
func (v {{.Name}}) AddScalar(s {{.Elem}}) {{.Name}} {
	for i := range v {
		v[i] += s
	}
	return v
}

// MulScalar multiplies every lane by s.
func (v {{.Name}}) MulScalar(s {{.Elem}}) {{.Name}} {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Dot returns the dot product of v and o.
func (v {{.Name}}) Dot(o {{.Name}}) {{.Elem}} {
	var sum {{.Elem}}
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum
}

// Min returns the lane-wise minimum of v and o.
func (v {{.Name}}) Min(o {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] = min(v[i], o[i])
	}
	return v
}

// Max returns the lane-wise maximum of v and o.
func (v {{.Name}}) Max(o {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] = max(v[i], o[i])
	}
	return v
}

// MinElement returns the smallest lane.
func (v {{.Name}}) MinElement() {{.Elem}} {
	m := v[0]
	for _, x := range v[1:] {
		m = min(m, x)
	}
	return m
}

// MaxElement returns the largest lane.
func (v {{.Name}}) MaxElement() {{.Elem}} {
	m := v[0]
	for _, x := range v[1:] {
		m = max(m, x)
	}
	return m
}

// ElementSum returns the sum of all lanes.
func (v {{.Name}}) ElementSum() {{.Elem}} {
	var sum {{.Elem}}
	for _, x := range v {
		sum += x
	}
	return sum
}

// ElementProduct returns the product of all lanes.
func (v {{.Name}}) ElementProduct() {{.Elem}} {
	var p {{.Elem}} = 1
	for _, x := range v {
		p *= x
	}
	return p
}
{{- if .IsFloat}}

// Abs returns the lane-wise absolute value.
func (v {{.Name}}) Abs() {{.Name}} {
	for i := range v {
		v[i] = {{.Elem}}(math.Abs(float64(v[i])))
	}
	return v
}

// LengthSquared returns the squared Euclidean length of v.
func (v {{.Name}}) LengthSquared() {{.Elem}} { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v {{.Name}}) Length() {{.Elem}} {
	return {{.Elem}}(math.Sqrt(float64(v.Dot(v))))
}
{{- end}}
{{- if and .IsInt .IsSigned}}

// Abs returns the lane-wise absolute value. The minimum int32 wraps to
// itself.
func (v {{.Name}}) Abs() {{.Name}} {
	for i := range v {
		if v[i] < 0 {
			v[i] = -v[i]
		}
	}
	return v
}
{{- end}}
{{- if .IsInt}}

// And returns the lane-wise bitwise AND of v and o.
func (v {{.Name}}) And(o {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] &= o[i]
	}
	return v
}

// Or returns the lane-wise bitwise OR of v and o.
func (v {{.Name}}) Or(o {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] |= o[i]
	}
	return v
}

// Xor returns the lane-wise bitwise XOR of v and o.
func (v {{.Name}}) Xor(o {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] ^= o[i]
	}
	return v
}

// Not returns the lane-wise bitwise complement of v.
func (v {{.Name}}) Not() {{.Name}} {
	for i := range v {
		v[i] = ^v[i]
	}
	return v
}

// Shl shifts every lane left by n bits.
func (v {{.Name}}) Shl(n uint32) {{.Name}} {
	for i := range v {
		v[i] <<= n
	}
	return v
}

// Shr shifts every lane right by n bits.
{{- if .IsSigned}}
// The shift is arithmetic.
{{- end}}
func (v {{.Name}}) Shr(n uint32) {{.Name}} {
	for i := range v {
		v[i] >>= n
	}
	return v
}
{{- end}}
{{- if .HasMask}}

// CmpEq returns a mask with lane i set where v[i] == o[i].
func (v {{.Name}}) CmpEq(o {{.Name}}) BVec4A {
	return NewBVec4A({{.Each "v[%[1]d] == o[%[1]d]"}})
}

// CmpNe returns a mask with lane i set where v[i] != o[i].
func (v {{.Name}}) CmpNe(o {{.Name}}) BVec4A {
	return NewBVec4A({{.Each "v[%[1]d] != o[%[1]d]"}})
}

// CmpLt returns a mask with lane i set where v[i] < o[i].
func (v {{.Name}}) CmpLt(o {{.Name}}) BVec4A {
	return NewBVec4A({{.Each "v[%[1]d] < o[%[1]d]"}})
}

// CmpLe returns a mask with lane i set where v[i] <= o[i].
func (v {{.Name}}) CmpLe(o {{.Name}}) BVec4A {
	return NewBVec4A({{.Each "v[%[1]d] <= o[%[1]d]"}})
}

// CmpGt returns a mask with lane i set where v[i] > o[i].
func (v {{.Name}}) CmpGt(o {{.Name}}) BVec4A {
	return NewBVec4A({{.Each "v[%[1]d] > o[%[1]d]"}})
}

// CmpGe returns a mask with lane i set where v[i] >= o[i].
func (v {{.Name}}) CmpGe(o {{.Name}}) BVec4A {
	return NewBVec4A({{.Each "v[%[1]d] >= o[%[1]d]"}})
}

// Select{{.Name}} returns a vector whose lane i is t[i] where m is true and
// f[i] where it is false.
func Select{{.Name}}(m BVec4A, t, f {{.Name}}) {{.Name}} {
	bits := m.Bitmask()
	for i := range t {
		if bits&(1<<i) == 0 {
			t[i] = f[i]
		}
	}
	return t
}
{{- end}}

// String formats v as "[x, y, ...]".
func (v {{.Name}}) String() string {
	return fmt.Sprintf("[{{.Repeat "%v" ", "}}]", {{.Each "v[%d]"}})
}

// GoString formats v as "{{.Name}}(x, y, ...)".
func (v {{.Name}}) GoString() string {
	return fmt.Sprintf("{{.Name}}({{.Repeat "%v" ", "}})", {{.Each "v[%d]"}})
}
`
