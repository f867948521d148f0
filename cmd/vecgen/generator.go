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

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// LaneKind is the numeric category of a vector's lane type.
type LaneKind int

const (
	KindFloat LaneKind = iota
	KindSigned
	KindUnsigned
)

// VecType describes one member of the backing vector family.
type VecType struct {
	Name  string   // Go type name, e.g. "Vec3"
	Elem  string   // lane type, e.g. "float32"
	Lanes int      // number of lanes, 2 to 4
	Kind  LaneKind // numeric category of Elem
}

// Family is the complete backing vector family.
var Family = []VecType{
	{Name: "Vec2", Elem: "float32", Lanes: 2, Kind: KindFloat},
	{Name: "Vec3", Elem: "float32", Lanes: 3, Kind: KindFloat},
	{Name: "Vec4", Elem: "float32", Lanes: 4, Kind: KindFloat},
	{Name: "IVec4", Elem: "int32", Lanes: 4, Kind: KindSigned},
	{Name: "UVec4", Elem: "uint32", Lanes: 4, Kind: KindUnsigned},
}

var (
	laneFields = []string{"X", "Y", "Z", "W"}
	laneParams = []string{"x", "y", "z", "w"}
)

// FamilyNames returns the names of all family members.
func FamilyNames() []string {
	names := make([]string, len(Family))
	for i, t := range Family {
		names[i] = t.Name
	}
	return names
}

// SelectTypes looks up family members by name, in the order given.
func SelectTypes(names []string) ([]VecType, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no vector types specified")
	}
	var result []VecType
	for _, name := range names {
		found := false
		for _, t := range Family {
			if t.Name == name {
				result = append(result, t)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown vector type %q (available: %s)", name, strings.Join(FamilyNames(), ","))
		}
	}
	return result, nil
}

// IsFloat reports whether the lanes are floating point.
func (t VecType) IsFloat() bool { return t.Kind == KindFloat }

// IsInt reports whether the lanes are integers.
func (t VecType) IsInt() bool { return t.Kind != KindFloat }

// IsSigned reports whether the lanes can be negative.
func (t VecType) IsSigned() bool { return t.Kind != KindUnsigned }

// HasMask reports whether comparisons produce a BVec4A.
func (t VecType) HasMask() bool { return t.Lanes == 4 }

// FileName is the name of the generated file.
func (t VecType) FileName() string { return strings.ToLower(t.Name) + ".gen.go" }

// Fields returns the accessor names of the lanes.
func (t VecType) Fields() []string { return laneFields[:t.Lanes] }

// Params returns the constructor parameter list, e.g. "x, y, z float32".
func (t VecType) Params() string {
	return strings.Join(laneParams[:t.Lanes], ", ") + " " + t.Elem
}

// Args returns the constructor arguments, e.g. "x, y, z".
func (t VecType) Args() string {
	return strings.Join(laneParams[:t.Lanes], ", ")
}

// Each formats format once per lane with the lane index as its only
// (indexed) operand and joins the results with ", ".
func (t VecType) Each(format string) string {
	parts := make([]string, t.Lanes)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(parts, ", ")
}

// Repeat returns s repeated once per lane, joined with sep.
func (t VecType) Repeat(s, sep string) string {
	parts := make([]string, t.Lanes)
	for i := range parts {
		parts[i] = s
	}
	return strings.Join(parts, sep)
}

var vecTemplate = template.Must(template.New("vec").Parse(vecTemplateText))

type templateData struct {
	VecType
	Package string
}

// Render produces the formatted source of one vector type.
func Render(pkg string, t VecType) ([]byte, error) {
	var buf bytes.Buffer
	if err := vecTemplate.Execute(&buf, templateData{VecType: t, Package: pkg}); err != nil {
		return nil, fmt.Errorf("execute template for %s: %w", t.Name, err)
	}
	formatted, err := imports.Process(t.FileName(), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", t.Name, err)
	}
	return formatted, nil
}

var familyTemplate = template.Must(template.New("family").Parse(familyTemplateText))

// FamilyFileName is the file holding the closed type sets of the family.
const FamilyFileName = "family.gen.go"

// familyUnion joins the names of the family members that keep returns true
// for into a type union.
func familyUnion(keep func(VecType) bool) string {
	var names []string
	for _, t := range Family {
		if keep(t) {
			names = append(names, t.Name)
		}
	}
	return strings.Join(names, " | ")
}

// RenderFamily produces the type unions that seal the backing contracts.
// They always list the whole family, whichever types are being rendered.
func RenderFamily(pkg string) ([]byte, error) {
	data := struct {
		Package string
		All     string
		Bitwise string
	}{
		Package: pkg,
		All:     familyUnion(func(VecType) bool { return true }),
		Bitwise: familyUnion(VecType.IsInt),
	}
	var buf bytes.Buffer
	if err := familyTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute family template: %w", err)
	}
	formatted, err := imports.Process(FamilyFileName, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format family: %w", err)
	}
	return formatted, nil
}

// Generator writes the generated files of a set of vector types.
type Generator struct {
	OutputDir string
	Package   string
	Types     []VecType
}

// Run renders every type and writes it to OutputDir, followed by the family
// unions. It returns the names of the written files.
func (g *Generator) Run() ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	var files []string
	for _, t := range g.Types {
		src, err := Render(g.Package, t)
		if err != nil {
			return files, err
		}
		filename := filepath.Join(g.OutputDir, t.FileName())
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return files, fmt.Errorf("write %s: %w", t.Name, err)
		}
		files = append(files, t.FileName())
	}

	src, err := RenderFamily(g.Package)
	if err != nil {
		return files, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, FamilyFileName), src, 0644); err != nil {
		return files, fmt.Errorf("write family: %w", err)
	}
	return append(files, FamilyFileName), nil
}
