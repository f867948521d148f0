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

// Command vecgen generates the backing vector family of package vmath from
// a single template.
//
// Usage:
//
//	vecgen -output ./vmath
//	vecgen -output ./vmath -types Vec3,IVec4
//
// Or via go:generate from the vmath package:
//
//	//go:generate go run ../cmd/vecgen -output .
//
// Each vector type is written to its own <name>.gen.go file. family.gen.go
// always lists the whole family, so regenerating a subset keeps the backing
// contracts closed over every type.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	typeList   = flag.String("types", "all", "Comma-separated vector types ("+strings.Join(FamilyNames(), ",")+") or 'all'")
	packageOut = flag.String("pkg", "vmath", "Output package name")
)

func main() {
	flag.Parse()

	types, err := SelectTypes(parseTypes(*typeList))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Package:   *packageOut,
		Types:     types,
	}

	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d files: %s\n", len(files), strings.Join(files, ", "))
}

func parseTypes(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return FamilyNames()
	}
	return result
}
