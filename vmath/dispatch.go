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

// MaskBackend identifies the representation BVec4A was compiled with.
// It is fixed at build time.
type MaskBackend int

const (
	// MaskLanes is the portable four-lane array representation.
	MaskLanes MaskBackend = iota

	// MaskSSE is the 128-bit register representation, selected on amd64
	// when building with GOEXPERIMENT=simd.
	MaskSSE
)

// String returns a human-readable name for the backend.
func (b MaskBackend) String() string {
	switch b {
	case MaskLanes:
		return "lanes"
	case MaskSSE:
		return "sse"
	default:
		return "unknown"
	}
}

// CurrentMaskBackend returns the BVec4A representation of this binary.
func CurrentMaskBackend() MaskBackend {
	return maskBackend
}

// CPUHasVectorMask reports whether the running CPU has the 128-bit vector
// instructions a register-backed mask needs (AVX on amd64, ASIMD on arm64).
// It is informational: the backend never changes at run time.
func CPUHasVectorMask() bool {
	return cpuHasVectorMask
}

// MaskAccelerated reports whether BVec4A is register-backed and the CPU
// can execute it.
func MaskAccelerated() bool {
	return maskBackend == MaskSSE && cpuHasVectorMask
}
