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

// Package hwy provides the 4-lane float32 multiply-reduce primitive used by
// the vector-lane matmul kernel, with runtime CPU dispatch.
//
// Operations use SSE on amd64 and NEON on arm64, or fall back to portable
// scalar loops elsewhere (and when HWY_NO_SIMD is set, or the binary is built
// with the noasm tag). Kernel code is written once against the Lanes4
// interface:
//
//	import "github.com/ajroetker/hwy-matbench/hwy"
//
//	ops := hwy.CurrentLanes()
//	a := ops.Load(row[k:])
//	b := ops.Load(col[k:])
//	sum += ops.ReduceSum(ops.Mul(a, b))
package hwy

// NumLanes is the number of float32 lanes in a Float32x4.
const NumLanes = 4

// Float32x4 is a 128-bit vector of 4 float32 lanes.
// The array layout matches the register layout of SSE and NEON, so values
// are passed to the assembly routines as-is.
type Float32x4 [NumLanes]float32

// Lanes4 is the minimal vector capability the vector-lane kernel needs:
// a 4-lane load, a lane-wise multiply, and a horizontal sum.
//
// Implementations must be pure: no side effects and no shared state.
type Lanes4 interface {
	// Name identifies the implementation ("scalar", "sse2", "neon").
	Name() string

	// Load reads the first 4 elements of src. It panics if len(src) < 4.
	Load(src []float32) Float32x4

	// Mul returns the lane-wise product of a and b.
	Mul(a, b Float32x4) Float32x4

	// ReduceSum returns the sum of all 4 lanes of v.
	ReduceSum(v Float32x4) float32
}

// currentLanes is the implementation selected by dispatch.
var currentLanes Lanes4 = ScalarLanes{}

// CurrentLanes returns the Lanes4 implementation selected for this CPU.
func CurrentLanes() Lanes4 {
	return currentLanes
}

// HasNativeLanes reports whether this build carries a native (assembly)
// implementation of the lane primitives for the target architecture.
func HasNativeLanes() bool {
	return hasNativeLanes
}

// Load4 loads 4 consecutive float32 values from src.
func Load4(src []float32) Float32x4 {
	return Float32x4(src[:NumLanes])
}

// Store writes the 4 lanes of v to dst. It panics if len(dst) < 4.
func (v Float32x4) Store(dst []float32) {
	copy(dst[:NumLanes], v[:])
}

// ScalarLanes is the portable implementation of Lanes4.
type ScalarLanes struct{}

// Name implements Lanes4.
func (ScalarLanes) Name() string { return "scalar" }

// Load implements Lanes4.
func (ScalarLanes) Load(src []float32) Float32x4 { return Load4(src) }

// Mul implements Lanes4.
func (ScalarLanes) Mul(a, b Float32x4) Float32x4 { return mulF32x4Fallback(a, b) }

// ReduceSum implements Lanes4.
func (ScalarLanes) ReduceSum(v Float32x4) float32 { return reduceSumF32x4Fallback(v) }

// NativeLanes is the Lanes4 implementation backed by vector instructions.
// Without native support in the build it computes the scalar results.
type NativeLanes struct{}

// Name implements Lanes4.
func (NativeLanes) Name() string { return nativeLanesName }

// Load implements Lanes4.
func (NativeLanes) Load(src []float32) Float32x4 { return Load4(src) }

// Mul implements Lanes4.
func (NativeLanes) Mul(a, b Float32x4) Float32x4 { return mulF32x4(a, b) }

// ReduceSum implements Lanes4.
func (NativeLanes) ReduceSum(v Float32x4) float32 { return reduceSumF32x4(v) }

func mulF32x4Fallback(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range NumLanes {
		r[i] = a[i] * b[i]
	}
	return r
}

// reduceSumF32x4Fallback adds lanes pairwise, (v0+v1)+(v2+v3), which is the
// order NEON's faddp uses.
func reduceSumF32x4Fallback(v Float32x4) float32 {
	return (v[0] + v[1]) + (v[2] + v[3])
}
