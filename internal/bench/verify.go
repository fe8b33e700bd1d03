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

package bench

import (
	"fmt"
	"math"

	"github.com/ajroetker/hwy-matbench/hwy/contrib/matmul"
	"github.com/ajroetker/hwy-matbench/internal/matrix"
)

// Verification tolerances on |C[i][j] - truth[i][j]|.
const (
	// TolAssign applies to kernels that assign C in a single pass.
	TolAssign = 1e-3

	// TolAccumulate applies to kernels that add into C; their summation
	// order, and so their rounding, differs from the reference.
	TolAccumulate = 1e-2
)

// Tolerance returns the verification tolerance for a kernel write mode.
func Tolerance(mode matmul.WriteMode) float64 {
	if mode == matmul.Assign {
		return TolAssign
	}
	return TolAccumulate
}

// MismatchError reports the first cell, in row-major order, where a kernel's
// output differs from the reference by tolerance or more.
type MismatchError struct {
	Kernel    string
	Row, Col  int
	Got, Want float32
	Tolerance float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("bench: %s: C[%d][%d] = %v, want %v (tolerance %g)",
		e.Kernel, e.Row, e.Col, e.Got, e.Want, e.Tolerance)
}

// Verify scans c and truth in row-major order and returns a *MismatchError
// for the first cell with |c - truth| >= tol. A NaN in either matrix is a
// mismatch.
func Verify(kernel string, c, truth *matrix.Matrix, tol float64) error {
	if c.N != truth.N {
		return fmt.Errorf("bench: %s: output is %dx%d, reference is %dx%d", kernel, c.N, c.N, truth.N, truth.N)
	}
	for idx, got := range c.Data {
		want := truth.Data[idx]
		if !(math.Abs(float64(got)-float64(want)) < tol) {
			return &MismatchError{
				Kernel:    kernel,
				Row:       idx / c.N,
				Col:       idx % c.N,
				Got:       got,
				Want:      want,
				Tolerance: tol,
			}
		}
	}
	return nil
}
