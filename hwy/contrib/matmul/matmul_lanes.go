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

package matmul

import (
	"fmt"

	"github.com/ajroetker/hwy-matbench/hwy"
)

// CheckLanes reports whether LanesMatMul can cover an n×n product, which
// requires n to be a multiple of the vector width.
func CheckLanes(n int) error {
	if n%hwy.NumLanes != 0 {
		return &PreconditionError{Kernel: NameLanes, N: n, Reason: fmt.Sprintf("n is not a multiple of %d lanes", hwy.NumLanes)}
	}
	return nil
}

// LanesMatMul computes C = A * B from Bᵀ with the lane primitives selected by
// dispatch. See LanesMatMulWith.
func LanesMatMul(a, bt, c []float32, n int) {
	LanesMatMulWith(hwy.CurrentLanes(), a, bt, c, n)
}

// LanesMatMulWith computes C = A * B from Bᵀ using ops. For each C[i,j] it
// walks k in chunks of 4, multiplies the A and Bᵀ chunks lane-wise, reduces
// the product horizontally, and keeps the running sum in a scalar; C[i,j] is
// assigned once, so C needs no reset.
//
// n must be a multiple of 4; otherwise LanesMatMulWith panics with a
// *PreconditionError instead of dropping the trailing elements.
func LanesMatMulWith(ops hwy.Lanes4, a, bt, c []float32, n int) {
	checkSlices(a, bt, c, n)
	if err := CheckLanes(n); err != nil {
		panic(err)
	}

	for i := range n {
		aRow := a[i*n : i*n+n]
		for j := range n {
			bCol := bt[j*n : j*n+n]
			var acc float32
			for k := 0; k < n; k += hwy.NumLanes {
				va := ops.Load(aRow[k:])
				vb := ops.Load(bCol[k:])
				acc += ops.ReduceSum(ops.Mul(va, vb))
			}
			c[i*n+j] = acc
		}
	}
}
