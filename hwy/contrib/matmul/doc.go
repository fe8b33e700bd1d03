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

// Package matmul provides the square float32 matrix multiplication kernels
// compared by the matbench harness.
//
// Every kernel computes C = A * B for N×N row-major matrices and differs only
// in memory-access order, accumulator placement, blocking, and vectorization:
//
//	naive              C[i,j] += A[i,k]*B[k,j] on every inner step
//	local-accumulator  sum in a local, one add into C[i,j]
//	transposed         reads Bᵀ so both operands are stride-1 along k
//	blocked            cubic blocks of edge S over (i, j, k), reads Bᵀ
//	lanes              4-lane multiply + horizontal sum, reads Bᵀ
//
// Each kernel declares the B layout it needs and whether it accumulates into
// C (which must then be zeroed first) or assigns it. Kernels are listed in a
// registry sharing one signature:
//
//	for _, k := range matmul.Registry(matmul.DefaultBlockSize) {
//	    b := bNatural
//	    if k.Layout == matmul.Transposed {
//	        b = bTransposed
//	    }
//	    clear(c)
//	    k.Func(a, b, c, n)
//	}
package matmul
