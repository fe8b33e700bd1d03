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

// NaiveMatMul computes C += A * B, reading and writing C[i,j] on every step
// of the k loop. B is in natural layout and C must be zeroed by the caller.
func NaiveMatMul(a, b, c []float32, n int) {
	checkSlices(a, b, c, n)
	for i := range n {
		for j := range n {
			for k := range n {
				c[i*n+j] += a[i*n+k] * b[k*n+j]
			}
		}
	}
}

// LocalAccMatMul computes C += A * B, summing each dot product in a local
// accumulator and adding it to C[i,j] once. B is in natural layout and C
// must be zeroed by the caller.
func LocalAccMatMul(a, b, c []float32, n int) {
	checkSlices(a, b, c, n)
	for i := range n {
		aRow := a[i*n : i*n+n]
		for j := range n {
			var acc float32
			for k, aik := range aRow {
				acc += aik * b[k*n+j]
			}
			c[i*n+j] += acc
		}
	}
}

// TransposedMatMul computes C += A * B from Bᵀ, so both operands are read
// stride-1 along k. C must be zeroed by the caller.
func TransposedMatMul(a, bt, c []float32, n int) {
	checkSlices(a, bt, c, n)
	for i := range n {
		aRow := a[i*n : i*n+n]
		for j := range n {
			bCol := bt[j*n : j*n+n]
			var acc float32
			for k := range aRow {
				acc += aRow[k] * bCol[k]
			}
			c[i*n+j] += acc
		}
	}
}
