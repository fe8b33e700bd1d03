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

// checkSlices panics unless a, b and c each hold an n×n matrix.
func checkSlices(a, b, c []float32, n int) {
	if n < 0 {
		panic("matmul: negative dimension")
	}
	if len(a) < n*n {
		panic("matmul: A slice too short")
	}
	if len(b) < n*n {
		panic("matmul: B slice too short")
	}
	if len(c) < n*n {
		panic("matmul: C slice too short")
	}
}

// Reference computes C = A * B with the canonical triple loop, assigning C.
// B is in natural layout. It is the definition every kernel is checked
// against.
func Reference(a, b, c []float32, n int) {
	checkSlices(a, b, c, n)
	for i := range n {
		for j := range n {
			var sum float32
			for k := range n {
				sum += a[i*n+k] * b[k*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
