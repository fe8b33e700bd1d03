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

// Transpose writes the transpose of the n×n row-major matrix src into dst:
// dst[j*n+i] = src[i*n+j]. src and dst must not overlap.
//
// The copy walks src in tiles of transposeTile rows and columns so that
// the strided writes to dst stay within a few cache lines.
func Transpose(src, dst []float32, n int) {
	if len(src) < n*n {
		panic("matmul: transpose source too short")
	}
	if len(dst) < n*n {
		panic("matmul: transpose destination too short")
	}

	for i0 := 0; i0 < n; i0 += transposeTile {
		iEnd := min(i0+transposeTile, n)
		for j0 := 0; j0 < n; j0 += transposeTile {
			jEnd := min(j0+transposeTile, n)
			for i := i0; i < iEnd; i++ {
				for j := j0; j < jEnd; j++ {
					dst[j*n+i] = src[i*n+j]
				}
			}
		}
	}
}

const transposeTile = 16
