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

import "fmt"

// DefaultBlockSize is the block edge used by the benchmark.
// 3 blocks of 64x64 float32 = 48KB, sized for a 48-64KB L1d; it must divide
// the benchmark's N.
const DefaultBlockSize = 64

// CheckBlocked reports whether BlockedMatMul can cover an n×n product with
// cubic blocks of edge blockSize.
func CheckBlocked(n, blockSize int) error {
	if blockSize <= 0 {
		return &PreconditionError{Kernel: NameBlocked, N: n, Reason: fmt.Sprintf("block size %d is not positive", blockSize)}
	}
	if n%blockSize != 0 {
		return &PreconditionError{Kernel: NameBlocked, N: n, Reason: fmt.Sprintf("block size %d does not divide n", blockSize)}
	}
	return nil
}

// BlockedMatMul computes C += A * B from Bᵀ, partitioning the (i, j, k)
// index space into cubic blocks of edge blockSize so that the A rows and Bᵀ
// rows of a block stay in cache while they are reused.
//
// blockSize must divide n; otherwise BlockedMatMul panics with a
// *PreconditionError. C must be zeroed by the caller: each block adds its
// partial dot products into C.
func BlockedMatMul(a, bt, c []float32, n, blockSize int) {
	checkSlices(a, bt, c, n)
	if err := CheckBlocked(n, blockSize); err != nil {
		panic(err)
	}

	s := blockSize
	for i0 := 0; i0 < n; i0 += s {
		for j0 := 0; j0 < n; j0 += s {
			for k0 := 0; k0 < n; k0 += s {
				for i := i0; i < i0+s; i++ {
					aBlk := a[i*n+k0 : i*n+k0+s]
					cRow := c[i*n : i*n+n]
					for j := j0; j < j0+s; j++ {
						bBlk := bt[j*n+k0 : j*n+k0+s]
						var acc float32
						for k, aik := range aBlk {
							acc += aik * bBlk[k]
						}
						cRow[j] += acc
					}
				}
			}
		}
	}
}
