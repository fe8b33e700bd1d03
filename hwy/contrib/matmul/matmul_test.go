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
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/ajroetker/hwy-matbench/hwy"
)

func sizeStr(n int) string {
	return fmt.Sprintf("%d", n)
}

func randomMatrix(rng *rand.Rand, n int) []float32 {
	m := make([]float32, n*n)
	for i := range m {
		m[i] = rng.Float32()*2 - 1
	}
	return m
}

func transposed(b []float32, n int) []float32 {
	bt := make([]float32, n*n)
	Transpose(b, bt, n)
	return bt
}

// operand returns b or bt, whichever layout k reads.
func operand(k Kernel, b, bt []float32) []float32 {
	if k.Layout == Transposed {
		return bt
	}
	return b
}

// runKernel runs k on a fresh zeroed output.
func runKernel(k Kernel, a, b, bt []float32, n int) []float32 {
	c := make([]float32, n*n)
	k.Func(a, operand(k, b, bt), c, n)
	return c
}

func maxAbsDiff(got, want []float32) float32 {
	var maxErr float32
	for i := range got {
		err := float32(math.Abs(float64(got[i] - want[i])))
		if err > maxErr {
			maxErr = err
		}
	}
	return maxErr
}

func TestReferenceSmall(t *testing.T) {
	// [1 2; 3 4] * [5 6; 7 8] = [19 22; 43 50]
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}
	c := []float32{-1, -1, -1, -1}
	Reference(a, b, c, 2)

	want := []float32{19, 22, 43, 50}
	for i := range c {
		if c[i] != want[i] {
			t.Errorf("c[%d] = %f, want %f", i, c[i], want[i])
		}
	}
}

func TestKernelsMatchReference(t *testing.T) {
	t.Logf("Dispatch level: %s", hwy.CurrentName())

	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{4, 8, 16, 32, 64} {
		a := randomMatrix(rng, n)
		b := randomMatrix(rng, n)
		bt := transposed(b, n)
		expected := make([]float32, n*n)
		Reference(a, b, expected, n)

		for _, k := range Registry(min(n, 8)) {
			t.Run(k.Name+"/"+sizeStr(n), func(t *testing.T) {
				c := runKernel(k, a, b, bt, n)
				tolerance := float32(1e-5) * float32(n)
				if maxErr := maxAbsDiff(c, expected); maxErr > tolerance {
					t.Errorf("max error %e exceeds tolerance %e", maxErr, tolerance)
				}
			})
		}
	}
}

// TestKernelsMatchBLAS checks every kernel against gonum's sgemm, which is
// independent of Reference.
func TestKernelsMatchBLAS(t *testing.T) {
	const n = 48
	rng := rand.New(rand.NewSource(7))
	a := randomMatrix(rng, n)
	b := randomMatrix(rng, n)
	bt := transposed(b, n)

	expected := make([]float32, n*n)
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas32.General{Rows: n, Cols: n, Data: a, Stride: n},
		blas32.General{Rows: n, Cols: n, Data: b, Stride: n},
		0, blas32.General{Rows: n, Cols: n, Data: expected, Stride: n})

	for _, k := range Registry(16) {
		t.Run(k.Name, func(t *testing.T) {
			c := runKernel(k, a, b, bt, n)
			if maxErr := maxAbsDiff(c, expected); maxErr > 1e-3 {
				t.Errorf("max error %e against blas32.Gemm", maxErr)
			}
		})
	}
}

func TestKernelsIdentity(t *testing.T) {
	const n = 32
	rng := rand.New(rand.NewSource(3))
	identity := make([]float32, n*n)
	for i := range n {
		identity[i*n+i] = 1
	}
	b := randomMatrix(rng, n)
	bt := transposed(b, n)

	for _, k := range Registry(8) {
		t.Run(k.Name, func(t *testing.T) {
			c := runKernel(k, identity, b, bt, n)
			if maxErr := maxAbsDiff(c, b); maxErr > 1e-6 {
				t.Errorf("I * B differs from B by %e", maxErr)
			}
		})
	}
}

func TestKernelsZero(t *testing.T) {
	const n = 16
	zeros := make([]float32, n*n)
	for _, k := range Registry(4) {
		t.Run(k.Name, func(t *testing.T) {
			c := runKernel(k, zeros, zeros, zeros, n)
			for i, v := range c {
				if v != 0 {
					t.Fatalf("c[%d] = %v, want 0", i, v)
				}
			}
		})
	}
}

// TestAccumulateTwiceDoubles documents the accumulate-mode contract: C must be
// zeroed before every call, and a second call without a reset doubles it.
// Assign-mode kernels are unaffected by a repeated call.
func TestAccumulateTwiceDoubles(t *testing.T) {
	const n = 16
	rng := rand.New(rand.NewSource(11))
	a := randomMatrix(rng, n)
	b := randomMatrix(rng, n)
	bt := transposed(b, n)

	for _, k := range Registry(8) {
		t.Run(k.Name+"/"+k.Mode.String(), func(t *testing.T) {
			once := runKernel(k, a, b, bt, n)

			twice := make([]float32, n*n)
			k.Func(a, operand(k, b, bt), twice, n)
			k.Func(a, operand(k, b, bt), twice, n)

			want := make([]float32, n*n)
			for i := range once {
				want[i] = once[i]
				if k.Mode == Accumulate {
					want[i] = 2 * once[i]
				}
			}
			// naive re-adds term by term, so rounding differs slightly from 2*once
			if maxErr := maxAbsDiff(twice, want); maxErr > 1e-4 {
				t.Errorf("%s kernel called twice: max error %e against %s result", k.Mode, maxErr, k.Mode)
			}
		})
	}
}

func TestAssignIgnoresStaleOutput(t *testing.T) {
	const n = 8
	rng := rand.New(rand.NewSource(5))
	a := randomMatrix(rng, n)
	b := randomMatrix(rng, n)
	expected := make([]float32, n*n)
	Reference(a, b, expected, n)

	c := make([]float32, n*n)
	for i := range c {
		c[i] = 1e6
	}
	LanesMatMul(a, transposed(b, n), c, n)
	if maxErr := maxAbsDiff(c, expected); maxErr > 1e-5 {
		t.Errorf("lanes kernel leaked stale output: max error %e", maxErr)
	}
}

func TestLanesScalarMatchesNative(t *testing.T) {
	const n = 64
	rng := rand.New(rand.NewSource(9))
	a := randomMatrix(rng, n)
	bt := randomMatrix(rng, n)

	scalar := make([]float32, n*n)
	native := make([]float32, n*n)
	LanesMatMulWith(hwy.ScalarLanes{}, a, bt, scalar, n)
	LanesMatMulWith(hwy.NativeLanes{}, a, bt, native, n)
	if maxErr := maxAbsDiff(native, scalar); maxErr > 1e-4 {
		t.Errorf("native lanes differ from scalar lanes by %e", maxErr)
	}
}

func TestBlockedAllDivisors(t *testing.T) {
	const n = 24
	rng := rand.New(rand.NewSource(13))
	a := randomMatrix(rng, n)
	b := randomMatrix(rng, n)
	bt := transposed(b, n)
	expected := make([]float32, n*n)
	Reference(a, b, expected, n)

	for _, bs := range []int{1, 2, 3, 4, 6, 8, 12, 24} {
		t.Run(sizeStr(bs), func(t *testing.T) {
			c := make([]float32, n*n)
			BlockedMatMul(a, bt, c, n, bs)
			if maxErr := maxAbsDiff(c, expected); maxErr > 1e-4 {
				t.Errorf("block size %d: max error %e", bs, maxErr)
			}
		})
	}
}

// expectPrecondition runs f and checks that it panics with a
// *PreconditionError naming kernel.
func expectPrecondition(t *testing.T, kernel string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s kernel did not panic", kernel)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("%s kernel panicked with %v, want an error", kernel, r)
		}
		var pe *PreconditionError
		if !errors.As(err, &pe) || pe.Kernel != kernel {
			t.Fatalf("%s kernel panicked with %v, want *PreconditionError", kernel, err)
		}
	}()
	f()
}

func TestBlockedPrecondition(t *testing.T) {
	tests := []struct {
		n, blockSize int
	}{
		{10, 4},
		{16, 0},
		{16, -4},
		{8, 16},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n%d_bs%d", tt.n, tt.blockSize), func(t *testing.T) {
			err := CheckBlocked(tt.n, tt.blockSize)
			if !errors.Is(err, ErrPrecondition) {
				t.Fatalf("CheckBlocked(%d, %d) = %v, want ErrPrecondition", tt.n, tt.blockSize, err)
			}

			a := make([]float32, tt.n*tt.n)
			c := make([]float32, tt.n*tt.n)
			expectPrecondition(t, NameBlocked, func() {
				BlockedMatMul(a, a, c, tt.n, tt.blockSize)
			})
		})
	}

	if err := CheckBlocked(2048, DefaultBlockSize); err != nil {
		t.Errorf("CheckBlocked(2048, %d) = %v", DefaultBlockSize, err)
	}
}

func TestLanesPrecondition(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 6, 7, 10} {
		t.Run(sizeStr(n), func(t *testing.T) {
			if err := CheckLanes(n); !errors.Is(err, ErrPrecondition) {
				t.Fatalf("CheckLanes(%d) = %v, want ErrPrecondition", n, err)
			}
			a := make([]float32, n*n)
			c := make([]float32, n*n)
			expectPrecondition(t, NameLanes, func() {
				LanesMatMul(a, a, c, n)
			})
		})
	}
	for _, n := range []int{0, 4, 8, 1024, 2048} {
		if err := CheckLanes(n); err != nil {
			t.Errorf("CheckLanes(%d) = %v", n, err)
		}
	}
}

func TestShortSlicesPanic(t *testing.T) {
	const n = 4
	full := make([]float32, n*n)
	short := make([]float32, n*n-1)
	for _, k := range Registry(2) {
		t.Run(k.Name, func(t *testing.T) {
			for _, args := range [][3][]float32{
				{short, full, full},
				{full, short, full},
				{full, full, short},
			} {
				func() {
					defer func() {
						if recover() == nil {
							t.Errorf("no panic with a %d-element operand", len(short))
						}
					}()
					k.Func(args[0], args[1], args[2], n)
				}()
			}
		})
	}
}

func BenchmarkKernels(b *testing.B) {
	const n = 256
	rng := rand.New(rand.NewSource(1))
	a := randomMatrix(rng, n)
	bn := randomMatrix(rng, n)
	bt := transposed(bn, n)
	c := make([]float32, n*n)
	flops := 2 * float64(n) * float64(n) * float64(n)

	for _, k := range Registry(DefaultBlockSize) {
		b.Run(k.Name, func(b *testing.B) {
			bk := operand(k, bn, bt)
			iters := 0
			for b.Loop() {
				clear(c)
				k.Func(a, bk, c, n)
				iters++
			}
			b.ReportMetric(flops*float64(iters)/b.Elapsed().Seconds()/1e9, "GFLOP/s")
		})
	}
}
