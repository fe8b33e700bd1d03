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

// Package bench drives the matmul kernels over a matrix.Store: it resets the
// output, times each kernel, prints its throughput and verifies its result
// against the reference product, stopping at the first failure.
package bench

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ajroetker/hwy-matbench/hwy/contrib/matmul"
	"github.com/ajroetker/hwy-matbench/internal/matrix"
)

// Config configures a harness run.
type Config struct {
	// Out receives one throughput line per kernel. Defaults to os.Stdout.
	Out io.Writer

	// Now samples the clock around each kernel call. Defaults to time.Now,
	// whose readings carry the monotonic clock.
	Now func() time.Time
}

// Result is the measurement of one kernel.
type Result struct {
	Kernel  string
	Elapsed time.Duration
	GFLOPS  float64
}

// Throughput returns the GFLOP/s of an n×n×n matrix product that took
// elapsed: each of the n³ inner-product terms is one multiply and one add.
func Throughput(n int, elapsed time.Duration) float64 {
	flop := 2 * float64(n) * float64(n) * float64(n)
	return flop / elapsed.Seconds() / 1e9
}

// Run benchmarks kernels in order over store. For each kernel it zeroes C,
// checks the kernel's precondition, times one call, reports the throughput,
// and verifies C against store.Truth.
//
// Run stops at the first precondition violation (*matmul.PreconditionError)
// or verification failure (*MismatchError) and returns the results of the
// kernels that completed before it.
func Run(store *matrix.Store, kernels []matmul.Kernel, cfg Config) ([]Result, error) {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	report := NewReporter(cfg.Out, matmul.Names(kernels))

	n := store.N
	results := make([]Result, 0, len(kernels))
	for _, k := range kernels {
		if err := k.Check(n); err != nil {
			return results, err
		}

		// C is zeroed for every kernel, including assign-mode ones, so a
		// kernel's result never depends on the kernel before it.
		store.ResetOutput()
		b := store.Operand(k.Layout == matmul.Transposed)

		start := cfg.Now()
		k.Func(store.A.Data, b.Data, store.C.Data, n)
		elapsed := cfg.Now().Sub(start)

		r := Result{Kernel: k.Name, Elapsed: elapsed, GFLOPS: Throughput(n, elapsed)}
		if err := report.Line(r); err != nil {
			return results, fmt.Errorf("bench: writing report: %w", err)
		}

		if err := Verify(k.Name, store.C, store.Truth, Tolerance(k.Mode)); err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}
