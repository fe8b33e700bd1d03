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

package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/ajroetker/hwy-matbench/internal/bench"
	"github.com/ajroetker/hwy-matbench/internal/matrix"
)

func newGenCmd(s *settings) *cobra.Command {
	var (
		seed int64
		runs int
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random A and B and their BLAS product C",
		Long: `Generate random A and B with elements in [0, 1), compute the reference
product C = A*B in float64 with gonum's dgemm, print the single-threaded sgemm
baseline throughput, and write A.txt, B.txt and C.txt to the data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1, got %d", runs)
			}
			rng := rand.New(rand.NewSource(seed))
			a := matrix.Random(s.n, rng)
			b := matrix.Random(s.n, rng)

			c := referenceProduct(a, b)
			elapsed := blasBaseline(a, b, runs)
			fmt.Fprintf(cmd.OutOrStdout(), "blas32 baseline: %.3f GFLOP/s (mean of %d runs)\n",
				bench.Throughput(s.n, elapsed), runs)

			if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
				return err
			}
			for name, m := range map[string]*matrix.Matrix{
				matrix.FileA:     a,
				matrix.FileB:     b,
				matrix.FileTruth: c,
			} {
				if err := m.Save(filepath.Join(s.dataDir, name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for A and B")
	cmd.Flags().IntVar(&runs, "runs", defaultRuns, "number of timed BLAS products to average")
	return cmd
}

// referenceProduct returns A*B accumulated in float64 and rounded once to
// float32, so the reference carries no float32 summation error of its own.
func referenceProduct(a, b *matrix.Matrix) *matrix.Matrix {
	n := a.N
	general := func(data []float64) blas64.General {
		return blas64.General{Rows: n, Cols: n, Data: data, Stride: n}
	}
	c64 := make([]float64, n*n)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, general(widen(a.Data)), general(widen(b.Data)), 0, general(c64))

	c := matrix.New(n)
	for i, v := range c64 {
		c.Data[i] = float32(v)
	}
	return c
}

func widen(src []float32) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

// blasBaseline times A*B with blas32.Gemm runs times on one OS thread and
// returns the mean elapsed time.
func blasBaseline(a, b *matrix.Matrix, runs int) time.Duration {
	prev := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(prev)

	n := a.N
	c := matrix.New(n)
	general := func(m *matrix.Matrix) blas32.General {
		return blas32.General{Rows: n, Cols: n, Data: m.Data, Stride: n}
	}

	var total time.Duration
	for range runs {
		start := time.Now()
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, general(a), general(b), 0, general(c))
		total += time.Since(start)
	}
	return total / time.Duration(runs)
}
