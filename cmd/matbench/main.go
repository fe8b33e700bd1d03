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

// Command matbench benchmarks the matmul kernels on fixed N×N float32
// matrices and verifies each against a precomputed reference product.
//
// Usage:
//
//	matbench gen              # write data/A.txt, data/B.txt and data/C.txt
//	matbench run              # time and verify every kernel
//	matbench cpuinfo          # show the detected vector unit
//
// The data directory defaults to $MATBENCH_DATA, or "data" when unset.
// Set HWY_NO_SIMD=1 to force the scalar lane implementation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(defaultSettings()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(s settings) *cobra.Command {
	root := &cobra.Command{
		Use:           "matbench",
		Short:         "Compare square float32 matmul kernels by throughput",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&s.dataDir, "data", s.dataDir, "directory holding A.txt, B.txt and C.txt")

	run := newRunCmd(&s)
	root.AddCommand(run, newGenCmd(&s), newCPUInfoCmd())
	// Running matbench without a subcommand runs the benchmark.
	root.RunE = run.RunE
	return root
}
