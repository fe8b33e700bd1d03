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
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/hwy-matbench/hwy"
)

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the CPU features and the lane implementation in use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printCPUInfo(cmd.OutOrStdout())
		},
	}
}

func printCPUInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "Native lanes compiled in: %v\n", hwy.HasNativeLanes())
	fmt.Fprintf(w, "Lane implementation: %s\n", hwy.CurrentLanes().Name())
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
		fmt.Fprintf(w, "  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
		fmt.Fprintf(w, "  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
	case "amd64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasSSE2:    %v\n", cpu.X86.HasSSE2)
		fmt.Fprintf(w, "  HasSSE3:    %v\n", cpu.X86.HasSSE3)
		fmt.Fprintf(w, "  HasSSE41:   %v\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "  HasAVX:     %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasFMA:     %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	}
}
