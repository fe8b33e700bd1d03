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

import "github.com/samber/lo"

// Kernel names, in registry order.
const (
	NameNaive      = "naive"
	NameLocalAcc   = "local-accumulator"
	NameTransposed = "transposed"
	NameBlocked    = "blocked"
	NameLanes      = "lanes"
)

// Layout is the layout of the B operand a kernel reads.
type Layout int

const (
	// Natural is B as loaded, row-major: B[k,j] at b[k*n+j].
	Natural Layout = iota

	// Transposed is Bᵀ: B[k,j] at bt[j*n+k].
	Transposed
)

func (l Layout) String() string {
	switch l {
	case Natural:
		return "natural"
	case Transposed:
		return "transposed"
	default:
		return "unknown"
	}
}

// WriteMode says how a kernel writes C.
type WriteMode int

const (
	// Accumulate kernels add into C (C[i,j] += ...); C must be zeroed
	// before each call, and a second call without a reset doubles C.
	Accumulate WriteMode = iota

	// Assign kernels overwrite C (C[i,j] = ...) regardless of its contents.
	Assign
)

func (m WriteMode) String() string {
	switch m {
	case Accumulate:
		return "accumulate"
	case Assign:
		return "assign"
	default:
		return "unknown"
	}
}

// Func is the signature shared by all registered kernels: a is A in natural
// layout, b is B in the kernel's Layout, c is the n×n output.
type Func func(a, b, c []float32, n int)

// Kernel is a registry entry: a named kernel with its operand layout and
// write mode.
type Kernel struct {
	Name   string
	Layout Layout
	Mode   WriteMode
	Func   Func

	check func(n int) error
}

// Check returns a *PreconditionError if the kernel cannot compute an n×n
// product exactly. Func panics on the same inputs.
func (k Kernel) Check(n int) error {
	if k.check == nil {
		return nil
	}
	return k.check(n)
}

// Registry returns the benchmark kernels in their fixed run order. The
// blocked kernel uses cubic blocks of edge blockSize.
func Registry(blockSize int) []Kernel {
	return []Kernel{
		{Name: NameNaive, Layout: Natural, Mode: Accumulate, Func: NaiveMatMul},
		{Name: NameLocalAcc, Layout: Natural, Mode: Accumulate, Func: LocalAccMatMul},
		{Name: NameTransposed, Layout: Transposed, Mode: Accumulate, Func: TransposedMatMul},
		{
			Name:   NameBlocked,
			Layout: Transposed,
			Mode:   Accumulate,
			Func: func(a, bt, c []float32, n int) {
				BlockedMatMul(a, bt, c, n, blockSize)
			},
			check: func(n int) error { return CheckBlocked(n, blockSize) },
		},
		{Name: NameLanes, Layout: Transposed, Mode: Assign, Func: LanesMatMul, check: CheckLanes},
	}
}

// Lookup returns the kernel called name.
func Lookup(kernels []Kernel, name string) (Kernel, bool) {
	return lo.Find(kernels, func(k Kernel) bool { return k.Name == name })
}

// Names returns the kernel names in order.
func Names(kernels []Kernel) []string {
	return lo.Map(kernels, func(k Kernel, _ int) string { return k.Name })
}
