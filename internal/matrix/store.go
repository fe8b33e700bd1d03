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

package matrix

import (
	"fmt"
	"path/filepath"
)

// Input file names inside a data directory.
const (
	FileA     = "A.txt"
	FileB     = "B.txt"
	FileTruth = "C.txt"
)

// Store owns every matrix of a benchmark run. A, B, BT and Truth are fixed
// once the store is built; C is the only matrix kernels write, and it is
// reset between kernels.
type Store struct {
	N     int
	A     *Matrix
	B     *Matrix
	BT    *Matrix // transpose of B
	C     *Matrix
	Truth *Matrix // reference product A*B, used only for verification
}

// NewStore builds a store from A, B and the reference product, derives Bᵀ
// and allocates a zeroed C.
func NewStore(a, b, truth *Matrix) (*Store, error) {
	n := a.N
	if b.N != n {
		return nil, fmt.Errorf("matrix: B is %dx%d, A is %dx%d", b.N, b.N, n, n)
	}
	if truth.N != n {
		return nil, fmt.Errorf("matrix: reference is %dx%d, A is %dx%d", truth.N, truth.N, n, n)
	}
	return &Store{
		N:     n,
		A:     a,
		B:     b,
		BT:    b.Transpose(),
		C:     New(n),
		Truth: truth,
	}, nil
}

// LoadStore reads A.txt, B.txt and C.txt (the reference product) from dir.
func LoadStore(dir string, n int) (*Store, error) {
	a, err := Load(filepath.Join(dir, FileA), n)
	if err != nil {
		return nil, err
	}
	b, err := Load(filepath.Join(dir, FileB), n)
	if err != nil {
		return nil, err
	}
	truth, err := Load(filepath.Join(dir, FileTruth), n)
	if err != nil {
		return nil, err
	}
	return NewStore(a, b, truth)
}

// Operand returns Bᵀ if transposed is set and B otherwise.
func (s *Store) Operand(transposed bool) *Matrix {
	if transposed {
		return s.BT
	}
	return s.B
}

// ResetOutput zeroes C.
func (s *Store) ResetOutput() {
	s.C.Reset()
}
