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

// Package matrix holds the dense square float32 matrices the benchmark runs
// on, and reads and writes them as text.
package matrix

import (
	"math/rand"

	"github.com/ajroetker/hwy-matbench/hwy/contrib/matmul"
)

// Matrix is an N×N row-major float32 matrix: element (i, j) is Data[i*N+j].
type Matrix struct {
	N    int
	Data []float32
}

// New returns an n×n matrix of zeros.
func New(n int) *Matrix {
	return &Matrix{N: n, Data: make([]float32, n*n)}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := New(n)
	for i := range n {
		m.Data[i*n+i] = 1
	}
	return m
}

// Random returns an n×n matrix with elements drawn uniformly from [0, 1).
func Random(n int, rng *rand.Rand) *Matrix {
	m := New(n)
	for i := range m.Data {
		m.Data[i] = rng.Float32()
	}
	return m
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) float32 {
	return m.Data[i*m.N+j]
}

// Set sets element (i, j) to v.
func (m *Matrix) Set(i, j int, v float32) {
	m.Data[i*m.N+j] = v
}

// Row returns row i. The slice aliases the matrix.
func (m *Matrix) Row(i int) []float32 {
	return m.Data[i*m.N : (i+1)*m.N]
}

// Reset zeroes every element.
func (m *Matrix) Reset() {
	clear(m.Data)
}

// Transpose returns a new matrix t with t[i][j] == m[j][i].
func (m *Matrix) Transpose() *Matrix {
	t := New(m.N)
	matmul.Transpose(m.Data, t.Data, m.N)
	return t
}
