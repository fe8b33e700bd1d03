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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrShape is wrapped by errors about a file with the wrong number of rows
// or columns.
var ErrShape = errors.New("matrix: shape mismatch")

// maxLineBytes bounds one text row: 2048 columns of "%f" values in the
// thousands fit with room to spare.
const maxLineBytes = 1 << 20

// Load reads an n×n matrix from the text file at path. See Read.
func Load(path string, n int) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	defer f.Close()

	m, err := Read(f, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read parses an n×n matrix: exactly n lines, each holding exactly n
// whitespace-separated decimal values parsed as float32. A trailing newline
// after the last row is allowed; any other line or column count is an
// error wrapping ErrShape.
func Read(r io.Reader, n int) (*Matrix, error) {
	m := New(n)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	row := 0
	for sc.Scan() {
		line := sc.Bytes()
		if row >= n {
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			return nil, fmt.Errorf("%w: more than %d rows", ErrShape, n)
		}

		fields := bytes.Fields(line)
		if len(fields) != n {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrShape, row+1, len(fields), n)
		}
		dst := m.Row(row)
		for col, field := range fields {
			v, err := strconv.ParseFloat(string(field), 32)
			if err != nil {
				return nil, fmt.Errorf("matrix: line %d column %d: %w", row+1, col+1, err)
			}
			dst[col] = float32(v)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: line %d: %w", row+1, err)
	}
	if row != n {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrShape, row, n)
	}
	return m, nil
}

// Write writes m as text: one row per line, values formatted with %f and
// separated by single spaces.
func (m *Matrix) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i := range m.N {
		for j, v := range m.Row(i) {
			if j > 0 {
				bw.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], float64(v), 'f', 6, 32)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Save writes m to the file at path, creating or truncating it.
func (m *Matrix) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matrix: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("matrix: %w", cerr)
		}
	}()

	if err := m.Write(f); err != nil {
		return fmt.Errorf("matrix: writing %s: %w", path, err)
	}
	return nil
}
