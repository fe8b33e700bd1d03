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
	"os"

	"github.com/ajroetker/hwy-matbench/hwy/contrib/matmul"
)

// Problem size and blocking are fixed per build, matching the data files
// produced by "matbench gen".
const (
	// N is the matrix dimension.
	N = 2048

	// BlockSize is the blocked kernel's block edge; it must divide N.
	BlockSize = matmul.DefaultBlockSize
)

// defaultRuns is how many baseline products "matbench gen" averages.
const defaultRuns = 10

type settings struct {
	n         int
	blockSize int
	dataDir   string
}

func defaultSettings() settings {
	dir := os.Getenv("MATBENCH_DATA")
	if dir == "" {
		dir = "data"
	}
	return settings{n: N, blockSize: BlockSize, dataDir: dir}
}
