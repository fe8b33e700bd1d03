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

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwy-matbench/hwy"
	"github.com/ajroetker/hwy-matbench/hwy/contrib/matmul"
	"github.com/ajroetker/hwy-matbench/internal/bench"
	"github.com/ajroetker/hwy-matbench/internal/matrix"
)

func newRunCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Time and verify every kernel on the data directory's matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := matrix.LoadStore(s.dataDir, s.n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "n=%d block=%d lanes=%s\n", s.n, s.blockSize, hwy.CurrentLanes().Name())

			_, err = bench.Run(store, matmul.Registry(s.blockSize), bench.Config{Out: cmd.OutOrStdout()})
			return err
		},
	}
}
