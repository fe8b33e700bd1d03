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

package bench

import (
	"io"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reporter prints one line per kernel: the kernel name left-justified in a
// column as wide as the longest name, then the throughput right-justified.
type Reporter struct {
	w     io.Writer
	p     *message.Printer
	width int
}

// NewReporter returns a Reporter for the given kernel names. Numbers are
// formatted for English, so large throughputs get digit grouping.
func NewReporter(w io.Writer, names []string) *Reporter {
	longest := lo.MaxBy(names, func(a, b string) bool { return len(a) > len(b) })
	return &Reporter{
		w:     w,
		p:     message.NewPrinter(language.English),
		width: len(longest),
	}
}

// Line writes the throughput line for r.
func (rp *Reporter) Line(r Result) error {
	_, err := rp.p.Fprintf(rp.w, "%-*s %12.3f GFLOP/s\n", rp.width, r.Kernel, r.GFLOPS)
	return err
}
