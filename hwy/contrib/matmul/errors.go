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

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by every PreconditionError.
var ErrPrecondition = errors.New("matmul: kernel precondition violated")

// PreconditionError reports a problem size a kernel cannot cover exactly.
// Kernels panic with it rather than compute a partially covered result;
// callers check first with Kernel.Check.
type PreconditionError struct {
	Kernel string
	N      int
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("matmul: %s kernel cannot run with n=%d: %s", e.Kernel, e.N, e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}
