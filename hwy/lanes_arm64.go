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

//go:build arm64 && !noasm

package hwy

const (
	hasNativeLanes  = true
	nativeLanesName = "neon"
)

// mulF32x4 multiplies a and b lane-wise with FMUL.4S.
//
//go:noescape
func mulF32x4(a, b Float32x4) Float32x4

// reduceSumF32x4 sums the lanes of v with two pairwise FADDP steps.
//
//go:noescape
func reduceSumF32x4(v Float32x4) float32
