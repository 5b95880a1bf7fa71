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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd there are no archsimd kernels, so the detected
// level only selects the lane width of the portable kernels.

func init() {
	applyConfig(detectCPUFeatures())
}

func detectCPUFeatures() DispatchLevel {
	switch {
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		return DispatchAVX2
	case cpu.X86.HasSSE41:
		return DispatchSSE4
	default:
		return DispatchScalar
	}
}

// HasArchSIMD reports whether archsimd kernels are compiled in.
func HasArchSIMD() bool {
	return false
}
