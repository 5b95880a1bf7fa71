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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

func init() {
	applyConfig(detectCPUFeatures())
}

func detectCPUFeatures() DispatchLevel {
	// The AVX2 kernels use VFMADD, so FMA is required alongside AVX2.
	if archsimd.X86.AVX2() && cpu.X86.HasFMA {
		return DispatchAVX2
	}
	if cpu.X86.HasSSE41 {
		return DispatchSSE4
	}
	return DispatchScalar
}

// HasArchSIMD reports whether archsimd kernels are compiled in.
func HasArchSIMD() bool {
	return true
}
