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

package hwy

// ProcessWithTailN walks size elements in steps of lanes. It calls
// fullFn(offset) for each full vector and tailFn(offset, count) once for a
// partial remainder.
//
// Example:
//
//	hwy.ProcessWithTailN(len(in), lanes,
//	    func(offset int) {
//	        hwy.Store(kernel(hwy.LoadN(in[offset:], lanes)), out[offset:])
//	    },
//	    func(offset, count int) {
//	        hwy.Store(kernel(hwy.LoadN(in[offset:offset+count], lanes)), out[offset:offset+count])
//	    },
//	)
func ProcessWithTailN(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if lanes <= 0 {
		return
	}
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}
