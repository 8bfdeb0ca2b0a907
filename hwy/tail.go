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

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically. lanes is the
// backend's NumLanes.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of lanes
//
// Example:
//
//	n := o.NumLanes()
//	hwy.ProcessWithTail(n, len(data),
//	    func(offset int) {
//	        v := o.Load(data[offset:])
//	        o.Store(o.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := o.PartialLoad(data[offset:])
//	        o.PartialStore(o.Add(v, v), output[offset:])
//	    },
//	)
func ProcessWithTail(lanes, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	// Process full vectors
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	// Process tail if any
	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// ProcessWithTailNoMask is similar to ProcessWithTail but doesn't require
// a tail function. Instead, it processes an overlapping vector for the tail,
// so fullFn must be idempotent on elements it sees twice. size must be at
// least lanes; shorter inputs need a partial load.
func ProcessWithTailNoMask(lanes, size int, fullFn func(offset int)) {
	if size < lanes {
		return
	}

	// Process full vectors
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	// Process tail with overlapping vector if needed
	if size%lanes > 0 {
		fullFn(size - lanes)
	}
}

// AlignedSize rounds up size to the next multiple of lanes.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize(lanes, size int) int {
	if lanes <= 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of lanes.
func IsAligned(lanes, size int) bool {
	if lanes <= 0 {
		return true
	}
	return size%lanes == 0
}
