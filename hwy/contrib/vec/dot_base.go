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

package vec

//go:generate go run ../../../cmd/hwygen -input dot_base.go -output .

import "github.com/ajroetker/go-hwcap/hwy"

// BaseDot computes the dot product (inner product) of two vectors:
// Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty. Products are accumulated with
// MulAdd, so the result may differ from a sequential scalar loop in the last
// bits.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func BaseDot[T hwy.Floats, V, M any](o hwy.Ops[T, V, M], a, b []T) T {
	n := min(len(a), len(b))
	lanes := o.NumLanes()
	sum := o.Zero()

	// Process full vectors
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		sum = o.MulAdd(o.Load(a[i:]), o.Load(b[i:]), sum)
	}

	// The tail lanes past n load as zero and add nothing.
	if i < n {
		sum = o.MulAdd(o.PartialLoad(a[i:n]), o.PartialLoad(b[i:n]), sum)
	}

	return o.ReduceSum(sum)
}
