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

//go:generate go run ../../../cmd/hwygen -input argmax_base.go -output .

import "github.com/ajroetker/go-hwcap/hwy"

// BaseArgmax returns the index of the largest element of v, or -1 if v
// holds a NaN. Ties go to the first index. It panics if v is empty.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5, 9, 2, 6}
//	result := Argmax(data)  // 5
func BaseArgmax[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], v []T) int {
	return firstEqual(o, v, BaseMax(o, v))
}

// BaseArgmin returns the index of the smallest element of v, or -1 if v
// holds a NaN. Ties go to the first index. It panics if v is empty.
func BaseArgmin[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], v []T) int {
	return firstEqual(o, v, BaseMin(o, v))
}

// firstEqual returns the first index i with v[i] == x, or -1.
func firstEqual[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], v []T, x T) int {
	target := o.Splat(x)
	lanes := o.NumLanes()

	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		if m := o.Equal(o.Load(v[i:]), target); o.AnyTrue(m) {
			return i + o.FirstTrue(m)
		}
	}
	if i < len(v) {
		m := o.MaskAnd(o.Equal(o.PartialLoad(v[i:]), target), o.FirstN(len(v)-i))
		if o.AnyTrue(m) {
			return i + o.FirstTrue(m)
		}
	}
	return -1
}
