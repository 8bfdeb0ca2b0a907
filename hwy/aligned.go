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

import "unsafe"

// AlignedView splits a slice at register-aligned addresses. Body starts at
// an address that is a multiple of the register width and its length is a
// multiple of the lane count. Prefix and Suffix are each shorter than one
// register. Together they cover the slice exactly, in order.
type AlignedView[T Lanes] struct {
	Prefix []T
	Body   []T
	Suffix []T
}

// Align splits data for backend o. If data's elements are not even aligned
// to their own size, no prefix can reach register alignment and Prefix is
// empty.
func Align[T Lanes, V, M any](o Ops[T, V, M], data []T) AlignedView[T] {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	prefix, body := splitAligned(addr, len(data), sizeOf[T](), o.NumLanes())
	return AlignedView[T]{
		Prefix: data[:prefix:prefix],
		Body:   data[prefix : prefix+body : prefix+body],
		Suffix: data[prefix+body:],
	}
}

// splitAligned returns the prefix and body lengths, in elements, for a
// slice of length elements of elemSize bytes starting at addr.
func splitAligned(addr uintptr, length, elemSize, lanes int) (prefix, body int) {
	if length == 0 {
		return 0, 0
	}
	width := uintptr(elemSize * lanes)
	if mis := addr % width; mis != 0 && mis%uintptr(elemSize) == 0 {
		prefix = min(int((width-mis)/uintptr(elemSize)), length)
	}
	body = (length - prefix) / lanes * lanes
	return prefix, body
}

// ForEachAligned visits data as a sequence of register loads: the prefix
// with PartialLoadLast, each body chunk with Load and the suffix with
// PartialLoad. valid marks the lanes that hold elements of data; the other
// lanes are zero. Every element is seen exactly once.
func ForEachAligned[T Lanes, V, M any](o Ops[T, V, M], data []T, fn func(v V, valid M)) {
	n := o.NumLanes()
	view := Align(o, data)
	if k := len(view.Prefix); k > 0 {
		fn(o.PartialLoadLast(view.Prefix), o.MaskBetween(n-k, n))
	}
	all := o.FirstN(n)
	for i := 0; i < len(view.Body); i += n {
		fn(o.Load(view.Body[i:]), all)
	}
	if k := len(view.Suffix); k > 0 {
		fn(o.PartialLoad(view.Suffix), o.FirstN(k))
	}
}
