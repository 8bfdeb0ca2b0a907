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

// This file provides indexed loads and stores. Index slices must hold at
// least one vector of indices; indices outside the memory slice are
// skipped, so a gather yields zero and a scatter writes nothing for them.

// Index is the element type of gather and scatter index slices.
type Index interface {
	~int32 | ~int64
}

// GatherIndex loads lane i from src[idx[i]].
func GatherIndex[T Lanes, I Index, V, M any](o Ops[T, V, M], src []T, idx []I) V {
	return gather(o, src, idx, 0, 1, ^uint64(0))
}

// GatherIndexMasked is GatherIndex restricted to the lanes set in m. Other
// lanes are zero and their indices are not read from src.
func GatherIndexMasked[T Lanes, I Index, V, M any](o Ops[T, V, M], src []T, idx []I, m M) V {
	return gather(o, src, idx, 0, 1, o.MaskBits(m))
}

// GatherIndexOffset loads lane i from src[base+idx[i]*scale], which reads
// strided rows or columns without building a full index slice.
func GatherIndexOffset[T Lanes, I Index, V, M any](o Ops[T, V, M], src []T, base int, idx []I, scale int) V {
	return gather(o, src, idx, base, scale, ^uint64(0))
}

func gather[T Lanes, I Index, V, M any](o Ops[T, V, M], src []T, idx []I, base, scale int, bits uint64) V {
	n := o.NumLanes()
	_ = idx[n-1]
	var buf [maxLanes]T
	for i := range n {
		if bits>>uint(i)&1 == 0 {
			continue
		}
		if j := base + int(idx[i])*scale; j >= 0 && j < len(src) {
			buf[i] = src[j]
		}
	}
	return o.Load(buf[:n])
}

// ScatterIndex stores lane i of v to dst[idx[i]]. When indices repeat, the
// highest lane wins.
func ScatterIndex[T Lanes, I Index, V, M any](o Ops[T, V, M], v V, dst []T, idx []I) {
	scatter(o, v, dst, idx, ^uint64(0))
}

// ScatterIndexMasked is ScatterIndex restricted to the lanes set in m.
func ScatterIndexMasked[T Lanes, I Index, V, M any](o Ops[T, V, M], v V, dst []T, idx []I, m M) {
	scatter(o, v, dst, idx, o.MaskBits(m))
}

func scatter[T Lanes, I Index, V, M any](o Ops[T, V, M], v V, dst []T, idx []I, bits uint64) {
	n := o.NumLanes()
	_ = idx[n-1]
	for i := range n {
		if bits>>uint(i)&1 == 0 {
			continue
		}
		if j := int(idx[i]); j >= 0 && j < len(dst) {
			dst[j] = o.GetLane(v, i)
		}
	}
}

// IndicesStride returns n indices start, start+stride, start+2*stride, ...
func IndicesStride[I Index](n int, start, stride I) []I {
	out := make([]I, n)
	for i := range out {
		out[i] = start + I(i)*stride
	}
	return out
}
