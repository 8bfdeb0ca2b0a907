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

// This file provides structured loads and stores that convert between
// interleaved (array of structures) memory and one vector per field.

// LoadDup128 loads one 128-bit block from src and repeats it across the
// vector. Lanes past the end of a short src are zero.
//
//	wide int32, src [a,b,c,d] -> [a,b,c,d,a,b,c,d]
func LoadDup128[T Lanes, V, M any](o Ops[T, V, M], src []T) V {
	n := o.NumLanes()
	block := min(16/sizeOf[T](), n)
	var buf [maxLanes]T
	copy(buf[:block], src[:min(len(src), block)])
	for i := block; i < n; i++ {
		buf[i] = buf[i%block]
	}
	return o.Load(buf[:n])
}

// loadInterleaved splits k*NumLanes elements of src into k vectors, field f
// taking src[k*i+f].
func loadInterleaved[T Lanes, V, M any](o Ops[T, V, M], src []T, out []V) {
	n, k := o.NumLanes(), len(out)
	_ = src[k*n-1]
	var buf [maxLanes]T
	for f := range out {
		for i := range n {
			buf[i] = src[k*i+f]
		}
		out[f] = o.Load(buf[:n])
	}
}

func storeInterleaved[T Lanes, V, M any](o Ops[T, V, M], in []V, dst []T) {
	n, k := o.NumLanes(), len(in)
	_ = dst[k*n-1]
	var buf [maxLanes]T
	for f, v := range in {
		o.Store(v, buf[:n])
		for i := range n {
			dst[k*i+f] = buf[i]
		}
	}
}

// LoadInterleaved2 deinterleaves pairs:
//
//	[a0,b0,a1,b1,...] -> [a0,a1,...], [b0,b1,...]
//
// src must hold 2*NumLanes elements.
func LoadInterleaved2[T Lanes, V, M any](o Ops[T, V, M], src []T) (a, b V) {
	var out [2]V
	loadInterleaved(o, src, out[:])
	return out[0], out[1]
}

// LoadInterleaved3 deinterleaves triples such as packed RGB pixels. src
// must hold 3*NumLanes elements.
func LoadInterleaved3[T Lanes, V, M any](o Ops[T, V, M], src []T) (a, b, c V) {
	var out [3]V
	loadInterleaved(o, src, out[:])
	return out[0], out[1], out[2]
}

// LoadInterleaved4 deinterleaves quadruples. src must hold 4*NumLanes
// elements.
func LoadInterleaved4[T Lanes, V, M any](o Ops[T, V, M], src []T) (a, b, c, d V) {
	var out [4]V
	loadInterleaved(o, src, out[:])
	return out[0], out[1], out[2], out[3]
}

// StoreInterleaved2 is the inverse of LoadInterleaved2.
func StoreInterleaved2[T Lanes, V, M any](o Ops[T, V, M], a, b V, dst []T) {
	storeInterleaved(o, []V{a, b}, dst)
}

// StoreInterleaved3 is the inverse of LoadInterleaved3.
func StoreInterleaved3[T Lanes, V, M any](o Ops[T, V, M], a, b, c V, dst []T) {
	storeInterleaved(o, []V{a, b, c}, dst)
}

// StoreInterleaved4 is the inverse of LoadInterleaved4.
func StoreInterleaved4[T Lanes, V, M any](o Ops[T, V, M], a, b, c, d V, dst []T) {
	storeInterleaved(o, []V{a, b, c, d}, dst)
}
