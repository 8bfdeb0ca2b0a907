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

// This file provides compaction and mask helpers built on Ops. Masks are
// read through MaskBits, so they work the same on every backend.

// laneSet reports whether lane i of m is set.
func laneSet[T Lanes, V, M any](o Ops[T, V, M], m M, i int) bool {
	return o.MaskBits(m)>>uint(i)&1 != 0
}

// Compress moves the lanes of v selected by m to the front, preserving
// their order, and zeroes the rest. It returns the number of selected
// lanes.
// [a0,a1,a2,a3], mask [0,1,0,1] -> [a1,a3,0,0], 2
func Compress[T Lanes, V, M any](o Ops[T, V, M], v V, m M) (V, int) {
	n := o.NumLanes()
	bits := o.MaskBits(m)
	var buf [maxLanes]T
	count := 0
	for i := range n {
		if bits>>uint(i)&1 != 0 {
			buf[count] = o.GetLane(v, i)
			count++
		}
	}
	return o.Load(buf[:n]), count
}

// Expand is the inverse of Compress: the low lanes of v are placed, in
// order, into the lanes selected by m. Unselected lanes are zero.
// [a0,a1,a2,a3], mask [0,1,0,1] -> [0,a0,0,a1]
func Expand[T Lanes, V, M any](o Ops[T, V, M], v V, m M) V {
	n := o.NumLanes()
	bits := o.MaskBits(m)
	var buf [maxLanes]T
	next := 0
	for i := range n {
		if bits>>uint(i)&1 != 0 {
			buf[i] = o.GetLane(v, next)
			next++
		}
	}
	return o.Load(buf[:n])
}

// CompressStore writes the lanes of v selected by m contiguously to dst and
// returns how many were written. dst needs room only for that many; the
// rest of dst is left untouched.
func CompressStore[T Lanes, V, M any](o Ops[T, V, M], v V, m M, dst []T) int {
	c, count := Compress(o, v, m)
	o.PartialStore(c, dst[:count])
	return count
}

// AllFalse reports whether no lane of m is set.
func AllFalse[T Lanes, V, M any](o Ops[T, V, M], m M) bool { return !o.AnyTrue(m) }

// FindFirstTrue returns the index of the first set lane, or -1 if none is.
func FindFirstTrue[T Lanes, V, M any](o Ops[T, V, M], m M) int {
	if i := o.FirstTrue(m); i < o.NumLanes() {
		return i
	}
	return -1
}

// FindLastTrue returns the index of the last set lane, or -1 if none is.
func FindLastTrue[T Lanes, V, M any](o Ops[T, V, M], m M) int {
	for i := o.NumLanes() - 1; i >= 0; i-- {
		if laneSet(o, m, i) {
			return i
		}
	}
	return -1
}

// LastN returns a mask with the last k lanes set. k is clamped to
// [0, NumLanes].
func LastN[T Lanes, V, M any](o Ops[T, V, M], k int) M {
	n := o.NumLanes()
	k = max(min(k, n), 0)
	return o.MaskBetween(n-k, n)
}

// MaskFromBits builds a mask whose lane i is bit i of bits. It is the
// inverse of Ops.MaskBits.
func MaskFromBits[T Lanes, V, M any](o Ops[T, V, M], bits uint64) M {
	n := o.NumLanes()
	var buf [maxLanes]T
	for i := range n {
		if bits>>uint(i)&1 != 0 {
			buf[i] = 1
		}
	}
	return o.NotEqual(o.Load(buf[:n]), o.Zero())
}
