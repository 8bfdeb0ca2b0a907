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

// This file provides lane permutations built on Ops.Shuffle and the lane
// accessors. Whole-vector Reverse, Broadcast and Interleave live on Ops.

// permute returns the vector whose lane i is lane src(i) of v.
func permute[T Lanes, V, M any](o Ops[T, V, M], v V, src func(i int) int) V {
	n := o.NumLanes()
	var idx [maxLanes]int
	for i := range n {
		idx[i] = src(i)
	}
	return o.Shuffle(v, idx[:n])
}

// blend returns the vector whose lane i is lane i of a when fromA(i), and
// lane i of b otherwise.
func blend[T Lanes, V, M any](o Ops[T, V, M], a, b V, fromA func(i int) bool) V {
	n := o.NumLanes()
	var buf [maxLanes]T
	for i := range n {
		if fromA(i) {
			buf[i] = o.GetLane(a, i)
		} else {
			buf[i] = o.GetLane(b, i)
		}
	}
	return o.Load(buf[:n])
}

// reverseGroups reverses lanes within each group of g lanes. Groups larger
// than the vector cover the whole vector.
func reverseGroups[T Lanes, V, M any](o Ops[T, V, M], v V, g int) V {
	g = min(g, o.NumLanes())
	return permute(o, v, func(i int) int { return i ^ (g - 1) })
}

// Reverse2 swaps adjacent lanes.
// [a0,a1,a2,a3] -> [a1,a0,a3,a2]
func Reverse2[T Lanes, V, M any](o Ops[T, V, M], v V) V { return reverseGroups(o, v, 2) }

// Reverse4 reverses each group of four lanes.
// [a0,a1,a2,a3,a4,a5,a6,a7] -> [a3,a2,a1,a0,a7,a6,a5,a4]
func Reverse4[T Lanes, V, M any](o Ops[T, V, M], v V) V { return reverseGroups(o, v, 4) }

// Reverse8 reverses each group of eight lanes.
func Reverse8[T Lanes, V, M any](o Ops[T, V, M], v V) V { return reverseGroups(o, v, 8) }

// OddEven takes odd lanes from odd and even lanes from even.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [b0,a1,b2,a3]
func OddEven[T Lanes, V, M any](o Ops[T, V, M], odd, even V) V {
	return blend(o, odd, even, func(i int) bool { return i%2 == 1 })
}

// DupEven copies each even lane into the odd lane above it.
// [a0,a1,a2,a3] -> [a0,a0,a2,a2]
func DupEven[T Lanes, V, M any](o Ops[T, V, M], v V) V {
	return permute(o, v, func(i int) int { return i &^ 1 })
}

// DupOdd copies each odd lane into the even lane below it. A single-lane
// vector is returned unchanged.
// [a0,a1,a2,a3] -> [a1,a1,a3,a3]
func DupOdd[T Lanes, V, M any](o Ops[T, V, M], v V) V {
	n := o.NumLanes()
	return permute(o, v, func(i int) int { return min(i|1, n-1) })
}

// concatHalves builds a vector whose lower half is one half of a and whose
// upper half is one half of b. On a single-lane backend it returns a.
func concatHalves[T Lanes, V, M any](o Ops[T, V, M], a, b V, aUpper, bUpper bool) V {
	n := o.NumLanes()
	half := n / 2
	if half == 0 {
		return a
	}
	var buf [maxLanes]T
	from := func(v V, upper bool, i int) T {
		if upper {
			return o.GetLane(v, half+i)
		}
		return o.GetLane(v, i)
	}
	for i := range half {
		buf[i] = from(a, aUpper, i)
		buf[half+i] = from(b, bUpper, i)
	}
	return o.Load(buf[:n])
}

// ConcatLowerLower joins the lower halves of a and b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,a1,b0,b1]
func ConcatLowerLower[T Lanes, V, M any](o Ops[T, V, M], a, b V) V {
	return concatHalves(o, a, b, false, false)
}

// ConcatUpperUpper joins the upper halves of a and b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,a3,b2,b3]
func ConcatUpperUpper[T Lanes, V, M any](o Ops[T, V, M], a, b V) V {
	return concatHalves(o, a, b, true, true)
}

// ConcatLowerUpper joins the lower half of a with the upper half of b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,a1,b2,b3]
func ConcatLowerUpper[T Lanes, V, M any](o Ops[T, V, M], a, b V) V {
	return concatHalves(o, a, b, false, true)
}

// ConcatUpperLower joins the upper half of a with the lower half of b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,a3,b0,b1]
func ConcatUpperLower[T Lanes, V, M any](o Ops[T, V, M], a, b V) V {
	return concatHalves(o, a, b, true, false)
}

// SwapAdjacentBlocks swaps each pair of adjacent 128-bit blocks. Vectors of
// a single block are returned unchanged.
func SwapAdjacentBlocks[T Lanes, V, M any](o Ops[T, V, M], v V) V {
	block := 16 / sizeOf[T]()
	if o.NumLanes() <= block {
		return v
	}
	return permute(o, v, func(i int) int { return i ^ block })
}

// SlideUpLanes moves every lane k positions up, filling the low k lanes
// with zero.
// k=1: [a0,a1,a2,a3] -> [0,a0,a1,a2]
func SlideUpLanes[T Lanes, V, M any](o Ops[T, V, M], v V, k int) V {
	n := o.NumLanes()
	if k <= 0 {
		return v
	}
	var buf [maxLanes]T
	for i := k; i < n; i++ {
		buf[i] = o.GetLane(v, i-k)
	}
	return o.Load(buf[:n])
}

// SlideDownLanes moves every lane k positions down, filling the high k
// lanes with zero.
// k=1: [a0,a1,a2,a3] -> [a1,a2,a3,0]
func SlideDownLanes[T Lanes, V, M any](o Ops[T, V, M], v V, k int) V {
	n := o.NumLanes()
	if k <= 0 {
		return v
	}
	var buf [maxLanes]T
	for i := 0; i+k < n; i++ {
		buf[i] = o.GetLane(v, i+k)
	}
	return o.Load(buf[:n])
}

// TableLookupLanes returns the vector whose lane i is lane idx[i] of tbl.
// Out-of-range indices yield zero. It panics if idx is shorter than one
// vector.
func TableLookupLanes[T Lanes, I Index, V, M any](o Ops[T, V, M], tbl V, idx []I) V {
	return TableLookupLanesOr(o, tbl, idx, o.Zero())
}

// TableLookupLanesOr is TableLookupLanes with out-of-range lanes taken from
// fallback instead of zero.
func TableLookupLanesOr[T Lanes, I Index, V, M any](o Ops[T, V, M], tbl V, idx []I, fallback V) V {
	n := o.NumLanes()
	_ = idx[n-1]
	var buf [maxLanes]T
	for i := range n {
		if j := int(idx[i]); j >= 0 && j < n {
			buf[i] = o.GetLane(tbl, j)
		} else {
			buf[i] = o.GetLane(fallback, i)
		}
	}
	return o.Load(buf[:n])
}
