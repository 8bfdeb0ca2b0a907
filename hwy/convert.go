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

import (
	"fmt"
	"math"
)

// This file provides lane type conversions between two backends of the same
// level. They are written once over Ops, so every level shares the exact
// lane semantics of convertLane and truncateLane.

// intBounds returns the range of the integer lane type T.
func intBounds[T Lanes]() (lo int64, hi uint64) {
	n := LaneBits[T]()
	if kindOf[T]() == unsignedLane {
		if n == 64 {
			return 0, math.MaxUint64
		}
		return 0, 1<<uint(n) - 1
	}
	return -1 << uint(n-1), 1<<uint(n-1) - 1
}

// convertLane converts x to T.
//
// Float to integer truncates toward zero, maps NaN to 0 and saturates
// out-of-range values. Integer to integer saturates. Anything to float is
// the nearest representable value.
func convertLane[T, F Lanes](x F) T {
	if kindOf[T]() == floatLane {
		return T(x)
	}
	lo, hi := intBounds[T]()
	switch kindOf[F]() {
	case floatLane:
		f := float64(x)
		switch {
		case math.IsNaN(f):
			return 0
		case f <= float64(lo):
			return T(lo)
		case f >= float64(hi)+1:
			return T(hi)
		}
		return T(f)
	case signedLane:
		s := int64(x)
		switch {
		case s < lo:
			return T(lo)
		case s > 0 && uint64(s) > hi:
			return T(hi)
		}
		return T(s)
	default:
		u := uint64(x)
		if u > hi {
			return T(hi)
		}
		return T(u)
	}
}

// truncateLane is convertLane except that integer to integer keeps the low
// bits (two's-complement wrap) instead of saturating.
func truncateLane[T, F Lanes](x F) T {
	if kindOf[T]() == floatLane || kindOf[F]() == floatLane {
		return convertLane[T](x)
	}
	return T(x)
}

func checkLanes(op string, from, to, want int) {
	if to != want {
		panic(fmt.Sprintf("hwy: %s: %d source lanes cannot produce %d destination lanes", op, from, to))
	}
}

// Convert converts every lane of v to the lane type of to, which must have
// the same lane count (for example float32 and int32 at the same level).
func Convert[F, T Lanes, VF, MF, VT, MT any](from Ops[F, VF, MF], to Ops[T, VT, MT], v VF) VT {
	n := from.NumLanes()
	checkLanes("Convert", n, to.NumLanes(), n)
	var buf [maxLanes]T
	for i := range n {
		buf[i] = convertLane[T](from.GetLane(v, i))
	}
	return to.Load(buf[:n])
}

// promoteHalf converts the half of v starting at lane offset into a vector
// with twice as wide lanes.
func promoteHalf[F, T Lanes, VF, MF, VT, MT any](op string, from Ops[F, VF, MF], to Ops[T, VT, MT], v VF, upper bool) VT {
	n, m := from.NumLanes(), to.NumLanes()
	if n == 1 && m == 1 {
		if upper {
			return to.Zero()
		}
		return to.Splat(convertLane[T](from.GetLane(v, 0)))
	}
	checkLanes(op, n, 2*m, n)
	offset := 0
	if upper {
		offset = m
	}
	var buf [maxLanes]T
	for i := range m {
		buf[i] = convertLane[T](from.GetLane(v, offset+i))
	}
	return to.Load(buf[:m])
}

// PromoteLower widens the lower half of v (sign or zero extension for
// integers, exact widening for floats). to must have half the lanes of from.
// On the scalar backend the single lane is converted.
func PromoteLower[F, T Lanes, VF, MF, VT, MT any](from Ops[F, VF, MF], to Ops[T, VT, MT], v VF) VT {
	return promoteHalf("PromoteLower", from, to, v, false)
}

// PromoteUpper widens the upper half of v. On the scalar backend it returns
// zero, since the single lane belongs to the lower half.
func PromoteUpper[F, T Lanes, VF, MF, VT, MT any](from Ops[F, VF, MF], to Ops[T, VT, MT], v VF) VT {
	return promoteHalf("PromoteUpper", from, to, v, true)
}

// Promote returns PromoteLower and PromoteUpper of v.
func Promote[F, T Lanes, VF, MF, VT, MT any](from Ops[F, VF, MF], to Ops[T, VT, MT], v VF) (lo, hi VT) {
	return PromoteLower(from, to, v), PromoteUpper(from, to, v)
}

func demoteTwo[F, T Lanes, VF, MF, VT, MT any](op string, from Ops[F, VF, MF], to Ops[T, VT, MT], lo, hi VF, lane func(F) T) VT {
	n, m := from.NumLanes(), to.NumLanes()
	if n == 1 && m == 1 {
		return to.Splat(lane(from.GetLane(lo, 0)))
	}
	checkLanes(op, n, m, 2*n)
	var buf [maxLanes]T
	for i := range n {
		buf[i] = lane(from.GetLane(lo, i))
		buf[n+i] = lane(from.GetLane(hi, i))
	}
	return to.Load(buf[:m])
}

// DemoteTwo narrows lo and hi into one vector with saturation: lo fills the
// lower half, hi the upper half. On the scalar backend only lo is used.
func DemoteTwo[F, T Lanes, VF, MF, VT, MT any](from Ops[F, VF, MF], to Ops[T, VT, MT], lo, hi VF) VT {
	return demoteTwo("DemoteTwo", from, to, lo, hi, convertLane[T, F])
}

// TruncateTwo is DemoteTwo with two's-complement wrapping instead of
// saturation for integer lanes.
func TruncateTwo[F, T Lanes, VF, MF, VT, MT any](from Ops[F, VF, MF], to Ops[T, VT, MT], lo, hi VF) VT {
	return demoteTwo("TruncateTwo", from, to, lo, hi, truncateLane[T, F])
}

func roundWith[T Floats, V, M any](o Ops[T, V, M], v V, f func(float64) float64) V {
	return laneWise(o, v, func(x T) T { return T(f(float64(x))) })
}

// Round rounds each lane to the nearest integer, ties to even.
func Round[T Floats, V, M any](o Ops[T, V, M], v V) V { return roundWith(o, v, math.RoundToEven) }

// Trunc truncates each lane toward zero.
func Trunc[T Floats, V, M any](o Ops[T, V, M], v V) V { return roundWith(o, v, math.Trunc) }

// Ceil rounds each lane up (toward positive infinity).
func Ceil[T Floats, V, M any](o Ops[T, V, M], v V) V { return roundWith(o, v, math.Ceil) }

// Floor rounds each lane down (toward negative infinity).
func Floor[T Floats, V, M any](o Ops[T, V, M], v V) V { return roundWith(o, v, math.Floor) }
