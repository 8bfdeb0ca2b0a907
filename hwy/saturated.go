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

import "math"

// This file provides saturated arithmetic and related lane operations.
// Saturated operations clamp results to the lane type's range instead of
// wrapping.

// SaturatedAdd adds lane-wise, clamping to the range of T.
// For example, uint8: 250 + 10 = 255 (not 4).
func SaturatedAdd[T Integers, V, M any](o Ops[T, V, M], a, b V) V {
	return laneWise2(o, a, b, saturatedAddLane[T])
}

// SaturatedSub subtracts lane-wise, clamping to the range of T.
// For example, uint8: 5 - 10 = 0 (not 251).
func SaturatedSub[T Integers, V, M any](o Ops[T, V, M], a, b V) V {
	return laneWise2(o, a, b, saturatedSubLane[T])
}

// Clamp limits every lane of v to [lo, hi].
func Clamp[T Lanes, V, M any](o Ops[T, V, M], v, lo, hi V) V {
	return o.Min(o.Max(v, lo), hi)
}

// AbsDiff returns |a - b| per lane. Signed integer differences that do not
// fit in T wrap.
func AbsDiff[T Lanes, V, M any](o Ops[T, V, M], a, b V) V {
	if isFloat[T]() {
		return o.Abs(o.Sub(a, b))
	}
	return o.Sub(o.Max(a, b), o.Min(a, b))
}

// AverageRound returns (a + b + 1) / 2 per lane, rounded toward negative
// infinity and computed without overflow.
func AverageRound[T Integers, V, M any](o Ops[T, V, M], a, b V) V {
	return o.Sub(o.Or(a, b), ShiftRight(o, o.Xor(a, b), 1))
}

// MulHigh returns the upper half of each lane's double-width product.
func MulHigh[T Integers, V, M any](o Ops[T, V, M], a, b V) V {
	_, hi := o.WideningMul(a, b)
	return hi
}

// ShiftRight shifts every lane right by count bits. Signed lanes shift
// arithmetically.
func ShiftRight[T Integers, V, M any](o Ops[T, V, M], v V, count int) V {
	return laneWise(o, v, func(x T) T { return x >> uint(count) })
}

// ShiftLeft shifts every lane left by count bits.
func ShiftLeft[T Integers, V, M any](o Ops[T, V, M], v V, count int) V {
	return laneWise(o, v, func(x T) T { return x << uint(count) })
}

// IsNaN sets the lanes of v that are NaN.
func IsNaN[T Floats, V, M any](o Ops[T, V, M], v V) M { return o.NotEqual(v, v) }

// IsInf sets the lanes of v that are positive or negative infinity.
func IsInf[T Floats, V, M any](o Ops[T, V, M], v V) M {
	return o.Equal(o.Abs(v), o.Splat(T(math.Inf(1))))
}

// IsFinite sets the lanes of v that are neither infinite nor NaN.
func IsFinite[T Floats, V, M any](o Ops[T, V, M], v V) M {
	return o.Less(o.Abs(v), o.Splat(T(math.Inf(1))))
}

// TestBit sets the lanes of v whose bit number bit is set.
func TestBit[T Integers, V, M any](o Ops[T, V, M], v V, bit int) M {
	return o.NotEqual(o.And(v, o.Splat(T(1)<<uint(bit))), o.Zero())
}

// IfThenElseZero returns v where m is set and zero elsewhere.
func IfThenElseZero[T Lanes, V, M any](o Ops[T, V, M], m M, v V) V {
	return o.Select(m, v, o.Zero())
}

// IfThenZeroElse returns zero where m is set and v elsewhere.
func IfThenZeroElse[T Lanes, V, M any](o Ops[T, V, M], m M, v V) V {
	return o.Select(m, o.Zero(), v)
}

// ZeroIfNegative replaces negative lanes with zero.
func ZeroIfNegative[T Lanes, V, M any](o Ops[T, V, M], v V) V {
	return IfThenZeroElse(o, o.Less(v, o.Zero()), v)
}

// laneWise2 applies f to every pair of lanes of a and b.
func laneWise2[T Lanes, V, M any](o Ops[T, V, M], a, b V, f func(x, y T) T) V {
	for i := range o.NumLanes() {
		a = o.SetLane(a, i, f(o.GetLane(a, i), o.GetLane(b, i)))
	}
	return a
}

func saturatedAddLane[T Integers](a, b T) T {
	s := a + b
	if kindOf[T]() == unsignedLane {
		if s < a {
			return allOnes[T]()
		}
		return s
	}
	if (a < 0) == (b < 0) && (s < 0) != (a < 0) {
		return signedLimit[T](a < 0)
	}
	return s
}

func saturatedSubLane[T Integers](a, b T) T {
	d := a - b
	if kindOf[T]() == unsignedLane {
		if b > a {
			return 0
		}
		return d
	}
	if (a < 0) != (b < 0) && (d < 0) != (a < 0) {
		return signedLimit[T](a < 0)
	}
	return d
}

// signedLimit returns the minimum of T when neg is set, else the maximum.
func signedLimit[T Integers](neg bool) T {
	lo, hi := intBounds[T]()
	if neg {
		return T(lo)
	}
	return T(hi)
}
