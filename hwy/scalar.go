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

// scalarOps is the one-lane reference backend. Every vector backend must
// agree with it lane by lane.
type scalarOps[T Lanes] struct{}

func (scalarOps[T]) Level() Level  { return LevelScalar }
func (scalarOps[T]) Token() Token  { return Scalar{} }
func (scalarOps[T]) NumLanes() int { return 1 }
func (scalarOps[T]) scalarOps()    {}

func (scalarOps[T]) Zero() T                  { return 0 }
func (scalarOps[T]) Splat(x T) T              { return x }
func (scalarOps[T]) Iota(start T) T           { return start }
func (scalarOps[T]) FromLanes(lanes []T) T    { return lanes[0] }
func (scalarOps[T]) GetLane(v T, i int) T     { return [1]T{v}[i] }
func (scalarOps[T]) Load(src []T) T           { return src[0] }
func (scalarOps[T]) Store(v T, dst []T)       { dst[0] = v }
func (scalarOps[T]) FirstN(k int) bool        { return k > 0 }
func (scalarOps[T]) Broadcast(v T, i int) T   { return [1]T{v}[i] }
func (scalarOps[T]) Reverse(v T) T            { return v }
func (scalarOps[T]) InterleaveLower(a, _ T) T { return a }
func (scalarOps[T]) InterleaveUpper(_, b T) T { return b }

func (scalarOps[T]) SetLane(v T, i int, x T) T {
	l := [1]T{v}
	l[i] = x
	return l[0]
}

func (scalarOps[T]) PartialLoad(src []T) T {
	if len(src) == 0 {
		return 0
	}
	return src[0]
}

func (scalarOps[T]) PartialStore(v T, dst []T) {
	if len(dst) > 0 {
		dst[0] = v
	}
}

func (scalarOps[T]) PartialLoadLast(src []T) T {
	if len(src) == 0 {
		return 0
	}
	return src[len(src)-1]
}

func (scalarOps[T]) PartialStoreLast(v T, dst []T) {
	if len(dst) > 0 {
		dst[len(dst)-1] = v
	}
}

func (scalarOps[T]) MaskLoad(m bool, src []T) T {
	if m {
		return src[0]
	}
	return 0
}

func (scalarOps[T]) MaskStore(m bool, v T, dst []T) {
	if m {
		dst[0] = v
	}
}

func (scalarOps[T]) MaskBetween(start, end int) bool { return start <= 0 && end > 0 }

func (scalarOps[T]) Add(a, b T) T       { return a + b }
func (scalarOps[T]) Sub(a, b T) T       { return a - b }
func (scalarOps[T]) Mul(a, b T) T       { return a * b }
func (scalarOps[T]) Div(a, b T) T       { return divLane(a, b) }
func (scalarOps[T]) MulAdd(a, b, c T) T { return mulAddLane(a, b, c) }
func (scalarOps[T]) Neg(a T) T          { return -a }
func (scalarOps[T]) Abs(a T) T          { return absLane(a) }
func (scalarOps[T]) Min(a, b T) T       { return minLane(a, b) }
func (scalarOps[T]) Max(a, b T) T       { return maxLane(a, b) }

func (scalarOps[T]) WideningMul(a, b T) (lo, hi T) { return wideningMulLane(a, b) }

func (scalarOps[T]) And(a, b T) T    { return laneFromBits[T](laneBits(a) & laneBits(b)) }
func (scalarOps[T]) Or(a, b T) T     { return laneFromBits[T](laneBits(a) | laneBits(b)) }
func (scalarOps[T]) Xor(a, b T) T    { return laneFromBits[T](laneBits(a) ^ laneBits(b)) }
func (scalarOps[T]) AndNot(a, b T) T { return laneFromBits[T](^laneBits(a) & laneBits(b)) }
func (scalarOps[T]) Not(a T) T       { return laneFromBits[T](^laneBits(a)) }

func (scalarOps[T]) Equal(a, b T) bool        { return a == b }
func (scalarOps[T]) NotEqual(a, b T) bool     { return a != b }
func (scalarOps[T]) Less(a, b T) bool         { return a < b }
func (scalarOps[T]) LessEqual(a, b T) bool    { return a <= b }
func (scalarOps[T]) Greater(a, b T) bool      { return a > b }
func (scalarOps[T]) GreaterEqual(a, b T) bool { return a >= b }

func (scalarOps[T]) Select(m bool, a, b T) T {
	if m {
		return a
	}
	return b
}

func (scalarOps[T]) MaskAnd(a, b bool) bool    { return a && b }
func (scalarOps[T]) MaskOr(a, b bool) bool     { return a || b }
func (scalarOps[T]) MaskXor(a, b bool) bool    { return a != b }
func (scalarOps[T]) MaskAndNot(a, b bool) bool { return !a && b }
func (scalarOps[T]) MaskNot(m bool) bool       { return !m }
func (scalarOps[T]) AllTrue(m bool) bool       { return m }
func (scalarOps[T]) AnyTrue(m bool) bool       { return m }

func (scalarOps[T]) CountTrue(m bool) int {
	if m {
		return 1
	}
	return 0
}

func (scalarOps[T]) FirstTrue(m bool) int {
	if m {
		return 0
	}
	return 1
}

func (scalarOps[T]) MaskBits(m bool) uint64 {
	if m {
		return 1
	}
	return 0
}

func (scalarOps[T]) RotateRight(v T, _ int) T { return v }
func (scalarOps[T]) RotateLeft(v T, _ int) T  { return v }

func (scalarOps[T]) Shuffle(v T, idx []int) T {
	_ = idx[0]
	return v
}

func (scalarOps[T]) ReduceSum(v T) T     { return v }
func (scalarOps[T]) ReduceProduct(v T) T { return v }
func (scalarOps[T]) ReduceMin(v T) T     { return v }
func (scalarOps[T]) ReduceMax(v T) T     { return v }
