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

// The vector backends are zero-size, so converting one to its Ops
// interface does not allocate.

type baselineOps[T Lanes] struct {
	vecEngine[T, Vec128[T], LaneMask128[T], *Vec128[T], *LaneMask128[T]]
}

func (baselineOps[T]) Level() Level { return LevelBaseline }
func (baselineOps[T]) Token() Token { return baselineToken{} }
func (baselineOps[T]) baselineOps() {}

type wideOps[T Lanes] struct {
	vecEngine[T, Vec256[T], LaneMask256[T], *Vec256[T], *LaneMask256[T]]
}

func (wideOps[T]) Level() Level { return LevelWide }
func (wideOps[T]) Token() Token { return wideToken{} }
func (wideOps[T]) wideOps()     {}

// wideF32Arith is native 256-bit float32 arithmetic. It is installed only
// when the CPU grants the Wide token. MulAdd is left to the portable engine:
// a native single-precision FMA rounds differently.
type wideF32Arith interface {
	add(a, b Vec256[float32]) Vec256[float32]
	sub(a, b Vec256[float32]) Vec256[float32]
	mul(a, b Vec256[float32]) Vec256[float32]
	div(a, b Vec256[float32]) Vec256[float32]
}

var nativeWideF32 wideF32Arith

// nativeF32 returns the native float32 arithmetic, or nil when T is not
// float32 or none is installed.
func (wideOps[T]) nativeF32() wideF32Arith {
	var zero T
	if _, ok := any(zero).(float32); !ok {
		return nil
	}
	return nativeWideF32
}

func wideF32Call[T Lanes](a, b Vec256[T], fn func(a, b Vec256[float32]) Vec256[float32]) Vec256[T] {
	return any(fn(any(a).(Vec256[float32]), any(b).(Vec256[float32]))).(Vec256[T])
}

func (o wideOps[T]) Add(a, b Vec256[T]) Vec256[T] {
	if n := o.nativeF32(); n != nil {
		return wideF32Call(a, b, n.add)
	}
	return o.vecEngine.Add(a, b)
}

func (o wideOps[T]) Sub(a, b Vec256[T]) Vec256[T] {
	if n := o.nativeF32(); n != nil {
		return wideF32Call(a, b, n.sub)
	}
	return o.vecEngine.Sub(a, b)
}

func (o wideOps[T]) Mul(a, b Vec256[T]) Vec256[T] {
	if n := o.nativeF32(); n != nil {
		return wideF32Call(a, b, n.mul)
	}
	return o.vecEngine.Mul(a, b)
}

func (o wideOps[T]) Div(a, b Vec256[T]) Vec256[T] {
	if n := o.nativeF32(); n != nil {
		return wideF32Call(a, b, n.div)
	}
	return o.vecEngine.Div(a, b)
}

type maskedWideOps[T Lanes] struct {
	vecEngine[T, Vec512[T], BitMask512[T], *Vec512[T], *BitMask512[T]]
}

func (maskedWideOps[T]) Level() Level   { return LevelMaskedWide }
func (maskedWideOps[T]) Token() Token   { return maskedWideToken{} }
func (maskedWideOps[T]) maskedWideOps() {}

// Select on a bit-packed mask walks the mask bits instead of lanes.
func (o maskedWideOps[T]) Select(m BitMask512[T], a, b Vec512[T]) Vec512[T] {
	al, bl := a.lanes(), b.lanes()
	for i := range al {
		if m.bits>>uint(i)&1 == 0 {
			al[i] = bl[i]
		}
	}
	return a
}

func (o maskedWideOps[T]) MaskAnd(a, b BitMask512[T]) BitMask512[T] {
	return BitMask512[T]{bits: a.bits & b.bits}
}

func (o maskedWideOps[T]) MaskOr(a, b BitMask512[T]) BitMask512[T] {
	return BitMask512[T]{bits: a.bits | b.bits}
}

func (o maskedWideOps[T]) MaskXor(a, b BitMask512[T]) BitMask512[T] {
	return BitMask512[T]{bits: a.bits ^ b.bits}
}

func (o maskedWideOps[T]) MaskAndNot(a, b BitMask512[T]) BitMask512[T] {
	return BitMask512[T]{bits: ^a.bits & b.bits}
}

func (o maskedWideOps[T]) MaskNot(m BitMask512[T]) BitMask512[T] {
	return BitMask512FromBits[T](^m.bits)
}

func (o maskedWideOps[T]) MaskBits(m BitMask512[T]) uint64 { return m.bits }
