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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturatedAdd(t *testing.T) {
	u8 := baselineFor[uint8]()
	got := lanesOf(u8, SaturatedAdd(u8, u8.PartialLoad([]uint8{250, 100, 0, 255}), u8.PartialLoad([]uint8{10, 50, 100, 1})))
	assert.Equal(t, []uint8{255, 150, 100, 255}, got[:4])

	i8 := baselineFor[int8]()
	goti := lanesOf(i8, SaturatedAdd(i8, i8.PartialLoad([]int8{120, -120, 50, -50}), i8.PartialLoad([]int8{10, -10, 50, -50})))
	assert.Equal(t, []int8{127, -128, 100, -100}, goti[:4])

	u16 := wideFor[uint16]()
	got16 := lanesOf(u16, SaturatedAdd(u16, u16.PartialLoad([]uint16{65530, 100, 0, 65535}), u16.PartialLoad([]uint16{10, 50, 100, 1})))
	assert.Equal(t, []uint16{65535, 150, 100, 65535}, got16[:4])

	i64 := maskedWideFor[int64]()
	got64 := lanesOf(i64, SaturatedAdd(i64, i64.PartialLoad([]int64{math.MaxInt64, math.MinInt64, -1}), i64.PartialLoad([]int64{1, -1, 1})))
	assert.Equal(t, []int64{math.MaxInt64, math.MinInt64, 0}, got64[:3])
}

func TestSaturatedSub(t *testing.T) {
	u8 := baselineFor[uint8]()
	got := lanesOf(u8, SaturatedSub(u8, u8.PartialLoad([]uint8{10, 100, 0, 255}), u8.PartialLoad([]uint8{20, 50, 100, 1})))
	assert.Equal(t, []uint8{0, 50, 0, 254}, got[:4])

	i8 := baselineFor[int8]()
	goti := lanesOf(i8, SaturatedSub(i8, i8.PartialLoad([]int8{-120, 120, 50, 0}), i8.PartialLoad([]int8{10, -10, 50, -128})))
	assert.Equal(t, []int8{-128, 127, 0, 127}, goti[:4])

	s := scalarFor[uint64]()
	assert.Equal(t, uint64(0), SaturatedSub(s, 1, 2))
}

// TestSaturatedMatchesWide compares every int8 pair against int16 math.
func TestSaturatedMatchesWide(t *testing.T) {
	o := scalarFor[int8]()
	clamp := func(x int) int8 { return int8(max(min(x, math.MaxInt8), math.MinInt8)) }
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			if got, want := SaturatedAdd(o, int8(a), int8(b)), clamp(a+b); got != want {
				t.Fatalf("SaturatedAdd(%d, %d) = %d, want %d", a, b, got, want)
			}
			if got, want := SaturatedSub(o, int8(a), int8(b)), clamp(a-b); got != want {
				t.Fatalf("SaturatedSub(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestClampVectors(t *testing.T) {
	o := baselineFor[float32]()
	got := lanesOf(o, Clamp(o, o.Load([]float32{-5, 0.5, 2, 10}), o.Splat(0), o.Splat(1)))
	assert.Equal(t, []float32{0, 0.5, 1, 1}, got)

	i := wideFor[int32]()
	goti := lanesOf(i, Clamp(i, i.Iota(-4), i.Splat(-1), i.Splat(2)))
	assert.Equal(t, []int32{-1, -1, -1, -1, 0, 1, 2, 2}, goti)
}

func TestAbsDiff(t *testing.T) {
	f := baselineFor[float64]()
	assert.Equal(t, []float64{3, 2.5}, lanesOf(f, AbsDiff(f, f.Load([]float64{1, -1}), f.Load([]float64{4, 1.5}))))

	u := baselineFor[uint8]()
	got := lanesOf(u, AbsDiff(u, u.PartialLoad([]uint8{10, 200, 0}), u.PartialLoad([]uint8{20, 50, 255})))
	assert.Equal(t, []uint8{10, 150, 255}, got[:3])
}

func TestAverageRound(t *testing.T) {
	u := baselineFor[uint8]()
	got := lanesOf(u, AverageRound(u, u.PartialLoad([]uint8{10, 20, 255, 0}), u.PartialLoad([]uint8{20, 30, 255, 1})))
	assert.Equal(t, []uint8{15, 25, 255, 1}, got[:4])

	// Signed lanes round half up, so -29/2 goes to -15.
	i := baselineFor[int32]()
	goti := lanesOf(i, AverageRound(i, i.Load([]int32{-10, 10, -5, 5}), i.Load([]int32{-20, 20, 6, -4})))
	assert.Equal(t, []int32{-15, 15, 1, 1}, goti)
}

func TestMulHigh(t *testing.T) {
	u := baselineFor[uint16]()
	in := u.PartialLoad([]uint16{0x8000, 0x4000, 0x1000, 0x0100})
	assert.Equal(t, []uint16{0x4000, 0x1000, 0x0100, 0x0001}, lanesOf(u, MulHigh(u, in, in))[:4])

	s := baselineFor[int16]()
	a := s.PartialLoad([]int16{0x4000, -0x4000, 0x1000, -0x1000})
	b := s.PartialLoad([]int16{0x4000, 0x4000, 0x1000, -0x1000})
	assert.Equal(t, []int16{0x1000, -0x1000, 0x0100, 0x0100}, lanesOf(s, MulHigh(s, a, b))[:4])
}

func TestShift(t *testing.T) {
	o := baselineFor[int32]()
	assert.Equal(t, []int32{-4, -2, 0, 1}, lanesOf(o, ShiftRight(o, o.Load([]int32{-8, -3, 1, 2}), 1)))
	u := baselineFor[uint32]()
	assert.Equal(t, []uint32{0xfffffffc, 2, 4, 6}, lanesOf(u, ShiftRight(u, ShiftLeft(u, u.Load([]uint32{0xfffffffe, 1, 2, 3}), 1), 0)))
}

func TestFloatClasses(t *testing.T) {
	o := wideFor[float32]()
	inf, nan := float32(math.Inf(1)), float32(math.NaN())
	v := o.Load([]float32{1, nan, inf, -inf, 0, -0.5, math.MaxFloat32, nan})

	assert.Equal(t, []bool{false, true, false, false, false, false, false, true}, maskOf(o, IsNaN(o, v)))
	assert.Equal(t, []bool{false, false, true, true, false, false, false, false}, maskOf(o, IsInf(o, v)))
	assert.Equal(t, []bool{true, false, false, false, true, true, true, false}, maskOf(o, IsFinite(o, v)))
}

func TestTestBit(t *testing.T) {
	o := baselineFor[uint32]()
	v := o.Load([]uint32{0x01, 0x02, 0x04, 0x0F})
	for bit, want := range [][]bool{
		{true, false, false, true},
		{false, true, false, true},
		{false, false, true, true},
		{false, false, false, true},
	} {
		assert.Equal(t, want, maskOf(o, TestBit(o, v, bit)), "bit %d", bit)
	}
}

func TestIfThenZero(t *testing.T) {
	o := baselineFor[float32]()
	v := o.Load([]float32{1, 2, 3, 4})
	m := o.FirstN(2)
	assert.Equal(t, []float32{1, 2, 0, 0}, lanesOf(o, IfThenElseZero(o, m, v)))
	assert.Equal(t, []float32{0, 0, 3, 4}, lanesOf(o, IfThenZeroElse(o, m, v)))

	i := wideFor[int16]()
	goti := lanesOf(i, ZeroIfNegative(i, i.Iota(-8)))
	assert.Equal(t, []int16{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7}, goti)

	f := baselineFor[float64]()
	assert.Equal(t, []float64{0, 2.5}, lanesOf(f, ZeroIfNegative(f, f.Load([]float64{-1e-300, 2.5}))))
}
