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
	"math/bits"
	"testing"
)

// bitCase is a lane-wise bit operation test: input lanes and the lanes the
// operation must produce, padded with zero lanes to a full vector.
type bitCase[T Integers] struct {
	name  string
	input []T
	want  []T
}

func runBitCases[T Integers](t *testing.T, op func(Ops[T, Vec128[T], LaneMask128[T]], Vec128[T]) Vec128[T], tests []bitCase[T]) {
	t.Helper()
	o := baselineFor[T]()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lanesOf(o, op(o, o.PartialLoad(tt.input)))
			assertLanes(t, tt.name, got[:len(tt.want)], tt.want)
		})
	}
}

func TestPopCount(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		runBitCases(t, PopCount, []bitCase[uint8]{
			{"zeros", []uint8{0, 0, 0, 0}, []uint8{0, 0, 0, 0}},
			{"ones", []uint8{0xFF, 0xFF, 0xFF, 0xFF}, []uint8{8, 8, 8, 8}},
			{"mixed", []uint8{0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}, []uint8{1, 2, 3, 4, 5, 6, 7, 8}},
			{"powers_of_two", []uint8{1, 2, 4, 8, 16, 32, 64, 128}, []uint8{1, 1, 1, 1, 1, 1, 1, 1}},
			{"alternating", []uint8{0xAA, 0x55}, []uint8{4, 4}},
		})
	})
	t.Run("int32", func(t *testing.T) {
		runBitCases(t, PopCount, []bitCase[int32]{
			{"zeros", []int32{0, 0, 0, 0}, []int32{0, 0, 0, 0}},
			{"negative_one", []int32{-1, -1, -1, -1}, []int32{32, 32, 32, 32}},
			{"mixed", []int32{1, 3, 7, 15}, []int32{1, 2, 3, 4}},
		})
	})
	t.Run("uint64", func(t *testing.T) {
		runBitCases(t, PopCount, []bitCase[uint64]{
			{"max", []uint64{^uint64(0), 0x8000000000000001}, []uint64{64, 2}},
		})
	})
}

func TestLeadingZeroCount(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		runBitCases(t, LeadingZeroCount, []bitCase[uint8]{
			{"zeros", []uint8{0, 0, 0, 0}, []uint8{8, 8, 8, 8}},
			{"ones", []uint8{0xFF, 0x80, 0x40, 0x01}, []uint8{0, 0, 1, 7}},
			{"powers_of_two", []uint8{1, 2, 4, 8, 16, 32, 64, 128}, []uint8{7, 6, 5, 4, 3, 2, 1, 0}},
		})
	})
	t.Run("int16", func(t *testing.T) {
		runBitCases(t, LeadingZeroCount, []bitCase[int16]{
			{"signs", []int16{0, -1, 1, 0x100}, []int16{16, 0, 15, 7}},
		})
	})
}

func TestTrailingZeroCount(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		runBitCases(t, TrailingZeroCount, []bitCase[uint8]{
			{"zeros", []uint8{0, 0}, []uint8{8, 8}},
			{"powers_of_two", []uint8{1, 2, 4, 8, 16, 32, 64, 128}, []uint8{0, 1, 2, 3, 4, 5, 6, 7}},
			{"mixed", []uint8{0x03, 0x0C, 0xF0}, []uint8{0, 2, 4}},
		})
	})
	t.Run("int64", func(t *testing.T) {
		runBitCases(t, TrailingZeroCount, []bitCase[int64]{
			{"edges", []int64{0, -1 << 63}, []int64{64, 63}},
		})
	})
}

func TestRotateBitsRight(t *testing.T) {
	tests := []struct {
		name  string
		input []uint8
		count int
		want  []uint8
	}{
		{"rotate_by_0", []uint8{0xAB, 0xCD}, 0, []uint8{0xAB, 0xCD}},
		{"rotate_by_1", []uint8{0x01}, 1, []uint8{0x80}},
		{"rotate_by_4", []uint8{0xAB}, 4, []uint8{0xBA}},
		{"rotate_by_8_wraps", []uint8{0xAB}, 8, []uint8{0xAB}},
		{"rotate_by_negative", []uint8{0x01}, -1, []uint8{0x02}},
	}
	o := baselineFor[uint8]()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lanesOf(o, RotateBitsRight(o, o.PartialLoad(tt.input), tt.count))
			assertLanes(t, tt.name, got[:len(tt.want)], tt.want)
		})
	}

	w := wideFor[uint32]()
	got := lanesOf(w, RotateBitsRight(w, w.Splat(0x12345678), 8))
	for i, x := range got {
		if x != 0x78123456 {
			t.Errorf("lane %d: got %#x, want 0x78123456", i, x)
		}
	}
}

func TestReverseBits(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		runBitCases(t, ReverseBits, []bitCase[uint8]{
			{"zeros", []uint8{0}, []uint8{0}},
			{"single_bits", []uint8{0x01, 0x80, 0x0F}, []uint8{0x80, 0x01, 0xF0}},
		})
	})
	t.Run("uint16", func(t *testing.T) {
		runBitCases(t, ReverseBits, []bitCase[uint16]{
			{"low_bit", []uint16{1, 0x00FF}, []uint16{0x8000, 0xFF00}},
		})
	})
}

func TestHighestSetBitIndex(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		runBitCases(t, HighestSetBitIndex, []bitCase[uint8]{
			{"zeros", []uint8{0, 0}, []uint8{0xFF, 0xFF}},
			{"ones", []uint8{1, 2, 4, 8, 16, 32, 64, 128}, []uint8{0, 1, 2, 3, 4, 5, 6, 7}},
			{"all_ones", []uint8{0xFF, 0x7F}, []uint8{7, 6}},
		})
	})
	t.Run("int32", func(t *testing.T) {
		runBitCases(t, HighestSetBitIndex, []bitCase[int32]{
			{"zero_is_minus_one", []int32{0, 1, -1, 1 << 30}, []int32{-1, 0, 31, 30}},
		})
	})
}

// TestBitOpsEveryLevel checks each level against math/bits on random lanes.
func TestBitOpsEveryLevel(t *testing.T) {
	r := newRand(t)
	check := func(t *testing.T, name string, got []uint32, in []uint32, f func(uint32) uint32) {
		t.Helper()
		want := make([]uint32, len(in))
		for i, x := range in {
			want[i] = f(x)
		}
		assertLanes(t, name, got, want)
	}
	run := func(t *testing.T, n int, apply func(in []uint32) (pop, lz, tz, rev []uint32)) {
		in := sampleLanes[uint32](r, n)
		pop, lz, tz, rev := apply(in)
		check(t, "PopCount", pop, in, func(x uint32) uint32 { return uint32(bits.OnesCount32(x)) })
		check(t, "LeadingZeroCount", lz, in, func(x uint32) uint32 { return uint32(bits.LeadingZeros32(x)) })
		check(t, "TrailingZeroCount", tz, in, func(x uint32) uint32 { return uint32(bits.TrailingZeros32(x)) })
		check(t, "ReverseBits", rev, in, bits.Reverse32)
	}
	t.Run("scalar", func(t *testing.T) { run(t, 1, applyBitOps(scalarFor[uint32]())) })
	t.Run("baseline", func(t *testing.T) { run(t, 4, applyBitOps(baselineFor[uint32]())) })
	t.Run("wide", func(t *testing.T) { run(t, 8, applyBitOps(wideFor[uint32]())) })
	t.Run("masked-wide", func(t *testing.T) { run(t, 16, applyBitOps(maskedWideFor[uint32]())) })
}

func applyBitOps[V, M any](o Ops[uint32, V, M]) func(in []uint32) (pop, lz, tz, rev []uint32) {
	return func(in []uint32) (pop, lz, tz, rev []uint32) {
		v := o.Load(in)
		return lanesOf(o, PopCount(o, v)), lanesOf(o, LeadingZeroCount(o, v)),
			lanesOf(o, TrailingZeroCount(o, v)), lanesOf(o, ReverseBits(o, v))
	}
}

func BenchmarkPopCount_U32(b *testing.B) {
	o := wideFor[uint32]()
	v := o.Load([]uint32{0xAAAAAAAA, 0x55555555, 0xFFFF0000, 0x00FFFF00, 0x12345678, 0x87654321, 0xDEADBEEF, 0xCAFEBABE})
	for b.Loop() {
		v = PopCount(o, v)
	}
}

func BenchmarkRotateBitsRight_U32(b *testing.B) {
	o := wideFor[uint32]()
	v := o.Iota(0x12345678)
	for b.Loop() {
		v = RotateBitsRight(o, v, 3)
	}
}
