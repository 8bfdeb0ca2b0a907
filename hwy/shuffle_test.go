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
	"reflect"
	"testing"
)

func TestReverseGroups(t *testing.T) {
	o := wideFor[float32]()
	v := o.Iota(0)
	tests := []struct {
		name   string
		got    Vec256[float32]
		expect []float32
	}{
		{"Reverse2", Reverse2(o, v), []float32{1, 0, 3, 2, 5, 4, 7, 6}},
		{"Reverse4", Reverse4(o, v), []float32{3, 2, 1, 0, 7, 6, 5, 4}},
		{"Reverse8", Reverse8(o, v), []float32{7, 6, 5, 4, 3, 2, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lanesOf(o, tt.got); !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("%s() = %v, want %v", tt.name, got, tt.expect)
			}
		})
	}

	// Groups wider than the vector reverse the whole vector.
	b := baselineFor[float64]()
	if got := lanesOf(b, Reverse8(b, b.Iota(0))); !reflect.DeepEqual(got, []float64{1, 0}) {
		t.Errorf("Reverse8() on two lanes = %v, want [1 0]", got)
	}
}

func TestConcat(t *testing.T) {
	o := wideFor[float32]()
	a := o.Iota(0)
	b := o.Iota(10)
	tests := []struct {
		name   string
		got    Vec256[float32]
		expect []float32
	}{
		{"ConcatLowerLower", ConcatLowerLower(o, a, b), []float32{0, 1, 2, 3, 10, 11, 12, 13}},
		{"ConcatUpperUpper", ConcatUpperUpper(o, a, b), []float32{4, 5, 6, 7, 14, 15, 16, 17}},
		{"ConcatLowerUpper", ConcatLowerUpper(o, a, b), []float32{0, 1, 2, 3, 14, 15, 16, 17}},
		{"ConcatUpperLower", ConcatUpperLower(o, a, b), []float32{4, 5, 6, 7, 10, 11, 12, 13}},
		{"OddEven", OddEven(o, a, b), []float32{10, 1, 12, 3, 14, 5, 16, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lanesOf(o, tt.got); !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("%s() = %v, want %v", tt.name, got, tt.expect)
			}
		})
	}

	s := scalarFor[float32]()
	if got := ConcatUpperUpper(s, 1, 2); got != 1 {
		t.Errorf("ConcatUpperUpper() on scalar = %v, want 1", got)
	}
}

func TestDup(t *testing.T) {
	o := wideFor[float32]()
	v := o.Iota(0)
	if got, expect := lanesOf(o, DupEven(o, v)), []float32{0, 0, 2, 2, 4, 4, 6, 6}; !reflect.DeepEqual(got, expect) {
		t.Errorf("DupEven() = %v, want %v", got, expect)
	}
	if got, expect := lanesOf(o, DupOdd(o, v)), []float32{1, 1, 3, 3, 5, 5, 7, 7}; !reflect.DeepEqual(got, expect) {
		t.Errorf("DupOdd() = %v, want %v", got, expect)
	}
	if got := DupOdd(scalarFor[int8](), 5); got != 5 {
		t.Errorf("DupOdd() on scalar = %v, want 5", got)
	}
}

func TestSwapAdjacentBlocks(t *testing.T) {
	// For float32, a 128-bit block is 4 lanes.
	w := wideFor[float32]()
	if got, expect := lanesOf(w, SwapAdjacentBlocks(w, w.Iota(0))), []float32{4, 5, 6, 7, 0, 1, 2, 3}; !reflect.DeepEqual(got, expect) {
		t.Errorf("SwapAdjacentBlocks() = %v, want %v", got, expect)
	}

	// For float64 on 512 bits, a block is 2 lanes and pairs of blocks swap.
	m := maskedWideFor[float64]()
	if got, expect := lanesOf(m, SwapAdjacentBlocks(m, m.Iota(0))), []float64{2, 3, 0, 1, 6, 7, 4, 5}; !reflect.DeepEqual(got, expect) {
		t.Errorf("SwapAdjacentBlocks() = %v, want %v", got, expect)
	}

	b := baselineFor[float64]()
	if got, expect := lanesOf(b, SwapAdjacentBlocks(b, b.Iota(0))), []float64{0, 1}; !reflect.DeepEqual(got, expect) {
		t.Errorf("SwapAdjacentBlocks() on one block = %v, want %v", got, expect)
	}
}

func TestSlideLanes(t *testing.T) {
	o := baselineFor[int32]()
	v := o.Iota(1)
	tests := []struct {
		name   string
		got    Vec128[int32]
		expect []int32
	}{
		{"up 1", SlideUpLanes(o, v, 1), []int32{0, 1, 2, 3}},
		{"up 3", SlideUpLanes(o, v, 3), []int32{0, 0, 0, 1}},
		{"up 4", SlideUpLanes(o, v, 4), []int32{0, 0, 0, 0}},
		{"up 0", SlideUpLanes(o, v, 0), []int32{1, 2, 3, 4}},
		{"down 1", SlideDownLanes(o, v, 1), []int32{2, 3, 4, 0}},
		{"down 2", SlideDownLanes(o, v, 2), []int32{3, 4, 0, 0}},
		{"down 9", SlideDownLanes(o, v, 9), []int32{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lanesOf(o, tt.got); !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("got %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestTableLookupLanes(t *testing.T) {
	o := wideFor[int32]()
	tbl := o.Load([]int32{10, 20, 30, 40, 50, 60, 70, 80})

	got := lanesOf(o, TableLookupLanes(o, tbl, []int32{0, 2, 4, 6, 1, 3, 5, 7}))
	if expect := []int32{10, 30, 50, 70, 20, 40, 60, 80}; !reflect.DeepEqual(got, expect) {
		t.Errorf("TableLookupLanes() = %v, want %v", got, expect)
	}

	got = lanesOf(o, TableLookupLanes(o, tbl, []int64{7, -1, 8, 0, 0, 0, 0, 100}))
	if expect := []int32{80, 0, 0, 10, 10, 10, 10, 0}; !reflect.DeepEqual(got, expect) {
		t.Errorf("TableLookupLanes() out of range = %v, want %v", got, expect)
	}

	got = lanesOf(o, TableLookupLanesOr(o, tbl, []int32{-1, 1, 2, 3, 4, 5, 6, 99}, o.Splat(-9)))
	if expect := []int32{-9, 20, 30, 40, 50, 60, 70, -9}; !reflect.DeepEqual(got, expect) {
		t.Errorf("TableLookupLanesOr() = %v, want %v", got, expect)
	}

	defer func() {
		if recover() == nil {
			t.Error("TableLookupLanes() with short indices did not panic")
		}
	}()
	TableLookupLanes(o, tbl, []int32{0, 1})
}

func BenchmarkReverse2_F32(b *testing.B) {
	o := wideFor[float32]()
	v := o.Iota(0)
	for b.Loop() {
		v = Reverse2(o, v)
	}
}

func BenchmarkOddEven_F32(b *testing.B) {
	o := wideFor[float32]()
	x, y := o.Iota(0), o.Iota(8)
	for b.Loop() {
		x = OddEven(o, x, y)
	}
}
