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
	"testing"
)

func bitsOf(mask []bool) uint64 {
	var bits uint64
	for i, b := range mask {
		if b {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

func TestCompress(t *testing.T) {
	tests := []struct {
		name     string
		mask     []bool
		wantData []float32
		wantCnt  int
	}{
		{
			name:     "all true",
			mask:     []bool{true, true, true, true, true, true, true, true},
			wantData: []float32{1, 2, 3, 4, 5, 6, 7, 8},
			wantCnt:  8,
		},
		{
			name:     "all false",
			mask:     []bool{false, false, false, false, false, false, false, false},
			wantData: []float32{0, 0, 0, 0, 0, 0, 0, 0},
			wantCnt:  0,
		},
		{
			name:     "alternating true first",
			mask:     []bool{true, false, true, false, true, false, true, false},
			wantData: []float32{1, 3, 5, 7, 0, 0, 0, 0},
			wantCnt:  4,
		},
		{
			name:     "alternating false first",
			mask:     []bool{false, true, false, true, false, true, false, true},
			wantData: []float32{2, 4, 6, 8, 0, 0, 0, 0},
			wantCnt:  4,
		},
		{
			name:     "last half true",
			mask:     []bool{false, false, false, false, true, true, true, true},
			wantData: []float32{5, 6, 7, 8, 0, 0, 0, 0},
			wantCnt:  4,
		},
		{
			name:     "single true",
			mask:     []bool{false, false, false, true, false, false, false, false},
			wantData: []float32{4, 0, 0, 0, 0, 0, 0, 0},
			wantCnt:  1,
		},
	}

	o := wideFor[float32]()
	v := o.Iota(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MaskFromBits(o, bitsOf(tt.mask))
			got, cnt := Compress(o, v, m)
			if cnt != tt.wantCnt {
				t.Errorf("Compress count = %d, want %d", cnt, tt.wantCnt)
			}
			assertLanes(t, "Compress", lanesOf(o, got), tt.wantData)

			dst := []float32{-1, -1, -1, -1, -1, -1, -1, -1, -1}
			if n := CompressStore(o, v, m, dst); n != tt.wantCnt {
				t.Errorf("CompressStore count = %d, want %d", n, tt.wantCnt)
			}
			assertLanes(t, "CompressStore", dst[:tt.wantCnt], tt.wantData[:tt.wantCnt])
			for i := tt.wantCnt; i < len(dst); i++ {
				if dst[i] != -1 {
					t.Errorf("CompressStore wrote past its count at %d: %v", i, dst[i])
				}
			}
		})
	}
}

func TestExpand(t *testing.T) {
	o := wideFor[float32]()
	v := o.Iota(1)
	tests := []struct {
		mask []bool
		want []float32
	}{
		{[]bool{true, true, true, true, true, true, true, true}, []float32{1, 2, 3, 4, 5, 6, 7, 8}},
		{[]bool{false, true, false, true, false, true, false, true}, []float32{0, 1, 0, 2, 0, 3, 0, 4}},
		{[]bool{false, false, false, false, false, false, false, true}, []float32{0, 0, 0, 0, 0, 0, 0, 1}},
	}
	for _, tt := range tests {
		got := lanesOf(o, Expand(o, v, MaskFromBits(o, bitsOf(tt.mask))))
		assertLanes(t, fmt.Sprint("Expand ", tt.mask), got, tt.want)
	}
}

// TestCompressExpandRoundTrip checks, on every level, that Expand undoes
// Compress in the selected lanes and zeroes the others.
func TestCompressExpandRoundTrip(t *testing.T) {
	t.Run("scalar", func(t *testing.T) { checkCompressRoundTrip(t, scalarFor[int16]()) })
	t.Run("baseline", func(t *testing.T) { checkCompressRoundTrip(t, baselineFor[int16]()) })
	t.Run("wide", func(t *testing.T) { checkCompressRoundTrip(t, wideFor[int16]()) })
	t.Run("masked-wide", func(t *testing.T) { checkCompressRoundTrip(t, maskedWideFor[int16]()) })
}

func checkCompressRoundTrip[V, M any](t *testing.T, o Ops[int16, V, M]) {
	r := newRand(t)
	n := o.NumLanes()
	in := make([]int16, n)
	for i := range in {
		in[i] = int16(i + 1)
	}
	v := o.Load(in)
	for range 20 {
		bits := r.Uint64()
		m := MaskFromBits(o, bits)
		c, count := Compress(o, v, m)
		if count != o.CountTrue(m) {
			t.Fatalf("Compress count = %d, CountTrue = %d", count, o.CountTrue(m))
		}
		got := lanesOf(o, Expand(o, c, m))
		for i := range n {
			want := int16(0)
			if bits>>uint(i)&1 != 0 {
				want = in[i]
			}
			if got[i] != want {
				t.Errorf("mask %#x lane %d: got %d, want %d", bits, i, got[i], want)
			}
		}
	}
}

func TestMaskQueries(t *testing.T) {
	o := wideFor[float32]()
	tests := []struct {
		name     string
		mask     []bool
		allFalse bool
		first    int
		last     int
	}{
		{"none", []bool{false, false, false, false, false, false, false, false}, true, -1, -1},
		{"all", []bool{true, true, true, true, true, true, true, true}, false, 0, 7},
		{"middle", []bool{false, false, true, false, true, false, false, false}, false, 2, 4},
		{"last", []bool{false, false, false, false, false, false, false, true}, false, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MaskFromBits(o, bitsOf(tt.mask))
			if got := AllFalse(o, m); got != tt.allFalse {
				t.Errorf("AllFalse = %v, want %v", got, tt.allFalse)
			}
			if got := FindFirstTrue(o, m); got != tt.first {
				t.Errorf("FindFirstTrue = %d, want %d", got, tt.first)
			}
			if got := FindLastTrue(o, m); got != tt.last {
				t.Errorf("FindLastTrue = %d, want %d", got, tt.last)
			}
		})
	}
}

func TestLastN(t *testing.T) {
	o := maskedWideFor[float32]()
	lanes := o.NumLanes()
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"one", 1},
		{"half", lanes / 2},
		{"full", lanes},
		{"negative", -1},
		{"overflow", lanes + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := maskOf(o, LastN(o, tt.n))
			start := lanes - max(min(tt.n, lanes), 0)
			for i, set := range mask {
				if set != (i >= start) {
					t.Errorf("LastN(%d): lane %d = %v", tt.n, i, set)
				}
			}
		})
	}
}

func TestMaskFromBitsRoundTrip(t *testing.T) {
	for _, bits := range []uint64{0, 1, 0x8000, 0xAAAA, 0xFFFF, 0x1234} {
		m := maskedWideFor[float32]()
		if got := m.MaskBits(MaskFromBits(m, bits)); got != bits {
			t.Errorf("masked-wide MaskFromBits(%#x) round trip = %#x", bits, got)
		}
		b := baselineFor[uint64]()
		if got, want := b.MaskBits(MaskFromBits(b, bits)), bits&0b11; got != want {
			t.Errorf("baseline MaskFromBits(%#x) round trip = %#x, want %#x", bits, got, want)
		}
	}
	s := scalarFor[int8]()
	if !MaskFromBits(s, 1) || MaskFromBits(s, 2) {
		t.Error("scalar MaskFromBits reads more than bit 0")
	}
}

func BenchmarkCompress(b *testing.B) {
	o := wideFor[float32]()
	v := o.Iota(0)
	m := MaskFromBits(o, 0b10110101)
	for b.Loop() {
		v, _ = Compress(o, v, m)
	}
}
