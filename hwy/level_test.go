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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"scalar", LevelScalar, false},
		{"baseline", LevelBaseline, false},
		{"SSE4", LevelBaseline, false},
		{"neon", LevelBaseline, false},
		{"wide", LevelWide, false},
		{" avx2 ", LevelWide, false},
		{"v3", LevelWide, false},
		{"masked-wide", LevelMaskedWide, false},
		{"AVX512", LevelMaskedWide, false},
		{"sve", LevelScalar, true},
		{"", LevelScalar, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelText(t *testing.T) {
	for _, l := range Levels {
		text, err := l.MarshalText()
		require.NoError(t, err)
		var back Level
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, l, back)
	}
	assert.Equal(t, "Level(9)", Level(9).String())
	assert.Equal(t, 0, LevelScalar.RegisterBytes())
	assert.Equal(t, 64, LevelMaskedWide.RegisterBytes())
}

func TestFeaturesLevel(t *testing.T) {
	v2 := Features{Arch: "amd64", SSE2: true, SSE3: true, SSSE3: true, SSE41: true, SSE42: true, POPCNT: true}
	v3 := v2
	v3.AVX, v3.AVX2, v3.FMA, v3.BMI1, v3.BMI2 = true, true, true, true, true
	v4 := v3
	v4.AVX512F, v4.AVX512BW, v4.AVX512CD, v4.AVX512DQ, v4.AVX512VL = true, true, true, true, true

	noFMA := v3
	noFMA.FMA = false
	noVL := v4
	noVL.AVX512VL = false
	noPopcnt := v4
	noPopcnt.POPCNT = false

	tests := []struct {
		name string
		f    Features
		want Level
	}{
		{"empty", Features{}, LevelScalar},
		{"x86-64-v1", Features{Arch: "amd64", SSE2: true}, LevelScalar},
		{"x86-64-v2", v2, LevelBaseline},
		{"x86-64-v3", v3, LevelWide},
		{"x86-64-v4", v4, LevelMaskedWide},
		{"v3 without FMA", noFMA, LevelBaseline},
		{"v4 without VL", noVL, LevelWide},
		{"avx512 without popcnt", noPopcnt, LevelScalar},
		{"arm64", Features{Arch: "arm64", ASIMD: true}, LevelBaseline},
		{"arm64 without asimd", Features{Arch: "arm64"}, LevelScalar},
		{"x86 flags on arm64", Features{Arch: "arm64", AVX2: true}, LevelScalar},
		{"riscv64", Features{Arch: "riscv64"}, LevelScalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Level())
		})
	}

	assert.Equal(t, []string{"sse2", "sse3", "ssse3", "sse4.1", "sse4.2", "popcnt"}, v2.Names())
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		noSimd   string
		maxLevel string
		wantCap  Level
		wantErr  bool
	}{
		{"unset", "", "", LevelMaskedWide, false},
		{"no simd", "1", "", LevelScalar, false},
		{"no simd false", "false", "", LevelMaskedWide, false},
		{"no simd garbage", "yes please", "", LevelScalar, false},
		{"capped", "", "avx2", LevelWide, false},
		{"no simd wins", "true", "avx512", LevelScalar, false},
		{"bad level", "", "avx1024", LevelMaskedWide, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(NoSimdEnvVar, tt.noSimd)
			t.Setenv(MaxLevelEnvVar, tt.maxLevel)
			cfg, err := ConfigFromEnv()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLevel)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCap, cfg.Cap())
		})
	}
}
