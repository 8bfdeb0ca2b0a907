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
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("hwy: unknown level")

// Level is one of the mutually-inclusive capability levels. Every level
// includes everything the levels below it guarantee.
type Level int

const (
	// LevelScalar guarantees nothing and is always available.
	LevelScalar Level = iota

	// LevelBaseline is 128-bit SIMD: x86-64-v2 (SSE2 to SSE4.2, POPCNT) or
	// ARM ASIMD.
	LevelBaseline

	// LevelWide is 256-bit SIMD: x86-64-v3 (AVX, AVX2, FMA, BMI1, BMI2).
	LevelWide

	// LevelMaskedWide is 512-bit SIMD with mask registers: x86-64-v4
	// (AVX-512 F, BW, CD, DQ, VL).
	LevelMaskedWide
)

// Levels lists every level from richest to weakest, the order in which the
// dispatcher probes.
var Levels = []Level{LevelMaskedWide, LevelWide, LevelBaseline, LevelScalar}

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelBaseline:
		return "baseline"
	case LevelWide:
		return "wide"
	case LevelMaskedWide:
		return "masked-wide"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// RegisterBytes returns the register width in bytes for the level.
// Scalar returns 0: its "register" is one element of whatever type is used.
func (l Level) RegisterBytes() int {
	switch l {
	case LevelBaseline:
		return 16
	case LevelWide:
		return 32
	case LevelMaskedWide:
		return 64
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name. Besides the canonical names it accepts
// the common ISA aliases (sse4, neon, avx2, avx512, v1 to v4).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "none", "generic", "v1":
		return LevelScalar, nil
	case "baseline", "sse4", "sse4.2", "neon", "asimd", "v2":
		return LevelBaseline, nil
	case "wide", "avx2", "v3":
		return LevelWide, nil
	case "masked-wide", "maskedwide", "avx512", "avx-512", "v4":
		return LevelMaskedWide, nil
	default:
		return LevelScalar, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
