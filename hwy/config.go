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
	"os"
	"strconv"
)

// Environment variables read by ConfigFromEnv.
const (
	// NoSimdEnvVar forces the scalar backend when set to a true value.
	NoSimdEnvVar = "HWY_NO_SIMD"
	// MaxLevelEnvVar caps the selected level, e.g. HWY_MAX_LEVEL=avx2.
	MaxLevelEnvVar = "HWY_MAX_LEVEL"
)

// Config controls level selection. A cap only lowers the selection; it can
// never grant a level the CPU lacks.
type Config struct {
	// NoSIMD forces the scalar backend.
	NoSIMD bool `json:"no_simd"`
	// MaxLevel is the richest level the dispatcher may select.
	MaxLevel Level `json:"max_level"`
}

// DefaultConfig places no cap on selection.
func DefaultConfig() Config {
	return Config{MaxLevel: LevelMaskedWide}
}

// Cap returns the effective selection cap.
func (c Config) Cap() Level {
	if c.NoSIMD {
		return LevelScalar
	}
	return c.MaxLevel
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the dispatcher uses the scalar backend regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// ConfigFromEnv builds a Config from HWY_NO_SIMD and HWY_MAX_LEVEL. On a bad
// HWY_MAX_LEVEL it returns the uncapped config along with the error.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.NoSIMD = NoSimdEnv()
	if val := os.Getenv(MaxLevelEnvVar); val != "" {
		lvl, err := ParseLevel(val)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", MaxLevelEnvVar, err)
		}
		cfg.MaxLevel = lvl
	}
	return cfg, nil
}
