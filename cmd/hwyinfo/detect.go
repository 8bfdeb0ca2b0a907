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

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ajroetker/go-hwcap/hwy"
	"github.com/goccy/go-json"
	"github.com/klauspost/cpuid/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// report is the result of the detect subcommand.
type report struct {
	Arch     string      `json:"arch"`
	Brand    string      `json:"brand,omitempty"`
	Features []string    `json:"features"`
	Detected hwy.Level   `json:"detected"`
	Config   hwy.Config  `json:"config"`
	Granted  []hwy.Level `json:"granted"`
	Selected hwy.Level   `json:"selected"`
	Lanes    []laneRow   `json:"lanes"`

	// CPUIDLevel is the x86-64 microarchitecture level reported by an
	// independent CPUID decoder, 0 when unknown.
	CPUIDLevel int `json:"cpuid_level"`

	// Disagreements lists features the probe granted that the CPUID decoder
	// does not see.
	Disagreements []string `json:"disagreements,omitempty"`
}

// laneRow is the lane count of one element type at the selected level.
type laneRow struct {
	Type  string `json:"type"`
	Lanes int    `json:"lanes"`
}

func newDetectCmd(g *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Print CPU features, granted levels and the selected backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := g.dispatcher(cmd)
			if err != nil {
				return err
			}
			r := buildReport(d)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			writeText(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", getEnvBool("HWYINFO_JSON", false), "Print the report as JSON")
	return cmd
}

func buildReport(d *hwy.Dispatcher) report {
	f := hwy.DetectedFeatures()
	selected := d.Select().Level()
	r := report{
		Arch:     f.Arch,
		Brand:    cpuid.CPU.BrandName,
		Features: lo.Ternary(f.Names() == nil, []string{}, f.Names()),
		Detected: f.Level(),
		Config:   d.Config(),
		Granted:  lo.Map(d.Available(), func(t hwy.Token, _ int) hwy.Level { return t.Level() }),
		Selected: selected,
		Lanes: []laneRow{
			{"int8", hwy.LanesAt[int8](selected)},
			{"int16", hwy.LanesAt[int16](selected)},
			{"int32", hwy.LanesAt[int32](selected)},
			{"int64", hwy.LanesAt[int64](selected)},
			{"float32", hwy.LanesAt[float32](selected)},
			{"float64", hwy.LanesAt[float64](selected)},
		},
	}
	if runtime.GOARCH == "amd64" {
		r.CPUIDLevel = cpuid.CPU.X64Level()
		r.Disagreements = disagreements(f)
	}
	return r
}

// cpuidFeatures maps probe feature names to the CPUID decoder's IDs.
var cpuidFeatures = map[string]cpuid.FeatureID{
	"sse2":     cpuid.SSE2,
	"sse3":     cpuid.SSE3,
	"ssse3":    cpuid.SSSE3,
	"sse4.1":   cpuid.SSE4,
	"sse4.2":   cpuid.SSE42,
	"popcnt":   cpuid.POPCNT,
	"avx":      cpuid.AVX,
	"avx2":     cpuid.AVX2,
	"fma":      cpuid.FMA3,
	"bmi1":     cpuid.BMI1,
	"bmi2":     cpuid.BMI2,
	"avx512f":  cpuid.AVX512F,
	"avx512bw": cpuid.AVX512BW,
	"avx512cd": cpuid.AVX512CD,
	"avx512dq": cpuid.AVX512DQ,
	"avx512vl": cpuid.AVX512VL,
}

func disagreements(f hwy.Features) []string {
	return lo.Filter(f.Names(), func(name string, _ int) bool {
		id, ok := cpuidFeatures[name]
		return ok && !cpuid.CPU.Supports(id)
	})
}

func writeJSON(w io.Writer, r report) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

func writeText(w io.Writer, r report) {
	fmt.Fprintf(w, "arch:      %s\n", r.Arch)
	if r.Brand != "" {
		fmt.Fprintf(w, "cpu:       %s\n", r.Brand)
	}
	fmt.Fprintf(w, "features:  %s\n", strings.Join(r.Features, " "))
	fmt.Fprintf(w, "detected:  %v\n", r.Detected)
	fmt.Fprintf(w, "cap:       %v\n", r.Config.Cap())
	fmt.Fprintf(w, "granted:   %s\n", strings.Join(lo.Map(r.Granted, func(l hwy.Level, _ int) string { return l.String() }), ", "))
	fmt.Fprintf(w, "selected:  %v (%d-byte registers)\n", r.Selected, r.Selected.RegisterBytes())
	fmt.Fprintf(w, "lanes:     %s\n", strings.Join(lo.Map(r.Lanes, func(l laneRow, _ int) string {
		return fmt.Sprintf("%s=%d", l.Type, l.Lanes)
	}), " "))
	if r.CPUIDLevel > 0 {
		fmt.Fprintf(w, "cpuid:     x86-64-v%d\n", r.CPUIDLevel)
	}
	for _, name := range r.Disagreements {
		fmt.Fprintf(w, "warning:   %s granted by the probe but not reported by CPUID\n", name)
	}
}
