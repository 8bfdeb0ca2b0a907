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
	"os"
	"path/filepath"
	"strings"
)

// Generator turns one input file of Base* kernels into a dispatch file.
type Generator struct {
	InputFile    string // Input Go source file
	OutputDir    string // Output directory
	OutputPrefix string // Output file prefix (defaults to input file name without .go)
	PackageOut   string // Output package name (defaults to input package)
	Verbose      bool   // Report each kernel on stderr
}

// OutputFile returns the path of the generated file.
func (g *Generator) OutputFile() string {
	prefix := g.OutputPrefix
	if prefix == "" {
		prefix = strings.TrimSuffix(filepath.Base(g.InputFile), ".go")
	}
	return filepath.Join(g.OutputDir, "z_"+prefix+"_dispatch.go")
}

// Run executes the code generation pipeline.
func (g *Generator) Run() error {
	result, err := Parse(g.InputFile)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if len(result.Funcs) == 0 {
		return fmt.Errorf("no Base* kernels found in %s", g.InputFile)
	}

	pkg := g.PackageOut
	if pkg == "" {
		pkg = result.PackageName
	}

	out := g.OutputFile()
	src, err := Emit(out, filepath.Base(g.InputFile), pkg, result)
	if err != nil {
		return err
	}
	if g.Verbose {
		for _, fn := range result.Funcs {
			fmt.Fprintf(os.Stderr, "hwygen: %s -> %s\n", fn.Name, strings.TrimPrefix(fn.Name, "Base"))
		}
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
