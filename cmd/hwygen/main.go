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

// Command hwygen generates the per-level dispatch adapters for portable
// kernels written against hwy.Ops.
//
// Usage:
//
//	hwygen -input dot_base.go -output .
//
// Or via go:generate:
//
//	//go:generate hwygen -input $GOFILE -output .
//
// Every function named Base<Name> with the signature
//
//	func BaseName[T C, V, M any](o hwy.Ops[T, V, M], args...) R
//
// gets a kernel type implementing hwy.Kernel[T, R] that instantiates the
// body at each level, an exported <Name> that dispatches it on the
// process-wide backend, and a <Name>At that runs it on a given token. The
// output goes to z_<input>_dispatch.go.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	inputFile    = flag.String("input", "", "Input Go source file (required)")
	outputDir    = flag.String("output", ".", "Output directory (default: current directory)")
	outputPrefix = flag.String("output_prefix", "", "Output file prefix, the default (if empty) is the input file name without .go")
	packageOut   = flag.String("pkg", "", "Output package name (default: same as input)")
	verbose      = flag.Bool("v", false, "Report each generated kernel")
)

func main() {
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		InputFile:    *inputFile,
		OutputDir:    *outputDir,
		OutputPrefix: *outputPrefix,
		PackageOut:   *packageOut,
		Verbose:      *verbose,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s\n", gen.OutputFile())
}
