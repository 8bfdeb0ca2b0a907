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
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParsedFunc is a Base* kernel body found in the input file.
type ParsedFunc struct {
	Name      string    // BaseDot
	LaneParam TypeParam // T hwy.Floats
	VecParam  string    // V
	MaskParam string    // M
	Params    []Param   // parameters after the hwy.Ops one
	Result    string    // result type, "" for none
}

// TypeParam is a generic type parameter.
type TypeParam struct {
	Name       string // T
	Constraint string // hwy.Floats
}

// Param is one parameter group as written in the source, such as "a, b []T".
type Param struct {
	Names []string
	Type  string
}

// ParseResult contains the kernels of one source file.
type ParseResult struct {
	Funcs       []ParsedFunc
	PackageName string
	HwyName     string // local name of the hwy import
	HwyPath     string // import path of the hwy package
}

// Parse parses a Go source file and extracts its Base* kernels.
func Parse(filename string) (*ParseResult, error) {
	return ParseSource(filename, nil)
}

// ParseSource is Parse reading from src when it is non-nil.
func ParseSource(filename string, src any) (*ParseResult, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	result := &ParseResult{PackageName: file.Name.Name}
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", imp.Path.Value, err)
		}
		if path.Base(p) != "hwy" {
			continue
		}
		result.HwyPath = p
		result.HwyName = "hwy"
		if imp.Name != nil {
			result.HwyName = imp.Name.Name
		}
	}
	if result.HwyPath == "" {
		return nil, fmt.Errorf("%s does not import a hwy package", filename)
	}

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !hasBasePrefix(fn.Name.Name) {
			continue
		}
		pf, err := parseFunc(fset, fn, result.HwyName)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %s: %w", filename, fset.Position(fn.Pos()).Line, fn.Name.Name, err)
		}
		result.Funcs = append(result.Funcs, pf)
	}
	return result, nil
}

// hasBasePrefix reports whether name is Base followed by an exported name.
func hasBasePrefix(name string) bool {
	rest, ok := strings.CutPrefix(name, "Base")
	if !ok || rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

// parseFunc checks that fn has the kernel shape
//
//	func BaseX[T C, V, M any](o hwy.Ops[T, V, M], ...) R
//
// and records everything the emitter needs.
func parseFunc(fset *token.FileSet, fn *ast.FuncDecl, hwyName string) (ParsedFunc, error) {
	pf := ParsedFunc{Name: fn.Name.Name}

	var tparams []TypeParam
	if fn.Type.TypeParams != nil {
		for _, field := range fn.Type.TypeParams.List {
			for _, name := range field.Names {
				tparams = append(tparams, TypeParam{name.Name, exprToString(fset, field.Type)})
			}
		}
	}
	if len(tparams) != 3 {
		return pf, fmt.Errorf("want type parameters [T, V, M any], have %d", len(tparams))
	}
	if tparams[1].Constraint != "any" || tparams[2].Constraint != "any" {
		return pf, fmt.Errorf("vector and mask type parameters must be constrained by any")
	}
	pf.LaneParam, pf.VecParam, pf.MaskParam = tparams[0], tparams[1].Name, tparams[2].Name

	params := fn.Type.Params.List
	if len(params) == 0 || len(params[0].Names) != 1 {
		return pf, fmt.Errorf("first parameter must be a single %s.Ops", hwyName)
	}
	want := fmt.Sprintf("%s.Ops[%s, %s, %s]", hwyName, pf.LaneParam.Name, pf.VecParam, pf.MaskParam)
	if got := exprToString(fset, params[0].Type); got != want {
		return pf, fmt.Errorf("first parameter is %s, want %s", got, want)
	}

	reserved := map[string]bool{params[0].Names[0].Name: true, "k": true, "tok": true}
	for _, field := range params[1:] {
		if len(field.Names) == 0 {
			return pf, fmt.Errorf("parameters must be named")
		}
		p := Param{Type: exprToString(fset, field.Type)}
		for _, name := range field.Names {
			if reserved[name.Name] || name.Name == "_" {
				return pf, fmt.Errorf("parameter name %q is reserved", name.Name)
			}
			p.Names = append(p.Names, name.Name)
		}
		pf.Params = append(pf.Params, p)
	}

	if res := fn.Type.Results; res != nil {
		if len(res.List) != 1 || len(res.List[0].Names) > 1 {
			return pf, fmt.Errorf("kernels return at most one value")
		}
		pf.Result = exprToString(fset, res.List[0].Type)
	}
	return pf, nil
}

// exprToString prints an AST expression the way gofmt would.
func exprToString(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return buf.String()
}
