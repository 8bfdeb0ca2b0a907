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
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"
)

// fileData is the template input for one generated file.
type fileData struct {
	Source  string
	Package string
	HwyName string
	HwyPath string
	Kernels []kernelData
}

type kernelData struct {
	Name       string // exported wrapper, Dot
	BaseName   string // BaseDot
	KernelType string // dotKernel
	Lane       TypeParam
	Fields     []Param
	Params     string // wrapper parameters, "a, b []T"
	Args       string // kernel literal elements, "a, b"
	KArgs      string // ", k.a, k.b"
	Result     string // kernel result type, struct{} for none
	Void       bool
	Methods    []methodData
}

type methodData struct {
	Name     string
	OpsType  string
	TypeArgs string
}

var dispatchTemplate = template.Must(template.New("dispatch").Parse(`// Code generated by hwygen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import {{if ne .HwyName "hwy"}}{{.HwyName}} {{end}}"{{.HwyPath}}"
{{range $k := .Kernels}}
type {{.KernelType}}[{{.Lane.Name}} {{.Lane.Constraint}}] struct {
{{- range .Fields}}
	{{index .Names 0}} {{.Type}}
{{- end}}
}
{{range .Methods}}
func (k {{$k.KernelType}}[{{$k.Lane.Name}}]) {{.Name}}(o {{.OpsType}}) {{$k.Result}} {
{{- if $k.Void}}
	{{$k.BaseName}}[{{.TypeArgs}}](o{{$k.KArgs}})
	return struct{}{}
{{- else}}
	return {{$k.BaseName}}[{{.TypeArgs}}](o{{$k.KArgs}})
{{- end}}
}
{{end}}
// {{.Name}} runs {{.BaseName}} on the backend selected by {{$.HwyName}}.Default.
func {{.Name}}[{{.Lane.Name}} {{.Lane.Constraint}}]({{.Params}}){{if not .Void}} {{.Result}}{{end}} {
	{{if not .Void}}return {{end}}{{$.HwyName}}.Dispatch[{{.Lane.Name}}, {{.Result}}]({{.KernelType}}[{{.Lane.Name}}]{ {{- .Args -}} })
}

// {{.Name}}At runs {{.BaseName}} on the backend of tok.
func {{.Name}}At[{{.Lane.Name}} {{.Lane.Constraint}}](tok {{$.HwyName}}.Token{{if .Params}}, {{.Params}}{{end}}){{if not .Void}} {{.Result}}{{end}} {
	{{if not .Void}}return {{end}}{{$.HwyName}}.Run[{{.Lane.Name}}, {{.Result}}](tok, {{.KernelType}}[{{.Lane.Name}}]{ {{- .Args -}} })
}
{{end}}`))

// newKernelData derives the template input for one kernel.
func newKernelData(hwy string, fn ParsedFunc) kernelData {
	name := strings.TrimPrefix(fn.Name, "Base")
	k := kernelData{
		Name:       name,
		BaseName:   fn.Name,
		KernelType: lowerFirst(name) + "Kernel",
		Lane:       fn.LaneParam,
		Result:     fn.Result,
	}
	if k.Result == "" {
		k.Result, k.Void = "struct{}", true
	}

	var params, args, kargs []string
	for _, p := range fn.Params {
		params = append(params, strings.Join(p.Names, ", ")+" "+p.Type)
		for _, n := range p.Names {
			k.Fields = append(k.Fields, Param{Names: []string{n}, Type: p.Type})
			args = append(args, n)
			kargs = append(kargs, ", k."+n)
		}
	}
	k.Params = strings.Join(params, ", ")
	k.Args = strings.Join(args, ", ")
	k.KArgs = strings.Join(kargs, "")

	lane := fn.LaneParam.Name
	for _, l := range Levels() {
		k.Methods = append(k.Methods, methodData{
			Name:     l.Method,
			OpsType:  l.OpsType(hwy, lane),
			TypeArgs: l.TypeArgs(hwy, lane),
		})
	}
	return k
}

// Emit renders the dispatch file for result and formats it. filename is
// used by the import fixer and in error messages.
func Emit(filename, source, pkg string, result *ParseResult) ([]byte, error) {
	data := fileData{
		Source:  source,
		Package: pkg,
		HwyName: result.HwyName,
		HwyPath: result.HwyPath,
	}
	for _, fn := range result.Funcs {
		data.Kernels = append(data.Kernels, newKernelData(result.HwyName, fn))
	}

	var buf bytes.Buffer
	if err := dispatchTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	out, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", filename, err, buf.Bytes())
	}
	return out, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
