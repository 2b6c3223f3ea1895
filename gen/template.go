/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package gen

import "text/template"

const fileTemplate = `{{define "file" -}}
// Code generated by enumresponse{{with .Source}} from {{.}}{{end}}; DO NOT EDIT.

package {{.Package}}

import "{{.StatusImport}}"
{{range .Types}}
{{template "dispatch" .Status}}

{{template "dispatch" .Reason}}
{{- with .Canonical}}

{{template "canonical" .}}
{{- end}}
{{range .Methods}}
{{template "methods" .}}
{{end}}
{{- end}}
{{- end}}

{{define "dispatch" -}}
// {{.Name}} {{.Doc}}
func {{.Name}}{{.Params}}(v {{.Arg}}) {{.Result}} {
{{- if or .Cases .Default}}
	switch {{if .Bind}}v := {{end}}v.(type) {
{{- range .Cases}}
	case {{.Type}}:
		return {{.Expr}}
{{- end}}
{{- with .Default}}
	default:
		return {{.}}
{{- end}}
	}
{{- end}}
{{- with .Panic}}
	panic({{.}})
{{- end}}
}
{{- end}}

{{define "canonical" -}}
// {{.Name}} returns the canonical reason of c, including the registry entries {{.Type}} was derived with.
func {{.Name}}(c {{.StatusType}}) (string, bool) {
	switch c {
{{- range .Cases}}
	case {{.Type}}:
		return {{.Expr}}
{{- end}}
	}
	return c.CanonicalReason()
}
{{- end}}

{{define "methods" -}}
func (v {{.Recv}}) Status() {{.StatusType}} { return {{.Status}} }

func (v {{.Recv}}) Reason() (string, bool) { return {{.Reason}} }
{{- end}}
`

var tmpl = template.Must(template.New("gen").Parse(fileTemplate))
