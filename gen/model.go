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

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/enumresponse/derive"
	"dirpx.dev/enumresponse/status"
)

// file is the template view of one generated file.
type file struct {
	Package      string
	Source       string
	StatusImport string
	Types        []typeView
}

type typeView struct {
	Status dispatchView
	Reason dispatchView
	// Canonical is set when the derivation registry knows reasons that
	// status.Code.CanonicalReason cannot return.
	Canonical *canonicalView
	Methods   []methodView
}

// canonicalView is the per-type canonical reason lookup.
type canonicalView struct {
	Name       string
	Type       string
	StatusType string
	Cases      []caseView
}

// dispatchView is one generated dispatch function.
type dispatchView struct {
	Name   string
	Doc    string
	Params string
	Arg    string
	Result string
	// Bind is set when some case reads a field of the variant.
	Bind    bool
	Cases   []caseView
	Default string
	Panic   string
}

type caseView struct {
	Type string
	Expr string
}

type methodView struct {
	Recv       string
	StatusType string
	Status     string
	Reason     string
}

// emitter renders expressions for one table.
type emitter struct {
	pkg       string // package of the generated file
	statusPkg string // package name of the status import
	tbl       *derive.Table
	args      string // "[T, K]" or ""
}

func newFile(cfg Config, tables []*derive.Table) (*file, error) {
	if cfg.Package == "" {
		return nil, ErrNoPackage
	}
	imp := cfg.StatusImport
	if imp == "" {
		imp = DefaultStatusImport
	}
	f := &file{Package: cfg.Package, Source: cfg.Source, StatusImport: imp}
	for _, tbl := range tables {
		e := &emitter{pkg: cfg.Package, statusPkg: path.Base(imp), tbl: tbl, args: typeArgs(tbl)}
		tv, err := e.typeView(cfg.Methods)
		if err != nil {
			return nil, err
		}
		f.Types = append(f.Types, tv)
	}
	return f, nil
}

func (e *emitter) typeView(methods bool) (typeView, error) {
	var tv typeView
	var err error
	if tv.Status, err = e.dispatch(derive.FuncStatus); err != nil {
		return tv, err
	}
	if tv.Reason, err = e.dispatch(derive.FuncReason); err != nil {
		return tv, err
	}
	tv.Canonical = e.canonical()
	if !methods {
		return tv, nil
	}
	for _, v := range e.tbl.Variants {
		sa, ok := e.tbl.Match(derive.FuncStatus, v.Name)
		if !ok {
			return tv, fmt.Errorf("gen: %s: no status arm for variant %s", e.tbl.Type, v.Name)
		}
		ra, ok := e.tbl.Match(derive.FuncReason, v.Name)
		if !ok {
			return tv, fmt.Errorf("gen: %s: no reason arm for variant %s", e.tbl.Type, v.Name)
		}
		st, err := e.expr(derive.FuncStatus, sa, "v.Status()")
		if err != nil {
			return tv, err
		}
		rs, err := e.expr(derive.FuncReason, ra, "v.Status()")
		if err != nil {
			return tv, err
		}
		tv.Methods = append(tv.Methods, methodView{
			Recv:       e.caseType(v),
			StatusType: e.statusPkg + ".Code",
			Status:     st,
			Reason:     rs,
		})
	}
	return tv, nil
}

func (e *emitter) dispatch(fn derive.Function) (dispatchView, error) {
	name := e.tbl.Type + "Status"
	doc := "returns the response status of v."
	result := e.statusPkg + ".Code"
	if fn == derive.FuncReason {
		name = e.tbl.Type + "Reason"
		doc = "returns the response reason of v and whether it has one."
		result = "(string, bool)"
	}
	d := dispatchView{
		Name:   name,
		Doc:    doc,
		Params: typeParams(e.tbl),
		Arg:    e.tbl.Type + e.args,
		Result: result,
	}

	statusCall := e.tbl.Type + "Status" + e.args + "(v)"
	for _, a := range e.tbl.Arms(fn) {
		x, err := e.expr(fn, a, statusCall)
		if err != nil {
			return d, err
		}
		if a.Pattern.Default {
			d.Default = x
			continue
		}
		v, ok := e.tbl.Variant(a.Pattern.Variant)
		if !ok {
			return d, fmt.Errorf("gen: %s: arm for undeclared variant %s", e.tbl.Type, a.Pattern.Variant)
		}
		if a.Extract.Kind == derive.ExtractField {
			d.Bind = true
		}
		d.Cases = append(d.Cases, caseView{Type: e.caseType(v), Expr: x})
	}
	if d.Default == "" {
		d.Panic = strconv.Quote(fmt.Sprintf("%s: unhandled %s variant", e.pkg, e.tbl.Type))
	}
	return d, nil
}

// expr renders the return expression of an arm. statusCall is how the value's
// own status is obtained for the canonical reason default.
func (e *emitter) expr(fn derive.Function, a derive.Arm, statusCall string) (string, error) {
	x := a.Extract
	switch x.Kind {
	case derive.ExtractLiteral:
		if fn == derive.FuncReason {
			return strconv.Quote(x.Text) + ", true", nil
		}
		return e.statusConst(x.Name, x.Code), nil
	case derive.ExtractFallbackStatus:
		return e.statusConst(x.Name, x.Code), nil
	case derive.ExtractCanonicalReason:
		if len(x.Reasons) > 0 {
			return e.canonicalName() + "(" + statusCall + ")", nil
		}
		return statusCall + ".CanonicalReason()", nil
	case derive.ExtractField:
		b := a.Pattern.Bind
		if b == nil {
			return "", fmt.Errorf("gen: %s::%s: field arm without a binding", e.tbl.Type, a.Pattern.Variant)
		}
		// Other field types go through the constrained helpers of the status
		// package, so the compiler rejects sources that would not convert
		// losslessly.
		sel := "v." + fieldName(b)
		if fn == derive.FuncStatus {
			if e.isStatusType(b.Type) {
				return sel, nil
			}
			return e.statusPkg + ".FromField(" + sel + ")", nil
		}
		if b.Type == "string" {
			return sel + ", true", nil
		}
		return e.statusPkg + ".View(" + sel + "), true", nil
	default:
		return "", fmt.Errorf("gen: %s: unsupported extraction %s", e.tbl.Type, x.Kind)
	}
}

// statusConst spells a literal status. Canonical names are exported
// constants of the status package.
func (e *emitter) statusConst(name string, c status.Code) string {
	if ent, ok := status.Default().LookupName(name); ok && ent.Code == c {
		return e.statusPkg + "." + name
	}
	return e.statusPkg + ".Code(" + strconv.Itoa(int(c)) + ")"
}

// canonical builds the lookup for the reasons carried by the default reason
// arm, if any.
func (e *emitter) canonical() *canonicalView {
	var reasons []status.Entry
	for _, a := range e.tbl.Reason {
		if a.Pattern.Default && a.Extract.Kind == derive.ExtractCanonicalReason {
			reasons = a.Extract.Reasons
		}
	}
	if len(reasons) == 0 {
		return nil
	}
	cv := &canonicalView{
		Name:       e.canonicalName(),
		Type:       e.tbl.Type,
		StatusType: e.statusPkg + ".Code",
	}
	for _, ent := range reasons {
		cv.Cases = append(cv.Cases, caseView{
			Type: e.statusConst(ent.Name, ent.Code),
			Expr: strconv.Quote(ent.Reason) + ", true",
		})
	}
	return cv
}

func (e *emitter) canonicalName() string {
	r, size := utf8.DecodeRuneInString(e.tbl.Type)
	return string(unicode.ToLower(r)) + e.tbl.Type[size:] + "CanonicalReason"
}

func (e *emitter) isStatusType(t string) bool {
	return t == e.statusPkg+".Code"
}

func (e *emitter) caseType(v derive.Variant) string {
	t := v.Name
	if v.Generic {
		t += e.args
	}
	if v.Pointer {
		t = "*" + t
	}
	return t
}

func fieldName(b *derive.Binding) string {
	if b.Name != "" {
		return b.Name
	}
	return "F" + strconv.Itoa(b.Index)
}

func typeParams(tbl *derive.Table) string {
	if len(tbl.TypeParams) == 0 {
		return ""
	}
	parts := make([]string, len(tbl.TypeParams))
	for i, p := range tbl.TypeParams {
		c := p.Constraint
		if c == "" {
			c = "any"
		}
		parts[i] = p.Name + " " + c
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func typeArgs(tbl *derive.Table) string {
	if len(tbl.TypeParams) == 0 {
		return ""
	}
	names := make([]string, len(tbl.TypeParams))
	for i, p := range tbl.TypeParams {
		names[i] = p.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}
