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

package source

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"dirpx.dev/enumresponse/schema"
	"go.uber.org/zap"
)

// Marker is the comment line that marks a sum type for derivation.
const Marker = "//enumresponse:derive"

var (
	// ErrNoGoFiles is returned when a directory holds no loadable Go files.
	ErrNoGoFiles = errors.New("source: no Go files")
	// ErrMixedPackages is returned when files of one directory disagree on
	// the package name.
	ErrMixedPackages = errors.New("source: files belong to different packages")
	// ErrNoMarkerMethod is returned for a marked interface without exactly
	// one unexported method taking and returning nothing.
	ErrNoMarkerMethod = errors.New("source: sum type needs exactly one unexported marker method")
	// ErrUnsupportedVariant is returned when a marker method is declared on
	// something other than a struct type of the package.
	ErrUnsupportedVariant = errors.New("source: unsupported variant")
)

// Package is the result of loading one directory.
type Package struct {
	Name  string
	Dir   string
	Files []string
	// Types holds every marked declaration, in source order.
	Types []schema.Type
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithTests includes _test.go files.
func WithTests() Option { return func(ld *Loader) { ld.tests = true } }

// Loader turns Go source into schema types.
type Loader struct {
	logger *zap.Logger
	tests  bool
}

// New returns a Loader with a no-op logger.
func New(opts ...Option) *Loader {
	ld := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// LoadDir parses the Go files of dir. Generated files are skipped.
func (ld *Loader) LoadDir(dir string) (*Package, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	fset := token.NewFileSet()
	pkg := &Package{Dir: dir}
	var files []*ast.File
	for _, path := range matches {
		if !ld.tests && strings.HasSuffix(path, "_test.go") {
			continue
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("source: parse %s: %w", path, err)
		}
		if ast.IsGenerated(f) {
			ld.logger.Debug("skip generated file", zap.String("file", path))
			continue
		}
		if pkg.Name == "" {
			pkg.Name = f.Name.Name
		} else if f.Name.Name != pkg.Name {
			return nil, fmt.Errorf("%w: %s is package %s, expected %s", ErrMixedPackages, path, f.Name.Name, pkg.Name)
		}
		pkg.Files = append(pkg.Files, path)
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoGoFiles, dir)
	}

	pkg.Types, err = ld.Types(files...)
	if err != nil {
		return nil, err
	}
	ld.logger.Debug("package loaded",
		zap.String("dir", dir),
		zap.String("package", pkg.Name),
		zap.Int("files", len(files)),
		zap.Int("types", len(pkg.Types)),
	)
	return pkg, nil
}

// typeDecl is a type spec with the doc comment that applies to it.
type typeDecl struct {
	spec  *ast.TypeSpec
	doc   *ast.CommentGroup
	order int
}

// impl is a marker method declaration.
type impl struct {
	recv    string
	pointer bool
	generic bool
}

// Types extracts the marked types from files, which must belong to one
// package and be given in load order.
func (ld *Loader) Types(files ...*ast.File) ([]schema.Type, error) {
	decls := map[string]*typeDecl{}
	var marked []*typeDecl
	var methods []*ast.FuncDecl

	order := 0
	for _, f := range files {
		for _, d := range f.Decls {
			switch d := d.(type) {
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, s := range d.Specs {
					ts := s.(*ast.TypeSpec)
					doc := ts.Doc
					if doc == nil && len(d.Specs) == 1 {
						doc = d.Doc
					}
					td := &typeDecl{spec: ts, doc: doc, order: order}
					order++
					decls[ts.Name.Name] = td
					if hasMarker(doc) {
						marked = append(marked, td)
					}
				}
			case *ast.FuncDecl:
				if d.Recv != nil && len(d.Recv.List) == 1 {
					methods = append(methods, d)
				}
			}
		}
	}

	out := make([]schema.Type, 0, len(marked))
	for _, td := range marked {
		t, err := ld.sumType(td, decls, methods)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (ld *Loader) sumType(td *typeDecl, decls map[string]*typeDecl, methods []*ast.FuncDecl) (schema.Type, error) {
	name := td.spec.Name.Name
	t := schema.Type{Name: name, TypeParams: typeParams(td.spec.TypeParams)}

	iface, ok := td.spec.Type.(*ast.InterfaceType)
	if !ok {
		// Leave the NotASumType verdict to the engine.
		if _, isStruct := td.spec.Type.(*ast.StructType); isStruct {
			t.Kind = schema.KindStruct
		} else {
			t.Kind = schema.KindOther
		}
		ld.logger.Debug("marked declaration is not an interface", zap.String("type", name), zap.Stringer("kind", t.Kind))
		return t, nil
	}
	t.Kind = schema.KindSum

	marker, err := markerMethod(name, iface)
	if err != nil {
		return t, err
	}

	var impls []impl
	seen := map[string]bool{}
	for _, fd := range methods {
		if fd.Name.Name != marker || fd.Type.Params.NumFields() != 0 || fd.Type.Results.NumFields() != 0 {
			continue
		}
		im, ok := receiver(fd.Recv.List[0].Type)
		if !ok || seen[im.recv] {
			continue
		}
		seen[im.recv] = true
		impls = append(impls, im)
	}

	variants := make([]*typeDecl, 0, len(impls))
	byName := map[string]impl{}
	for _, im := range impls {
		vd, ok := decls[im.recv]
		if !ok {
			return t, fmt.Errorf("%w: %s.%s is declared on %s, which is not a type of this package",
				ErrUnsupportedVariant, name, marker, im.recv)
		}
		variants = append(variants, vd)
		byName[im.recv] = im
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i].order < variants[j].order })

	for _, vd := range variants {
		im := byName[vd.spec.Name.Name]
		v, err := variant(name, vd, im)
		if err != nil {
			return t, err
		}
		t.Variants = append(t.Variants, v)
	}

	ld.logger.Debug("sum type found",
		zap.String("type", t.Signature()),
		zap.String("marker", marker),
		zap.Int("variants", len(t.Variants)),
	)
	return t, nil
}

func variant(typeName string, vd *typeDecl, im impl) (schema.Variant, error) {
	v := schema.Variant{Name: vd.spec.Name.Name, Generic: im.generic, Pointer: im.pointer}

	st, ok := vd.spec.Type.(*ast.StructType)
	if !ok {
		return v, fmt.Errorf("%w: %s variant %s is not a struct type", ErrUnsupportedVariant, typeName, v.Name)
	}
	v.Shape = shapeOf(st)

	for _, c := range commentLines(vd.doc) {
		if !IsDirective(c) {
			continue
		}
		entries, err := ParseDirective(c)
		if err != nil {
			return v, fmt.Errorf("%s.%s: %w", typeName, v.Name, err)
		}
		v.Config = append(v.Config, entries...)
	}
	return v, nil
}

// shapeOf classifies a struct: no fields is unit, F0..Fn-1 in order is
// positional, anything else is named.
func shapeOf(st *ast.StructType) schema.Shape {
	var fields []schema.Field
	for _, f := range st.Fields.List {
		typ := types.ExprString(f.Type)
		if len(f.Names) == 0 {
			fields = append(fields, schema.Field{Name: embeddedName(f.Type), Type: typ})
			continue
		}
		for _, n := range f.Names {
			fields = append(fields, schema.Field{Name: n.Name, Type: typ})
		}
	}
	if len(fields) == 0 {
		return schema.Unit()
	}
	positional := true
	for i, f := range fields {
		if f.Name != "F"+strconv.Itoa(i) {
			positional = false
			break
		}
	}
	if positional {
		return schema.Shape{Kind: schema.ShapePositional, Fields: fields}
	}
	return schema.Named(fields...)
}

func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(e.X)
	case *ast.IndexListExpr:
		return embeddedName(e.X)
	default:
		return ""
	}
}

func markerMethod(typeName string, iface *ast.InterfaceType) (string, error) {
	var found []string
	for _, m := range iface.Methods.List {
		ft, ok := m.Type.(*ast.FuncType)
		if !ok || len(m.Names) != 1 {
			continue
		}
		name := m.Names[0].Name
		if ast.IsExported(name) || ft.Params.NumFields() != 0 || ft.Results.NumFields() != 0 {
			continue
		}
		found = append(found, name)
	}
	if len(found) != 1 {
		return "", fmt.Errorf("%w: %s has %d candidates", ErrNoMarkerMethod, typeName, len(found))
	}
	return found[0], nil
}

func receiver(expr ast.Expr) (impl, bool) {
	var im impl
	if star, ok := expr.(*ast.StarExpr); ok {
		im.pointer = true
		expr = star.X
	}
	switch e := expr.(type) {
	case *ast.Ident:
		im.recv = e.Name
	case *ast.IndexExpr:
		id, ok := e.X.(*ast.Ident)
		if !ok {
			return im, false
		}
		im.recv, im.generic = id.Name, true
	case *ast.IndexListExpr:
		id, ok := e.X.(*ast.Ident)
		if !ok {
			return im, false
		}
		im.recv, im.generic = id.Name, true
	default:
		return im, false
	}
	return im, true
}

func typeParams(fl *ast.FieldList) []schema.TypeParam {
	if fl == nil {
		return nil
	}
	var out []schema.TypeParam
	for _, f := range fl.List {
		c := types.ExprString(f.Type)
		for _, n := range f.Names {
			out = append(out, schema.TypeParam{Name: n.Name, Constraint: c})
		}
	}
	return out
}

func hasMarker(doc *ast.CommentGroup) bool {
	for _, c := range commentLines(doc) {
		if strings.TrimSpace(c) == Marker {
			return true
		}
	}
	return false
}

func commentLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	out := make([]string, 0, len(doc.List))
	for _, c := range doc.List {
		out = append(out, c.Text)
	}
	return out
}
