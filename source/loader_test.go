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
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumresponse/schema"
)

func TestLoadDir_Basic(t *testing.T) {
	pkg, err := New().LoadDir(filepath.Join("testdata", "basic"))
	require.NoError(t, err)

	assert.Equal(t, "basic", pkg.Name)
	assert.Len(t, pkg.Files, 2, "tests and generated files are skipped")
	require.Len(t, pkg.Types, 2)

	errType := pkg.Types[0]
	assert.Equal(t, "Error", errType.Name)
	assert.Equal(t, schema.KindSum, errType.Kind)
	require.Len(t, errType.Variants, 4)

	var names []string
	for _, v := range errType.Variants {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"NotFound", "Upstream", "Conflict", "Internal"}, names)

	notFound := errType.Variants[0]
	assert.Equal(t, schema.ShapeUnit, notFound.Shape.Kind)
	assert.False(t, notFound.Pointer)
	assert.Equal(t, []schema.Entry{
		schema.E("status", schema.Int(404)),
		schema.E("reason", schema.String("no such user")),
	}, notFound.Config)

	upstream := errType.Variants[1]
	assert.True(t, upstream.Pointer)
	assert.Equal(t, schema.ShapePositional, upstream.Shape.Kind)
	assert.Equal(t, []schema.Field{{Name: "F0", Type: "status.Code"}, {Name: "F1", Type: "string"}}, upstream.Shape.Fields)
	assert.Equal(t, []schema.Entry{
		schema.E("status_field", schema.Int(0)),
		schema.E("reason_field", schema.String("1")),
	}, upstream.Config, "entries keep their order across directive lines")

	conflict := errType.Variants[2]
	assert.Equal(t, schema.ShapeNamed, conflict.Shape.Kind)
	assert.Equal(t, []schema.Field{{Name: "Resource", Type: "string"}, {Name: "Message", Type: "string"}}, conflict.Shape.Fields)
	assert.Equal(t, "Conflict", conflict.Config[0].Value.Text)

	assert.Empty(t, errType.Variants[3].Config)

	result := pkg.Types[1]
	assert.Equal(t, "Result[T]", result.Signature())
	assert.Equal(t, []schema.TypeParam{{Name: "T", Constraint: "any"}}, result.TypeParams)
	require.Len(t, result.Variants, 1)
	assert.True(t, result.Variants[0].Generic)
	assert.Equal(t, schema.ShapePositional, result.Variants[0].Shape.Kind)
}

func TestLoadDir_WithTests(t *testing.T) {
	pkg, err := New(WithTests()).LoadDir(filepath.Join("testdata", "basic"))
	require.NoError(t, err)
	require.Len(t, pkg.Types, 3)
	assert.Equal(t, "TestOnly", pkg.Types[2].Name)
}

func TestLoadDir_NotASum(t *testing.T) {
	pkg, err := New().LoadDir(filepath.Join("testdata", "notsum"))
	require.NoError(t, err)
	require.Len(t, pkg.Types, 2)
	assert.Equal(t, schema.KindStruct, pkg.Types[0].Kind)
	assert.Equal(t, schema.KindOther, pkg.Types[1].Kind)
	assert.Empty(t, pkg.Types[0].Variants)
}

func TestLoadDir_Errors(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		_, err := New().LoadDir(t.TempDir())
		assert.ErrorIs(t, err, ErrNoGoFiles)
	})

	tests := []struct {
		name  string
		files map[string]string
		want  error
	}{
		{
			name: "mixed packages",
			files: map[string]string{
				"a.go": "package a\n",
				"b.go": "package b\n",
			},
			want: ErrMixedPackages,
		},
		{
			name: "no marker method",
			files: map[string]string{
				"a.go": "package a\n\n//enumresponse:derive\ntype E interface{ Error() string }\n",
			},
			want: ErrNoMarkerMethod,
		},
		{
			name: "two marker methods",
			files: map[string]string{
				"a.go": "package a\n\n//enumresponse:derive\ntype E interface{ a(); b() }\n",
			},
			want: ErrNoMarkerMethod,
		},
		{
			name: "non-struct variant",
			files: map[string]string{
				"a.go": "package a\n\n//enumresponse:derive\ntype E interface{ isE() }\n\ntype Code int\n\nfunc (Code) isE() {}\n",
			},
			want: ErrUnsupportedVariant,
		},
		{
			name: "bad directive",
			files: map[string]string{
				"a.go": "package a\n\n//enumresponse:derive\ntype E interface{ isE() }\n\n//response(status = )\ntype V struct{}\n\nfunc (V) isE() {}\n",
			},
			want: ErrDirective,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, src := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
			}
			_, err := New().LoadDir(dir)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTypes_FromParsedFiles(t *testing.T) {
	const src = `package p

//enumresponse:derive
type E interface{ isE() }

type (
	B struct{ X, Y int }
	A struct{}
)

func (A) isE() {}
func (B) isE() {}
func (B) other() {}
`
	f, err := parser.ParseFile(token.NewFileSet(), "p.go", src, parser.ParseComments)
	require.NoError(t, err)

	got, err := New().Types(f)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Variants, 2)
	assert.Equal(t, "B", got[0].Variants[0].Name, "type declaration order wins over method order")
	assert.Equal(t, schema.ShapeNamed, got[0].Variants[0].Shape.Kind)
	assert.Equal(t, "A", got[0].Variants[1].Name)
}
