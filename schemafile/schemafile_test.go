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

package schemafile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumresponse/schema"
)

func TestLoad(t *testing.T) {
	types, err := Load(filepath.Join("testdata", "api.yaml"))
	require.NoError(t, err)
	require.Len(t, types, 2)

	api := types[0]
	assert.Equal(t, "ApiError", api.Name)
	assert.Equal(t, schema.KindSum, api.Kind)
	assert.Equal(t, []schema.TypeParam{{Name: "T", Constraint: "any"}}, api.TypeParams)
	require.Len(t, api.Variants, 4)

	assert.Equal(t, schema.Variant{
		Name:  "NotFound",
		Shape: schema.Unit(),
		Config: []schema.Entry{
			schema.E("status", schema.Int(404)),
			schema.E("reason", schema.String("resource not found")),
		},
	}, api.Variants[0])

	up := api.Variants[1]
	assert.Equal(t, schema.Positional("status.Code", "string"), up.Shape)
	assert.Equal(t, []schema.Entry{
		schema.E("status_field", schema.Int(0)),
		schema.E("reason_field", schema.Int(1)),
	}, up.Config)

	inv := api.Variants[2]
	assert.Equal(t, schema.Named(
		schema.Field{Name: "Field", Type: "string"},
		schema.Field{Name: "Message", Type: "string"},
	), inv.Shape)
	assert.Equal(t, []schema.Entry{
		schema.E("status", schema.String("UnprocessableEntity")),
		schema.E("reason_field", schema.String("Message")),
	}, inv.Config)

	internal := api.Variants[3]
	assert.True(t, internal.Generic)
	assert.True(t, internal.Pointer)
	assert.Nil(t, internal.Config)

	assert.Equal(t, schema.KindStruct, types[1].Kind)
}

func TestParse_ResponseValues(t *testing.T) {
	const doc = `
types:
  - name: E
    variants:
      - name: V
        response:
          - status
          - status: ~
          - 42
          - "quoted"
          - reason: 1.5
          - reason: true
          - status: "402"
          - status: {code: 1}
          - reason: [a, 2]
`
	types, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, types, 1)

	assert.Equal(t, []schema.Entry{
		schema.E("status", schema.Bare()),
		schema.E("status", schema.Bare()),
		{Value: schema.Int(42)},
		{Value: schema.String("quoted")},
		schema.E("reason", schema.Literal(schema.ValueFloat, "1.5")),
		schema.E("reason", schema.Literal(schema.ValueBool, "true")),
		schema.E("status", schema.String("402")),
		schema.E("status", schema.Group(schema.E("code", schema.Int(1)))),
		schema.E("reason", schema.Group(schema.E("a", schema.Bare()), schema.Entry{Value: schema.Int(2)})),
	}, types[0].Variants[0].Config)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not yaml", "types: [\n"},
		{"unknown key", "types:\n  - name: E\n    colour: red\n"},
		{"unknown kind", "types:\n  - name: E\n    kind: enum\n"},
		{"scalar fields", "types:\n  - name: E\n    variants:\n      - name: V\n        fields: string\n"},
		{"nested field type", "types:\n  - name: E\n    variants:\n      - name: V\n        fields: [[a]]\n"},
		{"scalar response", "types:\n  - name: E\n    variants:\n      - name: V\n        response: 404\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
