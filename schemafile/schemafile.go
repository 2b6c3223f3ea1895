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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"dirpx.dev/enumresponse/schema"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for documents that do not describe a schema.
var ErrInvalid = errors.New("schemafile: invalid schema document")

type document struct {
	Types []typeDoc `yaml:"types"`
}

type typeDoc struct {
	Name       string       `yaml:"name"`
	Kind       string       `yaml:"kind"`
	TypeParams []paramDoc   `yaml:"type_params"`
	Variants   []variantDoc `yaml:"variants"`
}

type paramDoc struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint"`
}

type variantDoc struct {
	Name     string    `yaml:"name"`
	Generic  bool      `yaml:"generic"`
	Pointer  bool      `yaml:"pointer"`
	Fields   yaml.Node `yaml:"fields"`
	Response yaml.Node `yaml:"response"`
}

// Load reads the schema file at path.
func Load(path string) ([]schema.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	types, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return types, nil
}

// Parse decodes a schema document. Unknown keys are rejected.
func Parse(data []byte) ([]schema.Type, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	out := make([]schema.Type, 0, len(doc.Types))
	for i, td := range doc.Types {
		t, err := td.schema()
		if err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (td typeDoc) schema() (schema.Type, error) {
	t := schema.Type{Name: td.Name}
	switch td.Kind {
	case "", "sum":
		t.Kind = schema.KindSum
	case "struct":
		t.Kind = schema.KindStruct
	case "other":
		t.Kind = schema.KindOther
	default:
		return t, fmt.Errorf("%w: %s: unknown kind %q", ErrInvalid, td.Name, td.Kind)
	}
	for _, p := range td.TypeParams {
		t.TypeParams = append(t.TypeParams, schema.TypeParam{Name: p.Name, Constraint: p.Constraint})
	}
	for _, vd := range td.Variants {
		shape, err := shapeOf(&vd.Fields)
		if err != nil {
			return t, fmt.Errorf("%s.%s: %w", td.Name, vd.Name, err)
		}
		config, err := responseOf(&vd.Response)
		if err != nil {
			return t, fmt.Errorf("%s.%s: %w", td.Name, vd.Name, err)
		}
		t.Variants = append(t.Variants, schema.Variant{
			Name:    vd.Name,
			Shape:   shape,
			Config:  config,
			Generic: vd.Generic,
			Pointer: vd.Pointer,
		})
	}
	return t, nil
}

// shapeOf maps absent fields to unit, a sequence of types to positional and
// a mapping of name to type to named.
func shapeOf(n *yaml.Node) (schema.Shape, error) {
	switch n.Kind {
	case 0:
		return schema.Unit(), nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return schema.Unit(), nil
		}
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return schema.Unit(), nil
		}
		types := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return schema.Shape{}, fmt.Errorf("%w: line %d: positional field type must be a scalar", ErrInvalid, c.Line)
			}
			types = append(types, c.Value)
		}
		return schema.Positional(types...), nil
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			return schema.Unit(), nil
		}
		fields := make([]schema.Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return schema.Shape{}, fmt.Errorf("%w: line %d: field %s: type must be a scalar", ErrInvalid, v.Line, k.Value)
			}
			fields = append(fields, schema.Field{Name: k.Value, Type: v.Value})
		}
		return schema.Named(fields...), nil
	}
	return schema.Shape{}, fmt.Errorf("%w: line %d: fields must be a sequence or a mapping", ErrInvalid, n.Line)
}

// responseOf flattens a response block into ordered entries.
func responseOf(n *yaml.Node) ([]schema.Entry, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
	case yaml.MappingNode:
		return pairs(n), nil
	case yaml.SequenceNode:
		return items(n), nil
	}
	return nil, fmt.Errorf("%w: line %d: response must be a mapping or a sequence", ErrInvalid, n.Line)
}

func pairs(n *yaml.Node) []schema.Entry {
	out := make([]schema.Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out = append(out, schema.Entry{Key: n.Content[i].Value, Value: value(n.Content[i+1])})
	}
	return out
}

// items flattens a sequence: mappings contribute their pairs, plain strings
// are bare keys and other scalars are stray literals.
func items(n *yaml.Node) []schema.Entry {
	var out []schema.Entry
	for _, c := range n.Content {
		switch {
		case c.Kind == yaml.MappingNode:
			out = append(out, pairs(c)...)
		case c.Kind == yaml.ScalarNode && c.ShortTag() == "!!str" && c.Style == 0:
			out = append(out, schema.Entry{Key: c.Value, Value: schema.Bare()})
		default:
			out = append(out, schema.Entry{Value: value(c)})
		}
	}
	return out
}

func value(n *yaml.Node) schema.Value {
	switch n.Kind {
	case yaml.MappingNode:
		return schema.Group(pairs(n)...)
	case yaml.SequenceNode:
		return schema.Group(items(n)...)
	case yaml.AliasNode:
		if n.Alias != nil {
			return value(n.Alias)
		}
		return schema.Bare()
	}
	switch n.ShortTag() {
	case "!!int":
		return schema.Literal(schema.ValueInt, n.Value)
	case "!!float":
		return schema.Literal(schema.ValueFloat, n.Value)
	case "!!bool":
		return schema.Literal(schema.ValueBool, n.Value)
	case "!!null":
		return schema.Bare()
	default:
		return schema.String(n.Value)
	}
}
