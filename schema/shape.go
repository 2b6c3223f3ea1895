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

package schema

// ShapeKind is the field layout category of a variant.
type ShapeKind int

const (
	// ShapeUnit carries no fields.
	ShapeUnit ShapeKind = iota
	// ShapePositional carries an ordered tuple of fields.
	ShapePositional
	// ShapeNamed carries a set of uniquely named fields.
	ShapeNamed
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeUnit:
		return "unit"
	case ShapePositional:
		return "positional"
	case ShapeNamed:
		return "named"
	default:
		return "unknown"
	}
}

// Field is a single variant field. Type is a host-language type descriptor
// and is never interpreted beyond being carried to the emitter.
//
// For positional fields Name is optional: when set it is the host identifier
// used to access the field (for Go structs, "F0", "F1", ...).
type Field struct {
	Name string
	Type string
}

// Shape is the layout of a variant.
type Shape struct {
	Kind   ShapeKind
	Fields []Field
}

// Unit returns the shape of a variant without fields.
func Unit() Shape { return Shape{Kind: ShapeUnit} }

// Positional returns a tuple shape with the given field types, in order.
func Positional(types ...string) Shape {
	fields := make([]Field, len(types))
	for i, t := range types {
		fields[i] = Field{Type: t}
	}
	return Shape{Kind: ShapePositional, Fields: fields}
}

// Named returns a shape with named fields.
func Named(fields ...Field) Shape {
	cp := make([]Field, len(fields))
	copy(cp, fields)
	return Shape{Kind: ShapeNamed, Fields: cp}
}

// Len returns the number of fields.
func (s Shape) Len() int { return len(s.Fields) }

// At returns the positional field at index i. It reports false when the
// shape is not Positional or i is out of range.
func (s Shape) At(i int) (Field, bool) {
	if s.Kind != ShapePositional || i < 0 || i >= len(s.Fields) {
		return Field{}, false
	}
	return s.Fields[i], true
}

// Lookup returns the named field called name. It reports false when the
// shape is not Named or no such field exists.
func (s Shape) Lookup(name string) (Field, bool) {
	if s.Kind != ShapeNamed {
		return Field{}, false
	}
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
