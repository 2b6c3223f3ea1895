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

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the declaration a Type was built from.
type Kind int

const (
	// KindSum is a tagged union; the only kind derivation accepts.
	KindSum Kind = iota
	// KindStruct is a product type (a plain struct).
	KindStruct
	// KindOther is any other declaration (alias, basic type, func type, ...).
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindSum:
		return "sum"
	case KindStruct:
		return "struct"
	default:
		return "other"
	}
}

// ErrInvalidType is returned by Type.Check for structurally broken
// declarations.
var ErrInvalidType = errors.New("schema: invalid type")

// TypeParam is a generic parameter, passed through unexamined.
type TypeParam struct {
	Name       string
	Constraint string
}

// Type is a sum type under derivation.
type Type struct {
	Name       string
	Kind       Kind
	TypeParams []TypeParam
	// Variants are in source declaration order.
	Variants []Variant
}

// Variant is one case of a sum type.
type Variant struct {
	Name  string
	Shape Shape
	// Config holds the raw configuration entries in declaration order.
	Config []Entry

	// Generic marks a variant that declares the type parameters of its sum
	// type, so that it is spelled Name[T, ...] in generated code.
	Generic bool
	// Pointer marks a variant implemented with a pointer receiver.
	Pointer bool
}

// Check validates the declaration itself: non-empty names, unique variant
// names within the type and unique field names within a Named variant.
//
// It says nothing about configuration entries.
func (t Type) Check() error {
	if t.Name == "" {
		return fmt.Errorf("%w: empty type name", ErrInvalidType)
	}
	seen := make(map[string]struct{}, len(t.Variants))
	for i, v := range t.Variants {
		if v.Name == "" {
			return fmt.Errorf("%w: %s: variant #%d has no name", ErrInvalidType, t.Name, i)
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("%w: %s: duplicate variant %q", ErrInvalidType, t.Name, v.Name)
		}
		seen[v.Name] = struct{}{}

		if v.Shape.Kind != ShapeNamed {
			continue
		}
		fields := make(map[string]struct{}, len(v.Shape.Fields))
		for _, f := range v.Shape.Fields {
			if f.Name == "" {
				return fmt.Errorf("%w: %s::%s: named field without a name", ErrInvalidType, t.Name, v.Name)
			}
			if _, dup := fields[f.Name]; dup {
				return fmt.Errorf("%w: %s::%s: duplicate field %q", ErrInvalidType, t.Name, v.Name, f.Name)
			}
			fields[f.Name] = struct{}{}
		}
	}
	return nil
}

// Variant returns the variant called name.
func (t Type) Variant(name string) (Variant, bool) {
	for _, v := range t.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Signature renders the type with its parameter names, e.g. "Error[T]".
func (t Type) Signature() string {
	if len(t.TypeParams) == 0 {
		return t.Name
	}
	names := make([]string, len(t.TypeParams))
	for i, p := range t.TypeParams {
		names[i] = p.Name
	}
	return t.Name + "[" + strings.Join(names, ", ") + "]"
}
