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

package derive

import (
	"strconv"
)

// SourceKind is where a status or reason value comes from.
type SourceKind int

const (
	// SourceLiteral is a value baked into the arm.
	SourceLiteral SourceKind = iota
	// SourcePositional reads the field at a zero-based position.
	SourcePositional
	// SourceNamed reads the field with a given name.
	SourceNamed
)

func (k SourceKind) String() string {
	switch k {
	case SourceLiteral:
		return "literal"
	case SourcePositional:
		return "positional"
	case SourceNamed:
		return "named"
	default:
		return "unknown"
	}
}

// ValueSpec is a resolved source for status or reason.
type ValueSpec struct {
	Kind SourceKind
	// Text is the literal (status name or reason text) for SourceLiteral and
	// the field name for SourceNamed.
	Text string
	// Index is the field position for SourcePositional.
	Index int
}

// Literal returns a fixed-value spec.
func Literal(text string) ValueSpec { return ValueSpec{Kind: SourceLiteral, Text: text} }

// PositionalField returns a spec reading the field at index.
func PositionalField(index int) ValueSpec { return ValueSpec{Kind: SourcePositional, Index: index} }

// NamedField returns a spec reading the field called name.
func NamedField(name string) ValueSpec { return ValueSpec{Kind: SourceNamed, Text: name} }

func (s ValueSpec) String() string {
	switch s.Kind {
	case SourceLiteral:
		return "literal(" + strconv.Quote(s.Text) + ")"
	case SourcePositional:
		return "field(" + strconv.Itoa(s.Index) + ")"
	case SourceNamed:
		return "field(" + strconv.Quote(s.Text) + ")"
	default:
		return "unknown"
	}
}
