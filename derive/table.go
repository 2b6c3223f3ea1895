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
	"dirpx.dev/enumresponse/schema"
	"dirpx.dev/enumresponse/status"
)

// Function selects one of the two synthesized functions.
type Function int

const (
	// FuncStatus is status(value) -> status.Code.
	FuncStatus Function = iota
	// FuncReason is reason(value) -> (string, bool).
	FuncReason
)

func (f Function) String() string {
	if f == FuncStatus {
		return "status"
	}
	return "reason"
}

// Access is how an extracted field leaves the value.
type Access int

const (
	// AccessNone means nothing is extracted from the value.
	AccessNone Access = iota
	// AccessValue copies the field out; used for status sources, which must
	// be self-contained values.
	AccessValue
	// AccessView returns a string view whose validity is tied to the
	// original value; used for reason sources.
	AccessView
)

func (a Access) String() string {
	switch a {
	case AccessValue:
		return "value"
	case AccessView:
		return "view"
	default:
		return "none"
	}
}

// Binding is the single field an arm binds.
type Binding struct {
	// Index is the field position; it is set for named fields too, as the
	// position of the field in declaration order.
	Index int
	// Name is the field name for named variants and the host identifier,
	// possibly empty, for positional ones.
	Name string
	// Type is the declared field type descriptor.
	Type string
}

// Pattern is the left-hand side of an arm.
type Pattern struct {
	// Default marks the trailing catch-all arm. Variant and Shape are unset
	// for it.
	Default bool
	Variant string
	Shape   schema.ShapeKind
	// Arity is the field count of the variant.
	Arity int
	// Bind is the field referenced by the source, nil when none is.
	Bind *Binding
}

// ExtractKind is the right-hand side category of an arm.
type ExtractKind int

const (
	// ExtractLiteral returns a fixed value: a status (Name, Code) or a reason
	// text (Text).
	ExtractLiteral ExtractKind = iota
	// ExtractField returns the bound field.
	ExtractField
	// ExtractFallbackStatus is the default status arm (InternalServerError).
	ExtractFallbackStatus
	// ExtractCanonicalReason is the default reason arm: status(value) looked
	// up in the registry for its canonical reason phrase.
	ExtractCanonicalReason
)

func (k ExtractKind) String() string {
	switch k {
	case ExtractLiteral:
		return "literal"
	case ExtractField:
		return "field"
	case ExtractFallbackStatus:
		return "fallback_status"
	case ExtractCanonicalReason:
		return "canonical_reason"
	default:
		return "unknown"
	}
}

// Extraction is the right-hand side of an arm.
type Extraction struct {
	Kind ExtractKind
	// Name and Code identify a literal or fallback status.
	Name string
	Code status.Code
	// Text is a literal reason.
	Text string
	// Access is set for ExtractField.
	Access Access
	// Reasons is set on the canonical reason arm: the entries of the
	// derivation registry that status.Default() lacks or phrases
	// differently, ascending by code.
	Reasons []status.Entry
}

// Arm is one (pattern, extraction) pair of a dispatch table.
type Arm struct {
	Pattern Pattern
	Extract Extraction
}

// Variant is a variant as seen by the emitter.
type Variant struct {
	Name    string
	Shape   schema.Shape
	Generic bool
	Pointer bool
}

// Table is the output of a derivation: the two ordered arm lists plus the
// identity of the derived type, passed through unexamined.
type Table struct {
	Type       string
	TypeParams []schema.TypeParam
	Variants   []Variant

	Status []Arm
	Reason []Arm
}

// Arms returns the arm list of fn.
func (t *Table) Arms(fn Function) []Arm {
	if fn == FuncStatus {
		return t.Status
	}
	return t.Reason
}

// HasDefault reports whether the arm list of fn ends with a catch-all.
func (t *Table) HasDefault(fn Function) bool {
	arms := t.Arms(fn)
	return len(arms) > 0 && arms[len(arms)-1].Pattern.Default
}

// Match returns the arm that handles variant for fn, scanning top to bottom.
// The default arm matches any variant not claimed by an earlier arm.
func (t *Table) Match(fn Function, variant string) (Arm, bool) {
	for _, a := range t.Arms(fn) {
		if a.Pattern.Default || a.Pattern.Variant == variant {
			return a, true
		}
	}
	return Arm{}, false
}

// Signature renders the derived type with its parameter names.
func (t *Table) Signature() string {
	return schema.Type{Name: t.Type, TypeParams: t.TypeParams}.Signature()
}

// Variant returns the variant called name.
func (t *Table) Variant(name string) (Variant, bool) {
	for _, v := range t.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
