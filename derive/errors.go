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
	"errors"
	"strings"
)

// Kind classifies derivation failures.
type Kind string

const (
	// NotASumType means derivation was requested on a type that is not a
	// tagged union.
	NotASumType Kind = "not_a_sum_type"
	// InvalidSchema means the declaration itself is broken (duplicate
	// variants, unnamed fields, ...).
	InvalidSchema Kind = "invalid_schema"
	// UnknownAttributeKey means a configuration key outside the recognized set.
	UnknownAttributeKey Kind = "unknown_attribute_key"
	// InvalidAttributeShape means a bare key, a nested group or a stray
	// literal where a key = scalar pair was required.
	InvalidAttributeShape Kind = "invalid_attribute_shape"
	// InvalidAttributeValueType means a scalar of the wrong literal kind.
	InvalidAttributeValueType Kind = "invalid_attribute_value_type"
	// UnknownStatusCode means a numeric status missing from the registry.
	UnknownStatusCode Kind = "unknown_status_code"
	// UnknownStatusName means a status name missing from the registry.
	UnknownStatusName Kind = "unknown_status_name"
	// FieldShapeMismatch means a field source that does not fit the shape of
	// its variant.
	FieldShapeMismatch Kind = "field_shape_mismatch"
)

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrNotASumType               = &Error{Kind: NotASumType}
	ErrInvalidSchema             = &Error{Kind: InvalidSchema}
	ErrUnknownAttributeKey       = &Error{Kind: UnknownAttributeKey}
	ErrInvalidAttributeShape     = &Error{Kind: InvalidAttributeShape}
	ErrInvalidAttributeValueType = &Error{Kind: InvalidAttributeValueType}
	ErrUnknownStatusCode         = &Error{Kind: UnknownStatusCode}
	ErrUnknownStatusName         = &Error{Kind: UnknownStatusName}
	ErrFieldShapeMismatch        = &Error{Kind: FieldShapeMismatch}
)

// Error is a derivation failure.
//
// Type, Variant, Key and Value pinpoint the faulty declaration; any of them
// may be empty when the failure is not tied to that level (NotASumType has
// no variant, InvalidAttributeShape on a stray literal has no key).
type Error struct {
	Kind Kind

	// Type is the name of the sum type under derivation.
	Type string
	// Variant is the offending variant.
	Variant string
	// Key is the offending configuration key.
	Key string
	// Value is the offending value as written in the declaration.
	Value string

	// Message is a human-readable explanation.
	Message string

	// Cause is the underlying error, e.g. a status registry lookup failure.
	Cause error
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <type>::<variant>: response(<key> = <value>): <message>
//
// with the location parts omitted when they are empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Type != "" {
		b.WriteString(": ")
		b.WriteString(e.Type)
		if e.Variant != "" {
			b.WriteString("::")
			b.WriteString(e.Variant)
		}
	}
	if e.Key != "" || e.Value != "" {
		b.WriteString(": response(")
		switch {
		case e.Key == "":
			b.WriteString(e.Value)
		case e.Value == "":
			b.WriteString(e.Key)
		default:
			b.WriteString(e.Key)
			b.WriteString(" = ")
			b.WriteString(e.Value)
		}
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}
