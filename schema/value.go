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
	"strconv"
	"strings"
)

// ValueKind is the syntactic category of a raw configuration value.
type ValueKind int

const (
	// ValueNone marks a bare key without a value.
	ValueNone ValueKind = iota
	// ValueInt is an integer literal; Text holds its source spelling.
	ValueInt
	// ValueString is a string literal; Text holds the unquoted content.
	ValueString
	// ValueFloat is a floating point literal.
	ValueFloat
	// ValueBool is a boolean literal.
	ValueBool
	// ValueChar is a character literal.
	ValueChar
	// ValueIdent is an unquoted identifier used as a value.
	ValueIdent
	// ValueGroup is a nested list of entries, e.g. key(a = 1).
	ValueGroup
)

func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "none"
	case ValueInt:
		return "int"
	case ValueString:
		return "string"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	case ValueChar:
		return "char"
	case ValueIdent:
		return "ident"
	case ValueGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Value is a raw configuration value.
type Value struct {
	Kind  ValueKind
	Text  string
	Group []Entry
}

// Entry is a raw key/value configuration entry attached to a variant.
// Key may be empty for a stray literal that was declared without a key.
type Entry struct {
	Key   string
	Value Value
}

// Int returns an integer literal value.
func Int(n int) Value { return Value{Kind: ValueInt, Text: strconv.Itoa(n)} }

// String returns a string literal value.
func String(s string) Value { return Value{Kind: ValueString, Text: s} }

// Bare returns the value of a key declared without one.
func Bare() Value { return Value{Kind: ValueNone} }

// Group returns a nested value.
func Group(entries ...Entry) Value { return Value{Kind: ValueGroup, Group: entries} }

// Literal returns a literal of the given kind with its source spelling.
func Literal(kind ValueKind, text string) Value { return Value{Kind: kind, Text: text} }

// E is shorthand for an Entry literal.
func E(key string, v Value) Entry { return Entry{Key: key, Value: v} }

// String renders the value the way it would be written in a directive.
func (v Value) String() string {
	switch v.Kind {
	case ValueNone:
		return ""
	case ValueString:
		return strconv.Quote(v.Text)
	case ValueGroup:
		parts := make([]string, len(v.Group))
		for i, e := range v.Group {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return v.Text
	}
}

// String renders the entry as "key = value", "key" or "key(...)".
func (e Entry) String() string {
	switch {
	case e.Value.Kind == ValueNone:
		return e.Key
	case e.Key == "":
		return e.Value.String()
	case e.Value.Kind == ValueGroup:
		return e.Key + e.Value.String()
	default:
		return e.Key + " = " + e.Value.String()
	}
}
