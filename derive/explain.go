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
	"fmt"
	"strings"

	"dirpx.dev/enumresponse/schema"
)

// Explain renders a textual trace of the table, one line per arm, in match
// order.
//
// Example output:
//
//	type="ApiError" variants=3
//	status:
//	  NotFound -> literal NotFound(404)
//	  Upstream(#0, ..) -> field #0 by value
//	  _ -> fallback InternalServerError(500)
//	reason:
//	  Upstream{message, ..} -> field message by view
//	  _ -> canonical reason of status(value)
//
// Notes:
//   - positional bindings are written #<index>, named ones by field name
//   - ".." stands for the fields the arm ignores
func (t *Table) Explain() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "type=%q variants=%d\n", t.Signature(), len(t.Variants))
	for _, fn := range []Function{FuncStatus, FuncReason} {
		_, _ = fmt.Fprintf(&b, "%s:\n", fn)
		for _, a := range t.Arms(fn) {
			_, _ = fmt.Fprintf(&b, "  %s -> %s\n", a.Pattern, a.Extract.describe(a.Pattern))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// String renders the pattern the way Explain shows it.
func (p Pattern) String() string {
	if p.Default {
		return "_"
	}
	switch p.Shape {
	case schema.ShapePositional:
		if p.Bind == nil {
			return p.Variant + "(..)"
		}
		return p.Variant + "(" + p.bindList() + ")"
	case schema.ShapeNamed:
		if p.Bind == nil {
			return p.Variant + "{..}"
		}
		return p.Variant + "{" + p.bindList() + "}"
	default:
		return p.Variant
	}
}

func (p Pattern) bindList() string {
	name := "#" + fmt.Sprint(p.Bind.Index)
	if p.Shape == schema.ShapeNamed {
		name = p.Bind.Name
	}
	if p.Arity > 1 {
		return name + ", .."
	}
	return name
}

func (x Extraction) describe(p Pattern) string {
	switch x.Kind {
	case ExtractLiteral:
		if x.Name != "" {
			return fmt.Sprintf("literal %s(%d)", x.Name, uint16(x.Code))
		}
		return fmt.Sprintf("literal %q", x.Text)
	case ExtractField:
		field := "?"
		if p.Bind != nil {
			field = "#" + fmt.Sprint(p.Bind.Index)
			if p.Shape == schema.ShapeNamed {
				field = p.Bind.Name
			}
		}
		return fmt.Sprintf("field %s by %s", field, x.Access)
	case ExtractFallbackStatus:
		return fmt.Sprintf("fallback %s(%d)", x.Name, uint16(x.Code))
	case ExtractCanonicalReason:
		if len(x.Reasons) == 0 {
			return "canonical reason of status(value)"
		}
		extra := make([]string, 0, len(x.Reasons))
		for _, ent := range x.Reasons {
			extra = append(extra, fmt.Sprintf("%d %q", uint16(ent.Code), ent.Reason))
		}
		return "canonical reason of status(value), registry adds " + strings.Join(extra, ", ")
	default:
		return "unknown"
	}
}
