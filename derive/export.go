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
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Proto converts the table into a google.protobuf.Struct so that it can be
// carried by any protobuf transport or printed with protojson.
func (t *Table) Proto() (*structpb.Struct, error) {
	params := make([]any, 0, len(t.TypeParams))
	for _, p := range t.TypeParams {
		params = append(params, map[string]any{"name": p.Name, "constraint": p.Constraint})
	}

	variants := make([]any, 0, len(t.Variants))
	for _, v := range t.Variants {
		fields := make([]any, 0, v.Shape.Len())
		for _, f := range v.Shape.Fields {
			fields = append(fields, map[string]any{"name": f.Name, "type": f.Type})
		}
		variants = append(variants, map[string]any{
			"name":   v.Name,
			"shape":  v.Shape.Kind.String(),
			"fields": fields,
		})
	}

	return structpb.NewStruct(map[string]any{
		"type":        t.Type,
		"type_params": params,
		"variants":    variants,
		"status":      armsToAny(t.Status),
		"reason":      armsToAny(t.Reason),
	})
}

func armsToAny(arms []Arm) []any {
	out := make([]any, 0, len(arms))
	for _, a := range arms {
		p := map[string]any{"default": a.Pattern.Default}
		if !a.Pattern.Default {
			p["variant"] = a.Pattern.Variant
			p["shape"] = a.Pattern.Shape.String()
			p["arity"] = a.Pattern.Arity
		}
		if b := a.Pattern.Bind; b != nil {
			p["bind"] = map[string]any{"index": b.Index, "name": b.Name, "type": b.Type}
		}

		x := map[string]any{"kind": a.Extract.Kind.String()}
		switch a.Extract.Kind {
		case ExtractLiteral:
			if a.Extract.Name != "" {
				x["name"] = a.Extract.Name
				x["code"] = int(a.Extract.Code)
			} else {
				x["text"] = a.Extract.Text
			}
		case ExtractField:
			x["access"] = a.Extract.Access.String()
		case ExtractFallbackStatus:
			x["name"] = a.Extract.Name
			x["code"] = int(a.Extract.Code)
		case ExtractCanonicalReason:
			if len(a.Extract.Reasons) > 0 {
				rs := make([]any, 0, len(a.Extract.Reasons))
				for _, ent := range a.Extract.Reasons {
					rs = append(rs, map[string]any{"code": int(ent.Code), "name": ent.Name, "reason": ent.Reason})
				}
				x["reasons"] = rs
			}
		}
		out = append(out, map[string]any{"pattern": p, "extract": x})
	}
	return out
}

// MarshalJSON encodes the table through protojson. The byte layout is not
// stable across protobuf releases; compare decoded values, not bytes.
func (t *Table) MarshalJSON() ([]byte, error) {
	pb, err := t.Proto()
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{UseProtoNames: true}.Marshal(pb)
}
