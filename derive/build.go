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

	"dirpx.dev/enumresponse/schema"
	"dirpx.dev/enumresponse/status"
	"go.uber.org/zap"
)

// build emits the two arm lists. specs are validated and index-aligned with
// t.Variants.
func (e *Engine) build(t schema.Type, specs []resolved) (*Table, error) {
	tbl := &Table{
		Type:       t.Name,
		TypeParams: append([]schema.TypeParam(nil), t.TypeParams...),
		Variants:   make([]Variant, len(t.Variants)),
	}
	for i, v := range t.Variants {
		tbl.Variants[i] = Variant{
			Name: v.Name,
			Shape: schema.Shape{
				Kind:   v.Shape.Kind,
				Fields: append([]schema.Field(nil), v.Shape.Fields...),
			},
			Generic: v.Generic,
			Pointer: v.Pointer,
		}
	}

	// status pass
	for i, v := range t.Variants {
		s := specs[i].status
		if s == nil {
			continue
		}
		arm, err := e.arm(t, v, s, FuncStatus)
		if err != nil {
			return nil, err
		}
		tbl.Status = append(tbl.Status, arm)
	}
	if len(tbl.Status) < len(t.Variants) {
		arm, err := e.fallbackStatus(t)
		if err != nil {
			return nil, err
		}
		tbl.Status = append(tbl.Status, arm)
	}

	// reason pass
	for i, v := range t.Variants {
		s := specs[i].reason
		if s == nil {
			continue
		}
		arm, err := e.arm(t, v, s, FuncReason)
		if err != nil {
			return nil, err
		}
		tbl.Reason = append(tbl.Reason, arm)
	}
	if len(tbl.Reason) < len(t.Variants) {
		tbl.Reason = append(tbl.Reason, Arm{
			Pattern: Pattern{Default: true},
			Extract: Extraction{Kind: ExtractCanonicalReason, Reasons: e.customReasons()},
		})
	}

	e.logger.Debug("dispatch table built",
		zap.String("type", t.Name),
		zap.Int("variants", len(t.Variants)),
		zap.Int("status_arms", len(tbl.Status)),
		zap.Int("reason_arms", len(tbl.Reason)),
		zap.Bool("status_default", tbl.HasDefault(FuncStatus)),
		zap.Bool("reason_default", tbl.HasDefault(FuncReason)),
	)
	return tbl, nil
}

// arm builds the arm of one configured variant: the pattern binds only the
// field the spec references.
func (e *Engine) arm(t schema.Type, v schema.Variant, s *setting, fn Function) (Arm, error) {
	p := Pattern{Variant: v.Name, Shape: v.Shape.Kind, Arity: v.Shape.Len()}

	switch s.spec.Kind {
	case SourceLiteral:
		if fn == FuncReason {
			return Arm{Pattern: p, Extract: Extraction{Kind: ExtractLiteral, Text: s.spec.Text}}, nil
		}
		entry, ok := e.registry.LookupName(s.spec.Text)
		if !ok {
			// parseStatus only produces registered names.
			return Arm{}, &Error{
				Kind: UnknownStatusName, Type: t.Name, Variant: v.Name,
				Key: s.entry.Key, Value: s.entry.Value.String(),
				Message: fmt.Sprintf("%q is not a registered status name", s.spec.Text),
				Cause:   status.ErrUnknownStatusName,
			}
		}
		return Arm{Pattern: p, Extract: Extraction{Kind: ExtractLiteral, Name: entry.Name, Code: entry.Code}}, nil

	case SourcePositional:
		f, _ := v.Shape.At(s.spec.Index)
		p.Bind = &Binding{Index: s.spec.Index, Name: f.Name, Type: f.Type}
	case SourceNamed:
		for i, f := range v.Shape.Fields {
			if f.Name == s.spec.Text {
				p.Bind = &Binding{Index: i, Name: f.Name, Type: f.Type}
				break
			}
		}
	}

	access := AccessValue
	if fn == FuncReason {
		access = AccessView
	}
	return Arm{Pattern: p, Extract: Extraction{Kind: ExtractField, Access: access}}, nil
}

func (e *Engine) fallbackStatus(t schema.Type) (Arm, error) {
	name, err := e.registry.ByNumericCode(uint16(status.InternalServerError))
	if err != nil {
		return Arm{}, &Error{
			Kind:    UnknownStatusCode,
			Type:    t.Name,
			Message: "registry has no entry for the fallback status 500",
			Cause:   err,
		}
	}
	return Arm{
		Pattern: Pattern{Default: true},
		Extract: Extraction{Kind: ExtractFallbackStatus, Name: name, Code: status.InternalServerError},
	}, nil
}

// customReasons lists the registry entries whose canonical reason the
// process-wide table cannot supply at run time.
func (e *Engine) customReasons() []status.Entry {
	std := status.Default()
	if e.registry == std {
		return nil
	}
	var out []status.Entry
	for _, ent := range e.registry.Entries() {
		if def, ok := std.Lookup(ent.Code); ok && def.Reason == ent.Reason {
			continue
		}
		out = append(out, ent)
	}
	return out
}
