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
	"math"
	"strconv"

	"dirpx.dev/enumresponse/schema"
)

// Recognized configuration keys.
const (
	KeyStatus      = "status"
	KeyStatusField = "status_field"
	KeyReason      = "reason"
	KeyReasonField = "reason_field"
)

// setting is a resolved spec together with the entry it came from, so that
// later passes can report the original key and value.
type setting struct {
	spec  ValueSpec
	entry schema.Entry
}

// resolved holds the outcome of parsing one variant.
type resolved struct {
	status *setting
	reason *setting
}

// parseVariant scans the configuration entries of v in order.
//
// status and status_field share one slot, reason and reason_field another:
// a later entry for the same function replaces the earlier one.
func (e *Engine) parseVariant(t schema.Type, v schema.Variant) (resolved, error) {
	var out resolved
	for _, ent := range v.Config {
		fail := func(kind Kind, cause error, format string, args ...any) error {
			return &Error{
				Kind:    kind,
				Type:    t.Name,
				Variant: v.Name,
				Key:     ent.Key,
				Value:   ent.Value.String(),
				Message: fmt.Sprintf(format, args...),
				Cause:   cause,
			}
		}

		if ent.Key == "" {
			return out, fail(InvalidAttributeShape, nil, "unexpected literal without a key")
		}

		var (
			spec ValueSpec
			err  error
		)
		switch ent.Key {
		case KeyStatus:
			spec, err = e.parseStatus(ent, fail)
		case KeyStatusField, KeyReasonField:
			spec, err = parseFieldRef(ent, fail)
		case KeyReason:
			spec, err = parseReason(ent, fail)
		default:
			return out, fail(UnknownAttributeKey, nil, "unknown response attribute %q", ent.Key)
		}
		if err != nil {
			return out, err
		}

		s := &setting{spec: spec, entry: ent}
		switch ent.Key {
		case KeyStatus, KeyStatusField:
			out.status = s
		default:
			out.reason = s
		}
	}
	return out, nil
}

type failFunc func(kind Kind, cause error, format string, args ...any) error

// requireScalar rejects bare keys and nested groups.
func requireScalar(ent schema.Entry, fail failFunc) error {
	switch ent.Value.Kind {
	case schema.ValueNone:
		return fail(InvalidAttributeShape, nil, "%s requires a value", ent.Key)
	case schema.ValueGroup:
		return fail(InvalidAttributeShape, nil, "%s requires a scalar value, not a group", ent.Key)
	}
	return nil
}

// parseStatus resolves status = <int> | "<int>" | "<name>".
//
// Numbers are translated into canonical names through the registry; names
// are validated against it right away.
func (e *Engine) parseStatus(ent schema.Entry, fail failFunc) (ValueSpec, error) {
	if err := requireScalar(ent, fail); err != nil {
		return ValueSpec{}, err
	}
	v := ent.Value
	switch v.Kind {
	case schema.ValueInt:
		n, err := strconv.ParseUint(v.Text, 0, 64)
		if err != nil {
			return ValueSpec{}, fail(UnknownStatusCode, err, "%s is not a status code", v.Text)
		}
		return e.statusByCode(n, fail)
	case schema.ValueString:
		// Numeric-first: "402" is a code, "PaymentRequired" is a name.
		if n, err := strconv.ParseUint(v.Text, 10, 64); err == nil {
			return e.statusByCode(n, fail)
		}
		if _, err := e.registry.CanonicalReasonOf(v.Text); err != nil {
			return ValueSpec{}, fail(UnknownStatusName, err, "%q is not a registered status name", v.Text)
		}
		return Literal(v.Text), nil
	default:
		return ValueSpec{}, fail(InvalidAttributeValueType, nil,
			"status must be an integer or a string, got %s", v.Kind)
	}
}

func (e *Engine) statusByCode(n uint64, fail failFunc) (ValueSpec, error) {
	if n > math.MaxUint16 {
		return ValueSpec{}, fail(UnknownStatusCode, nil, "%d is out of the status code range", n)
	}
	name, err := e.registry.ByNumericCode(uint16(n))
	if err != nil {
		return ValueSpec{}, fail(UnknownStatusCode, err, "%d is not a registered status code", n)
	}
	return Literal(name), nil
}

// parseFieldRef resolves <key>_field = <int> | "<int>" | "<name>".
func parseFieldRef(ent schema.Entry, fail failFunc) (ValueSpec, error) {
	if err := requireScalar(ent, fail); err != nil {
		return ValueSpec{}, err
	}
	v := ent.Value
	switch v.Kind {
	case schema.ValueInt:
		n, err := strconv.ParseUint(v.Text, 0, 64)
		if err != nil || n > math.MaxInt32 {
			return ValueSpec{}, fail(InvalidAttributeValueType, err,
				"%s must be a non-negative field index", ent.Key)
		}
		return PositionalField(int(n)), nil
	case schema.ValueString:
		if n, err := strconv.ParseUint(v.Text, 10, 64); err == nil {
			if n > math.MaxInt32 {
				return ValueSpec{}, fail(InvalidAttributeValueType, nil,
					"%s index %s is out of range", ent.Key, v.Text)
			}
			return PositionalField(int(n)), nil
		}
		return NamedField(v.Text), nil
	default:
		return ValueSpec{}, fail(InvalidAttributeValueType, nil,
			"%s must be an integer or a string, got %s", ent.Key, v.Kind)
	}
}

// parseReason resolves reason = "<text>".
func parseReason(ent schema.Entry, fail failFunc) (ValueSpec, error) {
	if err := requireScalar(ent, fail); err != nil {
		return ValueSpec{}, err
	}
	if ent.Value.Kind != schema.ValueString {
		return ValueSpec{}, fail(InvalidAttributeValueType, nil,
			"reason must be a string, got %s", ent.Value.Kind)
	}
	return Literal(ent.Value.Text), nil
}
