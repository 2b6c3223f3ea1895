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
)

// validate checks every field-based spec of every variant against the
// variant's shape. It runs to completion over all variants before anything
// is built and stops at the first mismatch.
func validate(t schema.Type, specs []resolved) error {
	for i, v := range t.Variants {
		for _, s := range []*setting{specs[i].status, specs[i].reason} {
			if s == nil {
				continue
			}
			if err := validateSetting(t, v, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateSetting(t schema.Type, v schema.Variant, s *setting) error {
	mismatch := func(format string, args ...any) error {
		return &Error{
			Kind:    FieldShapeMismatch,
			Type:    t.Name,
			Variant: v.Name,
			Key:     s.entry.Key,
			Value:   s.entry.Value.String(),
			Message: fmt.Sprintf(format, args...),
		}
	}

	shape := v.Shape
	switch s.spec.Kind {
	case SourcePositional:
		if shape.Kind != schema.ShapePositional {
			return mismatch("field index %d used on %s variant %s (%d field(s)); indices only work for positional variants",
				s.spec.Index, shape.Kind, v.Name, shape.Len())
		}
		if _, ok := shape.At(s.spec.Index); !ok {
			return mismatch("no field at index %d: %s has %d field(s)", s.spec.Index, v.Name, shape.Len())
		}
	case SourceNamed:
		if shape.Kind != schema.ShapeNamed {
			return mismatch("field name %q used on %s variant %s; names only work for named variants",
				s.spec.Text, shape.Kind, v.Name)
		}
		if _, ok := shape.Lookup(s.spec.Text); !ok {
			return mismatch("%s has no field named %q", v.Name, s.spec.Text)
		}
	}
	return nil
}
