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

package status

import (
	"bytes"
	"encoding"
	"fmt"
	"strconv"

	"google.golang.org/grpc/codes"
)

// Code is a numeric HTTP status code.
//
// It is a separate type (not a bare int) so that generated code and adapters
// declare explicitly that they carry a registry status. Any uint16 value is
// representable; IsKnown reports whether the canonical registry lists it.
type Code uint16

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse resolves a user-provided string into a Code.
//
// The rule is numeric-first: if s parses as an unsigned integer it is looked
// up by code, otherwise s is taken as a canonical status name. Both branches
// must hit the canonical registry.
func Parse(s string) (Code, error) {
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		if _, ok := std.Lookup(Code(n)); !ok {
			return 0, fmt.Errorf("%w: %d", ErrUnknownStatusCode, n)
		}
		return Code(n), nil
	} else if isDigits(s) {
		// All digits but out of the uint16 range.
		return 0, fmt.Errorf("%w: %s", ErrUnknownStatusCode, s)
	}
	e, ok := std.LookupName(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatusName, s)
	}
	return e.Code, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsKnown reports whether c is listed in the canonical registry.
func (c Code) IsKnown() bool {
	_, ok := std.Lookup(c)
	return ok
}

// Name returns the canonical identifier of c, or "" if c is not registered.
func (c Code) Name() string {
	return std.byCode[c].Name
}

// CanonicalReason returns the canonical reason phrase of c.
// The second result is false when c is not registered.
func (c Code) CanonicalReason() (string, bool) {
	e, ok := std.Lookup(c)
	if !ok {
		return "", false
	}
	return e.Reason, true
}

// GRPC returns the gRPC code c projects to. Unregistered codes project to
// codes.Unknown.
func (c Code) GRPC() codes.Code {
	e, ok := std.Lookup(c)
	if !ok {
		return codes.Unknown
	}
	return e.GRPC
}

// String renders c as "<code> <reason>", e.g. "404 Not Found".
func (c Code) String() string {
	if r, ok := c.CanonicalReason(); ok {
		return strconv.Itoa(int(c)) + " " + r
	}
	return strconv.Itoa(int(c))
}

// MarshalText implements encoding.TextMarshaler.
//
// Registered codes marshal to their canonical name so that configuration
// files stay readable; anything else marshals to its number.
func (c Code) MarshalText() ([]byte, error) {
	if name := c.Name(); name != "" {
		return []byte(name), nil
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts a number or a canonical name, see Parse.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
