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
	"errors"
	"fmt"
	"sort"

	"google.golang.org/grpc/codes"
)

var (
	// ErrUnknownStatusCode is returned when a numeric code has no registry entry.
	ErrUnknownStatusCode = errors.New("enumresponse: unknown status code")

	// ErrUnknownStatusName is returned when a name is not a canonical status
	// identifier of the registry.
	ErrUnknownStatusName = errors.New("enumresponse: unknown status name")

	// ErrDuplicateEntry is returned by NewRegistry when two entries share a
	// code or a name.
	ErrDuplicateEntry = errors.New("enumresponse: duplicate registry entry")
)

// Entry is a single registry row.
type Entry struct {
	// Code is the numeric HTTP status code.
	Code Code
	// Name is the canonical identifier, e.g. "NotFound".
	Name string
	// Reason is the canonical reason phrase, e.g. "Not Found".
	Reason string
	// GRPC is the gRPC code this status projects to.
	GRPC codes.Code
}

// Registry is an immutable bidirectional index over registry entries.
// The zero value is an empty registry; use Default or NewRegistry.
type Registry struct {
	byCode  map[Code]Entry
	byName  map[string]Entry
	entries []Entry
}

// std is the process-wide canonical registry. It is built once from the
// canonical table and never mutated afterwards.
var std = mustRegistry(canonical...)

// Default returns the canonical registry.
func Default() *Registry { return std }

// NewRegistry builds a registry from the provided entries.
//
// Entries are copied; the resulting registry does not observe later changes
// to the caller's slice. Codes and names must be unique and names must be
// non-empty.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		byCode:  make(map[Code]Entry, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
		entries: make([]Entry, 0, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: empty name for code %d", ErrDuplicateEntry, uint16(e.Code))
		}
		if prev, ok := r.byCode[e.Code]; ok {
			return nil, fmt.Errorf("%w: code %d registered as %q and %q", ErrDuplicateEntry, uint16(e.Code), prev.Name, e.Name)
		}
		if prev, ok := r.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: name %q registered for %d and %d", ErrDuplicateEntry, e.Name, uint16(prev.Code), uint16(e.Code))
		}
		r.byCode[e.Code] = e
		r.byName[e.Name] = e
		r.entries = append(r.entries, e)
	}
	sort.Slice(r.entries, func(i, j int) bool { return r.entries[i].Code < r.entries[j].Code })
	return r, nil
}

// Extend returns a new registry holding the entries of r plus extra.
// The receiver is left untouched.
func (r *Registry) Extend(extra ...Entry) (*Registry, error) {
	all := make([]Entry, 0, len(r.entries)+len(extra))
	all = append(all, r.entries...)
	all = append(all, extra...)
	return NewRegistry(all...)
}

// ByNumericCode translates a numeric code into its canonical name.
func (r *Registry) ByNumericCode(code uint16) (string, error) {
	e, ok := r.byCode[Code(code)]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownStatusCode, code)
	}
	return e.Name, nil
}

// CanonicalReasonOf returns the canonical reason phrase of a status name.
func (r *Registry) CanonicalReasonOf(name string) (string, error) {
	e, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatusName, name)
	}
	return e.Reason, nil
}

// Lookup returns the entry registered for c.
func (r *Registry) Lookup(c Code) (Entry, bool) {
	e, ok := r.byCode[c]
	return e, ok
}

// LookupName returns the entry registered under name.
func (r *Registry) LookupName(name string) (Entry, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Entries returns a snapshot of all entries, ascending by code.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int { return len(r.entries) }

// ByNumericCode translates code through the canonical registry.
func ByNumericCode(code uint16) (string, error) { return std.ByNumericCode(code) }

// CanonicalReasonOf looks name up in the canonical registry.
func CanonicalReasonOf(name string) (string, error) { return std.CanonicalReasonOf(name) }

func mustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}
