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
	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the canonical status registry. A nil registry is
// ignored.
func WithRegistry(r *status.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithLogger sets the logger used for debug traces of a derivation.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine derives dispatch tables. It holds no per-derivation state and is
// safe for concurrent use.
type Engine struct {
	registry *status.Registry
	logger   *zap.Logger
}

// New constructs an Engine with the canonical registry and a no-op logger,
// then applies opts in order.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: status.Default(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Derive is shorthand for New(opts...).Derive(t).
func Derive(t schema.Type, opts ...Option) (*Table, error) {
	return New(opts...).Derive(t)
}

// Derive runs parse, validate and build over t.
//
// Steps:
//
//  1. Reject anything that is not a sum type (NotASumType).
//  2. Reject structurally broken declarations (InvalidSchema).
//  3. Parse the configuration of every variant into at most one status and
//     one reason ValueSpec.
//  4. Validate every field-based spec against its variant's shape.
//  5. Build the status arms, then the reason arms, appending the defaults
//     when a variant was left unconfigured.
//
// The first failure aborts the derivation; no partial table is returned.
func (e *Engine) Derive(t schema.Type) (*Table, error) {
	log := e.logger.With(zap.String("type", t.Name))

	// (1) Only tagged unions can be derived.
	if t.Kind != schema.KindSum {
		return nil, &Error{
			Kind:    NotASumType,
			Type:    t.Name,
			Message: "response dispatch can only be derived for sum types; " + t.Name + " is a " + t.Kind.String() + " type",
		}
	}

	// (2) Declaration sanity.
	if err := t.Check(); err != nil {
		return nil, &Error{Kind: InvalidSchema, Type: t.Name, Message: err.Error(), Cause: err}
	}

	// (3) Parse.
	specs := make([]resolved, len(t.Variants))
	for i, v := range t.Variants {
		r, err := e.parseVariant(t, v)
		if err != nil {
			log.Debug("configuration rejected", zap.String("variant", v.Name), zap.Error(err))
			return nil, err
		}
		specs[i] = r
		if r.status != nil {
			log.Debug("status source resolved", zap.String("variant", v.Name), zap.Stringer("spec", r.status.spec))
		}
		if r.reason != nil {
			log.Debug("reason source resolved", zap.String("variant", v.Name), zap.Stringer("spec", r.reason.spec))
		}
	}

	// (4) Validate, exhaustively, before anything is built.
	if err := validate(t, specs); err != nil {
		log.Debug("validation failed", zap.Error(err))
		return nil, err
	}

	// (5) Build.
	return e.build(t, specs)
}
