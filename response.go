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

// Package enumresponse derives HTTP response metadata from Go sum types.
//
// Sum types are annotated in source and processed by the enumresponse
// command, which generates Status and Reason methods per variant (see
// packages derive and gen). This package holds the runtime side: Response, a
// hand-built error that satisfies the same apis.Responder contract, and
// helpers that read a status or reason off any error.
package enumresponse

import (
	"errors"
	"strconv"

	"dirpx.dev/enumresponse/apis"
	"dirpx.dev/enumresponse/status"
)

// Response is an error that carries its own response status.
//
// It carries:
//   - Code: the status of the response (required);
//   - Phrase: optional reason text replacing the canonical one;
//   - Message: human-oriented description of what went wrong;
//   - Details: structured payload for the response body;
//   - Cause: wrapped underlying error.
//
// All mutation helpers (WithX) return a shallow copy, so Response values can
// be shared and modified in a functional style.
type Response struct {
	// Code is the response status, e.g. status.NotFound.
	Code status.Code

	// Phrase overrides the canonical reason phrase of Code. Empty means
	// "no reason of its own".
	Phrase string

	// Message is a human-readable explanation for logs and response bodies.
	Message string

	// Details is treated as immutable: WithDetail always copies it.
	Details []apis.Detail

	// Cause is the wrapped underlying error, if any.
	Cause error
}

var (
	_ apis.Responder     = (*Response)(nil)
	_ apis.DetailedError = (*Response)(nil)
	_ apis.MessageError  = (*Response)(nil)
)

// E is a convenience constructor for Response.
//
// Usage:
//
//	return enumresponse.E(status.ServiceUnavailable, "storage is down",
//	    enumresponse.WithReasonOption("Storage Offline"),
//	    enumresponse.WithCauseOption(err),
//	)
//
// It always returns a new Response and applies opts in order.
func E(c status.Code, msg string, opts ...Option) *Response {
	r := &Response{Code: c, Message: msg}
	for _, opt := range opts {
		r = opt(r)
	}
	return r
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code> <reason>: <message>
//
// where reason is Phrase when set and the canonical reason otherwise, e.g.
// "404 Not Found: no such user".
func (r *Response) Error() string {
	if r == nil {
		return "<nil>"
	}
	head := r.Code.String()
	if r.Phrase != "" {
		head = strconv.Itoa(int(r.Code)) + " " + r.Phrase
	}
	if r.Message == "" {
		return head
	}
	return head + ": " + r.Message
}

// The accessors below accept a nil receiver, which errors.As can hand out
// for a typed-nil *Response in a chain. A nil Response is an
// InternalServerError without reason, message or details.

// Unwrap returns the underlying cause.
func (r *Response) Unwrap() error {
	if r == nil {
		return nil
	}
	return r.Cause
}

// Status implements apis.Responder.
func (r *Response) Status() status.Code {
	if r == nil {
		return status.InternalServerError
	}
	return r.Code
}

// Reason implements apis.Responder. It reports Phrase, if any.
func (r *Response) Reason() (string, bool) {
	if r == nil {
		return "", false
	}
	return r.Phrase, r.Phrase != ""
}

// ErrorMessage implements apis.MessageError.
func (r *Response) ErrorMessage() string {
	if r == nil {
		return ""
	}
	return r.Message
}

// ErrorDetails implements apis.DetailedError.
func (r *Response) ErrorDetails() []apis.Detail {
	if r == nil {
		return nil
	}
	return r.Details
}

// WithReason returns a copy of r with Phrase set.
func (r *Response) WithReason(phrase string) *Response {
	cp := *r
	cp.Phrase = phrase
	return &cp
}

// WithMessage returns a copy of r with a replaced message.
func (r *Response) WithMessage(msg string) *Response {
	cp := *r
	cp.Message = msg
	return &cp
}

// WithDetail returns a copy of r with d appended to Details.
//
// The slice is always copied so that values derived from the same Response
// never share a backing array.
func (r *Response) WithDetail(d apis.Detail) *Response {
	cp := *r
	ds := make([]apis.Detail, 0, len(r.Details)+1)
	ds = append(ds, r.Details...)
	cp.Details = append(ds, d)
	return &cp
}

// WithCause returns a copy of r with the given cause attached.
// If err is nil, r is returned unchanged.
func (r *Response) WithCause(err error) *Response {
	if err == nil {
		return r
	}
	cp := *r
	cp.Cause = err
	return &cp
}

// Find returns the first apis.Responder in err's chain.
func Find(err error) (apis.Responder, bool) {
	var rs apis.Responder
	if errors.As(err, &rs) {
		return rs, true
	}
	return nil, false
}

// StatusOf returns the status of the first responder in err's chain and
// status.InternalServerError when there is none. A nil error is status.OK.
func StatusOf(err error) status.Code {
	if err == nil {
		return status.OK
	}
	if rs, ok := Find(err); ok {
		return rs.Status()
	}
	return status.InternalServerError
}

// ReasonOf returns the reason of rs, falling back to the canonical reason of
// its status. The result is empty only for unregistered statuses without a
// reason of their own.
func ReasonOf(rs apis.Responder) string {
	if rs == nil {
		return ""
	}
	if r, ok := rs.Reason(); ok {
		return r
	}
	r, _ := rs.Status().CanonicalReason()
	return r
}
