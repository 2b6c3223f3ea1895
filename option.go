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

package enumresponse

import "dirpx.dev/enumresponse/apis"

// Option is a functional option for constructing or transforming a Response.
// It always takes a *Response and returns a (possibly new) *Response.
type Option func(*Response) *Response

// WithReasonOption sets Phrase on the response being constructed.
// Intended to be used with E(...).
func WithReasonOption(phrase string) Option {
	return func(r *Response) *Response {
		return r.WithReason(phrase)
	}
}

// WithDetailOption appends a detail on construction.
func WithDetailOption(d apis.Detail) Option {
	return func(r *Response) *Response {
		return r.WithDetail(d)
	}
}

// WithCauseOption attaches a cause on construction.
func WithCauseOption(err error) Option {
	return func(r *Response) *Response {
		return r.WithCause(err)
	}
}
