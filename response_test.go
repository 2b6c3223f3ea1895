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

import (
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/enumresponse/apis"
	"dirpx.dev/enumresponse/status"
)

func TestResponse_Basics(t *testing.T) {
	r := E(status.ServiceUnavailable, "storage is down",
		WithReasonOption("Storage Offline"),
		WithDetailOption(apis.Detail{Type: "dependency", Field: "db"}),
	)

	if r.Status() != status.ServiceUnavailable {
		t.Fatal("status mismatch")
	}
	if got, ok := r.Reason(); !ok || got != "Storage Offline" {
		t.Fatalf("Reason() = %q, %v", got, ok)
	}
	if len(r.ErrorDetails()) != 1 || r.ErrorMessage() != "storage is down" {
		t.Fatal("details or message missing")
	}
	if got, want := r.Error(), "503 Storage Offline: storage is down"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestResponse_ErrorFormat(t *testing.T) {
	tests := []struct {
		r    *Response
		want string
	}{
		{E(status.NotFound, "no such user"), "404 Not Found: no such user"},
		{E(status.NotFound, ""), "404 Not Found"},
		{E(status.Code(499), "gone"), "499: gone"},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		if got := tt.r.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestResponse_Immutability_CopyOnWrite(t *testing.T) {
	r1 := E(status.BadRequest, "bad").WithDetail(apis.Detail{Field: "a"})
	r2 := r1.WithDetail(apis.Detail{Field: "b"})
	r3 := r1.WithDetail(apis.Detail{Field: "c"})

	if len(r1.Details) != 1 || len(r2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if r2.Details[1].Field != "b" || r3.Details[1].Field != "c" {
		t.Fatal("siblings share a backing array")
	}

	r4 := r1.WithReason("Nope").WithMessage("other")
	if _, ok := r1.Reason(); ok || r1.Message != "bad" {
		t.Fatal("original mutated")
	}
	if r4.Phrase != "Nope" || r4.Message != "other" {
		t.Fatal("copy not updated")
	}
}

func TestResponse_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	r := E(status.InternalServerError, "x").WithCause(root)
	if !errors.Is(r, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(r) != root {
		t.Fatal("Unwrap failed")
	}
	if r.WithCause(nil) != r {
		t.Fatal("WithCause(nil) must return the receiver")
	}
	if E(status.OK, "", WithCauseOption(root)).Cause != root {
		t.Fatal("WithCauseOption ignored")
	}
}

type unitVariant struct{}

func (unitVariant) Error() string          { return "unit" }
func (unitVariant) Status() status.Code    { return status.Conflict }
func (unitVariant) Reason() (string, bool) { return "", false }

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want status.Code
	}{
		{"nil", nil, status.OK},
		{"plain", errors.New("x"), status.InternalServerError},
		{"response", E(status.Gone, ""), status.Gone},
		{"wrapped variant", fmt.Errorf("op: %w", unitVariant{}), status.Conflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.want {
				t.Fatalf("StatusOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReasonOf(t *testing.T) {
	if got := ReasonOf(unitVariant{}); got != "Conflict" {
		t.Fatalf("canonical fallback = %q", got)
	}
	if got := ReasonOf(E(status.Conflict, "").WithReason("Version Mismatch")); got != "Version Mismatch" {
		t.Fatalf("own reason = %q", got)
	}
	if got := ReasonOf(E(status.Code(299), "")); got != "" {
		t.Fatalf("unregistered = %q", got)
	}
	if got := ReasonOf(nil); got != "" {
		t.Fatalf("nil = %q", got)
	}
}

func TestResponse_NilReceiver(t *testing.T) {
	var r *Response
	err := fmt.Errorf("op: %w", r)

	rs, ok := Find(err)
	if !ok {
		t.Fatal("Find must report the typed-nil *Response")
	}
	if got := rs.Status(); got != status.InternalServerError {
		t.Fatalf("Status() = %v, want %v", got, status.InternalServerError)
	}
	if got, ok := rs.Reason(); got != "" || ok {
		t.Fatalf("Reason() = (%q, %v), want (\"\", false)", got, ok)
	}
	if got := ReasonOf(rs); got != "Internal Server Error" {
		t.Fatalf("ReasonOf = %q", got)
	}
	if got := StatusOf(err); got != status.InternalServerError {
		t.Fatalf("StatusOf = %v", got)
	}
	if r.ErrorMessage() != "" || r.ErrorDetails() != nil || r.Unwrap() != nil {
		t.Fatal("nil accessors must return zero values")
	}
}
