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

package apis

import "dirpx.dev/enumresponse/status"

// Responder is implemented by values that know their response status.
//
// Generated code implements it on every variant of a derived sum type; the
// runtime Response implements it by hand.
type Responder interface {
	// Status returns the response status.
	Status() status.Code

	// Reason returns the reason phrase of the value and true, or "" and
	// false when the value has none of its own. Callers that need a phrase
	// regardless fall back to the canonical reason of Status().
	Reason() (string, bool)
}

// DetailedError represents an error that exposes zero or more structured
// details. This is especially useful for validation scenarios where multiple
// fields may fail at once and the caller needs to show all of them.
//
// Implementations SHOULD return a slice that the caller may iterate without
// copying. Returning nil is allowed and simply means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// MessageError represents an error with a human-oriented message distinct
// from its Error() string.
type MessageError interface {
	error

	// ErrorMessage returns the message. May be empty.
	ErrorMessage() string
}
