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

// ErrorView is the body an adapter sends for an error response.
//
// It holds only what is safe to disclose to a client; internal causes are
// never part of it.
type ErrorView struct {
	// Status is the numeric response status.
	Status int `json:"status"`
	// Name is the canonical status name, empty for unregistered statuses.
	Name string `json:"name,omitempty"`
	// Reason is the reason phrase.
	Reason string `json:"reason,omitempty"`
	// Message is the human-oriented message of the error, if it has one.
	Message string `json:"message,omitempty"`
	// Details lists structured details, if the error provides any.
	Details []Detail `json:"details,omitempty"`
}
