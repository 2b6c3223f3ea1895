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

// Detail represents a single structured piece of information attached to a
// response. It is a view type: small, transport-friendly and suitable for
// JSON or protobuf encoding.
type Detail struct {
	// Type classifies the detail, e.g. "field" or "conflict". Optional.
	Type string `json:"type,omitempty"`

	// Field is the path of the offending input field, e.g. "user.email".
	Field string `json:"field,omitempty"`

	// Reason is a short explanation, e.g. "required" or "not_unique". It is
	// not the reason phrase of the response.
	Reason string `json:"reason,omitempty"`

	// Info carries optional extra data, such as allowed values or a
	// conflicting resource name.
	Info map[string]string `json:"info,omitempty"`
}
