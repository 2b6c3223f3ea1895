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

// Descriptor is a flat, transport-friendly description of a response.
//
// It uses plain strings and integers (not status.Code) so that it can be
// logged, traced or published on a message bus as-is.
type Descriptor struct {
	// HTTPStatus is the numeric response status, e.g. 404.
	HTTPStatus int `json:"http_status"`

	// Name is the canonical status name, e.g. "NotFound". It is empty for
	// statuses unknown to the registry.
	Name string `json:"name,omitempty"`

	// Reason is the reason phrase: the responder's own or the canonical one.
	Reason string `json:"reason,omitempty"`

	// GRPCCode is the gRPC projection of HTTPStatus (as integer).
	GRPCCode int `json:"grpc_code"`

	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`
}
