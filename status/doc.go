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

// Package status is the canonical registry of HTTP status codes used by
// enumresponse.
//
// Every registered status is a triple of:
//
//   - a numeric code (404);
//   - a canonical identifier name (NotFound);
//   - a canonical human-readable reason phrase ("Not Found").
//
// The registry is closed: derivation rejects any code or name that is not
// listed here, and generated code refers to statuses through the exported
// constants of this package (status.NotFound, status.BadRequest, ...).
//
// Each entry also carries the gRPC code it projects to when a status crosses
// a gRPC boundary (see Code.GRPC and package grpcx).
//
// The registry is immutable for the process lifetime and safe for concurrent
// use.
package status
