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

// Package derive synthesizes the status and reason dispatch of a sum type.
//
// Given a schema.Type whose variants carry raw "response" configuration
// entries, Derive runs three passes in order:
//
//  1. parse: every variant's entries are resolved into at most one ValueSpec
//     for status and one for reason (later entries win);
//  2. validate: every field-based ValueSpec is checked against the shape of
//     its variant;
//  3. build: one Arm per configured variant is emitted for each function, in
//     declaration order, followed by a catch-all default arm whenever some
//     variant was left unconfigured.
//
// The result is a Table: two ordered arm lists that a code emitter (see
// package gen) turns into a status() / reason() implementation.
//
// # Configuration keys
//
//	status = 404            literal status by numeric code
//	status = "404"          same, numeric-first
//	status = "NotFound"     literal status by canonical name
//	status_field = 0        status read from positional field 0
//	status_field = "code"   status read from named field "code"
//	reason = "text"         literal reason
//	reason_field = 1        reason read from positional field 1
//	reason_field = "msg"    reason read from named field "msg"
//
// # Defaults
//
// A variant without a status source answers InternalServerError (500).
// A variant without a reason source answers the canonical reason phrase of
// whatever its status dispatch returned.
//
// # Errors
//
// All failures happen before any arm is built and carry the type, variant,
// key and offending value. The first failure aborts the derivation; see Error
// and the Err* sentinels for matching with errors.Is.
package derive
