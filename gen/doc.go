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

// Package gen turns derived dispatch tables into Go source.
//
// For a table of type ApiError it writes:
//
//	func ApiErrorStatus(v ApiError) status.Code
//	func ApiErrorReason(v ApiError) (string, bool)
//
// as type switches with one case per arm, in arm order, plus a Status and a
// Reason method on every variant so that variants satisfy apis.Responder.
//
// Literal statuses are spelled with the named constants of the status
// package when the name is canonical and as status.Code(n) otherwise. Field
// sources are read straight off the variant: status fields are converted to
// status.Code, reason fields are returned as strings. The default reason arm
// calls the generated status dispatch and looks the result up with
// Code.CanonicalReason.
//
// Tables without a default arm are exhaustive over the declared variants; the
// generated functions end with a panic that only foreign implementations of
// the interface (or nil) can reach.
//
// Output is rendered with text/template and passed through go/format.
package gen
