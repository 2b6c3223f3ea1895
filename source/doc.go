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

// Package source reads sum type declarations out of Go source.
//
// A sum type is an interface whose doc comment carries the marker
//
//	//enumresponse:derive
//
// and that declares exactly one unexported method without parameters or
// results. The variants are the named types of the same package that
// implement that method, ordered by where their type declaration appears
// (files sorted by name, then source order). The receiver may be a value or
// a pointer; a receiver with type arguments marks a generic variant.
//
// Variant shapes follow the struct definition:
//
//	struct{}                 -> unit
//	struct{ F0 A; F1 B }     -> positional (fields F0..Fn-1, in order)
//	struct{ Code int; ... }  -> named
//
// Configuration lives in the variant's doc comment as one or more directive
// lines:
//
//	//response(status = 404, reason = "no such user")
//	//response(reason_field = "Message")
//
// Entries keep their written order across lines. Each item is one of key =
// literal, a bare key, key(...), key = (...) or a stray literal; literals are
// Go literals (integers, floats, strings, chars) plus identifiers.
package source
