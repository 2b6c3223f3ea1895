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

// Package schema is the in-memory model of a sum type under derivation.
//
// A Type names the tagged union, its generic parameters and its ordered
// variants. Each Variant has a Shape (Unit, Positional or Named) and an
// ordered list of raw configuration entries exactly as they were declared:
// nothing in this package interprets the entries, that is the job of the
// derive package.
//
// The model is a plain data structure. Declaration collaborators (package
// source for Go files, package schemafile for YAML) build it; the engine
// consumes it once and discards it.
package schema
