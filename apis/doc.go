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

// Package apis defines the public Go-level contracts shared by generated
// code, the runtime Response type and the transport adapters.
//
// The central contract is Responder, the two-method capability that derived
// sum types implement. HTTP and gRPC adapters target these interfaces and
// the small view types next to them, never a concrete error type.
//
// This package must remain lightweight: it only contains interfaces and
// plain view structs.
package apis
