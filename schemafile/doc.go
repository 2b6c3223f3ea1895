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

// Package schemafile reads sum type schemas from YAML.
//
// It describes the same model as Go source declarations without a Go
// package around them, which is handy for inspecting tables with the CLI
// and for fixtures:
//
//	types:
//	  - name: ApiError
//	    type_params:
//	      - {name: T, constraint: any}
//	    variants:
//	      - name: NotFound
//	        response:
//	          status: 404
//	          reason: resource not found
//	      - name: Upstream
//	        fields: [status.Code, string]   # positional
//	        response:
//	          - status_field: 0
//	          - reason_field: 1
//	      - name: Invalid
//	        fields: {Field: string, Message: string}   # named
//	        response: {status: UnprocessableEntity, reason_field: Message}
//
// A response block is either a mapping or a sequence; the sequence form
// allows repeated keys and bare keys (a plain scalar item). Scalar kinds
// follow the YAML tags: !!int, !!str, !!float, !!bool, and !!null for a
// key without value. Nested mappings and sequences become groups.
package schemafile
