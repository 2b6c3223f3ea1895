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

package status

// FromField returns the status held by a variant field. Only types whose
// underlying type is uint16 are accepted, so a field that would wrap or
// truncate does not compile.
func FromField[C ~uint16](c C) Code { return Code(c) }

// View returns the reason phrase held by a string-like variant field.
func View[S ~string | ~[]byte](s S) string { return string(s) }
