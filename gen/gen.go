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

package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"

	"dirpx.dev/enumresponse/derive"
)

// Source renders tables into a formatted Go file.
//
// When go/format rejects the rendered text the unformatted source is
// appended to the error.
func Source(cfg Config, tables ...*derive.Table) ([]byte, error) {
	f, err := newFile(cfg, tables)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "file", f); err != nil {
		return nil, fmt.Errorf("gen: execute template: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format generated code: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}

// Generate writes the output of Source to w.
func Generate(w io.Writer, cfg Config, tables ...*derive.Table) error {
	out, err := Source(cfg, tables...)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
