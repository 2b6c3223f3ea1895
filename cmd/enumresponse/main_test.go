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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "enumresponse version "+version+"\n", out)
}

func TestGenerateStdout(t *testing.T) {
	t.Setenv("GOFILE", "")
	out, _, err := run(t, "generate", "--stdout", "--no-methods", filepath.Join("testdata", "shop"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("testdata", "shop.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestGenerateWritesFile(t *testing.T) {
	t.Setenv("GOFILE", "shop.go")
	dir := t.TempDir()
	src, err := os.ReadFile(filepath.Join("testdata", "shop", "shop.go"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shop.go"), src, 0o644))

	_, stderr, err := run(t, "--log-level", "info", "generate", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "generated")

	got, err := os.ReadFile(filepath.Join(dir, defaultOut))
	require.NoError(t, err)
	assert.Contains(t, string(got), "// Code generated by enumresponse from shop.go; DO NOT EDIT.")
	assert.Contains(t, string(got), "func (v Broken) Status() status.Code { return status.InternalServerError }")

	// The generated file is skipped on the next run.
	_, _, err = run(t, "generate", dir)
	require.NoError(t, err)
}

func TestGenerateNoTypes(t *testing.T) {
	_, _, err := run(t, "generate", "--stdout", filepath.Join("testdata", "empty"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoTypes)
}

func TestTableFromSchema(t *testing.T) {
	out, _, err := run(t, "table", "--schema", filepath.Join("testdata", "api.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, `type="Failure" variants=2`)
	assert.Contains(t, out, "Missing -> literal NotFound(404)")
	assert.Contains(t, out, "_ -> fallback InternalServerError(500)")
}

func TestTableJSON(t *testing.T) {
	out, _, err := run(t, "table", "--format", "json", filepath.Join("testdata", "shop"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Failure", doc["type"])
}

func TestTableErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad format", args: []string{"table", "--format", "xml", "testdata/shop"}},
		{name: "unknown type", args: []string{"table", "--type", "Nope", "testdata/shop"}},
		{name: "schema and dir", args: []string{"table", "--schema", "testdata/api.yaml", "testdata/shop"}},
		{name: "bad log level", args: []string{"--log-level", "loud", "version"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
