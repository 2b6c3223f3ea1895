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

import "errors"

// DefaultStatusImport is the import path of the status package referenced by
// generated code.
const DefaultStatusImport = "dirpx.dev/enumresponse/status"

// ErrNoPackage is returned when Config.Package is empty.
var ErrNoPackage = errors.New("gen: package name is required")

// Config drives one generated file.
type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Source names the input in the header comment. Optional.
	Source string
	// Methods adds Status and Reason methods to every variant.
	Methods bool
	// StatusImport is the import path of the status package.
	StatusImport string
}

// Option adjusts a Config.
type Option func(*Config)

// WithSource records the input file name in the generated header.
func WithSource(name string) Option { return func(c *Config) { c.Source = name } }

// WithoutMethods emits the dispatch functions only.
func WithoutMethods() Option { return func(c *Config) { c.Methods = false } }

// WithStatusImport overrides DefaultStatusImport.
func WithStatusImport(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.StatusImport = path
		}
	}
}

// NewConfig returns a Config for package pkg with methods enabled and the
// default status import, then applies opts in order.
func NewConfig(pkg string, opts ...Option) Config {
	c := Config{Package: pkg, Methods: true, StatusImport: DefaultStatusImport}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
