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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/enumresponse/derive"
	"dirpx.dev/enumresponse/gen"
	"dirpx.dev/enumresponse/schema"
	"dirpx.dev/enumresponse/schemafile"
	"dirpx.dev/enumresponse/source"
)

const (
	version    = "0.1.0"
	appName    = "enumresponse"
	defaultOut = "enumresponse_gen.go"
)

// errNoTypes is returned when a directory has no marked declarations.
var errNoTypes = errors.New("no types marked " + source.Marker)

type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Derive HTTP response status and reason dispatch for Go sum types",
		Long: `enumresponse reads sum types declared as marked interfaces, resolves the
//response(...) directives of their variants and generates Status and Reason
dispatch for them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(logLevel, a.stderr)
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(a.generateCmd(), a.tableCmd(), a.versionCmd())
	return cmd
}

func (a *app) generateCmd() *cobra.Command {
	var (
		out          string
		toStdout     bool
		noMethods    bool
		statusImport string
	)
	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Generate dispatch code for the marked types of a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			opts := []gen.Option{gen.WithStatusImport(statusImport)}
			// Set by go generate.
			if file := os.Getenv("GOFILE"); file != "" {
				opts = append(opts, gen.WithSource(file))
			}
			if noMethods {
				opts = append(opts, gen.WithoutMethods())
			}
			return a.generate(dir, out, toStdout, opts...)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", defaultOut, "Output file name, relative to the package directory")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the generated code to stdout")
	cmd.Flags().BoolVar(&noMethods, "no-methods", false, "Only generate the dispatch functions")
	cmd.Flags().StringVar(&statusImport, "status-import", gen.DefaultStatusImport, "Import path of the status package")
	return cmd
}

func (a *app) generate(dir, out string, toStdout bool, opts ...gen.Option) error {
	pkg, err := source.New(source.WithLogger(a.logger)).LoadDir(dir)
	if err != nil {
		return err
	}
	if len(pkg.Types) == 0 {
		return fmt.Errorf("%s: %w", dir, errNoTypes)
	}

	tables, err := a.derive(pkg.Types)
	if err != nil {
		return err
	}
	code, err := gen.Source(gen.NewConfig(pkg.Name, opts...), tables...)
	if err != nil {
		return err
	}

	if toStdout {
		_, err = a.stdout.Write(code)
		return err
	}
	path := out
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, out)
	}
	if err := os.WriteFile(path, code, 0o644); err != nil {
		return err
	}
	a.logger.Info("generated", zap.String("file", path), zap.Int("types", len(tables)))
	return nil
}

func (a *app) derive(types []schema.Type) ([]*derive.Table, error) {
	eng := derive.New(derive.WithLogger(a.logger))
	tables := make([]*derive.Table, 0, len(types))
	for _, t := range types {
		tbl, err := eng.Derive(t)
		if err != nil {
			return nil, err
		}
		tables = append(tables, tbl)
	}
	return tables, nil
}

func (a *app) tableCmd() *cobra.Command {
	var (
		schemaPath string
		format     string
		only       string
	)
	cmd := &cobra.Command{
		Use:   "table [dir]",
		Short: "Print the derived dispatch tables",
		Long: `table derives the dispatch tables of a package, or of a YAML schema file
given with --schema, and prints them as text or JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown --format %q (want text or json)", format)
			}
			types, err := a.loadTypes(schemaPath, args)
			if err != nil {
				return err
			}
			if only != "" {
				types = filterTypes(types, only)
				if len(types) == 0 {
					return fmt.Errorf("type %q not found", only)
				}
			}
			tables, err := a.derive(types)
			if err != nil {
				return err
			}
			return a.printTables(tables, format)
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema file to read instead of Go source")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json)")
	cmd.Flags().StringVar(&only, "type", "", "Only print the named type")
	return cmd
}

func (a *app) loadTypes(schemaPath string, args []string) ([]schema.Type, error) {
	if schemaPath != "" {
		if len(args) > 0 {
			return nil, errors.New("--schema and a directory argument are mutually exclusive")
		}
		return schemafile.Load(schemaPath)
	}
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	pkg, err := source.New(source.WithLogger(a.logger)).LoadDir(dir)
	if err != nil {
		return nil, err
	}
	if len(pkg.Types) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, errNoTypes)
	}
	return pkg.Types, nil
}

func filterTypes(types []schema.Type, name string) []schema.Type {
	for _, t := range types {
		if t.Name == name {
			return []schema.Type{t}
		}
	}
	return nil
}

func (a *app) printTables(tables []*derive.Table, format string) error {
	var buf bytes.Buffer
	for i, tbl := range tables {
		switch format {
		case "json":
			raw, err := tbl.MarshalJSON()
			if err != nil {
				return err
			}
			buf.Write(raw)
			buf.WriteByte('\n')
		default:
			if i > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(tbl.Explain())
			buf.WriteByte('\n')
		}
	}
	_, err := a.stdout.Write(buf.Bytes())
	return err
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(a.stdout, "%s version %s\n", appName, version)
		},
	}
}
