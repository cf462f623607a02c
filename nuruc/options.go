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

// Package nuruc is the top-level compiler driver: it wires the pattern,
// dsl, attrs, handler, combiner, and emit packages into one
// Compile call, configured via functional options the way app.New
// threads options through the teacher's application builder.
package nuruc

import "github.com/timewarp-nuru/nuruc/nrlog"

// Config is the resolved configuration for one Driver.
type Config struct {
	Module               string
	DisableBuiltinFlags  []string
	DebugDiagnostics     bool
	OutputPath           string
	Logger               *nrlog.Logger
}

// Option configures a Driver, mirroring app.Option / router.Option.
type Option func(*Config)

// WithModule sets the output module/namespace name.
func WithModule(module string) Option {
	return func(c *Config) { c.Module = module }
}

// WithDisableBuiltinFlags records the named built-in flags (--help,
// --version, --capabilities) in Config.DisableBuiltinFlags, which Compile
// copies to each AppModel.DisabledBuiltinFlags. The emitter does not read
// that list: the built-in flag checks are emitted for every app.
func WithDisableBuiltinFlags(flags ...string) Option {
	return func(c *Config) { c.DisableBuiltinFlags = flags }
}

// WithDebugDiagnostics enables Info-severity diagnostics in reporter
// output, normally suppressed per §4.8.
func WithDebugDiagnostics(debug bool) Option {
	return func(c *Config) { c.DebugDiagnostics = debug }
}

// WithOutputPath records an output path in Config.OutputPath. Compile
// returns the generated text and writes no file itself.
func WithOutputPath(path string) Option {
	return func(c *Config) { c.OutputPath = path }
}

// WithLogger sets the ambient logger; the default is a logger whose
// output is discarded, as app.noopLogger.
func WithLogger(l *nrlog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func defaultConfig() Config {
	return Config{
		Module: "Generated",
		Logger: nrlog.New(nrlog.WithOutput(discardWriter{})),
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
