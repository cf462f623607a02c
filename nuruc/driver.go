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

package nuruc

import (
	"github.com/hashicorp/go-multierror"

	"github.com/timewarp-nuru/nuruc/attrs"
	"github.com/timewarp-nuru/nuruc/combiner"
	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/dsl"
	"github.com/timewarp-nuru/nuruc/emit"
	"github.com/timewarp-nuru/nuruc/hostast"
)

// Driver orchestrates one compilation: DSL interpretation, attributed
// endpoint extraction, combination/validation, and emission.
type Driver struct {
	cfg Config
}

// New constructs a Driver, mirroring app.New / app.MustNew's functional
// option application.
func New(opts ...Option) *Driver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Driver{cfg: cfg}
}

// Unit is one compilation unit's input: the host-language block
// containing the fluent builder chains, plus every attributed endpoint
// type declaration visible to it.
type Unit struct {
	Block        hostast.Block
	Types        []hostast.TypeDecl
	DiscoverRoot string
	UserUsings   []string
}

// Result is one compiled app's combined model and generated output.
// Diagnostics for all apps are returned separately by Compile.
type Result struct {
	Model     *combiner.GeneratorModel
	Generated string
}

// Compile runs the full pipeline over unit and returns one Result per
// CreateBuilder()...Build() site found, plus the accumulated
// diagnostics. The returned error is non-nil only for fatal,
// non-diagnostic failures (spec SPEC_FULL.md §A.2); diagnostics
// (including build-failing ones) are always available via reporter
// regardless of the returned error.
func (d *Driver) Compile(unit Unit) ([]Result, *diag.Reporter, error) {
	reporter := diag.NewReporter(d.cfg.DebugDiagnostics)

	var fatal *multierror.Error

	models := dsl.Interpret(unit.Block, reporter)
	if len(models) == 0 {
		fatal = multierror.Append(fatal, errNoBuildSite)
		return nil, reporter, fatal.ErrorOrNil()
	}

	attributedRoutes := attrs.Extract(unit.Types, unit.DiscoverRoot, reporter)

	var results []Result
	for _, model := range models {
		model.AttributedRoutes = append(model.AttributedRoutes, attributedRoutes...)
		model.UserUsings = append(model.UserUsings, unit.UserUsings...)
		model.DisabledBuiltinFlags = append(model.DisabledBuiltinFlags, d.cfg.DisableBuiltinFlags...)

		gm := combiner.Combine(model, reporter)

		generated := ""
		if len(model.AllRoutes()) > 0 {
			generated = emit.Generate(gm, emit.Options{
				Namespace:  d.cfg.Module,
				UserUsings: gm.App.UserUsings,
			}, reporter)
		}

		results = append(results, Result{Model: gm, Generated: generated})
	}

	return results, reporter, fatal.ErrorOrNil()
}

var errNoBuildSite = driverError("no CreateBuilder()...Build() call site found in compilation unit")

type driverError string

func (e driverError) Error() string { return string(e) }
