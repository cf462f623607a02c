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

// Package combiner merges an AppModel's fluent and attributed routes
// into one validated, specificity-ordered GeneratorModel (spec §4.6):
// duplicate/overlap/unreachable route detection and DI reachability
// checks. Grounded on router/compiler.RouteCompiler's two-phase
// "compile all routes, then sort/validate the set" structure, and on
// router/radix.go's segment-prefix comparison for the shadowing check.
package combiner

import (
	"strings"

	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/ir"
)

// GeneratorModel is the final, validated input to the emitter: routes
// ordered by descending specificity with duplicates and unreachable
// routes already dropped.
type GeneratorModel struct {
	App    *ir.AppModel
	Routes []ir.RouteDefinition
}

// Combine runs every validation in §4.6 against model, reports
// diagnostics via r, and returns the surviving, ordered route set.
func Combine(model *ir.AppModel, r *diag.Reporter) *GeneratorModel {
	routes := model.AllRoutes()

	routes = dropDuplicates(routes, r)
	reportOverlaps(routes, r)
	routes = dropUnreachable(routes, r)

	ir.SortRoutesBySpecificity(routes)

	resolveParameterBindings(model, routes)
	checkServiceReachability(model, routes, r)
	checkConstructorDependencies(model, r)

	return &GeneratorModel{App: model, Routes: routes}
}

// dropDuplicates reports NURU_R002 for any two routes whose canonical
// Pattern strings are identical, keeping only the first declared.
func dropDuplicates(routes []ir.RouteDefinition, r *diag.Reporter) []ir.RouteDefinition {
	seen := map[string]ir.RouteDefinition{}
	out := make([]ir.RouteDefinition, 0, len(routes))
	for _, route := range routes {
		if first, ok := seen[route.Pattern]; ok {
			r.Report(diag.Errorf(diag.CodeDuplicateRoute, route.Span,
				"route %q duplicates the route declared at %s", route.Pattern, first.Span))
			continue
		}
		seen[route.Pattern] = route
		out = append(out, route)
	}
	return out
}

// reportOverlaps reports NURU_R001 (a warning) for any two routes whose
// required signatures coincide but whose positional type constraints
// differ, per spec §4.6.
func reportOverlaps(routes []ir.RouteDefinition, r *diag.Reporter) {
	for i := 0; i < len(routes); i++ {
		for j := i + 1; j < len(routes); j++ {
			a, b := routes[i], routes[j]
			if !signaturesCoincide(a.RequiredSignature(), b.RequiredSignature()) {
				continue
			}
			if sameTypeConstraints(a.RequiredSignature(), b.RequiredSignature()) {
				continue
			}
			r.Report(diag.Warnf(diag.CodeOverlappingRoutes, b.Span,
				"route %q overlaps %q declared at %s: same shape, different parameter types",
				b.Pattern, a.Pattern, a.Span))
		}
	}
}

// dropUnreachable reports and removes any route B shadowed by a route A
// that comes earlier in match order (more specific, or equally specific
// and declared first) and whose required signature is a prefix of or
// equal to B's (spec §4.6 NURU_R003).
func dropUnreachable(routes []ir.RouteDefinition, r *diag.Reporter) []ir.RouteDefinition {
	var out []ir.RouteDefinition
	for i, b := range routes {
		shadowedBy, ok := findShadow(routes, i)
		if ok {
			r.Report(diag.Errorf(diag.CodeUnreachableRoute, b.Span,
				"route %q is unreachable: shadowed by %q declared at %s",
				b.Pattern, shadowedBy.Pattern, shadowedBy.Span))
			continue
		}
		out = append(out, b)
	}
	return out
}

func findShadow(routes []ir.RouteDefinition, idx int) (ir.RouteDefinition, bool) {
	b := routes[idx]
	bSig := b.RequiredSignature()
	for i, a := range routes {
		if i == idx {
			continue
		}
		aSig := a.RequiredSignature()
		if a.Specificity < b.Specificity {
			continue
		}
		if a.Specificity == b.Specificity && (a.Order > b.Order || (a.Order == b.Order && i > idx)) {
			continue
		}
		if isPrefixOrEqual(aSig, bSig) && sameTypeConstraints(aSig, bSig[:min(len(aSig), len(bSig))]) {
			return a, true
		}
	}
	return ir.RouteDefinition{}, false
}

func isPrefixOrEqual(prefix, full []ir.Segment) bool {
	if len(prefix) > len(full) {
		return false
	}
	for i, s := range prefix {
		if !sameShape(s, full[i]) {
			return false
		}
	}
	return true
}

func sameShape(a, b ir.Segment) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ir.SegmentLiteral:
		return a.Value == b.Value
	case ir.SegmentParameter:
		return true
	case ir.SegmentOption:
		return a.LongForm == b.LongForm
	default:
		return true
	}
}

func signaturesCoincide(a, b []ir.Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameShape(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameTypeConstraints(a, b []ir.Segment) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i].Kind == ir.SegmentParameter && a[i].TypeConstraint != b[i].TypeConstraint {
			return false
		}
	}
	return true
}

// resolveParameterBindings fills in Source and RouteSegmentName on every
// handler parameter, which handler.Extract leaves at their zero value
// since it only sees the lambda/method-reference signature, not the
// route it is attached to. A parameter whose name matches a positional
// or option segment is bound from the match; otherwise it is resolved
// against the registered services, loggers, and a small set of
// well-known ambient types (spec §4.7.6).
func resolveParameterBindings(model *ir.AppModel, routes []ir.RouteDefinition) {
	services := map[string]bool{}
	for _, s := range model.Services {
		services[s.ServiceType] = true
	}
	loggers := map[string]bool{}
	for _, s := range model.Loggers {
		loggers[s.ServiceType] = true
	}

	for _, route := range routes {
		if route.Handler == nil {
			continue
		}
		for i := range route.Handler.Parameters {
			resolveOneBinding(&route.Handler.Parameters[i], route.Segments, services, loggers)
		}
	}
}

func resolveOneBinding(p *ir.ParameterBinding, segs []ir.Segment, services, loggers map[string]bool) {
	for _, s := range segs {
		switch s.Kind {
		case ir.SegmentParameter:
			if s.Name != p.HandlerParameterName {
				continue
			}
			p.RouteSegmentName = s.Name
			if s.IsCatchAll {
				p.Source = ir.SourceCatchAll
			} else {
				p.Source = ir.SourcePositionalParameter
			}
			return
		case ir.SegmentOption:
			if s.ParameterName != p.HandlerParameterName {
				continue
			}
			p.RouteSegmentName = s.ParameterName
			p.Source = ir.SourceOption
			return
		}
	}

	switch {
	case loggers[p.ParameterTypeName] || isWellKnownLoggerType(p.ParameterTypeName):
		p.Source = ir.SourceLogger
	case services[p.ParameterTypeName]:
		p.Source = ir.SourceService
	case isWellKnownTerminalType(p.ParameterTypeName):
		p.Source = ir.SourceTerminal
	case isWellKnownConfigurationType(p.ParameterTypeName):
		p.Source = ir.SourceConfiguration
	case isWellKnownAppType(p.ParameterTypeName):
		p.Source = ir.SourceApp
	default:
		// Not a registered service either, but every parameter has to
		// resolve to something; treat it as an (unregistered) service so
		// checkServiceReachability below can report NURU_D001 on it.
		p.Source = ir.SourceService
	}
}

func isWellKnownLoggerType(typeName string) bool {
	return typeName == "ILogger" || strings.HasPrefix(typeName, "ILogger<")
}

func isWellKnownTerminalType(typeName string) bool {
	return typeName == "ITerminal" || typeName == "Terminal"
}

func isWellKnownConfigurationType(typeName string) bool {
	return typeName == "IConfiguration"
}

func isWellKnownAppType(typeName string) bool {
	return typeName == "NuruApp" || typeName == "IApp"
}

// checkServiceReachability reports NURU_D001 for any handler parameter
// sourced from a DI service with no matching registration, unless the
// app opted into runtime DI.
func checkServiceReachability(model *ir.AppModel, routes []ir.RouteDefinition, r *diag.Reporter) {
	if model.HasRuntimeDI {
		return
	}
	registered := map[string]bool{}
	for _, s := range model.Services {
		registered[s.ServiceType] = true
	}
	for _, s := range model.Loggers {
		registered[s.ServiceType] = true
	}

	for _, route := range routes {
		if route.Handler == nil {
			continue
		}
		for _, p := range route.Handler.Parameters {
			if p.Source != ir.SourceService {
				continue
			}
			if !registered[p.ParameterTypeName] {
				r.Report(diag.Errorf(diag.CodeUnresolvedService, route.Span,
					"route %q: handler parameter %q of type %q has no matching service registration",
					route.Pattern, p.HandlerParameterName, p.ParameterTypeName))
			}
		}
	}
}

// checkConstructorDependencies reports NURU051 for a registered
// service whose constructor dependency types are not themselves
// registered, rather than allowing a silent runtime DI fallback.
func checkConstructorDependencies(model *ir.AppModel, r *diag.Reporter) {
	registered := map[string]bool{}
	for _, s := range model.Services {
		registered[s.ServiceType] = true
	}

	for _, s := range model.Services {
		for _, dep := range s.ConstructorDependencyTypes {
			if !registered[dep] {
				r.Report(diag.Errorf(diag.CodeUnresolvedDependency, diag.Span{},
					"service %s depends on unregistered type %s", s.ServiceType, dep))
			}
		}
	}
}
