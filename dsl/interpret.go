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

// Package dsl interprets a hostast.Block recognizing the fluent builder
// chain of spec §4.3: CreateBuilder -> WithName/... -> ConfigureServices
// -> Map(pattern).WithHandler(...).AsQuery/AsCommand/AsIdempotentCommand
// .Done() -> Build() -> RunAsync()/RunReplAsync(). It has no teacher
// analog (the teacher has no embedded host-language front end); its
// builder-context stack is grounded on router/route.Route's own
// fluent-then-terminal shape (a chain of configuring calls ending in a
// call that finalizes the value), generalized to a stack of
// simultaneously in-progress builders.
package dsl

import (
	"errors"
	"fmt"

	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/handler"
	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/ir"
	"github.com/timewarp-nuru/nuruc/pattern"
)

// appHandle is the interpreter's live state for one CreateBuilder()
// chain, identified by the source location of its originating call.
type appHandle struct {
	model  *ir.AppModel
	closed bool // true once Build() has been observed

	currentRoute *routeHandle
	routeOrder   int
}

// routeHandle is the interpreter's live state for one Map(pattern)
// chain, popped into appHandle.model.Routes by Done().
type routeHandle struct {
	app  *appHandle
	def  ir.RouteDefinition
	kind routeKind
}

type routeKind int

const (
	routeFluent routeKind = iota
)

// Interpret walks block and returns one AppModel per distinct
// CreateBuilder()...Build() chain found, in declaration order.
// Diagnostics for unrecognized methods or misuse are reported via r
// rather than aborting interpretation (spec §4.3 "Failure model").
func Interpret(block hostast.Block, r *diag.Reporter) []*ir.AppModel {
	in := &interp{
		reporter: r,
		builders: map[string]*appHandle{},
	}
	in.walkBlock(block)

	models := make([]*ir.AppModel, 0, len(in.order))
	for _, h := range in.order {
		models = append(models, h.model)
	}
	return models
}

type interp struct {
	reporter *diag.Reporter
	builders map[string]*appHandle
	order    []*appHandle
}

func (in *interp) walkBlock(b hostast.Block) {
	for _, stmt := range b.Stmts {
		in.walkStmt(stmt)
	}
}

func (in *interp) walkStmt(stmt hostast.Stmt) {
	switch s := stmt.(type) {
	case hostast.LocalDecl:
		val := in.eval(s.Init)
		if h, ok := val.(*appHandle); ok {
			if prev, exists := in.builders[s.Name]; exists && !prev.closed {
				in.reporter.Report(diag.Errorf(diag.CodeBuilderReassigned, spanOf(s.Span),
					"variable %q is reassigned to a new builder before its previous Build() call", s.Name))
			}
			in.builders[s.Name] = h
			in.order = append(in.order, h)
		}

	case hostast.ExprStmt:
		in.eval(s.X)

	case hostast.ReturnStmt:
		if s.Result != nil {
			in.eval(s.Result)
		}
	}
}

func spanOf(s hostast.Span) diag.Span {
	return diag.Span{File: s.File, Line: s.Line, Column: s.Column}
}

// eval evaluates expr for its DSL effect, returning the chain value it
// produces: *appHandle, *routeHandle, or nil for anything else
// (service-config lambdas, literals, unrecognized calls).
func (in *interp) eval(expr hostast.Expr) any {
	switch e := expr.(type) {
	case hostast.Call:
		return in.evalCall(e)
	case hostast.Ident:
		if h, ok := in.builders[e.Name]; ok {
			return h
		}
		return nil
	default:
		return nil
	}
}

func (in *interp) evalCall(call hostast.Call) any {
	method, recv := methodAndReceiver(call.Fn)
	var recvVal any
	if recv != nil {
		recvVal = in.eval(recv)
	}

	switch method {
	case "CreateBuilder":
		h := &appHandle{model: &ir.AppModel{EntryPoints: map[string]ir.EntryPoint{}}}
		h.model.BuildLocation = buildLocationKey(call.Span)
		return h

	case "WithName", "WithVersion", "WithDescription":
		app, route := resolveTarget(recvVal)
		s := stringArg(call.Args, 0)
		switch {
		case route != nil && method == "WithDescription":
			route.def.Description = s
		case app != nil && method == "WithName":
			app.model.AppName = s
		case app != nil && method == "WithVersion":
			app.model.AppVersion = s
		case app != nil && method == "WithDescription":
			app.model.AppDescription = s
		}
		return recvVal

	case "AddConfiguration":
		if app, _ := resolveTarget(recvVal); app != nil {
			app.model.HasConfiguration = true
		}
		return recvVal

	case "ConfigureServices":
		if app, _ := resolveTarget(recvVal); app != nil {
			in.walkServiceConfig(app, call)
		}
		return recvVal

	case "UseMicrosoftDependencyInjection":
		if app, _ := resolveTarget(recvVal); app != nil {
			app.model.HasRuntimeDI = true
		}
		return recvVal

	case "AddBehavior":
		if app, _ := resolveTarget(recvVal); app != nil {
			behaviorType := ""
			if len(call.TypeArgs) > 0 {
				behaviorType = call.TypeArgs[0]
			}
			app.model.Behaviors = append(app.model.Behaviors, ir.Behavior{
				BehaviorType: behaviorType,
				Order:        len(app.model.Behaviors),
			})
		}
		return recvVal

	case "Implements":
		if app, _ := resolveTarget(recvVal); app != nil && len(app.model.Behaviors) > 0 && len(call.TypeArgs) > 0 {
			app.model.Behaviors[len(app.model.Behaviors)-1].FilterInterface = call.TypeArgs[0]
		}
		return recvVal

	case "DiscoverEndpoints":
		// Attributed endpoints are gathered by package attrs. This call
		// has no effect on the model: nuruc.Driver adds attrs.Extract's
		// output to every app whether or not the chain contains it.
		return recvVal

	case "Map":
		app, _ := resolveTarget(recvVal)
		if app == nil {
			return nil
		}
		pat := ""
		if len(call.Args) > 0 {
			pat = stringArg(call.Args, 0)
		}
		rh := &routeHandle{
			app: app,
			def: ir.RouteDefinition{
				Pattern: pat,
				Order:   app.routeOrder,
				Span:    spanOf(call.Span),
			},
		}
		tree, err := pattern.Parse(pat, rh.def.Span)
		var perr *pattern.ParseError
		if errors.As(err, &perr) {
			in.reporter.ReportAll(perr.Diagnostics)
		}
		rh.def.Recompute(ir.FromSyntaxTree(tree))
		app.routeOrder++
		app.currentRoute = rh
		return rh

	case "WithHandler":
		if _, route := resolveTarget(recvVal); route != nil && len(call.Args) > 0 {
			route.def.Handler = handler.Extract(call.Args[0], nil, in.reporter)
		}
		return recvVal

	case "AsQuery":
		if _, route := resolveTarget(recvVal); route != nil {
			route.def.MessageType = ir.MessageQuery
		}
		return recvVal

	case "AsCommand":
		if _, route := resolveTarget(recvVal); route != nil {
			route.def.MessageType = ir.MessageCommand
		}
		return recvVal

	case "AsIdempotentCommand":
		if _, route := resolveTarget(recvVal); route != nil {
			route.def.MessageType = ir.MessageIdempotentCommand
		}
		return recvVal

	case "Done":
		if app, route := resolveTarget(recvVal); app != nil && route != nil {
			app.model.Routes = append(app.model.Routes, route.def)
			app.currentRoute = nil
			return app
		}
		return recvVal

	case "Build":
		if app, _ := resolveTarget(recvVal); app != nil {
			app.closed = true
			return app
		}
		return recvVal

	case "RunAsync", "RunReplAsync":
		if app, _ := resolveTarget(recvVal); app != nil {
			app.model.EntryPoints[method] = ir.EntryPoint{MethodName: method}
			if method == "RunReplAsync" {
				app.model.HasRepl = true
			}
		}
		return recvVal

	default:
		if recvVal != nil {
			in.reporter.Report(diag.Warnf(diag.CodeUnknownBuilderMethod, spanOf(call.Span),
				"unrecognized builder method %q; continuing with best-effort interpretation", method))
		}
		return recvVal
	}
}

// resolveTarget splits a chain value into its appHandle and, if the
// chain is currently inside a Map()...Done() route draft, its
// routeHandle.
func resolveTarget(v any) (*appHandle, *routeHandle) {
	switch t := v.(type) {
	case *appHandle:
		return t, t.currentRoute
	case *routeHandle:
		return t.app, t
	default:
		return nil, nil
	}
}

func methodAndReceiver(fn hostast.Expr) (method string, recv hostast.Expr) {
	switch f := fn.(type) {
	case hostast.MemberAccess:
		return f.Name, f.X
	case hostast.Ident:
		return f.Name, nil
	default:
		return "", nil
	}
}

func stringArg(args []hostast.Expr, i int) string {
	if i >= len(args) {
		return ""
	}
	if lit, ok := args[i].(hostast.Literal); ok {
		return unquote(lit.Value)
	}
	return ""
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func buildLocationKey(s hostast.Span) string {
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}
