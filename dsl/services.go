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

package dsl

import (
	"strings"

	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/ir"
)

// walkServiceConfig interprets the lambda body of ConfigureServices(lambda),
// recognizing AddSingleton/AddScoped/AddTransient, AddHttpClient, and
// AddLogging calls on the "services" parameter (spec §4.3). Any other
// call on that receiver is reported as an unrecognized registration
// (NURU050, a warning).
func (in *interp) walkServiceConfig(app *appHandle, call hostast.Call) {
	lambda, ok := lastLambdaArg(call.Args)
	if !ok {
		return
	}

	servicesParam := ""
	if len(lambda.Parameters) > 0 {
		servicesParam = lambda.Parameters[0].Name
	}

	var stmts []hostast.Stmt
	if lambda.Kind == hostast.LambdaBlock {
		stmts = lambda.Body.Stmts
	} else if lambda.Expr != nil {
		stmts = []hostast.Stmt{hostast.ExprStmt{X: lambda.Expr}}
	}

	for _, stmt := range stmts {
		exprStmt, ok := stmt.(hostast.ExprStmt)
		if !ok {
			continue
		}
		in.walkServiceCall(app, servicesParam, exprStmt.X)
	}
}

func (in *interp) walkServiceCall(app *appHandle, servicesParam string, expr hostast.Expr) {
	call, ok := expr.(hostast.Call)
	if !ok {
		return
	}
	method, recv := methodAndReceiver(call.Fn)
	recvIdent, ok := recv.(hostast.Ident)
	if !ok || recvIdent.Name != servicesParam {
		return
	}

	switch {
	case method == "AddSingleton" || method == "AddScoped" || method == "AddTransient":
		reg := ir.ServiceRegistration{Lifetime: lifetimeOf(method)}
		if len(call.TypeArgs) > 0 {
			reg.ServiceType = call.TypeArgs[0]
		}
		if len(call.TypeArgs) > 1 {
			reg.ImplementationType = call.TypeArgs[1]
		} else {
			reg.ImplementationType = reg.ServiceType
		}
		app.model.Services = append(app.model.Services, reg)

	case method == "AddHttpClient":
		reg := ir.ServiceRegistration{IsHTTPClient: true}
		if len(call.TypeArgs) > 0 {
			reg.ServiceType = call.TypeArgs[0]
		}
		if len(call.TypeArgs) > 1 {
			reg.ImplementationType = call.TypeArgs[1]
		}
		if len(call.Args) > 0 {
			reg.HTTPClientConfig = spanOf(call.Args[0].Position()).String()
		}
		app.model.HTTPClients = append(app.model.HTTPClients, reg)

	case method == "AddLogging":
		app.model.Loggers = append(app.model.Loggers, ir.ServiceRegistration{IsLogger: true})

	case method == "AddTypeConverter":
		// Recognized and accepted without a diagnostic, but nothing is
		// recorded: ParameterBinding.HasConverter is not set from it.

	default:
		in.reporter.Report(diag.Warnf(diag.CodeUnknownServiceBuilder, spanOf(call.Span),
			"unrecognized service registration call %q; service graph may be incomplete", method))
	}
}

func lifetimeOf(method string) ir.Lifetime {
	switch {
	case strings.HasPrefix(method, "AddScoped"):
		return ir.LifetimeScoped
	case strings.HasPrefix(method, "AddTransient"):
		return ir.LifetimeTransient
	default:
		return ir.LifetimeSingleton
	}
}

func lastLambdaArg(args []hostast.Expr) (hostast.Lambda, bool) {
	if len(args) == 0 {
		return hostast.Lambda{}, false
	}
	l, ok := args[len(args)-1].(hostast.Lambda)
	return l, ok
}
