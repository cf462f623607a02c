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

package emit

import (
	"fmt"
	"strings"

	"github.com/timewarp-nuru/nuruc/combiner"
	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/ir"
)

// writeRouteMatchers emits one Dispatch_<i> method per entry point,
// each containing a unified match block per route in strictly
// descending specificity order (spec §4.7.3), with a single built-in
// flags check ahead of every user route.
func writeRouteMatchers(b *strings.Builder, gm *combiner.GeneratorModel, r *diag.Reporter) {
	i := 0
	for range gm.App.EntryPoints {
		fmt.Fprintf(b, "        private static System.Threading.Tasks.Task<int> Dispatch_%d(string[] routeArgs, string[] rawArgs)\n", i)
		b.WriteString("        {\n")
		writeBuiltinFlagChecks(b, gm.Routes, r)
		for ri, route := range gm.Routes {
			writeRouteBlock(b, route, ri)
		}
		b.WriteString("            Terminal.WriteLine(\"Unrecognized command. Use --help for usage.\");\n")
		b.WriteString("            return System.Threading.Tasks.Task.FromResult(1);\n")
		b.WriteString("        }\n\n")
		i++
	}
}

type builtinFlagForm struct {
	forms  []string // literal tokens that match this built-in, e.g. "--help", "-h"
	cond   string    // the routeArgs[0] comparison expression
	invoke string    // the method call + return emitted when the built-in fires
}

var builtinFlagForms = []builtinFlagForm{
	{
		forms:  []string{"--help", "-h"},
		cond:   "(routeArgs[0] == \"--help\" || routeArgs[0] == \"-h\")",
		invoke: "PrintHelp_0(Terminal);\n                return System.Threading.Tasks.Task.FromResult(0);",
	},
	{
		forms:  []string{"--version"},
		cond:   "routeArgs[0] == \"--version\"",
		invoke: "PrintVersion_0(Terminal);\n                return System.Threading.Tasks.Task.FromResult(0);",
	},
	{
		forms:  []string{"--capabilities"},
		cond:   "routeArgs[0] == \"--capabilities\"",
		invoke: "PrintCapabilities_0(Terminal);\n                return System.Threading.Tasks.Task.FromResult(0);",
	},
}

// writeBuiltinFlagChecks emits the three built-in flag checks ahead of
// every user route, except when a user has mapped a route whose sole
// required literal is the same token: per spec §4.7.3 the user route
// wins in that case, and the built-in check is skipped here (the user
// route's own match block, emitted later by writeRouteBlock, handles
// it instead). The collision is reported as a warning when r is non-nil.
func writeBuiltinFlagChecks(b *strings.Builder, routes []ir.RouteDefinition, r *diag.Reporter) {
	for _, form := range builtinFlagForms {
		if shadow, ok := findBuiltinShadow(routes, form.forms); ok {
			if r != nil {
				r.Report(diag.Warnf(diag.CodeBuiltinRouteShadowed, shadow.Span,
					"route %q has the same pattern as the built-in %q; the user route wins and the built-in is not reachable here",
					shadow.Pattern, form.forms[0]))
			}
			continue
		}
		fmt.Fprintf(b, "            if (routeArgs.Length == 1 && %s)\n", form.cond)
		fmt.Fprintf(b, "            {\n                %s\n            }\n", form.invoke)
	}
}

// findBuiltinShadow reports whether any route's required signature is
// exactly one literal matching one of forms.
func findBuiltinShadow(routes []ir.RouteDefinition, forms []string) (ir.RouteDefinition, bool) {
	for _, route := range routes {
		req := route.RequiredSignature()
		if len(req) != 1 || req[0].Kind != ir.SegmentLiteral {
			continue
		}
		for _, f := range forms {
			if req[0].Value == f {
				return route, true
			}
		}
	}
	return ir.RouteDefinition{}, false
}

// writeRouteBlock emits one unified match block for route, following
// the layout in spec §4.7.3: literal prefix check, positional
// extraction with TryParse-style conversions, option parsing via an
// index bitset, end-of-options handling, catch-all tail consumption, a
// per-route --help check, the bound handler invocation, and a trailing
// route_skip_<i> label.
func writeRouteBlock(b *strings.Builder, route ir.RouteDefinition, idx int) {
	literals, params, options, hasSeparator, catchAll := classify(route.Segments)
	minPositional := len(literals) + requiredPositionalCount(params)

	fmt.Fprintf(b, "            // route %d: %s\n", idx, route.Pattern)
	fmt.Fprintf(b, "            if (routeArgs.Length >= %d)\n            {\n", minPositional)
	b.WriteString("                var __ok = true;\n")
	b.WriteString("                var __consumed = new System.Collections.BitArray(routeArgs.Length);\n")

	pos := 0
	for _, lit := range literals {
		fmt.Fprintf(b, "                if (!(routeArgs.Length > %d && routeArgs[%d] == %q)) goto route_skip_%d;\n", pos, pos, lit.Value, idx)
		fmt.Fprintf(b, "                __consumed[%d] = true;\n", pos)
		pos++
	}

	for _, p := range params {
		if p.IsCatchAll {
			continue
		}
		writeParamConversion(b, p, pos, idx)
		pos++
	}

	if hasSeparator {
		fmt.Fprintf(b, "                if (!(routeArgs.Length > %d && routeArgs[%d] == \"--\")) goto route_skip_%d;\n", pos, pos, idx)
		fmt.Fprintf(b, "                __consumed[%d] = true;\n", pos)
		pos++
	}

	for _, opt := range options {
		writeOptionParse(b, opt, idx)
	}

	if catchAll != nil {
		fmt.Fprintf(b, "                var %s = routeArgs.Skip(%d).Where((_, __i) => !__consumed[__i + %d]).ToArray();\n",
			safeIdent(catchAll.Name), pos, pos)
	}

	writePerRouteHelp(b, route)

	b.WriteString("                if (__ok)\n                {\n")
	fmt.Fprintf(b, "                    return InvokeRoute_%d(%s);\n", idx, strings.Join(invokeCallArgs(route), ", "))
	b.WriteString("                }\n")
	b.WriteString("            }\n")
	fmt.Fprintf(b, "            route_skip_%d: ;\n", idx)
}

// writePerRouteHelp emits the per-route "command --help" check (spec
// §4.7.3, §4.7.5): if the trailing, still-unconsumed token is --help
// or -h, print a route-specific block and return before the handler
// would otherwise be invoked.
func writePerRouteHelp(b *strings.Builder, route ir.RouteDefinition) {
	b.WriteString("                if (routeArgs.Length > 0 && !__consumed[routeArgs.Length - 1] && (routeArgs[routeArgs.Length - 1] == \"--help\" || routeArgs[routeArgs.Length - 1] == \"-h\"))\n")
	b.WriteString("                {\n")
	fmt.Fprintf(b, "                    Terminal.WriteLine(%q);\n", route.Pattern+"  "+route.Description)
	for _, s := range route.Segments {
		switch s.Kind {
		case ir.SegmentParameter:
			fmt.Fprintf(b, "                    Terminal.WriteLine(%q);\n", "  "+s.Name+"  "+s.Description)
		case ir.SegmentOption:
			form := "--" + s.LongForm
			if s.ShortForm != "" {
				form += ", -" + s.ShortForm
			}
			fmt.Fprintf(b, "                    Terminal.WriteLine(%q);\n", "  "+form)
		}
	}
	b.WriteString("                    return System.Threading.Tasks.Task.FromResult(0);\n")
	b.WriteString("                }\n")
}

func writeParamConversion(b *strings.Builder, p ir.Segment, pos, idx int) {
	varName := safeIdent(p.Name)
	src := fmt.Sprintf("routeArgs[%d]", pos)
	canonical := p.TypeConstraint

	if canonical == "" || canonical == "string" {
		fmt.Fprintf(b, "                var %s = %s;\n", varName, src)
	} else {
		expr := conversionExpr(canonical, src, varName)
		fmt.Fprintf(b, "                if (!(%s)) goto route_skip_%d;\n", expr, idx)
	}
	fmt.Fprintf(b, "                __consumed[%d] = true;\n", pos)
}

func writeOptionParse(b *strings.Builder, opt ir.Segment, idx int) {
	varName := safeIdent(opt.ParameterName)
	if opt.ExpectsValue {
		fmt.Fprintf(b, "                var %s = FindOptionValue(routeArgs, __consumed, \"--%s\"%s);\n",
			varName, opt.LongForm, shortFormArg(opt))
		if !opt.IsOptional {
			fmt.Fprintf(b, "                if (%s is null) goto route_skip_%d;\n", varName, idx)
		}
	} else {
		fmt.Fprintf(b, "                var %s = ConsumeFlag(routeArgs, __consumed, \"--%s\"%s);\n",
			varName, opt.LongForm, shortFormArg(opt))
		if !opt.IsOptional {
			fmt.Fprintf(b, "                if (!%s) goto route_skip_%d;\n", varName, idx)
		}
	}
}

func shortFormArg(opt ir.Segment) string {
	if opt.ShortForm == "" {
		return ", null"
	}
	return fmt.Sprintf(", \"-%s\"", opt.ShortForm)
}

func requiredPositionalCount(params []ir.Segment) int {
	n := 0
	for _, p := range params {
		if !p.IsOptional && !p.IsCatchAll {
			n++
		}
	}
	return n
}

func classify(segs []ir.Segment) (literals, params, options []ir.Segment, hasSeparator bool, catchAll *ir.Segment) {
	for i := range segs {
		s := segs[i]
		switch s.Kind {
		case ir.SegmentLiteral:
			literals = append(literals, s)
		case ir.SegmentParameter:
			if s.IsCatchAll {
				c := s
				catchAll = &c
			} else {
				params = append(params, s)
			}
		case ir.SegmentOption:
			options = append(options, s)
		case ir.SegmentEndOfOptions:
			hasSeparator = true
		}
	}
	return
}
