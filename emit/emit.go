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

// Package emit renders a combiner.GeneratorModel into the single
// generated translation unit described in spec §4.7: a file-scoped
// dispatcher class with static service fields, one interceptor per
// recorded entry point, a unified per-route match block (no separate
// "simple" vs "complex" code paths), and the built-in --help/--version
// /--capabilities handlers. Grounded on router/compiler.CompileRoute's
// segment-by-segment matching structure and on the pack's code
// generation conventions (a fixed generated-file banner, deterministic
// ordering, no reflection in the hot path).
package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/timewarp-nuru/nuruc/combiner"
	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/ir"
)

// Options configures emission.
type Options struct {
	Namespace  string // default "Generated"
	ClassName  string // default "NuruDispatcher"
	UserUsings []string
}

const defaultNamespace = "Generated"
const defaultClassName = "NuruDispatcher"

// Generate renders gm into one generated source file's text. reporter
// may be nil; when non-nil it receives NURU_E001 if a user route
// shadows a built-in flag route (spec §4.7.3).
func Generate(gm *combiner.GeneratorModel, opts Options, reporter ...*diag.Reporter) string {
	if opts.Namespace == "" {
		opts.Namespace = defaultNamespace
	}
	if opts.ClassName == "" {
		opts.ClassName = defaultClassName
	}
	var r *diag.Reporter
	if len(reporter) > 0 {
		r = reporter[0]
	}

	var b strings.Builder
	writeBanner(&b)
	writeUsings(&b, opts.UserUsings)

	fmt.Fprintf(&b, "\nnamespace %s\n{\n", opts.Namespace)
	fmt.Fprintf(&b, "    file sealed class %s\n    {\n", opts.ClassName)

	writeStaticFields(&b, gm.App)
	writeEntryPoints(&b, gm, opts)
	writeBuiltinHandlers(&b, gm)
	writeRouteMatchers(&b, gm, r)
	if gm.App.HasRepl {
		writeReplCompletions(&b, gm)
	}

	b.WriteString("    }\n")
	b.WriteString("}\n")

	return b.String()
}

func writeBanner(b *strings.Builder) {
	b.WriteString("// <auto-generated/>\n")
	b.WriteString("// This file was generated by nuruc. Do not edit by hand.\n")
	b.WriteString("#nullable enable\n")
}

var defaultUsings = []string{
	"System",
	"System.Collections.Generic",
	"System.Globalization",
	"System.Linq",
	"System.Threading.Tasks",
}

func writeUsings(b *strings.Builder, userUsings []string) {
	seen := make(map[string]bool, len(defaultUsings))
	for _, u := range defaultUsings {
		fmt.Fprintf(b, "using %s;\n", u)
		seen[u] = true
	}
	for _, u := range userUsings {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		if strings.HasPrefix(u, "static ") {
			fmt.Fprintf(b, "using static global::%s;\n", strings.TrimPrefix(u, "static "))
		} else {
			fmt.Fprintf(b, "using global::%s;\n", u)
		}
	}
}

func writeStaticFields(b *strings.Builder, app *ir.AppModel) {
	for _, s := range app.Services {
		if s.Lifetime != ir.LifetimeSingleton {
			continue
		}
		fmt.Fprintf(b, "        private static readonly System.Lazy<%s> _svc_%s = new(() => new %s());\n",
			s.ServiceType, safeIdent(s.ServiceType), s.ImplementationType)
	}
	for _, c := range app.HTTPClients {
		fmt.Fprintf(b, "        private static readonly System.Net.Http.HttpClient _http_%s = new();\n", safeIdent(c.ServiceType))
	}
	if len(app.Loggers) > 0 {
		b.WriteString("        private static readonly Microsoft.Extensions.Logging.ILoggerFactory _loggerFactory = Microsoft.Extensions.Logging.LoggerFactory.Create(b => b.AddConsole());\n")
	}
	b.WriteString("\n")
}

func writeEntryPoints(b *strings.Builder, gm *combiner.GeneratorModel, opts Options) {
	i := 0
	methods := make([]string, 0, len(gm.App.EntryPoints))
	for m := range gm.App.EntryPoints {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	for _, method := range methods {
		fmt.Fprintf(b, "        public static System.Threading.Tasks.Task<int> %s_Intercepted_%d(string[] args)\n", method, i)
		b.WriteString("        {\n")
		b.WriteString("            var routeArgs = StripConfigurationOverrides(args);\n")
		fmt.Fprintf(b, "            return Dispatch_%d(routeArgs, args);\n", i)
		b.WriteString("        }\n\n")
		fmt.Fprintf(b, "        public static System.Threading.Tasks.Task<int> %s(string[] args)\n", method)
		b.WriteString("        {\n")
		b.WriteString("            throw new System.InvalidOperationException(\"" + method + " was not intercepted\");\n")
		b.WriteString("        }\n\n")
		i++
	}
}

func safeIdent(s string) string {
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "<", "_")
	s = strings.ReplaceAll(s, ">", "_")
	s = strings.ReplaceAll(s, ",", "_")
	return s
}
