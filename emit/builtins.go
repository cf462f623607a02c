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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/timewarp-nuru/nuruc/combiner"
	"github.com/timewarp-nuru/nuruc/ir"
)

// writeBuiltinHandlers emits PrintHelp_0/PrintVersion_0/PrintCapabilities_0,
// one InvokeRoute_<i> per route, and the fixed runtime support methods
// (argument normalization, option lookup) that every Dispatch_<i>
// method calls into (spec §4.7.2, §4.7.5, §4.7.6).
func writeBuiltinHandlers(b *strings.Builder, gm *combiner.GeneratorModel) {
	writeHelp(b, gm)
	writeVersion(b, gm)
	writeCapabilities(b, gm)
	writeInvokeStubs(b, gm)
	writeRuntimeSupport(b)
}

func writeHelp(b *strings.Builder, gm *combiner.GeneratorModel) {
	b.WriteString("        private static void PrintHelp_0(ITerminal terminal)\n        {\n")
	fmt.Fprintf(b, "            terminal.WriteLine(%q);\n", fmt.Sprintf("%s %s", gm.App.AppName, gm.App.AppVersion))
	if gm.App.AppDescription != "" {
		fmt.Fprintf(b, "            terminal.WriteLine(%q);\n", gm.App.AppDescription)
	}
	b.WriteString("            terminal.WriteLine(\"USAGE:\");\n")
	b.WriteString("            terminal.WriteLine(\"OPTIONS:\");\n")
	b.WriteString("            terminal.WriteLine(\"  --help,-h        Show this help message\");\n")
	b.WriteString("            terminal.WriteLine(\"  --version        Show version information\");\n")
	b.WriteString("            terminal.WriteLine(\"  --capabilities   Show a machine-readable capabilities document\");\n")
	b.WriteString("            terminal.WriteLine(\"\");\n            terminal.WriteLine(\"COMMANDS:\");\n")
	for _, r := range gm.Routes {
		if r.IsHelpRoute {
			continue
		}
		fmt.Fprintf(b, "            terminal.WriteLine(%q);\n", "  "+r.Pattern+"  "+r.Description)
	}
	b.WriteString("        }\n\n")
}

func writeVersion(b *strings.Builder, gm *combiner.GeneratorModel) {
	b.WriteString("        private static void PrintVersion_0(ITerminal terminal)\n        {\n")
	fmt.Fprintf(b, "            terminal.WriteLine(%q);\n", fmt.Sprintf("%s %s", gm.App.AppName, gm.App.AppVersion))
	b.WriteString("        }\n\n")
}

// capabilitiesDoc mirrors the JSON shape in spec §4.7.5.
type capabilitiesDoc struct {
	Name        string           `json:"name"`
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Commands    []capabilityItem `json:"commands"`
}

type capabilityItem struct {
	Pattern     string         `json:"pattern"`
	Description string         `json:"description"`
	MessageType *string        `json:"messageType"`
	Parameters  []capabilityIO `json:"parameters"`
	Options     []capabilityIO `json:"options"`
}

type capabilityIO struct {
	Name        string  `json:"name"`
	Alias       *string `json:"alias,omitempty"`
	Type        string  `json:"type"`
	Required    bool    `json:"required"`
	Default     *string `json:"default,omitempty"`
	Description string  `json:"description,omitempty"`
}

func writeCapabilities(b *strings.Builder, gm *combiner.GeneratorModel) {
	doc := capabilitiesDoc{Name: gm.App.AppName, Version: gm.App.AppVersion, Description: gm.App.AppDescription}
	for _, r := range gm.Routes {
		if r.IsHelpRoute {
			continue
		}
		item := capabilityItem{Pattern: r.Pattern, Description: r.Description}
		if r.MessageType != ir.MessageUnspecified {
			mt := messageTypeJSON(r.MessageType)
			item.MessageType = &mt
		}
		for _, s := range r.Segments {
			switch s.Kind {
			case ir.SegmentParameter:
				item.Parameters = append(item.Parameters, capabilityIO{
					Name:     s.Name,
					Type:     clrName(s.TypeConstraint),
					Required: !s.IsOptional,
				})
			case ir.SegmentOption:
				var alias *string
				if s.ShortForm != "" {
					a := s.ShortForm
					alias = &a
				}
				item.Options = append(item.Options, capabilityIO{
					Name:     s.LongForm,
					Alias:    alias,
					Type:     clrName(s.TypeConstraint),
					Required: !s.IsOptional,
				})
			}
		}
		doc.Commands = append(doc.Commands, item)
	}

	payload, _ := json.Marshal(doc)

	b.WriteString("        private static void PrintCapabilities_0(ITerminal terminal)\n        {\n")
	fmt.Fprintf(b, "            terminal.WriteLine(%q);\n", string(payload))
	b.WriteString("        }\n\n")
}

func messageTypeJSON(m ir.MessageKind) string {
	switch m {
	case ir.MessageQuery:
		return "query"
	case ir.MessageCommand:
		return "command"
	case ir.MessageIdempotentCommand:
		return "idempotent-command"
	default:
		return ""
	}
}

// writeRuntimeSupport emits the fixed helper methods every Dispatch_<i>
// calls: configuration-override stripping (spec §4.7.2) and the
// bitset-based option lookups used by writeOptionParse.
func writeRuntimeSupport(b *strings.Builder) {
	b.WriteString(`        private static string[] StripConfigurationOverrides(string[] args)
        {
            var result = new System.Collections.Generic.List<string>(args.Length);
            foreach (var a in args)
            {
                if (IsConfigurationOverride(a)) continue;
                result.Add(a);
            }
            return result.ToArray();
        }

        private static bool IsConfigurationOverride(string arg)
        {
            if (arg.StartsWith("--") && arg.Contains('='))
            {
                var key = arg.Substring(2, arg.IndexOf('=') - 2);
                return key.Length > 0;
            }
            if (arg.Length > 1 && arg[0] == '/' && char.IsLetter(arg[1]) && arg.Contains('='))
            {
                return true;
            }
            return false;
        }

        private static string? FindOptionValue(string[] args, System.Collections.BitArray consumed, string longForm, string? shortForm)
        {
            for (var i = 0; i < args.Length; i++)
            {
                if (consumed[i]) continue;
                if (args[i] != longForm && (shortForm is null || args[i] != shortForm)) continue;
                consumed[i] = true;
                if (i + 1 >= args.Length) return null;
                consumed[i + 1] = true;
                return args[i + 1];
            }
            return null;
        }

        private static bool ConsumeFlag(string[] args, System.Collections.BitArray consumed, string longForm, string? shortForm)
        {
            for (var i = 0; i < args.Length; i++)
            {
                if (consumed[i]) continue;
                if (args[i] != longForm && (shortForm is null || args[i] != shortForm)) continue;
                consumed[i] = true;
                return true;
            }
            return false;
        }

`)
}
