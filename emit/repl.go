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
	"github.com/timewarp-nuru/nuruc/ir"
)

// writeReplCompletions emits GetCompletions per spec §4.7.8: "--help"
// first, then each non-help route's first literal that starts with the
// current input (SPEC_FULL.md §D). Route options are not offered as
// completions.
func writeReplCompletions(b *strings.Builder, gm *combiner.GeneratorModel) {
	b.WriteString("        public static System.Collections.Generic.IReadOnlyList<string> GetCompletions(string currentInput, int argIndex, bool hasTrailingSpace)\n")
	b.WriteString("        {\n")
	b.WriteString("            var results = new System.Collections.Generic.List<string> { \"--help\" };\n")
	for _, r := range gm.Routes {
		if r.IsHelpRoute {
			continue
		}
		firstLiteral := firstLiteral(r.Segments)
		if firstLiteral == "" {
			continue
		}
		fmt.Fprintf(b, "            if (%q.StartsWith(currentInput, System.StringComparison.OrdinalIgnoreCase)) results.Add(%q);\n",
			firstLiteral, firstLiteral)
	}
	b.WriteString("            return results;\n")
	b.WriteString("        }\n\n")
}

func firstLiteral(segs []ir.Segment) string {
	if len(segs) == 0 || segs[0].Kind != ir.SegmentLiteral {
		return ""
	}
	return segs[0].Value
}
