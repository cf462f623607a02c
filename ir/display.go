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

package ir

import "strings"

// Display renders a Segment in the same canonical form pattern.Node
// uses (spec §6.2), so routes synthesized from attributed endpoint
// classes (package attrs) render identically to fluent Map() routes.
func (s Segment) Display() string {
	switch s.Kind {
	case SegmentEndOfOptions:
		return "--"
	case SegmentLiteral:
		return s.Value
	case SegmentParameter:
		var b strings.Builder
		b.WriteByte('{')
		if s.IsCatchAll {
			b.WriteByte('*')
		}
		b.WriteString(s.Name)
		if s.TypeConstraint != "" {
			b.WriteByte(':')
			b.WriteString(s.TypeConstraint)
		}
		if s.IsOptional {
			b.WriteByte('?')
		}
		b.WriteByte('}')
		return b.String()
	case SegmentOption:
		var b strings.Builder
		b.WriteString("--")
		b.WriteString(s.LongForm)
		if s.ShortForm != "" {
			b.WriteByte(',')
			b.WriteByte('-')
			b.WriteString(s.ShortForm)
		}
		if s.IsOptional {
			b.WriteByte('?')
		}
		if s.ExpectsValue {
			b.WriteByte(' ')
			b.WriteByte('{')
			b.WriteString(s.ParameterName)
			if s.TypeConstraint != "" {
				b.WriteByte(':')
				b.WriteString(s.TypeConstraint)
			}
			if s.ParameterIsOptional {
				b.WriteByte('?')
			}
			b.WriteByte('}')
		}
		return b.String()
	default:
		return ""
	}
}

// DisplaySegments joins a full Segment slice into its canonical
// pattern string.
func DisplaySegments(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		parts = append(parts, s.Display())
	}
	return strings.Join(parts, " ")
}
