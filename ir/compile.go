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

import "github.com/timewarp-nuru/nuruc/pattern"

// FromSyntaxTree lowers a parsed pattern.SyntaxTree into the Segment list
// carried by a RouteDefinition. This is the "Compiler (syntax -> IR
// segments)" pipeline stage of spec §2, grounded on
// router/compiler.CompileRoute's pass from a parsed path into compiled
// segment structs.
func FromSyntaxTree(t *pattern.SyntaxTree) []Segment {
	segs := make([]Segment, 0, len(t.Nodes))
	for i, n := range t.Nodes {
		segs = append(segs, fromNode(i, n))
	}
	return segs
}

func fromNode(pos int, n pattern.Node) Segment {
	switch n.Kind {
	case pattern.NodeLiteral:
		return Segment{Kind: SegmentLiteral, Position: pos, Value: n.Value}

	case pattern.NodeParameter:
		return Segment{
			Kind:           SegmentParameter,
			Position:       pos,
			Name:           n.Name,
			TypeConstraint: n.TypeConstraint,
			IsOptional:     n.IsOptional,
			IsCatchAll:     n.IsCatchAll,
			Description:    n.Description,
		}

	case pattern.NodeOption:
		return Segment{
			Kind:                SegmentOption,
			Position:            pos,
			LongForm:            n.LongForm,
			ShortForm:           n.ShortForm,
			ParameterName:       n.ValueName,
			TypeConstraint:      n.ValueType,
			ExpectsValue:        n.ExpectsValue,
			IsOptional:          n.IsOptional,
			ParameterIsOptional: n.ValueOptional,
		}

	case pattern.NodeSeparator:
		return Segment{Kind: SegmentEndOfOptions, Position: pos}

	default:
		return Segment{Kind: SegmentLiteral, Position: pos}
	}
}

// Specificity sums every segment's contribution, giving the route's
// total specificity score used to order routes for matching (spec
// §3.1, "descending specificity" per
// router/compiler.sortRoutesBySpecificity).
func Specificity(segs []Segment) int {
	total := 0
	for _, s := range segs {
		total += s.SpecificityContribution()
	}
	return total
}
