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

import "github.com/timewarp-nuru/nuruc/diag"

// MessageKind classifies a route's CQRS message shape, set by the
// AsQuery / AsCommand / AsIdempotentCommand DSL calls or, for attributed
// endpoints, by an IQuery / ICommand / IIdempotent base type.
type MessageKind int

const (
	MessageUnspecified MessageKind = iota
	MessageQuery
	MessageCommand
	MessageIdempotentCommand
)

func (m MessageKind) String() string {
	switch m {
	case MessageQuery:
		return "Query"
	case MessageCommand:
		return "Command"
	case MessageIdempotentCommand:
		return "IdempotentCommand"
	default:
		return "Unspecified"
	}
}

// RouteDefinition is one compiled route: a fluent-builder Map() call or
// an attributed endpoint class, reduced to its pattern segments plus
// the metadata the emitter and combiner need.
type RouteDefinition struct {
	Pattern          string
	Segments         []Segment
	Handler          *HandlerDefinition
	MessageType      MessageKind
	Description      string
	Specificity      int
	Order            int
	GroupPrefixChain []string
	Aliases          []string
	IsHelpRoute      bool

	Span diag.Span
}

// RequiredSignature returns the subsequence of segments that MUST be
// present for a command line to match this route: literals and
// required (non-optional, non-catch-all) parameters/options. Two
// routes with an identical required signature and disjoint optional
// tails are a duplicate/overlap candidate (spec §4.6, NURU_R001/R002).
func (r *RouteDefinition) RequiredSignature() []Segment {
	var req []Segment
	for _, s := range r.Segments {
		switch s.Kind {
		case SegmentLiteral:
			req = append(req, s)
		case SegmentParameter:
			if !s.IsOptional && !s.IsCatchAll {
				req = append(req, s)
			}
		case SegmentOption:
			if !s.IsOptional {
				req = append(req, s)
			}
		}
	}
	return req
}

// Recompute sets Segments to segs and Specificity to their summed
// contributions. Pattern is left unchanged; callers that rewrite a
// route (alias expansion, group-prefix flattening) set it themselves.
func (r *RouteDefinition) Recompute(segs []Segment) {
	r.Segments = segs
	r.Specificity = Specificity(segs)
}
