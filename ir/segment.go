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

// Package ir holds the intermediate-representation data model (spec §3):
// SegmentDefinition variants, RouteDefinition, HandlerDefinition,
// ParameterBinding, ServiceRegistration, and the combined AppModel /
// GeneratorModel. Segment contribution scores are grounded on
// router/compiler.CompileRoute's static/parameter/wildcard split and
// router/compiler.sortRoutesBySpecificity's descending-specificity
// ordering, generalized from an HTTP path to the full CLI pattern
// grammar (options, catch-alls, the "--" separator).
package ir

// SegmentKind discriminates the SegmentDefinition tagged-sum variants.
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentParameter
	SegmentOption
	SegmentEndOfOptions
)

// Specificity contribution constants, spec §3.1.
const (
	contribLiteral = 1000

	contribParamTyped         = 600
	contribParamTypedOptional = 550
	contribParamUntyped       = 500
	// contribParamUntypedOptional has no value fixed by spec §3.1, which
	// only names typed/typed-optional/untyped/catch-all. We extrapolate
	// the same -50 step optional parameters take when typed, recorded as
	// an Open Question resolution in DESIGN.md.
	contribParamUntypedOptional = 450
	contribParamCatchAll        = 100

	contribOptionRequiredFlag    = 300
	contribOptionRequiredValue   = 200
	contribOptionOptionalValue   = 150
	contribOptionOptionalFlag    = 50
	contribOptionTypedValueBoost = 10

	contribEndOfOptions = 0
)

// Segment is a single element of a RouteDefinition's Segments list: a
// tagged sum over Literal, Parameter, Option, and EndOfOptionsSeparator,
// each variant carrying only its own data (spec §9 "Tagged variants for
// segments").
type Segment struct {
	Kind     SegmentKind
	Position int

	// Literal
	Value string

	// Parameter
	Name           string
	TypeConstraint string
	ClrTypeName    string
	IsOptional     bool
	IsCatchAll     bool
	IsEnumType     bool
	Description    string

	// Option
	LongForm      string
	ShortForm     string
	ParameterName string
	ExpectsValue  bool
	IsRepeated    bool
	// ParameterIsOptional is the option value slot's own optionality
	// ("--tag {value?}"), distinct from IsOptional (whether the option
	// itself may be omitted).
	ParameterIsOptional bool
}

// SpecificityContribution computes the segment's contribution to its
// route's total specificity score, per the constants in spec §3.1.
func (s Segment) SpecificityContribution() int {
	switch s.Kind {
	case SegmentLiteral:
		return contribLiteral

	case SegmentParameter:
		if s.IsCatchAll {
			return contribParamCatchAll
		}
		typed := s.TypeConstraint != ""
		switch {
		case typed && !s.IsOptional:
			return contribParamTyped
		case typed && s.IsOptional:
			return contribParamTypedOptional
		case !typed && !s.IsOptional:
			return contribParamUntyped
		default:
			return contribParamUntypedOptional
		}

	case SegmentOption:
		var base int
		switch {
		case !s.IsOptional && !s.ExpectsValue:
			base = contribOptionRequiredFlag
		case !s.IsOptional && s.ExpectsValue:
			base = contribOptionRequiredValue
		case s.IsOptional && s.ExpectsValue:
			base = contribOptionOptionalValue
		default:
			base = contribOptionOptionalFlag
		}
		if s.ExpectsValue && s.TypeConstraint != "" {
			base += contribOptionTypedValueBoost
		}
		return base

	case SegmentEndOfOptions:
		return contribEndOfOptions

	default:
		return 0
	}
}
