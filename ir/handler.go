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

import "github.com/timewarp-nuru/nuruc/hostast"

// HandlerKind discriminates how a handler was written in source.
type HandlerKind int

const (
	HandlerNone HandlerKind = iota
	HandlerLambda
	HandlerBlockLambda
	HandlerMethodReference
)

func (k HandlerKind) String() string {
	switch k {
	case HandlerLambda:
		return "Lambda"
	case HandlerBlockLambda:
		return "BlockLambda"
	case HandlerMethodReference:
		return "MethodReference"
	default:
		return "None"
	}
}

// HandlerDefinition is the extracted shape of a route's handler,
// independent of whether it came from WithHandler(...) or a sibling
// method on an attributed endpoint class (spec §4.5).
type HandlerDefinition struct {
	Kind              HandlerKind
	Parameters        []ParameterBinding
	ReturnType        string
	IsAsync           bool
	Body              hostast.Node
	HasClosureCapture bool

	// MethodReceiver and MethodName are set only when Kind ==
	// HandlerMethodReference, identifying the referenced method
	// ("Receiver.MethodName" or bare "MethodName" when Receiver is empty).
	MethodReceiver string
	MethodName     string
}

// BindingSource classifies where a handler parameter's value comes
// from at dispatch time.
type BindingSource int

const (
	SourcePositionalParameter BindingSource = iota
	SourceOption
	SourceCatchAll
	SourceService
	SourceTerminal
	SourceApp
	SourceConfiguration
	SourceLogger
)

func (s BindingSource) String() string {
	switch s {
	case SourcePositionalParameter:
		return "PositionalParameter"
	case SourceOption:
		return "Option"
	case SourceCatchAll:
		return "CatchAll"
	case SourceService:
		return "Service"
	case SourceTerminal:
		return "Terminal"
	case SourceApp:
		return "App"
	case SourceConfiguration:
		return "Configuration"
	case SourceLogger:
		return "Logger"
	default:
		return "Unknown"
	}
}

// ParameterBinding connects one handler parameter to the route segment
// or DI service that supplies its value.
type ParameterBinding struct {
	HandlerParameterName string
	ParameterTypeName    string
	Source               BindingSource
	RouteSegmentName     string
	IsNullable           bool
	IsEnumType           bool
	HasConverter         bool
}
