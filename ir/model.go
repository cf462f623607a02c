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

// Lifetime mirrors the Microsoft.Extensions.DependencyInjection service
// lifetimes referenced by ConfigureServices calls in the DSL.
type Lifetime int

const (
	LifetimeSingleton Lifetime = iota
	LifetimeScoped
	LifetimeTransient
)

func (l Lifetime) String() string {
	switch l {
	case LifetimeScoped:
		return "Scoped"
	case LifetimeTransient:
		return "Transient"
	default:
		return "Singleton"
	}
}

// ServiceRegistration is one DI registration discovered by walking
// ConfigureServices (spec §4.3, §4.6 NURU_D001/NURU050/NURU051).
type ServiceRegistration struct {
	ServiceType                string
	ImplementationType         string
	Lifetime                   Lifetime
	ConstructorDependencyTypes []string
	IsHTTPClient               bool
	HTTPClientConfig           string // opaque source span of the configuration lambda, if any
	IsLogger                   bool
}

// Behavior is one ordered pipeline behavior registered via
// AddBehavior<T>().Implements<TFilter>() (spec §3.1 PipelineDefinition).
type Behavior struct {
	BehaviorType    string
	FilterInterface string // empty if unrestricted
	Order           int
}

// PipelineDefinition is the ordered list of cross-cutting behaviors
// that wrap every route's dispatch, each optionally restricted to
// messages implementing FilterInterface.
type PipelineDefinition struct {
	Behaviors []Behavior
}

// EntryPoint records one RunAsync / RunReplAsync call site on a built
// app; AppModel.EntryPoints maps method name to its call site. The
// number of entry points per app is not checked.
type EntryPoint struct {
	MethodName string // "RunAsync" or "RunReplAsync"
}

// AppModel is the complete, combined model for one Build() call site
// (spec §3.1 AppModel / §3.2 "one per Build() site").
type AppModel struct {
	BuildLocation    string
	EntryPoints      map[string]EntryPoint
	Routes           []RouteDefinition
	AttributedRoutes []RouteDefinition
	Services         []ServiceRegistration
	HTTPClients      []ServiceRegistration
	Loggers          []ServiceRegistration
	Behaviors        []Behavior

	HasConfiguration bool
	HasRepl          bool
	HasRuntimeDI     bool

	AppName        string
	AppVersion     string
	AppDescription string

	DisabledBuiltinFlags []string
	UserUsings           []string
}

// AllRoutes returns Routes and AttributedRoutes concatenated in
// declaration order, the view the combiner and emitter operate over.
func (m *AppModel) AllRoutes() []RouteDefinition {
	all := make([]RouteDefinition, 0, len(m.Routes)+len(m.AttributedRoutes))
	all = append(all, m.Routes...)
	all = append(all, m.AttributedRoutes...)
	return all
}
