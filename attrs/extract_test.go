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

package attrs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewarp-nuru/nuruc/attrs"
	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/ir"
)

func attr(name string, args ...string) hostast.Attribute {
	lits := make([]hostast.Literal, len(args))
	for i, a := range args {
		lits[i] = hostast.Literal{Kind: hostast.LiteralString, Value: `"` + a + `"`}
	}
	return hostast.Attribute{Name: name, Args: lits}
}

func TestExtract_GroupPrefixChainRootToLeaf(t *testing.T) {
	group := hostast.TypeDecl{
		Name:       "UserGroup",
		Attributes: []hostast.Attribute{attr("Route", "user")},
	}
	leaf := hostast.TypeDecl{
		Name:       "CreateUserCommand",
		Attributes: []hostast.Attribute{attr("Route", "create")},
		BaseTypes:  []string{"UserGroup", "ICommand<Unit>"},
		Properties: []hostast.PropertyDecl{
			{Name: "Name", TypeName: "string", Attributes: []hostast.Attribute{attr("Parameter")}},
		},
	}

	reporter := diag.NewReporter(false)
	routes := attrs.Extract([]hostast.TypeDecl{group, leaf}, "", reporter)

	require.Len(t, routes, 1)
	assert.Equal(t, "user create {Name}", routes[0].Pattern)
	assert.Equal(t, ir.MessageCommand, routes[0].MessageType)
	assert.Equal(t, []string{"user"}, routes[0].GroupPrefixChain)
}

func TestExtract_SubsetPublishingStripsRootPrefix(t *testing.T) {
	root := hostast.TypeDecl{
		Name:       "AdminGroup",
		Attributes: []hostast.Attribute{attr("Route", "admin")},
	}
	leaf := hostast.TypeDecl{
		Name:       "PurgeCommand",
		Attributes: []hostast.Attribute{attr("Route", "purge")},
		BaseTypes:  []string{"AdminGroup", "ICommand<Unit>"},
	}

	reporter := diag.NewReporter(false)
	routes := attrs.Extract([]hostast.TypeDecl{root, leaf}, "AdminGroup", reporter)

	require.Len(t, routes, 1)
	assert.Equal(t, "purge", routes[0].Pattern)
}

func TestExtract_OptionFromBoolPropertyIsFlag(t *testing.T) {
	leaf := hostast.TypeDecl{
		Name:       "DeployCommand",
		Attributes: []hostast.Attribute{attr("Route", "deploy")},
		BaseTypes:  []string{"ICommand<Unit>"},
		Properties: []hostast.PropertyDecl{
			{Name: "Force", TypeName: "bool", Attributes: []hostast.Attribute{attr("Option", "force", "f")}},
		},
	}

	reporter := diag.NewReporter(false)
	routes := attrs.Extract([]hostast.TypeDecl{leaf}, "", reporter)

	require.Len(t, routes, 1)
	require.Len(t, routes[0].Segments, 2)
	opt := routes[0].Segments[1]
	assert.Equal(t, ir.SegmentOption, opt.Kind)
	assert.Equal(t, "force", opt.LongForm)
	assert.Equal(t, "f", opt.ShortForm)
	assert.False(t, opt.ExpectsValue)
}

func TestExtract_RouteAliasEmitsSecondRoute(t *testing.T) {
	leaf := hostast.TypeDecl{
		Name: "ListUsersQuery",
		Attributes: []hostast.Attribute{
			attr("Route", "users list"),
			attr("NuruRouteAlias", "users ls"),
		},
		BaseTypes: []string{"IQuery<Unit>"},
	}

	reporter := diag.NewReporter(false)
	routes := attrs.Extract([]hostast.TypeDecl{leaf}, "", reporter)

	require.Len(t, routes, 2)
	assert.Equal(t, "users list", routes[0].Pattern)
	assert.Equal(t, "users ls", routes[1].Pattern)
	assert.Equal(t, ir.MessageQuery, routes[1].MessageType)
}
