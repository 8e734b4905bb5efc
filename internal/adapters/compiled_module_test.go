package adapters

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

func TestCompiledModuleCapability(t *testing.T) {
	effective := &types.EffectiveStatement{
		Kind:     types.KindModule,
		Argument: "box",
		Children: []*types.EffectiveStatement{
			{Kind: types.KindNamespace, Argument: "urn:box"},
			{Kind: types.KindImport, Argument: "base", Children: []*types.EffectiveStatement{
				{Kind: types.KindRevisionDate, Argument: "2020-01-01"},
			}},
			{Kind: types.KindInclude, Argument: "box-types"},
		},
	}
	id := types.ModuleIdentity{Name: "box", Revision: "2021-02-03"}
	compiled := NewCompiledModule(id, effective)

	require.Equal(t, id, compiled.Identity())
	require.Equal(t, "urn:box", compiled.Namespace())

	expected := []types.ImportDescriptor{
		{Module: "base", Revision: "2020-01-01"},
		{Module: "box-types"},
	}
	if diff := cmp.Diff(expected, compiled.Imports()); diff != "" {
		t.Fatalf("unexpected imports (-want +got):\n%s", diff)
	}
}

func TestFromSchemaContextKeepsOrder(t *testing.T) {
	schema := &types.SchemaContext{
		Modules: map[types.ModuleIdentity]*types.EffectiveStatement{
			{Name: "a"}: {Kind: types.KindModule, Argument: "a"},
			{Name: "b"}: {Kind: types.KindModule, Argument: "b"},
		},
		Order: []types.ModuleIdentity{{Name: "b"}, {Name: "a"}},
	}
	wrapped := FromSchemaContext(schema)
	require.Len(t, wrapped, 2)
	require.Equal(t, "b", wrapped[0].Identity().Name)
	require.Equal(t, "a", wrapped[1].Identity().Name)
}
