package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisionValidate(t *testing.T) {
	assert.NoError(t, Revision("2020-06-10").Validate())
	assert.NoError(t, RevisionUnspecified.Validate())
	assert.Error(t, Revision("2020-13-40").Validate())
	assert.Error(t, Revision("not-a-date").Validate())
}

func TestRevisionString(t *testing.T) {
	assert.Equal(t, "2020-06-10", Revision("2020-06-10").String())
	assert.Equal(t, "unspecified", RevisionUnspecified.String())
}

func TestModuleIdentityString(t *testing.T) {
	assert.Equal(t, "foo@2020-01-01", ModuleIdentity{Name: "foo", Revision: "2020-01-01"}.String())
	assert.Equal(t, "foo@unspecified", ModuleIdentity{Name: "foo"}.String())
}

func TestRevisionsOrderLexically(t *testing.T) {
	assert.True(t, Revision("2020-01-02") > Revision("2020-01-01"))
	assert.True(t, Revision("2021-01-01") > Revision("2020-12-31"))
}

func TestPhasesAreOrdered(t *testing.T) {
	phases := Phases()
	require.Len(t, phases, 5)
	for i := 1; i < len(phases); i++ {
		assert.Less(t, phases[i-1], phases[i])
	}
	assert.Equal(t, PhasePreLinkage, phases[0])
	assert.Equal(t, PhaseEffectiveModel, phases[len(phases)-1])
}

func TestFindFirstReturnsDeclarationOrderMatch(t *testing.T) {
	root := &EffectiveStatement{
		Kind:     KindModule,
		Argument: "foo",
		Children: []*EffectiveStatement{
			{Kind: KindRevision, Argument: "2020-01-01"},
			{Kind: KindRevision, Argument: "2020-06-01"},
		},
	}
	rev, ok := root.FindFirst(KindRevision)
	require.True(t, ok)
	assert.Equal(t, "2020-01-01", rev.Argument)

	_, ok = root.FindFirst(KindNamespace)
	assert.False(t, ok)
}

func TestSourceRefString(t *testing.T) {
	id := ModuleIdentity{Name: "foo", Revision: "2020-01-01"}
	assert.Equal(t, "foo@2020-01-01", SourceRef{Module: id}.String())
	assert.Equal(t, "foo@2020-01-01 module:foo/import:bar",
		SourceRef{Module: id, Path: "module:foo/import:bar"}.String())
}
