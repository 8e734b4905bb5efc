package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashsdn/hashsdn-yangtools/internal/core"
	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

func parseSource(t *testing.T, doc string) ports.ModuleSource {
	t.Helper()
	source, err := NewYAMLSourceAdapter().Parse([]byte(doc))
	require.NoError(t, err)
	return source
}

func compile(t *testing.T, registry *SupportRegistry, docs ...string) (*core.Reactor, *types.SchemaContext, error) {
	t.Helper()
	sink := NewCollectingSink()
	reactor := core.NewReactor(registry, sink)
	for _, doc := range docs {
		require.NoError(t, reactor.AddSource(context.Background(), parseSource(t, doc)))
	}
	schema, err := reactor.Compile(context.Background())
	return reactor, schema, err
}

const baseDoc = `
module: example-base
body:
  - namespace: urn:example:base
  - prefix: base
`

const boxDoc = `
module: example-box
body:
  - namespace: urn:example:box
  - prefix: box
  - import: example-base
    body:
      - prefix: base
`

func TestImportResolvesAgainstLaterSource(t *testing.T) {
	// The importing module is added before the one it imports;
	// resolution must not depend on processing order within a phase.
	reactor, schema, err := compile(t, NewSupportRegistry(), boxDoc, baseDoc)
	require.NoError(t, err)
	require.Len(t, schema.Modules, 2)

	src, ok := reactor.Source(types.ModuleIdentity{Name: "example-box"})
	require.True(t, ok)
	value, ok := src.Root().FromNamespace(types.NamespacePrefix, "base")
	require.True(t, ok)
	target := value.(*core.StatementContext)
	require.Equal(t, "example-base", target.Argument())
}

func TestModulePrefixBindsToItself(t *testing.T) {
	reactor, _, err := compile(t, NewSupportRegistry(), baseDoc)
	require.NoError(t, err)

	src, ok := reactor.Source(types.ModuleIdentity{Name: "example-base"})
	require.True(t, ok)
	value, ok := src.Root().FromNamespace(types.NamespacePrefix, "base")
	require.True(t, ok)
	require.Equal(t, "example-base", value.(*core.StatementContext).Argument())
}

func TestBelongsToResolvesParentModule(t *testing.T) {
	parent := `
module: example-box
body:
  - namespace: urn:example:box
  - prefix: box
  - include: example-box-types
`
	sub := `
submodule: example-box-types
body:
  - belongs-to: example-box
    body:
      - prefix: box
`
	reactor, schema, err := compile(t, NewSupportRegistry(), sub, parent)
	require.NoError(t, err)
	require.Len(t, schema.Modules, 2)

	src, ok := reactor.Source(types.ModuleIdentity{Name: "example-box-types"})
	require.True(t, ok)
	value, ok := src.Root().FromNamespace(types.NamespaceBelongsTo, "example-box")
	require.True(t, ok)
	require.Equal(t, "example-box", value.(*core.StatementContext).Argument())

	value, ok = src.Root().FromNamespace(types.NamespacePrefix, "box")
	require.True(t, ok)
	require.Equal(t, "example-box", value.(*core.StatementContext).Argument())
}

func TestUnresolvedImportFailsWithLocation(t *testing.T) {
	doc := `
module: lonely
body:
  - namespace: urn:lonely
  - prefix: l
  - import: nowhere
`
	_, schema, err := compile(t, NewSupportRegistry(), doc)
	require.Error(t, err)
	require.Nil(t, schema)
	require.ErrorContains(t, err, `imported module "nowhere" was not found`)
	require.ErrorContains(t, err, "lonely@unspecified")
}

func TestUnresolvedBelongsToFails(t *testing.T) {
	doc := `
submodule: orphan
body:
  - belongs-to: nowhere
    body:
      - prefix: n
`
	_, _, err := compile(t, NewSupportRegistry(), doc)
	require.Error(t, err)
	require.ErrorContains(t, err, `module "nowhere" from belongs-to was not found`)
}

func TestModulePolicyRequiresNamespaceAndPrefix(t *testing.T) {
	doc := `
module: bare
`
	_, _, err := compile(t, NewSupportRegistry(), doc)
	require.Error(t, err)
	require.ErrorContains(t, err, "namespace")
	require.ErrorContains(t, err, "prefix")
}

func TestBelongsToPolicyRequiresPrefix(t *testing.T) {
	doc := `
submodule: sub
body:
  - belongs-to: example-box
`
	parent := `
module: example-box
body:
  - namespace: urn:example:box
  - prefix: box
`
	_, _, err := compile(t, NewSupportRegistry(), doc, parent)
	require.Error(t, err)
	require.ErrorContains(t, err, `"prefix"`)
}

func TestUnknownKindPassesThroughByDefault(t *testing.T) {
	doc := `
module: extended
body:
  - namespace: urn:ext
  - prefix: e
  - vendor-extension: anything
`
	_, schema, err := compile(t, NewSupportRegistry(), doc)
	require.NoError(t, err)

	effective := schema.Modules[types.ModuleIdentity{Name: "extended"}]
	ext, ok := effective.FindFirst("vendor-extension")
	require.True(t, ok)
	require.Equal(t, "anything", ext.Argument)
}

func TestStrictRegistryRejectsUnknownKind(t *testing.T) {
	doc := `
module: extended
body:
  - namespace: urn:ext
  - prefix: e
  - vendor-extension: anything
`
	sink := NewCollectingSink()
	reactor := core.NewReactor(NewSupportRegistry().Strict(), sink)
	err := reactor.AddSource(context.Background(), parseSource(t, doc))
	require.Error(t, err)
	require.ErrorContains(t, err, "vendor-extension")
}

func TestEffectiveTreeMirrorsDeclaration(t *testing.T) {
	_, schema, err := compile(t, NewSupportRegistry(), boxDoc, baseDoc)
	require.NoError(t, err)

	effective := schema.Modules[types.ModuleIdentity{Name: "example-box"}]
	require.Equal(t, types.KindModule, effective.Kind)
	require.Equal(t, "example-box", effective.Argument)

	imp, ok := effective.FindFirst(types.KindImport)
	require.True(t, ok)
	require.Equal(t, "example-base", imp.Argument)
	prefix, ok := imp.FindFirst(types.KindPrefix)
	require.True(t, ok)
	require.Equal(t, "base", prefix.Argument)
}

func TestInvalidRevisionArgumentRejected(t *testing.T) {
	doc := `
module: badrev
body:
  - namespace: urn:bad
  - prefix: b
  - revision: not-a-date
`
	sink := NewCollectingSink()
	reactor := core.NewReactor(NewSupportRegistry(), sink)
	err := reactor.AddSource(context.Background(), parseSource(t, doc))
	require.Error(t, err)
	require.ErrorContains(t, err, "revision")
}
