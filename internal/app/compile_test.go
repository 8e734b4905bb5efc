package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

func writeSource(t *testing.T, dir, name, doc string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func fixtureSources(t *testing.T) (string, string) {
	dir := t.TempDir()
	base := writeSource(t, dir, "base.yaml", `
module: example-base
body:
  - namespace: urn:example:base
  - prefix: base
  - revision: "2020-01-01"
`)
	box := writeSource(t, dir, "box.yaml", `
module: example-box
body:
  - namespace: urn:example:box
  - prefix: box
  - import: example-base
    body:
      - prefix: base
`)
	return base, box
}

func TestCompileOrdersDependenciesFirst(t *testing.T) {
	base, box := fixtureSources(t)
	service := NewService()

	// The dependent module is listed first on purpose.
	result, err := service.Compile(context.Background(), []string{box, base}, nil)
	require.NoError(t, err)
	require.Len(t, result.Schema.Modules, 2)
	require.Equal(t, []types.ModuleIdentity{
		{Name: "example-base", Revision: "2020-01-01"},
		{Name: "example-box"},
	}, result.Schema.Order)
	require.Empty(t, result.Schema.Warnings)
	require.False(t, result.CompiledAt.IsZero())
}

func TestCompileAgainstExistingSchema(t *testing.T) {
	base, box := fixtureSources(t)
	service := NewService()

	first, err := service.Compile(context.Background(), []string{base}, nil)
	require.NoError(t, err)

	// The dependency is only present as an already-compiled module; it
	// must satisfy the graph without being re-processed.
	second, err := service.Compile(context.Background(), []string{box}, first.Schema)
	require.NoError(t, err)
	require.Len(t, second.Schema.Modules, 1)
	_, ok := second.Schema.Modules[types.ModuleIdentity{Name: "example-box"}]
	require.True(t, ok)
}

func TestCompileUnresolvedImport(t *testing.T) {
	dir := t.TempDir()
	lonely := writeSource(t, dir, "lonely.yaml", `
module: lonely
body:
  - namespace: urn:lonely
  - prefix: l
  - import: nowhere
`)
	_, err := NewService().Compile(context.Background(), []string{lonely}, nil)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestCompileCycleRejected(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.yaml", `
module: a
body:
  - namespace: urn:a
  - prefix: a
  - import: b
`)
	b := writeSource(t, dir, "b.yaml", `
module: b
body:
  - namespace: urn:b
  - prefix: b
  - import: a
`)
	_, err := NewService().Compile(context.Background(), []string{a, b}, nil)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestCompileCollectsNamespaceWarning(t *testing.T) {
	dir := t.TempDir()
	left := writeSource(t, dir, "left.yaml", `
module: left
body:
  - namespace: urn:shared
  - prefix: l
`)
	right := writeSource(t, dir, "right.yaml", `
module: right
body:
  - namespace: urn:shared
  - prefix: r
`)
	result, err := NewService().Compile(context.Background(), []string{left, right}, nil)
	require.NoError(t, err)
	require.Len(t, result.Schema.Warnings, 1)
	require.Equal(t, types.DiagNamespaceCollision, result.Schema.Warnings[0].Code)
}

func TestCompileNoSources(t *testing.T) {
	_, err := NewService().Compile(context.Background(), nil, nil)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestValidateReportsWarningsOnly(t *testing.T) {
	base, box := fixtureSources(t)
	warnings, err := NewService().Validate(context.Background(), []string{box, base})
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestInspectReportsDependencyOrder(t *testing.T) {
	base, box := fixtureSources(t)
	report, err := NewService().Inspect(context.Background(), []string{box, base})
	require.NoError(t, err)
	require.Len(t, report.Modules, 2)
	require.Equal(t, "example-base", report.Modules[0].Name)
	require.Equal(t, "2020-01-01", report.Modules[0].Revision)
	require.Equal(t, "example-box", report.Modules[1].Name)
	require.Equal(t, []string{"example-base"}, report.Modules[1].Imports)
}
