package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// graphNode is one module instance in the dependency graph: its
// identity, a back-reference to the originating representation and the
// outgoing import/include edges.
type graphNode struct {
	identity types.ModuleIdentity
	module   ports.ModuleLike
	edges    []*graphNode
}

// DependencyGraph holds every module instance keyed by name and
// revision, with edges pointing at the modules each instance imports.
// Registration order is retained so edge resolution and sorting stay
// deterministic for identical input.
type DependencyGraph struct {
	nodes     map[string]map[types.Revision]*graphNode
	revOrder  map[string][]types.Revision
	nodeOrder []*graphNode
}

// BuildDependencyGraph registers every module, then wires import and
// include edges. Duplicate identities fail before any edge is
// processed. Namespace collisions across differently-named modules are
// reported as warnings and do not stop graph construction.
func BuildDependencyGraph(ctx context.Context, modules []ports.ModuleLike, sink ports.DiagnosticsSink) (*DependencyGraph, error) {
	g := &DependencyGraph{
		nodes:    map[string]map[types.Revision]*graphNode{},
		revOrder: map[string][]types.Revision{},
	}
	if err := g.registerModules(modules); err != nil {
		return nil, err
	}
	g.checkNamespaces(ctx, modules, sink)
	if err := g.wireEdges(ctx, modules, sink); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *DependencyGraph) registerModules(modules []ports.ModuleLike) error {
	for _, mod := range modules {
		id := mod.Identity()
		byRev := g.nodes[id.Name]
		if byRev == nil {
			byRev = map[types.Revision]*graphNode{}
			g.nodes[id.Name] = byRev
		}
		if _, ok := byRev[id.Revision]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("module %s declared twice", id))
		}
		node := &graphNode{identity: id, module: mod}
		byRev[id.Revision] = node
		g.revOrder[id.Name] = append(g.revOrder[id.Name], id.Revision)
		g.nodeOrder = append(g.nodeOrder, node)
	}
	return nil
}

// checkNamespaces warns when two differently-named modules declare the
// same namespace URI. The first registrant keeps the slot.
func (g *DependencyGraph) checkNamespaces(ctx context.Context, modules []ports.ModuleLike, sink ports.DiagnosticsSink) {
	seen := map[string]types.ModuleIdentity{}
	for _, mod := range modules {
		ns := mod.Namespace()
		if ns == "" {
			continue
		}
		prior, ok := seen[ns]
		if !ok {
			seen[ns] = mod.Identity()
			continue
		}
		if prior.Name == mod.Identity().Name {
			continue
		}
		msg := fmt.Sprintf("module %s declares namespace %q already claimed by %s", mod.Identity(), ns, prior)
		log.Ctx(ctx).Warn().Str("namespace", ns).Str("module", mod.Identity().String()).Msg("namespace collision")
		if sink != nil {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityWarning,
				Code:     types.DiagNamespaceCollision,
				Message:  msg,
				Source:   types.SourceRef{Module: mod.Identity()},
			})
		}
	}
}

func (g *DependencyGraph) wireEdges(ctx context.Context, modules []ports.ModuleLike, sink ports.DiagnosticsSink) error {
	for _, mod := range modules {
		from := g.nodes[mod.Identity().Name][mod.Identity().Revision]
		imported := map[string]types.Revision{}
		for _, imp := range mod.Imports() {
			// Two imports of the same target with different specified
			// revisions cannot both be honored.
			if prior, ok := imported[imp.Module]; ok && prior != imp.Revision && prior.Specified() && imp.Revision.Specified() {
				return errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("module %s imports %s twice with different revisions: %s, %s",
						mod.Identity(), imp.Module, prior, imp.Revision))
			}
			imported[imp.Module] = imp.Revision

			to, err := g.resolveImport(ctx, mod.Identity(), imp, sink)
			if err != nil {
				return err
			}
			from.edges = append(from.edges, to)
		}
	}
	return nil
}

// resolveImport finds the graph node an import edge points at. An
// unspecified revision matching several registered revisions picks the
// first registered one; this choice is implementation-defined and is
// surfaced as a warning, never an error.
func (g *DependencyGraph) resolveImport(ctx context.Context, from types.ModuleIdentity, imp types.ImportDescriptor, sink ports.DiagnosticsSink) (*graphNode, error) {
	byRev := g.nodes[imp.Module]
	if node, ok := byRev[imp.Revision]; ok {
		return node, nil
	}
	if len(byRev) > 0 && !imp.Revision.Specified() {
		picked := byRev[g.revOrder[imp.Module][0]]
		log.Ctx(ctx).Debug().
			Str("import", imp.Module).
			Str("by", from.String()).
			Str("picked", picked.identity.String()).
			Msg("import does not specify revision, using first available")
		if len(byRev) > 1 && sink != nil {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityWarning,
				Code:     types.DiagAmbiguousRevision,
				Message:  fmt.Sprintf("import of %s by %s is ambiguous, picked %s", imp.Module, from, picked.identity),
				Source:   types.SourceRef{Module: from},
			})
		}
		return picked, nil
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("nonexistent module imported: %s@%s by %s", imp.Module, imp.Revision, from))
}
