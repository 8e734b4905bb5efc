package adapters

import (
	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// CompiledModule is the already-effective variant of the module
// capability: a thin view over an effective statement that lets
// compiled modules participate in dependency sorting next to
// in-progress builders, without re-entering the reactor.
type CompiledModule struct {
	identity  types.ModuleIdentity
	effective *types.EffectiveStatement
}

func NewCompiledModule(identity types.ModuleIdentity, effective *types.EffectiveStatement) CompiledModule {
	return CompiledModule{identity: identity, effective: effective}
}

// FromSchemaContext wraps every module of a compiled schema context,
// in its processing order.
func FromSchemaContext(schema *types.SchemaContext) []ports.ModuleLike {
	out := make([]ports.ModuleLike, 0, len(schema.Order))
	for _, id := range schema.Order {
		out = append(out, NewCompiledModule(id, schema.Modules[id]))
	}
	return out
}

func (m CompiledModule) Identity() types.ModuleIdentity { return m.identity }

// Effective returns the underlying effective statement.
func (m CompiledModule) Effective() *types.EffectiveStatement { return m.effective }

func (m CompiledModule) Namespace() string {
	if ns, ok := m.effective.FindFirst(types.KindNamespace); ok {
		return ns.Argument
	}
	return ""
}

func (m CompiledModule) Imports() []types.ImportDescriptor {
	var edges []types.ImportDescriptor
	for _, child := range m.effective.Children {
		switch child.Kind {
		case types.KindImport, types.KindInclude:
			edge := types.ImportDescriptor{Module: child.Argument}
			if rev, ok := child.FindFirst(types.KindRevisionDate); ok {
				edge.Revision = types.Revision(rev.Argument)
			}
			edges = append(edges, edge)
		}
	}
	return edges
}
