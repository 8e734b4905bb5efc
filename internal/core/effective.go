package core

import (
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// buildSchema folds every completed source context into its immutable
// effective statement, children before parents. Materialization is
// delegated entirely to each kind's statement support; this pass only
// guarantees it happens exactly once per context, after all phases,
// with no re-entrant phase participation.
func (r *Reactor) buildSchema() (*types.SchemaContext, error) {
	modules := make(map[types.ModuleIdentity]*types.EffectiveStatement, len(r.sources))
	order := make([]types.ModuleIdentity, 0, len(r.sources))
	for _, src := range r.sources {
		effective, err := materialize(src.Root())
		if err != nil {
			return nil, err
		}
		modules[src.identity] = effective
		order = append(order, src.identity)
	}
	return &types.SchemaContext{Modules: modules, Order: order}, nil
}

func materialize(stmt *StatementContext) (*types.EffectiveStatement, error) {
	children := make([]*types.EffectiveStatement, 0, len(stmt.children))
	for _, child := range stmt.Children() {
		effective, err := materialize(child)
		if err != nil {
			return nil, err
		}
		children = append(children, effective)
	}
	return stmt.support.CreateEffective(stmt, children)
}
