package core

import (
	"github.com/hashsdn/hashsdn-yangtools/internal/policies"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// NamespaceScope states where a namespace partition's entries live:
// shared across the whole compilation or private to one module source.
type NamespaceScope int

const (
	ScopeGlobal NamespaceScope = iota
	ScopeSource
)

// StatementSupport supplies the pluggable semantics for one statement
// kind. The reactor calls these hooks; it defines no kind-specific
// behavior itself.
//
// The interface lives in this package rather than ports because its
// methods operate on the mutable StatementContext.
type StatementSupport interface {
	Kind() types.StatementKind

	// ParseArgument validates and canonicalizes the raw argument at
	// tree-building time.
	ParseArgument(raw string) (string, error)

	// SubstatementPolicy returns the cardinality rules for this kind's
	// substatements, or nil when unconstrained. Checked by the reactor
	// during the statement-definition phase.
	SubstatementPolicy() *policies.SubstatementPolicy

	// OnPhaseEntry runs when the statement enters a phase. This is
	// where supports publish namespace entries and register inference
	// actions.
	OnPhaseEntry(phase types.Phase, stmt *StatementContext) error

	// CreateEffective materializes the immutable effective statement
	// from the resolved context and its children's already-built
	// effective statements.
	CreateEffective(stmt *StatementContext, children []*types.EffectiveStatement) (*types.EffectiveStatement, error)
}

// SupportRegistry resolves the support for a statement kind.
type SupportRegistry interface {
	SupportFor(kind types.StatementKind) (StatementSupport, bool)

	// Namespaces declares every partition the supports use, with its
	// scope. Writes to undeclared partitions are rejected.
	Namespaces() map[types.NamespaceKind]NamespaceScope
}
