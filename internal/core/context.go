package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// SourceContext owns the mutable statement-context tree of one module
// source. Contexts live in an arena indexed by position; parents own
// child indices and children hold only a back-index, so the tree has
// no reference cycles.
type SourceContext struct {
	reactor  *Reactor
	source   ports.ModuleSource
	identity types.ModuleIdentity
	arena    []*StatementContext
	local    *namespaceStore
	failed   bool
}

// StatementContext is one node of the working parse tree. It is
// mutated in place as phases advance and becomes immutable input to
// effective-tree building once the final phase completes.
type StatementContext struct {
	src       *SourceContext
	index     int
	parent    int
	children  []int
	kind      types.StatementKind
	argument  string
	completed types.Phase
	failed    bool
	support   StatementSupport
}

// buildSourceContext constructs the context tree for one module
// source, one context per declared statement, preserving declaration
// order.
func buildSourceContext(r *Reactor, source ports.ModuleSource) (*SourceContext, error) {
	root, err := source.Root()
	if err != nil {
		return nil, err
	}
	src := &SourceContext{
		reactor:  r,
		source:   source,
		identity: source.Identity(),
		local:    newNamespaceStore(),
	}
	if _, err := src.build(root, -1); err != nil {
		return nil, err
	}
	return src, nil
}

func (s *SourceContext) build(stmt types.Statement, parent int) (int, error) {
	support, ok := s.reactor.registry.SupportFor(stmt.Kind)
	if !ok {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("module %s: no statement support registered for kind %q", s.identity, stmt.Kind))
	}
	argument, err := support.ParseArgument(stmt.Argument)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("module %s: invalid %q argument %q", s.identity, stmt.Kind, stmt.Argument)).
			WithCause(err)
	}
	index := len(s.arena)
	s.arena = append(s.arena, &StatementContext{
		src:      s,
		index:    index,
		parent:   parent,
		kind:     stmt.Kind,
		argument: argument,
		support:  support,
	})
	for _, child := range stmt.Children {
		childIdx, err := s.build(child, index)
		if err != nil {
			return 0, err
		}
		s.arena[index].children = append(s.arena[index].children, childIdx)
	}
	return index, nil
}

// Root returns the source's root statement context.
func (s *SourceContext) Root() *StatementContext {
	return s.arena[0]
}

func (c *StatementContext) Kind() types.StatementKind { return c.kind }
func (c *StatementContext) Argument() string          { return c.argument }

// CompletedPhase reports the last phase this context finished.
func (c *StatementContext) CompletedPhase() types.Phase { return c.completed }

// Parent returns the owning context, or nil for a source root.
func (c *StatementContext) Parent() *StatementContext {
	if c.parent < 0 {
		return nil
	}
	return c.src.arena[c.parent]
}

// Children returns the child contexts in declaration order.
func (c *StatementContext) Children() []*StatementContext {
	out := make([]*StatementContext, len(c.children))
	for i, idx := range c.children {
		out[i] = c.src.arena[idx]
	}
	return out
}

// FirstSubstatement returns the first child of the given kind in
// declaration order. Positional semantics such as "first substatement
// of kind X" depend on sibling order being preserved verbatim.
func (c *StatementContext) FirstSubstatement(kind types.StatementKind) (*StatementContext, bool) {
	for _, idx := range c.children {
		if c.src.arena[idx].kind == kind {
			return c.src.arena[idx], true
		}
	}
	return nil, false
}

// Root returns the source root this context belongs to.
func (c *StatementContext) Root() *StatementContext {
	return c.src.arena[0]
}

// ModuleIdentity returns the identity of the owning module source.
func (c *StatementContext) ModuleIdentity() types.ModuleIdentity {
	return c.src.identity
}

// SourceRef locates this context for diagnostics.
func (c *StatementContext) SourceRef() types.SourceRef {
	var segments []string
	for at := c; at != nil; at = at.Parent() {
		segments = append(segments, fmt.Sprintf("%s:%s", at.kind, at.argument))
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return types.SourceRef{
		Module: c.src.identity,
		Path:   strings.Join(segments, "/"),
	}
}

// AddToNamespace publishes a value under (partition, key) in the
// partition's declared scope. Writing the same slot twice fails
// loudly: it means an action fired twice or two statements claim the
// same identity.
func (c *StatementContext) AddToNamespace(kind types.NamespaceKind, key string, value any) error {
	store, err := c.storeFor(kind)
	if err != nil {
		return err
	}
	if err := store.add(kind, key, value); err != nil {
		return err
	}
	c.src.reactor.engine.notify(store, kind, key)
	return nil
}

// FromNamespace looks up (partition, key). Absence is expected during
// early phases and reported via the boolean, never as an error.
func (c *StatementContext) FromNamespace(kind types.NamespaceKind, key string) (any, bool) {
	store, err := c.storeFor(kind)
	if err != nil {
		return nil, false
	}
	return store.get(kind, key)
}

// NamespaceKeys returns the keys of a partition visible to this
// context, in insertion order.
func (c *StatementContext) NamespaceKeys(kind types.NamespaceKind) []string {
	store, err := c.storeFor(kind)
	if err != nil {
		return nil
	}
	return store.keys(kind)
}

func (c *StatementContext) storeFor(kind types.NamespaceKind) (*namespaceStore, error) {
	scope, ok := c.src.reactor.scopes[kind]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("namespace partition %q was never declared", kind))
	}
	if scope == ScopeGlobal {
		return c.src.reactor.global, nil
	}
	return c.src.local, nil
}

// NewInferenceAction starts building a deferred resolution action tied
// to the given phase. The action belongs to this context; the engine
// only indexes it by its unsatisfied prerequisites.
func (c *StatementContext) NewInferenceAction(phase types.Phase) *ActionBuilder {
	return &ActionBuilder{
		engine: &c.src.reactor.engine,
		owner:  c,
		phase:  phase,
	}
}
