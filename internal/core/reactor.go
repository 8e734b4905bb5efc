package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

type reactorState int

const (
	reactorIdle reactorState = iota
	reactorRunning
	reactorCompleted
	reactorFailed
)

// Reactor drives every statement context through the fixed phase
// sequence. A phase begins only after the previous one has been
// attempted by every context and every action registered for it has
// either applied or permanently failed. Failure is global: no partial
// schema context is ever produced.
//
// The reactor is single-threaded; sources, namespaces and actions are
// mutated only by the goroutine running Compile.
type Reactor struct {
	registry SupportRegistry
	sink     ports.DiagnosticsSink
	scopes   map[types.NamespaceKind]NamespaceScope
	global   *namespaceStore
	engine   actionEngine
	sources  []*SourceContext
	phase    types.Phase
	state    reactorState
}

func NewReactor(registry SupportRegistry, sink ports.DiagnosticsSink) *Reactor {
	r := &Reactor{
		registry: registry,
		sink:     sink,
		scopes:   registry.Namespaces(),
		global:   newNamespaceStore(),
	}
	r.engine.init(r)
	return r
}

func (r *Reactor) report(diag types.Diagnostic) {
	if r.sink != nil {
		r.sink.Report(diag)
	}
}

// AddSource builds the statement-context tree for one module source.
// Sources must be added in dependency order, dependencies first.
func (r *Reactor) AddSource(ctx context.Context, source ports.ModuleSource) error {
	if r.state != reactorIdle {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("source added after compilation started")
	}
	assert.NotEmpty(ctx, source.Identity().Name, "module source must have a name")
	src, err := buildSourceContext(r, source)
	if err != nil {
		return err
	}
	r.sources = append(r.sources, src)
	log.Ctx(ctx).Debug().Str("module", src.identity.String()).Int("contexts", len(src.arena)).Msg("source context built")
	return nil
}

// AddCompiledModule publishes an already-effective module into the
// global module namespace so new sources can link against it without
// it re-entering phase processing.
func (r *Reactor) AddCompiledModule(ctx context.Context, module ports.ModuleLike) error {
	if r.state != reactorIdle {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("compiled module added after compilation started")
	}
	if scope, ok := r.scopes[types.NamespaceModule]; !ok || scope != ScopeGlobal {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("module namespace partition is not globally scoped")
	}
	log.Ctx(ctx).Debug().Str("module", module.Identity().String()).Msg("compiled module registered")
	return r.global.add(types.NamespaceModule, module.Identity().Name, module)
}

// Compile advances all sources through every phase and materializes
// the effective statement forest. It may run at most once per reactor.
func (r *Reactor) Compile(ctx context.Context) (*types.SchemaContext, error) {
	if r.state != reactorIdle {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("reactor compiled twice")
	}
	r.state = reactorRunning

	for _, phase := range types.Phases() {
		r.phase = phase
		if err := r.enterPhase(ctx, phase); err != nil {
			r.state = reactorFailed
			return nil, err
		}
		if err := r.engine.drain(ctx, phase); err != nil {
			r.state = reactorFailed
			return nil, err
		}
		r.completePhase(phase)
		log.Ctx(ctx).Debug().Str("phase", phase.String()).Msg("phase completed")
	}

	schema, err := r.buildSchema()
	if err != nil {
		r.state = reactorFailed
		return nil, err
	}
	r.state = reactorCompleted
	log.Ctx(ctx).Debug().Int("modules", len(schema.Modules)).Msg("effective schema built")
	return schema, nil
}

// enterPhase invokes the phase-entry hook on every context across the
// entire forest before the engine drains, so resolution never depends
// on declaration order within a phase.
func (r *Reactor) enterPhase(ctx context.Context, phase types.Phase) error {
	for _, src := range r.sources {
		for _, stmt := range src.arena {
			if stmt.failed {
				continue
			}
			if phase == types.PhaseStatementDefinition {
				if err := r.validateSubstatements(stmt); err != nil {
					return err
				}
			}
			if err := stmt.support.OnPhaseEntry(phase, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Reactor) validateSubstatements(stmt *StatementContext) error {
	policy := stmt.support.SubstatementPolicy()
	if policy == nil {
		return nil
	}
	counts := map[types.StatementKind]int{}
	for _, child := range stmt.Children() {
		counts[child.kind]++
	}
	return policy.Validate(counts, stmt.SourceRef())
}

func (r *Reactor) completePhase(phase types.Phase) {
	for _, src := range r.sources {
		for _, stmt := range src.arena {
			if !stmt.failed {
				stmt.completed = phase
			}
		}
	}
}

// GlobalNamespace looks up a key in a globally scoped partition.
func (r *Reactor) GlobalNamespace(kind types.NamespaceKind, key string) (any, bool) {
	if scope, ok := r.scopes[kind]; !ok || scope != ScopeGlobal {
		return nil, false
	}
	return r.global.get(kind, key)
}

// Source returns the source context for a module identity, if the
// reactor holds one.
func (r *Reactor) Source(id types.ModuleIdentity) (*SourceContext, bool) {
	for _, src := range r.sources {
		if src.identity == id {
			return src, true
		}
	}
	return nil, false
}
