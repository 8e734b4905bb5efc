package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/hashsdn/hashsdn-yangtools/internal/shared"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// Prerequisite is a request for a value at (partition, key) to exist
// no later than a stated phase.
type Prerequisite struct {
	kind      types.NamespaceKind
	key       string
	phase     types.Phase
	store     *namespaceStore
	satisfied bool
	value     any
}

// Resolve returns the prerequisite's value. Valid only inside the
// owning action's Apply behavior.
func (p *Prerequisite) Resolve() (any, error) {
	if !p.satisfied {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("prerequisite (%s, %s) resolved before satisfaction", p.kind, p.key))
	}
	return p.value, nil
}

func (p *Prerequisite) Describe() string {
	return fmt.Sprintf("(%s, %s)", p.kind, p.key)
}

// InferenceAction is the deferred behavior of one action: Apply runs
// exactly once when every prerequisite is satisfied;
// PrerequisiteFailed runs instead when the engine determines the
// prerequisites can never be met, and its error becomes the
// diagnostic.
type InferenceAction struct {
	Apply              func() error
	PrerequisiteFailed func(failed []*Prerequisite) error
}

// ActionBuilder accumulates prerequisites before the action is handed
// to the engine.
type ActionBuilder struct {
	engine    *actionEngine
	owner     *StatementContext
	phase     types.Phase
	prereqs   []*Prerequisite
	committed bool
}

// Requires adds a prerequisite on (partition, key) existing by the
// given phase.
func (b *ActionBuilder) Requires(kind types.NamespaceKind, key string, byPhase types.Phase) *Prerequisite {
	store, _ := b.owner.storeFor(kind)
	prereq := &Prerequisite{kind: kind, key: key, phase: byPhase, store: store}
	b.prereqs = append(b.prereqs, prereq)
	return prereq
}

// Apply registers the action with the engine. Prerequisites already
// satisfied at registration make the action immediately runnable.
func (b *ActionBuilder) Apply(behavior InferenceAction) error {
	if b.committed {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("inference action registered twice")
	}
	if behavior.Apply == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("inference action has no apply behavior")
	}
	b.committed = true
	b.engine.register(&action{
		owner:    b.owner,
		phase:    b.phase,
		prereqs:  b.prereqs,
		behavior: behavior,
	})
	return nil
}

type actionState int

const (
	actionPending actionState = iota
	actionReady
	actionApplied
	actionFailed
)

// action is one registered unit of deferred work. Actions live in the
// engine's arena and are addressed by index, so a stale handle can
// never fire twice.
type action struct {
	id       int
	owner    *StatementContext
	phase    types.Phase
	prereqs  []*Prerequisite
	behavior InferenceAction
	state    actionState
}

func (a *action) unsatisfied() []*Prerequisite {
	var out []*Prerequisite
	for _, p := range a.prereqs {
		if !p.satisfied {
			out = append(out, p)
		}
	}
	return out
}

// blockKey indexes pending actions by the store-qualified slot they
// wait on. Source-scoped partitions of different modules share a kind
// but never a store.
type blockKey struct {
	store *namespaceStore
	kind  types.NamespaceKind
	key   string
}

// actionEngine is the forward-reference solver: a work queue of
// actions indexed by their unsatisfied prerequisites, drained to
// fixpoint once per phase. It is single-threaded and cooperative;
// suspension is purely logical.
type actionEngine struct {
	reactor    *Reactor
	actions    []*action
	blocked    map[blockKey][]int
	ready      []int
	progressed bool
}

func (e *actionEngine) init(r *Reactor) {
	e.reactor = r
	e.blocked = map[blockKey][]int{}
}

func (e *actionEngine) register(a *action) {
	a.id = len(e.actions)
	e.actions = append(e.actions, a)

	for _, p := range a.prereqs {
		if p.store == nil {
			continue
		}
		if value, ok := p.store.get(p.kind, p.key); ok {
			p.satisfied = true
			p.value = value
		}
	}
	if len(a.unsatisfied()) == 0 {
		a.state = actionReady
		e.ready = append(e.ready, a.id)
		return
	}
	for _, p := range a.unsatisfied() {
		bk := blockKey{store: p.store, kind: p.kind, key: p.key}
		e.blocked[bk] = append(e.blocked[bk], a.id)
	}
}

// notify re-checks every action blocked on a freshly written slot.
// Actions whose prerequisites are now complete join the ready queue in
// the order they became satisfied; blocked lists hold ascending ids,
// so same-pass ties resolve in registration order.
func (e *actionEngine) notify(store *namespaceStore, kind types.NamespaceKind, key string) {
	bk := blockKey{store: store, kind: kind, key: key}
	ids := e.blocked[bk]
	if len(ids) == 0 {
		return
	}
	delete(e.blocked, bk)
	value, ok := store.get(kind, key)
	if !ok {
		return
	}
	for _, id := range ids {
		a := e.actions[id]
		if a.state != actionPending {
			continue
		}
		for _, p := range a.prereqs {
			if p.store == store && p.kind == kind && p.key == key && !p.satisfied {
				p.satisfied = true
				p.value = value
				e.progressed = true
			}
		}
		if len(a.unsatisfied()) == 0 {
			a.state = actionReady
			e.ready = append(e.ready, a.id)
		}
	}
}

// applyReady invokes every runnable action, in satisfaction order.
// Applies may write namespaces or register further actions, extending
// the queue mid-drain.
func (e *actionEngine) applyReady(ctx context.Context) error {
	for len(e.ready) > 0 {
		id := e.ready[0]
		e.ready = e.ready[1:]
		a := e.actions[id]
		if a.state != actionReady {
			continue
		}
		a.state = actionApplied
		e.progressed = true
		log.Ctx(ctx).Debug().
			Str("statement", a.owner.SourceRef().String()).
			Str("phase", a.phase.String()).
			Msg("inference action applied")
		if err := a.behavior.Apply(); err != nil {
			a.owner.failed = true
			a.owner.src.failed = true
			return err
		}
	}
	return nil
}

// drain runs the fixpoint loop for one phase: apply everything
// runnable, and once a full pass yields no advancement, permanently
// fail every action still pending for the phase. The loop runs at most
// once per namespace write plus one terminating pass.
func (e *actionEngine) drain(ctx context.Context, phase types.Phase) error {
	for {
		e.progressed = false
		if err := e.applyReady(ctx); err != nil {
			return err
		}
		pending := e.pendingFor(phase)
		if len(pending) == 0 {
			return nil
		}
		if !e.progressed {
			return e.failPending(ctx, pending)
		}
	}
}

func (e *actionEngine) pendingFor(phase types.Phase) []*action {
	var out []*action
	for _, a := range e.actions {
		if a.state == actionPending && a.phase <= phase {
			out = append(out, a)
		}
	}
	return out
}

// failPending invokes prerequisiteFailed on every stalled action and
// aggregates one diagnostic per action, surfacing all blockers rather
// than the first.
func (e *actionEngine) failPending(ctx context.Context, pending []*action) error {
	var msgs []string
	var causes []error
	for _, a := range pending {
		a.state = actionFailed
		a.owner.failed = true
		a.owner.src.failed = true

		failed := a.unsatisfied()
		var described []string
		for _, p := range failed {
			described = append(described, p.Describe())
		}
		msg := fmt.Sprintf("%s: prerequisites never satisfied: %s", a.owner.SourceRef(), strings.Join(described, ", "))
		if a.behavior.PrerequisiteFailed != nil {
			if err := a.behavior.PrerequisiteFailed(failed); err != nil {
				msg = err.Error()
				causes = append(causes, err)
			}
		}
		msgs = append(msgs, msg)
		e.reactor.report(types.Diagnostic{
			Severity: types.SeverityError,
			Code:     types.DiagUnresolvedPrerequisite,
			Message:  msg,
			Source:   a.owner.SourceRef(),
		})
		log.Ctx(ctx).Error().Str("statement", a.owner.SourceRef().String()).Msg("inference action stalled")
	}
	builder := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(shared.JoinNonEmpty("; ", msgs...))
	if len(causes) > 0 {
		builder = builder.WithCause(errors.Join(causes...))
	}
	return builder
}
