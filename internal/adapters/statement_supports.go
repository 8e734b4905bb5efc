package adapters

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/hashsdn/hashsdn-yangtools/internal/core"
	"github.com/hashsdn/hashsdn-yangtools/internal/policies"
	"github.com/hashsdn/hashsdn-yangtools/internal/shared"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// SupportRegistry holds the built-in statement supports. Unknown kinds
// fall back to a generic passthrough support unless the registry is
// strict.
type SupportRegistry struct {
	supports map[types.StatementKind]core.StatementSupport
	strict   bool
}

func NewSupportRegistry() *SupportRegistry {
	r := &SupportRegistry{supports: map[types.StatementKind]core.StatementSupport{}}
	r.register(
		newModuleSupport(),
		newSubmoduleSupport(),
		newImportSupport(),
		newIncludeSupport(),
		newBelongsToSupport(),
		identifierSupport(types.KindPrefix),
		freeformSupport(types.KindNamespace),
		revisionSupport(types.KindRevision),
		revisionSupport(types.KindRevisionDate),
		freeformSupport(types.KindDescription),
	)
	return r
}

// Strict makes unknown statement kinds a hard error instead of
// passing them through unprocessed.
func (r *SupportRegistry) Strict() *SupportRegistry {
	r.strict = true
	return r
}

func (r *SupportRegistry) register(supports ...core.StatementSupport) {
	for _, s := range supports {
		r.supports[s.Kind()] = s
	}
}

func (r *SupportRegistry) SupportFor(kind types.StatementKind) (core.StatementSupport, bool) {
	if s, ok := r.supports[kind]; ok {
		return s, true
	}
	if r.strict {
		return nil, false
	}
	return baseSupport{kind: kind}, true
}

func (r *SupportRegistry) Namespaces() map[types.NamespaceKind]core.NamespaceScope {
	return map[types.NamespaceKind]core.NamespaceScope{
		types.NamespaceModule:    core.ScopeGlobal,
		types.NamespacePrefix:    core.ScopeSource,
		types.NamespaceBelongsTo: core.ScopeSource,
		types.NamespaceInclude:   core.ScopeSource,
	}
}

// baseSupport provides the passthrough behavior every concrete support
// builds on: the raw argument is kept and the effective statement
// mirrors the declared one.
type baseSupport struct {
	kind   types.StatementKind
	policy *policies.SubstatementPolicy
}

func (s baseSupport) Kind() types.StatementKind { return s.kind }

func (s baseSupport) ParseArgument(raw string) (string, error) {
	return strings.TrimSpace(raw), nil
}

func (s baseSupport) SubstatementPolicy() *policies.SubstatementPolicy { return s.policy }

func (s baseSupport) OnPhaseEntry(types.Phase, *core.StatementContext) error { return nil }

func (s baseSupport) CreateEffective(stmt *core.StatementContext, children []*types.EffectiveStatement) (*types.EffectiveStatement, error) {
	return &types.EffectiveStatement{
		Kind:     stmt.Kind(),
		Argument: stmt.Argument(),
		Children: children,
	}, nil
}

// identifierBase rejects arguments that are not valid identifiers.
type identifierBase struct{ baseSupport }

func (s identifierBase) ParseArgument(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !shared.IsIdentifier(trimmed) {
		return "", fmt.Errorf("%q is not a valid identifier", raw)
	}
	return trimmed, nil
}

func identifierSupport(kind types.StatementKind) core.StatementSupport {
	return identifierBase{baseSupport{kind: kind}}
}

// freeformBase accepts any non-empty argument.
type freeformBase struct{ baseSupport }

func (s freeformBase) ParseArgument(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("argument must not be empty")
	}
	return trimmed, nil
}

func freeformSupport(kind types.StatementKind) core.StatementSupport {
	return freeformBase{baseSupport{kind: kind}}
}

// revisionBase requires a calendar-date argument.
type revisionBase struct{ baseSupport }

func (s revisionBase) ParseArgument(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if err := types.Revision(trimmed).Validate(); err != nil {
		return "", err
	}
	return trimmed, nil
}

func revisionSupport(kind types.StatementKind) core.StatementSupport {
	return revisionBase{baseSupport{kind: kind}}
}

// moduleSupport publishes the module into the global module namespace
// during linkage and binds its own prefix source-locally.
type moduleSupport struct{ identifierBase }

func newModuleSupport() core.StatementSupport {
	policy := policies.NewSubstatementPolicy(types.KindModule).
		Mandatory(types.KindNamespace).
		Mandatory(types.KindPrefix).
		Any(types.KindRevision).
		Any(types.KindImport).
		Any(types.KindInclude).
		Optional(types.KindDescription)
	return moduleSupport{identifierBase{baseSupport{kind: types.KindModule, policy: policy}}}
}

func (s moduleSupport) OnPhaseEntry(phase types.Phase, stmt *core.StatementContext) error {
	if phase != types.PhaseLinkage {
		return nil
	}
	if err := stmt.AddToNamespace(types.NamespaceModule, stmt.Argument(), stmt); err != nil {
		return err
	}
	// Prefix presence is enforced later by the substatement policy.
	if prefix, ok := stmt.FirstSubstatement(types.KindPrefix); ok {
		return stmt.AddToNamespace(types.NamespacePrefix, prefix.Argument(), stmt)
	}
	return nil
}

type submoduleSupport struct{ identifierBase }

func newSubmoduleSupport() core.StatementSupport {
	policy := policies.NewSubstatementPolicy(types.KindSubmodule).
		Mandatory(types.KindBelongsTo).
		Any(types.KindRevision).
		Any(types.KindImport).
		Any(types.KindInclude).
		Optional(types.KindDescription)
	return submoduleSupport{identifierBase{baseSupport{kind: types.KindSubmodule, policy: policy}}}
}

func (s submoduleSupport) OnPhaseEntry(phase types.Phase, stmt *core.StatementContext) error {
	if phase != types.PhaseLinkage {
		return nil
	}
	return stmt.AddToNamespace(types.NamespaceModule, stmt.Argument(), stmt)
}

// importSupport registers a linkage action whose prerequisite is the
// imported module's entry in the module namespace; once it resolves,
// the import's prefix binds to the target module context.
type importSupport struct{ identifierBase }

func newImportSupport() core.StatementSupport {
	policy := policies.NewSubstatementPolicy(types.KindImport).
		Optional(types.KindPrefix).
		Optional(types.KindRevisionDate).
		Optional(types.KindDescription)
	return importSupport{identifierBase{baseSupport{kind: types.KindImport, policy: policy}}}
}

func (s importSupport) OnPhaseEntry(phase types.Phase, stmt *core.StatementContext) error {
	if phase != types.PhaseLinkage {
		return nil
	}
	act := stmt.NewInferenceAction(types.PhaseLinkage)
	prereq := act.Requires(types.NamespaceModule, stmt.Argument(), types.PhaseLinkage)
	return act.Apply(core.InferenceAction{
		Apply: func() error {
			value, err := prereq.Resolve()
			if err != nil {
				return err
			}
			// The target may be a statement context from this run or a
			// module compiled in an earlier one; the prefix binds either.
			if prefix, ok := stmt.FirstSubstatement(types.KindPrefix); ok {
				return stmt.AddToNamespace(types.NamespacePrefix, prefix.Argument(), value)
			}
			return nil
		},
		PrerequisiteFailed: func([]*core.Prerequisite) error {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("%s: imported module %q was not found", stmt.SourceRef(), stmt.Argument()))
		},
	})
}

type includeSupport struct{ identifierBase }

func newIncludeSupport() core.StatementSupport {
	policy := policies.NewSubstatementPolicy(types.KindInclude).
		Optional(types.KindRevisionDate)
	return includeSupport{identifierBase{baseSupport{kind: types.KindInclude, policy: policy}}}
}

func (s includeSupport) OnPhaseEntry(phase types.Phase, stmt *core.StatementContext) error {
	if phase != types.PhaseLinkage {
		return nil
	}
	act := stmt.NewInferenceAction(types.PhaseLinkage)
	prereq := act.Requires(types.NamespaceModule, stmt.Argument(), types.PhaseLinkage)
	return act.Apply(core.InferenceAction{
		Apply: func() error {
			value, err := prereq.Resolve()
			if err != nil {
				return err
			}
			return stmt.AddToNamespace(types.NamespaceInclude, stmt.Argument(), value)
		},
		PrerequisiteFailed: func([]*core.Prerequisite) error {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("%s: included submodule %q was not found", stmt.SourceRef(), stmt.Argument()))
		},
	})
}

// belongsToSupport resolves a submodule's parent module. The parent
// may be declared anywhere in the compilation, including after the
// submodule, so resolution goes through the inference engine.
type belongsToSupport struct{ identifierBase }

func newBelongsToSupport() core.StatementSupport {
	policy := policies.NewSubstatementPolicy(types.KindBelongsTo).
		Mandatory(types.KindPrefix)
	return belongsToSupport{identifierBase{baseSupport{kind: types.KindBelongsTo, policy: policy}}}
}

func (s belongsToSupport) OnPhaseEntry(phase types.Phase, stmt *core.StatementContext) error {
	if phase != types.PhaseLinkage {
		return nil
	}
	act := stmt.NewInferenceAction(types.PhaseLinkage)
	prereq := act.Requires(types.NamespaceModule, stmt.Argument(), types.PhaseLinkage)
	return act.Apply(core.InferenceAction{
		Apply: func() error {
			value, err := prereq.Resolve()
			if err != nil {
				return err
			}
			if err := stmt.AddToNamespace(types.NamespaceBelongsTo, stmt.Argument(), value); err != nil {
				return err
			}
			if prefix, ok := stmt.FirstSubstatement(types.KindPrefix); ok {
				return stmt.AddToNamespace(types.NamespacePrefix, prefix.Argument(), value)
			}
			return nil
		},
		PrerequisiteFailed: func([]*core.Prerequisite) error {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("%s: module %q from belongs-to was not found", stmt.SourceRef(), stmt.Argument()))
		},
	})
}
