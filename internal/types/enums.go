package types

// Phase is one step of the fixed, ordered compilation pipeline. A
// statement context only enters a phase once the previous phase has
// completed for every context in the compilation.
type Phase int

const (
	PhaseNone Phase = iota
	PhasePreLinkage
	PhaseLinkage
	PhaseStatementDefinition
	PhaseFullDeclaration
	PhaseEffectiveModel
)

// Phases returns the pipeline phases in execution order.
func Phases() []Phase {
	return []Phase{
		PhasePreLinkage,
		PhaseLinkage,
		PhaseStatementDefinition,
		PhaseFullDeclaration,
		PhaseEffectiveModel,
	}
}

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhasePreLinkage:
		return "pre-linkage"
	case PhaseLinkage:
		return "linkage"
	case PhaseStatementDefinition:
		return "statement-definition"
	case PhaseFullDeclaration:
		return "full-declaration"
	case PhaseEffectiveModel:
		return "effective-model"
	default:
		return "unknown"
	}
}

// StatementKind tags one syntactic construct of the schema language.
// The core treats kinds as opaque; the statement-support registry gives
// them meaning.
type StatementKind string

const (
	KindModule       StatementKind = "module"
	KindSubmodule    StatementKind = "submodule"
	KindNamespace    StatementKind = "namespace"
	KindPrefix       StatementKind = "prefix"
	KindRevision     StatementKind = "revision"
	KindRevisionDate StatementKind = "revision-date"
	KindImport       StatementKind = "import"
	KindInclude      StatementKind = "include"
	KindBelongsTo    StatementKind = "belongs-to"
	KindDescription  StatementKind = "description"
)

// NamespaceKind identifies one keyed cross-reference partition.
type NamespaceKind string

const (
	// NamespaceModule maps a module or submodule name to its root
	// statement context. Global scope.
	NamespaceModule NamespaceKind = "module"
	// NamespacePrefix maps a prefix to the module context it binds.
	// Source scope.
	NamespacePrefix NamespaceKind = "prefix-to-module"
	// NamespaceBelongsTo maps a belongs-to target name to the resolved
	// parent module context. Source scope.
	NamespaceBelongsTo NamespaceKind = "belongs-to-module"
	// NamespaceInclude maps an included submodule name to its context.
	// Source scope.
	NamespaceInclude NamespaceKind = "included-submodule"
)
