package types

// Statement is one declared statement of a module source: an opaque
// kind, a raw argument and the nested substatements in declaration
// order. Sibling order is significant and preserved verbatim.
type Statement struct {
	Kind     StatementKind
	Argument string
	Children []Statement
}

// SourceRef locates a statement for diagnostics: the owning module
// instance plus a slash-separated path of kind:argument segments from
// the module root down to the statement.
type SourceRef struct {
	Module ModuleIdentity
	Path   string
}

func (r SourceRef) String() string {
	if r.Path == "" {
		return r.Module.String()
	}
	return r.Module.String() + " " + r.Path
}

// EffectiveStatement is the immutable, fully resolved form of a
// statement after all phases have completed.
type EffectiveStatement struct {
	Kind     StatementKind
	Argument string
	Children []*EffectiveStatement
}

// FindFirst returns the first child of the given kind, in declaration
// order.
func (e *EffectiveStatement) FindFirst(kind StatementKind) (*EffectiveStatement, bool) {
	for _, child := range e.Children {
		if child.Kind == kind {
			return child, true
		}
	}
	return nil, false
}

// SchemaContext is the compiled output: the effective statement forest
// keyed by module identity, the order modules were processed in, and
// the non-fatal warnings collected along the way.
type SchemaContext struct {
	Modules  map[ModuleIdentity]*EffectiveStatement
	Order    []ModuleIdentity
	Warnings []Diagnostic
}
