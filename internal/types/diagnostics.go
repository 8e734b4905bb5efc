package types

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DiagnosticCode classifies a structured diagnostic.
type DiagnosticCode string

const (
	DiagDuplicateIdentity       DiagnosticCode = "duplicate-identity"
	DiagUnresolvedImport        DiagnosticCode = "unresolved-import"
	DiagImportRevisionConflict  DiagnosticCode = "import-revision-conflict"
	DiagNamespaceCollision      DiagnosticCode = "namespace-collision"
	DiagCyclicDependency        DiagnosticCode = "cyclic-dependency"
	DiagUnresolvedPrerequisite  DiagnosticCode = "unresolved-prerequisite"
	DiagDuplicateNamespaceWrite DiagnosticCode = "duplicate-namespace-write"
	DiagAmbiguousRevision       DiagnosticCode = "ambiguous-revision"
)

// Diagnostic is one structured finding emitted during compilation.
// Warnings accompany a successful result; errors always abort it.
type Diagnostic struct {
	Severity Severity
	Code     DiagnosticCode
	Message  string
	Source   SourceRef
}
