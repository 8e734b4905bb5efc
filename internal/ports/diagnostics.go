package ports

import "github.com/hashsdn/hashsdn-yangtools/internal/types"

// DiagnosticsSink receives structured findings from the core. Fatal
// errors are also returned through error values; the sink exists so
// callers can observe warnings and the full failure set.
type DiagnosticsSink interface {
	Report(diag types.Diagnostic)
}
