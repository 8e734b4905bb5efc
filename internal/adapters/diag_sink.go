package adapters

import (
	"github.com/rs/zerolog/log"

	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// CollectingSink records every diagnostic the core reports and mirrors
// it to the log. The core is single-threaded, so no locking is needed
// during a compilation run.
type CollectingSink struct {
	diags []types.Diagnostic
}

func NewCollectingSink() *CollectingSink {
	return &CollectingSink{}
}

func (s *CollectingSink) Report(diag types.Diagnostic) {
	event := log.Warn()
	if diag.Severity == types.SeverityError {
		event = log.Error()
	}
	event.Str("code", string(diag.Code)).Str("source", diag.Source.String()).Msg(diag.Message)
	s.diags = append(s.diags, diag)
}

// Warnings returns the non-fatal diagnostics collected so far.
func (s *CollectingSink) Warnings() []types.Diagnostic {
	return s.bySeverity(types.SeverityWarning)
}

// Errors returns the fatal diagnostics collected so far.
func (s *CollectingSink) Errors() []types.Diagnostic {
	return s.bySeverity(types.SeverityError)
}

func (s *CollectingSink) bySeverity(severity types.Severity) []types.Diagnostic {
	var out []types.Diagnostic
	for _, d := range s.diags {
		if d.Severity == severity {
			out = append(out, d)
		}
	}
	return out
}
