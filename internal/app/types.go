package app

import (
	"time"

	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// CompileResult is the outcome of a successful compilation.
type CompileResult struct {
	Schema     *types.SchemaContext
	CompiledAt time.Time
}

// InspectReport lists modules in dependency order with their resolved
// metadata.
type InspectReport struct {
	Modules []ModuleReport
}

type ModuleReport struct {
	Name      string
	Revision  string
	Namespace string
	Imports   []string
}
