package ports

import "github.com/hashsdn/hashsdn-yangtools/internal/types"

// SourceLoaderPort loads one module source from a file path.
type SourceLoaderPort interface {
	Load(path string) (ModuleSource, error)
}

// SchemaWriterPort serializes a compiled schema context for tooling.
type SchemaWriterPort interface {
	Write(path string, schema *types.SchemaContext) error
}
