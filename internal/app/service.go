package app

import (
	"time"

	"github.com/hashsdn/hashsdn-yangtools/internal/adapters"
	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
)

// Service wires the default adapters in front of the compiler core.
type Service struct {
	Sources ports.SourceLoaderPort
	Writer  ports.SchemaWriterPort
	Clock   func() time.Time
}

func NewService() Service {
	return Service{
		Sources: adapters.NewYAMLSourceAdapter(),
		Writer:  adapters.NewSchemaWriterAdapter(),
		Clock:   time.Now,
	}
}
