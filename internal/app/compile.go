package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/hashsdn/hashsdn-yangtools/internal/adapters"
	"github.com/hashsdn/hashsdn-yangtools/internal/core"
	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// Compile loads the module sources, orders them by their import and
// include dependencies and runs the reactor to a complete effective
// schema. Modules of an existing schema context participate in the
// dependency graph but are not re-processed.
func (s Service) Compile(ctx context.Context, paths []string, existing *types.SchemaContext) (CompileResult, error) {
	if len(paths) == 0 {
		return CompileResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no module sources given")
	}

	var modules []ports.ModuleLike
	builders := map[types.ModuleIdentity]ports.ModuleSource{}
	for _, path := range paths {
		source, err := s.Sources.Load(path)
		if err != nil {
			return CompileResult{}, err
		}
		modules = append(modules, source)
		builders[source.Identity()] = source
	}
	if existing != nil {
		modules = append(modules, adapters.FromSchemaContext(existing)...)
	}

	sink := adapters.NewCollectingSink()
	graph, err := core.BuildDependencyGraph(ctx, modules, sink)
	if err != nil {
		return CompileResult{}, err
	}
	sorted, err := graph.Sort()
	if err != nil {
		return CompileResult{}, err
	}

	reactor := core.NewReactor(adapters.NewSupportRegistry(), sink)
	for _, mod := range sorted {
		source, ok := builders[mod.Identity()]
		if !ok {
			// Already compiled; linkable but not re-processed.
			if err := reactor.AddCompiledModule(ctx, mod); err != nil {
				return CompileResult{}, err
			}
			continue
		}
		if err := reactor.AddSource(ctx, source); err != nil {
			return CompileResult{}, err
		}
	}

	schema, err := reactor.Compile(ctx)
	if err != nil {
		return CompileResult{}, err
	}
	schema.Warnings = sink.Warnings()

	log.Ctx(ctx).Debug().Int("modules", len(schema.Modules)).Int("warnings", len(schema.Warnings)).Msg("compilation completed")
	return CompileResult{Schema: schema, CompiledAt: s.Clock()}, nil
}
