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

// Validate loads the sources and checks identity uniqueness, import
// resolution and dependency ordering without running the reactor. It
// returns the non-fatal warnings found along the way.
func (s Service) Validate(ctx context.Context, paths []string) ([]types.Diagnostic, error) {
	if len(paths) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no module sources given")
	}

	var modules []ports.ModuleLike
	for _, path := range paths {
		source, err := s.Sources.Load(path)
		if err != nil {
			return nil, err
		}
		modules = append(modules, source)
	}

	sink := adapters.NewCollectingSink()
	graph, err := core.BuildDependencyGraph(ctx, modules, sink)
	if err != nil {
		return nil, err
	}
	if _, err := graph.Sort(); err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().Int("modules", len(modules)).Msg("sources validated")
	return sink.Warnings(), nil
}
