package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/hashsdn/hashsdn-yangtools/internal/adapters"
	"github.com/hashsdn/hashsdn-yangtools/internal/core"
	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
)

// Inspect reports the dependency order of the given sources and each
// module's resolved metadata.
func (s Service) Inspect(ctx context.Context, paths []string) (InspectReport, error) {
	if len(paths) == 0 {
		return InspectReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no module sources given")
	}

	var modules []ports.ModuleLike
	for _, path := range paths {
		source, err := s.Sources.Load(path)
		if err != nil {
			return InspectReport{}, err
		}
		modules = append(modules, source)
	}

	sink := adapters.NewCollectingSink()
	graph, err := core.BuildDependencyGraph(ctx, modules, sink)
	if err != nil {
		return InspectReport{}, err
	}
	sorted, err := graph.Sort()
	if err != nil {
		return InspectReport{}, err
	}

	report := InspectReport{}
	for _, mod := range sorted {
		entry := ModuleReport{
			Name:      mod.Identity().Name,
			Revision:  mod.Identity().Revision.String(),
			Namespace: mod.Namespace(),
		}
		for _, imp := range mod.Imports() {
			target := imp.Module
			if imp.Revision.Specified() {
				target += "@" + string(imp.Revision)
			}
			entry.Imports = append(entry.Imports, target)
		}
		report.Modules = append(report.Modules, entry)
	}
	return report, nil
}
