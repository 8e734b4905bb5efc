package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hashsdn/hashsdn-yangtools/internal/app"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <module>...",
		Short: "Show modules in dependency order with resolved metadata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args)
		},
	}
}

func runInspect(ctx context.Context, paths []string) error {
	service := app.NewService()
	report, err := service.Inspect(ctx, paths)
	if err != nil {
		return err
	}
	for _, mod := range report.Modules {
		line := fmt.Sprintf("%s@%s", mod.Name, mod.Revision)
		if mod.Namespace != "" {
			line += " namespace=" + mod.Namespace
		}
		if len(mod.Imports) > 0 {
			line += " imports=" + strings.Join(mod.Imports, ",")
		}
		fmt.Println(line)
	}
	return nil
}
