package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashsdn/hashsdn-yangtools/internal/app"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <module>...",
		Short: "Check module identities, imports and dependency order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args)
		},
	}
}

func runValidate(ctx context.Context, paths []string) error {
	service := app.NewService()
	warnings, err := service.Validate(ctx, paths)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Printf("warning: %s\n", warning.Message)
	}
	fmt.Printf("validated %d module source(s)\n", len(paths))
	return nil
}
