package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hashsdn/hashsdn-yangtools/internal/app"
)

type compileOptions struct {
	Output string
}

func newCompileCommand() *cobra.Command {
	opts := compileOptions{}
	cmd := &cobra.Command{
		Use:   "compile <module>...",
		Short: "Compile module sources into an effective schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the compiled schema to this file")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runCompile(ctx context.Context, paths []string, opts compileOptions) error {
	service := app.NewService()
	result, err := service.Compile(ctx, paths, nil)
	if err != nil {
		return err
	}
	for _, id := range result.Schema.Order {
		fmt.Printf("compiled: %s\n", id)
	}
	for _, warning := range result.Schema.Warnings {
		fmt.Printf("warning: %s\n", warning.Message)
	}
	if opts.Output != "" {
		if err := service.Writer.Write(opts.Output, result.Schema); err != nil {
			return err
		}
		fmt.Printf("schema written to %s\n", opts.Output)
	}
	return nil
}
