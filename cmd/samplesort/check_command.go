package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"samplesort/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify source, destination and state directory access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.runConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			if err := cfg.Normalize(); err != nil {
				return err
			}
			if err := cfg.ValidateRun(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cfg, opts.dryRun)
			lines := append(renderSectionHeader("Preflight", colorize), preflightLines(results, colorize)...)
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return preflight.Err(results)
		},
	}
	cmd.Flags().StringVar(&opts.source, "source", "", "Source sample library (overrides paths.source_dir)")
	cmd.Flags().StringVar(&opts.dest, "dest", "", "Destination root (overrides paths.dest_dir)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Check what a dry run needs instead of a live run")
	return cmd
}
