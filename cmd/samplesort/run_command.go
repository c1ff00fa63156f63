package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"samplesort/internal/config"
	"samplesort/internal/organizer"
)

// runOptions are the organize flags shared by the root and run commands.
type runOptions struct {
	source          string
	dest            string
	mode            string
	maxPath         int
	dryRun          bool
	quiet           bool
	includeNonAudio bool
	packFolders     bool
}

func (o *runOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.source, "source", "", "Source sample library (overrides paths.source_dir)")
	flags.StringVar(&o.dest, "dest", "", "Destination root (overrides paths.dest_dir)")
	flags.StringVar(&o.mode, "mode", "", "Placement mode: symlink, copy or move")
	flags.IntVar(&o.maxPath, "max-path", 0, "Maximum destination path length below the root")
	flags.BoolVar(&o.dryRun, "dry-run", false, "Print planned placements without touching disk")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress per-file lines and the summary")
	flags.BoolVar(&o.includeNonAudio, "include-non-audio", false, "Also place MIDI, project and preset files")
	flags.BoolVar(&o.packFolders, "pack-folders", false, "Keep a shortened pack folder below each category")
}

// apply copies the flags that were set onto cfg.
func (o *runOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if value := strings.TrimSpace(o.source); value != "" {
		cfg.Paths.SourceDir = value
	}
	if value := strings.TrimSpace(o.dest); value != "" {
		cfg.Paths.DestDir = value
	}
	if value := strings.TrimSpace(o.mode); value != "" {
		cfg.Placement.Mode = value
	}
	if flags.Changed("max-path") {
		cfg.Placement.MaxPathLength = o.maxPath
	}
	if flags.Changed("include-non-audio") {
		cfg.Placement.IncludeNonAudio = o.includeNonAudio
	}
	if flags.Changed("pack-folders") {
		cfg.Placement.PackFolders = o.packFolders
	}
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Place every sample of the source tree into the destination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.runConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			return executeRun(cmd, ctx, cfg, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func executeRun(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, opts *runOptions) error {
	if err := cfg.Normalize(); err != nil {
		return err
	}
	if err := cfg.ValidateRun(); err != nil {
		return err
	}
	logger, err := ctx.logger(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	org := organizer.New(cfg, logger,
		organizer.WithDryRun(opts.dryRun),
		organizer.WithQuiet(opts.quiet),
		organizer.WithOutput(out),
	)
	summary, err := org.Run(cmd.Context())
	if err != nil {
		return err
	}
	if opts.quiet || opts.dryRun || summary.Files() == 0 {
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderCategoryTable(summary, shouldColorize(out)))
	return nil
}
