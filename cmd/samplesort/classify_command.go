package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"samplesort/internal/layout"
	"samplesort/internal/logging"
	"samplesort/internal/organizer"
	"samplesort/internal/placement"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var packFolders bool
	cmd := &cobra.Command{
		Use:   "classify <name-or-path>...",
		Short: "Show category, tag and destination for sample names without touching disk",
		Long: "Each argument is read as a path below the source root: parent folders take\n" +
			"part in classification and the first folder is the pack name.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.runConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pack-folders") {
				cfg.Placement.PackFolders = packFolders
			}

			org := organizer.New(cfg, logging.NewNop())
			rows := make([][]string, 0, len(args))
			for _, arg := range args {
				row, err := classifyRow(org, arg, cfg.Placement.MaxPathLength)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Input", "Category", "Tag", "Destination"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				shouldColorize(out),
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&packFolders, "pack-folders", false, "Keep a shortened pack folder below each category")
	return cmd
}

// classifyRow plans one name the way a run would into an empty destination.
func classifyRow(org *organizer.Organizer, arg string, budget int) ([]string, error) {
	file := organizer.Describe(arg)
	planned := org.Plan(file)
	cand := layout.EnforceLimit(planned, budget, file.PackHint)
	allowed := layout.AllowedNameLength(cand.ParentRel(), budget)
	name, err := placement.ResolveName(cand.Name(), planned.Name(), allowed, func(string) bool { return false })
	if err != nil {
		return nil, err
	}
	tag := strings.TrimSpace(planned.Tag)
	if tag == "" {
		tag = "-"
	}
	return []string{arg, cand.Category.String(), tag, cand.WithName(name).Rel()}, nil
}
