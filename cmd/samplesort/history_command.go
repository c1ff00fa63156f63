package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"samplesort/internal/ledger"
)

const defaultHistoryLimit = 20

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded organize runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			path := cfg.LedgerPath()
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			store, err := ledger.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintln(out, renderHistoryTable(runs, shouldColorize(out)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum number of runs to show")
	return cmd
}

func renderHistoryTable(runs []ledger.Run, colorize bool) string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		status := string(run.Status)
		if run.Error != "" {
			status += ": " + run.Error
		}
		rows = append(rows, []string{
			shortRunID(run.ID),
			humanize.Time(run.StartedAt),
			run.Mode,
			status,
			strconv.Itoa(run.Files),
			formatBytes(run.Bytes),
			run.DestDir,
		})
	}
	return renderTable(
		[]string{"Run", "Started", "Mode", "Status", "Files", "Size", "Destination"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		colorize,
	)
}

func shortRunID(id string) string {
	head, _, _ := strings.Cut(id, "-")
	return head
}
