package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/shortclip/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently rendered batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.History.Path == "" {
				return fmt.Errorf("history.path is not configured")
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.ListBatches(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				cmd.Println("No batches recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.ID,
					rec.StartedAt.Local().Format("2006-01-02 15:04"),
					rec.SourceVideo,
					fmt.Sprintf("%d", rec.VideoCount),
					fmt.Sprintf("%d", rec.ErrorCount),
					fmt.Sprintf("$%.4f", rec.TotalCost),
					fmt.Sprintf("%.1fs", rec.Seconds),
				})
			}
			cmd.Println(renderTable(
				[]string{"Batch", "Started", "Source", "Videos", "Errors", "Cost", "Time"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum number of batches to list")

	return cmd
}
