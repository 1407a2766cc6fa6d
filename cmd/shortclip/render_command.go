package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/shortclip/internal/history"
	"github.com/nguyentantai21042004/shortclip/internal/render"
	"github.com/nguyentantai21042004/shortclip/internal/report"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var batchFlag string
	var reportFlag string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a batch of localized clips",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			batch, err := render.LoadBatch(batchFlag)
			if err != nil {
				return err
			}

			orch, err := ctx.buildOrchestrator()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			batchID := uuid.NewString()
			startedAt := time.Now()

			result, err := orch.RenderBatch(runCtx, *batch)
			if err != nil {
				return err
			}

			printBatchResult(cmd, result)

			if cfg.History.Path != "" {
				store, openErr := history.Open(cfg.History.Path)
				if openErr != nil {
					return fmt.Errorf("open history: %w", openErr)
				}
				defer store.Close()
				if saveErr := store.SaveBatch(cmd.Context(), batchID, *batch, result, startedAt); saveErr != nil {
					return fmt.Errorf("save history: %w", saveErr)
				}
				cmd.Printf("History saved as batch %s\n", batchID)
			}

			if reportFlag != "" {
				if reportErr := report.WriteBatch(batchID, *batch, result, reportFlag); reportErr != nil {
					return fmt.Errorf("write report: %w", reportErr)
				}
				cmd.Printf("Report written to %s\n", reportFlag)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&batchFlag, "batch", "b", "", "Batch definition file (yaml)")
	cmd.Flags().StringVar(&reportFlag, "report", "", "Write a docx report to this path")
	_ = cmd.MarkFlagRequired("batch")

	return cmd
}

func printBatchResult(cmd *cobra.Command, result *render.BatchResult) {
	rows := make([][]string, 0, len(result.Videos))
	for _, v := range result.Videos {
		rows = append(rows, []string{
			fmt.Sprintf("%d", v.MomentIndex),
			v.Language,
			v.Path,
			fmt.Sprintf("%.1fs", v.DurationSeconds),
			formatBytes(v.SizeBytes),
		})
	}
	if len(rows) > 0 {
		cmd.Println(renderTable(
			[]string{"Moment", "Language", "Path", "Duration", "Size"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
		))
	}

	if len(result.Errors) > 0 {
		errRows := make([][]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			errRows = append(errRows, []string{
				fmt.Sprintf("%d", e.MomentIndex),
				e.Language,
				e.Message,
			})
		}
		cmd.Println(renderTable(
			[]string{"Moment", "Language", "Error"},
			errRows,
			[]columnAlignment{alignRight, alignLeft, alignLeft},
		))
	}

	cmd.Printf("Rendered %d/%d videos in %.1fs, total cost $%.4f ($%.4f per video)\n",
		len(result.Videos), result.TotalCount, result.ProcessingTimeSeconds,
		result.TotalCost, result.CostPerVideo)
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
