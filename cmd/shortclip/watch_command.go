package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/shortclip/internal/history"
	"github.com/nguyentantai21042004/shortclip/internal/render"
	"github.com/nguyentantai21042004/shortclip/internal/watcher"
)

func newWatchCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the drop directory and render batch files as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			orch, err := cmdCtx.buildOrchestrator()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(cfg.Paths.Drop, 0755); err != nil {
				return fmt.Errorf("ensure drop directory: %w", err)
			}

			handler := func(ctx context.Context, filePath string) error {
				batch, loadErr := render.LoadBatch(filePath)
				if loadErr != nil {
					return loadErr
				}

				batchID := uuid.NewString()
				startedAt := time.Now()

				result, renderErr := orch.RenderBatch(ctx, *batch)
				if renderErr != nil {
					return renderErr
				}

				cmdCtx.log.Info(ctx, "Batch %s done: %d/%d videos, %d errors, cost $%.4f",
					batchID, len(result.Videos), result.TotalCount, len(result.Errors), result.TotalCost)

				if cfg.History.Path != "" {
					store, openErr := history.Open(cfg.History.Path)
					if openErr != nil {
						return openErr
					}
					defer store.Close()
					return store.SaveBatch(ctx, batchID, *batch, result, startedAt)
				}
				return nil
			}

			w, err := watcher.New(cfg.Paths.Drop, handler, cmdCtx.log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := w.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
