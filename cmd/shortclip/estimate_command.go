package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/shortclip/internal/render"
)

func newEstimateCommand(ctx *commandContext) *cobra.Command {
	var batchFlag string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate synthesis cost for a batch without rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := render.LoadBatch(batchFlag)
			if err != nil {
				return err
			}

			est := render.EstimateBatchCost(*batch)

			rows := make([][]string, 0, len(est.Breakdown))
			for _, row := range est.Breakdown {
				rows = append(rows, []string{
					fmt.Sprintf("%d", row.MomentIndex),
					row.Language,
					fmt.Sprintf("%d", row.Characters),
					fmt.Sprintf("$%.4f", row.Cost),
				})
			}
			if len(rows) > 0 {
				cmd.Println(renderTable(
					[]string{"Moment", "Language", "Characters", "Cost"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
				))
			}

			cmd.Printf("Estimated total: $%.4f ($%.4f per video, %d videos)\n",
				est.TotalCost, est.CostPerVideo, len(est.Breakdown))
			return nil
		},
	}

	cmd.Flags().StringVarP(&batchFlag, "batch", "b", "", "Batch definition file (yaml)")
	_ = cmd.MarkFlagRequired("batch")

	return cmd
}
