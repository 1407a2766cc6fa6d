package render

import (
	"github.com/nguyentantai21042004/shortclip/internal/cost"
)

// EstimateRow is the pre-flight cost of one job.
type EstimateRow struct {
	MomentIndex int
	Language    string
	Characters  int
	Cost        float64
}

// BatchEstimate is a pure pre-flight cost projection for a batch.
type BatchEstimate struct {
	TotalCost    float64
	CostPerVideo float64
	Breakdown    []EstimateRow
}

// EstimateBatchCost prices every job of the batch from its source-language
// caption at the base rate, without calling any collaborator. The accrued
// cost can diverge: translation changes text length, and the synthesizer
// applies per-language multipliers that a pre-flight figure over source
// text deliberately does not.
func EstimateBatchCost(batch BatchConfig) BatchEstimate {
	est := BatchEstimate{}
	for _, m := range batch.Moments {
		perJob := cost.Estimate([]string{m.Caption})
		for _, lang := range batch.Languages {
			row := EstimateRow{
				MomentIndex: m.Index,
				Language:    lang,
				Characters:  perJob.TotalCharacters,
				Cost:        perJob.EstimatedCost,
			}
			est.TotalCost += row.Cost
			est.Breakdown = append(est.Breakdown, row)
		}
	}
	if len(est.Breakdown) > 0 {
		est.CostPerVideo = est.TotalCost / float64(len(est.Breakdown))
	}
	return est
}
