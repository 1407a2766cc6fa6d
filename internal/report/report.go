// Package report writes a human-readable batch report as a docx document.
package report

import (
	"fmt"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/shortclip/internal/render"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteBatch writes a report for a finished batch to outputPath.
func WriteBatch(batchID string, batch render.BatchConfig, result *render.BatchResult, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc, fmt.Sprintf("Batch Report: %s", batchID), 16)
	addLine(doc, fmt.Sprintf("Source video: %s", batch.SourceVideoPath))
	addLine(doc, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))
	doc.AddParagraph("")

	addHeading(doc, "Summary", 15)
	addLine(doc, fmt.Sprintf("Rendered videos: %d", len(result.Videos)))
	addLine(doc, fmt.Sprintf("Failed jobs: %d", len(result.Errors)))
	addLine(doc, fmt.Sprintf("Total cost: $%.4f", result.TotalCost))
	addLine(doc, fmt.Sprintf("Cost per video: $%.4f", result.CostPerVideo))
	addLine(doc, fmt.Sprintf("Processing time: %.1fs", result.ProcessingTimeSeconds))
	doc.AddParagraph("")

	if len(result.Videos) > 0 {
		addHeading(doc, "Rendered Videos", 15)
		for _, v := range result.Videos {
			addLine(doc, fmt.Sprintf("• moment %d [%s] %s (%.1fs, %d bytes)",
				v.MomentIndex, v.Language, v.Path, v.DurationSeconds, v.SizeBytes))
			if v.Caption != "" {
				addLine(doc, fmt.Sprintf("  caption: %s", v.Caption))
			}
		}
		doc.AddParagraph("")
	}

	if len(result.Errors) > 0 {
		addHeading(doc, "Failures", 15)
		for _, e := range result.Errors {
			addBoldLine(doc, fmt.Sprintf("• moment %d [%s] at %s",
				e.MomentIndex, e.Language, e.Timestamp.Format("15:04:05")))
			addLine(doc, fmt.Sprintf("  %s", e.Message))
		}
	}

	return doc.SaveTo(outputPath)
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addLine(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}

func addBoldLine(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000").Bold(true)
}
