package caption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// WordTiming is the display window of one word within a segment.
type WordTiming struct {
	Word  string
	Start float64
	End   float64
}

// WriteASS renders the segments as an ASS artifact with per-word color
// highlighting and returns its path. timings[i] supplies the word windows
// for segments[i]; when timings is nil each segment's duration is divided
// evenly across its words. That uniform-rate estimate is an approximation,
// not forced alignment.
func WriteASS(segments []Segment, timings [][]WordTiming, style Style, dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if timings != nil && len(timings) != len(segments) {
		return "", fmt.Errorf("word timings count %d does not match segment count %d", len(timings), len(segments))
	}

	path := filepath.Join(dir, fmt.Sprintf("captions_%s.ass", uuid.NewString()))
	if err := os.WriteFile(path, []byte(RenderASS(segments, timings, style)), 0644); err != nil {
		return "", fmt.Errorf("write ass artifact: %w", err)
	}
	return path, nil
}

// RenderASS produces the ASS content for the segments.
func RenderASS(segments []Segment, timings [][]WordTiming, style Style) string {
	var b strings.Builder
	writeASSHeader(&b, style)

	for i, seg := range segments {
		var words []WordTiming
		if timings != nil {
			words = timings[i]
		} else {
			words = EstimateWordTimings(seg)
		}
		writeHighlightEvents(&b, words, style)
	}
	return b.String()
}

// EstimateWordTimings divides a segment's duration evenly across its
// whitespace-split words.
func EstimateWordTimings(seg Segment) []WordTiming {
	words := strings.Fields(sanitizeText(seg.Text))
	if len(words) == 0 {
		return nil
	}
	per := (seg.End - seg.Start) / float64(len(words))
	timings := make([]WordTiming, len(words))
	for i, w := range words {
		timings[i] = WordTiming{
			Word:  w,
			Start: seg.Start + float64(i)*per,
			End:   seg.Start + float64(i+1)*per,
		}
	}
	return timings
}

func writeASSHeader(b *strings.Builder, style Style) {
	b.WriteString("[Script Info]\n")
	b.WriteString("ScriptType: v4.00+\n")
	b.WriteString("PlayResX: 1080\n")
	b.WriteString("PlayResY: 1920\n\n")

	b.WriteString("[V4+ Styles]\n")
	b.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, OutlineColour, BackColour, Bold, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV\n")
	fmt.Fprintf(b, "Style: Default,%s,%d,%s,%s,%s,%d,1,%d,0,%d,20,20,%d\n\n",
		style.FontName,
		style.FontSize,
		assColor(style.PrimaryColor),
		assColor(style.OutlineColor),
		assColor(style.BackColor),
		boolToInt(style.Bold),
		style.OutlineWidth,
		style.alignment(),
		style.marginV(),
	)

	b.WriteString("[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, Effect, Text\n")
}

// writeHighlightEvents emits one dialogue event per word window; the active
// word is recolored, the rest of the segment text keeps the primary color.
func writeHighlightEvents(b *strings.Builder, words []WordTiming, style Style) {
	highlight := assColor(style.HighlightColor)
	primary := assColor(style.PrimaryColor)

	for i, active := range words {
		parts := make([]string, len(words))
		for j, w := range words {
			if j == i {
				parts[j] = fmt.Sprintf("{\\c%s&}%s{\\c%s&}", highlight, w.Word, primary)
			} else {
				parts[j] = w.Word
			}
		}
		fmt.Fprintf(b, "Dialogue: 0,%s,%s,Default,,0,0,,%s\n",
			formatASSTimestamp(active.Start),
			formatASSTimestamp(active.End),
			strings.Join(parts, " "),
		)
	}
}

// formatASSTimestamp renders seconds as H:MM:SS.cc (centiseconds, truncated).
func formatASSTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalCentis := int(seconds * 100)
	hours := totalCentis / 360000
	minutes := totalCentis % 360000 / 6000
	secs := totalCentis % 6000 / 100
	centis := totalCentis % 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
}
