package caption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/shortclip/internal/language"
)

// Right-to-left embedding control characters wrapped around each rendered
// line for RTL languages so players lay the text out correctly.
const (
	rtlEmbed = "\u202b" // RIGHT-TO-LEFT EMBEDDING
	rtlPop   = "\u202c" // POP DIRECTIONAL FORMATTING
)

// Options controls SRT rendering.
type Options struct {
	MaxLineWidth int    // Wrap column; <= 0 disables wrapping
	MaxLines     int    // Line cap per cue once wrapping is on
	Language     string // ISO 639-1 code, used for RTL detection
	Dir          string // Output directory; defaults to os.TempDir()
}

const (
	defaultLineWidth = 42
	defaultMaxLines  = 2
)

// WriteSRT renders the segments as an SRT artifact in opts.Dir and returns
// its path. The caller owns the file's lifecycle.
func WriteSRT(segments []Segment, opts Options) (string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("captions_%s.srt", uuid.NewString()))

	if err := os.WriteFile(path, []byte(RenderSRT(segments, opts)), 0644); err != nil {
		return "", fmt.Errorf("write srt artifact: %w", err)
	}
	return path, nil
}

// RenderSRT produces the SRT content for the segments. Identical input and
// options always produce byte-identical output.
func RenderSRT(segments []Segment, opts Options) string {
	width := opts.MaxLineWidth
	if width == 0 {
		width = defaultLineWidth
	}
	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = defaultMaxLines
	}
	rtl := language.IsRTL(opts.Language)

	var b strings.Builder
	for i, seg := range segments {
		lines := wrapText(sanitizeText(seg.Text), width, maxLines)
		if rtl {
			for j, line := range lines {
				lines[j] = rtlEmbed + line + rtlPop
			}
		}

		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", FormatTimestamp(seg.Start), FormatTimestamp(seg.End))
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}

// wrapText fills lines greedily: a word joins the current line while the
// joined length stays within width, otherwise it starts a new line. Words
// beyond the line cap are dropped.
func wrapText(text string, width, maxLines int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	lines := make([]string, 0, maxLines)
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		if len(lines) == maxLines {
			return lines
		}
		current = word
	}
	return append(lines, current)
}
