package caption

import (
	"fmt"
	"os"
	"strings"
)

// ParseSRT reads an SRT file back into segments. Cues without a parseable
// timestamp line are skipped; transcription tools occasionally emit trailing
// noise cues and the pipeline tolerates them.
func ParseSRT(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	var segments []Segment
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}

		// Cue index on the first line is optional in practice.
		timeLineIdx := 0
		if bareIndex.MatchString(strings.TrimSpace(lines[0])) {
			timeLineIdx = 1
		}
		if timeLineIdx >= len(lines) || !strings.Contains(lines[timeLineIdx], "-->") {
			continue
		}

		rangeParts := strings.SplitN(lines[timeLineIdx], "-->", 2)
		if len(rangeParts) != 2 {
			continue
		}
		start, errStart := ParseTimestamp(rangeParts[0])
		end, errEnd := ParseTimestamp(rangeParts[1])
		if errStart != nil || errEnd != nil || end <= start {
			continue
		}

		text := strings.TrimSpace(strings.Join(lines[timeLineIdx+1:], "\n"))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{Text: text, Start: start, End: end})
	}

	return segments, nil
}
