package caption

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var timestampLine = regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}$`)
var bareIndex = regexp.MustCompile(`^\d+$`)

// Report is the outcome of validating a subtitle artifact.
type Report struct {
	Valid  bool
	Errors []string
}

// Validate parses the artifact at path and checks every cue: a bare integer
// index line, a strict timestamp-range line, and at least one line of text.
// It collects one descriptive error per violated cue instead of failing fast.
func Validate(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read artifact: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSpace(content)

	var errs []string
	if content == "" {
		return Report{Valid: false, Errors: []string{"artifact is empty"}}, nil
	}

	for i, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")

		if !bareIndex.MatchString(strings.TrimSpace(lines[0])) {
			errs = append(errs, fmt.Sprintf("entry %d: first line %q is not a bare integer index", i+1, lines[0]))
		}
		if len(lines) < 2 || !timestampLine.MatchString(strings.TrimSpace(lines[1])) {
			got := ""
			if len(lines) >= 2 {
				got = lines[1]
			}
			errs = append(errs, fmt.Sprintf("entry %d: timestamp line %q does not match HH:MM:SS,mmm --> HH:MM:SS,mmm", i+1, got))
		}
		if len(lines) < 3 || strings.TrimSpace(strings.Join(lines[2:], "")) == "" {
			errs = append(errs, fmt.Sprintf("entry %d: no caption text", i+1))
		}
	}

	return Report{Valid: len(errs) == 0, Errors: errs}, nil
}
