package caption

import (
	"math"
	"os"
	"strings"
	"testing"
)

func TestAssColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FFFFFF", "&HFFFFFF"},
		{"#FF0000", "&H0000FF"},
		{"#00FF00", "&H00FF00"},
		{"#0000FF", "&HFF0000"},
		{"FFCC00", "&H00CCFF"},
		{"bad", "&HFFFFFF"},
	}

	for _, tt := range tests {
		if got := assColor(tt.in); got != tt.want {
			t.Errorf("assColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStyleAlignment(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  int
	}{
		{"explicit wins", Style{Alignment: 7, Position: "bottom"}, 7},
		{"bottom", Style{Position: "bottom"}, 2},
		{"middle", Style{Position: "middle"}, 5},
		{"top", Style{Position: "top"}, 8},
		{"default", Style{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.alignment(); got != tt.want {
				t.Errorf("alignment() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestForceStyle(t *testing.T) {
	s := DefaultStyle()
	got := s.ForceStyle()

	for _, want := range []string{
		"FontName=Arial",
		"FontSize=24",
		"PrimaryColour=&HFFFFFF",
		"OutlineColour=&H000000",
		"Outline=2",
		"Bold=1",
		"Alignment=2",
		"MarginV=60",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ForceStyle() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "BackColour") {
		t.Errorf("ForceStyle() = %q, should not set BackColour without a box color", got)
	}
}

func TestEstimateWordTimings(t *testing.T) {
	seg := Segment{Text: "one two three four", Start: 10, End: 12}

	timings := EstimateWordTimings(seg)
	if len(timings) != 4 {
		t.Fatalf("got %d timings, want 4", len(timings))
	}
	if timings[0].Start != 10 {
		t.Errorf("first word starts at %v, want 10", timings[0].Start)
	}
	if math.Abs(timings[3].End-12) > 1e-9 {
		t.Errorf("last word ends at %v, want 12", timings[3].End)
	}
	per := 0.5
	for i, w := range timings {
		wantStart := 10 + float64(i)*per
		if math.Abs(w.Start-wantStart) > 1e-9 {
			t.Errorf("word %d start = %v, want %v", i, w.Start, wantStart)
		}
	}
}

func TestEstimateWordTimingsEmpty(t *testing.T) {
	if got := EstimateWordTimings(Segment{Text: "   ", Start: 0, End: 1}); got != nil {
		t.Errorf("expected nil for empty segment, got %v", got)
	}
}

func TestFormatASSTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00.00"},
		{75.4, "0:01:15.40"},
		{3661.0, "1:01:01.00"},
	}

	for _, tt := range tests {
		if got := formatASSTimestamp(tt.seconds); got != tt.want {
			t.Errorf("formatASSTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestRenderASS(t *testing.T) {
	segments := []Segment{{Text: "hello world", Start: 0, End: 1}}
	content := RenderASS(segments, nil, DefaultStyle())

	for _, want := range []string{
		"[Script Info]",
		"[V4+ Styles]",
		"[Events]",
		"Style: Default,Arial,24",
		"Dialogue: 0,0:00:00.00,0:00:00.50,Default",
		"{\\c&H00FFFF&}hello{\\c&HFFFFFF&} world",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("RenderASS() missing %q in:\n%s", want, content)
		}
	}

	// One event per word.
	if got := strings.Count(content, "Dialogue:"); got != 2 {
		t.Errorf("got %d dialogue events, want 2", got)
	}
}

func TestWriteASSExplicitTimings(t *testing.T) {
	dir := t.TempDir()
	segments := []Segment{{Text: "hi there", Start: 0, End: 2}}
	timings := [][]WordTiming{{
		{Word: "hi", Start: 0, End: 0.6},
		{Word: "there", Start: 0.6, End: 2},
	}}

	path, err := WriteASS(segments, timings, DefaultStyle(), dir)
	if err != nil {
		t.Fatalf("WriteASS() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "0:00:00.60") {
		t.Errorf("explicit timing not honored:\n%s", data)
	}
}

func TestWriteASSTimingMismatch(t *testing.T) {
	segments := []Segment{{Text: "a", Start: 0, End: 1}, {Text: "b", Start: 1, End: 2}}
	if _, err := WriteASS(segments, [][]WordTiming{nil}, DefaultStyle(), t.TempDir()); err == nil {
		t.Error("expected error for mismatched timings length")
	}
}
