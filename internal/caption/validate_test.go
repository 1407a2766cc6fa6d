package caption

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.srt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateWellFormed(t *testing.T) {
	path := writeArtifact(t, "1\n00:00:00,000 --> 00:00:02,500\nFirst cue\n\n"+
		"2\n00:00:02,500 --> 00:00:05,000\nSecond cue\n")

	report, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !report.Valid {
		t.Errorf("Valid = false, errors: %v", report.Errors)
	}
	if len(report.Errors) != 0 {
		t.Errorf("Errors = %v, want none", report.Errors)
	}
}

func TestValidateBadTimestampSeparators(t *testing.T) {
	path := writeArtifact(t, "1\n00:00:00,000 --> 00:00:02,500\nFirst cue\n\n"+
		"2\n00:00:02.500 -> 00:00:05.000\nSecond cue\n")

	report, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if report.Valid {
		t.Error("Valid = true, want false")
	}
	if len(report.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", report.Errors)
	}
	if !strings.Contains(report.Errors[0], "entry 2") {
		t.Errorf("error %q should name entry 2", report.Errors[0])
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	path := writeArtifact(t, "one\nbad timestamp\n\n"+
		"2\n00:00:02,500 --> 00:00:05,000\n")

	report, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if report.Valid {
		t.Error("Valid = true, want false")
	}
	// Entry 1: bad index, bad timestamp, no text. Entry 2: no text.
	if len(report.Errors) != 4 {
		t.Errorf("Errors = %v, want 4 violations", report.Errors)
	}
}

func TestValidateEmptyArtifact(t *testing.T) {
	path := writeArtifact(t, "")

	report, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if report.Valid {
		t.Error("Valid = true, want false")
	}
}

func TestValidateMissingFile(t *testing.T) {
	_, err := Validate(filepath.Join(t.TempDir(), "absent.srt"))
	if err == nil {
		t.Error("Validate() should return error for missing file")
	}
}
