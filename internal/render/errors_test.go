package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCollaboratorErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("socket timeout")
	err := error(&CollaboratorError{Stage: StageSynthesizing, Err: cause})

	if !strings.Contains(err.Error(), "synthesizing") {
		t.Errorf("message %q should name the stage", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}

	var ce *CollaboratorError
	if !errors.As(err, &ce) || ce.Stage != StageSynthesizing {
		t.Error("errors.As should recover the stage")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "languages", Reason: `unsupported language "xx"`}
	if !strings.Contains(err.Error(), "languages") || !strings.Contains(err.Error(), "xx") {
		t.Errorf("message %q should carry field and reason", err.Error())
	}
}

func TestIOErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := error(&IOError{Path: "/tmp/x.mp3", Err: cause})

	if !strings.Contains(err.Error(), "/tmp/x.mp3") {
		t.Errorf("message %q should carry the path", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
}
