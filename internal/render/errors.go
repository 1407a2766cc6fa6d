package render

import "fmt"

// Stage identifies a step of the per-job pipeline.
type Stage string

const (
	StageExtracting         Stage = "extracting"
	StageConverting         Stage = "converting"
	StageTranslating        Stage = "translating"
	StageSynthesizing       Stage = "synthesizing"
	StageSavingAudio        Stage = "saving_audio"
	StageTranscribing       Stage = "transcribing"
	StageGeneratingCaptions Stage = "generating_captions"
	StageBurning            Stage = "replacing_audio_and_burning"
	StageApplyingCTA        Stage = "applying_cta"
)

// CollaboratorError tags a failure from an external collaborator call with
// the pipeline stage it occurred in. These are the potentially retryable
// failures.
type CollaboratorError struct {
	Stage Stage
	Err   error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// ValidationError tags a permanent input problem, such as an unsupported
// language code. Retrying cannot fix these.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IOError tags a local filesystem failure with the path involved.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io failure at %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
