package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/shortclip/internal/caption"
	"github.com/nguyentantai21042004/shortclip/internal/language"
)

// renderSingle runs one job through the pipeline stages in order:
// extract -> convert -> translate -> synthesize -> save audio -> transcribe
// -> generate captions -> replace audio and burn -> apply CTA. The first
// failing stage aborts the job; there are no automatic retries. Temp files
// the job registered are drained on every exit path.
func (o *Orchestrator) renderSingle(ctx context.Context, batch BatchConfig, job Job) (RenderedVideo, float64, error) {
	m := job.Moment
	lang := job.Language
	log := o.logger.WithPrefix(fmt.Sprintf("[moment %d/%s]", m.Index, lang))

	reg := newTempRegistry(log)
	defer reg.drain(ctx)

	if err := language.Validate(lang); err != nil {
		return RenderedVideo{}, 0, &ValidationError{Field: "languages", Reason: err.Error()}
	}

	tempDir := o.cfg.Paths.Temp

	// Extracting
	clipPath, err := o.collabs.Media.ExtractClip(ctx, batch.SourceVideoPath, m.StartTime, m.Duration, tempDir)
	if err != nil {
		return RenderedVideo{}, 0, &CollaboratorError{Stage: StageExtracting, Err: err}
	}
	reg.add(clipPath)

	// Converting
	verticalPath, err := o.collabs.Media.ConvertVertical(ctx, clipPath, o.cfg.Render.AspectStyle, tempDir)
	if err != nil {
		return RenderedVideo{}, 0, &CollaboratorError{Stage: StageConverting, Err: err}
	}
	reg.add(verticalPath)

	// Translating (identity when the target is the source language)
	translated, err := o.collabs.Translator.Translate(ctx, m.Caption, lang)
	if err != nil {
		return RenderedVideo{}, 0, &CollaboratorError{Stage: StageTranslating, Err: err}
	}

	// Synthesizing
	audio, err := o.collabs.Synthesizer.Synthesize(ctx, translated, batch.VoiceID, lang)
	if err != nil {
		return RenderedVideo{}, 0, &CollaboratorError{Stage: StageSynthesizing, Err: err}
	}

	// SavingAudio
	audioPath := filepath.Join(tempDir, fmt.Sprintf("narration_%s.mp3", uuid.NewString()))
	if err := os.WriteFile(audioPath, audio.Data, 0644); err != nil {
		return RenderedVideo{}, 0, &IOError{Path: audioPath, Err: err}
	}
	reg.add(audioPath)

	// Transcribing the narration, so caption timing matches what viewers
	// hear rather than the original clip.
	segments, err := o.collabs.Transcriber.Transcribe(ctx, audioPath, lang)
	if err != nil {
		return RenderedVideo{}, 0, &CollaboratorError{Stage: StageTranscribing, Err: err}
	}

	// GeneratingCaptions: a plain SRT artifact by default, or the ASS
	// word-highlight variant when the style asks for dynamic captions.
	style := caption.DefaultStyle()
	if batch.CaptionStyle != nil {
		style = *batch.CaptionStyle
	}
	var artifactPath string
	if style.Dynamic {
		artifactPath, err = caption.WriteASS(segments, nil, style, tempDir)
	} else {
		artifactPath, err = caption.WriteSRT(segments, caption.Options{Language: lang, Dir: tempDir})
	}
	if err != nil {
		return RenderedVideo{}, 0, &IOError{Path: tempDir, Err: err}
	}
	reg.add(artifactPath)

	// ReplacingAudioAndBurning
	narratedPath, err := o.collabs.Media.ReplaceAudio(ctx, verticalPath, audioPath, tempDir)
	if err != nil {
		return RenderedVideo{}, 0, &CollaboratorError{Stage: StageBurning, Err: err}
	}
	reg.add(narratedPath)

	burnedPath := filepath.Join(tempDir, fmt.Sprintf("burned_%s.mp4", uuid.NewString()))
	if _, err := caption.Burn(ctx, o.executor, narratedPath, artifactPath, style, burnedPath); err != nil {
		return RenderedVideo{}, 0, &CollaboratorError{Stage: StageBurning, Err: err}
	}
	reg.add(burnedPath)

	// ApplyingCTA renders into the temp dir; the result moves into the
	// output directory only once the job has fully succeeded, so a failed
	// job leaves no file behind there.
	ctaPath := filepath.Join(tempDir, fmt.Sprintf("cta_%s.mp4", uuid.NewString()))
	reg.add(ctaPath)
	if _, err := o.collabs.Media.ApplyCTA(ctx, burnedPath, batch.CTA, ctaPath); err != nil {
		return RenderedVideo{}, 0, &CollaboratorError{Stage: StageApplyingCTA, Err: err}
	}

	// Completed
	outputPath := filepath.Join(batch.OutputDir, fmt.Sprintf("moment_%d_%s.mp4", m.Index, lang))
	if err := os.Rename(ctaPath, outputPath); err != nil {
		return RenderedVideo{}, 0, &IOError{Path: outputPath, Err: err}
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return RenderedVideo{}, 0, &IOError{Path: outputPath, Err: err}
	}

	log.Info(ctx, "Rendered %s (%d bytes, $%.4f)", outputPath, info.Size(), audio.Cost)

	return RenderedVideo{
		MomentIndex:     m.Index,
		Language:        lang,
		Path:            outputPath,
		Caption:         translated,
		DurationSeconds: m.Duration,
		SizeBytes:       info.Size(),
	}, audio.Cost, nil
}
