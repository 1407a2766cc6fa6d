package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/shortclip/internal/caption"
	"github.com/nguyentantai21042004/shortclip/internal/config"
	"github.com/nguyentantai21042004/shortclip/internal/language"
	"github.com/nguyentantai21042004/shortclip/internal/logger"
	"github.com/nguyentantai21042004/shortclip/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by a whisper.cpp binary.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Transcribe runs whisper over the narration audio and parses the SRT it
// writes into segments. The timing comes from the synthesized narration, not
// the original clip, which is the point: captions must match what viewers
// actually hear.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, languageCode string) ([]caption.Segment, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing narration (%d threads): %s", t.cfg.Threads, audioPath)

	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", language.Normalize(languageCode),
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	defer os.Remove(srtPath)

	segments, err := caption.ParseSRT(srtPath)
	if err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("whisper produced no segments for %s", audioPath)
	}

	t.logger.Info(ctx, "Transcription completed: %d segments", len(segments))
	return segments, nil
}
