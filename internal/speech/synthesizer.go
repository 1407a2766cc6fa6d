package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/shortclip/internal/cost"
	"github.com/nguyentantai21042004/shortclip/internal/language"
	"github.com/nguyentantai21042004/shortclip/internal/logger"
	"github.com/nguyentantai21042004/shortclip/pkg/executor"
)

type implSynthesizer struct {
	command  string
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Synthesizer backed by an external TTS command. The command
// must accept --voice, --text and --write-media flags (the edge-tts contract).
func New(command, tempDir string, exec executor.Executor, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		command:  command,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}

// Synthesize runs the TTS command and returns the generated audio bytes
// along with the synthesis cost for the input text. The cost applies the
// language price multiplier, so it can diverge from a pre-flight estimate
// made against source-language text.
func (s *implSynthesizer) Synthesize(ctx context.Context, text, voiceID, languageCode string) (Audio, error) {
	if voiceID == "" {
		return Audio{}, fmt.Errorf("voice id is required")
	}

	outPath := filepath.Join(s.tempDir, fmt.Sprintf("tts_%s.mp3", uuid.NewString()))
	defer os.Remove(outPath)

	s.logger.Info(ctx, "Synthesizing %d chars with voice %s", len(text), voiceID)

	args := []string{
		"--voice", voiceID,
		"--text", text,
		"--write-media", outPath,
	}
	if _, err := s.executor.Execute(ctx, s.command, args...); err != nil {
		return Audio{}, fmt.Errorf("tts synthesize: %w", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return Audio{}, fmt.Errorf("read tts output: %w", err)
	}
	if len(data) == 0 {
		return Audio{}, fmt.Errorf("tts produced empty audio for voice %s", voiceID)
	}

	return Audio{
		Data: data,
		Cost: cost.ForLanguage(text, language.PriceMultiplier(languageCode)),
	}, nil
}
