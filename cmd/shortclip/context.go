package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/shortclip/internal/config"
	"github.com/nguyentantai21042004/shortclip/internal/logger"
	"github.com/nguyentantai21042004/shortclip/internal/media"
	"github.com/nguyentantai21042004/shortclip/internal/render"
	"github.com/nguyentantai21042004/shortclip/internal/speech"
	"github.com/nguyentantai21042004/shortclip/internal/transcribe"
	"github.com/nguyentantai21042004/shortclip/internal/translate"
	"github.com/nguyentantai21042004/shortclip/pkg/executor"
)

// commandContext lazily loads configuration and wires collaborators so
// subcommands share one setup path.
type commandContext struct {
	configFlag *string

	cfg *config.Config
	log logger.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureConfig loads the config file once, applies defaults, and builds the
// logger. A missing .env is fine; set variables win over file values.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", *c.configFlag, err)
	}

	c.cfg = cfg
	c.log = logger.New(cfg.Logging.Level)
	return cfg, nil
}

func (c *commandContext) geminiKeys() ([]string, error) {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GEMINI_API_KEY")
	}
	if raw == "" {
		return nil, fmt.Errorf("GEMINI_API_KEYS is not set")
	}

	var keys []string
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("GEMINI_API_KEYS contains no usable keys")
	}
	return keys, nil
}

// buildOrchestrator wires the real collaborators around the shared executor.
func (c *commandContext) buildOrchestrator() (*render.Orchestrator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	keys, err := c.geminiKeys()
	if err != nil {
		return nil, err
	}

	exec := executor.New()
	collabs := render.Collaborators{
		Media:       media.New(cfg, exec, c.log),
		Translator:  translate.New(keys, cfg.Gemini.Model, cfg.Render.SourceLanguage, c.log),
		Synthesizer: speech.New(cfg.TTS.Command, cfg.Paths.Temp, exec, c.log),
		Transcriber: transcribe.New(cfg.Whisper, exec, c.log),
	}

	return render.New(cfg, collabs, exec, c.log), nil
}
