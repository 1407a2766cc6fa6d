package render

import (
	"github.com/nguyentantai21042004/shortclip/internal/config"
	"github.com/nguyentantai21042004/shortclip/internal/logger"
	"github.com/nguyentantai21042004/shortclip/internal/media"
	"github.com/nguyentantai21042004/shortclip/internal/speech"
	"github.com/nguyentantai21042004/shortclip/internal/transcribe"
	"github.com/nguyentantai21042004/shortclip/internal/translate"
	"github.com/nguyentantai21042004/shortclip/pkg/executor"
)

// Collaborators are the external services each job calls. The orchestrator
// depends only on these interfaces; tests swap in fakes.
type Collaborators struct {
	Media       media.Tools
	Translator  translate.Translator
	Synthesizer speech.Synthesizer
	Transcriber transcribe.Transcriber
}

// Orchestrator drives batches. Construct one per process and pass it where
// needed; there is no package-level instance.
type Orchestrator struct {
	cfg      *config.Config
	collabs  Collaborators
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Orchestrator instance
func New(cfg *config.Config, collabs Collaborators, exec executor.Executor, log logger.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		collabs:  collabs,
		executor: exec,
		logger:   log,
	}
}
