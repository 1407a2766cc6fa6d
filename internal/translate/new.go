package translate

import (
	"github.com/nguyentantai21042004/shortclip/internal/logger"
)

type implTranslator struct {
	apiKeys        []string
	currentKey     int
	model          string
	sourceLanguage string
	logger         logger.Logger
}

// New creates a Translator that rotates through the supplied Gemini API keys.
// Text already in sourceLanguage passes through unchanged.
func New(apiKeys []string, model, sourceLanguage string, log logger.Logger) Translator {
	return &implTranslator{
		apiKeys:        apiKeys,
		model:          model,
		sourceLanguage: sourceLanguage,
		logger:         log,
	}
}
