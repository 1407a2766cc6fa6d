package media

import (
	"github.com/nguyentantai21042004/shortclip/internal/config"
	"github.com/nguyentantai21042004/shortclip/internal/logger"
	"github.com/nguyentantai21042004/shortclip/pkg/executor"
)

type implTools struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Tools instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Tools {
	return &implTools{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
