package watcher

import "context"

// Watcher monitors a drop directory for new batch files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles a newly dropped batch file.
type EventHandler func(ctx context.Context, filePath string) error
