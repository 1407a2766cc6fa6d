package render

import (
	"context"
	"os"
	"sync"

	"github.com/nguyentantai21042004/shortclip/internal/logger"
)

// tempRegistry tracks the intermediate files one job creates. It is
// job-scoped: the owning job drains it on every exit path, so a crash
// mid-batch can leak at most the in-flight jobs' files.
type tempRegistry struct {
	mu     sync.Mutex
	paths  []string
	logger logger.Logger
}

func newTempRegistry(log logger.Logger) *tempRegistry {
	return &tempRegistry{logger: log}
}

func (r *tempRegistry) add(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

// drain deletes every registered path. Deletion failures are logged, never
// raised; cleanup must not turn a succeeded job into a failed one.
func (r *tempRegistry) drain(ctx context.Context) {
	r.mu.Lock()
	paths := r.paths
	r.paths = nil
	r.mu.Unlock()

	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			r.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
		} else {
			r.logger.Debug(ctx, "Cleaned up temp file: %s", path)
		}
	}
}
