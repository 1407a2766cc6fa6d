package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// RenderBatch runs every (moment, language) job of the batch through the
// pipeline and reduces the outcomes. Jobs run on a bounded worker pool;
// a job failure is recorded and the batch continues. The returned error is
// non-nil only for precondition failures, never for job failures.
func (o *Orchestrator) RenderBatch(ctx context.Context, batch BatchConfig) (*BatchResult, error) {
	if err := validateBatch(batch); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(batch.OutputDir, 0755); err != nil {
		return nil, &IOError{Path: batch.OutputDir, Err: err}
	}
	if err := os.MkdirAll(o.cfg.Paths.Temp, 0755); err != nil {
		return nil, &IOError{Path: o.cfg.Paths.Temp, Err: err}
	}

	// One writer per output directory. A second batch aimed at the same dir
	// fails fast instead of interleaving files.
	lock := flock.New(filepath.Join(batch.OutputDir, ".shortclip.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, &IOError{Path: lock.Path(), Err: err}
	}
	if !locked {
		return nil, fmt.Errorf("another batch is already rendering into %s", batch.OutputDir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			o.logger.Warn(ctx, "Failed to release batch lock: %v", err)
			return
		}
		// The delivered directory should hold rendered videos only.
		if err := os.Remove(lock.Path()); err != nil && !os.IsNotExist(err) {
			o.logger.Debug(ctx, "Failed to remove batch lock file: %v", err)
		}
	}()

	start := time.Now()
	jobs := expandJobs(batch)

	o.logger.Info(ctx, "Starting batch: %d moments x %d languages = %d jobs (max concurrent: %d)",
		len(batch.Moments), len(batch.Languages), len(jobs), o.cfg.Performance.MaxConcurrent)

	outcomes := o.runPool(ctx, batch, jobs)

	result := &BatchResult{}
	for _, out := range outcomes {
		if out.err != nil {
			result.Errors = append(result.Errors, *out.err)
			continue
		}
		result.Videos = append(result.Videos, *out.video)
		result.TotalCost += out.cost
	}
	result.TotalCount = len(result.Videos)
	if result.TotalCount > 0 {
		result.CostPerVideo = result.TotalCost / float64(result.TotalCount)
	}
	result.ProcessingTimeSeconds = time.Since(start).Seconds()

	o.logger.Info(ctx, "Batch finished: %d rendered, %d failed, $%.4f accrued in %.1fs",
		result.TotalCount, len(result.Errors), result.TotalCost, result.ProcessingTimeSeconds)

	return result, nil
}

// expandJobs builds the ordered cross product: moments in input order, each
// fanned out over languages in input order.
func expandJobs(batch BatchConfig) []Job {
	jobs := make([]Job, 0, len(batch.Moments)*len(batch.Languages))
	for _, m := range batch.Moments {
		for _, lang := range batch.Languages {
			jobs = append(jobs, Job{Moment: m, Language: lang})
		}
	}
	return jobs
}

// runPool fans the jobs out over a bounded pool and collects one outcome per
// job. Once the context is canceled, remaining jobs are recorded as failed
// rather than silently skipped.
func (o *Orchestrator) runPool(ctx context.Context, batch BatchConfig, jobs []Job) []jobOutcome {
	sem := newSemaphore(o.cfg.Performance.MaxConcurrent)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes = make([]jobOutcome, 0, len(jobs))
	)
	collect := func(out jobOutcome) {
		mu.Lock()
		outcomes = append(outcomes, out)
		mu.Unlock()
	}

	for _, job := range jobs {
		if err := sem.acquire(ctx); err != nil {
			collect(jobOutcome{err: newJobError(job, err)})
			continue
		}

		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			defer sem.release()

			video, jobCost, err := o.renderSingle(ctx, batch, job)
			if err != nil {
				collect(jobOutcome{err: newJobError(job, err)})
				return
			}
			collect(jobOutcome{video: &video, cost: jobCost})
		}(job)
	}

	wg.Wait()
	return outcomes
}

func newJobError(job Job, err error) *JobError {
	return &JobError{
		MomentIndex: job.Moment.Index,
		Language:    job.Language,
		Message:     err.Error(),
		Timestamp:   time.Now(),
	}
}

func validateBatch(batch BatchConfig) error {
	if batch.SourceVideoPath == "" {
		return &ValidationError{Field: "source_video", Reason: "path is required"}
	}
	if len(batch.Moments) == 0 {
		return &ValidationError{Field: "moments", Reason: "at least one moment is required"}
	}
	if len(batch.Languages) == 0 {
		return &ValidationError{Field: "languages", Reason: "at least one language is required"}
	}
	if batch.VoiceID == "" {
		return &ValidationError{Field: "voice_id", Reason: "voice id is required"}
	}
	if batch.OutputDir == "" {
		return &ValidationError{Field: "output_dir", Reason: "output directory is required"}
	}
	return nil
}
