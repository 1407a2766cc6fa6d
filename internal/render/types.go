// Package render is the batch orchestrator: it expands a batch definition
// into (moment, language) jobs, drives each job through the nine-stage
// pipeline, and reduces the outcomes into a single result. A failed job
// never aborts the batch.
package render

import (
	"time"

	"github.com/nguyentantai21042004/shortclip/internal/caption"
	"github.com/nguyentantai21042004/shortclip/internal/media"
)

// Moment is a candidate highlight selected from the source video. Produced
// by moment discovery upstream; immutable here.
type Moment struct {
	Index          int     `yaml:"index"`
	StartTime      float64 `yaml:"start_time"`
	EndTime        float64 `yaml:"end_time"`
	Duration       float64 `yaml:"duration"`
	Caption        string  `yaml:"caption"`
	Hook           string  `yaml:"hook"`
	KeyMessage     string  `yaml:"key_message"`
	ViralPotential int     `yaml:"viral_potential"`
}

// BatchConfig describes one batch: every moment is rendered once per
// language. Owned by the caller and read-only to the orchestrator.
type BatchConfig struct {
	SourceVideoPath string            `yaml:"source_video"`
	Moments         []Moment          `yaml:"moments"`
	Languages       []string          `yaml:"languages"`
	VoiceID         string            `yaml:"voice_id"`
	OutputDir       string            `yaml:"output_dir"`
	CaptionStyle    *caption.Style    `yaml:"caption_style"`
	CTA             *media.CTAConfig  `yaml:"cta"`
}

// Job is one (moment, language) pair, the unit of work and of failure.
type Job struct {
	Moment   Moment
	Language string
}

// RenderedVideo is the outcome of one successful job.
type RenderedVideo struct {
	MomentIndex     int
	Language        string
	Path            string
	Caption         string
	DurationSeconds float64
	SizeBytes       int64
}

// JobError records one failed job.
type JobError struct {
	MomentIndex int
	Language    string
	Message     string
	Timestamp   time.Time
}

// BatchResult aggregates a whole batch. Videos plus Errors always account
// for every job; Errors is nil when nothing failed.
type BatchResult struct {
	Videos                []RenderedVideo
	TotalCount            int
	TotalCost             float64
	CostPerVideo          float64
	ProcessingTimeSeconds float64
	Errors                []JobError
}

// jobOutcome is what a pool worker hands back for one job.
type jobOutcome struct {
	video *RenderedVideo
	cost  float64
	err   *JobError
}
