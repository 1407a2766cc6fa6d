// Package history persists batch outcomes to SQLite so operators can audit
// what was rendered, what failed, and what it cost.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nguyentantai21042004/shortclip/internal/render"
)

// Store manages batch history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// BatchRecord is one row of the batches table.
type BatchRecord struct {
	ID          string
	SourceVideo string
	StartedAt   time.Time
	VideoCount  int
	ErrorCount  int
	TotalCost   float64
	Seconds     float64
}

// Open initializes or connects to the history database and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) applySchema(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS batches (
            id TEXT PRIMARY KEY,
            source_video TEXT NOT NULL,
            started_at TEXT NOT NULL,
            video_count INTEGER NOT NULL,
            error_count INTEGER NOT NULL,
            total_cost REAL NOT NULL,
            processing_seconds REAL NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS videos (
            batch_id TEXT NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
            moment_index INTEGER NOT NULL,
            language TEXT NOT NULL,
            path TEXT NOT NULL,
            caption TEXT NOT NULL,
            duration_seconds REAL NOT NULL,
            size_bytes INTEGER NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS job_errors (
            batch_id TEXT NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
            moment_index INTEGER NOT NULL,
            language TEXT NOT NULL,
            message TEXT NOT NULL,
            occurred_at TEXT NOT NULL
        )`,
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// SaveBatch records a finished batch with its videos and errors in one
// transaction.
func (s *Store) SaveBatch(ctx context.Context, batchID string, batch render.BatchConfig, result *render.BatchResult, startedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO batches (id, source_video, started_at, video_count, error_count, total_cost, processing_seconds)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		batchID,
		batch.SourceVideoPath,
		startedAt.UTC().Format(time.RFC3339Nano),
		len(result.Videos),
		len(result.Errors),
		result.TotalCost,
		result.ProcessingTimeSeconds,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	for _, v := range result.Videos {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO videos (batch_id, moment_index, language, path, caption, duration_seconds, size_bytes)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			batchID, v.MomentIndex, v.Language, v.Path, v.Caption, v.DurationSeconds, v.SizeBytes,
		)
		if err != nil {
			return fmt.Errorf("insert video: %w", err)
		}
	}

	for _, e := range result.Errors {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO job_errors (batch_id, moment_index, language, message, occurred_at)
             VALUES (?, ?, ?, ?, ?)`,
			batchID, e.MomentIndex, e.Language, e.Message, e.Timestamp.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert job error: %w", err)
		}
	}

	return tx.Commit()
}

// ListBatches returns batches in reverse chronological order.
func (s *Store) ListBatches(ctx context.Context, limit int) ([]BatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_video, started_at, video_count, error_count, total_cost, processing_seconds
         FROM batches ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	var records []BatchRecord
	for rows.Next() {
		var rec BatchRecord
		var started string
		if err := rows.Scan(&rec.ID, &rec.SourceVideo, &started, &rec.VideoCount, &rec.ErrorCount, &rec.TotalCost, &rec.Seconds); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, started); parseErr == nil {
			rec.StartedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// BatchVideos returns the rendered videos recorded for one batch.
func (s *Store) BatchVideos(ctx context.Context, batchID string) ([]render.RenderedVideo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT moment_index, language, path, caption, duration_seconds, size_bytes
         FROM videos WHERE batch_id = ? ORDER BY moment_index, language`, batchID)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}
	defer rows.Close()

	var videos []render.RenderedVideo
	for rows.Next() {
		var v render.RenderedVideo
		if err := rows.Scan(&v.MomentIndex, &v.Language, &v.Path, &v.Caption, &v.DurationSeconds, &v.SizeBytes); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}
