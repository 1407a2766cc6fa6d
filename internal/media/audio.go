package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ReplaceAudio swaps the video's audio track for the synthesized narration.
// Video is stream-copied; -shortest trims whichever track runs longer.
func (t *implTools) ReplaceAudio(ctx context.Context, videoPath, audioPath, destDir string) (string, error) {
	outPath := filepath.Join(destDir, fmt.Sprintf("narrated_%s.mp4", uuid.NewString()))

	t.logger.Info(ctx, "Replacing audio track: %s + %s", videoPath, audioPath)

	args := []string{
		"-i", videoPath,
		"-i", audioPath,
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "copy",
		"-c:a", t.cfg.FFmpeg.AudioCodec,
		"-shortest",
		"-y",
		outPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg replace audio: %w", err)
	}

	return outPath, nil
}

// probeDuration reads the container duration in seconds.
func (t *implTools) probeDuration(ctx context.Context, path string) (float64, error) {
	out, err := t.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}
	dur, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(out), err)
	}
	return dur, nil
}
