package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// ExtractClip cuts [startTime, startTime+duration] out of the source video
// into a temp clip. Stream copy keeps this fast; re-encoding happens later
// in the vertical conversion anyway.
func (t *implTools) ExtractClip(ctx context.Context, sourcePath string, startTime, duration float64, destDir string) (string, error) {
	clipPath := filepath.Join(destDir, fmt.Sprintf("clip_%s.mp4", uuid.NewString()))

	t.logger.Info(ctx, "Extracting clip [%.2fs +%.2fs]: %s", startTime, duration, sourcePath)

	args := []string{
		"-ss", formatSeconds(startTime),
		"-i", sourcePath,
		"-t", formatSeconds(duration),
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		"-y",
		clipPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract clip: %w", err)
	}

	return clipPath, nil
}

// ConvertVertical reshapes a clip to 9:16 (1080x1920) using one of three
// filter strategies: crop (center crop), blur (blurred pillarbox background),
// or fit (letterbox on black).
func (t *implTools) ConvertVertical(ctx context.Context, clipPath, style, destDir string) (string, error) {
	outPath := filepath.Join(destDir, fmt.Sprintf("vertical_%s.mp4", uuid.NewString()))

	t.logger.Info(ctx, "Converting to vertical (%s): %s", style, clipPath)

	args := []string{"-i", clipPath}
	switch style {
	case "blur":
		args = append(args,
			"-filter_complex",
			"[0:v]scale=1080:1920:force_original_aspect_ratio=increase,crop=1080:1920,boxblur=20[bg];"+
				"[0:v]scale=1080:-2[fg];[bg][fg]overlay=(W-w)/2:(H-h)/2",
		)
	case "fit":
		args = append(args, "-vf", "scale=1080:-2,pad=1080:1920:(ow-iw)/2:(oh-ih)/2:black")
	default: // crop
		args = append(args, "-vf", "crop=ih*9/16:ih,scale=1080:1920")
	}
	args = append(args,
		"-c:v", t.cfg.FFmpeg.Encoder,
		"-preset", t.cfg.FFmpeg.Preset,
		"-b:v", t.cfg.FFmpeg.VideoBitrate,
		"-c:a", "copy",
		"-y",
		outPath,
	)

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg vertical convert: %w", err)
	}

	return outPath, nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
