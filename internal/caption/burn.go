package caption

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/shortclip/pkg/executor"
)

// Burn overlays the subtitle artifact onto the video's visual track and
// copies the audio track unchanged. The command runs in the artifact's
// directory so the subtitles filter sees a bare relative filename and no
// filter-escaping is needed.
func Burn(ctx context.Context, exec executor.Executor, videoPath, artifactPath string, style Style, outputPath string) (string, error) {
	workDir := filepath.Dir(artifactPath)
	artifactName := filepath.Base(artifactPath)

	absVideo, err := filepath.Abs(videoPath)
	if err != nil {
		return "", fmt.Errorf("resolve video path: %w", err)
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}

	args := []string{
		"-y",
		"-i", absVideo,
		"-vf", fmt.Sprintf("subtitles=%s:force_style='%s'", artifactName, style.ForceStyle()),
		"-c:a", "copy",
		absOutput,
	}

	if _, err := exec.ExecuteInDir(ctx, workDir, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("burn subtitles: %w", err)
	}
	return outputPath, nil
}
