package media

import (
	"context"
	"fmt"
	"strings"
)

// ApplyCTA overlays the call-to-action text over the last cta.ShowSeconds of
// the video, writing the final output file. A nil cta falls back to the
// default overlay.
func (t *implTools) ApplyCTA(ctx context.Context, videoPath string, cta *CTAConfig, outputPath string) (string, error) {
	if cta == nil {
		cta = DefaultCTA()
	}

	duration, err := t.probeDuration(ctx, videoPath)
	if err != nil {
		return "", err
	}
	showFrom := duration - cta.ShowSeconds
	if showFrom < 0 {
		showFrom = 0
	}

	t.logger.Info(ctx, "Applying CTA %q over last %.1fs: %s", cta.Text, cta.ShowSeconds, videoPath)

	drawtext := fmt.Sprintf(
		"drawtext=text='%s':fontsize=%d:fontcolor=%s:borderw=3:bordercolor=black:x=(w-text_w)/2:y=h*0.75:enable='gte(t,%.3f)'",
		escapeDrawtext(cta.Text), cta.FontSize, cta.FontColor, showFrom,
	)

	args := []string{
		"-i", videoPath,
		"-vf", drawtext,
		"-c:v", t.cfg.FFmpeg.Encoder,
		"-preset", t.cfg.FFmpeg.Preset,
		"-b:v", t.cfg.FFmpeg.VideoBitrate,
		"-c:a", "copy",
		"-y",
		outputPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg apply cta: %w", err)
	}

	return outputPath, nil
}

// escapeDrawtext escapes the characters the drawtext filter treats specially.
func escapeDrawtext(text string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
		`%`, `\%`,
	)
	return r.Replace(text)
}
