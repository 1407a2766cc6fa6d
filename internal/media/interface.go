package media

import "context"

// Tools defines the ffmpeg-backed video operations the render pipeline needs
type Tools interface {
	ExtractClip(ctx context.Context, sourcePath string, startTime, duration float64, destDir string) (string, error)
	ConvertVertical(ctx context.Context, clipPath, style, destDir string) (string, error)
	ReplaceAudio(ctx context.Context, videoPath, audioPath, destDir string) (string, error)
	ApplyCTA(ctx context.Context, videoPath string, cta *CTAConfig, outputPath string) (string, error)
}

// CTAConfig describes the call-to-action overlay drawn near the end of a
// rendered clip.
type CTAConfig struct {
	Text        string  `yaml:"text"`
	FontSize    int     `yaml:"font_size"`
	FontColor   string  `yaml:"font_color"`
	ShowSeconds float64 `yaml:"show_seconds"`
}

// DefaultCTA is used when a batch supplies no CTA configuration.
func DefaultCTA() *CTAConfig {
	return &CTAConfig{
		Text:        "Follow for more!",
		FontSize:    48,
		FontColor:   "white",
		ShowSeconds: 3,
	}
}
