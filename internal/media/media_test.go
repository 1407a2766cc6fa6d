package media

import (
	"context"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/shortclip/internal/config"
	"github.com/nguyentantai21042004/shortclip/internal/logger"
)

// recordingExecutor captures every invocation and returns canned output.
type recordingExecutor struct {
	calls  [][]string
	output map[string]string
}

func (r *recordingExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.output[name], nil
}

func (r *recordingExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return r.Execute(ctx, name, args...)
}

func (r *recordingExecutor) lastCall() []string {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func testTools(t *testing.T) (*implTools, *recordingExecutor) {
	t.Helper()
	cfg := &config.Config{
		FFmpeg: config.FFmpegConfig{
			Encoder:      "libx264",
			Preset:       "medium",
			VideoBitrate: "5M",
			AudioCodec:   "aac",
		},
	}
	exec := &recordingExecutor{output: map[string]string{}}
	return New(cfg, exec, logger.New("error")).(*implTools), exec
}

func argsContain(args []string, want ...string) bool {
	joined := " " + strings.Join(args, " ") + " "
	return strings.Contains(joined, " "+strings.Join(want, " ")+" ")
}

func TestExtractClipArgs(t *testing.T) {
	tools, exec := testTools(t)

	path, err := tools.ExtractClip(context.Background(), "source.mp4", 12.5, 30, t.TempDir())
	if err != nil {
		t.Fatalf("ExtractClip() error = %v", err)
	}
	if !strings.HasSuffix(path, ".mp4") {
		t.Errorf("clip path = %q", path)
	}

	call := exec.lastCall()
	if call[0] != "ffmpeg" {
		t.Fatalf("command = %q, want ffmpeg", call[0])
	}
	if !argsContain(call, "-ss", "12.500") {
		t.Errorf("missing seek offset in %v", call)
	}
	if !argsContain(call, "-t", "30.000") {
		t.Errorf("missing duration in %v", call)
	}
	if !argsContain(call, "-c", "copy") {
		t.Errorf("extract should stream copy: %v", call)
	}
	if !argsContain(call, "-avoid_negative_ts", "make_zero") {
		t.Errorf("missing timestamp fixup in %v", call)
	}
}

func TestConvertVerticalStyles(t *testing.T) {
	tests := []struct {
		style      string
		wantFilter string
	}{
		{"crop", "crop=ih*9/16:ih,scale=1080:1920"},
		{"fit", "pad=1080:1920"},
		{"blur", "boxblur=20"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			tools, exec := testTools(t)

			if _, err := tools.ConvertVertical(context.Background(), "clip.mp4", tt.style, t.TempDir()); err != nil {
				t.Fatalf("ConvertVertical() error = %v", err)
			}

			call := exec.lastCall()
			if !strings.Contains(strings.Join(call, " "), tt.wantFilter) {
				t.Errorf("style %q: filter %q not found in %v", tt.style, tt.wantFilter, call)
			}
			if !argsContain(call, "-c:v", "libx264") {
				t.Errorf("missing encoder in %v", call)
			}
		})
	}
}

func TestReplaceAudioArgs(t *testing.T) {
	tools, exec := testTools(t)

	if _, err := tools.ReplaceAudio(context.Background(), "video.mp4", "narration.mp3", t.TempDir()); err != nil {
		t.Fatalf("ReplaceAudio() error = %v", err)
	}

	call := exec.lastCall()
	if !argsContain(call, "-map", "0:v") || !argsContain(call, "-map", "1:a") {
		t.Errorf("missing stream maps in %v", call)
	}
	if !argsContain(call, "-c:v", "copy") {
		t.Errorf("video should be stream copied: %v", call)
	}
	if !argsContain(call, "-shortest") {
		t.Errorf("missing -shortest in %v", call)
	}
}

func TestApplyCTAArgs(t *testing.T) {
	tools, exec := testTools(t)
	exec.output["ffprobe"] = "30.0\n"

	out, err := tools.ApplyCTA(context.Background(), "video.mp4", &CTAConfig{
		Text:        "Follow: it's free!",
		FontSize:    48,
		FontColor:   "white",
		ShowSeconds: 3,
	}, "final.mp4")
	if err != nil {
		t.Fatalf("ApplyCTA() error = %v", err)
	}
	if out != "final.mp4" {
		t.Errorf("output path = %q", out)
	}

	call := exec.lastCall()
	joined := strings.Join(call, " ")
	if !strings.Contains(joined, "drawtext=") {
		t.Fatalf("missing drawtext filter in %v", call)
	}
	if !strings.Contains(joined, `enable='gte(t,27.000)'`) {
		t.Errorf("overlay should start at duration-3s: %v", call)
	}
	if !strings.Contains(joined, `Follow\: it\'s free!`) {
		t.Errorf("special characters not escaped for drawtext: %v", call)
	}
}

func TestApplyCTANilFallsBackToDefault(t *testing.T) {
	tools, exec := testTools(t)
	exec.output["ffprobe"] = "10\n"

	if _, err := tools.ApplyCTA(context.Background(), "video.mp4", nil, "final.mp4"); err != nil {
		t.Fatalf("ApplyCTA() error = %v", err)
	}

	joined := strings.Join(exec.lastCall(), " ")
	if !strings.Contains(joined, "Follow for more!") {
		t.Errorf("default CTA text not used: %s", joined)
	}
}
