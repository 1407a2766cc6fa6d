package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
					ModelPath:  "models/test.bin",
				},
				TTS: TTSConfig{
					Command: "edge-tts",
				},
			},
			wantErr: false,
		},
		{
			name: "missing whisper binary",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath: "models/test.bin",
				},
				TTS: TTSConfig{
					Command: "edge-tts",
				},
			},
			wantErr: true,
		},
		{
			name: "missing tts command",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
					ModelPath:  "models/test.bin",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{BinaryPath: "./whisper", ModelPath: "models/test.bin"},
		TTS:     TTSConfig{Command: "edge-tts"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.FFmpeg.Encoder != "libx264" {
		t.Errorf("Encoder = %v, want libx264", cfg.FFmpeg.Encoder)
	}
	if cfg.Render.SourceLanguage != "en" {
		t.Errorf("SourceLanguage = %v, want en", cfg.Render.SourceLanguage)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  binary_path: "./whisper"
  model_path: "models/test.bin"

tts:
  command: "edge-tts"

ffmpeg:
  encoder: "h264_videotoolbox"
  video_bitrate: "5M"

paths:
  output: "data/output"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FFmpeg.Encoder != "h264_videotoolbox" {
		t.Errorf("Encoder = %v, want %v", cfg.FFmpeg.Encoder, "h264_videotoolbox")
	}
	if cfg.Paths.Output != "data/output" {
		t.Errorf("Output = %v, want %v", cfg.Paths.Output, "data/output")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
