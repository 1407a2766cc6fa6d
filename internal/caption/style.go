package caption

import (
	"fmt"
	"strings"
)

// Style describes caption appearance for burn-in and for the dynamic
// word-highlight artifact. Colors are "#RRGGBB" strings.
type Style struct {
	FontName       string `yaml:"font_name"`
	FontSize       int    `yaml:"font_size"`
	PrimaryColor   string `yaml:"primary_color"`
	HighlightColor string `yaml:"highlight_color"`
	OutlineColor   string `yaml:"outline_color"`
	OutlineWidth   int    `yaml:"outline_width"`
	Bold           bool   `yaml:"bold"`
	Alignment      int    `yaml:"alignment"` // ASS numpad alignment 1-9; 0 derives from Position
	Position       string `yaml:"position"`  // top | middle | bottom
	BackColor      string `yaml:"back_color"` // Optional box color
	MarginV        int    `yaml:"margin_v"`   // Optional vertical margin override
	Dynamic        bool   `yaml:"dynamic"`    // Per-word highlight (ASS) instead of plain SRT
}

// DefaultStyle is the caption look used when a batch supplies none.
func DefaultStyle() Style {
	return Style{
		FontName:       "Arial",
		FontSize:       24,
		PrimaryColor:   "#FFFFFF",
		HighlightColor: "#FFFF00",
		OutlineColor:   "#000000",
		OutlineWidth:   2,
		Bold:           true,
		Position:       "bottom",
	}
}

// assColor packs "#RRGGBB" into the ASS &HBBGGRR notation.
func assColor(hex string) string {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		hex = "FFFFFF"
	}
	return fmt.Sprintf("&H%s%s%s", hex[4:6], hex[2:4], hex[0:2])
}

// alignment resolves the numeric-keypad alignment code: explicit values win,
// otherwise the position enum maps to bottom/middle/top center.
func (s Style) alignment() int {
	if s.Alignment >= 1 && s.Alignment <= 9 {
		return s.Alignment
	}
	switch s.Position {
	case "top":
		return 8
	case "middle":
		return 5
	default:
		return 2
	}
}

// marginV resolves the vertical margin from the position enum unless
// overridden.
func (s Style) marginV() int {
	if s.MarginV > 0 {
		return s.MarginV
	}
	switch s.Position {
	case "top":
		return 80
	case "middle":
		return 0
	default:
		return 60
	}
}

// ForceStyle renders the ffmpeg subtitles filter force_style descriptor.
func (s Style) ForceStyle() string {
	parts := []string{
		fmt.Sprintf("FontName=%s", s.FontName),
		fmt.Sprintf("FontSize=%d", s.FontSize),
		fmt.Sprintf("PrimaryColour=%s", assColor(s.PrimaryColor)),
		fmt.Sprintf("OutlineColour=%s", assColor(s.OutlineColor)),
		fmt.Sprintf("Outline=%d", s.OutlineWidth),
		fmt.Sprintf("Bold=%d", boolToInt(s.Bold)),
		fmt.Sprintf("Alignment=%d", s.alignment()),
	}
	if s.BackColor != "" {
		parts = append(parts, "BorderStyle=4", fmt.Sprintf("BackColour=%s", assColor(s.BackColor)))
	}
	if m := s.marginV(); m > 0 {
		parts = append(parts, fmt.Sprintf("MarginV=%d", m))
	}
	return strings.Join(parts, ",")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
