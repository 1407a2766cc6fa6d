// Package language maintains the set of render target languages and the
// per-language metadata the pipeline needs: display names, right-to-left
// script detection for caption embedding, and voice synthesis price
// multipliers.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type entry struct {
	code       string  // ISO 639-1 (2-letter)
	display    string  // Human-readable name
	rtl        bool    // Right-to-left script
	multiplier float64 // Voice synthesis price multiplier relative to English
}

var languages = []entry{
	{"en", "English", false, 1.0},
	{"es", "Spanish", false, 1.0},
	{"fr", "French", false, 1.0},
	{"de", "German", false, 1.0},
	{"it", "Italian", false, 1.0},
	{"pt", "Portuguese", false, 1.0},
	{"nl", "Dutch", false, 1.0},
	{"pl", "Polish", false, 1.0},
	{"sv", "Swedish", false, 1.0},
	{"da", "Danish", false, 1.0},
	{"no", "Norwegian", false, 1.0},
	{"fi", "Finnish", false, 1.0},
	{"ru", "Russian", false, 1.0},
	{"ja", "Japanese", false, 1.2},
	{"ko", "Korean", false, 1.2},
	{"zh", "Chinese", false, 1.2},
	{"hi", "Hindi", false, 1.1},
	{"sn", "Shona", false, 1.1},
	{"ar", "Arabic", true, 1.1},
	{"he", "Hebrew", true, 1.1},
	{"fa", "Persian", true, 1.1},
	{"ur", "Urdu", true, 1.1},
	{"yi", "Yiddish", true, 1.1},
}

var byCode map[string]*entry

func init() {
	byCode = make(map[string]*entry, len(languages))
	for i := range languages {
		byCode[languages[i].code] = &languages[i]
	}
}

func lookup(code string) *entry {
	if e, ok := byCode[Normalize(code)]; ok {
		return e
	}
	return nil
}

// Normalize reduces a language code or BCP 47 tag to its lowercase
// ISO 639-1 base ("pt-BR" -> "pt"). Unparseable input passes through
// trimmed and lowercased so lookups fail on the original value.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, conf := tag.Base()
	if conf == language.No {
		return code
	}
	return base.String()
}

// Validate returns an error when the code is not a supported render target.
func Validate(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("language code is empty")
	}
	if lookup(code) == nil {
		return fmt.Errorf("unsupported language %q", code)
	}
	return nil
}

// IsRTL reports whether captions in the language need right-to-left
// embedding. Matches on the ISO 639-1 prefix of the supplied code.
func IsRTL(code string) bool {
	e := lookup(code)
	return e != nil && e.rtl
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// PriceMultiplier returns the synthesis price multiplier for the language,
// defaulting to 1.0 for unrecognized codes.
func PriceMultiplier(code string) float64 {
	if e := lookup(code); e != nil {
		return e.multiplier
	}
	return 1.0
}
