package speech

import "context"

// Audio is the result of one synthesis call: the narration bytes and the
// cost the synthesizer reports for producing them.
type Audio struct {
	Data []byte
	Cost float64
}

// Synthesizer generates spoken narration audio from text
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID, languageCode string) (Audio, error)
}
