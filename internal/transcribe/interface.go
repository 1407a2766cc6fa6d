package transcribe

import (
	"context"

	"github.com/nguyentantai21042004/shortclip/internal/caption"
)

// Transcriber converts narration audio into timed transcript segments
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, languageCode string) ([]caption.Segment, error)
}
