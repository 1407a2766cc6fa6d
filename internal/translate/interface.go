package translate

import "context"

// Translator converts caption text into a target language
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
