package translate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/shortclip/internal/language"
)

const translatePrompt = `Translate the following short-form video caption into %s.
Keep it punchy and natural for spoken narration. Preserve proper nouns.
Return ONLY the translated text, no explanations, no quotes.

Caption:
---
%s
---`

// Translate returns the caption in the target language. When the target
// matches the configured source language the text passes through unchanged.
func (t *implTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if language.Normalize(targetLanguage) == language.Normalize(t.sourceLanguage) {
		return text, nil
	}
	return t.callGemini(ctx, text, targetLanguage)
}

// callGemini sends the caption to Gemini and returns the translation.
// Rotates API keys on 429 / quota errors.
func (t *implTranslator) callGemini(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf(translatePrompt, language.DisplayName(targetLanguage), text)

	attempts := len(t.apiKeys)
	if attempts == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}
	var lastErr error

	for range attempts {
		key := t.apiKeys[t.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			t.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, t.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				t.logger.Warn(ctx, "Key %d rate limited, rotating...", t.currentKey+1)
				t.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			out = strings.TrimSpace(out)
			if out == "" {
				return "", fmt.Errorf("empty translation from Gemini")
			}
			return out, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (t *implTranslator) rotateKey() {
	t.currentKey = (t.currentKey + 1) % len(t.apiKeys)
}
