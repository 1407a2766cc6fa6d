// Package cost prices voice synthesis by character count. Presentation
// (rounding, currency formatting) is a caller concern.
package cost

// PricePerThousandChars is the base synthesis price in USD per 1000
// characters of input text.
const PricePerThousandChars = 0.30

// Summary holds the result of a cost estimate over one or more texts.
type Summary struct {
	TotalCharacters int
	EstimatedCost   float64
}

// Estimate prices a set of texts at the base rate.
func Estimate(texts []string) Summary {
	total := 0
	for _, t := range texts {
		total += len(t)
	}
	return Summary{
		TotalCharacters: total,
		EstimatedCost:   float64(total) / 1000 * PricePerThousandChars,
	}
}

// ForLanguage prices a single text with a language-specific multiplier
// applied to the base rate.
func ForLanguage(text string, multiplier float64) float64 {
	return float64(len(text)) / 1000 * PricePerThousandChars * multiplier
}
