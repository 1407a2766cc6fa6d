package cost

import (
	"math"
	"testing"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name      string
		texts     []string
		wantChars int
		wantCost  float64
	}{
		{"single word", []string{"Hello"}, 5, 5.0 / 1000 * PricePerThousandChars},
		{"two texts", []string{"Hello", "World!"}, 11, 11.0 / 1000 * PricePerThousandChars},
		{"empty input", nil, 0, 0},
		{"empty string", []string{""}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.texts)
			if got.TotalCharacters != tt.wantChars {
				t.Errorf("TotalCharacters = %d, want %d", got.TotalCharacters, tt.wantChars)
			}
			if math.Abs(got.EstimatedCost-tt.wantCost) > 1e-12 {
				t.Errorf("EstimatedCost = %v, want %v", got.EstimatedCost, tt.wantCost)
			}
		})
	}
}

func TestForLanguage(t *testing.T) {
	got := ForLanguage("Hello", 1.2)
	want := 5.0 / 1000 * PricePerThousandChars * 1.2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ForLanguage = %v, want %v", got, want)
	}
}
