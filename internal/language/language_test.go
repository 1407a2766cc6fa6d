package language

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"english", "en", false},
		{"spanish", "es", false},
		{"shona", "sn", false},
		{"arabic", "ar", false},
		{"uppercase", "ES", false},
		{"regional tag", "pt-BR", false},
		{"unknown", "xx", true},
		{"empty", "", true},
		{"garbage", "not-a-language", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	rtl := []string{"ar", "he", "fa", "ur", "yi", "ar-EG"}
	for _, code := range rtl {
		if !IsRTL(code) {
			t.Errorf("IsRTL(%q) = false, want true", code)
		}
	}

	ltr := []string{"en", "es", "ja", "zh", "", "xx"}
	for _, code := range ltr {
		if IsRTL(code) {
			t.Errorf("IsRTL(%q) = true, want false", code)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{" EN ", "en"},
		{"pt-BR", "pt"},
		{"zh-Hans", "zh"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("es"); got != "Spanish" {
		t.Errorf("DisplayName(es) = %q, want Spanish", got)
	}
	if got := DisplayName(""); got != "Unknown" {
		t.Errorf("DisplayName(\"\") = %q, want Unknown", got)
	}
	if got := DisplayName("xq"); got != "XQ" {
		t.Errorf("DisplayName(xq) = %q, want XQ", got)
	}
}

func TestPriceMultiplier(t *testing.T) {
	if got := PriceMultiplier("en"); got != 1.0 {
		t.Errorf("PriceMultiplier(en) = %v, want 1.0", got)
	}
	if got := PriceMultiplier("ja"); got != 1.2 {
		t.Errorf("PriceMultiplier(ja) = %v, want 1.2", got)
	}
	if got := PriceMultiplier("xx"); got != 1.0 {
		t.Errorf("PriceMultiplier(xx) = %v, want 1.0", got)
	}
}
