package transcript

import "testing"

func TestResolveLanguage(t *testing.T) {
	prefs := []string{"en", "ro"}

	tests := []struct {
		name       string
		candidates map[string]bool
		wantLang   string
		wantOK     bool
	}{
		{
			name:       "primary wins when both available",
			candidates: map[string]bool{"en": true, "ro": true},
			wantLang:   "en",
			wantOK:     true,
		},
		{
			name:       "secondary when primary missing",
			candidates: map[string]bool{"ro": true},
			wantLang:   "ro",
			wantOK:     true,
		},
		{
			name:       "none available",
			candidates: map[string]bool{},
			wantOK:     false,
		},
		{
			name:       "unlisted language never selected",
			candidates: map[string]bool{"fr": true},
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := ResolveLanguage(prefs, func(l string) bool { return tt.candidates[l] })
			if ok != tt.wantOK || lang != tt.wantLang {
				t.Errorf("ResolveLanguage() = (%q, %v), want (%q, %v)", lang, ok, tt.wantLang, tt.wantOK)
			}
		})
	}
}
