package domain

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{
			name:   "spaces become underscores",
			in:     "My Video Title",
			maxLen: 60,
			want:   "My_Video_Title",
		},
		{
			name:   "special characters replaced and collapsed",
			in:     "a/b:c??d",
			maxLen: 60,
			want:   "a_b_c_d",
		},
		{
			name:   "leading and trailing underscores trimmed",
			in:     "  hello  ",
			maxLen: 60,
			want:   "hello",
		},
		{
			name:   "hyphen and underscore kept",
			in:     "keep-this_name",
			maxLen: 60,
			want:   "keep-this_name",
		},
		{
			name:   "truncated at max length",
			in:     "abcdefghij",
			maxLen: 5,
			want:   "abcde",
		},
		{
			name:   "truncation does not leave trailing underscore",
			in:     "abcd efghij",
			maxLen: 5,
			want:   "abcd",
		},
		{
			name:   "empty input",
			in:     "",
			maxLen: 60,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", true},
		{"https://YOUTUBE.com/watch?v=x", true},
		{"https://www.tiktok.com/@user/video/123", false},
		{"https://vimeo.com/12345", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsYouTubeURL(tt.url); got != tt.want {
			t.Errorf("IsYouTubeURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestExtractionResultProduced(t *testing.T) {
	if (ExtractionResult{}).Produced() {
		t.Error("empty result should not count as produced")
	}
	if !(ExtractionResult{AudioDownloadURL: "/files/x/x.mp3"}).Produced() {
		t.Error("audio artifact should count as produced")
	}
	if !(ExtractionResult{TranscriptText: "hello"}).Produced() {
		t.Error("transcript should count as produced")
	}
}
