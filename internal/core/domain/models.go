package domain

import "strings"

// ExtractionRequest describes one unit of extraction work. Immutable once
// created.
type ExtractionRequest struct {
	URL        string `json:"url"`
	Audio      bool   `json:"get_audio"`
	Transcript bool   `json:"get_transcript"`
	AudioCodec string `json:"audio_codec"`
}

// ExtractionResult is built incrementally by the orchestrator. Populated
// fields represent best-effort partial success: Error being set does not
// imply the other fields are absent.
type ExtractionResult struct {
	URL                string `json:"video_url"`
	Title              string `json:"title,omitempty"`
	Channel            string `json:"channel,omitempty"`
	AudioDownloadURL   string `json:"audio_download_url,omitempty"`
	AudioServerPath    string `json:"audio_server_path,omitempty"`
	TranscriptText     string `json:"transcript_text,omitempty"`
	TranscriptLanguage string `json:"transcript_language,omitempty"`
	Error              string `json:"error,omitempty"`
}

// Produced reports whether at least one requested artifact was obtained.
// A request that produced nothing and carries an error is a total failure
// at the HTTP layer; anything else is partial success.
func (r ExtractionResult) Produced() bool {
	return r.AudioDownloadURL != "" || r.TranscriptText != ""
}

// IsYouTubeURL reports whether the URL belongs to the one platform
// subtitle extraction is supported for.
func IsYouTubeURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	return strings.Contains(lower, "youtube.com") || strings.Contains(lower, "youtu.be")
}

// SanitizeFilename converts an arbitrary title into a filesystem-safe
// name: spaces become underscores, anything outside [A-Za-z0-9-_] becomes
// an underscore, runs of underscores collapse to one, and the result is
// trimmed of leading/trailing underscores and capped at maxLen runes.
func SanitizeFilename(name string, maxLen int) string {
	var b strings.Builder
	b.Grow(len(name))
	prevUnderscore := false
	for _, r := range name {
		if isFilenameRune(r) {
			b.WriteRune(r)
			prevUnderscore = r == '_'
			continue
		}
		if !prevUnderscore {
			b.WriteByte('_')
			prevUnderscore = true
		}
	}
	s := strings.Trim(b.String(), "_")
	if maxLen > 0 {
		if runes := []rune(s); len(runes) > maxLen {
			s = strings.TrimRight(string(runes[:maxLen]), "_")
		}
	}
	return s
}

func isFilenameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}
