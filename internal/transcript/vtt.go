// Package transcript converts timed VTT caption markup into plain text.
// It cleans cue payloads, collapses the rolling duplicates that
// auto-generated subtitles repeat across overlapping cues, and selects
// a subtitle language from a fixed preference list.
package transcript

import (
	"regexp"
	"strings"
)

// tagRe matches inline VTT/HTML markup, including attributed variants
// like <c.colorE5E5E5> and inline timestamps like <00:00:01.240>.
var tagRe = regexp.MustCompile(`<[^>]*>`)

// entityReplacer decodes the small fixed set of named entities the VTT
// format emits.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// headerPrefixes identify document-level metadata lines that carry no
// caption text.
var headerPrefixes = []string{"webvtt", "kind:", "language:", "style", "note", "region"}

// ParseCues converts raw VTT content into an ordered sequence of cleaned
// text segments, one per cue. Header and metadata lines, timing lines,
// and bare cue index numbers never appear in the output. Input with no
// recognizable cues yields nil. Parsing never fails: unrecognized lines
// degrade to best-effort tag stripping and entity decoding.
func ParseCues(raw string) []string {
	var segments []string
	var buf []string
	inCueText := false

	flush := func() {
		if len(buf) > 0 {
			segments = append(segments, strings.Join(buf, " "))
			buf = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))

		switch {
		case line == "":
			// Cue boundary.
			if inCueText {
				flush()
			}
			buf = nil
			inCueText = false

		case isHeaderLine(line):
			inCueText = false

		case strings.Contains(line, "-->"):
			flush()
			inCueText = true

		case !inCueText && isDigits(line):
			// Cue index before any cue text.

		default:
			cleaned := strings.TrimSpace(entityReplacer.Replace(tagRe.ReplaceAllString(line, "")))
			if cleaned != "" {
				buf = append(buf, cleaned)
			}
		}
	}
	flush()

	return segments
}

func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range headerPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
