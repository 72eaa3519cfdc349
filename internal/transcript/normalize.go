package transcript

import "strings"

// Normalize joins cue segments into final transcript text, collapsing
// runs of consecutive identical segments to a single occurrence.
// Streaming caption sources re-emit the same line across overlapping
// timing windows; only adjacent repeats are collapsed, non-adjacent
// repeats are genuine content and are preserved. Empty input yields "".
func Normalize(segments []string) string {
	var out []string
	for _, seg := range segments {
		if len(out) > 0 && out[len(out)-1] == seg {
			continue
		}
		out = append(out, seg)
	}
	return strings.Join(out, "\n")
}
