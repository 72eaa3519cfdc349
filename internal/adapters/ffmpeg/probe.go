// Package ffmpeg provides the transcoder availability probe. yt-dlp
// delegates audio transcoding to ffmpeg, so audio extraction is only
// attempted when the binary can be found.
package ffmpeg

import "os/exec"

// Probe implements ports.Transcoder by looking for ffmpeg on PATH.
type Probe struct {
	binaryName string
}

// NewProbe creates a probe for the standard ffmpeg binary name.
func NewProbe() *Probe {
	return &Probe{binaryName: "ffmpeg"}
}

// Available reports whether ffmpeg is installed. Checked once per audio
// extraction attempt, not cached, so installing ffmpeg takes effect
// without a restart.
func (p *Probe) Available() bool {
	_, err := exec.LookPath(p.binaryName)
	return err == nil
}
