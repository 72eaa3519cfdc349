// Package ytdlp adapts the local yt-dlp binary to the ports.Retriever
// contract: metadata lookup, audio download with transcode, and subtitle
// download.
package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"tubescribe/internal/core/ports"
)

// commonUserAgent is sent on every upstream request; some platforms
// throttle the default yt-dlp agent.
const commonUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client invokes yt-dlp as a subprocess.
type Client struct {
	binaryPath      string
	proxyURL        string
	socketTimeout   time.Duration
	metadataTimeout time.Duration
	downloadTimeout time.Duration
	log             *logrus.Logger
}

// Options configures a Client.
type Options struct {
	BinaryPath      string
	ProxyURL        string
	SocketTimeout   time.Duration
	MetadataTimeout time.Duration
	DownloadTimeout time.Duration
}

// New creates a yt-dlp client.
func New(opts Options, log *logrus.Logger) *Client {
	bin := opts.BinaryPath
	if bin == "" {
		bin = "yt-dlp"
	}
	return &Client{
		binaryPath:      bin,
		proxyURL:        opts.ProxyURL,
		socketTimeout:   opts.SocketTimeout,
		metadataTimeout: opts.MetadataTimeout,
		downloadTimeout: opts.DownloadTimeout,
		log:             log,
	}
}

// infoJSON is the subset of yt-dlp's -J output this service reads.
type infoJSON struct {
	Title              string                  `json:"title"`
	Uploader           string                  `json:"uploader"`
	Channel            string                  `json:"channel"`
	RequestedSubtitles map[string]subtitleInfo `json:"requested_subtitles"`
}

type subtitleInfo struct {
	Filepath string `json:"filepath"`
	Ext      string `json:"ext"`
}

// FetchMetadata retrieves title and uploader/channel without downloading
// any media.
func (c *Client) FetchMetadata(ctx context.Context, videoURL string) (*ports.Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, c.metadataTimeout)
	defer cancel()

	args := c.commonArgs()
	args = append(args, "--skip-download", "-J", videoURL)

	stdout, err := c.run(ctx, args)
	if err != nil {
		return nil, err
	}

	var info infoJSON
	if err := json.Unmarshal(stdout, &info); err != nil {
		return nil, fmt.Errorf("parsing yt-dlp metadata: %w", err)
	}

	return &ports.Metadata{
		Title:    info.Title,
		Uploader: info.Uploader,
		Channel:  info.Channel,
	}, nil
}

// DownloadAudio downloads the best audio track and transcodes it to the
// given codec. The output template carries yt-dlp's %(ext)s placeholder
// so the post-processor can pick the final extension.
func (c *Client) DownloadAudio(ctx context.Context, videoURL, codec, outputTemplate string) error {
	ctx, cancel := context.WithTimeout(ctx, c.downloadTimeout)
	defer cancel()

	args := c.commonArgs()
	args = append(args,
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", codec,
		"-o", outputTemplate,
		videoURL,
	)

	_, err := c.run(ctx, args)
	return err
}

// DownloadSubtitles fetches manual and auto-generated subtitle tracks
// for the given languages into files named from the output template, and
// reports which languages were actually obtained.
func (c *Client) DownloadSubtitles(ctx context.Context, videoURL string, langs []string, outputTemplate string) (*ports.SubtitleResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.metadataTimeout)
	defer cancel()

	args := c.commonArgs()
	args = append(args,
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", strings.Join(langs, ","),
		"--sub-format", "vtt",
		"--no-simulate",
		"-J",
		"-o", outputTemplate,
		videoURL,
	)

	stdout, err := c.run(ctx, args)
	if err != nil {
		return nil, err
	}

	result := &ports.SubtitleResult{Files: map[string]string{}}

	var info infoJSON
	if err := json.Unmarshal(stdout, &info); err != nil {
		// Subtitle files may still be on disk; the caller probes for
		// them, so a JSON parse failure is not fatal here.
		c.log.WithError(err).Warn("could not parse yt-dlp subtitle response")
		return result, nil
	}
	for lang, sub := range info.RequestedSubtitles {
		if sub.Filepath != "" {
			result.Files[lang] = sub.Filepath
		}
	}
	return result, nil
}

func (c *Client) commonArgs() []string {
	args := []string{
		"--no-warnings",
		"--no-playlist",
		"--socket-timeout", strconv.Itoa(int(c.socketTimeout.Seconds())),
		"--user-agent", commonUserAgent,
	}
	if c.proxyURL != "" {
		args = append(args, "--proxy", c.proxyURL)
	}
	return args
}

func (c *Client) run(ctx context.Context, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.binaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.log.WithField("args", strings.Join(args, " ")).Debug("invoking yt-dlp")

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if isNotFound(msg) {
			return nil, fmt.Errorf("%w: %s", ports.ErrVideoNotFound, firstLine(msg))
		}
		return nil, fmt.Errorf("yt-dlp failed: %w, stderr: %s", err, firstLine(msg))
	}
	return stdout.Bytes(), nil
}

// isNotFound distinguishes "no such item" upstream responses from other
// network or processing faults.
func isNotFound(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "video unavailable") ||
		strings.Contains(lower, "http error 404") ||
		strings.Contains(lower, "does not exist")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
