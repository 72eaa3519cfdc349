// Package service contains the extraction orchestrator: metadata lookup,
// then optional audio extraction, then optional transcript extraction,
// aggregated into one best-effort result per request.
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tubescribe/internal/core/domain"
	"tubescribe/internal/core/ports"
	"tubescribe/internal/transcript"
)

// subtitleLangs is the fixed two-entry language preference list: primary
// then secondary. Selection never falls back to a language outside it.
var subtitleLangs = []string{"en", "ro"}

const (
	defaultAudioCodec   = "mp3"
	titleMaxFilenameLen = 60
)

// Extractor coordinates the extraction workflow.
type Extractor struct {
	retriever  ports.Retriever
	transcoder ports.Transcoder
	storage    ports.Storage
	log        *logrus.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(retriever ports.Retriever, transcoder ports.Transcoder, storage ports.Storage, log *logrus.Logger) *Extractor {
	return &Extractor{
		retriever:  retriever,
		transcoder: transcoder,
		storage:    storage,
		log:        log,
	}
}

// Run executes one extraction request to completion. Metadata failure
// aborts the whole request; audio and transcript failures are recorded
// on the result while the remaining steps still run. The result's Error
// holds only the first failure observed.
func (e *Extractor) Run(ctx context.Context, req domain.ExtractionRequest) domain.ExtractionResult {
	requestID := uuid.NewString()
	log := e.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"url":        req.URL,
	})

	res := domain.ExtractionResult{URL: req.URL}

	log.Info("fetching metadata")
	meta, err := e.retriever.FetchMetadata(ctx, req.URL)
	if err != nil {
		res.Error = fmt.Sprintf("metadata fetch failed: %v", err)
		log.WithError(err).Error("metadata fetch failed, aborting request")
		return res
	}
	res.Title = meta.Title
	if res.Title == "" {
		// Downstream file naming must never see an empty title. The
		// suffix is an arbitrary unique filler, not a stable identifier.
		res.Title = "untitled_" + shortID()
	}
	res.Channel = meta.Uploader
	if res.Channel == "" {
		res.Channel = meta.Channel
	}
	if res.Channel == "" {
		res.Channel = "unknown_uploader_" + shortID()
	}

	if req.Audio {
		serverPath, publicURL, err := e.extractAudio(ctx, req, res.Title, log)
		if err != nil {
			note(&res, fmt.Sprintf("audio extraction failed: %v", err))
			log.WithError(err).Warn("audio extraction failed")
		} else {
			res.AudioServerPath = serverPath
			res.AudioDownloadURL = publicURL
		}
	}

	if req.Transcript {
		if !domain.IsYouTubeURL(req.URL) {
			note(&res, "transcript extraction is only supported for YouTube URLs")
			log.Info("transcript not supported for this source, skipping")
		} else {
			text, lang, err := e.extractTranscript(ctx, req.URL, log)
			if err != nil {
				note(&res, fmt.Sprintf("transcript extraction failed: %v", err))
				log.WithError(err).Warn("transcript extraction failed")
			} else {
				res.TranscriptText = text
				res.TranscriptLanguage = lang
			}
		}
	}

	log.WithFields(logrus.Fields{
		"audio":      res.AudioDownloadURL != "",
		"transcript": res.TranscriptText != "",
		"error":      res.Error,
	}).Info("request complete")
	return res
}

// extractAudio downloads and transcodes the audio track into an isolated
// per-request directory named from a timestamp plus the sanitized title,
// so concurrent requests with colliding titles cannot collide on disk.
func (e *Extractor) extractAudio(ctx context.Context, req domain.ExtractionRequest, title string, log *logrus.Entry) (serverPath, publicURL string, err error) {
	defer recoverStep(&err)

	if !e.transcoder.Available() {
		return "", "", fmt.Errorf("ffmpeg not available, cannot transcode audio")
	}

	codec := req.AudioCodec
	if codec == "" {
		codec = defaultAudioCodec
	}

	base := time.Now().Format("2006-01-02_150405") + "_" + domain.SanitizeFilename(title, titleMaxFilenameLen)
	dir, err := e.storage.InitAudioDir(base)
	if err != nil {
		return "", "", err
	}

	log.WithField("dir", dir).Info("downloading audio")
	tmpl := filepath.Join(dir, base+".%(ext)s")
	if err := e.retriever.DownloadAudio(ctx, req.URL, codec, tmpl); err != nil {
		return "", "", err
	}

	filename := base + "." + codec
	serverPath = e.storage.AudioFilePath(base, filename)
	if !e.storage.FileExists(serverPath) {
		return "", "", fmt.Errorf("audio file missing after download: %s", filename)
	}

	return serverPath, "/files/" + base + "/" + filename, nil
}

// extractTranscript downloads subtitle tracks under a random per-request
// basename in the shared temporary area, resolves the obtained language,
// and converts the VTT content to plain text. Every temporary file
// carrying the basename is removed before returning, on every exit path.
func (e *Extractor) extractTranscript(ctx context.Context, videoURL string, log *logrus.Entry) (text, lang string, err error) {
	tmpBase := "vtt_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	defer func() {
		if cleanupErr := e.storage.RemoveTranscriptTemp(tmpBase); cleanupErr != nil {
			log.WithError(cleanupErr).Warn("transcript temp cleanup failed")
		}
	}()
	defer recoverStep(&err)

	log.WithField("tmp_base", tmpBase).Info("downloading subtitles")
	subs, dlErr := e.retriever.DownloadSubtitles(ctx, videoURL, subtitleLangs, e.storage.TranscriptTempPath(tmpBase))

	var path string
	if dlErr == nil && subs != nil {
		if resolved, ok := transcript.ResolveLanguage(subtitleLangs, func(l string) bool {
			return subs.Files[l] != ""
		}); ok {
			lang = resolved
			path = subs.Files[resolved]
		}
	}
	if path == "" {
		// The structured response was absent or incomplete; probe the
		// temporary area for the files yt-dlp writes per language.
		if resolved, ok := transcript.ResolveLanguage(subtitleLangs, func(l string) bool {
			return e.storage.FileExists(e.storage.TranscriptTempPath(tmpBase + "." + l + ".vtt"))
		}); ok {
			lang = resolved
			path = e.storage.TranscriptTempPath(tmpBase + "." + resolved + ".vtt")
		}
	}

	if path == "" {
		if dlErr != nil {
			return "", "", dlErr
		}
		return "", "", fmt.Errorf("no subtitles available")
	}

	data, err := e.storage.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	text = transcript.Normalize(transcript.ParseCues(string(data)))
	return text, lang, nil
}

// note records msg as the result's error only if no earlier step already
// recorded one: the first failure reported is always the first one
// chronologically observed.
func note(res *domain.ExtractionResult, msg string) {
	if res.Error == "" {
		res.Error = msg
	}
}

// recoverStep converts an unexpected fault inside a step into an error
// so a single request can never crash the worker.
func recoverStep(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("unexpected fault: %v", r)
	}
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
