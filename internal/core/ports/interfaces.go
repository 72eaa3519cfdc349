package ports

import (
	"context"
	"errors"
)

// ErrVideoNotFound is returned by a Retriever when the upstream platform
// reports that the requested item does not exist, as opposed to a
// network or processing fault.
var ErrVideoNotFound = errors.New("video not found")

// Metadata holds the descriptive fields fetched for a video.
type Metadata struct {
	Title    string
	Uploader string
	Channel  string
}

// SubtitleResult reports which subtitle tracks a Retriever actually
// obtained, as a language code to on-disk path mapping. The map may be
// empty or incomplete; callers fall back to probing the filesystem.
type SubtitleResult struct {
	Files map[string]string
}

// Retriever defines the contract for the external media retrieval
// collaborator (yt-dlp in production).
type Retriever interface {
	// FetchMetadata retrieves title and uploader/channel without
	// downloading any media.
	FetchMetadata(ctx context.Context, videoURL string) (*Metadata, error)

	// DownloadAudio downloads the best audio track and transcodes it to
	// the given codec, writing output according to the path template.
	// The template uses yt-dlp's "%(ext)s" placeholder for the final
	// extension.
	DownloadAudio(ctx context.Context, videoURL, codec, outputTemplate string) error

	// DownloadSubtitles fetches subtitle tracks for the given language
	// preference list into files named from the output template, and
	// reports which languages were actually obtained.
	DownloadSubtitles(ctx context.Context, videoURL string, langs []string, outputTemplate string) (*SubtitleResult, error)
}

// Transcoder is the capability probe for the audio transcoding backend.
type Transcoder interface {
	// Available reports whether transcoding can be attempted at all.
	Available() bool
}

// Storage defines the contract for persisting extraction artifacts.
type Storage interface {
	// InitAudioDir creates the isolated per-request audio output
	// directory for the given base name and returns its path.
	InitAudioDir(base string) (string, error)

	// AudioFilePath returns the path of an audio artifact inside a
	// per-request directory.
	AudioFilePath(base, filename string) string

	// FileExists reports whether the given path exists as a regular file.
	FileExists(path string) bool

	// TranscriptTempPath returns the path in the shared temporary area
	// for the given transcript artifact name.
	TranscriptTempPath(name string) string

	// ReadFile reads a subtitle artifact.
	ReadFile(path string) ([]byte, error)

	// RemoveTranscriptTemp deletes every file in the temporary area whose
	// name starts with the given prefix.
	RemoveTranscriptTemp(prefix string) error
}
