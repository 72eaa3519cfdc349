package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults mirror the original deployment of this service.
const (
	defaultPort            = "8080"
	defaultDownloadsDir    = "api_downloads"
	defaultTranscriptsDir  = "api_transcripts_temp"
	defaultSocketTimeout   = 180 * time.Second
	defaultYtDlpBinary     = "yt-dlp"
	defaultMetadataTimeout = 5 * time.Minute
	defaultDownloadTimeout = 30 * time.Minute
)

// Config holds all environment-driven settings.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DownloadsDir is the durable base directory for audio artifacts.
	DownloadsDir string
	// TranscriptsTmpDir is the shared temporary area for subtitle files,
	// cleaned per request.
	TranscriptsTmpDir string
	// YtDlpPath is the yt-dlp binary name or path.
	YtDlpPath string
	// ProxyURL, when set, is passed to every yt-dlp invocation.
	ProxyURL string
	// SocketTimeout bounds individual upstream socket operations.
	SocketTimeout time.Duration
	// MetadataTimeout bounds a whole metadata or subtitle fetch.
	MetadataTimeout time.Duration
	// DownloadTimeout bounds a whole audio download and transcode.
	DownloadTimeout time.Duration
	// LogLevel is a logrus level name.
	LogLevel string
}

// Load reads configuration from the process environment, applying
// defaults for anything unset.
func Load() Config {
	return Config{
		Port:              envOr("PORT", defaultPort),
		DownloadsDir:      envOr("DOWNLOADS_DIR", defaultDownloadsDir),
		TranscriptsTmpDir: envOr("TRANSCRIPTS_TMP_DIR", defaultTranscriptsDir),
		YtDlpPath:         envOr("YTDLP_PATH", defaultYtDlpBinary),
		ProxyURL:          os.Getenv("YTDLP_PROXY"),
		SocketTimeout:     envSeconds("SOCKET_TIMEOUT_SECONDS", defaultSocketTimeout),
		MetadataTimeout:   envSeconds("METADATA_TIMEOUT_SECONDS", defaultMetadataTimeout),
		DownloadTimeout:   envSeconds("DOWNLOAD_TIMEOUT_SECONDS", defaultDownloadTimeout),
		LogLevel:          envOr("LOG_LEVEL", "info"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}
