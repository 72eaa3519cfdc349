package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, defaultPort)
	}
	if cfg.DownloadsDir != defaultDownloadsDir {
		t.Errorf("DownloadsDir = %q, want %q", cfg.DownloadsDir, defaultDownloadsDir)
	}
	if cfg.SocketTimeout != defaultSocketTimeout {
		t.Errorf("SocketTimeout = %v, want %v", cfg.SocketTimeout, defaultSocketTimeout)
	}
	if cfg.YtDlpPath != defaultYtDlpBinary {
		t.Errorf("YtDlpPath = %q, want %q", cfg.YtDlpPath, defaultYtDlpBinary)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SOCKET_TIMEOUT_SECONDS", "30")
	t.Setenv("YTDLP_PROXY", "http://proxy:3128")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.SocketTimeout != 30*time.Second {
		t.Errorf("SocketTimeout = %v, want 30s", cfg.SocketTimeout)
	}
	if cfg.ProxyURL != "http://proxy:3128" {
		t.Errorf("ProxyURL = %q", cfg.ProxyURL)
	}
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("SOCKET_TIMEOUT_SECONDS", "not-a-number")

	if cfg := Load(); cfg.SocketTimeout != defaultSocketTimeout {
		t.Errorf("SocketTimeout = %v, want default %v", cfg.SocketTimeout, defaultSocketTimeout)
	}
}
