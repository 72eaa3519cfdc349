// Package localstorage implements ports.Storage on the local filesystem:
// a durable downloads area for audio artifacts, namespaced per request,
// and a shared temporary area for subtitle files that is cleaned per
// request.
package localstorage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage holds the two base directories.
type LocalStorage struct {
	DownloadsDir      string
	TranscriptsTmpDir string
}

// New creates a LocalStorage and ensures both base directories exist.
func New(downloadsDir, transcriptsTmpDir string) (*LocalStorage, error) {
	for _, dir := range []string{downloadsDir, transcriptsTmpDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &LocalStorage{
		DownloadsDir:      downloadsDir,
		TranscriptsTmpDir: transcriptsTmpDir,
	}, nil
}

// InitAudioDir creates the isolated per-request audio output directory.
func (s *LocalStorage) InitAudioDir(base string) (string, error) {
	path := filepath.Join(s.DownloadsDir, base)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory %s: %w", path, err)
	}
	return path, nil
}

// AudioFilePath returns the path of an audio artifact inside a
// per-request directory.
func (s *LocalStorage) AudioFilePath(base, filename string) string {
	return filepath.Join(s.DownloadsDir, base, filename)
}

// FileExists reports whether path exists as a regular file.
func (s *LocalStorage) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// TranscriptTempPath returns the path in the temporary area for the
// given transcript artifact name.
func (s *LocalStorage) TranscriptTempPath(name string) string {
	return filepath.Join(s.TranscriptsTmpDir, name)
}

// ReadFile reads a subtitle artifact.
func (s *LocalStorage) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// RemoveTranscriptTemp deletes every file in the temporary area whose
// name starts with prefix. The first removal error is returned but the
// sweep continues so one stuck file does not strand the rest.
func (s *LocalStorage) RemoveTranscriptTemp(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("refusing to clean with empty prefix")
	}
	entries, err := os.ReadDir(s.TranscriptsTmpDir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", s.TranscriptsTmpDir, err)
	}
	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		if err := os.Remove(filepath.Join(s.TranscriptsTmpDir, entry.Name())); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
