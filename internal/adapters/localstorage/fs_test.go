package localstorage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	base := t.TempDir()
	s, err := New(filepath.Join(base, "downloads"), filepath.Join(base, "transcripts"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestInitAudioDirAndPaths(t *testing.T) {
	s := newTestStorage(t)

	dir, err := s.InitAudioDir("2026-01-02_150405_title")
	if err != nil {
		t.Fatalf("InitAudioDir() failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("audio dir not created: %v", err)
	}

	p := s.AudioFilePath("2026-01-02_150405_title", "x.mp3")
	if filepath.Dir(p) != dir {
		t.Errorf("AudioFilePath dir = %s, want %s", filepath.Dir(p), dir)
	}
}

func TestFileExists(t *testing.T) {
	s := newTestStorage(t)

	path := s.TranscriptTempPath("vtt_abc.en.vtt")
	if s.FileExists(path) {
		t.Error("FileExists true for missing file")
	}
	if err := os.WriteFile(path, []byte("WEBVTT"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !s.FileExists(path) {
		t.Error("FileExists false for existing file")
	}
	if s.FileExists(s.TranscriptsTmpDir) {
		t.Error("FileExists true for a directory")
	}
}

func TestRemoveTranscriptTemp(t *testing.T) {
	s := newTestStorage(t)

	for _, name := range []string{"vtt_abc.en.vtt", "vtt_abc.ro.vtt", "vtt_other.en.vtt"} {
		if err := os.WriteFile(s.TranscriptTempPath(name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.RemoveTranscriptTemp("vtt_abc"); err != nil {
		t.Fatalf("RemoveTranscriptTemp() failed: %v", err)
	}

	entries, err := os.ReadDir(s.TranscriptsTmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "vtt_other.en.vtt" {
		t.Errorf("unexpected leftover entries: %v", entries)
	}
}

func TestRemoveTranscriptTempEmptyPrefix(t *testing.T) {
	s := newTestStorage(t)
	if err := s.RemoveTranscriptTemp(""); err == nil {
		t.Error("expected error for empty prefix")
	}
}
