package ytdlp

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testClient(proxy string) *Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(Options{
		ProxyURL:        proxy,
		SocketTimeout:   180 * time.Second,
		MetadataTimeout: time.Minute,
		DownloadTimeout: time.Minute,
	}, log)
}

func TestCommonArgs(t *testing.T) {
	args := strings.Join(testClient("").commonArgs(), " ")
	for _, want := range []string{"--no-warnings", "--no-playlist", "--socket-timeout 180", "--user-agent"} {
		if !strings.Contains(args, want) {
			t.Errorf("commonArgs missing %q in %q", want, args)
		}
	}
	if strings.Contains(args, "--proxy") {
		t.Error("proxy flag present without configured proxy")
	}
}

func TestCommonArgsWithProxy(t *testing.T) {
	args := strings.Join(testClient("http://proxy:3128").commonArgs(), " ")
	if !strings.Contains(args, "--proxy http://proxy:3128") {
		t.Errorf("proxy flag missing: %q", args)
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		stderr string
		want   bool
	}{
		{"ERROR: [youtube] abc: Video unavailable", true},
		{"ERROR: unable to download webpage: HTTP Error 404", true},
		{"ERROR: connection timed out", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isNotFound(tt.stderr); got != tt.want {
			t.Errorf("isNotFound(%q) = %v, want %v", tt.stderr, got, tt.want)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo\nthree"); got != "one" {
		t.Errorf("firstLine() = %q", got)
	}
	if got := firstLine("single"); got != "single" {
		t.Errorf("firstLine() = %q", got)
	}
}
