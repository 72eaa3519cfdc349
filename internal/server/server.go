// Package server exposes the extraction service over HTTP: one endpoint
// that runs an extraction, one that serves produced audio artifacts, and
// a health check.
package server

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"tubescribe/internal/core/domain"
)

// Processor runs one extraction request to completion.
type Processor interface {
	Run(ctx context.Context, req domain.ExtractionRequest) domain.ExtractionResult
}

var validate = validator.New()

// Handler holds shared dependencies for the HTTP handlers.
type Handler struct {
	Processor    Processor
	DownloadsDir string
	Logger       *logrus.Logger
}

// NewHandler creates a Handler.
func NewHandler(processor Processor, downloadsDir string, logger *logrus.Logger) *Handler {
	return &Handler{
		Processor:    processor,
		DownloadsDir: downloadsDir,
		Logger:       logger,
	}
}

// NewApp builds the fiber application with all routes registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(RequestLogger(h.Logger))

	app.Get("/health", h.Health)
	app.Get("/api/process_video_details", h.ProcessVideoDetails)
	app.Static("/files", h.DownloadsDir, fiber.Static{
		Download: true,
	})

	return app
}

// processQuery is the query contract of the process endpoint.
type processQuery struct {
	URL           string `query:"url" validate:"required"`
	GetAudio      string `query:"get_audio"`
	GetTranscript string `query:"get_transcript"`
}

// ProcessVideoDetails runs one extraction and renders the result. When
// only a transcript was requested and it succeeded, the response is the
// raw transcript as plain text; otherwise it is the full result as JSON.
func (h *Handler) ProcessVideoDetails(c *fiber.Ctx) error {
	q := processQuery{
		URL:           c.Query("url"),
		GetAudio:      c.Query("get_audio", "true"),
		GetTranscript: c.Query("get_transcript", "false"),
	}
	if err := validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing url parameter",
		})
	}

	req := domain.ExtractionRequest{
		URL:        q.URL,
		Audio:      boolParam(q.GetAudio),
		Transcript: boolParam(q.GetTranscript),
		AudioCodec: "mp3",
	}

	// The orchestration is deliberately detached from the request
	// context: a client that stops waiting must not cancel a running
	// download, and cleanup always runs to completion. Upstream calls
	// are bounded by the retriever's own timeouts.
	result := h.Processor.Run(context.Background(), req)
	if result.AudioDownloadURL != "" {
		result.AudioDownloadURL = c.BaseURL() + result.AudioDownloadURL
	}

	if result.Error != "" && !result.Produced() {
		return c.Status(fiber.StatusInternalServerError).JSON(result)
	}
	if req.Transcript && !req.Audio && result.TranscriptText != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(result.TranscriptText)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// Health is the liveness endpoint.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
}

func boolParam(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
