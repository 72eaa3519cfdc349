package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tubescribe/internal/adapters/ffmpeg"
	"tubescribe/internal/adapters/localstorage"
	"tubescribe/internal/adapters/ytdlp"
	"tubescribe/internal/config"
	"tubescribe/internal/server"
	"tubescribe/internal/service"
)

func main() {
	// Load .env file if it exists; environment variables may also be set
	// directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := config.NewLogger(cfg)

	storage, err := localstorage.New(cfg.DownloadsDir, cfg.TranscriptsTmpDir)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	retriever := ytdlp.New(ytdlp.Options{
		BinaryPath:      cfg.YtDlpPath,
		ProxyURL:        cfg.ProxyURL,
		SocketTimeout:   cfg.SocketTimeout,
		MetadataTimeout: cfg.MetadataTimeout,
		DownloadTimeout: cfg.DownloadTimeout,
	}, log)

	extractor := service.NewExtractor(retriever, ffmpeg.NewProbe(), storage, log)
	handler := server.NewHandler(extractor, cfg.DownloadsDir, log)
	app := server.NewApp(handler)

	// Graceful shutdown: stop accepting connections, let in-flight
	// extractions finish.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutdown signal received")
		_ = app.Shutdown()
	}()

	log.WithField("port", cfg.Port).Info("starting tubescribe")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
