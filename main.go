package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yetmgetaewunetu/ethio-translator-app-backend-service/config"
	"github.com/yetmgetaewunetu/ethio-translator-app-backend-service/fetcher"
	"github.com/yetmgetaewunetu/ethio-translator-app-backend-service/inference"
	"github.com/yetmgetaewunetu/ethio-translator-app-backend-service/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, falling back to environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration",
			"error", err)
		os.Exit(1)
	}

	client := inference.NewClient(cfg.HFToken, cfg.HFBaseURL, inference.Models{
		Summarization: cfg.SummarizationModel,
		Translation:   cfg.TranslationModel,
		SpeechToText:  cfg.SpeechToTextModel,
		QA:            cfg.QAModel,
	}, log)

	srv := server.New(client, fetcher.New(log), cfg.UploadDir, log)

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		sig := <-c

		log.Info("Shutdown signal is received",
			"signal", sig.String())
		if err := srv.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("Failed to shut down cleanly",
				"error", err)
		}
	}()

	addr := ":" + strconv.Itoa(cfg.Port)
	log.Info("Server is listening",
		"addr", addr,
		"uploadDir", cfg.UploadDir)

	if err := srv.Listen(addr); err != nil {
		log.Error("Server stopped",
			"error", err)
		os.Exit(1)
	}

	log.Info("Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}
