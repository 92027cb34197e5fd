// Package server wires the HTTP surface of the gateway: routing, request
// validation, orchestration of page fetching and inference calls, and the
// mapping of failures onto JSON error responses.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/yetmgetaewunetu/ethio-translator-app-backend-service/model"
)

// summarySourceLang is the language code the summarization model emits its
// summaries in. The translation step of every summarize route starts there.
const summarySourceLang = "eng_Latn"

// bodyLimitBytes accommodates audio uploads, which carry no size validation
// of their own.
const bodyLimitBytes = 100 * 1024 * 1024

// InferenceClient is the slice of the inference API the handlers call.
type InferenceClient interface {
	Summarize(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, srcLang, tgtLang string) (string, error)
	Transcribe(ctx context.Context, audio []byte) (string, error)
	Answer(ctx context.Context, question, contextText string) (string, error)
}

// PageFetcher retrieves a web page and reduces it to plain text.
type PageFetcher interface {
	FetchAndExtract(ctx context.Context, url string) (string, error)
}

// Server is the HTTP gateway. Collaborators are injected so tests can swap
// in fakes.
type Server struct {
	app       *fiber.App
	inference InferenceClient
	fetcher   PageFetcher
	uploadDir string
	log       *slog.Logger
}

// New builds the gateway with its routes and middleware registered.
// uploadDir is where audio uploads are staged for the duration of a request.
func New(inference InferenceClient, fetcher PageFetcher, uploadDir string, log *slog.Logger) *Server {
	s := &Server{
		inference: inference,
		fetcher:   fetcher,
		uploadDir: uploadDir,
		log:       log,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
		BodyLimit:             bodyLimitBytes,
	})

	app.Use(requestid.New())
	app.Use(s.logRequests)
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", s.handleHealth)
	app.Post("/summarize-text", s.handleSummarizeText)
	app.Post("/summarize", s.handleSummarizeURL)
	app.Post("/speech-to-text", s.handleSpeechToText)
	app.Post("/translate", s.handleTranslate)
	app.Post("/qa", s.handleQA)

	s.app = app
	return s
}

// Listen serves on addr until the listener fails or the server is shut down.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// ShutdownWithTimeout stops accepting new requests and waits up to timeout
// for in-flight ones to finish.
func (s *Server) ShutdownWithTimeout(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

// logRequests emits one line per request. It runs the error handler itself
// so the logged status matches what the client saw.
func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()

	chainErr := c.Next()
	if chainErr != nil {
		if err := s.errorHandler(c, chainErr); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	s.log.Info("Request handled",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
		"request_id", c.Locals("requestid"))

	return nil
}

// errorHandler converts errors that escape a handler into JSON error bodies.
// Client-error codes keep their message; everything else becomes a generic
// 500 with the root cause going to the log only.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		code = fiberErr.Code
		msg = fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		s.log.Error("Unhandled error",
			"error", err,
			"method", c.Method(),
			"path", c.Path())
	}

	return c.Status(code).JSON(model.ErrorResponse{Error: msg})
}
