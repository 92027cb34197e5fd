package server

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yetmgetaewunetu/ethio-translator-app-backend-service/model"
)

// isBlank reports whether a required field counts as missing. Whitespace-only
// values do.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: msg})
}

// serverError logs the root cause and answers 500 with msg. Most routes pass
// err.Error() as msg; /translate passes its fixed message instead.
func (s *Server) serverError(c *fiber.Ctx, err error, msg string) error {
	s.log.Error("Request failed",
		"error", err,
		"method", c.Method(),
		"path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: msg})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(model.HealthResponse{Status: "ok"})
}

// handleSummarizeText summarizes the posted text, then translates the summary
// into the requested target language.
func (s *Server) handleSummarizeText(c *fiber.Ctx) error {
	var req model.SummarizeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if isBlank(req.Text) || isBlank(req.TgtLang) {
		return badRequest(c, "text and tgtLang fields are required")
	}

	summary, err := s.inference.Summarize(c.Context(), req.Text)
	if err != nil {
		return s.serverError(c, err, err.Error())
	}

	translated, err := s.inference.Translate(c.Context(), summary, summarySourceLang, req.TgtLang)
	if err != nil {
		return s.serverError(c, err, err.Error())
	}

	return c.JSON(model.SummarizeTextResponse{TranslatedSummary: translated})
}

// handleSummarizeURL fetches a page, strips it to plain text, summarizes it,
// then translates the summary into the requested target language.
func (s *Server) handleSummarizeURL(c *fiber.Ctx) error {
	var req model.SummarizeURLRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if isBlank(req.URL) || isBlank(req.TgtLang) {
		return badRequest(c, "url and tgtLang fields are required")
	}

	text, err := s.fetcher.FetchAndExtract(c.Context(), req.URL)
	if err != nil {
		return s.serverError(c, err, err.Error())
	}

	summary, err := s.inference.Summarize(c.Context(), text)
	if err != nil {
		return s.serverError(c, err, err.Error())
	}

	translated, err := s.inference.Translate(c.Context(), summary, summarySourceLang, req.TgtLang)
	if err != nil {
		return s.serverError(c, err, err.Error())
	}

	return c.JSON(model.SummarizeURLResponse{Summary: translated})
}

// handleSpeechToText stages the uploaded audio in a temp file, transcribes
// its bytes, and deletes the file before returning on every path.
func (s *Server) handleSpeechToText(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return badRequest(c, "audio file is required")
	}

	path := filepath.Join(s.uploadDir, uuid.New().String()+filepath.Ext(file.Filename))
	// A failed save can still leave a partial file behind, so removal is
	// registered before the save.
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.log.Error("Failed to delete uploaded audio",
				"error", err,
				"path", path)
		}
	}()

	if err := c.SaveFile(file, path); err != nil {
		return s.serverError(c, err, "failed to store uploaded audio")
	}

	audio, err := os.ReadFile(path)
	if err != nil {
		return s.serverError(c, err, "failed to read uploaded audio")
	}

	transcription, err := s.inference.Transcribe(c.Context(), audio)
	if err != nil {
		return s.serverError(c, err, err.Error())
	}

	return c.JSON(model.TranscriptionResponse{Transcription: transcription})
}

// handleTranslate performs a single translation call with the caller's
// language codes forwarded verbatim.
func (s *Server) handleTranslate(c *fiber.Ctx) error {
	var req model.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if isBlank(req.Text) || isBlank(req.SrcLang) || isBlank(req.TgtLang) {
		return badRequest(c, "text, srcLang and tgtLang fields are required")
	}

	translated, err := s.inference.Translate(c.Context(), req.Text, req.SrcLang, req.TgtLang)
	if err != nil {
		// Clients always get the same message on this route; the cause is
		// only logged.
		return s.serverError(c, err, "translation failed")
	}

	return c.JSON(model.TranslateResponse{TranslatedText: translated})
}

// handleQA fetches a page, strips it to plain text, and asks the question
// answering model with that text as context.
func (s *Server) handleQA(c *fiber.Ctx) error {
	var req model.QARequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if isBlank(req.URL) || isBlank(req.Question) {
		return badRequest(c, "url and question fields are required")
	}

	text, err := s.fetcher.FetchAndExtract(c.Context(), req.URL)
	if err != nil {
		return s.serverError(c, err, err.Error())
	}

	answer, err := s.inference.Answer(c.Context(), req.Question, text)
	if err != nil {
		return s.serverError(c, err, err.Error())
	}

	return c.JSON(model.QAResponse{Answer: answer})
}
