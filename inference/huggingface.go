// Package inference is the client for the HuggingFace Inference API, the
// external service that performs every substantive computation the gateway
// exposes: summarization, translation, speech recognition and question
// answering. The gateway only shapes requests and picks one field out of each
// response.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	inferenceTimeout = 120 * time.Second

	// Every summary is bounded to the same token window regardless of input.
	summaryMinLength = 50
	summaryMaxLength = 70
)

// Sentinel errors for responses that came back 200 but without the one field
// the gateway needs.
var (
	ErrNoSummary       = errors.New("no summary returned by summarization model")
	ErrNoTranslation   = errors.New("no translation returned by translation model")
	ErrNoTranscription = errors.New("no transcription returned by speech-to-text model")
	ErrNoAnswer        = errors.New("no answer returned by question answering model")
)

// Models names the hosted model serving each task.
type Models struct {
	Summarization string
	Translation   string
	SpeechToText  string
	QA            string
}

// Client calls the HuggingFace Inference API. One instance is shared by all
// handlers; construct it once and inject it.
type Client struct {
	token   string
	baseURL string
	models  Models
	client  *http.Client
	log     *slog.Logger
}

// NewClient builds a Client with its own HTTP client. The client timeout is
// the only deadline on inference calls; the gateway adds none of its own.
func NewClient(token, baseURL string, models Models, log *slog.Logger) *Client {
	return &Client{
		token:   token,
		baseURL: baseURL,
		models:  models,
		client:  &http.Client{Timeout: inferenceTimeout},
		log:     log,
	}
}

// Summarize asks the summarization model for a summary of text, bounded to
// the fixed 50-70 token window every route uses.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	payload := map[string]any{
		"inputs": text,
		"parameters": map[string]any{
			"min_length": summaryMinLength,
			"max_length": summaryMaxLength,
		},
	}

	var out []struct {
		SummaryText string `json:"summary_text"`
	}
	if err := c.postJSON(ctx, c.models.Summarization, payload, &out); err != nil {
		return "", fmt.Errorf("summarization: %w", err)
	}

	if len(out) == 0 || out[0].SummaryText == "" {
		return "", ErrNoSummary
	}

	return out[0].SummaryText, nil
}

// Translate translates text between the given language codes. Both codes are
// forwarded to the model verbatim.
func (c *Client) Translate(ctx context.Context, text, srcLang, tgtLang string) (string, error) {
	payload := map[string]any{
		"inputs": text,
		"parameters": map[string]any{
			"src_lang": srcLang,
			"tgt_lang": tgtLang,
		},
	}

	var out []struct {
		TranslationText string `json:"translation_text"`
	}
	if err := c.postJSON(ctx, c.models.Translation, payload, &out); err != nil {
		return "", fmt.Errorf("translation: %w", err)
	}

	if len(out) == 0 || out[0].TranslationText == "" {
		return "", ErrNoTranslation
	}

	return out[0].TranslationText, nil
}

// Transcribe sends raw audio bytes to the speech-to-text model. The audio is
// forwarded as-is; type and size are the model's problem.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	var out struct {
		Text string `json:"text"`
	}
	if err := c.post(ctx, c.models.SpeechToText, "application/octet-stream", bytes.NewReader(audio), &out); err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}

	if out.Text == "" {
		return "", ErrNoTranscription
	}

	return out.Text, nil
}

// Answer asks the question answering model to answer question against the
// given context text. The answer is returned verbatim.
func (c *Client) Answer(ctx context.Context, question, contextText string) (string, error) {
	payload := map[string]any{
		"inputs": map[string]string{
			"question": question,
			"context":  contextText,
		},
	}

	var out struct {
		Answer string `json:"answer"`
	}
	if err := c.postJSON(ctx, c.models.QA, payload, &out); err != nil {
		return "", fmt.Errorf("question answering: %w", err)
	}

	if out.Answer == "" {
		return "", ErrNoAnswer
	}

	return out.Answer, nil
}

func (c *Client) postJSON(ctx context.Context, model string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	return c.post(ctx, model, "application/json", bytes.NewReader(body), out)
}

func (c *Client) post(ctx context.Context, model, contentType string, body io.Reader, out any) error {
	url := fmt.Sprintf("%s/models/%s", c.baseURL, model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Error("Failed to close response body",
				"error", err,
				"model", model)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("inference API returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
