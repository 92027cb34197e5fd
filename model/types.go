// Package model defines the transient request and response payloads of the
// gateway. Nothing here outlives a single request.
package model

// SummarizeTextRequest is the body of POST /summarize-text.
type SummarizeTextRequest struct {
	Text    string `json:"text"`
	TgtLang string `json:"tgtLang"`
}

// SummarizeURLRequest is the body of POST /summarize.
type SummarizeURLRequest struct {
	URL     string `json:"url"`
	TgtLang string `json:"tgtLang"`
}

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text    string `json:"text"`
	SrcLang string `json:"srcLang"`
	TgtLang string `json:"tgtLang"`
}

// QARequest is the body of POST /qa.
type QARequest struct {
	URL      string `json:"url"`
	Question string `json:"question"`
}

// SummarizeTextResponse and SummarizeURLResponse carry the same kind of value
// under different keys; existing clients depend on both shapes, so the two
// routes must not be unified.
type SummarizeTextResponse struct {
	TranslatedSummary string `json:"translatedSummary"`
}

// SummarizeURLResponse is the success body of POST /summarize.
type SummarizeURLResponse struct {
	Summary string `json:"summary"`
}

// TranscriptionResponse is the success body of POST /speech-to-text.
type TranscriptionResponse struct {
	Transcription string `json:"transcription"`
}

// TranslateResponse is the success body of POST /translate.
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// QAResponse is the success body of POST /qa.
type QAResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
