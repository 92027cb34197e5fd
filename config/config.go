// Package config reads the gateway configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the gateway reads at startup. The inference API
// token is mandatory: the process must not come up without it.
type Config struct {
	Port      int    `env:"PORT"       envDefault:"9001"`
	HFToken   string `env:"HF_TOKEN,required,notEmpty"`
	HFBaseURL string `env:"HF_API_URL" envDefault:"https://api-inference.huggingface.co"`

	SummarizationModel string `env:"SUMMARIZATION_MODEL"  envDefault:"facebook/bart-large-cnn"`
	TranslationModel   string `env:"TRANSLATION_MODEL"    envDefault:"facebook/nllb-200-distilled-600M"`
	SpeechToTextModel  string `env:"SPEECH_TO_TEXT_MODEL" envDefault:"openai/whisper-large-v3"`
	QAModel            string `env:"QA_MODEL"             envDefault:"deepset/roberta-base-squad2"`

	// UploadDir is where uploaded audio is spooled before transcription.
	// Defaults to the system temp directory.
	UploadDir string `env:"UPLOAD_DIR"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = os.TempDir()
	}

	return cfg, nil
}
