package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
)

// ErrInvalidConfig marks configuration combinations the pipeline refuses to
// run with. These are fatal at startup.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	GroqAPIKey string `env:"GROQ_API_KEY"`
	GroqURL    string `env:"GROQ_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel  string `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`

	OllamaURL        string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaEmbedModel string `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`

	DocsDir    string `env:"DOCS_DIR" envDefault:"./data"`
	DataDir    string `env:"DATA_DIR" envDefault:"./chroma_db"`
	Collection string `env:"COLLECTION" envDefault:"tour_guide"`

	ChunkSize    int     `env:"CHUNK_SIZE" envDefault:"500"`
	ChunkOverlap int     `env:"CHUNK_OVERLAP" envDefault:"50"`
	TopK         int     `env:"TOP_K" envDefault:"3"`
	MaxTokens    int     `env:"MAX_TOKENS" envDefault:"500"`
	Temperature  float64 `env:"TEMPERATURE" envDefault:"0.7"`
	HistoryTurns int     `env:"HISTORY_TURNS" envDefault:"3"`
}

func Init(cfg *Config) error {
	return env.Parse(cfg)
}

// Validate checks everything that must hold before any document is touched.
func (c *Config) Validate() error {
	if c.GroqAPIKey == "" {
		return fmt.Errorf("%w: GROQ_API_KEY is not set (get a key at https://console.groq.com/ and put it in .env)", ErrInvalidConfig)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: CHUNK_SIZE must be positive, got %d", ErrInvalidConfig, c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("%w: CHUNK_OVERLAP (%d) must be non-negative and smaller than CHUNK_SIZE (%d)", ErrInvalidConfig, c.ChunkOverlap, c.ChunkSize)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("%w: TOP_K must be positive, got %d", ErrInvalidConfig, c.TopK)
	}
	if c.HistoryTurns < 0 {
		return fmt.Errorf("%w: HISTORY_TURNS must be non-negative, got %d", ErrInvalidConfig, c.HistoryTurns)
	}
	return nil
}
