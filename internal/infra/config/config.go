package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported language model backends.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var defaultModels = map[string]string{
	ProviderGemini: "gemini-2.0-flash-exp",
	ProviderOpenAI: "gpt-4o-mini",
}

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	LLM        LLMConfig        `yaml:"llm"`
	Summary    SummaryConfig    `yaml:"summary"`
	Transcript TranscriptConfig `yaml:"transcript"`
	History    HistoryConfig    `yaml:"history"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// LLMConfig selects and configures the language model backend.
type LLMConfig struct {
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// SummaryConfig shapes the prompt and the parsed reply.
type SummaryConfig struct {
	// MaxTranscriptChars is how much of the transcript is sent to the model.
	MaxTranscriptChars int `yaml:"maxTranscriptChars"`
	MaxTopicChars      int `yaml:"maxTopicChars"`
}

// TranscriptConfig configures the YouTube caption client.
type TranscriptConfig struct {
	Languages []string      `yaml:"languages"`
	Timeout   time.Duration `yaml:"timeout"`
}

// HistoryConfig controls the request audit trail.
type HistoryConfig struct {
	Capacity int            `yaml:"capacity"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads configuration from a YAML file, a .env file, and environment
// variables, in that order of increasing precedence.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}
	applyEnvOverrides(cfg)
	cfg.applyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	} else if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case ProviderGemini:
			cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		case ProviderOpenAI:
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if v := os.Getenv("SUMMARY_MAX_TRANSCRIPT_CHARS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MaxTranscriptChars = parsed
		}
	}
	if v := os.Getenv("SUMMARY_MAX_TOPIC_CHARS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MaxTopicChars = parsed
		}
	}
	if v := os.Getenv("TRANSCRIPT_LANGUAGES"); v != "" {
		cfg.Transcript.Languages = splitList(v)
	}
	if v := os.Getenv("TRANSCRIPT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Transcript.Timeout = parsed
		}
	}
	if v := os.Getenv("HISTORY_CAPACITY"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Capacity = parsed
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_DSN"); v != "" {
		cfg.History.Postgres.DSN = v
	}
	if v := os.Getenv("HISTORY_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
}

// applyProviderDefaults fills the model for the selected provider. A model
// that is another provider's default is replaced too, so switching
// LLM_PROVIDER never sends e.g. a Gemini model name to OpenAI.
func (c *Config) applyProviderDefaults() {
	model := strings.TrimSpace(c.LLM.Model)
	if model == "" || isForeignDefault(c.LLM.Provider, model) {
		c.LLM.Model = defaultModels[c.LLM.Provider]
	}
}

func isForeignDefault(provider, model string) bool {
	for p, m := range defaultModels {
		if p != provider && m == model {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 90 * time.Second,
		},
		LLM: LLMConfig{
			Provider:    ProviderGemini,
			Temperature: 0.2,
		},
		Summary: SummaryConfig{
			MaxTranscriptChars: 3000,
			MaxTopicChars:      50,
		},
		Transcript: TranscriptConfig{
			Languages: []string{"en"},
			Timeout:   20 * time.Second,
		},
		History: HistoryConfig{
			Capacity: 200,
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if _, ok := defaultModels[c.LLM.Provider]; !ok {
		return fmt.Errorf("llm.provider must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, c.LLM.Provider)
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.Summary.MaxTranscriptChars <= 0 {
		return errors.New("summary.maxTranscriptChars must be positive")
	}
	if c.Summary.MaxTopicChars <= 0 {
		return errors.New("summary.maxTopicChars must be positive")
	}
	if c.Transcript.Timeout < 0 {
		return errors.New("transcript.timeout cannot be negative")
	}
	if c.History.Capacity <= 0 {
		return errors.New("history.capacity must be positive")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("metrics.path must start with /")
	}
	return nil
}
