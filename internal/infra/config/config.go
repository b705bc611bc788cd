package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Upload  UploadConfig  `yaml:"upload"`
	Summary SummaryConfig `yaml:"summary"`
	LLM     LLMConfig     `yaml:"llm"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
	MaxUploadBytes int64         `yaml:"maxUploadBytes"`
}

// UploadConfig controls where uploaded documents are spooled while a request runs.
type UploadConfig struct {
	Dir string `yaml:"dir"`
}

// SummaryConfig holds the defaults applied when a request omits generation parameters.
type SummaryConfig struct {
	DefaultModel  string `yaml:"defaultModel"`
	DefaultStyle  string `yaml:"defaultStyle"`
	MaxChunkChars int    `yaml:"maxChunkChars"`
	MinLength     int    `yaml:"minLength"`
	MaxLength     int    `yaml:"maxLength"`
}

// LLMConfig groups credentials for the generation backends.
type LLMConfig struct {
	HF     HFConfig     `yaml:"hf"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

// HFConfig contains Hugging Face Inference API settings.
type HFConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
}

// OpenAIConfig contains OpenAI API settings.
type OpenAIConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

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

	applyEnvOverrides(cfg)

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
	if v := os.Getenv("HTTP_READ_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ReadTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_WRITE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.WriteTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitCSV(v)
	}
	if v := os.Getenv("HTTP_MAX_UPLOAD_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.HTTP.MaxUploadBytes = parsed
		}
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.Upload.Dir = v
	}
	if v := os.Getenv("SUMMARY_DEFAULT_MODEL"); v != "" {
		cfg.Summary.DefaultModel = v
	}
	if v := os.Getenv("SUMMARY_DEFAULT_STYLE"); v != "" {
		cfg.Summary.DefaultStyle = v
	}
	if v := os.Getenv("SUMMARY_MAX_CHUNK_CHARS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MaxChunkChars = parsed
		}
	}
	if v := os.Getenv("SUMMARY_MIN_LENGTH"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MinLength = parsed
		}
	}
	if v := os.Getenv("SUMMARY_MAX_LENGTH"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MaxLength = parsed
		}
	}
	if v := os.Getenv("HF_API_KEY"); v != "" {
		cfg.LLM.HF.APIKey = v
	}
	if v := os.Getenv("HF_BASE_URL"); v != "" {
		cfg.LLM.HF.BaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.LLM.OpenAI.BaseURL = v
	}
}

func splitCSV(raw string) []string {
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
			Address:        ":8080",
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   5 * time.Minute,
			AllowedOrigins: []string{"*"},
			MaxUploadBytes: 16 << 20,
		},
		Upload: UploadConfig{
			Dir: "uploads",
		},
		Summary: SummaryConfig{
			DefaultModel:  "MBZUAI/lamini-flan-t5-248m",
			DefaultStyle:  "Concise",
			MaxChunkChars: 700,
			MinLength:     100,
			MaxLength:     350,
		},
		LLM: LLMConfig{
			HF: HFConfig{
				BaseURL: "https://api-inference.huggingface.co",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.MaxUploadBytes <= 0 {
		return errors.New("http.maxUploadBytes must be positive")
	}
	if c.Upload.Dir == "" {
		return errors.New("upload.dir cannot be empty")
	}
	if c.Summary.DefaultModel == "" {
		return errors.New("summary.defaultModel cannot be empty")
	}
	if c.Summary.MaxChunkChars <= 0 {
		return errors.New("summary.maxChunkChars must be positive")
	}
	if c.Summary.MinLength <= 0 {
		return errors.New("summary.minLength must be positive")
	}
	if c.Summary.MaxLength < c.Summary.MinLength {
		return errors.New("summary.maxLength must be >= summary.minLength")
	}
	return nil
}
