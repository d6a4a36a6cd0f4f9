package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider    string            `yaml:"provider"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Summary     SummaryConfig     `yaml:"summary"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type SummaryConfig struct {
	MaxTokens int `yaml:"max_tokens"`
}

type TranscriptConfig struct {
	Languages []string `yaml:"languages"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the YAML config file at path, applies environment variable
// overrides, and fills defaults. A missing config file is not an error;
// the tool runs on environment variables and defaults alone.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("YOUTEXT_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		c.Gemini.APIKeys = splitKeys(v)
	}
	if v := os.Getenv("YOUTEXT_OUTPUT"); v != "" {
		c.Paths.Output = v
	}
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Validate fills defaults and rejects values the pipeline cannot run with.
// Completion credentials are checked later, when a command that talks to
// the completion service constructs its client.
func (c *Config) Validate() error {
	if c.Provider == "" {
		c.Provider = "openai"
	}
	if c.Provider != "openai" && c.Provider != "gemini" {
		return fmt.Errorf("provider must be %q or %q, got %q", "openai", "gemini", c.Provider)
	}

	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Summary.MaxTokens == 0 {
		c.Summary.MaxTokens = 4096
	}
	if c.Summary.MaxTokens < 1 {
		return fmt.Errorf("summary.max_tokens must be at least 1, got %d", c.Summary.MaxTokens)
	}
	if len(c.Transcript.Languages) == 0 {
		c.Transcript.Languages = []string{"en"}
	}

	if c.Paths.Output == "" {
		c.Paths.Output = os.TempDir()
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
