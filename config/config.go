package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPromptsYAML []byte

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GoogleAPIKey  string `env:"GOOGLE_API_KEY"`
	BaseURL       string `env:"RPS_JUDGE_BASE_URL"` // empty selects the Gemini endpoint
	Model         string `env:"RPS_JUDGE_MODEL"`    // empty selects the default model
	PromptsPath   string `env:"RPS_PROMPTS_PATH"`
	LogLevel      string `env:"RPS_LOG_LEVEL" envDefault:"warn"`
	ServerAddress string `env:"RPS_SERVER_ADDR" envDefault:":8080"`
}

// Prompts are the fixed texts sent to the judge alongside each round.
type Prompts struct {
	System            string `yaml:"system_prompt"`
	InstructionHeader string `yaml:"instruction_header"`
}

// Load reads envFile if it exists, without overriding variables that are
// already set, then parses the environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// APIKey prefers GEMINI_API_KEY and falls back to GOOGLE_API_KEY.
func (c Config) APIKey() string {
	if k := strings.TrimSpace(c.GeminiAPIKey); k != "" {
		return k
	}
	return strings.TrimSpace(c.GoogleAPIKey)
}

// DefaultPrompts returns the built-in prompts.
func DefaultPrompts() Prompts {
	var p Prompts
	if err := yaml.Unmarshal(defaultPromptsYAML, &p); err != nil {
		panic(fmt.Sprintf("embedded prompts.yaml: %v", err))
	}
	p.System = strings.TrimSpace(p.System)
	p.InstructionHeader = strings.TrimSpace(p.InstructionHeader)
	return p
}

// LoadPrompts reads a prompt file. An empty path yields the built-in prompts,
// and fields left empty in the file fall back to them.
func LoadPrompts(path string) (Prompts, error) {
	defaults := DefaultPrompts()
	if path == "" {
		return defaults, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Prompts{}, fmt.Errorf("failed to read prompts file %s: %w", path, err)
	}
	var p Prompts
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Prompts{}, fmt.Errorf("failed to parse prompts file %s: %w", path, err)
	}

	p.System = strings.TrimSpace(p.System)
	p.InstructionHeader = strings.TrimSpace(p.InstructionHeader)
	if p.System == "" {
		p.System = defaults.System
	}
	if p.InstructionHeader == "" {
		p.InstructionHeader = defaults.InstructionHeader
	}
	return p, nil
}
