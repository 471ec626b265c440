package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for gardenlog, stored in
// ~/.gardenlog/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	Log LogConfig `json:"log"`
	LLM LLMConfig `json:"llm"`
}

// LogConfig holds durable-store settings.
type LogConfig struct {
	// Path overrides the default log file location (~/.gardenlog/garden_log.json).
	Path string `json:"path"`
}

// LLMConfig holds OpenAI Chat Completions settings. The API key itself is
// read from the OPENAI_API_KEY environment variable, never from this file.
type LLMConfig struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4.1-mini"
	// DefaultTemperature keeps refinements close to the rule-based text.
	DefaultTemperature = 0.4
	// DefaultMaxTokens bounds refinement replies.
	DefaultMaxTokens = 600
)

func defaultConfig() Config {
	return Config{
		LLM: LLMConfig{
			Model:       DefaultModel,
			Temperature: DefaultTemperature,
			MaxTokens:   DefaultMaxTokens,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// gardenlog configuration – ~/.gardenlog/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise gardenlog behaviour.
{
  // ── Care log storage ─────────────────────────────────────────────────────
  "log": {
    // Absolute path of the log file. Leave empty for the default
    // ~/.gardenlog/garden_log.json.
    "path": ""
  },

  // ── LLM refinement (advice/diagnosis rewriting, task suggestions) ────────
  // The API key is read from the OPENAI_API_KEY environment variable or a
  // .env file in the working directory; it is never stored here.
  "llm": {
    "model": "gpt-4.1-mini",
    "temperature": 0.4,
    "max_tokens": 600
  }
}
`

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".gardenlog", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.gardenlog/config.json, creating it with annotated defaults
// on first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = DefaultTemperature
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = DefaultMaxTokens
	}

	return cfg, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
