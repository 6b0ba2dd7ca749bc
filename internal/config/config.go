// Package config loads and validates the application configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FileSettings points at the input documents and the output directory.
// Either a direct path or a per-language map must be present for data and
// translations; the direct path wins when both exist.
type FileSettings struct {
	Data                   string            `json:"data,omitempty"`
	DataByLanguage         map[string]string `json:"data_by_language,omitempty"`
	Styles                 string            `json:"styles" validate:"required"`
	Translations           string            `json:"translations,omitempty"`
	TranslationsByLanguage map[string]string `json:"translations_by_language,omitempty"`
	OutputDir              string            `json:"output_dir" validate:"required"`
}

// DefaultSettings carries runtime defaults applied when the CLI does not
// override them.
type DefaultSettings struct {
	Language string `json:"language,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

// LoggingSettings configures the append-only log sink.
type LoggingSettings struct {
	Enabled   *bool  `json:"enabled,omitempty"`
	Level     string `json:"level,omitempty"`
	Directory string `json:"directory,omitempty"`
}

// SinkEnabled reports whether logging is on; it defaults to true when the
// config omits the flag.
func (s LoggingSettings) SinkEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// AppConfig is the parsed application configuration. Paths resolve relative
// to the directory holding the config file.
type AppConfig struct {
	Files    FileSettings    `json:"files" validate:"required"`
	Defaults DefaultSettings `json:"defaults"`
	Logging  LoggingSettings `json:"logging"`

	dir string
}

// Load reads, parses and validates a configuration file.
func Load(path string) (*AppConfig, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to resolve config path %s", path), Cause: err}
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Message: fmt.Sprintf("configuration file not found: %s", resolved)}
		}
		return nil, &Error{Message: fmt.Sprintf("failed to read configuration file: %s", resolved), Cause: err}
	}

	var cfg AppConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, &Error{Message: fmt.Sprintf("configuration file has invalid JSON: %s", resolved), Cause: err}
	}
	cfg.dir = filepath.Dir(resolved)
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Defaults.Language == "" {
		c.Defaults.Language = "pt"
	}
	c.Defaults.Language = strings.ToLower(c.Defaults.Language)
	if c.Defaults.Encoding == "" {
		c.Defaults.Encoding = "utf-8"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "INFO"
	}
	if c.Logging.Directory == "" {
		c.Logging.Directory = "logs"
	}

	lowered := make(map[string]string, len(c.Files.DataByLanguage))
	for language, path := range c.Files.DataByLanguage {
		lowered[strings.ToLower(language)] = path
	}
	if len(lowered) > 0 {
		c.Files.DataByLanguage = lowered
	}

	lowered = make(map[string]string, len(c.Files.TranslationsByLanguage))
	for language, path := range c.Files.TranslationsByLanguage {
		lowered[strings.ToLower(language)] = path
	}
	if len(lowered) > 0 {
		c.Files.TranslationsByLanguage = lowered
	}
}

func (c *AppConfig) validate() error {
	if err := validator.New().Struct(c); err != nil {
		var missing []string
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				switch fe.StructNamespace() {
				case "AppConfig.Files.Styles":
					missing = append(missing, "styles")
				case "AppConfig.Files.OutputDir":
					missing = append(missing, "output_dir")
				default:
					missing = append(missing, fe.Field())
				}
			}
			return &Error{Message: "missing required config keys in 'files': " + strings.Join(missing, ", ")}
		}
		return &Error{Message: "invalid configuration", Cause: err}
	}

	var missing []string
	if c.Files.Data == "" && len(c.Files.DataByLanguage) == 0 {
		missing = append(missing, "data or data_by_language")
	}
	if c.Files.Translations == "" && len(c.Files.TranslationsByLanguage) == 0 {
		missing = append(missing, "translations or translations_by_language")
	}
	if len(missing) > 0 {
		return &Error{Message: "missing required config keys in 'files': " + strings.Join(missing, ", ")}
	}

	for mapKey, mapping := range map[string]map[string]string{
		"data_by_language":         c.Files.DataByLanguage,
		"translations_by_language": c.Files.TranslationsByLanguage,
	} {
		for language, path := range mapping {
			if strings.TrimSpace(path) == "" {
				return &Error{Message: fmt.Sprintf("key '%s' has invalid path for language '%s'", mapKey, language)}
			}
		}
	}
	return nil
}

// ResolvePath resolves a configured path relative to the config file's
// directory, preserving absolute paths and expanding a leading tilde.
func (c *AppConfig) ResolvePath(raw string) (string, error) {
	expanded, err := expandHome(raw)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Abs(filepath.Join(c.dir, expanded))
}

func expandPath(raw string) (string, error) {
	expanded, err := expandHome(raw)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

func expandHome(raw string) (string, error) {
	if raw == "~" || strings.HasPrefix(raw, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(raw, "~")), nil
	}
	return raw, nil
}
