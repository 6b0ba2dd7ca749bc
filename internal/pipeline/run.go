// Package pipeline coordinates one CV generation run: path resolution,
// loading, validation, rendering and the final PDF build.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mbarbosa/cvgen/internal/config"
	"github.com/mbarbosa/cvgen/internal/document"
	"github.com/mbarbosa/cvgen/internal/jsonio"
	"github.com/mbarbosa/cvgen/internal/localization"
	"github.com/mbarbosa/cvgen/internal/logging"
	"github.com/mbarbosa/cvgen/internal/render"
	"github.com/mbarbosa/cvgen/internal/styles"
	"github.com/mbarbosa/cvgen/internal/validation"
)

// Options are the per-invocation inputs. All fields are optional; empty
// values fall back to the configuration defaults.
type Options struct {
	Language   string // target language code, e.g. "pt" or "en"
	InputPath  string // explicit CV data file, overrides config
	OutputPath string // explicit output PDF path, bypasses name-based computation
}

// Service runs CV generations against one loaded configuration. Each call
// to Generate is an independent, single-threaded run.
type Service struct {
	cfg     *config.AppConfig
	logger  *slog.Logger
	builder document.Builder
}

// NewService wires a service around a loaded configuration with the default
// Chrome-backed PDF builder.
func NewService(cfg *config.AppConfig, logger *slog.Logger) *Service {
	return &Service{
		cfg:     cfg,
		logger:  logger,
		builder: document.NewChromeBuilder(),
	}
}

// NewServiceWithBuilder is NewService with an explicit builder, used by
// tests and by callers embedding a different PDF backend.
func NewServiceWithBuilder(cfg *config.AppConfig, logger *slog.Logger, builder document.Builder) *Service {
	svc := NewService(cfg, logger)
	svc.builder = builder
	return svc
}

// Config exposes the loaded configuration.
func (s *Service) Config() *config.AppConfig {
	return s.cfg
}

// Generate runs the full pipeline and returns the absolute path of the PDF
// it produced.
func (s *Service) Generate(ctx context.Context, opts Options) (string, error) {
	language := strings.ToLower(opts.Language)
	if language == "" {
		language = s.cfg.Defaults.Language
	}
	requestID := newRequestID()

	dataPath, err := s.resolveDataPath(opts.InputPath, language)
	if err != nil {
		return "", err
	}
	stylesPath, err := s.cfg.ResolvePath(s.cfg.Files.Styles)
	if err != nil {
		return "", err
	}
	translationsPath, err := s.resolveTranslationsPath(language)
	if err != nil {
		return "", err
	}

	started := time.Now()
	encoding := s.cfg.Defaults.Encoding

	cvData, err := jsonio.Load(dataPath, encoding)
	if err != nil {
		return "", err
	}
	visualSettings, err := jsonio.Load(stylesPath, encoding)
	if err != nil {
		return "", err
	}
	translations, err := jsonio.Load(translationsPath, encoding)
	if err != nil {
		return "", err
	}

	outputPath, err := s.resolveOutputPath(opts.OutputPath, cvData, language)
	if err != nil {
		return "", err
	}

	logger := s.logger.With(
		"request_id", requestID,
		"language", language,
		"input_file", dataPath,
		"output_file", outputPath,
	)
	logger.Info("starting CV generation workflow", "event", "app_start", "step", "pipeline")

	if err := validation.ValidateCVData(cvData); err != nil {
		return "", err
	}
	logger.Info("input data validated successfully", "event", "input_validated", "step", "validation")

	engine, err := styles.NewEngine(visualSettings)
	if err != nil {
		return "", err
	}

	renderer := render.New(language, translations, engine, logger)
	if err := renderer.RenderCV(ctx, cvData, outputPath, s.builder); err != nil {
		return "", err
	}

	logger.Info("CV generation finished",
		"event", "app_finished", "step", "pipeline",
		"duration_ms", time.Since(started).Milliseconds())
	return outputPath, nil
}

// resolveOutputPath honors an explicit override exactly; otherwise it
// computes {outputDir}/{name}_{role}{suffix}.pdf from sanitized CV fields
// and refuses any result that lands outside the output directory.
func (s *Service) resolveOutputPath(override string, cvData map[string]any, language string) (string, error) {
	if override != "" {
		resolved, err := filepath.Abs(override)
		if err != nil {
			return "", &OutputPathError{Message: fmt.Sprintf("failed to resolve output path %s: %v", override, err)}
		}
		if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
			return "", &OutputPathError{Message: fmt.Sprintf("failed to create output directory: %v", err)}
		}
		return resolved, nil
	}

	outputDir, err := s.cfg.ResolvePath(s.cfg.Files.OutputDir)
	if err != nil {
		return "", &OutputPathError{Message: fmt.Sprintf("failed to resolve output directory: %v", err)}
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", &OutputPathError{Message: fmt.Sprintf("failed to create output directory: %v", err)}
	}

	personalInfo, _ := cvData["personal_info"].(map[string]any)
	desiredRole, _ := cvData["desired_role"].(map[string]any)

	nameComponent := localization.SanitizeFilenameComponent(localization.Stringify(personalInfo["name"]), "CV")
	roleComponent := localization.SanitizeFilenameComponent(
		localization.ResolveField(desiredRole, "desired_role", language, "CV"), "CV")

	languageSuffix := ""
	if language != "pt" {
		languageSuffix = "_" + strings.ToUpper(language)
	}

	candidate := filepath.Join(outputDir, fmt.Sprintf("%s_%s%s.pdf", nameComponent, roleComponent, languageSuffix))
	resolved, err := filepath.Abs(candidate)
	if err != nil {
		return "", &OutputPathError{Message: fmt.Sprintf("failed to resolve output path: %v", err)}
	}

	// The sanitized components cannot traverse, but the containment check
	// stays as a hard guarantee.
	rel, err := filepath.Rel(outputDir, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &OutputPathError{Message: "generated output path escaped output directory"}
	}
	return resolved, nil
}

func (s *Service) resolveDataPath(explicit, language string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	return s.resolveLanguageAwarePath(s.cfg.Files.Data, s.cfg.Files.DataByLanguage, language, "data")
}

func (s *Service) resolveTranslationsPath(language string) (string, error) {
	return s.resolveLanguageAwarePath(s.cfg.Files.Translations, s.cfg.Files.TranslationsByLanguage, language, "translations")
}

// resolveLanguageAwarePath prefers a single direct path; the per-language
// map is the fallback, and a language missing from it is a hard error.
func (s *Service) resolveLanguageAwarePath(directPath string, pathByLanguage map[string]string, language, label string) (string, error) {
	if directPath != "" {
		return s.cfg.ResolvePath(directPath)
	}
	if mapped, ok := pathByLanguage[language]; ok && mapped != "" {
		return s.cfg.ResolvePath(mapped)
	}
	return "", &OutputPathError{Message: fmt.Sprintf("no %s file configured for language '%s'", label, language)}
}

// newRequestID returns a short hex id binding one generation run's log
// records together.
func newRequestID() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:4])
}

// NewLogger builds the service logger from a loaded configuration, placing
// the sink in the config-relative logs directory.
func NewLogger(cfg *config.AppConfig) (*slog.Logger, io.Closer, error) {
	logsDir, err := cfg.ResolvePath(cfg.Logging.Directory)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(cfg.Logging, logsDir)
}
