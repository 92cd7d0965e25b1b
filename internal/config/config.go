// Package config loads the generator's optional settings. Nothing is
// required: with no environment and no flags the assets are written to
// resources/media using the embedded fonts.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ARTGEN"

// DefaultOutputDir is the conventional Kodi add-on media directory.
const DefaultOutputDir = "resources/media"

var validate = validator.New()

// Config holds all run settings.
type Config struct {
	// OutputDir receives icon.png and fanart.jpg.
	// Env: ARTGEN_OUTPUT_DIR
	OutputDir string `envconfig:"OUTPUT_DIR" default:"resources/media" validate:"required"`

	// FontPath overrides the embedded fonts with a TrueType/OpenType file.
	// A missing or unreadable file is not a config error: rendering logs it
	// and falls back to the embedded fonts.
	// Env: ARTGEN_FONT
	FontPath string `envconfig:"FONT"`

	// QRPayload adds a QR badge to the fanart.
	// Env: ARTGEN_QR
	QRPayload string `envconfig:"QR" validate:"omitempty,url"`

	// Preview shows the fanart on the Linux framebuffer after writing.
	// Env: ARTGEN_PREVIEW
	Preview bool `envconfig:"PREVIEW"`

	// Framebuffer is the device used by Preview.
	// Env: ARTGEN_FRAMEBUFFER
	Framebuffer string `envconfig:"FRAMEBUFFER"`

	// Debug enables the debug log file.
	// Env: ARTGEN_DEBUG
	Debug bool `envconfig:"DEBUG"`

	// DebugLog is the debug log file path.
	// Env: ARTGEN_DEBUG_LOG
	DebugLog string `envconfig:"DEBUG_LOG" default:"./artgen-debug.log"`

	// StdioLog redirects stdout and stderr (including panics) to a file.
	// Env: ARTGEN_STDIO_LOG
	StdioLog string `envconfig:"STDIO_LOG"`
}

// FromEnv loads defaults and environment overrides.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return cfg, nil
}

// Load reads the environment, then parses args with flags whose defaults
// come from the environment, and validates the result.
func Load(name string, args []string) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory for icon.png and fanart.jpg; also configurable via "+envName("OUTPUT_DIR"))
	fs.StringVar(&cfg.FontPath, "font", cfg.FontPath, "TrueType/OpenType font file used for the fanart title; also configurable via "+envName("FONT"))
	fs.StringVar(&cfg.QRPayload, "qr", cfg.QRPayload, "URL to encode as a QR badge on the fanart (optional); also configurable via "+envName("QR"))
	fs.BoolVar(&cfg.Preview, "preview", cfg.Preview, "show the fanart on the framebuffer after writing; also configurable via "+envName("PREVIEW"))
	fs.StringVar(&cfg.Framebuffer, "fb", cfg.Framebuffer, "framebuffer device for -preview; also configurable via "+envName("FRAMEBUFFER"))
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging to "+cfg.DebugLog)
	fs.StringVar(&cfg.StdioLog, "stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+envName("STDIO_LOG"))
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func envName(key string) string { return EnvPrefix + "_" + key }
