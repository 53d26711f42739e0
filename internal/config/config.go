// Package config loads the huetui configuration file and environment
// overrides.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/huetui/pkg/errors"
)

// Environment variables recognised on top of the config file.
const (
	EnvServerURL = "HUETUI_SERVER_URL"
	EnvLogLevel  = "HUETUI_LOG_LEVEL"
)

// Config is the full huetui configuration document.
type Config struct {
	ServerURL string   `yaml:"server_url" validate:"required,http_url"`
	LogLevel  string   `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	AlertTTL  int      `yaml:"alert_ttl,omitempty" validate:"omitempty,min=1,max=60"`
	Defaults  Defaults `yaml:"defaults,omitempty"`

	// SeedOverrides replaces the built-in seed colors for a style with
	// user-picked hex values.
	SeedOverrides map[string][]string `yaml:"seed_overrides,omitempty" validate:"omitempty,dive,dive,hexcolor"`
}

// Defaults holds the generation settings selected at startup. The values are
// opaque to the client; the service interprets them.
type Defaults struct {
	Style    string `yaml:"style,omitempty"`
	Mood     string `yaml:"mood,omitempty"`
	Lighting string `yaml:"lighting,omitempty"`
	Harmony  string `yaml:"harmony,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ServerURL: "http://localhost:5000",
		LogLevel:  "info",
		AlertTTL:  4,
		Defaults: Defaults{
			Style:    "scandinavian",
			Mood:     "calm",
			Lighting: "daylight",
			Harmony:  "complementary",
		},
	}
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration at path, fills unset fields with defaults and
// applies environment overrides. A missing file is not an error: defaults
// plus the environment apply. A local .env file is honoured before the
// environment is read.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, apperrors.NewParseError(path, 0, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, apperrors.NewParseError(path, extractLine(err), err)
		}
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
