package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/huetui/internal/client"
	"github.com/alexisbeaulieu97/huetui/internal/config"
	"github.com/alexisbeaulieu97/huetui/internal/controller"
	"github.com/alexisbeaulieu97/huetui/internal/logger"
	"github.com/alexisbeaulieu97/huetui/internal/palette"
)

// appContext bundles everything a command needs: configuration, logging and
// the wired controller.
type appContext struct {
	cfg  *config.Config
	log  *logger.Logger
	ctrl *controller.Controller
}

// newAppContext loads configuration and builds the controller stack.
func newAppContext(flags *rootFlags) (*appContext, error) {
	path := flags.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.serverURL != "" {
		cfg.ServerURL = flags.serverURL
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, err
	}

	svc := client.New(cfg.ServerURL, &http.Client{}, log)
	ctrl := controller.New(svc, controller.Settings{
		Style:    cfg.Defaults.Style,
		Mood:     cfg.Defaults.Mood,
		Lighting: cfg.Defaults.Lighting,
		Harmony:  cfg.Defaults.Harmony,
	}, log)
	if len(cfg.SeedOverrides) > 0 {
		seeds, err := parseSeedOverrides(cfg.SeedOverrides)
		if err != nil {
			return nil, err
		}
		ctrl.SetSeedOverrides(seeds)
	}

	return &appContext{cfg: cfg, log: log, ctrl: ctrl}, nil
}

// parseSeedOverrides converts the validated hex strings from the config into
// RGB seeds per style.
func parseSeedOverrides(overrides map[string][]string) (map[string][]palette.RGB, error) {
	seeds := make(map[string][]palette.RGB, len(overrides))
	for style, hexes := range overrides {
		for _, hex := range hexes {
			rgb, err := palette.ParseHex(hex)
			if err != nil {
				return nil, err
			}
			seeds[style] = append(seeds[style], rgb)
		}
	}
	return seeds, nil
}

func defaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "huetui.yaml"
	}
	return filepath.Join(base, "huetui", "config.yaml")
}
