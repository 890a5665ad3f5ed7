// Package config resolves settings from config.json and CLI arguments.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"

	"w3u-navigator/internal/model"
)

// LoadedConfigPath tracks which config file was loaded, for diagnostics.
var LoadedConfigPath string

// ReadConfig reads config.json from known locations. A missing config file
// is not an error; the navigator runs fine on defaults.
func ReadConfig() (*model.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPaths := []string{
		"config.json",
		filepath.Join(homeDir, ".w3unav", "config.json"),
		filepath.Join(homeDir, ".config", "w3unav", "config.json"),
	}

	var data []byte
	var configPath string
	for _, path := range configPaths {
		data, err = os.ReadFile(path)
		if err == nil {
			configPath = path
			break
		}
	}
	if data == nil {
		return &model.Config{}, nil
	}

	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config at %s: %w", configPath, err)
	}
	LoadedConfigPath = configPath
	return &cfg, nil
}

// ParseArgs parses CLI arguments using go-arg.
func ParseArgs() *model.Args {
	var args model.Args
	arg.MustParse(&args)
	return &args
}

// Resolve overlays CLI arguments onto cfg and fills defaults: flags win over
// config.json, config.json wins over the built-in defaults.
func Resolve(cfg *model.Config, args *model.Args) {
	if args.URL != "" {
		cfg.StartURL = args.URL
	}
	if cfg.StartURL == "" {
		cfg.StartURL = model.DefaultStartURL
	}
	if args.CacheDir != "" {
		cfg.CacheDir = args.CacheDir
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "."
	}
	if args.NoColor {
		cfg.NoColor = true
	}
}

// ParseCfg reads config, parses CLI args, and returns the resolved pair.
func ParseCfg() (*model.Config, *model.Args, error) {
	cfg, err := ReadConfig()
	if err != nil {
		return nil, nil, err
	}
	args := ParseArgs()
	Resolve(cfg, args)
	return cfg, args, nil
}
