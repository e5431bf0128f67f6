package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const fileName = "todo.toml"

// LoadOptions controls where Load looks. Zero values mean the process
// defaults (working directory, os.UserConfigDir, os.Getenv).
type LoadOptions struct {
	Path    string
	WorkDir string
	UserDir string
	Getenv  func(string) string
}

// Load merges defaults, config files and environment into a Config.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.Path != "" {
		if err := loadConfigFile(cfg, opts.Path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", opts.Path, err)
		}
	} else {
		for _, p := range []string{findUserConfigFile(opts.UserDir), findProjectConfigFile(opts.WorkDir)} {
			if p == "" {
				continue
			}
			if err := loadConfigFile(cfg, p); err != nil {
				return nil, fmt.Errorf("loading config file %s: %w", p, err)
			}
		}
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	loadFromEnv(cfg, getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the merged values, e.g. after flags were applied.
func (c *Config) Validate() error {
	return validateDocument(c)
}

func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return err
	}

	var fileCfg Config
	md, err := toml.Decode(string(data), &fileCfg)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	merge(cfg, &fileCfg, md)
	cfg.Files = append(cfg.Files, path)
	return nil
}

// merge copies the keys defined in the file over cfg.
func merge(cfg, file *Config, md toml.MetaData) {
	if md.IsDefined("title") {
		cfg.Title = file.Title
	}
	if md.IsDefined("theme") {
		cfg.Theme = file.Theme
	}
	if md.IsDefined("group") {
		cfg.Group = file.Group
	}
	if md.IsDefined("log_level") {
		cfg.LogLevel = file.LogLevel
	}
	if md.IsDefined("color") {
		cfg.Color = file.Color
	}
	if md.IsDefined("items") {
		cfg.Items = file.Items
	}
}

func loadFromEnv(cfg *Config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv("TODO_TITLE")); v != "" {
		cfg.Title = v
	}
	if v := strings.TrimSpace(getenv("TODO_THEME")); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv("TODO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	// https://no-color.org: any non-empty value disables colour.
	if getenv("NO_COLOR") != "" {
		cfg.Color = "never"
	}
}

func findUserConfigFile(dir string) string {
	if dir == "" {
		d, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(d, "todolist")
	}
	return existing(filepath.Join(dir, fileName))
}

func findProjectConfigFile(workDir string) string {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		workDir = wd
	}
	for _, name := range []string{fileName, "." + fileName} {
		if p := existing(filepath.Join(workDir, name)); p != "" {
			return p
		}
	}
	return ""
}

func existing(path string) string {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return path // let the read report it
		}
		return ""
	}
	return path
}
