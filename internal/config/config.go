package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/shadow-worker/soundgen/pkg/audio"
	"github.com/shadow-worker/soundgen/pkg/sounds"
)

//go:embed sample_config.toml
var sampleConfig string

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "soundgen.toml"

// External describes a sibling generator launched as a batch step.
type External struct {
	Name    string   `toml:"name"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Dir     string   `toml:"dir"`
}

// Config is the complete soundgen configuration.
type Config struct {
	OutputRoot string          `toml:"output_root"`
	SampleRate int             `toml:"sample_rate"`
	Workers    int             `toml:"workers"`
	LogFile    string          `toml:"log_file"`
	Recipes    []sounds.Recipe `toml:"recipe"`
	External   []External      `toml:"external"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		OutputRoot: "resources",
		SampleRate: audio.DefaultSampleRate,
		LogFile:    "soundgen.log",
	}
}

// SampleConfig returns an annotated example configuration file.
func SampleConfig() string {
	return sampleConfig
}

// Parse decodes TOML over the defaults, then normalizes and validates.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load locates, parses, and validates a configuration file. An explicit path
// must exist; otherwise DefaultFileName in the working directory is used when
// present. The returned bool reports whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if !exists {
		cfg := Default()
		if err := cfg.normalize(); err != nil {
			return nil, "", false, err
		}
		return &cfg, resolved, false, nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", false, fmt.Errorf("open config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, "", false, fmt.Errorf("%s: %w", resolved, err)
	}

	return cfg, resolved, true, nil
}

// Library returns the built-in recipes with the configured recipes merged in.
func (c *Config) Library() []sounds.Recipe {
	return sounds.Merge(sounds.Builtin(), c.Recipes)
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs(DefaultFileName)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(projectPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return projectPath, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", projectPath)
	}
	return projectPath, true, nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.OutputRoot) != "" {
		root, err := expandPath(c.OutputRoot)
		if err != nil {
			return err
		}
		c.OutputRoot = root
	} else {
		c.OutputRoot = ""
	}

	if strings.TrimSpace(c.LogFile) != "" {
		logFile, err := expandPath(c.LogFile)
		if err != nil {
			return err
		}
		c.LogFile = logFile
	}

	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}

	for i := range c.Recipes {
		c.Recipes[i].Name = strings.TrimSpace(c.Recipes[i].Name)
	}
	for i := range c.External {
		c.External[i].Name = strings.TrimSpace(c.External[i].Name)
		c.External[i].Command = strings.TrimSpace(c.External[i].Command)
	}
	return nil
}
