package config

import (
	"errors"
	"fmt"

	"github.com/shadow-worker/soundgen/pkg/sounds"
)

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.OutputRoot == "" {
		errs = append(errs, errors.New("output_root must be set"))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}

	seen := make(map[string]string)
	claim := func(kind, name string) {
		if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("%s %q duplicates a %s of the same name", kind, name, prev))
			return
		}
		seen[name] = kind
	}

	for _, r := range c.Recipes {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		claim("recipe", r.Name)
	}

	// Built-ins not replaced by a config recipe still become batch steps
	for _, r := range sounds.Builtin() {
		if _, ok := seen[r.Name]; !ok {
			seen[r.Name] = "built-in recipe"
		}
	}

	for i, ext := range c.External {
		if ext.Name == "" {
			errs = append(errs, fmt.Errorf("external %d: name must be set", i))
			continue
		}
		if ext.Command == "" {
			errs = append(errs, fmt.Errorf("external %s: command must be set", ext.Name))
		}
		claim("external", ext.Name)
	}

	return errors.Join(errs...)
}
