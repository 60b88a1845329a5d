// ABOUTME: Recipe type definitions
// ABOUTME: Defines oscillator layers, post-processing and validation
package sounds

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/shadow-worker/soundgen/pkg/audio"
	"github.com/shadow-worker/soundgen/pkg/audio/synth"
)

// MaxDuration is the longest recipe accepted, in seconds. Sine still
// enforces audio.MaxSamples at render time for high sample rates.
const MaxDuration = 300.0

// Layer is one sine oscillator in a recipe
type Layer struct {
	Frequency float64 `toml:"frequency"`
	Amplitude float64 `toml:"amplitude"`
}

// Recipe declares how to build one sound. Layers share the duration and
// are summed before post-processing. When both are set, the envelope is
// applied before normalization.
type Recipe struct {
	Name     string  `toml:"name"`
	Path     string  `toml:"path"`
	Duration float64 `toml:"duration"`
	Layers   []Layer `toml:"layers"`

	Envelope *synth.ADSR `toml:"envelope,omitempty"`
	// NormalizePeak is the target peak; zero disables normalization
	NormalizePeak float64 `toml:"normalize_peak,omitempty"`
}

// OutputPath returns the recipe's file under root. Recipes without a path
// are written to sounds/<name>.wav.
func (r Recipe) OutputPath(root string) string {
	rel := r.Path
	if rel == "" {
		rel = filepath.Join("sounds", r.Name+".wav")
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}

// Validate checks the recipe before any samples are generated
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: recipe name is empty", audio.ErrInvalidParameter)
	}
	if r.Path != "" {
		clean := filepath.Clean(filepath.FromSlash(r.Path))
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return fmt.Errorf("%w: recipe %s: path %q must stay inside the output root", audio.ErrInvalidParameter, r.Name, r.Path)
		}
	}
	if !finite(r.Duration) || r.Duration <= 0 {
		return fmt.Errorf("%w: recipe %s: duration %v must be positive", audio.ErrInvalidParameter, r.Name, r.Duration)
	}
	if r.Duration > MaxDuration {
		return fmt.Errorf("%w: recipe %s: duration %vs exceeds %vs", audio.ErrInvalidParameter, r.Name, r.Duration, MaxDuration)
	}
	if len(r.Layers) == 0 {
		return fmt.Errorf("%w: recipe %s has no layers", audio.ErrInvalidParameter, r.Name)
	}
	for i, l := range r.Layers {
		if !finite(l.Frequency) || !finite(l.Amplitude) || l.Frequency <= 0 || l.Amplitude < 0 {
			return fmt.Errorf("%w: recipe %s: layer %d (%v Hz, amplitude %v)", audio.ErrInvalidParameter, r.Name, i, l.Frequency, l.Amplitude)
		}
	}
	if r.Envelope != nil {
		if err := r.Envelope.Validate(); err != nil {
			return fmt.Errorf("recipe %s: %w", r.Name, err)
		}
	}
	if !finite(r.NormalizePeak) || r.NormalizePeak < 0 {
		return fmt.Errorf("%w: recipe %s: normalize peak %v must not be negative", audio.ErrInvalidParameter, r.Name, r.NormalizePeak)
	}
	return nil
}

// Describe returns a one-line summary of the post-processing chain
func (r Recipe) Describe() string {
	var steps []string
	if e := r.Envelope; e != nil {
		steps = append(steps, fmt.Sprintf("envelope(%g/%g/%g/%g)", e.Attack, e.Decay, e.Sustain, e.Release))
	}
	if r.NormalizePeak > 0 {
		steps = append(steps, fmt.Sprintf("normalize(%g)", r.NormalizePeak))
	}
	if len(steps) == 0 {
		return "none"
	}
	return strings.Join(steps, " -> ")
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
