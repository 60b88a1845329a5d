// ABOUTME: Proportional ADSR envelope
// ABOUTME: Builds a gain curve from segment fractions and applies it to a buffer
package synth

import (
	"fmt"
	"math"

	"github.com/shadow-worker/soundgen/pkg/audio"
)

const (
	// SustainLevel is the gain held between decay and release
	SustainLevel = 0.7

	// DecayDepth is how far the gain falls from the attack peak during decay
	DecayDepth = 0.3
)

// ADSR holds the four envelope segments as fractions of the total length.
// The fractions need not sum to 1: release always takes whatever remains
// after attack, decay and sustain.
type ADSR struct {
	Attack  float64 `toml:"attack"`
	Decay   float64 `toml:"decay"`
	Sustain float64 `toml:"sustain"`
	Release float64 `toml:"release"`
}

// Validate checks that every fraction is finite and non-negative
func (e ADSR) Validate() error {
	for _, seg := range []struct {
		name string
		v    float64
	}{
		{"attack", e.Attack},
		{"decay", e.Decay},
		{"sustain", e.Sustain},
		{"release", e.Release},
	} {
		if !finite(seg.v) || seg.v < 0 {
			return fmt.Errorf("%w: %s fraction %v must be a non-negative number", audio.ErrInvalidParameter, seg.name, seg.v)
		}
	}
	return nil
}

// Segments returns the sample count of each segment for a buffer of n
// samples. Attack, decay and sustain are round(fraction*n); release gets
// the remainder, or zero when the first three already exceed n.
func (e ADSR) Segments(n int) (attack, decay, sustain, release int) {
	attack = int(math.Round(e.Attack * float64(n)))
	decay = int(math.Round(e.Decay * float64(n)))
	sustain = int(math.Round(e.Sustain * float64(n)))
	release = max(n-attack-decay-sustain, 0)
	return attack, decay, sustain, release
}

// Envelope builds the gain curve for a buffer of n samples:
// attack ramps 0 to 1, decay falls to SustainLevel, sustain holds it and
// release ramps down toward 0. Empty segments contribute nothing. The
// curve is longer than n when attack+decay+sustain overshoot.
func Envelope(n int, e ADSR) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: length %d must not be negative", audio.ErrInvalidParameter, n)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	a, d, s, r := e.Segments(n)
	env := make([]float64, 0, a+d+s+r)

	for i := 0; i < a; i++ {
		env = append(env, float64(i)/float64(a))
	}
	for i := 0; i < d; i++ {
		env = append(env, 1.0-DecayDepth*float64(i)/float64(d))
	}
	for i := 0; i < s; i++ {
		env = append(env, SustainLevel)
	}
	for i := 0; i < r; i++ {
		env = append(env, SustainLevel*(1.0-float64(i)/float64(r)))
	}

	return env, nil
}

// ApplyEnvelope multiplies buf by its envelope. The result has
// min(len(buf), len(envelope)) samples.
func ApplyEnvelope(buf audio.Buffer, e ADSR) (audio.Buffer, error) {
	env, err := Envelope(len(buf.Samples), e)
	if err != nil {
		return audio.Buffer{}, err
	}

	n := min(len(buf.Samples), len(env))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = buf.Samples[i] * env[i]
	}
	return audio.Buffer{SampleRate: buf.SampleRate, Samples: out}, nil
}
