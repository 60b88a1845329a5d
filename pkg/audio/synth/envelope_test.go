// ABOUTME: Tests for the ADSR envelope
// ABOUTME: Tests segment sizing, curve shape and truncation
package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/shadow-worker/soundgen/pkg/audio"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name                       string
		adsr                       ADSR
		n                          int
		attack, decay, sustain, rl int
	}{
		{"exact quarters", ADSR{0.25, 0.25, 0.25, 0.25}, 100, 25, 25, 25, 25},
		{"release absorbs surplus", ADSR{0.1, 0.1, 0.1, 0.1}, 100, 10, 10, 10, 70},
		{"release ignores own fraction", ADSR{0.5, 0.2, 0.2, 0.9}, 100, 50, 20, 20, 10},
		{"overshoot leaves no release", ADSR{0.5, 0.5, 0.5, 0.5}, 100, 50, 50, 50, 0},
		{"zero length", ADSR{0.1, 0.3, 0.4, 0.2}, 0, 0, 0, 0, 0},
		{"rounds each segment", ADSR{0.1, 0.3, 0.4, 0.2}, 13, 1, 4, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, d, s, r := tt.adsr.Segments(tt.n)
			if a != tt.attack || d != tt.decay || s != tt.sustain || r != tt.rl {
				t.Errorf("expected (%d, %d, %d, %d), got (%d, %d, %d, %d)",
					tt.attack, tt.decay, tt.sustain, tt.rl, a, d, s, r)
			}
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	env, err := Envelope(40, ADSR{0.25, 0.25, 0.25, 0.25})
	if err != nil {
		t.Fatalf("Envelope() failed: %v", err)
	}
	if len(env) != 40 {
		t.Fatalf("expected 40 gains, got %d", len(env))
	}

	checks := []struct {
		index int
		want  float64
	}{
		{0, 0.0},           // attack start
		{5, 0.5},           // attack midpoint
		{9, 0.9},           // last attack sample
		{10, 1.0},          // decay start
		{15, 1.0 - 0.15},   // halfway through decay
		{20, SustainLevel}, // sustain
		{29, SustainLevel},
		{30, SustainLevel}, // release start
		{35, SustainLevel * 0.5},
		{39, SustainLevel * 0.1},
	}
	for _, c := range checks {
		if math.Abs(env[c.index]-c.want) > 1e-12 {
			t.Errorf("gain %d: expected %v, got %v", c.index, c.want, env[c.index])
		}
	}

	for i, g := range env {
		if g < 0 || g > 1 {
			t.Errorf("gain %d out of range: %v", i, g)
		}
	}
}

func TestEnvelopeSkipsEmptySegments(t *testing.T) {
	// No attack and no decay: the curve starts at the sustain level
	env, err := Envelope(10, ADSR{0, 0, 0.5, 0.5})
	if err != nil {
		t.Fatalf("Envelope() failed: %v", err)
	}
	if env[0] != SustainLevel {
		t.Errorf("expected first gain %v, got %v", SustainLevel, env[0])
	}
	for _, g := range env {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			t.Fatalf("non-finite gain %v", g)
		}
	}
}

func TestEnvelopeOvershoot(t *testing.T) {
	env, err := Envelope(100, ADSR{0.5, 0.5, 0.5, 0})
	if err != nil {
		t.Fatalf("Envelope() failed: %v", err)
	}
	if len(env) != 150 {
		t.Errorf("expected 150 gains, got %d", len(env))
	}
}

func TestEnvelopeInvalid(t *testing.T) {
	tests := []struct {
		name string
		adsr ADSR
		n    int
	}{
		{"negative attack", ADSR{-0.1, 0.3, 0.4, 0.2}, 10},
		{"nan sustain", ADSR{0.1, 0.3, math.NaN(), 0.2}, 10},
		{"infinite release", ADSR{0.1, 0.3, 0.4, math.Inf(1)}, 10},
		{"negative length", ADSR{0.1, 0.3, 0.4, 0.2}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Envelope(tt.n, tt.adsr); !errors.Is(err, audio.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestApplyEnvelopeKeepsLength(t *testing.T) {
	in := constant(1000, 1.0)
	out, err := ApplyEnvelope(in, ADSR{0.25, 0.25, 0.25, 0.25})
	if err != nil {
		t.Fatalf("ApplyEnvelope() failed: %v", err)
	}
	if out.Len() != in.Len() {
		t.Errorf("expected %d samples, got %d", in.Len(), out.Len())
	}
	if out.SampleRate != in.SampleRate {
		t.Errorf("expected sample rate %d, got %d", in.SampleRate, out.SampleRate)
	}
}

func TestApplyEnvelopeTruncatesToShorter(t *testing.T) {
	// The envelope overshoots the buffer, so the buffer length wins
	in := constant(100, 1.0)
	out, err := ApplyEnvelope(in, ADSR{0.6, 0.6, 0, 0})
	if err != nil {
		t.Fatalf("ApplyEnvelope() failed: %v", err)
	}

	env, _ := Envelope(100, ADSR{0.6, 0.6, 0, 0})
	if want := min(in.Len(), len(env)); out.Len() != want {
		t.Errorf("expected %d samples, got %d", want, out.Len())
	}
}

func TestApplyEnvelopeMultiplies(t *testing.T) {
	in := constant(40, 0.5)
	adsr := ADSR{0.25, 0.25, 0.25, 0.25}

	out, err := ApplyEnvelope(in, adsr)
	if err != nil {
		t.Fatalf("ApplyEnvelope() failed: %v", err)
	}
	env, _ := Envelope(40, adsr)
	for i := range out.Samples {
		if out.Samples[i] != 0.5*env[i] {
			t.Fatalf("sample %d: expected %v, got %v", i, 0.5*env[i], out.Samples[i])
		}
	}
	if in.Samples[0] != 0.5 {
		t.Error("ApplyEnvelope() modified its input")
	}
}

func TestApplyEnvelopeEmptyBuffer(t *testing.T) {
	out, err := ApplyEnvelope(audio.Buffer{SampleRate: 44100}, ADSR{0.1, 0.3, 0.4, 0.2})
	if err != nil {
		t.Fatalf("ApplyEnvelope() failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected empty buffer, got %d samples", out.Len())
	}
}
