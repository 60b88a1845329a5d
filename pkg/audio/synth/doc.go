// ABOUTME: Synthesis package for oscillators and buffer transforms
// ABOUTME: Provides Sine, Mix, ApplyEnvelope and Normalize
// Package synth implements the numeric stages of the sound pipeline.
//
// Every stage is a pure function from buffers to a new buffer:
//   - Sine: sample a sine oscillator
//   - Mix: sum layers elementwise
//   - ApplyEnvelope: shape amplitude with a proportional ADSR curve
//   - Normalize: scale to a target peak
//
// Elementwise stages combine sequences of unequal length by truncating
// to the shorter one. This is deliberate and covered by tests.
//
// Example:
//
//	base, err := synth.Sine(100, 0.15, 0.5, audio.DefaultSampleRate)
//	noise, err := synth.Sine(400, 0.15, 0.2, audio.DefaultSampleRate)
//	mixed, err := synth.Mix(base, noise)
//	shaped, err := synth.ApplyEnvelope(mixed, synth.ADSR{Attack: 0.1, Decay: 0.3, Sustain: 0.4, Release: 0.2})
package synth
