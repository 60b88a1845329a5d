// ABOUTME: Recipe rendering
// ABOUTME: Runs layers through mix, envelope and normalize, then writes WAV
package sounds

import (
	"fmt"

	"github.com/shadow-worker/soundgen/pkg/audio"
	"github.com/shadow-worker/soundgen/pkg/audio/encode"
	"github.com/shadow-worker/soundgen/pkg/audio/synth"
)

// Render synthesizes a recipe at the given sample rate
func Render(r Recipe, sampleRate int) (audio.Buffer, error) {
	if err := r.Validate(); err != nil {
		return audio.Buffer{}, err
	}

	layers := make([]audio.Buffer, 0, len(r.Layers))
	for _, l := range r.Layers {
		buf, err := synth.Sine(l.Frequency, r.Duration, l.Amplitude, sampleRate)
		if err != nil {
			return audio.Buffer{}, fmt.Errorf("recipe %s: %w", r.Name, err)
		}
		layers = append(layers, buf)
	}

	buf, err := synth.Mix(layers...)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("recipe %s: mix: %w", r.Name, err)
	}

	if r.Envelope != nil {
		buf, err = synth.ApplyEnvelope(buf, *r.Envelope)
		if err != nil {
			return audio.Buffer{}, fmt.Errorf("recipe %s: envelope: %w", r.Name, err)
		}
	}

	if r.NormalizePeak > 0 {
		buf, err = synth.Normalize(buf, r.NormalizePeak)
		if err != nil {
			return audio.Buffer{}, fmt.Errorf("recipe %s: normalize: %w", r.Name, err)
		}
	}

	return buf, nil
}

// Encode renders a recipe and returns the WAV file image
func Encode(r Recipe, sampleRate int) ([]byte, error) {
	buf, err := Render(r, sampleRate)
	if err != nil {
		return nil, err
	}
	encoder, err := encode.NewPCM(audio.MonoPCM16(sampleRate))
	if err != nil {
		return nil, err
	}
	return encoder.Encode(buf)
}

// Write renders a recipe and writes it under root, returning the file
// path. The destination directory must already exist.
func Write(root string, r Recipe, sampleRate int) (string, error) {
	buf, err := Render(r, sampleRate)
	if err != nil {
		return "", err
	}

	encoder, err := encode.NewPCM(audio.MonoPCM16(sampleRate))
	if err != nil {
		return "", err
	}

	path := r.OutputPath(root)
	if err := encoder.WriteFile(path, buf); err != nil {
		return "", fmt.Errorf("recipe %s: %w", r.Name, err)
	}
	return path, nil
}
