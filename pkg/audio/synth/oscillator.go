// ABOUTME: Sine oscillator
// ABOUTME: Samples amplitude*sin(2*pi*f*t) into a fixed-length buffer
package synth

import (
	"fmt"
	"math"

	"github.com/shadow-worker/soundgen/pkg/audio"
)

// Sine samples a sine wave of the given frequency (Hz), duration (seconds)
// and amplitude. The buffer holds round(sampleRate*duration) samples and
// starts at phase zero and may not exceed audio.MaxSamples.
func Sine(frequency, duration, amplitude float64, sampleRate int) (audio.Buffer, error) {
	switch {
	case !finite(frequency) || frequency <= 0:
		return audio.Buffer{}, fmt.Errorf("%w: frequency %v must be positive", audio.ErrInvalidParameter, frequency)
	case !finite(duration) || duration <= 0:
		return audio.Buffer{}, fmt.Errorf("%w: duration %v must be positive", audio.ErrInvalidParameter, duration)
	case !finite(amplitude) || amplitude < 0:
		return audio.Buffer{}, fmt.Errorf("%w: amplitude %v must not be negative", audio.ErrInvalidParameter, amplitude)
	case sampleRate <= 0:
		return audio.Buffer{}, fmt.Errorf("%w: sample rate %d must be positive", audio.ErrInvalidParameter, sampleRate)
	case float64(sampleRate)*duration > audio.MaxSamples:
		return audio.Buffer{}, fmt.Errorf("%w: %vs at %d Hz exceeds %d samples", audio.ErrInvalidParameter, duration, sampleRate, audio.MaxSamples)
	}

	n := audio.SampleCount(sampleRate, duration)
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		samples[i] = amplitude * math.Sin(2*math.Pi*frequency*t)
	}

	return audio.Buffer{SampleRate: sampleRate, Samples: samples}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
