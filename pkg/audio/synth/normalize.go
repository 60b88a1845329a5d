// ABOUTME: Peak normalizer
// ABOUTME: Scales a buffer so its largest magnitude equals a target
package synth

import (
	"fmt"
	"math"

	"github.com/shadow-worker/soundgen/pkg/audio"
)

// Peak returns max(|min(buf)|, |max(buf)|), or 0 for an empty buffer
func Peak(buf audio.Buffer) float64 {
	if len(buf.Samples) == 0 {
		return 0
	}
	lo, hi := buf.Samples[0], buf.Samples[0]
	for _, s := range buf.Samples[1:] {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	return math.Max(math.Abs(lo), math.Abs(hi))
}

// Normalize scales every sample by targetPeak/Peak(buf). A buffer with no
// signal returns ErrSilentBuffer instead of dividing by zero.
func Normalize(buf audio.Buffer, targetPeak float64) (audio.Buffer, error) {
	if !finite(targetPeak) || targetPeak < 0 {
		return audio.Buffer{}, fmt.Errorf("%w: target peak %v must be a non-negative number", audio.ErrInvalidParameter, targetPeak)
	}

	peak := Peak(buf)
	if peak == 0 {
		return audio.Buffer{}, fmt.Errorf("%w: cannot normalize %d samples with zero peak", audio.ErrSilentBuffer, len(buf.Samples))
	}
	if !finite(peak) {
		return audio.Buffer{}, fmt.Errorf("%w: buffer peak %v is not finite", audio.ErrInvalidParameter, peak)
	}

	gain := targetPeak / peak
	out := make([]float64, len(buf.Samples))
	for i, s := range buf.Samples {
		out[i] = s * gain
	}
	return audio.Buffer{SampleRate: buf.SampleRate, Samples: out}, nil
}
