// ABOUTME: Additive mixer
// ABOUTME: Sums buffers elementwise, truncating to the shortest input
package synth

import (
	"fmt"

	"github.com/shadow-worker/soundgen/pkg/audio"
)

// Mix2 sums two buffers sample by sample. The result is as long as the
// shorter input; trailing samples of the longer one are dropped. The sum
// is not clamped.
func Mix2(a, b audio.Buffer) (audio.Buffer, error) {
	if a.SampleRate != b.SampleRate {
		return audio.Buffer{}, fmt.Errorf("%w: cannot mix %d Hz with %d Hz", audio.ErrInvalidParameter, a.SampleRate, b.SampleRate)
	}

	n := min(len(a.Samples), len(b.Samples))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.Samples[i] + b.Samples[i]
	}
	return audio.Buffer{SampleRate: a.SampleRate, Samples: out}, nil
}

// Mix folds Mix2 over its arguments from left to right, so the result is
// as long as the shortest buffer. A single buffer is copied.
func Mix(bufs ...audio.Buffer) (audio.Buffer, error) {
	if len(bufs) == 0 {
		return audio.Buffer{}, fmt.Errorf("%w: nothing to mix", audio.ErrInvalidParameter)
	}

	acc := audio.Buffer{
		SampleRate: bufs[0].SampleRate,
		Samples:    append([]float64(nil), bufs[0].Samples...),
	}
	for _, b := range bufs[1:] {
		var err error
		acc, err = Mix2(acc, b)
		if err != nil {
			return audio.Buffer{}, err
		}
	}
	return acc, nil
}
