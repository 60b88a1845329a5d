// ABOUTME: Audio type definitions
// ABOUTME: Defines output formats, sample buffers and 16-bit quantization
package audio

import (
	"math"
	"time"
)

const (
	// DefaultSampleRate is the rate every built-in sound is rendered at
	DefaultSampleRate = 44100

	// 16-bit PCM range constants
	Max16Bit = 32767
	Min16Bit = -32768

	// MaxSamples bounds a single generated buffer, about six minutes at
	// 44.1 kHz or 128 MiB of float64 samples
	MaxSamples = 1 << 24
)

// Format describes the PCM container format
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// MonoPCM16 returns the only format soundgen writes: mono, 16-bit
func MonoPCM16(sampleRate int) Format {
	return Format{
		SampleRate: sampleRate,
		Channels:   1,
		BitDepth:   16,
	}
}

// BlockAlign returns the number of bytes per frame
func (f Format) BlockAlign() int {
	return f.Channels * f.BitDepth / 8
}

// ByteRate returns the number of bytes per second of audio
func (f Format) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}

// Buffer is a mono run of samples. Samples are nominally in [-1.0, 1.0]
// but may exceed that range after mixing and before normalization.
// Pipeline stages never modify a Buffer they receive.
type Buffer struct {
	SampleRate int
	Samples    []float64
}

// Len returns the number of samples
func (b Buffer) Len() int {
	return len(b.Samples)
}

// Duration returns the playback length of the buffer
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / float64(b.SampleRate) * float64(time.Second))
}

// SampleCount returns round(sampleRate * seconds)
func SampleCount(sampleRate int, seconds float64) int {
	return int(math.Round(float64(sampleRate) * seconds))
}

// Quantize converts a sample to 16-bit PCM. The scaled value is clamped to
// the int16 range before truncation toward zero, so out-of-range input
// saturates instead of wrapping. NaN quantizes to silence.
func Quantize(sample float64) int16 {
	if math.IsNaN(sample) {
		return 0
	}
	v := sample * Max16Bit
	if v > Max16Bit {
		v = Max16Bit
	} else if v < Min16Bit {
		v = Min16Bit
	}
	return int16(v) // conversion truncates toward zero
}

// Dequantize converts a 16-bit PCM value back to a floating-point sample
func Dequantize(sample int16) float64 {
	return float64(sample) / Max16Bit
}

// QuantizeAll quantizes every sample in order
func QuantizeAll(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = Quantize(s)
	}
	return out
}
