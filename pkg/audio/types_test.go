// ABOUTME: Tests for audio types
// ABOUTME: Tests quantization, clamping and format helpers
package audio

import (
	"math"
	"testing"
	"time"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int16
	}{
		{"zero", 0, 0},
		{"full scale positive", 1.0, 32767},
		{"full scale negative", -1.0, -32767},
		{"half positive truncates", 0.5, 16383},   // 16383.5
		{"half negative truncates", -0.5, -16383}, // -16383.5
		{"clamp positive", 1.5, 32767},
		{"clamp negative", -1.5, -32768},
		{"huge positive", 1e9, 32767},
		{"huge negative", -1e9, -32768},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 32767},
		{"negative infinity", math.Inf(-1), -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Quantize(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestQuantizeTruncatesTowardZero(t *testing.T) {
	// 0.99999 * 32767 = 32766.67 -> 32766, not rounded up
	if got := Quantize(0.99999); got != 32766 {
		t.Errorf("expected 32766, got %d", got)
	}
	if got := Quantize(-0.99999); got != -32766 {
		t.Errorf("expected -32766, got %d", got)
	}
}

func TestRoundTripQuantize(t *testing.T) {
	// Every sample in [-1, 1] survives quantize/dequantize within one step
	const steps = 20000
	for i := 0; i <= steps; i++ {
		s := -1.0 + 2.0*float64(i)/steps
		back := Dequantize(Quantize(s))
		if diff := math.Abs(back - s); diff > 1.0/Max16Bit {
			t.Fatalf("round-trip error for %v: got %v (diff %v)", s, back, diff)
		}
	}
}

func TestQuantizeAll(t *testing.T) {
	samples := []float64{0, 1, -1, 2}
	result := QuantizeAll(samples)

	expected := []int16{0, 32767, -32767, 32767}
	if len(result) != len(expected) {
		t.Fatalf("expected %d samples, got %d", len(expected), len(result))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("sample %d: expected %d, got %d", i, expected[i], result[i])
		}
	}
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		seconds  float64
		expected int
	}{
		{"one second", 44100, 1.0, 44100},
		{"footstep", 44100, 0.15, 6615},
		{"interact", 44100, 0.2, 8820},
		{"ambient", 44100, 5.0, 220500},
		{"rounds half up", 10, 0.25, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleCount(tt.rate, tt.seconds); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestMonoPCM16(t *testing.T) {
	f := MonoPCM16(44100)

	if f.Channels != 1 || f.BitDepth != 16 || f.SampleRate != 44100 {
		t.Fatalf("unexpected format %+v", f)
	}
	if f.BlockAlign() != 2 {
		t.Errorf("expected block align 2, got %d", f.BlockAlign())
	}
	if f.ByteRate() != 88200 {
		t.Errorf("expected byte rate 88200, got %d", f.ByteRate())
	}
}

func TestBufferDuration(t *testing.T) {
	buf := Buffer{SampleRate: 44100, Samples: make([]float64, 22050)}
	if buf.Duration() != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", buf.Duration())
	}

	if (Buffer{}).Duration() != 0 {
		t.Error("expected zero duration for zero sample rate")
	}
}
