// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample quantization functions
// Package audio provides the fundamental types shared by the synthesis pipeline.
//
// This package defines core types used throughout soundgen:
//   - Format: Describes the output container format (sample rate, channels, bit depth)
//   - Buffer: An immutable run of floating-point samples at a sample rate
//
// It also provides conversion between floating-point samples and 16-bit PCM:
//   - Quantize: clamp and truncate a sample to int16
//   - Dequantize: map an int16 back to [-1.0, 1.0]
//
// Example:
//
//	buf := audio.Buffer{SampleRate: audio.DefaultSampleRate, Samples: samples}
//	pcm := audio.QuantizeAll(buf.Samples)
package audio
