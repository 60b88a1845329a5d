// ABOUTME: Audio encoder package for serializing buffers to WAV
// ABOUTME: Provides the PCM encoder for mono 16-bit RIFF/WAVE output
// Package encode serializes synthesized buffers to uncompressed WAV.
//
// Supports: PCM, 16-bit, mono
//
// Samples are quantized with audio.Quantize, so values outside
// [-1.0, 1.0] saturate rather than wrap.
//
// Example:
//
//	encoder, err := encode.NewPCM(audio.MonoPCM16(44100))
//	data, err := encoder.Encode(buf)
//	err = encoder.WriteFile("resources/sounds/footstep.wav", buf)
package encode
