// ABOUTME: Audio decoder package for reading generated WAV files
// ABOUTME: Provides WAV decoding back to float buffers
// Package decode reads PCM WAV files back into audio buffers.
//
// Supports: PCM WAV, 16-bit. Multi-channel files are reduced to their
// first channel.
//
// Example:
//
//	buf, info, err := decode.WAVFile("resources/sounds/ambient.wav")
package decode
