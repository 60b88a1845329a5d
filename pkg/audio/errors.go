// ABOUTME: Error taxonomy for the synthesis pipeline
// ABOUTME: Sentinel errors wrapped by every stage and checked with errors.Is
package audio

import "errors"

var (
	// ErrInvalidParameter reports a non-positive frequency, duration or
	// sample rate, a negative amplitude, or a non-finite argument
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrSilentBuffer reports normalization of a buffer whose peak is zero
	ErrSilentBuffer = errors.New("silent buffer")

	// ErrIO reports a failure to create the output directory or write a file
	ErrIO = errors.New("i/o error")
)
