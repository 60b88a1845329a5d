// ABOUTME: WAV audio decoder
// ABOUTME: Decodes 16-bit PCM WAV data to float buffers
package decode

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/wav"
	"github.com/shadow-worker/soundgen/pkg/audio"
)

// Info describes a decoded WAV file
type Info struct {
	Format      audio.Format
	AudioFormat int
	Frames      int
	Duration    time.Duration
	// PCM holds the raw 16-bit values of the first channel
	PCM []int16
}

// WAV decodes a complete WAV stream
func WAV(r io.ReadSeeker) (audio.Buffer, Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return audio.Buffer{}, Info{}, fmt.Errorf("not a valid wav file")
	}

	if dec.BitDepth != 16 {
		return audio.Buffer{}, Info{}, fmt.Errorf("unsupported bit depth: %d (supported: 16)", dec.BitDepth)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return audio.Buffer{}, Info{}, fmt.Errorf("wav decode error: %w", err)
	}

	channels := int(dec.NumChans)
	frames := len(pcm.Data) / channels
	raw := make([]int16, frames)
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		raw[i] = int16(pcm.Data[i*channels])
		samples[i] = audio.Dequantize(raw[i])
	}

	info := Info{
		Format: audio.Format{
			SampleRate: int(dec.SampleRate),
			Channels:   channels,
			BitDepth:   int(dec.BitDepth),
		},
		AudioFormat: int(dec.WavAudioFormat),
		Frames:      frames,
		PCM:         raw,
	}
	buf := audio.Buffer{SampleRate: info.Format.SampleRate, Samples: samples}
	info.Duration = buf.Duration()

	return buf, info, nil
}

// WAVBytes decodes an in-memory WAV image
func WAVBytes(data []byte) (audio.Buffer, Info, error) {
	return WAV(bytes.NewReader(data))
}

// WAVFile decodes the WAV file at path
func WAVFile(path string) (audio.Buffer, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Buffer{}, Info{}, fmt.Errorf("%w: open %s: %v", audio.ErrIO, path, err)
	}
	defer f.Close()

	buf, info, err := WAV(f)
	if err != nil {
		return audio.Buffer{}, Info{}, fmt.Errorf("%s: %w", path, err)
	}
	return buf, info, nil
}
