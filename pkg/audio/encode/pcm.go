// ABOUTME: PCM WAV encoder
// ABOUTME: Encodes float buffers to 16-bit mono RIFF/WAVE bytes and files
package encode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/shadow-worker/soundgen/pkg/audio"
)

// wavFormatPCM is the fmt chunk AudioFormat code for integer PCM
const wavFormatPCM = 1

// PCMEncoder encodes PCM audio into a WAV container
type PCMEncoder struct {
	format audio.Format
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (*PCMEncoder, error) {
	if format.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}

	if format.Channels != 1 {
		return nil, fmt.Errorf("unsupported channel count: %d (supported: 1)", format.Channels)
	}

	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", audio.ErrInvalidParameter, format.SampleRate)
	}

	return &PCMEncoder{
		format: format,
	}, nil
}

// Format returns the container format the encoder writes
func (e *PCMEncoder) Format() audio.Format {
	return e.format
}

// Encode converts a buffer to a complete WAV file image
func (e *PCMEncoder) Encode(buf audio.Buffer) ([]byte, error) {
	var sb seekBuffer
	if err := e.write(&sb, buf); err != nil {
		return nil, err
	}
	return sb.Bytes(), nil
}

// WriteFile encodes buf to path. The file is written next to its final
// location and renamed into place, so readers never see a partial WAV.
// The parent directory must already exist.
func (e *PCMEncoder) WriteFile(path string, buf audio.Buffer) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", audio.ErrIO, path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err := e.write(f, buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %s: %w", audio.ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", audio.ErrIO, path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", audio.ErrIO, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", audio.ErrIO, path, err)
	}
	return nil
}

func (e *PCMEncoder) write(w io.WriteSeeker, buf audio.Buffer) error {
	if buf.SampleRate != e.format.SampleRate {
		return fmt.Errorf("%w: buffer is %d Hz, encoder expects %d Hz",
			audio.ErrInvalidParameter, buf.SampleRate, e.format.SampleRate)
	}

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		data[i] = int(audio.Quantize(s))
	}

	enc := wav.NewEncoder(w, e.format.SampleRate, e.format.BitDepth, e.format.Channels, wavFormatPCM)
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: e.format.Channels,
			SampleRate:  e.format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: e.format.BitDepth,
	}
	// Write emits the header even for an empty buffer, which Close needs
	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("wav encode error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav finalize error: %w", err)
	}
	return nil
}
