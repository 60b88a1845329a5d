// ABOUTME: In-memory io.WriteSeeker
// ABOUTME: Lets the WAV encoder patch header sizes without a file
package encode

import (
	"errors"
	"io"
)

// seekBuffer is a growable byte slice with a write cursor
type seekBuffer struct {
	buf []byte
	pos int
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	end := s.pos + len(p)
	if end > len(s.buf) {
		s.buf = append(s.buf, make([]byte, end-len(s.buf))...)
	}
	copy(s.buf[s.pos:], p)
	s.pos = end
	return len(p), nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(s.pos) + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return 0, errors.New("seekBuffer: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("seekBuffer: negative position")
	}
	s.pos = int(abs)
	return abs, nil
}

// Bytes returns the written contents
func (s *seekBuffer) Bytes() []byte {
	return s.buf
}
