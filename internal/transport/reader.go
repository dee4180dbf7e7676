package transport

import (
	"errors"
	"io"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DefaultBufferSize is the size of the single read a request has to fit in.
const DefaultBufferSize = 1024

// ReadChunk performs exactly one Read of at most t.BufferSize bytes. requests
// are expected to arrive in that single read, nothing is reassembled.
func (t *HTTP1) ReadChunk(r io.Reader) ([]byte, error) {
	size := t.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	buf := make([]byte, size)
	n, err := r.Read(buf)
	if n > 0 {
		// data wins over a trailing error, the next read would report it
		return buf[:n], nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil, ErrConnClosed.Wrap(err)
	}
	return nil, ErrRead.Wrap(err)
}

// Decode interprets b as UTF-8, replacing every ill-formed sequence
// with U+FFFD instead of failing.
func Decode(b []byte) string {
	s, _, err := transform.String(runes.ReplaceIllFormed(), string(b))
	if err != nil {
		// transform.String only fails on transformer errors, which
		// ReplaceIllFormed never returns
		return string(b)
	}
	return s
}
