// Package security guards input handling against oversized payloads.
package security

import (
	"errors"
	"io"
)

// MaxInputBytes caps the decoded size of a feature file.
const MaxInputBytes = 256 * 1024 * 1024

// ErrSizeLimitExceeded is returned once a LimitedReader has delivered its limit
// and the source still has data.
var ErrSizeLimitExceeded = errors.New("input size limit exceeded")

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Unlike io.LimitReader it fails instead of silently truncating, so a
// decompression bomb is reported rather than decoded as a short document.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.Remaining <= 0 {
		// Input that ends exactly at the limit is still valid.
		var probe [1]byte
		n, err := l.R.Read(probe[:])
		if n > 0 {
			return 0, ErrSizeLimitExceeded
		}
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}
