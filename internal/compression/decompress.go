// Package compression opens feature files that may be gzip, xz or bzip2 compressed.
package compression

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/mapramp/internal/security"
)

// Format is a compression format.
type Format string

const (
	None  Format = "none"
	Gzip  Format = "gzip"
	Xz    Format = "xz"
	Bzip2 Format = "bzip2"
)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	bzip2Magic = []byte("BZh")
)

// FormatFromName returns the format implied by a file extension.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		return Gzip
	case ".xz":
		return Xz
	case ".bz2":
		return Bzip2
	default:
		return None
	}
}

// Sniff identifies the format from the leading bytes of a stream.
func Sniff(header []byte) Format {
	switch {
	case bytes.HasPrefix(header, xzMagic):
		return Xz
	case bytes.HasPrefix(header, gzipMagic):
		return Gzip
	case bytes.HasPrefix(header, bzip2Magic):
		return Bzip2
	default:
		return None
	}
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error {
	return r.close()
}

// NewReader decompresses r. When format is empty the format is sniffed
// from the stream. The decoded output is limited to limit bytes.
func NewReader(r io.Reader, format Format, limit int64) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	if format == "" {
		header, err := br.Peek(len(xzMagic))
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read input header: %w", err)
		}
		format = Sniff(header)
	}

	noop := func() error { return nil }

	switch format {
	case Gzip:
		gzr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return readCloser{Reader: security.NewLimitedReader(gzr, limit), close: gzr.Close}, nil
	case Xz:
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return readCloser{Reader: security.NewLimitedReader(xzr, limit), close: noop}, nil
	case Bzip2:
		return readCloser{Reader: security.NewLimitedReader(bzip2.NewReader(br), limit), close: noop}, nil
	case None:
		return readCloser{Reader: security.NewLimitedReader(br, limit), close: noop}, nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}

// Open opens path for reading, decompressing it according to its extension.
// Files without a known extension are sniffed.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) // #nosec G304 - Input path supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	format := FormatFromName(path)
	if format == None {
		format = ""
	}

	rc, err := NewReader(f, format, security.MaxInputBytes)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return readCloser{Reader: rc, close: func() error {
		rcErr := rc.Close()
		if err := f.Close(); err != nil {
			return err
		}
		return rcErr
	}}, nil
}
