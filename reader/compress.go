package reader

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is a stream codec recognised by file extension.
type Compression string

const (
	CompressionNone   Compression = ""
	CompressionGzip   Compression = "gzip"
	CompressionZstd   Compression = "zstd"
	CompressionBrotli Compression = "brotli"
	CompressionLZ4    Compression = "lz4"
)

var compressionExts = map[string]Compression{
	".gz":   CompressionGzip,
	".gzip": CompressionGzip,
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".br":   CompressionBrotli,
	".lz4":  CompressionLZ4,
}

// DetectCompression returns the codec named by the path's extension and the
// path with that extension removed.
func DetectCompression(path string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := compressionExts[ext]; ok {
		return c, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return CompressionNone, path
}

// decompress wraps r in a decoder for c. Closing the result releases the
// decoder, not r.
func decompress(c Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionZstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case CompressionBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// readTracker remembers the first non-EOF error of the underlying reader so
// decode failures caused by I/O or a corrupt stream are reported as read
// errors, not parse errors.
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}
