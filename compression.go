package hapleg

import (
	"compress/bzip2"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/xi2/xz"
)

// Compression indicates how (and whether) an input stream is compressed.
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionGzip
	CompressionZStandard
	CompressionXZ
	CompressionBZip2
)

func (c Compression) String() string {
	switch c {
	case CompressionDisabled:
		return "Disabled"
	case CompressionGzip:
		return "Gzip"
	case CompressionZStandard:
		return "ZStandard"
	case CompressionXZ:
		return "XZ"
	case CompressionBZip2:
		return "BZip2"

	default:
		return "Illegal selection"
	}
}

// CompressionFromPath picks the codec from the file name suffix. Block gzip
// (.bgz) is ordinary multi-member gzip.
func CompressionFromPath(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".gz"), strings.HasSuffix(path, ".bgz"):
		return CompressionGzip
	case strings.HasSuffix(path, ".zst"):
		return CompressionZStandard
	case strings.HasSuffix(path, ".xz"):
		return CompressionXZ
	case strings.HasSuffix(path, ".bz2"):
		return CompressionBZip2
	}

	return CompressionDisabled
}

// NewReader wraps r in the decompressor for c. Closing the result does not
// close r.
func (c Compression) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err == io.EOF {
			// Zero-byte file: nothing to decompress.
			return io.NopCloser(strings.NewReader("")), nil
		} else if err != nil {
			return nil, pfx.Err(err)
		}
		return zr, nil
	case CompressionZStandard:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, pfx.Err(err)
		}
		return zr.IOReadCloser(), nil
	case CompressionXZ:
		zr, err := xz.NewReader(r, 0)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return io.NopCloser(zr), nil
	case CompressionBZip2:
		return io.NopCloser(bzip2.NewReader(r)), nil
	}

	return io.NopCloser(r), nil
}
