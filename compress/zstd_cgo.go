//go:build nobuild

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/openscan/b000/errs"
)

// Compress compresses data using Zstandard via cgo.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress mirrors zstd_pure.go's trailing zero-padding tolerance.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, firstErr := gozstd.Decompress(nil, data)
	if firstErr == nil {
		return out, nil
	}

	trimmed := data
	for range 7 {
		if len(trimmed) == 0 || trimmed[len(trimmed)-1] != 0 {
			break
		}
		trimmed = trimmed[:len(trimmed)-1]
		if out, err := gozstd.Decompress(nil, trimmed); err == nil {
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: %v", errs.ErrZstdFrame, firstErr)
}
