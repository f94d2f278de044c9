// Package compress provides the compression codecs used for B000 metadata
// sections.
//
// The format defines exactly two codecs, selected by the low nibble of the
// header's codec_id byte: raw (no compression) and zstd. Zstd payloads
// tolerate up to 7 trailing zero bytes appended for 8-byte frame alignment.
package compress

import (
	"fmt"

	"github.com/openscan/b000/errs"
	"github.com/openscan/b000/section"
)

// Compressor compresses a decoded metadata section back into its wire form.
// Used by this package's own round-trip tests; the decode path only
// decompresses.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a metadata section's wire bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the Codec for the given codec id (the low nibble of a
// header's codec_id byte).
func CreateCodec(codecID uint8) (Codec, error) {
	switch codecID & 0x0F {
	case section.CodecRaw:
		return NewNoOpCompressor(), nil
	case section.CodecZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedCodec, codecID)
	}
}

var builtinCodecs = map[uint8]Codec{
	section.CodecRaw:  NewNoOpCompressor(),
	section.CodecZstd: NewZstdCompressor(),
}

// GetCodec retrieves a built-in Codec for the given codec id.
func GetCodec(codecID uint8) (Codec, error) {
	if codec, ok := builtinCodecs[codecID&0x0F]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedCodec, codecID)
}

// ZstdCompressor implements Codec for the zstd algorithm. Its Compress and
// Decompress methods are implemented in zstd_pure.go (cgo-free, default) or
// zstd_cgo.go (cgo, opt-in), selected by build tag.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor returns a ZstdCompressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
