//go:build !nobuild

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/openscan/b000/errs"
	"github.com/openscan/b000/internal/pool"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation
// overhead. klauspost/compress/zstd is explicitly designed for decoder
// reuse after a warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// Compress compresses data using Zstandard via a pooled encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data, tolerating up to 7 trailing
// zero-padding bytes appended by the writer for 8-byte frame alignment: if a
// direct decode fails, zero bytes are trimmed from the end one at a time and
// decoding is retried before the original error is surfaced.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, firstErr := decodeZstd(data)
	if firstErr == nil {
		return out, nil
	}

	trimmed := data
	for range 7 {
		if len(trimmed) == 0 || trimmed[len(trimmed)-1] != 0 {
			break
		}
		trimmed = trimmed[:len(trimmed)-1]
		if out, err := decodeZstd(trimmed); err == nil {
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: %v", errs.ErrZstdFrame, firstErr)
}

// decodeZstd decompresses data into a pooled scratch buffer, then copies the
// result into a freshly allocated slice the caller owns outright before
// returning the scratch buffer to the pool. The copy costs one allocation per
// section, same as a bare DecodeAll(data, nil) would; what the pool buys back
// is the decompression destination itself staying warm across the handful of
// sections (global, spectrum, chromatogram) a single file decodes.
func decodeZstd(data []byte) ([]byte, error) {
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	out, err := decoder.DecodeAll(data, bb.B[:0])
	if err != nil {
		return nil, err
	}
	bb.B = out

	result := make([]byte, len(out))
	copy(result, out)
	return result, nil
}
