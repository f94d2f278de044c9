package compress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscan/b000/compress"
	"github.com/openscan/b000/section"
)

func TestCreateCodec(t *testing.T) {
	t.Run("raw", func(t *testing.T) {
		c, err := compress.CreateCodec(section.CodecRaw)
		require.NoError(t, err)
		out, err := c.Decompress([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), out)
	})

	t.Run("zstd", func(t *testing.T) {
		c, err := compress.CreateCodec(section.CodecZstd)
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := compress.CreateCodec(7)
		require.Error(t, err)
	})
}

func TestZstdRoundTrip(t *testing.T) {
	c := compress.NewZstdCompressor()
	original := []byte("the quick brown fox jumps over the lazy dog, repeatedly, for compressibility")

	compressed, err := c.Compress(original)
	require.NoError(t, err)

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, out)
}

func TestZstdDecompressTrailingZeroPadding(t *testing.T) {
	c := compress.NewZstdCompressor()
	original := []byte("padded frame content for alignment testing")

	compressed, err := c.Compress(original)
	require.NoError(t, err)

	for k := range 8 {
		padded := append(append([]byte{}, compressed...), make([]byte, k)...)
		out, err := c.Decompress(padded)
		require.NoError(t, err, "padding=%d", k)
		assert.Equal(t, original, out, "padding=%d", k)
	}
}

func TestGetCodecUnsupported(t *testing.T) {
	_, err := compress.GetCodec(5)
	require.Error(t, err)
}
