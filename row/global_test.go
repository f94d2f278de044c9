package row_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscan/b000/row"
)

func preludeBytes32(counts [8]uint32) []byte {
	var buf []byte
	for _, c := range counts {
		buf = append(buf, u32le(c)...)
	}
	return buf
}

func preludeBytes36(counts [9]uint32) []byte {
	var buf []byte
	for _, c := range counts {
		buf = append(buf, u32le(c)...)
	}
	return buf
}

// oneRowTableTail is a one-item, one-row table carrying a single Empty-kind
// attribute row. Its CI column is [0, 1], which keeps the byte at relative
// offset 4 nonzero — deliberately breaking the 36-byte-prelude false
// positive that a [0, 0] CI would otherwise trigger when this tail is
// appended directly after a 32-byte prelude.
func oneRowTableTail() []byte {
	var buf []byte
	buf = append(buf, u32le(0)...)  // CI[0]
	buf = append(buf, u32le(1)...)  // CI[1]
	buf = append(buf, u32le(1)...)  // MOI[0]
	buf = append(buf, u32le(0)...)  // MPI[0]
	buf = append(buf, u8(14)...)    // MTI[0]: Spectrum
	buf = append(buf, u8(4)...)     // MRI[0]: B000
	buf = append(buf, u32le(9910001)...) // MAN[0]
	buf = append(buf, u8(0)...)     // MURI[0]
	buf = append(buf, u32le(0)...)  // MUAN[0]
	buf = append(buf, u8(2)...)     // VK[0]: Empty
	buf = append(buf, u32le(0)...)  // VI[0]
	return buf
}

func TestDecodeGlobal32ByteNoRun(t *testing.T) {
	data := append(preludeBytes32([8]uint32{1, 0, 0, 0, 0, 0, 0, 0}), oneRowTableTail()...)

	rows, prelude, err := row.DecodeGlobal(data, row.SectionConfig{MetaCount: 1})
	require.NoError(t, err)
	assert.False(t, prelude.Is36Byte)
	assert.Equal(t, uint32(1), prelude.NFileDescription)
	require.Len(t, rows, 1)
	assert.Equal(t, row.KindEmpty, rows[0].Value.Kind)
}

func TestDecodeGlobal36ByteWithRun(t *testing.T) {
	data := append(preludeBytes36([9]uint32{0, 0, 0, 0, 0, 0, 0, 0, 1}), oneRowTableTail()...)

	_, prelude, err := row.DecodeGlobal(data, row.SectionConfig{MetaCount: 1})
	require.NoError(t, err)
	assert.True(t, prelude.Is36Byte)
	assert.Equal(t, uint32(1), prelude.NRun)
}

func TestDecodeGlobalTooShort(t *testing.T) {
	_, _, err := row.DecodeGlobal(make([]byte, 10), row.SectionConfig{})
	require.Error(t, err)
}
