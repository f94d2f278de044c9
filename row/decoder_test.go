package row_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func u8(v uint8) []byte { return []byte{v} }

func f64le(v float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}

// buildSection assembles a minimal uncompressed row table: one item owning
// two rows, a numeric MS:1000511 CvParam and a text B000:9910001 attribute.
func buildSection() []byte {
	var buf bytes.Buffer

	// CI
	buf.Write(u32le(0))
	buf.Write(u32le(2))

	// MOI
	buf.Write(u32le(1))
	buf.Write(u32le(1))

	// MPI
	buf.Write(u32le(0))
	buf.Write(u32le(0))

	// MTI
	buf.Write(u8(14)) // Spectrum
	buf.Write(u8(14))

	// MRI
	buf.Write(u8(0)) // CVCodeMS
	buf.Write(u8(4)) // CVCodeB000

	// MAN
	buf.Write(u32le(511))     // normalizes to MS:1000511
	buf.Write(u32le(9910001)) // B000 attribute tail

	// MURI
	buf.Write(u8(0))
	buf.Write(u8(0))

	// MUAN
	buf.Write(u32le(0))
	buf.Write(u32le(0))

	// VK
	buf.Write(u8(0)) // Number
	buf.Write(u8(1)) // Text

	// VI
	buf.Write(u32le(0))
	buf.Write(u32le(0))

	// VN
	buf.Write(f64le(2.0))

	// VOFF
	buf.Write(u32le(0))

	// VLEN
	buf.Write(u32le(5))

	// VS
	buf.WriteString("hello")

	return buf.Bytes()
}

func TestDecodeRowTable(t *testing.T) {
	cfg := row.SectionConfig{
		ItemCount:  1,
		MetaCount:  2,
		NumCount:   1,
		StrCount:   1,
		Compressed: false,
	}

	rows, err := row.Decode(buildSection(), cfg)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, uint32(0), rows[0].ItemIndex)
	assert.Equal(t, uint32(1), rows[0].OwnerID)
	assert.Equal(t, schema.Spectrum, rows[0].TagID)
	assert.Equal(t, "MS:1000511", rows[0].Accession)
	assert.Equal(t, row.KindNumber, rows[0].Value.Kind)
	assert.Equal(t, 2.0, rows[0].Value.Num)

	assert.Equal(t, "B000:9910001", rows[1].Accession)
	assert.True(t, rows[1].IsB000Attribute())
	assert.Equal(t, row.KindText, rows[1].Value.Kind)
	assert.Equal(t, "hello", rows[1].Value.Str)
}

func TestDecodeRowTableTrailingPadding(t *testing.T) {
	cfg := row.SectionConfig{
		ItemCount: 1,
		MetaCount: 2,
		NumCount:  1,
		StrCount:  1,
	}

	data := append(buildSection(), make([]byte, 7)...)
	rows, err := row.Decode(data, cfg)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestDecodeRowTableBadTrailingBytes(t *testing.T) {
	cfg := row.SectionConfig{
		ItemCount: 1,
		MetaCount: 2,
		NumCount:  1,
		StrCount:  1,
	}

	data := append(buildSection(), 1, 2, 3)
	_, err := row.Decode(data, cfg)
	require.Error(t, err)
}

func TestDecodeRowTableTruncated(t *testing.T) {
	cfg := row.SectionConfig{
		ItemCount: 1,
		MetaCount: 2,
		NumCount:  1,
		StrCount:  1,
	}

	data := buildSection()
	_, err := row.Decode(data[:len(data)-10], cfg)
	require.Error(t, err)
}
