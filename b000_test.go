package b000_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	b000 "github.com/openscan/b000"
	"github.com/openscan/b000/section"
)

// minimalFile returns a B000 image with a valid header and every section
// empty, exercising the decode path end to end without needing to hand-craft
// a populated row table.
func minimalFile() []byte {
	buf := make([]byte, section.HeaderSize)
	copy(buf[0:4], []byte("B000"))
	return buf
}

func TestDecodeMinimalFile(t *testing.T) {
	doc, err := b000.Decode(minimalFile())
	require.NoError(t, err)
	require.NotNil(t, doc.MzML)
	assert.Equal(t, "B000", string(doc.Header.FileSignature[:]))
	assert.Empty(t, doc.MzML.Run.Spectra)
}

func TestDecodeWithChecksum(t *testing.T) {
	var checksum uint64
	_, err := b000.Decode(minimalFile(), b000.WithChecksum(&checksum))
	require.NoError(t, err)
	// empty row table hashes to a deterministic, stable value
	assert.Equal(t, b000.ChecksumRows(nil), checksum)
}

func TestDecodeTooSmall(t *testing.T) {
	_, err := b000.Decode([]byte{1, 2, 3})
	require.Error(t, err)
}
