package row_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openscan/b000/row"
)

func TestNormalizeMSTail(t *testing.T) {
	assert.Equal(t, uint32(0), row.NormalizeMSTail(0))
	assert.Equal(t, uint32(1000511), row.NormalizeMSTail(511))
	assert.Equal(t, uint32(1000511), row.NormalizeMSTail(1000511))
}

func TestFormatAccession(t *testing.T) {
	tests := []struct {
		name string
		code row.CVCode
		tail uint32
		want string
	}{
		{"ms normalized", row.CVCodeMS, 511, "MS:1000511"},
		{"ms already normalized", row.CVCodeMS, 1000511, "MS:1000511"},
		{"uo", row.CVCodeUO, 10, "UO:0000010"},
		{"ncit", row.CVCodeNCIT, 12345, "NCIT:C12345"},
		{"b000 unpadded", row.CVCodeB000, 1, "B000:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := row.FormatAccession(tt.code, tt.tail)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := row.FormatAccession(row.CVCodeUnknown, 1)
	assert.False(t, ok)
}

func TestFormatSynthesizedB000Accession(t *testing.T) {
	assert.Equal(t, "B000:9910001", row.FormatSynthesizedB000Accession(9910001))
	assert.Equal(t, "B000:0000001", row.FormatSynthesizedB000Accession(1))
}
