package b000_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	b000 "github.com/openscan/b000"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

func TestChecksumRowsDeterministic(t *testing.T) {
	rows := []row.Metadatum{
		{ItemIndex: 0, OwnerID: 1, ParentIndex: 0, TagID: schema.Spectrum, Accession: "MS:1000511", Value: row.NumberValue(2)},
	}

	a := b000.ChecksumRows(rows)
	b := b000.ChecksumRows(rows)
	assert.Equal(t, a, b)
}

func TestChecksumRowsOrderSensitive(t *testing.T) {
	r1 := row.Metadatum{OwnerID: 1, Accession: "MS:1000511", Value: row.NumberValue(2)}
	r2 := row.Metadatum{OwnerID: 2, Accession: "MS:1000512", Value: row.NumberValue(3)}

	a := b000.ChecksumRows([]row.Metadatum{r1, r2})
	b := b000.ChecksumRows([]row.Metadatum{r2, r1})
	assert.NotEqual(t, a, b)
}
