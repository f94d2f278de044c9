package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscan/b000/errs"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
	"github.com/openscan/b000/synth"
)

type sample struct {
	ID    string `b000:"9910001"`
	Name  string `b000:"9910003"`
	Count uint32 `b000:"9910100"`
	unset string
}

func TestAttributesBasic(t *testing.T) {
	v := sample{ID: "scan1", Name: "", Count: 5}

	rows, err := synth.Attributes(&v, 42, 1, schema.Spectrum)
	require.NoError(t, err)

	byAccession := map[string]row.Value{}
	for _, r := range rows {
		assert.Equal(t, uint32(42), r.OwnerID)
		assert.Equal(t, uint32(1), r.ParentIndex)
		assert.Equal(t, schema.Spectrum, r.TagID)
		byAccession[r.Accession] = r.Value
	}

	idVal, ok := byAccession["B000:9910001"]
	require.True(t, ok)
	assert.Equal(t, "scan1", idVal.Str)

	// empty string fields produce no row
	_, hasName := byAccession["B000:9910003"]
	assert.False(t, hasName)

	countVal, ok := byAccession["B000:9910100"]
	require.True(t, ok)
	assert.Equal(t, float64(5), countVal.Num)
}

type zeroSignificant struct {
	Index uint32 `b000:"9910102,zero"`
	Order uint32 `b000:"9910101"`
}

func TestAttributesEmitZero(t *testing.T) {
	v := zeroSignificant{Index: 0, Order: 0}

	rows, err := synth.Attributes(&v, 1, 0, schema.Spectrum)
	require.NoError(t, err)

	byAccession := map[string]row.Value{}
	for _, r := range rows {
		byAccession[r.Accession] = r.Value
	}

	// Index is tagged "zero": a stored 0 still produces a row.
	indexVal, ok := byAccession["B000:9910102"]
	require.True(t, ok)
	assert.Equal(t, float64(0), indexVal.Num)

	// Order has no "zero" opt-in, so a zero value is treated as absent.
	_, hasOrder := byAccession["B000:9910101"]
	assert.False(t, hasOrder)
}

func TestAttributesBoolField(t *testing.T) {
	type withFlag struct {
		Flag bool `b000:"9910100,zero"`
	}

	rows, err := synth.Attributes(&withFlag{Flag: true}, 1, 0, schema.Spectrum)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "true", rows[0].Value.Str)

	rows, err = synth.Attributes(&withFlag{Flag: false}, 1, 0, schema.Spectrum)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "false", rows[0].Value.Str)
}

type overflowing struct {
	Big uint64 `b000:"9910100"`
}

func TestAttributesNumericOverflow(t *testing.T) {
	v := overflowing{Big: 1 << 60}
	_, err := synth.Attributes(&v, 1, 0, schema.Spectrum)
	require.ErrorIs(t, err, errs.ErrNumericOverflow)
}

func TestAttributesNilPointer(t *testing.T) {
	var v *sample
	rows, err := synth.Attributes(v, 1, 0, schema.Spectrum)
	require.NoError(t, err)
	assert.Nil(t, rows)
}
