package mzml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openscan/b000/row"
)

func TestSplitCvAndUserParams(t *testing.T) {
	rows := []row.Metadatum{
		{Accession: "MS:1000511", Value: row.NumberValue(2)},
		{Accession: "myCustomParam", Value: row.TextValue("x")},
		{Accession: row.FormatSynthesizedB000Accession(AccAttrID), Value: row.TextValue("scan1")},
		{Value: row.EmptyValue()}, // no accession at all
	}

	cvParams, userParams := splitCvAndUserParams(rows, nil)

	if assert.Len(t, cvParams, 1) {
		assert.Equal(t, "MS", cvParams[0].CvRef)
		assert.Equal(t, "MS:1000511", cvParams[0].Accession)
	}

	if assert.Len(t, userParams, 1) {
		assert.Equal(t, "myCustomParam", userParams[0].Name)
	}
}

func TestSplitCvAndUserParamsAllowedFilter(t *testing.T) {
	rows := []row.Metadatum{
		{Accession: "MS:1000827", Value: row.NumberValue(1)},
		{Accession: "MS:1000511", Value: row.NumberValue(2)},
	}

	allowed := map[string]struct{}{"MS:1000827": {}}
	cvParams, _ := splitCvAndUserParams(rows, allowed)

	assert.Len(t, cvParams, 1)
	assert.Equal(t, "MS:1000827", cvParams[0].Accession)
}

func TestIsCVPrefixedAccession(t *testing.T) {
	assert.True(t, isCVPrefixedAccession("MS:1000511"))
	assert.True(t, isCVPrefixedAccession("UO:0000010"))
	assert.False(t, isCVPrefixedAccession("myCustomParam"))
	assert.False(t, isCVPrefixedAccession("B000:9910001"))
}
