package mzml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscan/b000/mzml"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

// TestBuildSpectrumListLegacyDescriptionWrapper exercises the fallback path
// where a spectrum's scan/precursor lists hang off a legacy
// SpectrumDescription wrapper instead of directly off the spectrum.
func TestBuildSpectrumListLegacyDescriptionWrapper(t *testing.T) {
	rows := []row.Metadatum{
		attrRow(10, mzml.DocumentRoot, schema.Run, mzml.AccAttrID, row.TextValue("run1")),
		attrRow(11, 10, schema.SpectrumList, mzml.AccAttrCount, row.NumberValue(1)),
		attrRow(12, 11, schema.Spectrum, mzml.AccAttrID, row.TextValue("scan=1")),

		// legacy wrapper
		attrRow(30, 12, schema.SpectrumDescription, mzml.AccAttrCount, row.NumberValue(0)),
		attrRow(31, 30, schema.ScanList, mzml.AccAttrCount, row.NumberValue(1)),
		attrRow(32, 31, schema.Scan, mzml.AccAttrInstrumentConfigurationRef, row.TextValue("IC-legacy")),
	}

	doc, err := mzml.Build(rows)
	require.NoError(t, err)
	require.Len(t, doc.Run.Spectra, 1)

	sp := doc.Run.Spectra[0]
	require.Len(t, sp.Scans, 1)
	assert.Equal(t, "IC-legacy", sp.Scans[0].InstrumentConfigurationRef)
}

func TestBuildSpectrumListIndexPrefersStoredAttribute(t *testing.T) {
	rows := []row.Metadatum{
		attrRow(10, mzml.DocumentRoot, schema.Run, mzml.AccAttrID, row.TextValue("run1")),
		attrRow(11, 10, schema.SpectrumList, mzml.AccAttrCount, row.NumberValue(2)),
		attrRow(12, 11, schema.Spectrum, mzml.AccAttrIndex, row.NumberValue(5)),
		attrRow(13, 11, schema.Spectrum, mzml.AccAttrID, row.TextValue("scan=2")),
	}

	doc, err := mzml.Build(rows)
	require.NoError(t, err)
	require.Len(t, doc.Run.Spectra, 2)

	assert.Equal(t, uint32(5), doc.Run.Spectra[0].Index)
	// Second spectrum carries no stored Index attribute, so it falls back
	// to its ordinal position in the list.
	assert.Equal(t, uint32(1), doc.Run.Spectra[1].Index)
}

func TestBuildSpectrumListFallsBackToFlatScan(t *testing.T) {
	// No SpectrumList wrapper at all: spectra are still discovered by
	// first-appearance scan.
	rows := []row.Metadatum{
		attrRow(10, mzml.DocumentRoot, schema.Run, mzml.AccAttrID, row.TextValue("run1")),
		attrRow(12, 10, schema.Spectrum, mzml.AccAttrID, row.TextValue("scan=1")),
	}

	doc, err := mzml.Build(rows)
	require.NoError(t, err)
	require.Len(t, doc.Run.Spectra, 1)
	assert.Equal(t, "scan=1", doc.Run.Spectra[0].ID)
}
