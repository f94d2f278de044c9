package mzml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

func TestLegacyTargetGroups(t *testing.T) {
	rows := []row.Metadatum{
		{Accession: "MS:1000827", Value: row.NumberValue(500)},
		{Accession: "MS:1001225", Value: row.NumberValue(2)},
		{Accession: "MS:1000827", Value: row.NumberValue(600)},
		{Accession: "MS:1000502", Value: row.NumberValue(601.5)},
		{Accession: "MS:1000511", Value: row.NumberValue(1)}, // not in the whitelist, ignored
	}

	targets := legacyTargetGroups(rows)
	require.Len(t, targets, 2)

	assert.Len(t, targets[0].Params.CvParams, 2)
	assert.Equal(t, "MS:1000827", targets[0].Params.CvParams[0].Accession)

	assert.Len(t, targets[1].Params.CvParams, 2)
	assert.Equal(t, "MS:1000827", targets[1].Params.CvParams[0].Accession)
}

func TestLegacyTargetGroupsEmpty(t *testing.T) {
	assert.Empty(t, legacyTargetGroups(nil))
}

func TestSourceFileRefsLegacyFallback(t *testing.T) {
	rows := []row.Metadatum{
		{OwnerID: 10, ParentIndex: 1, TagID: schema.SourceFileList},
		{OwnerID: 11, ParentIndex: 10, TagID: schema.SourceFile,
			Accession: row.FormatSynthesizedB000Accession(AccAttrID), Value: row.TextValue("sf1")},
	}

	idx := index.Build(rows)
	refs := sourceFileRefsFor(idx, rowsByOwner(rows), rows, 1)

	require.Len(t, refs, 1)
	assert.Equal(t, "sf1", refs[0].Ref)
}
