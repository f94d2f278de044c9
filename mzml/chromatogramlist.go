package mzml

import (
	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

func buildChromatogramList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, runOwner uint32) []Chromatogram {
	var listID uint32
	if ids := idsForParent(idx, rows, runOwner, schema.ChromatogramList); len(ids) > 0 {
		listID = ids[0]
	} else {
		listID = runOwner
	}

	ids := idsForParent(idx, rows, listID, schema.Chromatogram)
	if len(ids) == 0 {
		ids = orderedUniqueOwnerIDs(rows, schema.Chromatogram)
	}

	out := make([]Chromatogram, 0, len(ids))
	for i, id := range ids {
		out = append(out, chromatogramFrom(rows, id, uint32(i)))
	}
	return out
}

func chromatogramFrom(rows []row.Metadatum, id uint32, position uint32) Chromatogram {
	scoped := index.CollectSubtreeMetadata(rows, id)
	idx := index.Build(scoped)
	owned := rowsByOwner(scoped)

	chromIndex, ok := getAttrU32(owned, id, AccAttrIndex)
	if !ok {
		chromIndex = position
	}
	c := Chromatogram{Index: chromIndex}
	c.ID, _ = getAttrText(owned, id, AccAttrID)
	c.DataProcessingRef, _ = getAttrText(owned, id, AccAttrDataProcessingRef)
	c.DefaultArrayLength, _ = getAttrU32(owned, id, AccAttrDefaultArrayLength)

	cvp, up := splitCvAndUserParams(owned[id], nil)
	c.Params = CvParamGroup{CvParams: cvp, UserParams: up}

	if precID, ok := idx.FirstID(id, schema.Precursor); ok {
		pr := precursorFrom(idx, owned, scoped, precID)
		c.Precursor = &pr
	}

	c.BinaryDataArrays = buildBinaryDataArrays(idx, owned, scoped, id, c.DefaultArrayLength)
	if c.DefaultArrayLength == 0 && len(c.BinaryDataArrays) > 0 {
		c.DefaultArrayLength = c.BinaryDataArrays[0].ArrayLength
	}

	return c
}
