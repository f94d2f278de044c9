package mzml

import (
	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

// buildSpectrumList reconstructs the run's spectrumList. It prefers the
// direct SpectrumList->Spectrum child relationship recorded in the document
// index, falling back to every Spectrum-tagged row in first-appearance
// order when no SpectrumList wrapper is present.
func buildSpectrumList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, runOwner uint32) []Spectrum {
	var ids []uint32
	if listID, ok := findSpectrumListOwner(idx, rows, runOwner); ok {
		ids = idsForParent(idx, rows, listID, schema.Spectrum)
	}
	if len(ids) == 0 {
		ids = orderedUniqueOwnerIDs(rows, schema.Spectrum)
	}

	out := make([]Spectrum, 0, len(ids))
	for i, id := range ids {
		out = append(out, spectrumFrom(rows, id, uint32(i)))
	}
	return out
}

// findSpectrumListOwner picks the SpectrumList row whose direct children
// include a Spectrum, falling back to the first SpectrumList row
// encountered at all.
func findSpectrumListOwner(idx *index.ChildIndex, rows []row.Metadatum, runOwner uint32) (uint32, bool) {
	candidates := idsForParent(idx, rows, runOwner, schema.SpectrumList)
	if len(candidates) == 0 {
		candidates = orderedUniqueOwnerIDs(rows, schema.SpectrumList)
	}
	if len(candidates) == 0 {
		return 0, false
	}

	for _, id := range candidates {
		if len(idx.IDs(id, schema.Spectrum)) > 0 {
			return id, true
		}
	}
	return candidates[0], true
}

func spectrumFrom(rows []row.Metadatum, id uint32, position uint32) Spectrum {
	scoped := index.CollectSubtreeMetadata(rows, id)
	idx := index.Build(scoped)
	owned := rowsByOwner(scoped)

	// The B000 Index attribute, when present, is authoritative over the
	// row's ordinal position in the list — a stored index need not match
	// first-appearance order.
	specIndex, ok := getAttrU32(owned, id, AccAttrIndex)
	if !ok {
		specIndex = position
	}
	sp := Spectrum{Index: specIndex}

	sp.ID, _ = getAttrText(owned, id, AccAttrID)
	sp.NativeID, _ = getAttrText(owned, id, AccAttrNativeID)
	sp.SpotID, _ = getAttrText(owned, id, AccAttrSpotID)
	sp.DataProcessingRef, _ = getAttrText(owned, id, AccAttrDataProcessingRef)
	sp.SourceFileRef, _ = getAttrText(owned, id, AccAttrSourceFileRef)
	sp.DefaultArrayLength, _ = getAttrU32(owned, id, AccAttrDefaultArrayLength)

	// Legacy files wrap scan/precursor/product lists in a SpectrumDescription
	// element rather than hanging them directly off the spectrum.
	scopeID := id
	if descID, ok := idx.FirstID(id, schema.SpectrumDescription); ok {
		scopeID = descID
	} else if descID, ok := firstByParentScan(scoped, id); ok {
		scopeID = descID
	}

	cvp, up := splitCvAndUserParams(filterOutB000(owned[id]), nil)
	sp.Params = CvParamGroup{CvParams: cvp, UserParams: up}

	sp.Scans = buildScanList(idx, owned, scoped, scopeID)
	sp.Precursors = buildPrecursorList(idx, owned, scoped, scopeID)
	sp.Products = buildProductList(idx, owned, scoped, scopeID)

	if sp.DefaultArrayLength == 0 {
		sp.BinaryDataArrays = buildBinaryDataArrays(idx, owned, scoped, id, 0)
		if len(sp.BinaryDataArrays) > 0 {
			sp.DefaultArrayLength = sp.BinaryDataArrays[0].ArrayLength
		}
	} else {
		sp.BinaryDataArrays = buildBinaryDataArrays(idx, owned, scoped, id, sp.DefaultArrayLength)
	}

	return sp
}

// firstByParentScan is a fallback used only when the index has no
// SpectrumDescription registered for id: a linear scan for the first row
// whose ParentIndex is id and whose tag is SpectrumDescription.
func firstByParentScan(rows []row.Metadatum, parent uint32) (uint32, bool) {
	for _, r := range rows {
		if r.ParentIndex == parent && r.TagID == schema.SpectrumDescription {
			return r.OwnerID, true
		}
	}
	return 0, false
}

func filterOutB000(rows []row.Metadatum) []row.Metadatum {
	out := make([]row.Metadatum, 0, len(rows))
	for _, r := range rows {
		if r.IsB000Attribute() {
			continue
		}
		out = append(out, r)
	}
	return out
}
