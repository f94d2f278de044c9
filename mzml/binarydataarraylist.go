package mzml

import (
	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

// buildBinaryDataArrays reconstructs the binaryDataArrayList of a spectrum
// or chromatogram. parentDefaultArrayLength is the owning element's own
// defaultArrayLength attribute (0 if absent), used as the first tier of the
// array-length inheritance fallback.
func buildBinaryDataArrays(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, owner uint32, parentDefaultArrayLength uint32) []BinaryDataArray {
	var listOwner uint32
	if ids := idsForParent(idx, rows, owner, schema.BinaryDataArrayList); len(ids) > 0 {
		listOwner = ids[0]
	} else {
		listOwner = owner
	}

	bdaIDs := idsForParent(idx, rows, listOwner, schema.BinaryDataArray)

	out := make([]BinaryDataArray, 0, len(bdaIDs))
	for _, id := range bdaIDs {
		out = append(out, binaryDataArrayFrom(owned, id))
	}

	for i := range out {
		if out[i].ArrayLength != 0 {
			continue
		}
		if parentDefaultArrayLength != 0 {
			out[i].ArrayLength = parentDefaultArrayLength
			continue
		}
		out[i].ArrayLength = inferArrayLength(out[i])
	}

	return out
}

func binaryDataArrayFrom(owned map[uint32][]row.Metadatum, id uint32) BinaryDataArray {
	bda := BinaryDataArray{}

	bda.ArrayLength, _ = getAttrU32(owned, id, AccAttrArrayLength)
	bda.EncodedLength, _ = getAttrU32(owned, id, AccAttrEncodedLength)
	bda.DataProcessingRef, _ = getAttrText(owned, id, AccAttrDataProcessingRef)

	cvp, up := splitCvAndUserParams(owned[id], nil)
	bda.Params = CvParamGroup{CvParams: cvp, UserParams: up}

	for _, p := range cvp {
		switch p.Accession {
		case "MS:1000521":
			bda.IsFloat32 = true
		case "MS:1000523":
			bda.IsFloat64 = true
		}
	}

	return bda
}

// inferArrayLength recovers a BinaryDataArray's element count from its
// encoded (base64) byte length when no defaultArrayLength is available:
// base64 expands 3 raw bytes into 4 encoded characters, so
// decodedBytes = (encodedLength/4)*3, divided by the element width. Only
// applies to single-kind (exactly one of float32/float64) arrays whose
// encoded length is a multiple of 4, since anything else can't be split
// evenly into base64 quantums.
func inferArrayLength(bda BinaryDataArray) uint32 {
	if bda.EncodedLength == 0 || bda.EncodedLength%4 != 0 {
		return 0
	}
	if bda.IsFloat32 == bda.IsFloat64 {
		return 0 // neither or both set: can't pick an element width
	}

	decodedBytes := (bda.EncodedLength / 4) * 3

	elemBytes := uint32(4)
	if bda.IsFloat64 {
		elemBytes = 8
	}

	if decodedBytes%elemBytes != 0 {
		return 0
	}
	return decodedBytes / elemBytes
}
