package mzml

import (
	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

func buildPrecursorList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, scopeID uint32) []Precursor {
	var listID uint32
	if ids := idsForParent(idx, rows, scopeID, schema.PrecursorList); len(ids) > 0 {
		listID = ids[0]
	} else {
		listID = scopeID
	}

	var out []Precursor
	for _, id := range idsForParent(idx, rows, listID, schema.Precursor) {
		out = append(out, precursorFrom(idx, owned, rows, id))
	}
	return out
}

func precursorFrom(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, id uint32) Precursor {
	p := Precursor{}
	p.SpectrumRef, _ = getAttrText(owned, id, AccAttrSpectrumRef)
	p.SourceFileRef, _ = getAttrText(owned, id, AccAttrSourceFileRef)
	p.ExternalSpectrumID, _ = getAttrText(owned, id, AccAttrExternalSpectrumID)

	if iwID, ok := idx.FirstID(id, schema.IsolationWindow); ok {
		cvp, up := splitCvAndUserParams(owned[iwID], nil)
		p.IsolationWindow = IsolationWindow{Params: CvParamGroup{CvParams: cvp, UserParams: up}}
	}

	var siListID uint32
	if ids := idsForParent(idx, rows, id, schema.SelectedIonList); len(ids) > 0 {
		siListID = ids[0]
	} else {
		siListID = id
	}
	for _, siID := range idsForParent(idx, rows, siListID, schema.SelectedIon) {
		cvp, up := splitCvAndUserParams(owned[siID], nil)
		p.SelectedIons = append(p.SelectedIons, SelectedIon{Params: CvParamGroup{CvParams: cvp, UserParams: up}})
	}

	if actID, ok := idx.FirstID(id, schema.Activation); ok {
		cvp, up := splitCvAndUserParams(owned[actID], nil)
		p.Activation = Activation{Params: CvParamGroup{CvParams: cvp, UserParams: up}}
	}

	return p
}

func buildProductList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, scopeID uint32) []Product {
	var listID uint32
	if ids := idsForParent(idx, rows, scopeID, schema.ProductList); len(ids) > 0 {
		listID = ids[0]
	} else {
		listID = scopeID
	}

	var out []Product
	for _, id := range idsForParent(idx, rows, listID, schema.Product) {
		prod := Product{}
		if iwID, ok := idx.FirstID(id, schema.IsolationWindow); ok {
			cvp, up := splitCvAndUserParams(owned[iwID], nil)
			prod.IsolationWindow = IsolationWindow{Params: CvParamGroup{CvParams: cvp, UserParams: up}}
		}
		out = append(out, prod)
	}
	return out
}
