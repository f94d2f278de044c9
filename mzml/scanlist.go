package mzml

import (
	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

func buildScanList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, scopeID uint32) []Scan {
	var listID uint32
	if ids := idsForParent(idx, rows, scopeID, schema.ScanList); len(ids) > 0 {
		listID = ids[0]
	} else {
		listID = scopeID
	}

	var out []Scan
	for _, id := range idsForParent(idx, rows, listID, schema.Scan) {
		sc := Scan{}
		sc.InstrumentConfigurationRef, _ = getAttrText(owned, id, AccAttrInstrumentConfigurationRef)
		cvp, up := splitCvAndUserParams(owned[id], nil)
		sc.Params = CvParamGroup{CvParams: cvp, UserParams: up}

		var windowListID uint32
		if ids := idsForParent(idx, rows, id, schema.ScanWindowList); len(ids) > 0 {
			windowListID = ids[0]
		} else {
			windowListID = id
		}
		for _, winID := range idsForParent(idx, rows, windowListID, schema.ScanWindow) {
			wcvp, wup := splitCvAndUserParams(owned[winID], nil)
			sc.ScanWindows = append(sc.ScanWindows, ScanWindow{Params: CvParamGroup{CvParams: wcvp, UserParams: wup}})
		}

		out = append(out, sc)
	}
	return out
}
