package mzml

import (
	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

// DocumentRoot is the item index of the synthetic document root row (the
// FileContent row), which every top-level list hangs off of.
const DocumentRoot uint32 = 0

// Build assembles the full MzML object tree from the merged, decoded row
// table (global_meta, spec_meta and chrom_meta rows concatenated, in that
// order, as produced by the section decoders).
func Build(rows []row.Metadatum) (*MzML, error) {
	idx := index.Build(rows)
	owned := rowsByOwner(rows)

	doc := &MzML{}

	if id, ok := getAttrText(owned, DocumentRoot, AccAttrID); ok {
		doc.ID = id
	}
	if v, ok := getAttrText(owned, DocumentRoot, AccAttrVersion); ok {
		doc.Version = v
	}

	doc.CvList = buildCvList(idx, owned, rows)
	doc.FileDescription = buildFileDescription(idx, owned, rows)
	doc.ReferenceableParamGroups = buildReferenceableParamGroups(idx, owned, rows)
	doc.SampleList = buildSampleList(idx, owned, rows)
	doc.SoftwareList = buildSoftwareList(idx, owned, rows)
	doc.ScanSettingsList = buildScanSettingsList(idx, owned, rows)
	doc.InstrumentConfigurations = buildInstrumentConfigurationList(idx, owned, rows)
	doc.DataProcessingList = buildDataProcessingList(idx, owned, rows)
	doc.Run = buildRun(idx, owned, rows)

	return doc, nil
}

// buildCvList reconstructs the document's controlled-vocabulary
// declarations. The schema has no dedicated tag for a "cv" entry (only for
// the CvParam/UserParam elements that reference one), so candidates are
// found structurally: every direct child of the document root that carries
// a CV_ID attribute row is a cv declaration.
func buildCvList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum) []CvEntry {
	var out []CvEntry
	for _, id := range idx.Children(DocumentRoot) {
		if _, ok := getAttrText(owned, id, AccAttrCVID); !ok {
			continue
		}
		entry := CvEntry{}
		entry.ID, _ = getAttrText(owned, id, AccAttrCVID)
		entry.FullName, _ = getAttrText(owned, id, AccAttrCVFullName)
		entry.Version, _ = getAttrText(owned, id, AccAttrCVVersion)
		entry.URI, _ = getAttrText(owned, id, AccAttrCVURI)
		out = append(out, entry)
	}
	return out
}

func buildFileDescription(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum) FileDescription {
	fd := FileDescription{}

	fdOwner, ok := idx.FirstID(DocumentRoot, schema.FileDescription)
	if !ok {
		fdOwner = DocumentRoot
	}

	cvParams, userParams := splitCvAndUserParams(owned[fdOwner], nil)
	fd.FileContent = CvParamGroup{CvParams: cvParams, UserParams: userParams}

	for _, id := range idsForParent(idx, rows, fdOwner, schema.SourceFile) {
		sf := SourceFile{}
		sf.ID, _ = getAttrText(owned, id, AccAttrID)
		sf.Name, _ = getAttrText(owned, id, AccAttrName)
		sf.Location, _ = getAttrText(owned, id, AccAttrLocation)
		cvp, up := splitCvAndUserParams(owned[id], nil)
		sf.Params = CvParamGroup{CvParams: cvp, UserParams: up}
		fd.SourceFiles = append(fd.SourceFiles, sf)
	}

	for _, id := range idsForParent(idx, rows, fdOwner, schema.Contact) {
		cvp, up := splitCvAndUserParams(owned[id], nil)
		fd.Contacts = append(fd.Contacts, Contact{Params: CvParamGroup{CvParams: cvp, UserParams: up}})
	}

	return fd
}

func buildReferenceableParamGroups(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum) []ReferenceableParamGroup {
	var out []ReferenceableParamGroup
	for _, id := range idsForParentTags(idx, rows, DocumentRoot, schema.ReferenceableParamGroupList, schema.ReferenceableParamGroup) {
		for _, childID := range idsForParent(idx, rows, id, schema.ReferenceableParamGroup) {
			out = append(out, referenceableParamGroupFrom(owned, childID))
		}
	}
	if len(out) == 0 {
		for _, id := range orderedUniqueOwnerIDs(rows, schema.ReferenceableParamGroup) {
			out = append(out, referenceableParamGroupFrom(owned, id))
		}
	}
	return out
}

func referenceableParamGroupFrom(owned map[uint32][]row.Metadatum, id uint32) ReferenceableParamGroup {
	rpg := ReferenceableParamGroup{}
	rpg.ID, _ = getAttrText(owned, id, AccAttrID)
	cvp, up := splitCvAndUserParams(owned[id], nil)
	rpg.Params = CvParamGroup{CvParams: cvp, UserParams: up}
	return rpg
}

func buildSampleList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum) []Sample {
	var out []Sample
	for _, id := range idsForParentTags(idx, rows, DocumentRoot, schema.SampleList, schema.Sample) {
		for _, childID := range idsForParent(idx, rows, id, schema.Sample) {
			out = append(out, sampleFrom(owned, childID))
		}
	}
	if len(out) == 0 {
		for _, id := range orderedUniqueOwnerIDs(rows, schema.Sample) {
			out = append(out, sampleFrom(owned, id))
		}
	}
	return out
}

func sampleFrom(owned map[uint32][]row.Metadatum, id uint32) Sample {
	s := Sample{}
	s.ID, _ = getAttrText(owned, id, AccAttrID)
	s.Name, _ = getAttrText(owned, id, AccAttrName)
	cvp, up := splitCvAndUserParams(owned[id], nil)
	s.Params = CvParamGroup{CvParams: cvp, UserParams: up}
	return s
}

func buildSoftwareList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum) []Software {
	var out []Software
	for _, id := range idsForParentTags(idx, rows, DocumentRoot, schema.SoftwareList, schema.Software) {
		for _, childID := range idsForParent(idx, rows, id, schema.Software) {
			out = append(out, softwareFrom(idx, owned, rows, childID))
		}
	}
	if len(out) == 0 {
		for _, id := range orderedUniqueOwnerIDs(rows, schema.Software) {
			out = append(out, softwareFrom(idx, owned, rows, id))
		}
	}
	return out
}

func softwareFrom(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, id uint32) Software {
	sw := Software{}
	sw.ID, _ = getAttrText(owned, id, AccAttrID)
	sw.Version, _ = getAttrText(owned, id, AccAttrVersion)
	sw.SoftwareParams = softwareParamsFrom(idx, owned, rows, id, sw.Version)
	cvp, up := splitCvAndUserParams(owned[id], nil)
	sw.Params = CvParamGroup{CvParams: cvp, UserParams: up}
	return sw
}

// softwareParamsFrom builds the <softwareParam> list beneath a software
// element. A param with no version of its own inherits the parent software's
// version, since acquisition software commonly states its version once at
// the software level and tags the implemented method per param.
func softwareParamsFrom(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, softwareID uint32, parentVersion string) []SoftwareParam {
	var out []SoftwareParam
	for _, paramID := range idsForParent(idx, rows, softwareID, schema.SoftwareParam) {
		version, _ := getAttrText(owned, paramID, AccAttrVersion)
		if version == "" {
			version = parentVersion
		}

		cvRef, _ := getAttrText(owned, paramID, AccAttrRef)

		cvp, _ := splitCvAndUserParams(owned[paramID], nil)
		if len(cvp) > 0 {
			p := cvp[0]
			if cvRef == "" {
				cvRef = p.CvRef
			}
			out = append(out, SoftwareParam{
				CvRef:     cvRef,
				Accession: p.Accession,
				Name:      p.Name,
				Version:   version,
			})
			continue
		}

		name, _ := getAttrText(owned, paramID, AccAttrName)
		out = append(out, SoftwareParam{
			CvRef:   cvRef,
			Name:    name,
			Version: version,
		})
	}
	return out
}

func buildInstrumentConfigurationList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum) []InstrumentConfiguration {
	var out []InstrumentConfiguration
	for _, id := range idsForParentTags(idx, rows, DocumentRoot, schema.InstrumentConfigurationList, schema.Instrument) {
		for _, childID := range idsForParent(idx, rows, id, schema.Instrument) {
			out = append(out, instrumentConfigurationFrom(idx, owned, rows, childID))
		}
	}
	if len(out) == 0 {
		for _, id := range orderedUniqueOwnerIDs(rows, schema.Instrument) {
			out = append(out, instrumentConfigurationFrom(idx, owned, rows, id))
		}
	}
	return out
}

func instrumentConfigurationFrom(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, id uint32) InstrumentConfiguration {
	ic := InstrumentConfiguration{}
	ic.ID, _ = getAttrText(owned, id, AccAttrID)
	ic.ScanSettingsRef, _ = getAttrText(owned, id, AccAttrScanSettingsRef)
	ic.SoftwareRef, _ = getAttrText(owned, id, AccAttrSoftwareRef)

	cvp, up := splitCvAndUserParams(owned[id], nil)
	ic.Params = CvParamGroup{CvParams: cvp, UserParams: up}

	for _, listID := range idsForParentTags(idx, rows, id, schema.ComponentList) {
		ic.Components = append(ic.Components, componentsFrom(idx, owned, rows, listID)...)
	}
	if len(ic.Components) == 0 {
		ic.Components = componentsFrom(idx, owned, rows, id)
	}

	return ic
}

func componentsFrom(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, parent uint32) []Component {
	var out []Component

	kindByTag := map[schema.TagID]string{
		schema.ComponentSource:   "source",
		schema.ComponentAnalyzer: "analyzer",
		schema.ComponentDetector: "detector",
	}

	for tag, kind := range kindByTag {
		for _, id := range idsForParent(idx, rows, parent, tag) {
			order, _ := getAttrU32(owned, id, AccAttrOrder)
			cvp, up := splitCvAndUserParams(owned[id], nil)
			out = append(out, Component{
				Kind:   kind,
				Order:  order,
				Params: CvParamGroup{CvParams: cvp, UserParams: up},
			})
		}
	}
	return out
}

func buildDataProcessingList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum) []DataProcessing {
	var out []DataProcessing
	for _, id := range idsForParentTags(idx, rows, DocumentRoot, schema.DataProcessingList, schema.DataProcessing) {
		for _, childID := range idsForParent(idx, rows, id, schema.DataProcessing) {
			out = append(out, dataProcessingFrom(idx, owned, rows, childID))
		}
	}
	if len(out) == 0 {
		for _, id := range orderedUniqueOwnerIDs(rows, schema.DataProcessing) {
			out = append(out, dataProcessingFrom(idx, owned, rows, id))
		}
	}
	return out
}

func dataProcessingFrom(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, id uint32) DataProcessing {
	dp := DataProcessing{}
	dp.ID, _ = getAttrText(owned, id, AccAttrID)

	for _, methodID := range idsForParent(idx, rows, id, schema.ProcessingMethod) {
		order, _ := getAttrU32(owned, methodID, AccAttrOrder)
		ref, _ := getAttrText(owned, methodID, AccAttrSoftwareRef)
		cvp, up := splitCvAndUserParams(owned[methodID], nil)
		dp.Methods = append(dp.Methods, ProcessingMethod{
			Order:       order,
			SoftwareRef: ref,
			Params:      CvParamGroup{CvParams: cvp, UserParams: up},
		})
	}
	return dp
}

func buildRun(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum) Run {
	run := Run{}

	runOwner, ok := idx.FirstID(DocumentRoot, schema.Run)
	if !ok {
		runOwner = DocumentRoot
	}

	run.ID, _ = getAttrText(owned, runOwner, AccAttrID)
	run.DefaultInstrumentConfigurationRef, _ = getAttrText(owned, runOwner, AccAttrDefaultInstrumentConfigurationRef)
	run.DefaultSourceFileRef, _ = getAttrText(owned, runOwner, AccAttrDefaultSourceFileRef)
	run.SampleRef, _ = getAttrText(owned, runOwner, AccAttrSampleRef)
	run.StartTimeStamp, _ = getAttrText(owned, runOwner, AccAttrStartTimeStamp)
	run.DefaultDataProcessingRef, _ = getAttrText(owned, runOwner, AccAttrDefaultDataProcessingRef)

	run.Spectra = buildSpectrumList(idx, owned, rows, runOwner)
	run.Chromatograms = buildChromatogramList(idx, owned, rows, runOwner)

	return run
}
