package mzml

import (
	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

// targetGroupBoundaryAccession is the accession that opens a new legacy
// Target group when ScanSettings carries no explicit Target wrapper: every
// isolation window target m/z CvParam starts a fresh group, and any other
// whitelisted CvParam that follows belongs to that group.
const targetGroupBoundaryAccession = "MS:1000827"

// legacyTargetAllowedAccessions is sourced from the schema tree's Target
// node rather than a second hardcoded list, so the wrapper-less fallback
// grouping and the schema's own notion of "what belongs under Target" can
// never drift apart.
var legacyTargetAllowedAccessions = schema.Default().AllowedAccessionSet(schema.Target)

func buildScanSettingsList(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum) []ScanSettings {
	var ids []uint32
	if direct := idsForParent(idx, rows, DocumentRoot, schema.ScanSettingsList); len(direct) > 0 {
		listOwner := direct[0]
		ids = idsForParent(idx, rows, listOwner, schema.ScanSettings)
	}
	if len(ids) == 0 {
		ids = orderedUniqueOwnerIDs(rows, schema.ScanSettings)
	}

	out := make([]ScanSettings, 0, len(ids))
	for _, id := range ids {
		out = append(out, scanSettingsFrom(idx, owned, rows, id))
	}
	return out
}

func scanSettingsFrom(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, id uint32) ScanSettings {
	ss := ScanSettings{}
	ss.ID, _ = getAttrText(owned, id, AccAttrID)
	ss.InstrumentConfigurationRef, _ = getAttrText(owned, id, AccAttrInstrumentConfigurationRef)

	cvp, up := splitCvAndUserParams(owned[id], nil)
	ss.Params = CvParamGroup{CvParams: cvp, UserParams: up}

	ss.SourceFileRefs = sourceFileRefsFor(idx, owned, rows, id)
	ss.TargetList = targetListFor(idx, owned, rows, id)

	return ss
}

// sourceFileRefsFor reconstructs a ScanSettings's source file references,
// preferring the explicit sourceFileRefList/sourceFileRef shape and falling
// back to the legacy sourceFileList/sourceFile[@id] shape, where each
// sourceFile's own id is used directly as the ref.
func sourceFileRefsFor(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, settingsID uint32) []SourceFileRef {
	var out []SourceFileRef

	for _, listID := range idsForParent(idx, rows, settingsID, schema.SourceFileRefList) {
		for _, refID := range idsForParent(idx, rows, listID, schema.SourceFileRef) {
			if ref, ok := getAttrText(owned, refID, AccAttrRef); ok {
				out = append(out, SourceFileRef{Ref: ref})
			}
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, refID := range idsForParent(idx, rows, settingsID, schema.SourceFileRef) {
		if ref, ok := getAttrText(owned, refID, AccAttrRef); ok {
			out = append(out, SourceFileRef{Ref: ref})
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, listID := range idsForParent(idx, rows, settingsID, schema.SourceFileList) {
		for _, sfID := range idsForParent(idx, rows, listID, schema.SourceFile) {
			if sfID2, ok := getAttrText(owned, sfID, AccAttrID); ok {
				out = append(out, SourceFileRef{Ref: sfID2})
			}
		}
	}

	return out
}

// targetListFor reconstructs a ScanSettings's target list via its three
// fallback tiers: an explicit TargetList wrapper, explicit Target children
// with no wrapper, or a legacy grouping of flat CvParam children where each
// isolation-window-target-m/z param opens a new group.
func targetListFor(idx *index.ChildIndex, owned map[uint32][]row.Metadatum, rows []row.Metadatum, settingsID uint32) []Target {
	for _, listID := range idsForParent(idx, rows, settingsID, schema.TargetList) {
		if targets := targetsFromChildren(owned, idx, rows, listID); len(targets) > 0 {
			return targets
		}
	}

	if targets := targetsFromChildren(owned, idx, rows, settingsID); len(targets) > 0 {
		return targets
	}

	return legacyTargetGroups(owned[settingsID])
}

func targetsFromChildren(owned map[uint32][]row.Metadatum, idx *index.ChildIndex, rows []row.Metadatum, parent uint32) []Target {
	var out []Target
	for _, id := range idsForParent(idx, rows, parent, schema.Target) {
		cvp, up := splitCvAndUserParams(owned[id], legacyTargetAllowedAccessions)
		out = append(out, Target{Params: CvParamGroup{CvParams: cvp, UserParams: up}})
	}
	return out
}

// legacyTargetGroups splits a flat run of CvParam rows into Target groups:
// every MS:1000827 ("isolation window target m/z") opens a new group, and
// any trailing non-empty group is emitted even without a following boundary.
func legacyTargetGroups(rows []row.Metadatum) []Target {
	var targets []Target
	var current []row.Metadatum

	flush := func() {
		if len(current) == 0 {
			return
		}
		cvp, up := splitCvAndUserParams(current, legacyTargetAllowedAccessions)
		targets = append(targets, Target{Params: CvParamGroup{CvParams: cvp, UserParams: up}})
		current = nil
	}

	for _, r := range rows {
		if !r.HasAccession() {
			continue
		}
		if _, ok := legacyTargetAllowedAccessions[r.Accession]; !ok {
			continue
		}
		if r.Accession == targetGroupBoundaryAccession {
			flush()
		}
		current = append(current, r)
	}
	flush()

	return targets
}
