package mzml

import (
	"strconv"

	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

// rowsByOwner groups a metadata row table by OwnerID for O(1) attribute
// lookup within one assembler pass.
func rowsByOwner(rows []row.Metadatum) map[uint32][]row.Metadatum {
	out := make(map[uint32][]row.Metadatum)
	for _, r := range rows {
		out[r.OwnerID] = append(out[r.OwnerID], r)
	}
	return out
}

// getAttrText returns the text (or number, stringified) value of the B000
// attribute row with the given tail owned by owner, or "" if absent.
func getAttrText(owned map[uint32][]row.Metadatum, owner uint32, tail uint32) (string, bool) {
	want := row.FormatSynthesizedB000Accession(tail)
	for _, r := range owned[owner] {
		if r.Accession != want {
			continue
		}
		if s, ok := r.Value.AsOptString(); ok {
			return s, true
		}
	}
	return "", false
}

// getAttrU32 parses the B000 attribute row with the given tail owned by
// owner as an unsigned integer, or (0, false) if absent or unparsable.
func getAttrU32(owned map[uint32][]row.Metadatum, owner uint32, tail uint32) (uint32, bool) {
	for _, r := range owned[owner] {
		if r.Accession != row.FormatSynthesizedB000Accession(tail) {
			continue
		}
		if r.Value.Kind == row.KindNumber {
			return uint32(r.Value.Num), true
		}
		if r.Value.Kind == row.KindText {
			if n, err := strconv.ParseUint(r.Value.Str, 10, 32); err == nil {
				return uint32(n), true
			}
		}
	}
	return 0, false
}

// idsForParent returns the direct children of parent under tag from the
// ChildIndex, falling back to a linear scan of rows for the first-appearance
// owner ids with that tag and parent when the index has none registered
// (the index only registers relationships actually present in the rows, so
// this fallback only fires when tag truly has no such children — it exists
// to mirror the defensive double-path idiom the row-table format assemblers
// use throughout).
func idsForParent(idx *index.ChildIndex, rows []row.Metadatum, parent uint32, tag schema.TagID) []uint32 {
	if ids := idx.IDs(parent, tag); len(ids) > 0 {
		return ids
	}

	var out []uint32
	seen := make(map[uint32]struct{})
	for _, r := range rows {
		if r.ParentIndex != parent || r.TagID != tag {
			continue
		}
		if _, ok := seen[r.OwnerID]; ok {
			continue
		}
		seen[r.OwnerID] = struct{}{}
		out = append(out, r.OwnerID)
	}
	return out
}

// idsForParentTags is the multi-tag form of idsForParent.
func idsForParentTags(idx *index.ChildIndex, rows []row.Metadatum, parent uint32, tags ...schema.TagID) []uint32 {
	if ids := idx.IDsForTags(parent, tags...); len(ids) > 0 {
		return ids
	}

	var out []uint32
	seen := make(map[uint32]struct{})
	for _, r := range rows {
		if r.ParentIndex != parent {
			continue
		}
		for _, tag := range tags {
			if r.TagID == tag {
				if _, ok := seen[r.OwnerID]; !ok {
					seen[r.OwnerID] = struct{}{}
					out = append(out, r.OwnerID)
				}
				break
			}
		}
	}
	return out
}

// orderedUniqueOwnerIDs returns every distinct OwnerID in rows whose TagID
// is tag, in first-appearance order.
func orderedUniqueOwnerIDs(rows []row.Metadatum, tag schema.TagID) []uint32 {
	var out []uint32
	seen := make(map[uint32]struct{})
	for _, r := range rows {
		if r.TagID != tag {
			continue
		}
		if _, ok := seen[r.OwnerID]; ok {
			continue
		}
		seen[r.OwnerID] = struct{}{}
		out = append(out, r.OwnerID)
	}
	return out
}
