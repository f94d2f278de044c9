// Package index builds lookup structures over a decoded metadata row table so
// assemblers can navigate owner/parent relationships without repeated linear
// scans.
package index

import (
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

// packKey combines a parent item index and a tag into a single map key.
func packKey(parent uint32, tag schema.TagID) uint64 {
	return uint64(parent)<<8 | uint64(tag)
}

// ChildIndex answers parent/child navigation queries over a row table's
// ParentIndex/TagID columns. It is built once per scope (the whole document,
// or a scoped subtree) and reused by every assembler walking that scope.
//
// Deduplication is full-sequence, by first occurrence: a given item index
// appears at most once in any ids slice, even if its rows are not
// contiguous, matching how owners repeat their rows are collapsed into a
// single logical child.
type ChildIndex struct {
	idsByParentTag   map[uint64][]uint32
	childrenByParent map[uint32][]uint32
}

// Build constructs a ChildIndex over the given rows, recording each row's
// OwnerID as a child of its ParentIndex (overall and under its TagID).
func Build(rows []row.Metadatum) *ChildIndex {
	idx := &ChildIndex{
		idsByParentTag:   make(map[uint64][]uint32),
		childrenByParent: make(map[uint32][]uint32),
	}

	seenByParentTag := make(map[uint64]map[uint32]struct{})
	seenByParent := make(map[uint32]map[uint32]struct{})

	for _, r := range rows {
		key := packKey(r.ParentIndex, r.TagID)

		if seenByParentTag[key] == nil {
			seenByParentTag[key] = make(map[uint32]struct{})
		}
		if _, ok := seenByParentTag[key][r.OwnerID]; !ok {
			seenByParentTag[key][r.OwnerID] = struct{}{}
			idx.idsByParentTag[key] = append(idx.idsByParentTag[key], r.OwnerID)
		}

		if seenByParent[r.ParentIndex] == nil {
			seenByParent[r.ParentIndex] = make(map[uint32]struct{})
		}
		if _, ok := seenByParent[r.ParentIndex][r.OwnerID]; !ok {
			seenByParent[r.ParentIndex][r.OwnerID] = struct{}{}
			idx.childrenByParent[r.ParentIndex] = append(idx.childrenByParent[r.ParentIndex], r.OwnerID)
		}
	}

	return idx
}

// IDs returns the deduplicated, first-occurrence-ordered item indices of the
// direct children of parent carrying the given tag.
func (c *ChildIndex) IDs(parent uint32, tag schema.TagID) []uint32 {
	return c.idsByParentTag[packKey(parent, tag)]
}

// IDsForTags returns the deduplicated, first-occurrence-ordered union (in
// tag-list order, then first-occurrence order within each tag) of direct
// children of parent carrying any of the given tags.
func (c *ChildIndex) IDsForTags(parent uint32, tags ...schema.TagID) []uint32 {
	var out []uint32
	seen := make(map[uint32]struct{})
	for _, tag := range tags {
		for _, id := range c.IDs(parent, tag) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// FirstID returns the first direct child of parent carrying tag, and true,
// or (0, false) if there is none.
func (c *ChildIndex) FirstID(parent uint32, tag schema.TagID) (uint32, bool) {
	ids := c.IDs(parent, tag)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// Children returns every direct child item index of parent, deduplicated by
// first occurrence, regardless of tag.
func (c *ChildIndex) Children(parent uint32) []uint32 {
	return c.childrenByParent[parent]
}

// SubtreeOwnerIDs returns every item index reachable from root via
// Children, root included, via an iterative depth-first walk.
func (c *ChildIndex) SubtreeOwnerIDs(root uint32) []uint32 {
	visited := make(map[uint32]struct{})
	stack := []uint32{root}
	var out []uint32

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		out = append(out, id)

		children := c.Children(id)
		for i := len(children) - 1; i >= 0; i-- {
			if _, ok := visited[children[i]]; !ok {
				stack = append(stack, children[i])
			}
		}
	}

	return out
}

// IsChildOf reports whether child is a direct child of parent, under any
// tag.
func (c *ChildIndex) IsChildOf(parent, child uint32) bool {
	for _, id := range c.childrenByParent[parent] {
		if id == child {
			return true
		}
	}
	return false
}

// CollectSubtreeMetadata filters rows down to those whose OwnerID lies in
// the subtree rooted at root (root included), preserving row order. Used by
// assemblers to scope a local ChildIndex to one spectrum/chromatogram/etc.
// before resolving its attributes and nested lists.
func CollectSubtreeMetadata(rows []row.Metadatum, root uint32) []row.Metadatum {
	full := Build(rows)
	members := full.SubtreeOwnerIDs(root)

	memberSet := make(map[uint32]struct{}, len(members))
	for _, id := range members {
		memberSet[id] = struct{}{}
	}

	out := make([]row.Metadatum, 0, len(rows))
	for _, r := range rows {
		if _, ok := memberSet[r.OwnerID]; ok {
			out = append(out, r)
		}
	}
	return out
}
