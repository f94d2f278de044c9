package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/segmentio/encoding/json"
)

// Node describes one tag's place in the mzML schema (it does not record a
// tag's attributes): which tags may appear as its direct children, and
// (where the format constrains it) which accessions are valid CvParam
// children at a given nesting point — used by assemblers that must
// reconstruct a legacy, wrapper-less grouping from a flat CvParam run (the
// ScanSettingsList Target fallback is the motivating case).
type Node struct {
	Tag               TagID
	Children          []TagID
	AllowedAccessions []string // empty means "no constraint"
}

// Tree is a read-mostly map of every Node, keyed by TagID, built once at
// first use.
type Tree struct {
	nodes map[TagID]*Node
}

// NodeFor returns the Node for tag, or nil if the schema defines no
// constraints for it.
func (t *Tree) NodeFor(tag TagID) *Node {
	return t.nodes[tag]
}

// ChildAllowed reports whether child is a permitted direct child tag of
// parent according to the schema. A parent with no registered Node permits
// any child, since most tags in this format carry no child constraint.
func (t *Tree) ChildAllowed(parent, child TagID) bool {
	node := t.nodes[parent]
	if node == nil || len(node.Children) == 0 {
		return true
	}
	for _, c := range node.Children {
		if c == child {
			return true
		}
	}
	return false
}

// AllowedAccessionSet returns the allowed-accession whitelist registered for
// tag's CvParam children, or nil if unconstrained.
func (t *Tree) AllowedAccessionSet(tag TagID) map[string]struct{} {
	node := t.nodes[tag]
	if node == nil || len(node.AllowedAccessions) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(node.AllowedAccessions))
	for _, a := range node.AllowedAccessions {
		set[a] = struct{}{}
	}
	return set
}

//go:embed schema.json
var schemaJSON []byte

// jsonNode is the on-disk shape of schema.json: tag names instead of TagID
// values, since a TagID's numeric encoding is an internal wire detail that
// has no business leaking into the schema document.
type jsonNode struct {
	Tag               string   `json:"tag"`
	Children          []string `json:"children"`
	AllowedAccessions []string `json:"allowedAccessions"`
}

var (
	defaultTree     *Tree
	defaultTreeOnce sync.Once
	defaultTreeErr  error
)

// Default returns the package's shared schema Tree, decoded from the
// embedded schema.json document on first use.
//
// Target's allowed-accession set (isolation window target m/z, charge
// state, m/z, intensity) matches the legacy CvParam grouping fallback that
// ScanSettingsList's target reconstruction uses when no explicit Target
// wrapper element is present in the source.
func Default() *Tree {
	defaultTreeOnce.Do(func() {
		defaultTree, defaultTreeErr = parseTree(schemaJSON)
		if defaultTreeErr != nil {
			panic(fmt.Sprintf("schema: embedded schema.json is invalid: %v", defaultTreeErr))
		}
	})
	return defaultTree
}

func parseTree(data []byte) (*Tree, error) {
	var raw []jsonNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: decode schema.json: %w", err)
	}

	nodes := make(map[TagID]*Node, len(raw))
	for _, n := range raw {
		tag := TagFromXMLName(n.Tag)
		if tag == Unknown {
			return nil, fmt.Errorf("schema: unrecognized tag %q in schema.json", n.Tag)
		}

		children := make([]TagID, 0, len(n.Children))
		for _, c := range n.Children {
			childTag := TagFromXMLName(c)
			if childTag == Unknown {
				return nil, fmt.Errorf("schema: unrecognized child tag %q under %q in schema.json", c, n.Tag)
			}
			children = append(children, childTag)
		}

		nodes[tag] = &Node{
			Tag:               tag,
			Children:          children,
			AllowedAccessions: n.AllowedAccessions,
		}
	}

	return &Tree{nodes: nodes}, nil
}
