package row

import "github.com/openscan/b000/schema"

// Metadatum is one immutable flat row decoded from a metadata section.
//
// Invariants (enforced by the writer, not re-validated here): for any
// OwnerID, every row sharing it has the same TagID and ParentIndex; row
// order is significant and matches first-appearance order in the source.
type Metadatum struct {
	ItemIndex     uint32
	OwnerID       uint32
	ParentIndex   uint32
	TagID         schema.TagID
	Accession     string // "" only when Value.IsEmpty()
	UnitAccession string // "" when absent
	Value         Value
}

// HasAccession reports whether the row carries a CV or attribute accession.
func (m Metadatum) HasAccession() bool { return m.Accession != "" }

// IsB000Attribute reports whether the row's accession is a synthetic
// attribute row rather than a real controlled-vocabulary parameter.
func (m Metadatum) IsB000Attribute() bool {
	return len(m.Accession) >= 5 && m.Accession[:5] == "B000:"
}
