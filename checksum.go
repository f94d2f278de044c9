package b000

import (
	"strconv"
	"strings"

	"github.com/openscan/b000/internal/hash"
	"github.com/openscan/b000/row"
)

// ChecksumRows computes an order-sensitive xxhash digest over a decoded row
// table, letting callers cheaply compare two decodes (e.g. before/after a
// round trip through the attribute synthesizer) without a deep equality
// check over the whole object tree.
func ChecksumRows(rows []row.Metadatum) uint64 {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strconv.FormatUint(uint64(r.ItemIndex), 10))
		b.WriteByte('|')
		b.WriteString(strconv.FormatUint(uint64(r.OwnerID), 10))
		b.WriteByte('|')
		b.WriteString(strconv.FormatUint(uint64(r.ParentIndex), 10))
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(int(r.TagID)))
		b.WriteByte('|')
		b.WriteString(r.Accession)
		b.WriteByte('|')
		b.WriteString(r.UnitAccession)
		b.WriteByte('|')
		if s, ok := r.Value.AsOptString(); ok {
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}
	return hash.ID(b.String())
}
