package row

import (
	"fmt"

	"github.com/openscan/b000/compress"
	"github.com/openscan/b000/errs"
)

// GlobalPrelude holds the per-section item counts carried in the
// global_meta section's own prelude, ahead of its row-table payload.
//
// Two prelude shapes exist on the wire: a 32-byte shape (8 u32 counts) and a
// 36-byte shape that additionally carries NRun. DecodeGlobal detects which
// is present and derives the section's true item count as the wrapping sum
// of these counts, overriding any nominal count supplied by the header when
// that sum is nonzero.
type GlobalPrelude struct {
	NFileDescription uint32
	NReferenceableParamGroup uint32
	NSample          uint32
	NInstrument      uint32
	NSoftware        uint32
	NDataProcessing  uint32
	NScanSettings    uint32
	NCvList          uint32
	NRun             uint32 // only present in the 36-byte prelude; else 0
	Is36Byte         bool
}

// itemCount returns the wrapping sum of every prelude count, matching the
// source format's derived item count computation.
func (p GlobalPrelude) itemCount() uint32 {
	sum := p.NFileDescription + p.NReferenceableParamGroup + p.NSample +
		p.NInstrument + p.NSoftware + p.NDataProcessing + p.NScanSettings + p.NCvList
	if p.Is36Byte {
		sum += p.NRun
	}
	return sum
}

// DecodeGlobal decodes the global_meta section: decompress first (if the
// section is compressed), detect and strip the prelude, then decode the
// remainder as an ordinary row table with compressed=false, since it has
// already been decompressed.
func DecodeGlobal(data []byte, cfg SectionConfig) ([]Metadatum, GlobalPrelude, error) {
	if cfg.Compressed {
		codec, err := compress.CreateCodec(cfg.ReservedFlags & 0x0F)
		if err != nil {
			return nil, GlobalPrelude{}, fmt.Errorf("%w", err)
		}
		decompressed, err := codec.Decompress(data)
		if err != nil {
			return nil, GlobalPrelude{}, err
		}
		data = decompressed
	}

	prelude, rest, err := detectGlobalPrelude(data)
	if err != nil {
		return nil, GlobalPrelude{}, err
	}

	restCfg := cfg
	restCfg.Compressed = false
	if derived := prelude.itemCount(); derived != 0 {
		restCfg.ItemCount = derived
	}

	rows, err := decodeColumns(rest, restCfg)
	if err != nil {
		return nil, GlobalPrelude{}, err
	}

	return rows, prelude, nil
}

// detectGlobalPrelude probes for the 36-byte prelude first, falling back to
// the 32-byte shape. The probe looks only at offset 36: the 36-byte shape is
// chosen when the data ends exactly there or the u32 at that offset is zero
// (the CI[0] cell a row table starts with); otherwise the 32-byte shape is
// used without further checks. The u32 at offset 32 (NRun in the 36-byte
// shape, which can legitimately be zero) is not inspected.
func detectGlobalPrelude(data []byte) (GlobalPrelude, []byte, error) {
	const prelude32 = 32
	const prelude36 = 36

	if len(data) < prelude32 {
		return GlobalPrelude{}, nil, fmt.Errorf("%w: global prelude", errs.ErrMissingPrelude)
	}

	if len(data) >= prelude36 && probeZeroU32(data, prelude36) {
		p := parsePrelude36(data)
		return p, data[prelude36:], nil
	}

	p := parsePrelude32(data)
	return p, data[prelude32:], nil
}

// probeZeroU32 reports whether byte offset `at` is a plausible prelude
// boundary: the four bytes at that offset either start a valid row table (an
// all-zero CI[0] cell) or the buffer is exactly that long.
func probeZeroU32(data []byte, at int) bool {
	if at > len(data) {
		return false
	}
	if at == len(data) {
		return true
	}
	return wireEndian.Uint32(data[at:at+4]) == 0
}

func parsePrelude32(data []byte) GlobalPrelude {
	u32 := func(i int) uint32 { return wireEndian.Uint32(data[i*4 : i*4+4]) }
	return GlobalPrelude{
		NFileDescription:         u32(0),
		NReferenceableParamGroup: u32(1),
		NSample:                  u32(2),
		NInstrument:              u32(3),
		NSoftware:                u32(4),
		NDataProcessing:          u32(5),
		NScanSettings:            u32(6),
		NCvList:                  u32(7),
		Is36Byte:                 false,
	}
}

func parsePrelude36(data []byte) GlobalPrelude {
	u32 := func(i int) uint32 { return wireEndian.Uint32(data[i*4 : i*4+4]) }
	return GlobalPrelude{
		NFileDescription:         u32(0),
		NReferenceableParamGroup: u32(1),
		NSample:                  u32(2),
		NInstrument:              u32(3),
		NSoftware:                u32(4),
		NDataProcessing:          u32(5),
		NScanSettings:            u32(6),
		NCvList:                  u32(7),
		NRun:                     u32(8),
		Is36Byte:                 true,
	}
}
