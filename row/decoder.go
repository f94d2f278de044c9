package row

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/openscan/b000/compress"
	"github.com/openscan/b000/endian"
	"github.com/openscan/b000/errs"
	"github.com/openscan/b000/internal/pool"
	"github.com/openscan/b000/schema"
)

var wireEndian = endian.GetLittleEndianEngine()

// SectionConfig carries the four arities and the compression flag a metadata
// section's header cell supplies alongside its (offset, length) span.
type SectionConfig struct {
	ItemCount     uint32
	MetaCount     uint32
	NumCount      uint32
	StrCount      uint32
	Compressed    bool
	ReservedFlags uint8 // low nibble selects the codec, per §6.4
}

// Decode parses a metadata section's columnar layout into a flat, ordered
// sequence of Metadatum records (§4.2).
func Decode(data []byte, cfg SectionConfig) ([]Metadatum, error) {
	if cfg.Compressed {
		codec, err := compress.CreateCodec(cfg.ReservedFlags & 0x0F)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		decompressed, err := codec.Decompress(data)
		if err != nil {
			return nil, err
		}
		data = decompressed
	}

	return decodeColumns(data, cfg)
}

func decodeColumns(data []byte, cfg SectionConfig) ([]Metadatum, error) {
	itemCount := int(cfg.ItemCount)
	metaCount := int(cfg.MetaCount)
	numCount := int(cfg.NumCount)
	strCount := int(cfg.StrCount)

	c := &cursor{data: data}

	ci, ciDone := c.u32Vec(itemCount + 1)
	defer ciDone()
	moi, moiDone := c.u32Vec(metaCount)
	defer moiDone()
	mpi, mpiDone := c.u32Vec(metaCount)
	defer mpiDone()
	mti := c.bytes(metaCount)
	mri := c.bytes(metaCount)
	man, manDone := c.u32Vec(metaCount)
	defer manDone()
	muri := c.bytes(metaCount)
	muan, muanDone := c.u32Vec(metaCount)
	defer muanDone()
	vk := c.bytes(metaCount)
	vi, viDone := c.u32Vec(metaCount)
	defer viDone()
	vn, vnDone := c.f64Vec(numCount)
	defer vnDone()
	voff, voffDone := c.u32Vec(strCount)
	defer voffDone()
	vlen, vlenDone := c.u32Vec(strCount)
	defer vlenDone()

	if c.err != nil {
		return nil, c.err
	}

	vsLen, err := stringPoolLength(vk, vi, voff, vlen)
	if err != nil {
		return nil, err
	}
	vs := c.bytes(vsLen)
	if c.err != nil {
		return nil, c.err
	}

	trailing := data[c.pos:]
	if cfg.Compressed {
		if len(trailing) != 0 {
			return nil, fmt.Errorf("%w: %d bytes after decompressed section", errs.ErrTrailingBytes, len(trailing))
		}
	} else {
		if len(trailing) > 7 {
			return nil, fmt.Errorf("%w: %d bytes", errs.ErrTrailingBytes, len(trailing))
		}
		for _, b := range trailing {
			if b != 0 {
				return nil, fmt.Errorf("%w: non-zero padding", errs.ErrTrailingBytes)
			}
		}
	}

	if err := validateCI(ci, metaCount); err != nil {
		return nil, err
	}

	out := make([]Metadatum, 0, metaCount)
	for itemIndex := 0; itemIndex < itemCount; itemIndex++ {
		start := int(ci[itemIndex])
		end := int(ci[itemIndex+1])

		for j := start; j < end; j++ {
			value, err := resolveValue(vk[j], vi[j], vn, voff, vlen, vs)
			if err != nil {
				return nil, err
			}

			accession, _ := FormatAccession(CVCode(mri[j]), man[j])

			unitAccession := ""
			if muan[j] != 0 {
				unitAccession, _ = FormatAccession(CVCode(muri[j]), muan[j])
			}

			out = append(out, Metadatum{
				ItemIndex:     uint32(itemIndex),
				OwnerID:       moi[j],
				ParentIndex:   mpi[j],
				TagID:         schema.TagFromByte(mti[j]),
				Accession:     accession,
				UnitAccession: unitAccession,
				Value:         value,
			})
		}
	}

	return out, nil
}

func resolveValue(kind uint8, idx uint32, vn []float64, voff, vlen []uint32, vs []byte) (Value, error) {
	switch kind {
	case uint8(KindNumber):
		if int(idx) >= len(vn) {
			return Value{}, fmt.Errorf("%w: numeric value index %d", errs.ErrValueIndexRange, idx)
		}
		return NumberValue(vn[idx]), nil
	case uint8(KindText):
		if int(idx) >= len(voff) || int(idx) >= len(vlen) {
			return Value{}, fmt.Errorf("%w: string value index %d", errs.ErrValueIndexRange, idx)
		}
		off, ln := int(voff[idx]), int(vlen[idx])
		end := off + ln
		if end < off || end > len(vs) {
			return Value{}, fmt.Errorf("%w: string slice [%d:%d] of %d", errs.ErrStringBounds, off, end, len(vs))
		}
		return TextValue(decodeUTF8Lossy(vs[off:end])), nil
	default:
		return EmptyValue(), nil
	}
}

func decodeUTF8Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return string([]rune(string(b)))
}

// stringPoolLength computes the required length of the string byte pool VS:
// the maximum VOFF[i]+VLEN[i] among rows whose value kind is Text.
func stringPoolLength(vk []uint8, vi, voff, vlen []uint32) (int, error) {
	maxEnd := 0
	for j, kind := range vk {
		if kind != uint8(KindText) {
			continue
		}
		idx := int(vi[j])
		if idx >= len(voff) || idx >= len(vlen) {
			return 0, fmt.Errorf("%w: string VI %d out of range", errs.ErrValueIndexRange, idx)
		}
		end := int(voff[idx]) + int(vlen[idx])
		if end > maxEnd {
			maxEnd = end
		}
	}
	return maxEnd, nil
}

func validateCI(ci []uint32, metaCount int) error {
	if len(ci) == 0 || ci[0] != 0 {
		return fmt.Errorf("%w", errs.ErrCIBounds)
	}
	if int(ci[len(ci)-1]) != metaCount {
		return fmt.Errorf("%w: CI[last]=%d meta_count=%d", errs.ErrCIBounds, ci[len(ci)-1], metaCount)
	}

	prev := uint32(0)
	for _, x := range ci {
		if x < prev || int(x) > metaCount {
			return fmt.Errorf("%w", errs.ErrCINotMonotonic)
		}
		prev = x
	}
	return nil
}

// cursor reads fixed-width columns sequentially out of a byte slice,
// recording the first error encountered so callers can read every column
// unconditionally and check once at the end.
type cursor struct {
	data []byte
	pos  int
	err  error
}

func (c *cursor) need(n int) []byte {
	if c.err != nil {
		return nil
	}
	if c.pos+n > len(c.data) {
		c.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrColumnEOF, n, c.pos, len(c.data)-c.pos)
		return nil
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b
}

func (c *cursor) bytes(n int) []byte {
	return c.need(n)
}

// u32Vec decodes n little-endian uint32s starting at the cursor. The backing
// slice comes from the package's uint32 pool; callers must invoke the
// returned cleanup (typically via defer) once they're done reading it so the
// next section's columns can reuse the allocation.
func (c *cursor) u32Vec(n int) ([]uint32, func()) {
	raw := c.need(n * 4)
	if c.err != nil {
		return nil, func() {}
	}
	out, done := pool.GetUint32Slice(n)
	for i := 0; i < n; i++ {
		out[i] = wireEndian.Uint32(raw[i*4 : i*4+4])
	}
	return out, done
}

// f64Vec decodes n little-endian float64s starting at the cursor, pooled the
// same way u32Vec is.
func (c *cursor) f64Vec(n int) ([]float64, func()) {
	raw := c.need(n * 8)
	if c.err != nil {
		return nil, func() {}
	}
	out, done := pool.GetFloat64Slice(n)
	for i := 0; i < n; i++ {
		bits := wireEndian.Uint64(raw[i*8 : i*8+8])
		out[i] = math.Float64frombits(bits)
	}
	return out, done
}
