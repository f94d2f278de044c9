package section

import (
	"encoding/binary"
	"fmt"

	"github.com/openscan/b000/errs"
)

// HeaderSize is the fixed size in bytes of the B000 file prelude.
const HeaderSize = 512

const reservedTailSize = 256

// Codec identifiers selected by the low nibble of Header.CodecID.
const (
	CodecRaw  = 0
	CodecZstd = 1
)

// Header is the fixed-layout little-endian record at the start of every B000
// file. Field order and offsets match the wire format exactly (see §6.1).
type Header struct {
	FileSignature     [4]byte // offset 0
	EndiannessFlag    uint8   // offset 4
	ReservedAlignment [3]byte // offset 5

	OffSpecEntries uint64 // offset 8
	LenSpecEntries uint64

	OffSpecArrayrefs uint64
	LenSpecArrayrefs uint64

	OffChromEntries uint64
	LenChromEntries uint64

	OffChromArrayrefs uint64
	LenChromArrayrefs uint64

	OffSpecMeta uint64
	LenSpecMeta uint64

	OffChromMeta uint64
	LenChromMeta uint64

	OffGlobalMeta uint64
	LenGlobalMeta uint64

	OffContainerSpect uint64
	LenContainerSpect uint64

	OffContainerChrom uint64
	LenContainerChrom uint64

	BlockCountSpect uint32
	BlockCountChrom uint32

	SpectrumCount uint32
	ChromCount    uint32

	SpecMetaCount uint32
	SpecNumCount  uint32
	SpecStrCount  uint32

	ChromMetaCount uint32
	ChromNumCount  uint32
	ChromStrCount  uint32

	GlobalMetaCount uint32
	GlobalNumCount  uint32
	GlobalStrCount  uint32

	SpectArrayTypeCount uint32
	ChromArrayTypeCount uint32

	pad196 [4]byte // offset 196..200, must be zero

	TargetBlockUncompBytes uint64 // offset 200

	CodecID           uint8 // offset 208
	CompressionLevel  uint8
	ArrayFilter       uint8

	pad211 [5]byte // offset 211..216, must be zero

	SizeSpecMetaUncompressed   uint64
	SizeChromMetaUncompressed  uint64
	SizeGlobalMetaUncompressed uint64

	reserved240 [16]byte                 // offset 240..256
	reserved    [reservedTailSize]byte   // offset 256..512
}

// Codec returns the compression codec selected by the low nibble of CodecID.
func (h *Header) Codec() uint8 {
	return h.CodecID & 0x0F
}

// ParseHeader reads and validates the fixed 512-byte prelude of a B000 file.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, fmt.Errorf("%w: have %d bytes, need %d", errs.ErrFileTooSmall, len(data), HeaderSize)
	}

	r := newFieldReader(data[:HeaderSize])

	copy(h.FileSignature[:], r.bytes(4))
	h.EndiannessFlag = r.u8()
	copy(h.ReservedAlignment[:], r.bytes(3))

	if string(h.FileSignature[:]) != "B000" {
		return h, fmt.Errorf("%w: got %q", errs.ErrBadSignature, h.FileSignature[:])
	}
	if h.EndiannessFlag != 0 {
		return h, fmt.Errorf("%w: got %d, want 0 (little-endian)", errs.ErrBadEndianness, h.EndiannessFlag)
	}
	if h.ReservedAlignment != ([3]byte{}) {
		return h, fmt.Errorf("%w: reserved_alignment", errs.ErrBadReservedBytes)
	}

	h.OffSpecEntries = r.u64()
	h.LenSpecEntries = r.u64()
	h.OffSpecArrayrefs = r.u64()
	h.LenSpecArrayrefs = r.u64()
	h.OffChromEntries = r.u64()
	h.LenChromEntries = r.u64()
	h.OffChromArrayrefs = r.u64()
	h.LenChromArrayrefs = r.u64()
	h.OffSpecMeta = r.u64()
	h.LenSpecMeta = r.u64()
	h.OffChromMeta = r.u64()
	h.LenChromMeta = r.u64()
	h.OffGlobalMeta = r.u64()
	h.LenGlobalMeta = r.u64()
	h.OffContainerSpect = r.u64()
	h.LenContainerSpect = r.u64()
	h.OffContainerChrom = r.u64()
	h.LenContainerChrom = r.u64()

	h.BlockCountSpect = r.u32()
	h.BlockCountChrom = r.u32()

	h.SpectrumCount = r.u32()
	h.ChromCount = r.u32()

	h.SpecMetaCount = r.u32()
	h.SpecNumCount = r.u32()
	h.SpecStrCount = r.u32()

	h.ChromMetaCount = r.u32()
	h.ChromNumCount = r.u32()
	h.ChromStrCount = r.u32()

	h.GlobalMetaCount = r.u32()
	h.GlobalNumCount = r.u32()
	h.GlobalStrCount = r.u32()

	h.SpectArrayTypeCount = r.u32()
	h.ChromArrayTypeCount = r.u32()

	copy(h.pad196[:], r.bytes(4))
	if h.pad196 != ([4]byte{}) {
		return h, fmt.Errorf("%w: bytes 196..200", errs.ErrBadReservedBytes)
	}

	h.TargetBlockUncompBytes = r.u64()

	h.CodecID = r.u8()
	h.CompressionLevel = r.u8()
	h.ArrayFilter = r.u8()

	copy(h.pad211[:], r.bytes(5))
	if h.pad211 != ([5]byte{}) {
		return h, fmt.Errorf("%w: bytes 211..216", errs.ErrBadReservedBytes)
	}

	h.SizeSpecMetaUncompressed = r.u64()
	h.SizeChromMetaUncompressed = r.u64()
	h.SizeGlobalMetaUncompressed = r.u64()

	copy(h.reserved240[:], r.bytes(16))
	if h.reserved240 != ([16]byte{}) {
		return h, fmt.Errorf("%w: bytes 240..256", errs.ErrBadReservedBytes)
	}

	copy(h.reserved[:], r.bytes(reservedTailSize))
	for _, b := range h.reserved {
		if b != 0 {
			return h, fmt.Errorf("%w: bytes 256..512", errs.ErrBadReservedBytes)
		}
	}

	if err := r.err(); err != nil {
		return h, err
	}

	if err := h.checkSectionOrder(); err != nil {
		return h, err
	}

	codec := h.Codec()
	if codec != CodecRaw && codec != CodecZstd {
		return h, fmt.Errorf("%w: %d", errs.ErrUnsupportedCodec, codec)
	}

	return h, nil
}

// checkSectionOrder enforces §3.1's ordering and alignment invariants:
// sections appear in a fixed order with no overlap, each offset is >= 512
// and 8-byte aligned, and each container's length is >= block_count*32.
func (h *Header) checkSectionOrder() error {
	type span struct {
		name string
		off  uint64
		len  uint64
	}
	spans := []span{
		{"spec_entries", h.OffSpecEntries, h.LenSpecEntries},
		{"spec_arrayrefs", h.OffSpecArrayrefs, h.LenSpecArrayrefs},
		{"chrom_entries", h.OffChromEntries, h.LenChromEntries},
		{"chrom_arrayrefs", h.OffChromArrayrefs, h.LenChromArrayrefs},
		{"spec_meta", h.OffSpecMeta, h.LenSpecMeta},
		{"chrom_meta", h.OffChromMeta, h.LenChromMeta},
		{"global_meta", h.OffGlobalMeta, h.LenGlobalMeta},
		{"container_spect", h.OffContainerSpect, h.LenContainerSpect},
		{"container_chrom", h.OffContainerChrom, h.LenContainerChrom},
	}

	prevEnd := uint64(HeaderSize)
	for _, s := range spans {
		if s.len == 0 {
			continue
		}
		if s.off < HeaderSize {
			return fmt.Errorf("%w: %s offset %d below header", errs.ErrSectionOverlap, s.name, s.off)
		}
		if s.off%8 != 0 {
			return fmt.Errorf("%w: %s offset %d", errs.ErrMisalignedOffset, s.name, s.off)
		}
		if s.off < prevEnd {
			return fmt.Errorf("%w: %s starts at %d before previous section ends at %d", errs.ErrSectionOverlap, s.name, s.off, prevEnd)
		}
		end := s.off + s.len
		if end < s.off {
			return fmt.Errorf("%w: %s offset+length overflow", errs.ErrSectionBounds, s.name)
		}
		prevEnd = end
	}

	if h.LenContainerSpect < uint64(h.BlockCountSpect)*32 {
		return fmt.Errorf("%w: container_spect shorter than block_count_spect*32", errs.ErrSectionBounds)
	}
	if h.LenContainerChrom < uint64(h.BlockCountChrom)*32 {
		return fmt.Errorf("%w: container_chrom shorter than block_count_chrom*32", errs.ErrSectionBounds)
	}

	return nil
}

type fieldReader struct {
	data []byte
	pos  int
	e    error
}

func newFieldReader(data []byte) *fieldReader {
	return &fieldReader{data: data}
}

func (r *fieldReader) bytes(n int) []byte {
	if r.e != nil || r.pos+n > len(r.data) {
		if r.e == nil {
			r.e = fmt.Errorf("%w: at offset %d need %d bytes", errs.ErrColumnEOF, r.pos, n)
		}
		return make([]byte, n)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *fieldReader) u8() uint8 {
	b := r.bytes(1)
	return b[0]
}

func (r *fieldReader) u32() uint32 {
	return binary.LittleEndian.Uint32(r.bytes(4))
}

func (r *fieldReader) u64() uint64 {
	return binary.LittleEndian.Uint64(r.bytes(8))
}

func (r *fieldReader) err() error {
	return r.e
}
