// Package b000 decodes the B000 binary container format into the
// mzML-isomorphic acquisition object tree it was derived from.
//
//	data, err := os.ReadFile("run.b000")
//	doc, err := b000.Decode(data)
//	fmt.Println(doc.MzML.Run.ID, len(doc.MzML.Run.Spectra))
package b000

import (
	"fmt"

	"github.com/openscan/b000/errs"
	"github.com/openscan/b000/mzml"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/section"
)

// Document is the decoded result: the reconstructed object tree plus the
// header the container was parsed from, retained for diagnostics.
type Document struct {
	Header section.Header
	MzML   *mzml.MzML
}

// Decode parses a complete B000 file image and reconstructs its mzML object
// tree.
func Decode(data []byte, opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("b000: %w", err)
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("b000: %w", err)
	}

	var allRows []row.Metadatum

	globalRows, err := decodeGlobalSection(data, header)
	if err != nil {
		return nil, fmt.Errorf("b000: global_meta: %w", err)
	}
	allRows = append(allRows, globalRows...)

	specRows, err := decodeMetaSection(data, header.OffSpecMeta, header.LenSpecMeta, header,
		header.SpectrumCount, header.SpecMetaCount, header.SpecNumCount, header.SpecStrCount)
	if err != nil {
		return nil, fmt.Errorf("b000: spec_meta: %w", err)
	}
	allRows = append(allRows, specRows...)

	chromRows, err := decodeMetaSection(data, header.OffChromMeta, header.LenChromMeta, header,
		header.ChromCount, header.ChromMetaCount, header.ChromNumCount, header.ChromStrCount)
	if err != nil {
		return nil, fmt.Errorf("b000: chrom_meta: %w", err)
	}
	allRows = append(allRows, chromRows...)

	if cfg.checksum != nil {
		*cfg.checksum = ChecksumRows(allRows)
	}

	doc, err := mzml.Build(allRows)
	if err != nil {
		return nil, fmt.Errorf("b000: %w", err)
	}

	return &Document{Header: header, MzML: doc}, nil
}

func decodeGlobalSection(data []byte, h section.Header) ([]row.Metadatum, error) {
	if h.LenGlobalMeta == 0 {
		return nil, nil
	}

	if h.OffGlobalMeta+h.LenGlobalMeta > uint64(len(data)) {
		return nil, fmt.Errorf("%w: global_meta extends past end of file", errs.ErrSectionBounds)
	}
	span := data[h.OffGlobalMeta : h.OffGlobalMeta+h.LenGlobalMeta]
	cfg := row.SectionConfig{
		ItemCount:     0, // derived from the prelude
		MetaCount:     h.GlobalMetaCount,
		NumCount:      h.GlobalNumCount,
		StrCount:      h.GlobalStrCount,
		Compressed:    h.Codec() != section.CodecRaw,
		ReservedFlags: h.CodecID,
	}

	rows, _, err := row.DecodeGlobal(span, cfg)
	return rows, err
}

func decodeMetaSection(data []byte, offset, length uint64, h section.Header, itemCount, metaCount, numCount, strCount uint32) ([]row.Metadatum, error) {
	if length == 0 {
		return nil, nil
	}

	if offset+length > uint64(len(data)) {
		return nil, fmt.Errorf("%w: section extends past end of file", errs.ErrSectionBounds)
	}
	span := data[offset : offset+length]
	cfg := row.SectionConfig{
		ItemCount:     itemCount,
		MetaCount:     metaCount,
		NumCount:      numCount,
		StrCount:      strCount,
		Compressed:    h.Codec() != section.CodecRaw,
		ReservedFlags: h.CodecID,
	}

	return row.Decode(span, cfg)
}
