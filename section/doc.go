// Package section defines the low-level binary structures and constants for the
// B000 container format.
//
// This package provides the foundational types that define the physical layout
// of a B000 file: the fixed 512-byte header that precedes every section and
// carries offsets, lengths, item counts and compression parameters for the
// nine named sections (spec_entries, spec_arrayrefs, chrom_entries,
// chrom_arrayrefs, spec_meta, chrom_meta, global_meta, container_spect,
// container_chrom).
//
// Header fields are fixed-offset, little-endian, and validated on parse:
// file_signature must read "B000", endianness_flag must be 0, and the
// reserved padding regions must be all-zero.
package section
