// Package row decodes a B000 metadata section's columnar layout into a flat
// sequence of Metadatum records.
//
// A metadata section encodes a tagged-record stream as separate fixed-width
// columns (cumulative item index, owner id, parent id, tag id, CV-reference
// code and accession tail, value kind and index, a numeric pool, and a
// string byte pool with offset/length arrays) rather than as a row-major
// struct array. Decode reconstructs the row-major view callers need.
package row
