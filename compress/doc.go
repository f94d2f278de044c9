// Package compress implements the two codecs defined by the B000 format:
// raw passthrough and zstd. See CreateCodec and GetCodec for codec lookup by
// the header's codec_id byte.
package compress
