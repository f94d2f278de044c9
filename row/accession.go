package row

import "fmt"

const msAccessionBase = 1_000_000

// NormalizeMSTail applies the MS accession normalization rule: a nonzero
// tail below 1,000,000 is assumed to be missing its leading "1" and is
// rebased onto the MS:1xxxxxx range.
func NormalizeMSTail(tail uint32) uint32 {
	if tail != 0 && tail < msAccessionBase {
		return msAccessionBase + tail
	}
	return tail
}

// FormatAccession renders a (CVCode, tail) pair into its string form.
// Reports ok=false for any code not listed below (CVCodeUnknown and
// CVCodePEFF).
//
//   - MS:   "MS:XXXXXXX", 7-digit zero-padded, tail normalized first.
//   - UO:   "UO:XXXXXXX", 7-digit zero-padded.
//   - NCIT: "NCIT:C<tail>", unpadded.
//   - B000: "B000:<tail>", unpadded (decode-side; the attribute synthesizer
//     zero-pads on the encode side, an intentional asymmetry grounded in the
//     source format).
func FormatAccession(code CVCode, tail uint32) (string, bool) {
	switch code {
	case CVCodeMS:
		return fmt.Sprintf("MS:%07d", NormalizeMSTail(tail)), true
	case CVCodeUO:
		return fmt.Sprintf("UO:%07d", tail), true
	case CVCodeNCIT:
		return fmt.Sprintf("NCIT:C%d", tail), true
	case CVCodeB000:
		return fmt.Sprintf("B000:%d", tail), true
	default:
		return "", false
	}
}

// FormatSynthesizedB000Accession renders a B000 attribute tail the way the
// attribute synthesizer emits it: zero-padded to 7 digits, unlike the
// unpadded decode-side form FormatAccession produces for CVCodeB000.
func FormatSynthesizedB000Accession(tail uint32) string {
	return fmt.Sprintf("B000:%07d", tail)
}
