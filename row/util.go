package row

import "strconv"

// formatFloat mirrors Rust's f64::to_string(): shortest round-trippable
// decimal representation, integral values rendered without a fractional
// part's trailing zeros (e.g. 20 -> "20", not "20.000000").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
