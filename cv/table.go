// Package cv provides controlled-vocabulary accession-to-name lookup for the
// PSI-MS, unit, and NCIt vocabularies the decoder's CvParam rows reference.
package cv

import "sync"

// Table resolves a CV accession to its human-readable name.
type Table interface {
	// Name returns the term name for accession, or ok=false if unknown.
	Name(accession string) (string, bool)
}

type mapTable map[string]string

func (m mapTable) Name(accession string) (string, bool) {
	name, ok := m[accession]
	return name, ok
}

var (
	defaultTable     Table
	defaultTableOnce sync.Once
)

// Default returns the package's built-in Table, covering the accessions
// commonly seen in mzML acquisition metadata.
func Default() Table {
	defaultTableOnce.Do(func() {
		defaultTable = mapTable{
			"MS:1000031": "instrument model",
			"MS:1000016": "scan start time",
			"MS:1000500": "scan window upper limit",
			"MS:1000501": "scan window lower limit",
			"MS:1000502": "m/z",
			"MS:1000504": "base peak m/z",
			"MS:1000505": "base peak intensity",
			"MS:1000511": "ms level",
			"MS:1000514": "m/z array",
			"MS:1000515": "intensity array",
			"MS:1000516": "charge state",
			"MS:1000521": "32-bit float",
			"MS:1000523": "64-bit float",
			"MS:1000574": "zlib compression",
			"MS:1000576": "no compression",
			"MS:1000579": "MS1 spectrum",
			"MS:1000580": "MSn spectrum",
			"MS:1000744": "selected ion m/z",
			"MS:1000747": "intensity",
			"MS:1000745": "collision energy",
			"MS:1000827": "isolation window target m/z",
			"MS:1000828": "isolation window lower offset",
			"MS:1000829": "isolation window upper offset",
			"MS:1000857": "centroid spectrum",
			"MS:1000128": "profile spectrum",
			"MS:1000130": "positive scan",
			"MS:1000129": "negative scan",
			"MS:1001225": "product ion charge state",
			"MS:1000042": "peak intensity",
			"MS:1000045": "collision energy",
			"UO:0000010": "second",
			"UO:0000031": "minute",
			"UO:0000028": "count",
			"UO:0000012": "kelvin",
			"UO:0000187": "percent",
		}
	})
	return defaultTable
}
