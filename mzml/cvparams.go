package mzml

import (
	"strings"

	"github.com/openscan/b000/cv"
	"github.com/openscan/b000/row"
)

// CvParam is a controlled-vocabulary parameter attached to an mzML element.
type CvParam struct {
	CvRef         string
	Accession     string
	Name          string
	Value         string
	UnitCvRef     string
	UnitName      string
	UnitAccession string
}

// UserParam is a free-text, non-CV parameter. Name carries the row's
// accession-like string verbatim, since user params have no CV entry to
// resolve a display name from.
type UserParam struct {
	Name  string
	Value string
	Type  string
}

// splitCvAndUserParams partitions the given rows, whatever their TagID
// (filtered to the given allowed set when non-nil), into CV and user params,
// skipping rows with no accession and rows carrying a B000 synthetic
// attribute accession (those belong to the owning element's own fields, not
// to its param list).
func splitCvAndUserParams(rows []row.Metadatum, allowed map[string]struct{}) ([]CvParam, []UserParam) {
	table := cv.Default()

	var cvParams []CvParam
	var userParams []UserParam

	for _, r := range rows {
		if !r.HasAccession() || r.IsB000Attribute() {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[r.Accession]; !ok {
				continue
			}
		}

		value, _ := r.Value.AsOptString()

		if isCVPrefixedAccession(r.Accession) {
			prefix, _, _ := strings.Cut(r.Accession, ":")
			name, ok := table.Name(r.Accession)
			if !ok {
				name = r.Accession
			}

			unitName := ""
			if r.UnitAccession != "" {
				if n, ok := table.Name(r.UnitAccession); ok {
					unitName = n
				}
			}

			cvParams = append(cvParams, CvParam{
				CvRef:         prefix,
				Accession:     r.Accession,
				Name:          name,
				Value:         value,
				UnitCvRef:     unitCvRef(r.UnitAccession),
				UnitName:      unitName,
				UnitAccession: r.UnitAccession,
			})
		} else {
			userParams = append(userParams, UserParam{
				Name:  r.Accession,
				Value: value,
			})
		}
	}

	return cvParams, userParams
}

func isCVPrefixedAccession(accession string) bool {
	prefix, _, ok := strings.Cut(accession, ":")
	if !ok {
		return false
	}
	switch prefix {
	case "MS", "UO", "NCIT", "PEFF":
		return true
	default:
		return false
	}
}

func unitCvRef(unitAccession string) string {
	if unitAccession == "" {
		return ""
	}
	prefix, _, _ := strings.Cut(unitAccession, ":")
	return prefix
}
