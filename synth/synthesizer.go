// Package synth synthesizes B000 attribute rows from an mzml object tree,
// the inverse of what the mzml package's assemblers do when decoding. It
// exists to support round-trip testing: encode an object tree back into
// Metadatum rows, decode those rows again, and compare.
package synth

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/openscan/b000/errs"
	"github.com/openscan/b000/row"
	"github.com/openscan/b000/schema"
)

// maxSafeInteger is the largest integer a float64 can represent exactly;
// synthesizing a numeric attribute above this would silently lose
// precision, so it is rejected instead.
const maxSafeInteger = 1 << 53

// FieldSpec describes one struct field eligible for synthesis: its
// attribute tail and the path used to reach it via reflection.
//
// EmitZero marks fields whose zero value is a meaningful, storable value
// rather than "unset" — e.g. an Index or Order of 0 for the first item in a
// list. Without it, valueOf's absent-means-zero-value convention would
// silently drop such a row, and decoding it back would recover the wrong
// value (ordinal position) instead of the stored 0.
type FieldSpec struct {
	Tail      uint32
	FieldName string
	EmitZero  bool
}

var (
	planCache   = map[reflect.Type][]FieldSpec{}
	planCacheMu sync.Mutex
)

// Attributes synthesizes the B000 attribute rows for v's exported fields
// carrying a `b000:"<tail>"` struct tag. Fields are matched to attribute
// tails via the tag; no tag means no attribute row is emitted for that
// field, since not every object-tree field corresponds to a wire attribute
// (nested lists and CvParam/UserParam slices are handled by their own
// section, not by attribute synthesis).
func Attributes(v any, ownerID, parentIndex uint32, tag schema.TagID) ([]row.Metadatum, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("synth: Attributes requires a struct, got %s", rv.Kind())
	}

	plan := planFor(rv.Type())

	var out []row.Metadatum
	for _, spec := range plan {
		field := rv.FieldByName(spec.FieldName)
		if !field.IsValid() {
			continue
		}

		value, empty, err := valueOf(field, spec.EmitZero)
		if err != nil {
			return nil, err
		}
		if empty {
			continue
		}

		out = append(out, row.Metadatum{
			ItemIndex:     ownerID,
			OwnerID:       ownerID,
			ParentIndex:   parentIndex,
			TagID:         tag,
			Accession:     row.FormatSynthesizedB000Accession(spec.Tail),
			UnitAccession: "",
			Value:         value,
		})
	}

	return out, nil
}

// planFor builds (and caches) the FieldSpec list for a struct type by
// scanning its fields for `b000:"..."` tags.
func planFor(t reflect.Type) []FieldSpec {
	planCacheMu.Lock()
	defer planCacheMu.Unlock()

	if plan, ok := planCache[t]; ok {
		return plan
	}

	var plan []FieldSpec
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tagValue, ok := f.Tag.Lookup("b000")
		if !ok {
			continue
		}
		tailPart, opts, _ := strings.Cut(tagValue, ",")
		tail, err := strconv.ParseUint(tailPart, 10, 32)
		if err != nil {
			continue
		}
		plan = append(plan, FieldSpec{Tail: uint32(tail), FieldName: f.Name, EmitZero: opts == "zero"})
	}

	planCache[t] = plan
	return plan
}

// valueOf converts field to a row.Value, reporting empty=true when the
// field should be treated as absent rather than emitted as a row. A zero
// numeric or boolean value is ordinarily indistinguishable from "unset"
// since these fields carry no separate presence flag; emitZero opts a field
// out of that convention for the cases where a stored zero is itself
// meaningful (see FieldSpec.EmitZero).
func valueOf(field reflect.Value, emitZero bool) (row.Value, bool, error) {
	switch field.Kind() {
	case reflect.String:
		s := field.String()
		if s == "" {
			return row.Value{}, true, nil
		}
		return row.TextValue(s), false, nil

	case reflect.Bool:
		b := field.Bool()
		if !b && !emitZero {
			return row.Value{}, true, nil
		}
		return row.TextValue(strconv.FormatBool(b)), false, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := field.Uint()
		if n == 0 && !emitZero {
			return row.Value{}, true, nil
		}
		if n > maxSafeInteger {
			return row.Value{}, false, fmt.Errorf("%w: field value %d", errs.ErrNumericOverflow, n)
		}
		return row.NumberValue(float64(n)), false, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := field.Int()
		if n == 0 && !emitZero {
			return row.Value{}, true, nil
		}
		if n > maxSafeInteger || n < -maxSafeInteger {
			return row.Value{}, false, fmt.Errorf("%w: field value %d", errs.ErrNumericOverflow, n)
		}
		return row.NumberValue(float64(n)), false, nil

	case reflect.Float32, reflect.Float64:
		f := field.Float()
		if f == 0 && !emitZero {
			return row.Value{}, true, nil
		}
		return row.NumberValue(f), false, nil

	default:
		return row.Value{}, true, nil
	}
}
