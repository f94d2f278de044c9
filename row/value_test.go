package row_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openscan/b000/row"
)

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "Number", row.KindNumber.String())
	assert.Equal(t, "Text", row.KindText.String())
	assert.Equal(t, "Empty", row.KindEmpty.String())
	assert.Equal(t, "Unknown", row.ValueKind(99).String())
}

func TestValueConstructors(t *testing.T) {
	n := row.NumberValue(3.5)
	assert.Equal(t, row.KindNumber, n.Kind)
	assert.Equal(t, 3.5, n.Num)
	assert.False(t, n.IsEmpty())

	s := row.TextValue("hello")
	assert.Equal(t, row.KindText, s.Kind)
	assert.Equal(t, "hello", s.Str)

	e := row.EmptyValue()
	assert.True(t, e.IsEmpty())
}

func TestValueAsOptString(t *testing.T) {
	str, ok := row.NumberValue(2).AsOptString()
	assert.True(t, ok)
	assert.NotEmpty(t, str)

	str, ok = row.TextValue("abc").AsOptString()
	assert.True(t, ok)
	assert.Equal(t, "abc", str)

	_, ok = row.EmptyValue().AsOptString()
	assert.False(t, ok)
}

func TestCVCodeString(t *testing.T) {
	assert.Equal(t, "MS", row.CVCodeMS.String())
	assert.Equal(t, "UO", row.CVCodeUO.String())
	assert.Equal(t, "NCIT", row.CVCodeNCIT.String())
	assert.Equal(t, "PEFF", row.CVCodePEFF.String())
	assert.Equal(t, "B000", row.CVCodeB000.String())
	assert.Equal(t, "Unknown", row.CVCodeUnknown.String())
}

func TestIsCVPrefix(t *testing.T) {
	assert.True(t, row.IsCVPrefix("MS"))
	assert.True(t, row.IsCVPrefix("UO"))
	assert.True(t, row.IsCVPrefix("NCIT"))
	assert.True(t, row.IsCVPrefix("PEFF"))
	assert.False(t, row.IsCVPrefix("B000"))
	assert.False(t, row.IsCVPrefix("XYZ"))
}
