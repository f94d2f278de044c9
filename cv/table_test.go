package cv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openscan/b000/cv"
)

func TestDefaultTableKnownAccession(t *testing.T) {
	table := cv.Default()
	name, ok := table.Name("MS:1000511")
	assert.True(t, ok)
	assert.Equal(t, "ms level", name)
}

func TestDefaultTableUnknownAccession(t *testing.T) {
	table := cv.Default()
	_, ok := table.Name("MS:9999999")
	assert.False(t, ok)
}
