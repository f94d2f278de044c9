package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openscan/b000/schema"
)

func TestTagFromXMLName(t *testing.T) {
	assert.Equal(t, schema.Spectrum, schema.TagFromXMLName("spectrum"))
	assert.Equal(t, schema.Instrument, schema.TagFromXMLName("instrumentConfiguration"))
	assert.Equal(t, schema.ComponentSource, schema.TagFromXMLName("source"))
	assert.Equal(t, schema.Unknown, schema.TagFromXMLName("notARealTag"))
}

func TestTagFromByte(t *testing.T) {
	assert.Equal(t, schema.FileContent, schema.TagFromByte(0))
	assert.Equal(t, schema.UserParam, schema.TagFromByte(53))
	assert.Equal(t, schema.Unknown, schema.TagFromByte(254))
	assert.Equal(t, schema.Unknown, schema.TagFromByte(255))
}

func TestDefaultTreeTargetAllowedAccessions(t *testing.T) {
	tree := schema.Default()
	node := tree.NodeFor(schema.Target)
	if assert.NotNil(t, node) {
		assert.Contains(t, node.AllowedAccessions, "MS:1000827")
	}
}

func TestChildAllowedUnconstrained(t *testing.T) {
	tree := schema.Default()
	assert.True(t, tree.ChildAllowed(schema.FileContent, schema.SourceFile), "tags with no registered node permit any child")
}
