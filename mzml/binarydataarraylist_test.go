package mzml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openscan/b000/index"
	"github.com/openscan/b000/row"
)

func TestInferArrayLengthFloat32(t *testing.T) {
	bda := BinaryDataArray{EncodedLength: 16, IsFloat32: true}
	// 16 encoded bytes -> 12 decoded bytes -> 3 float32 elements
	assert.Equal(t, uint32(3), inferArrayLength(bda))
}

func TestInferArrayLengthFloat64(t *testing.T) {
	bda := BinaryDataArray{EncodedLength: 32, IsFloat64: true}
	// 32 encoded bytes -> 24 decoded bytes -> 3 float64 elements
	assert.Equal(t, uint32(3), inferArrayLength(bda))
}

func TestInferArrayLengthUnknownKind(t *testing.T) {
	bda := BinaryDataArray{EncodedLength: 16}
	assert.Equal(t, uint32(0), inferArrayLength(bda))
}

func TestInferArrayLengthBothKinds(t *testing.T) {
	bda := BinaryDataArray{EncodedLength: 16, IsFloat32: true, IsFloat64: true}
	assert.Equal(t, uint32(0), inferArrayLength(bda))
}

func TestInferArrayLengthNotMultipleOf4(t *testing.T) {
	bda := BinaryDataArray{EncodedLength: 15, IsFloat32: true}
	assert.Equal(t, uint32(0), inferArrayLength(bda))
}

func TestBuildBinaryDataArraysNoneRegistered(t *testing.T) {
	var rows []row.Metadatum
	idx := index.Build(rows)
	arrays := buildBinaryDataArrays(idx, rowsByOwner(rows), rows, 1, 100)
	assert.Empty(t, arrays)
}
