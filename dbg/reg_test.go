package dbg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wnxd/dbgeng/dbg"
	"github.com/wnxd/dbgeng/engine"
)

func TestRegIndicesAndValues(t *testing.T) {
	d, client := newDbg(t)
	client.Define("rax", 0x1)
	client.Define("rbx", 0x2)
	client.Define("rcx", 0x3)

	indices, err := d.RegIndices([]string{"rcx", "rax", "rbx"})
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 0, 1}, indices)

	values, err := d.RegValues(indices)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, uint64(0x3), values[0].I64)
	assert.Equal(t, uint64(0x1), values[1].I64)
	assert.Equal(t, uint64(0x2), values[2].I64)
	assert.Equal(t, engine.VALUE_INT64, values[0].Type)
}

func TestRegIndicesFailFast(t *testing.T) {
	d, client := newDbg(t)
	client.Define("rax", 0x1)

	indices, err := d.RegIndices([]string{"rax", "nosuchreg", "rbx"})
	var engineErr *dbg.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Nil(t, indices, "no partial result on failure")
}
