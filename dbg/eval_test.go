package dbg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wnxd/dbgeng/dbg"
)

func TestEvalInt(t *testing.T) {
	d, _ := newDbg(t)

	v64, err := dbg.Eval[uint64](d, "0x200 + 0x300")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x500), v64)

	v32, err := dbg.Eval[uint32](d, "42")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v32)
}

func TestEvalFloat(t *testing.T) {
	d, _ := newDbg(t)

	f64, err := dbg.Eval[float64](d, "2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f64)

	f32, err := dbg.Eval[float32](d, "1.25")
	require.NoError(t, err)
	assert.Equal(t, float32(1.25), f32)
}

func TestEvalSymbol(t *testing.T) {
	d, client := newDbg(t)
	client.AddSymbol("ntdll!NtCreateFile", 0x7ffe00010000)

	addr, err := dbg.Eval[uint64](d, "ntdll!NtCreateFile + 0x20")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7ffe00010020), addr)
}

func TestEvalRejected(t *testing.T) {
	d, _ := newDbg(t)

	_, err := dbg.Eval[uint64](d, "not a symbol")
	var engineErr *dbg.EngineError
	assert.ErrorAs(t, err, &engineErr)

	_, err = dbg.Eval[uint64](d, "0x1\x000")
	assert.ErrorIs(t, err, dbg.ErrInvalidText)
}
