package dbg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wnxd/dbgeng/dbg"
	"github.com/wnxd/dbgeng/engine"
	host "github.com/wnxd/dbgeng/internal/engine"
)

func newDbg(t *testing.T) (*dbg.Dbg, *host.Client) {
	t.Helper()
	client := host.New()
	d, err := dbg.New(client)
	require.NoError(t, err)
	return d, client
}

type noRegisters struct {
	engine.Control
	engine.Symbols
	engine.DataSpaces
}

func TestNew(t *testing.T) {
	d, err := dbg.New(host.New())
	require.NoError(t, err)
	assert.NotNil(t, d.Control)
	assert.NotNil(t, d.Symbols)
	assert.NotNil(t, d.DataSpaces)
	assert.NotNil(t, d.Registers)
}

func TestNewMissingCapability(t *testing.T) {
	_, err := dbg.New(noRegisters{})
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrNoInterface)

	var engineErr *dbg.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, "query registers", engineErr.Op)

	_, err = dbg.New(struct{}{})
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, "query control", engineErr.Op)
}

func TestExec(t *testing.T) {
	d, client := newDbg(t)
	require.NoError(t, d.Exec(".echo hello"))
	assert.Equal(t, []string{".echo hello"}, client.Executed())
}

func TestExecEmbeddedTerminator(t *testing.T) {
	d, client := newDbg(t)
	err := d.Exec(".echo a\x00b")
	assert.ErrorIs(t, err, dbg.ErrInvalidText)
	assert.Empty(t, client.Executed(), "no engine call after marshaling failure")
}

func TestDebuggeeType(t *testing.T) {
	d, client := newDbg(t)
	class, qualifier, err := d.DebuggeeType()
	require.NoError(t, err)
	assert.Equal(t, engine.CLASS_USER, class)
	assert.Equal(t, engine.QUALIFIER_LIVE, qualifier)

	client.SetDebuggee(engine.CLASS_KERNEL, engine.QUALIFIER_DUMP)
	class, qualifier, err = d.DebuggeeType()
	require.NoError(t, err)
	assert.Equal(t, engine.CLASS_KERNEL, class)
	assert.Equal(t, engine.QUALIFIER_DUMP, qualifier)
}

func TestProcessorCount(t *testing.T) {
	d, client := newDbg(t)
	client.SetProcessorCount(8)
	count, err := d.ProcessorCount()
	require.NoError(t, err)
	assert.Equal(t, uint32(8), count)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	assert.ErrorIs(t, &dbg.EngineError{Op: "op", Err: cause}, cause)
	assert.ErrorIs(t, &dbg.IOError{Err: cause}, cause)
	assert.EqualError(t, &dbg.InvalidSizeError{Size: 0}, "invalid size: 0")
}
