package dbg

import (
	"strings"

	"github.com/wnxd/dbgeng/engine"
)

// Dbg aggregates the four capability interfaces of one debugging session.
// The handles are shared with the host engine; dropping a Dbg releases
// nothing and never tears the session down.
type Dbg struct {
	Control    engine.Control
	Symbols    engine.Symbols
	DataSpaces engine.DataSpaces
	Registers  engine.Registers
}

// New narrows client to each required capability. It fails on the first
// missing capability and never returns a partially populated facade.
func New(client engine.Client) (*Dbg, error) {
	d := new(Dbg)
	var ok bool
	if d.Control, ok = client.(engine.Control); !ok {
		return nil, &EngineError{Op: "query control", Err: engine.ErrNoInterface}
	}
	if d.Symbols, ok = client.(engine.Symbols); !ok {
		return nil, &EngineError{Op: "query symbols", Err: engine.ErrNoInterface}
	}
	if d.DataSpaces, ok = client.(engine.DataSpaces); !ok {
		return nil, &EngineError{Op: "query dataspaces", Err: engine.ErrNoInterface}
	}
	if d.Registers, ok = client.(engine.Registers); !ok {
		return nil, &EngineError{Op: "query registers", Err: engine.ErrNoInterface}
	}
	return d, nil
}

// cstr validates that s can cross the engine boundary as a zero-terminated
// string.
func cstr(s string) (string, error) {
	if strings.IndexByte(s, 0) != -1 {
		return "", ErrInvalidText
	}
	return s, nil
}

// Exec submits a command line to the engine, broadcasting its output to all
// attached clients.
func (d *Dbg) Exec(command string) error {
	command, err := cstr(command)
	if err != nil {
		return err
	}
	if err = d.Control.Execute(engine.OUTCTL_ALL_CLIENTS, command, engine.EXECUTE_DEFAULT); err != nil {
		return &EngineError{Op: "execute", Err: err}
	}
	return nil
}

func (d *Dbg) DebuggeeType() (engine.Class, engine.Qualifier, error) {
	class, qualifier, err := d.Control.DebuggeeType()
	if err != nil {
		return 0, 0, &EngineError{Op: "debuggee type", Err: err}
	}
	return class, qualifier, nil
}

func (d *Dbg) ProcessorCount() (uint32, error) {
	count, err := d.Control.ProcessorCount()
	if err != nil {
		return 0, &EngineError{Op: "processor count", Err: err}
	}
	return count, nil
}
