package extend

import (
	"sync"

	"github.com/wnxd/dbgeng/dbg"
	"github.com/wnxd/dbgeng/engine"
)

// Status is the code an extension entry point returns to the engine.
type Status uint32

const (
	StatusOK    Status = 0
	StatusAbort Status = 0x80004004
)

// Command is a named routine invocable from the debugger command line. It
// receives a facade built for this invocation and the raw argument string.
type Command func(d *dbg.Dbg, args string) error

var (
	mu       sync.RWMutex
	commands = make(map[string]Command)
)

// Register makes cmd invocable by name through Dispatch.
func Register(name string, cmd Command) {
	mu.Lock()
	commands[name] = cmd
	mu.Unlock()
}

// Initialize is the extension load hook.
func Initialize() Status {
	return StatusOK
}

// Uninitialize is the extension unload hook. Registrations survive it, the
// host may reinitialize the extension within the same process.
func Uninitialize() {}

// Dispatch runs the named command against a fresh facade built from client.
// Any error is reported to the engine output stream before the abort status
// is returned.
func Dispatch(name string, client engine.Client, args string) Status {
	mu.RLock()
	cmd, ok := commands[name]
	mu.RUnlock()
	if !ok {
		return StatusAbort
	}
	d, err := dbg.New(client)
	if err != nil {
		return StatusAbort
	}
	if err = cmd(d, args); err != nil {
		d.Printlnf("error: %v", err)
		return StatusAbort
	}
	return StatusOK
}
