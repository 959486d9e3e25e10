package engine

import "github.com/wnxd/dbgeng/engine"

// Client is an in-memory debugging session implementing every capability
// interface of the engine package. It backs the package tests; a real
// extension receives its client from the host debugger instead.
type Client struct {
	control
	symbols
	dataSpaces
	registers
}

var (
	_ engine.Control    = (*Client)(nil)
	_ engine.Symbols    = (*Client)(nil)
	_ engine.DataSpaces = (*Client)(nil)
	_ engine.Registers  = (*Client)(nil)
)

func New() *Client {
	c := new(Client)
	c.control.ctor(c)
	c.symbols.ctor(c)
	c.dataSpaces.ctor(c)
	c.registers.ctor(c)
	return c
}
