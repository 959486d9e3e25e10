package engine

import (
	"errors"
	"slices"

	"github.com/wnxd/dbgeng/engine"
)

var errRegisterNotFound = errors.New("register not found")

type registers struct {
	client *Client
	names  []string
	values []uint64
}

func (r *registers) ctor(client *Client) {
	r.client = client
}

func (r *registers) IndexByName(name string) (uint32, error) {
	i := slices.Index(r.names, name)
	if i == -1 {
		return 0, errRegisterNotFound
	}
	return uint32(i), nil
}

func (r *registers) Values(indices []uint32) ([]engine.Value, error) {
	values := make([]engine.Value, len(indices))
	for i, index := range indices {
		if int(index) >= len(r.values) {
			return nil, errRegisterNotFound
		}
		values[i] = engine.Value{Type: engine.VALUE_INT64, I64: r.values[index]}
	}
	return values, nil
}

// test hooks

// Define adds a register to the file and returns its index.
func (r *registers) Define(name string, value uint64) uint32 {
	r.names = append(r.names, name)
	r.values = append(r.values, value)
	return uint32(len(r.names) - 1)
}

func (r *registers) Set(name string, value uint64) {
	if i := slices.Index(r.names, name); i != -1 {
		r.values[i] = value
	}
}
