package dbg

import "github.com/wnxd/dbgeng/engine"

// RegIndices resolves register names to their engine indices, preserving
// input order. The whole operation fails on the first unresolved name.
func (d *Dbg) RegIndices(names []string) ([]uint32, error) {
	indices := make([]uint32, len(names))
	for i, n := range names {
		name, err := cstr(n)
		if err != nil {
			return nil, err
		}
		index, err := d.Registers.IndexByName(name)
		if err != nil {
			return nil, &EngineError{Op: "index by name", Err: err}
		}
		indices[i] = index
	}
	return indices, nil
}

// RegValues reads the values for exactly the given indices in a single
// batched call. The result has the same order and length as indices.
func (d *Dbg) RegValues(indices []uint32) ([]engine.Value, error) {
	values, err := d.Registers.Values(indices)
	if err != nil {
		return nil, &EngineError{Op: "get values", Err: err}
	}
	return values, nil
}
