package dbg

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/wnxd/dbgeng/engine"
)

// Module identifies a synthetic module either by its base address or by its
// name.
type Module struct {
	addr   uint64
	name   string
	byName bool
}

func ModuleAddr(addr uint64) Module {
	return Module{addr: addr}
}

func ModuleName(name string) Module {
	return Module{name: name, byName: true}
}

// AddSyntheticModule registers a synthetic module whose base address is the
// result of evaluating baseExpr. path is canonicalized to an absolute image
// path before registration.
func (d *Dbg) AddSyntheticModule(baseExpr string, size uint32, name, path string) error {
	base, err := Eval[uint64](d, baseExpr)
	if err != nil {
		return err
	}
	name, err = cstr(name)
	if err != nil {
		return err
	}
	imagePath, err := canonicalize(path)
	if err != nil {
		return err
	}
	if err = d.Symbols.AddSyntheticModule(base, size, imagePath, name, engine.ADDSYNTHMOD_DEFAULT); err != nil {
		return &EngineError{Op: "add synthetic module", Err: err}
	}
	return nil
}

// RemoveSyntheticModule removes a synthetic module. A name identifier is
// first resolved to its base address, then removal proceeds by address.
func (d *Dbg) RemoveSyntheticModule(module Module) error {
	base := module.addr
	if module.byName {
		name, err := cstr(module.name)
		if err != nil {
			return err
		}
		if base, err = d.Symbols.ModuleByName(name); err != nil {
			return &EngineError{Op: "module by name", Err: err}
		}
	}
	if err := d.Symbols.RemoveSyntheticModule(base); err != nil {
		return &EngineError{Op: "remove synthetic module", Err: err}
	}
	return nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &IOError{Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &IOError{Err: err}
	}
	if !utf8.ValidString(resolved) {
		return "", ErrInvalidPath
	}
	return cstr(resolved)
}
