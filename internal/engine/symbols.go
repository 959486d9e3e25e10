package engine

import (
	"errors"
	"slices"
	"strings"

	"github.com/wnxd/dbgeng/engine"
)

var (
	errModuleNotFound = errors.New("module not found")
	errSymbolNotFound = errors.New("symbol not found")
	errModuleExists   = errors.New("module already exists")
)

type symbolEntry struct {
	name string
	addr uint64
}

type moduleEntry struct {
	name      string
	base      uint64
	size      uint32
	imagePath string
	synthetic bool
}

type symbols struct {
	client  *Client
	symtab  []symbolEntry
	modules []moduleEntry
}

func (s *symbols) ctor(client *Client) {
	s.client = client
}

func (s *symbols) ModuleByIndex(index uint32) (uint64, error) {
	if int(index) >= len(s.modules) {
		return 0, errModuleNotFound
	}
	return s.modules[index].base, nil
}

func (s *symbols) NameByOffset(addr uint64, buf []byte) (uint32, error) {
	name, ok := s.nameFor(addr)
	if !ok {
		return 0, nil
	}
	n := copy(buf, name)
	if n < len(buf) {
		buf[n] = 0
	}
	return uint32(len(name) + 1), nil
}

func (s *symbols) nameFor(addr uint64) (string, bool) {
	for _, sym := range s.symtab {
		if sym.addr == addr {
			return sym.name, true
		}
	}
	for _, m := range s.modules {
		if m.base == addr {
			return m.name, true
		}
	}
	return "", false
}

func (s *symbols) OffsetByName(name string) (uint64, error) {
	for _, sym := range s.symtab {
		if sym.name == name {
			return sym.addr, nil
		}
	}
	return 0, errSymbolNotFound
}

func (s *symbols) ModuleByName(name string) (uint64, error) {
	for _, m := range s.modules {
		display, _, _ := strings.Cut(m.name, "!")
		if m.name == name || display == name {
			return m.base, nil
		}
	}
	return 0, errModuleNotFound
}

func (s *symbols) AddSyntheticModule(base uint64, size uint32, imagePath, name string, flags engine.SynthFlag) error {
	for _, m := range s.modules {
		if m.base == base {
			return errModuleExists
		}
	}
	s.modules = append(s.modules, moduleEntry{
		name:      name,
		base:      base,
		size:      size,
		imagePath: imagePath,
		synthetic: true,
	})
	return nil
}

func (s *symbols) RemoveSyntheticModule(base uint64) error {
	i := slices.IndexFunc(s.modules, func(m moduleEntry) bool {
		return m.synthetic && m.base == base
	})
	if i == -1 {
		return errModuleNotFound
	}
	s.modules = slices.Delete(s.modules, i, i+1)
	return nil
}

// test hooks

func (s *symbols) AddSymbol(name string, addr uint64) {
	s.symtab = append(s.symtab, symbolEntry{name, addr})
}

func (s *symbols) AddModule(name string, base uint64, size uint32) {
	s.modules = append(s.modules, moduleEntry{name: name, base: base, size: size})
}

func (s *symbols) AddUnloadedModule(name string, base uint64) {
	s.modules = append(s.modules, moduleEntry{name: "<Unloaded_" + name + ">", base: base})
}

func (s *symbols) HasModule(base uint64) bool {
	return slices.ContainsFunc(s.modules, func(m moduleEntry) bool { return m.base == base })
}
