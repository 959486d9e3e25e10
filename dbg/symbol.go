package dbg

import (
	"iter"
	"strings"
)

const symbolNameMax = 1024

// SymbolAddress resolves a symbol name to its offset in the target address
// space.
func (d *Dbg) SymbolAddress(name string) (uint64, error) {
	name, err := cstr(name)
	if err != nil {
		return 0, err
	}
	addr, err := d.Symbols.OffsetByName(name)
	if err != nil {
		return 0, &EngineError{Op: "offset by name", Err: err}
	}
	return addr, nil
}

// SymbolName resolves the symbol name covering addr. The engine reports the
// name size including its terminator; a zero size means no name is
// available, reported as InvalidSizeError rather than an engine failure.
func (d *Dbg) SymbolName(addr uint64) (string, error) {
	buf := make([]byte, symbolNameMax)
	size, err := d.Symbols.NameByOffset(addr, buf)
	if err != nil {
		return "", &EngineError{Op: "name by offset", Err: err}
	}
	if size == 0 {
		return "", &InvalidSizeError{Size: size}
	}
	return decodeLossy(buf[:min(int(size)-1, len(buf))]), nil
}

// decodeLossy decodes b as UTF-8, replacing invalid sequences instead of
// failing.
func decodeLossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

const unloadedMarker = "<Unloaded_"

// ModuleEntry is one module yielded by Modules. Name is the raw engine name
// for the module base, conventionally of the form module!symbol.
type ModuleEntry struct {
	Index uint32
	Base  uint64
	Name  string
}

func (m ModuleEntry) Unloaded() bool {
	return strings.Contains(m.Name, unloadedMarker)
}

// DisplayName returns the module segment of the name, before the first '!'.
func (m ModuleEntry) DisplayName() string {
	name, _, _ := strings.Cut(m.Name, "!")
	return strings.TrimSpace(name)
}

// Modules iterates the target's modules by increasing index. Any per-index
// lookup failure ends the sequence; the engine has no distinguishable
// end-of-enumeration error. Unloaded entries are yielded, callers skip them
// as needed.
func (d *Dbg) Modules() iter.Seq[ModuleEntry] {
	return func(yield func(ModuleEntry) bool) {
		for index := uint32(0); ; index++ {
			base, err := d.Symbols.ModuleByIndex(index)
			if err != nil {
				return
			}
			name, err := d.SymbolName(base)
			if err != nil {
				name = "<unknown>"
			}
			if !yield(ModuleEntry{Index: index, Base: base, Name: name}) {
				return
			}
		}
	}
}
