package dbg

import "io"

// Pointer binds a facade to an address in the target address space.
type Pointer struct {
	dbg  *Dbg
	addr uint64
}

func (d *Dbg) ToPointer(addr uint64) Pointer {
	return Pointer{d, addr}
}

func (p Pointer) IsNil() bool {
	return p.addr == 0
}

func (p Pointer) Address() uint64 {
	return p.addr
}

func (p Pointer) Add(offset uint64) Pointer {
	return Pointer{p.dbg, p.addr + offset}
}

func (p Pointer) Sub(offset uint64) Pointer {
	return Pointer{p.dbg, p.addr - offset}
}

// Read reads up to size bytes at the pointer, returning what the engine
// actually read.
func (p Pointer) Read(size int) ([]byte, error) {
	buf := make([]byte, size)
	n, err := p.dbg.ReadVaddr(p.addr, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (p Pointer) ReadCStr() (string, error) {
	return p.dbg.ReadCStr(p.addr)
}

// ReadPointer reads a 64-bit target pointer stored at the pointed-to
// address.
func (p Pointer) ReadPointer() (Pointer, error) {
	addr, err := ReadType[uint64](p.dbg, p.addr)
	if err != nil {
		return Pointer{}, err
	}
	return Pointer{p.dbg, addr}, nil
}

func (p Pointer) ReadAt(b []byte, off int64) (n int, err error) {
	n, err = p.dbg.ReadVaddr(p.addr+uint64(off), b)
	if err != nil {
		return 0, err
	}
	if n < len(b) {
		err = io.ErrUnexpectedEOF
	}
	return
}
