package dbg

import (
	"reflect"
	"unsafe"

	"github.com/modern-go/reflect2"
)

const cstrMax = 256

// ReadVaddr reads target virtual memory into buf and returns the number of
// bytes the engine actually read. Partial reads are not errors; callers
// inspect the returned count.
func (d *Dbg) ReadVaddr(vaddr uint64, buf []byte) (int, error) {
	n, err := d.DataSpaces.ReadVirtual(vaddr, buf)
	if err != nil {
		return 0, &EngineError{Op: "read virtual", Err: err}
	}
	return int(n), nil
}

// ReadType reads a T from target memory. T must be fixed-size and free of
// pointers into the host address space. vaddr carries no alignment
// guarantee; the value is reassembled from a scratch buffer.
func ReadType[T any](d *Dbg, vaddr uint64) (T, error) {
	var value T
	size := unsafe.Sizeof(value)
	if size == 0 {
		return value, &InvalidSizeError{}
	}
	buf := make([]byte, size)
	if _, err := d.ReadVaddr(vaddr, buf); err != nil {
		return value, err
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&value)), size), buf)
	return value, nil
}

// ReadInto reads target memory into the value val points to, for call sites
// that cannot name the type statically. val must be a non-nil pointer to a
// fixed-size value.
func (d *Dbg) ReadInto(vaddr uint64, val any) error {
	typ := reflect2.TypeOf(val)
	if typ.Kind() != reflect.Pointer {
		return ErrNotPointer
	}
	size := typ.(reflect2.PtrType).Elem().Type1().Size()
	if size == 0 {
		return &InvalidSizeError{}
	}
	buf := make([]byte, size)
	if _, err := d.ReadVaddr(vaddr, buf); err != nil {
		return err
	}
	copy(unsafe.Slice((*byte)(reflect2.PtrOf(val)), size), buf)
	return nil
}

// ReadCStr reads at most 256 bytes of a zero-terminated string from target
// memory. The engine reports the size including the terminator; zero means
// no string could be read.
func (d *Dbg) ReadCStr(addr uint64) (string, error) {
	buf := make([]byte, cstrMax)
	size, err := d.DataSpaces.ReadMultiByteString(addr, cstrMax, buf)
	if err != nil {
		return "", &EngineError{Op: "read string", Err: err}
	}
	if size == 0 {
		return "", &InvalidSizeError{Size: size}
	}
	return decodeLossy(buf[:min(int(size)-1, len(buf))]), nil
}

// MSR reads a model-specific register by its numeric identifier.
func (d *Dbg) MSR(id uint32) (uint64, error) {
	value, err := d.DataSpaces.ReadMSR(id)
	if err != nil {
		return 0, &EngineError{Op: "read msr", Err: err}
	}
	return value, nil
}
