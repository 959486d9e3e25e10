package engine

// Client is the root handle of a debugging session. A host adapter narrows
// it to the capability interfaces below by type assertion; a client exposes
// whichever capabilities the underlying session supports.
type Client any

// Control drives command execution, output and expression evaluation.
type Control interface {
	Execute(outctl OutputControl, command string, flags ExecuteFlag) error
	Output(mask OutputMask, text string) error
	Evaluate(expr string, want ValueType) (Value, error)
	DebuggeeType() (Class, Qualifier, error)
	ProcessorCount() (uint32, error)
}

// Symbols queries and manages the symbol tables of the target.
type Symbols interface {
	ModuleByIndex(index uint32) (uint64, error)
	// NameByOffset fills buf with the zero-terminated symbol name covering
	// addr and returns the name size including the terminator. A zero size
	// means no name is available for the address.
	NameByOffset(addr uint64, buf []byte) (uint32, error)
	OffsetByName(name string) (uint64, error)
	ModuleByName(name string) (uint64, error)
	AddSyntheticModule(base uint64, size uint32, imagePath, name string, flags SynthFlag) error
	RemoveSyntheticModule(base uint64) error
}

// DataSpaces accesses the memory spaces of the target.
type DataSpaces interface {
	// ReadVirtual reads target virtual memory into buf and returns the
	// number of bytes actually read, which may be less than len(buf).
	ReadVirtual(addr uint64, buf []byte) (uint32, error)
	ReadMSR(id uint32) (uint64, error)
	// ReadMultiByteString reads at most max bytes of a zero-terminated
	// string into buf and returns the string size including the terminator.
	// A zero size means no string could be read.
	ReadMultiByteString(addr uint64, max uint32, buf []byte) (uint32, error)
}

// Registers resolves CPU register names and reads register values.
type Registers interface {
	IndexByName(name string) (uint32, error)
	// Values returns one value per index, in input order.
	Values(indices []uint32) ([]Value, error)
}
