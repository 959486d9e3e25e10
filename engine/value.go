package engine

type ValueType uint32

const (
	VALUE_INVALID ValueType = iota
	VALUE_INT8
	VALUE_INT16
	VALUE_INT32
	VALUE_INT64
	VALUE_FLOAT32
	VALUE_FLOAT64
)

// Value is the engine's tagged evaluation result. Only the payload field
// matching Type is meaningful.
type Value struct {
	Type ValueType
	I8   uint8
	I16  uint16
	I32  uint32
	I64  uint64
	F32  float32
	F64  float64
}
