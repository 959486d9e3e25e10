package dbg

import "github.com/wnxd/dbgeng/engine"

// Scalar is the closed set of result kinds Eval can produce. Extending it
// requires a matching case in valueTag and extract.
type Scalar interface {
	uint32 | uint64 | float32 | float64
}

// Eval evaluates expr in the engine's expression language and projects the
// tagged result to T. Results are never cached; the target may change
// between calls.
func Eval[T Scalar](d *Dbg, expr string) (T, error) {
	var zero T
	expr, err := cstr(expr)
	if err != nil {
		return zero, err
	}
	value, err := d.Control.Evaluate(expr, valueTag[T]())
	if err != nil {
		return zero, &EngineError{Op: "evaluate", Err: err}
	}
	return extract[T](value), nil
}

func valueTag[T Scalar]() engine.ValueType {
	var zero T
	switch any(zero).(type) {
	case uint32:
		return engine.VALUE_INT32
	case uint64:
		return engine.VALUE_INT64
	case float32:
		return engine.VALUE_FLOAT32
	case float64:
		return engine.VALUE_FLOAT64
	}
	return engine.VALUE_INVALID
}

func extract[T Scalar](value engine.Value) T {
	var zero T
	switch any(zero).(type) {
	case uint32:
		return any(value.I32).(T)
	case uint64:
		return any(value.I64).(T)
	case float32:
		return any(value.F32).(T)
	case float64:
		return any(value.F64).(T)
	}
	return zero
}
