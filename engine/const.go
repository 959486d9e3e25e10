package engine

type OutputControl uint32

const (
	OUTCTL_THIS_CLIENT OutputControl = iota
	OUTCTL_ALL_CLIENTS
	OUTCTL_ALL_OTHER_CLIENTS
	OUTCTL_IGNORE
	OUTCTL_LOG_ONLY
)

type ExecuteFlag uint32

const (
	EXECUTE_DEFAULT    ExecuteFlag = 0
	EXECUTE_ECHO       ExecuteFlag = 1
	EXECUTE_NOT_LOGGED ExecuteFlag = 2
	EXECUTE_NO_REPEAT  ExecuteFlag = 4
)

type OutputMask uint32

const (
	OUTPUT_NORMAL OutputMask = 1 << iota
	OUTPUT_ERROR
	OUTPUT_WARNING
	OUTPUT_VERBOSE
)

type SynthFlag uint32

const (
	ADDSYNTHMOD_DEFAULT  SynthFlag = 0
	ADDSYNTHMOD_ZEROBASE SynthFlag = 1
)

type Class uint32

const (
	CLASS_UNINITIALIZED Class = iota
	CLASS_KERNEL
	CLASS_USER
)

type Qualifier uint32

const (
	QUALIFIER_DEFAULT Qualifier = iota
	QUALIFIER_LIVE
	QUALIFIER_DUMP
)
