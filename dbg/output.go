package dbg

import (
	"fmt"

	"github.com/wnxd/dbgeng/engine"
)

func (d *Dbg) output(mask engine.OutputMask, text string) error {
	text, err := cstr(text)
	if err != nil {
		return err
	}
	return d.Control.Output(mask, text)
}

// Print writes text to the debugger output stream. Output never fails
// observably: on error a single fallback error-class write describing the
// failure is attempted, and its own failure is dropped.
func (d *Dbg) Print(text string) {
	if err := d.output(engine.OUTPUT_NORMAL, text); err != nil {
		d.output(engine.OUTPUT_ERROR, fmt.Sprintf("failed to log message: %v\n", err))
	}
}

// Println writes text followed by a newline, with the same fallback
// behavior as Print.
func (d *Dbg) Println(text string) {
	d.Print(text + "\n")
}

func (d *Dbg) Printf(format string, args ...any) {
	d.Print(fmt.Sprintf(format, args...))
}

func (d *Dbg) Printlnf(format string, args ...any) {
	d.Println(fmt.Sprintf(format, args...))
}
