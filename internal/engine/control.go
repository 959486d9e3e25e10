package engine

import (
	"errors"
	"strconv"
	"strings"

	"github.com/wnxd/dbgeng/engine"
)

var (
	errOutputBroken = errors.New("output stream broken")
	errBadExpr      = errors.New("expression not understood")
)

type outputRecord struct {
	Mask engine.OutputMask
	Text string
}

type control struct {
	client     *Client
	executed   []string
	records    []outputRecord
	failNormal bool
	class      engine.Class
	qualifier  engine.Qualifier
	processors uint32
}

func (c *control) ctor(client *Client) {
	c.client = client
	c.class = engine.CLASS_USER
	c.qualifier = engine.QUALIFIER_LIVE
	c.processors = 1
}

func (c *control) Execute(outctl engine.OutputControl, command string, flags engine.ExecuteFlag) error {
	c.executed = append(c.executed, command)
	return nil
}

func (c *control) Output(mask engine.OutputMask, text string) error {
	if c.failNormal && mask == engine.OUTPUT_NORMAL {
		return errOutputBroken
	}
	c.records = append(c.records, outputRecord{mask, text})
	return nil
}

func (c *control) Evaluate(expr string, want engine.ValueType) (engine.Value, error) {
	var i uint64
	var f float64
	for _, term := range strings.Split(expr, "+") {
		ti, tf, err := c.term(strings.TrimSpace(term))
		if err != nil {
			return engine.Value{}, err
		}
		i += ti
		f += tf
	}
	value := engine.Value{Type: want}
	switch want {
	case engine.VALUE_INT32:
		value.I32 = uint32(i)
	case engine.VALUE_INT64:
		value.I64 = i
	case engine.VALUE_FLOAT32:
		value.F32 = float32(f)
	case engine.VALUE_FLOAT64:
		value.F64 = f
	default:
		return engine.Value{}, errBadExpr
	}
	return value, nil
}

// term resolves a literal or symbol to both integer and floating-point
// readings.
func (c *control) term(s string) (uint64, float64, error) {
	if s == "" {
		return 0, 0, errBadExpr
	}
	if i, err := strconv.ParseUint(s, 0, 64); err == nil {
		return i, float64(i), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return uint64(f), f, nil
	}
	if addr, err := c.client.symbols.OffsetByName(s); err == nil {
		return addr, float64(addr), nil
	}
	return 0, 0, errBadExpr
}

func (c *control) DebuggeeType() (engine.Class, engine.Qualifier, error) {
	return c.class, c.qualifier, nil
}

func (c *control) ProcessorCount() (uint32, error) {
	return c.processors, nil
}

// test hooks

func (c *control) Executed() []string {
	return c.executed
}

func (c *control) FailNormalOutput(fail bool) {
	c.failNormal = fail
}

func (c *control) OutputText(mask engine.OutputMask) string {
	var sb strings.Builder
	for _, r := range c.records {
		if r.Mask == mask {
			sb.WriteString(r.Text)
		}
	}
	return sb.String()
}

func (c *control) SetDebuggee(class engine.Class, qualifier engine.Qualifier) {
	c.class, c.qualifier = class, qualifier
}

func (c *control) SetProcessorCount(count uint32) {
	c.processors = count
}
