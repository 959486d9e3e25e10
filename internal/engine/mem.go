package engine

import (
	"errors"

	"github.com/wnxd/dbgeng/dbg"
)

const pageSize = 0x1000

var (
	errUnmapped   = errors.New("address not mapped")
	errUnknownMSR = errors.New("unknown msr")
)

type dataSpaces struct {
	client *Client
	pages  map[uint64][]byte
	msrs   map[uint32]uint64
}

func (ds *dataSpaces) ctor(client *Client) {
	ds.client = client
	ds.pages = make(map[uint64][]byte)
	ds.msrs = make(map[uint32]uint64)
}

func (ds *dataSpaces) ReadVirtual(addr uint64, buf []byte) (uint32, error) {
	var n int
	for n < len(buf) {
		page, ok := ds.pages[addr&^(pageSize-1)]
		if !ok {
			break
		}
		end := dbg.Align(addr+1, pageSize)
		n += copy(buf[n:], page[addr&(pageSize-1):end-(addr&^(pageSize-1))])
		addr = end
	}
	if n == 0 && len(buf) > 0 {
		return 0, errUnmapped
	}
	return uint32(n), nil
}

func (ds *dataSpaces) ReadMSR(id uint32) (uint64, error) {
	value, ok := ds.msrs[id]
	if !ok {
		return 0, errUnknownMSR
	}
	return value, nil
}

func (ds *dataSpaces) ReadMultiByteString(addr uint64, max uint32, buf []byte) (uint32, error) {
	var b [1]byte
	for i := uint32(0); i < max; i++ {
		if _, err := ds.ReadVirtual(addr+uint64(i), b[:]); err != nil {
			if i == 0 {
				return 0, nil
			}
			return i + 1, nil
		}
		if int(i) < len(buf) {
			buf[i] = b[0]
		}
		if b[0] == 0 {
			return i + 1, nil
		}
	}
	return max, nil
}

// test hooks

// Poke writes data into the session's memory, mapping pages on demand.
func (ds *dataSpaces) Poke(addr uint64, data []byte) {
	for len(data) > 0 {
		base := addr &^ (pageSize - 1)
		page, ok := ds.pages[base]
		if !ok {
			page = make([]byte, pageSize)
			ds.pages[base] = page
		}
		n := copy(page[addr-base:], data)
		data = data[n:]
		addr += uint64(n)
	}
}

func (ds *dataSpaces) SetMSR(id uint32, value uint64) {
	ds.msrs[id] = value
}
