package chip

import (
	"encoding/binary"
	"fmt"
)

// Bus performs the raw register accesses behind every accessor in this package. Each access is
// a single bus transaction of the given width; implementations must not merge or split them.
type Bus interface {
	Load8(addr uintptr) uint8
	Load16(addr uintptr) uint16
	Load32(addr uintptr) uint32
	Store8(addr uintptr, value uint8)
	Store16(addr uintptr, value uint16)
	Store32(addr uintptr, value uint32)
}

// Region maps a window of the device address space onto a byte offset of a backing buffer.
type Region struct {
	Base   uintptr
	Size   uintptr
	Offset int
}

func (r Region) contains(addr uintptr, width uintptr) bool {
	return addr >= r.Base && addr+width <= r.Base+r.Size
}

// MemoryBus is a Bus over plain little-endian memory. Accesses have no side effects.
type MemoryBus struct {
	mem     []byte
	regions []Region
}

func NewMemoryBus(mem []byte, regions []Region) *MemoryBus {
	for _, r := range regions {
		if r.Offset < 0 || r.Offset+int(r.Size) > len(mem) {
			panic(fmt.Sprintf("region %#x+%#x does not fit a %d byte buffer", r.Base, r.Size, len(mem)))
		}
	}
	return &MemoryBus{
		mem:     mem,
		regions: regions,
	}
}

// Bytes returns the backing buffer.
func (m *MemoryBus) Bytes() []byte {
	return m.mem
}

func (m *MemoryBus) slice(addr uintptr, width uintptr) []byte {
	for _, r := range m.regions {
		if r.contains(addr, width) {
			off := r.Offset + int(addr-r.Base)
			return m.mem[off : off+int(width)]
		}
	}
	panic(fmt.Sprintf("unmapped %d-bit access at %#08x", width*8, addr))
}

func (m *MemoryBus) Load8(addr uintptr) uint8 {
	return m.slice(addr, 1)[0]
}

func (m *MemoryBus) Load16(addr uintptr) uint16 {
	return binary.LittleEndian.Uint16(m.slice(addr, 2))
}

func (m *MemoryBus) Load32(addr uintptr) uint32 {
	return binary.LittleEndian.Uint32(m.slice(addr, 4))
}

func (m *MemoryBus) Store8(addr uintptr, value uint8) {
	m.slice(addr, 1)[0] = value
}

func (m *MemoryBus) Store16(addr uintptr, value uint16) {
	binary.LittleEndian.PutUint16(m.slice(addr, 2), value)
}

func (m *MemoryBus) Store32(addr uintptr, value uint32) {
	binary.LittleEndian.PutUint32(m.slice(addr, 4), value)
}

type reg8 struct {
	bus  Bus
	addr uintptr
}

func (r reg8) load() uint8       { return r.bus.Load8(r.addr) }
func (r reg8) store(value uint8) { r.bus.Store8(r.addr, value) }

// Address returns the absolute address of the register.
func (r reg8) Address() uintptr { return r.addr }

type reg16 struct {
	bus  Bus
	addr uintptr
}

func (r reg16) load() uint16       { return r.bus.Load16(r.addr) }
func (r reg16) store(value uint16) { r.bus.Store16(r.addr, value) }

// Address returns the absolute address of the register.
func (r reg16) Address() uintptr { return r.addr }

type reg32 struct {
	bus  Bus
	addr uintptr
}

func (r reg32) load() uint32       { return r.bus.Load32(r.addr) }
func (r reg32) store(value uint32) { r.bus.Store32(r.addr, value) }

// Address returns the absolute address of the register.
func (r reg32) Address() uintptr { return r.addr }
