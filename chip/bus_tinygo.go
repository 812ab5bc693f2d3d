//go:build tinygo && baremetal

package chip

import (
	"runtime/volatile"
	"unsafe"
)

// DirectBus accesses the memory-mapped registers of the running device.
type DirectBus struct{}

// Direct is the Bus of the device the program runs on.
var Direct = &DirectBus{}

func (*DirectBus) Load8(addr uintptr) uint8 {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(addr)))
}

func (*DirectBus) Load16(addr uintptr) uint16 {
	return volatile.LoadUint16((*uint16)(unsafe.Pointer(addr)))
}

func (*DirectBus) Load32(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func (*DirectBus) Store8(addr uintptr, value uint8) {
	volatile.StoreUint8((*uint8)(unsafe.Pointer(addr)), value)
}

func (*DirectBus) Store16(addr uintptr, value uint16) {
	volatile.StoreUint16((*uint16)(unsafe.Pointer(addr)), value)
}

func (*DirectBus) Store32(addr uintptr, value uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), value)
}
