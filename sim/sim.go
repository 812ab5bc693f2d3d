// Package sim models the clock distribution blocks of a SAMD21 (PM, SYSCTRL, GCLK, NVMCTRL and
// the calibration row) behind a chip.Bus.
//
// The model is deterministic and advances only when the bus is read: every read is one tick.
// Writes that the hardware synchronizes keep GCLK.STATUS.SYNCBUSY asserted for a number of ticks,
// a software reset keeps GCLK.CTRL.SWRST set, and oscillators and the DFLL48M report ready or
// locked only after their start-up ticks have elapsed. Protocol mistakes that real silicon would
// silently tolerate or mishandle are recorded as violations.
package sim

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"omibyte.io/clocktree/chip"
)

const DefaultLatency = 3

// Offsets of the indirectly addressed GCLK banks inside the private area of the register image.
const (
	genctrlBankOffset = chip.ImagePrivateOffset + 0x00
	gendivBankOffset  = chip.ImagePrivateOffset + 0x40
	clkctrlBankOffset = chip.ImagePrivateOffset + 0x80
	selectionOffset   = chip.ImagePrivateOffset + 0x100

	numGenerators = 9
	numChannels   = 64
)

// Register addresses the model attaches behavior to.
const (
	gclkCTRL    = chip.GCLK_BASE + 0x0
	gclkSTATUS  = chip.GCLK_BASE + 0x1
	gclkCLKCTRL = chip.GCLK_BASE + 0x2
	gclkGENCTRL = chip.GCLK_BASE + 0x4
	gclkGENDIV  = chip.GCLK_BASE + 0x8
	gclkEnd     = chip.GCLK_BASE + 0xc

	pmCPUSEL   = chip.PM_BASE + 0x08
	pmAPBASEL  = chip.PM_BASE + 0x09
	pmAPBBSEL  = chip.PM_BASE + 0x0a
	pmAPBCSEL  = chip.PM_BASE + 0x0b
	pmAPBAMASK = chip.PM_BASE + 0x18

	sysctrlPCLKSR   = chip.SYSCTRL_BASE + 0x0c
	sysctrlXOSC32K  = chip.SYSCTRL_BASE + 0x14
	sysctrlOSC32K   = chip.SYSCTRL_BASE + 0x18
	sysctrlOSC8M    = chip.SYSCTRL_BASE + 0x20
	sysctrlDFLLCTRL = chip.SYSCTRL_BASE + 0x24
	sysctrlDFLLVAL  = chip.SYSCTRL_BASE + 0x28
	sysctrlDFLLMUL  = chip.SYSCTRL_BASE + 0x2c

	nvmctrlCTRLB = chip.NVMCTRL_BASE + 0x04
	calibWord1   = chip.CALIBRATION_BASE + 0x04
)

// countdown is the number of ticks until a status flag asserts. off means the flag never asserts
// on its own.
type countdown int

const off countdown = -1

func (c *countdown) tick() {
	if *c > 0 {
		*c--
	}
}

func (c countdown) done() bool {
	return c == 0
}

// Hardware is a simulated device. It implements chip.Bus and is not safe for concurrent use.
type Hardware struct {
	mem        *chip.MemoryBus
	latency    int
	gated      bool
	osc32kCal  uint8
	dfllCoarse uint8

	syncBusy countdown
	swrst    countdown
	osc32k   countdown
	xosc32k  countdown
	dfllRdy  countdown
	dfllLock countdown

	trace      []Access
	writes     int
	violations []error
}

type Option func(h *Hardware)

// WithLatency sets the number of ticks synchronization and oscillator start-up take.
func WithLatency(ticks int) Option {
	return func(h *Hardware) {
		h.latency = ticks
	}
}

// WithBusClockGated powers the device on with the GCLK bus clock masked in PM.APBAMASK, so GCLK
// ignores writes until software ungates it.
func WithBusClockGated() Option {
	return func(h *Hardware) {
		h.gated = true
	}
}

// WithCalibration programs the calibration row.
func WithCalibration(osc32k, dfllCoarse uint8) Option {
	return func(h *Hardware) {
		h.osc32kCal = osc32k
		h.dfllCoarse = dfllCoarse
	}
}

// WithImage keeps register state in img instead of a private heap image.
func WithImage(img *chip.MemoryBus) Option {
	return func(h *Hardware) {
		h.mem = img
	}
}

// New returns a device in its power-on reset state.
func New(options ...Option) *Hardware {
	h := newHardware(options)
	h.powerOn()
	return h
}

// Attach returns a device whose state is whatever img already holds, such as an image written by
// an earlier process. Transient state like pending synchronization is not part of an image and
// starts out idle.
func Attach(img *chip.MemoryBus, options ...Option) *Hardware {
	h := newHardware(append(options, WithImage(img)))
	h.syncBusy, h.swrst, h.dfllRdy = 0, 0, 0
	h.osc32k = readyIf(h.load32(sysctrlOSC32K)&(1<<1) != 0)
	h.xosc32k = readyIf(h.load16(sysctrlXOSC32K)&(1<<1) != 0)
	dfll := chip.SYSCTRL_DFLLCTRL_REG(h.load16(sysctrlDFLLCTRL))
	h.dfllLock = readyIf(dfll.GetENABLE() && dfll.GetMODE())
	return h
}

func newHardware(options []Option) *Hardware {
	h := &Hardware{
		latency:    DefaultLatency,
		osc32kCal:  0x4a,
		dfllCoarse: 0x22,
		syncBusy:   0,
		swrst:      0,
		osc32k:     off,
		xosc32k:    off,
		dfllRdy:    0,
		dfllLock:   off,
	}
	for _, option := range options {
		option(h)
	}
	if h.mem == nil {
		h.mem = chip.NewImage()
	}
	return h
}

func readyIf(cond bool) countdown {
	if cond {
		return 0
	}
	return off
}

func (h *Hardware) powerOn() {
	apbamask := uint32(chip.PM_APBAMASK_RESET)
	if h.gated {
		apbamask &^= 1 << 3
	}
	h.store8(pmCPUSEL, uint8(chip.PM_CPUSEL_RESET))
	h.store8(pmAPBASEL, uint8(chip.PM_APBASEL_RESET))
	h.store8(pmAPBBSEL, uint8(chip.PM_APBBSEL_RESET))
	h.store8(pmAPBCSEL, uint8(chip.PM_APBCSEL_RESET))
	h.store32(pmAPBAMASK, apbamask)

	h.store16(sysctrlXOSC32K, uint16(chip.SYSCTRL_XOSC32K_RESET))
	h.store32(sysctrlOSC32K, uint32(chip.SYSCTRL_OSC32K_RESET))
	h.store32(sysctrlOSC8M, uint32(chip.SYSCTRL_OSC8M_RESET))
	h.store16(sysctrlDFLLCTRL, uint16(chip.SYSCTRL_DFLLCTRL_RESET))
	h.store32(sysctrlDFLLVAL, uint32(chip.SYSCTRL_DFLLVAL_RESET))
	h.store32(sysctrlDFLLMUL, uint32(chip.SYSCTRL_DFLLMUL_RESET))

	h.store32(nvmctrlCTRLB, uint32(chip.NVMCTRL_CTRLB_RESET))

	h.store32(calibWord1, uint32(h.osc32kCal&0x7f)<<6|uint32(h.dfllCoarse&0x3f)<<26)

	h.resetGCLK()
}

// resetGCLK returns the generic clock controller to its reset state: generator 0 runs from OSC8M
// undivided, every other generator and every channel is disabled.
func (h *Hardware) resetGCLK() {
	h.store8(gclkCTRL, 0)
	for id := uint8(0); id < numGenerators; id++ {
		var genctrl chip.GCLK_GENCTRL_REG
		genctrl.SetID(id)
		if id == 0 {
			genctrl.SetSRC(chip.GCLK_GENCTRL_REG_SRC_OSC8M)
			genctrl.SetGENEN(true)
		}
		h.setBank32(genctrlBankOffset, id, uint32(genctrl))

		var gendiv chip.GCLK_GENDIV_REG
		gendiv.SetID(id)
		h.setBank32(gendivBankOffset, id, uint32(gendiv))
	}
	for id := uint8(0); id < numChannels; id++ {
		var clkctrl chip.GCLK_CLKCTRL_REG
		clkctrl.SetID(chip.GCLK_CLKCTRL_REG_ID(id))
		h.setBank16(id, uint16(clkctrl))
	}
	h.setSelection(0, 0)
	h.setSelection(1, 0)
	h.setSelection(2, 0)
}

func (h *Hardware) violation(format string, args ...any) {
	h.violations = append(h.violations, errors.Errorf(format, args...))
}

func (h *Hardware) tick() {
	h.syncBusy.tick()
	h.swrst.tick()
	h.osc32k.tick()
	h.xosc32k.tick()
	h.dfllRdy.tick()
	h.dfllLock.tick()
}

func (h *Hardware) gclkGated() bool {
	return h.load32(pmAPBAMASK)&(1<<3) == 0
}

func inGCLK(addr uintptr) bool {
	return addr >= chip.GCLK_BASE && addr < gclkEnd
}

// Raw accessors of the backing image; they have no side effects.

func (h *Hardware) load8(addr uintptr) uint8         { return h.mem.Load8(addr) }
func (h *Hardware) load16(addr uintptr) uint16       { return h.mem.Load16(addr) }
func (h *Hardware) load32(addr uintptr) uint32       { return h.mem.Load32(addr) }
func (h *Hardware) store8(addr uintptr, v uint8)     { h.mem.Store8(addr, v) }
func (h *Hardware) store16(addr uintptr, v uint16)   { h.mem.Store16(addr, v) }
func (h *Hardware) store32(addr uintptr, v uint32)   { h.mem.Store32(addr, v) }
func (h *Hardware) private(offset int, n int) []byte { return h.mem.Bytes()[offset : offset+n] }

func (h *Hardware) bank32(base int, id uint8) uint32 {
	return binary.LittleEndian.Uint32(h.private(base+int(id)*4, 4))
}

func (h *Hardware) setBank32(base int, id uint8, v uint32) {
	binary.LittleEndian.PutUint32(h.private(base+int(id)*4, 4), v)
}

func (h *Hardware) bank16(id uint8) uint16 {
	return binary.LittleEndian.Uint16(h.private(clkctrlBankOffset+int(id)*2, 2))
}

func (h *Hardware) setBank16(id uint8, v uint16) {
	binary.LittleEndian.PutUint16(h.private(clkctrlBankOffset+int(id)*2, 2), v)
}

// selection returns the generator or channel id selected for GENCTRL (0), GENDIV (1) or
// CLKCTRL (2).
func (h *Hardware) selection(which int) uint8 {
	return h.private(selectionOffset+which, 1)[0]
}

func (h *Hardware) setSelection(which int, id uint8) {
	h.private(selectionOffset+which, 1)[0] = id
}

func (h *Hardware) String() string {
	return fmt.Sprintf("sim.Hardware{writes: %d, violations: %d}", h.writes, len(h.violations))
}
