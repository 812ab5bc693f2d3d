package sim

import (
	"omibyte.io/clocktree/chip"
)

func (h *Hardware) Load8(addr uintptr) uint8 {
	v := uint8(h.read(addr, 8))
	h.record(Read, 8, addr, uint32(v), false)
	return v
}

func (h *Hardware) Load16(addr uintptr) uint16 {
	v := uint16(h.read(addr, 16))
	h.record(Read, 16, addr, uint32(v), false)
	return v
}

func (h *Hardware) Load32(addr uintptr) uint32 {
	v := h.read(addr, 32)
	h.record(Read, 32, addr, v, false)
	return v
}

func (h *Hardware) Store8(addr uintptr, value uint8) {
	h.write(addr, 8, uint32(value))
}

func (h *Hardware) Store16(addr uintptr, value uint16) {
	h.write(addr, 16, uint32(value))
}

func (h *Hardware) Store32(addr uintptr, value uint32) {
	h.write(addr, 32, value)
}

// read returns the value the device presents at addr and advances the model by one tick.
func (h *Hardware) read(addr uintptr, width uint8) (v uint32) {
	defer h.tick()

	if inGCLK(addr) && h.gclkGated() {
		return 0
	}

	switch addr {
	case gclkCTRL:
		if !h.swrst.done() {
			return 1
		}
		return 0
	case gclkSTATUS:
		if !h.syncBusy.done() {
			return 1 << 7
		}
		return 0
	case gclkCLKCTRL:
		return truncate(uint32(h.bank16(h.selection(2))), width)
	case gclkGENCTRL:
		return truncate(h.bank32(genctrlBankOffset, h.selection(0)), width)
	case gclkGENDIV:
		return truncate(h.bank32(gendivBankOffset, h.selection(1)), width)
	case sysctrlPCLKSR:
		return uint32(h.pclksr())
	}

	switch width {
	case 8:
		return uint32(h.load8(addr))
	case 16:
		return uint32(h.load16(addr))
	default:
		return h.load32(addr)
	}
}

func truncate(v uint32, width uint8) uint32 {
	switch width {
	case 8:
		return v & 0xff
	case 16:
		return v & 0xffff
	default:
		return v
	}
}

func (h *Hardware) pclksr() chip.SYSCTRL_PCLKSR_REG {
	var v chip.SYSCTRL_PCLKSR_REG
	set := func(bit int, cond bool) {
		if cond {
			v |= 1 << bit
		}
	}
	osc8m := chip.SYSCTRL_OSC8M_REG(h.load32(sysctrlOSC8M))
	dfll := chip.SYSCTRL_DFLLCTRL_REG(h.load16(sysctrlDFLLCTRL))
	set(1, h.xosc32k.done())
	set(2, h.osc32k.done())
	set(3, osc8m.GetENABLE())
	set(4, h.dfllRdy.done())
	locked := h.dfllLock.done() && dfll.GetENABLE() && dfll.GetMODE()
	set(6, locked)
	set(7, locked)
	return v
}

// write applies a store to the model. Every store counts as a write, including stores the device
// ignores.
func (h *Hardware) write(addr uintptr, width uint8, value uint32) {
	h.writes++

	if inGCLK(addr) {
		if h.gclkGated() {
			h.record(Write, width, addr, value, true)
			h.violation("write of %#x to %s while the GCLK bus clock is masked", value, registerName(addr))
			return
		}
		if !h.syncBusy.done() {
			h.violation("write of %#x to %s while GCLK synchronization is busy", value, registerName(addr))
		}
	}
	h.record(Write, width, addr, value, false)

	switch addr {
	case gclkCTRL:
		h.writeGCLKCtrl(width, value)
	case gclkSTATUS, sysctrlPCLKSR:
		h.violation("write of %#x to read-only register %s", value, registerName(addr))
	case gclkCLKCTRL:
		h.writeCLKCTRL(width, value)
	case gclkGENCTRL:
		h.writeGENCTRL(width, value)
	case gclkGENDIV:
		h.writeGENDIV(width, value)
	case sysctrlOSC32K:
		h.store32(addr, value)
		h.osc32k = h.startOscillator(h.osc32k, value&(1<<1) != 0)
	case sysctrlXOSC32K:
		h.store16(addr, uint16(value))
		h.xosc32k = h.startOscillator(h.xosc32k, value&(1<<1) != 0)
	case sysctrlDFLLCTRL:
		h.writeDFLLCTRL(uint16(value))
	case sysctrlDFLLVAL, sysctrlDFLLMUL:
		h.writeDFLLValue(addr, value)
	case nvmctrlCTRLB:
		h.store32(addr, value)
	default:
		switch width {
		case 8:
			h.store8(addr, uint8(value))
		case 16:
			h.store16(addr, uint16(value))
		default:
			h.store32(addr, value)
		}
	}
}

func (h *Hardware) startOscillator(c countdown, enabled bool) countdown {
	switch {
	case !enabled:
		return off
	case c == off:
		return countdown(h.latency)
	default:
		return c
	}
}

func (h *Hardware) synchronize() {
	h.syncBusy = countdown(h.latency)
}

func (h *Hardware) writeGCLKCtrl(width uint8, value uint32) {
	if width != 8 {
		h.violation("%d-bit access to GCLK.CTRL", width)
	}
	if value&1 == 0 {
		return
	}
	h.resetGCLK()
	h.store8(gclkCTRL, 1)
	h.swrst = countdown(h.latency)
	h.synchronize()
}

func (h *Hardware) writeCLKCTRL(width uint8, value uint32) {
	switch width {
	case 8:
		h.setSelection(2, uint8(value)&0x3f)
	case 16:
		v := chip.GCLK_CLKCTRL_REG(value)
		id := uint8(v.GetID())
		if old := chip.GCLK_CLKCTRL_REG(h.bank16(id)); old.GetWRTLOCK() {
			h.violation("write of %#x to write-locked channel %d", value, id)
			return
		}
		h.setBank16(id, uint16(value))
		h.setSelection(2, id)
	default:
		h.violation("32-bit access to GCLK.CLKCTRL")
		return
	}
	h.synchronize()
}

func (h *Hardware) writeGENCTRL(width uint8, value uint32) {
	switch width {
	case 8:
		h.setSelection(0, uint8(value)&0xf)
	case 32:
		v := chip.GCLK_GENCTRL_REG(value)
		id := v.GetID()
		if id >= numGenerators {
			h.violation("GENCTRL names nonexistent generator %d", id)
			return
		}
		if v.GetGENEN() {
			h.checkSource(id, v.GetSRC())
		}
		h.setBank32(genctrlBankOffset, id, value)
		h.setSelection(0, id)
	default:
		h.violation("16-bit access to GCLK.GENCTRL")
		return
	}
	h.synchronize()
}

// checkSource records a violation when generator id is enabled on a source that cannot run it.
func (h *Hardware) checkSource(id uint8, src chip.GCLK_GENCTRL_REG_SRC) {
	switch src {
	case chip.GCLK_GENCTRL_REG_SRC_OSC32K:
		if !h.osc32k.done() {
			h.violation("generator %d sourced from OSC32K before it is ready", id)
		}
	case chip.GCLK_GENCTRL_REG_SRC_XOSC32K:
		if !h.xosc32k.done() {
			h.violation("generator %d sourced from XOSC32K before it is ready", id)
		}
	case chip.GCLK_GENCTRL_REG_SRC_DFLL48M:
		dfll := chip.SYSCTRL_DFLLCTRL_REG(h.load16(sysctrlDFLLCTRL))
		if !dfll.GetENABLE() {
			h.violation("generator %d sourced from DFLL48M while it is disabled", id)
		}
		if id == 0 {
			ctrlb := chip.NVMCTRL_CTRLB_REG(h.load32(nvmctrlCTRLB))
			if ctrlb.GetRWS() < chip.NVMCTRL_CTRLB_REG_RWS_HALF {
				h.violation("core clock switched to DFLL48M with %d flash wait states", ctrlb.GetRWS())
			}
		}
	case chip.GCLK_GENCTRL_REG_SRC_GCLKGEN1:
		if id == 1 {
			h.violation("generator 1 sourced from itself")
		}
	}
}

func (h *Hardware) writeGENDIV(width uint8, value uint32) {
	switch width {
	case 8:
		h.setSelection(1, uint8(value)&0xf)
	case 32:
		id := chip.GCLK_GENDIV_REG(value).GetID()
		if id >= numGenerators {
			h.violation("GENDIV names nonexistent generator %d", id)
			return
		}
		h.setBank32(gendivBankOffset, id, value)
		h.setSelection(1, id)
	default:
		h.violation("16-bit access to GCLK.GENDIV")
		return
	}
	h.synchronize()
}

func (h *Hardware) writeDFLLCTRL(value uint16) {
	if !h.dfllRdy.done() {
		h.violation("write of %#x to SYSCTRL.DFLLCTRL before DFLLRDY", value)
	}
	old := chip.SYSCTRL_DFLLCTRL_REG(h.load16(sysctrlDFLLCTRL))
	v := chip.SYSCTRL_DFLLCTRL_REG(value)
	h.store16(sysctrlDFLLCTRL, value)
	h.dfllRdy = countdown(h.latency)

	switch {
	case !v.GetENABLE() || !v.GetMODE():
		h.dfllLock = off
	case !old.GetENABLE() || !old.GetMODE() || h.dfllLock == off:
		h.dfllLock = countdown(2 * h.latency)
	}
}

func (h *Hardware) writeDFLLValue(addr uintptr, value uint32) {
	if !h.dfllRdy.done() {
		h.violation("write of %#x to %s before DFLLRDY", value, registerName(addr))
	}
	if dfll := chip.SYSCTRL_DFLLCTRL_REG(h.load16(sysctrlDFLLCTRL)); dfll.GetONDEMAND() {
		h.violation("write of %#x to %s while the DFLL48M runs on demand", value, registerName(addr))
		return
	}
	h.store32(addr, value)
}
