package clock

import "omibyte.io/clocktree/chip"

// Multiplication factors that turn a reference into 48 MHz.
const (
	dfllMulInternal32K = uint16(OSC48M / OSC32K)              // 1464
	dfllMulExternal32K = uint16((OSC48M + OSC32K/2) / OSC32K) // 1465
	dfllMulUSB         = uint16(OSC48M / 1_000)               // 1 kHz start-of-frame
	dfllFineDefault    = 0x1ff
)

// dfllCoarse returns the factory DFLL48M coarse value. Parts without a programmed row read 0x3f,
// which is replaced by the middle of the range.
func dfllCoarse(p *chip.Peripherals) uint8 {
	coarse := p.CALIB.DFLL48MCoarse()
	if coarse == 0x3f {
		coarse = 0x1f
	}
	return coarse
}

func waitDFLLReady(p *chip.Peripherals) {
	for !p.SYSCTRL.PCLKSR.Load().GetDFLLRDY() {
		// Wait for the DFLL48M to synchronize
	}
}

// enableDFLL48M configures the DFLL48M for ref and turns it on.
func enableDFLL48M(p *chip.Peripherals, ref Reference) {
	// On-demand mode has to be off before the DFLL48M accepts a configuration
	var off chip.SYSCTRL_DFLLCTRL_REG
	off.SetONDEMAND(false)
	p.SYSCTRL.DFLLCTRL.Store(off)
	waitDFLLReady(p)

	var (
		val  chip.SYSCTRL_DFLLVAL_REG
		mul  chip.SYSCTRL_DFLLMUL_REG
		ctrl chip.SYSCTRL_DFLLCTRL_REG
	)
	coarse := dfllCoarse(p)
	val.SetCOARSE(coarse)
	val.SetFINE(dfllFineDefault)

	switch ref {
	case ReferenceOSC32K:
		p.SYSCTRL.DFLLVAL.Store(val)
		mul.SetCSTEP(coarse / 4)
		mul.SetFSTEP(10)
		mul.SetMUL(dfllMulInternal32K)
		p.SYSCTRL.DFLLMUL.Store(mul)
		ctrl.SetMODE(true)
		ctrl.SetCCDIS(true)
		ctrl.SetBPLCKC(true) // calibrated, skip the coarse lock
	case ReferenceXOSC32K:
		mul.SetCSTEP(31)
		mul.SetFSTEP(511)
		mul.SetMUL(dfllMulExternal32K)
		p.SYSCTRL.DFLLMUL.Store(mul)
		ctrl.SetMODE(true)
		ctrl.SetWAITLOCK(true)
		ctrl.SetQLDIS(true)
	case ReferenceUSB:
		p.SYSCTRL.DFLLVAL.Store(val)
		mul.SetCSTEP(1)
		mul.SetFSTEP(1)
		mul.SetMUL(dfllMulUSB)
		p.SYSCTRL.DFLLMUL.Store(mul)
		ctrl.SetMODE(true)
		ctrl.SetCCDIS(true)
		ctrl.SetUSBCRM(true)
		ctrl.SetBPLCKC(true)
	case ReferenceNone:
		p.SYSCTRL.DFLLVAL.Store(val)
		ctrl.SetMODE(false)
	}
	ctrl.SetONDEMAND(false)
	p.SYSCTRL.DFLLCTRL.Store(ctrl)
	waitDFLLReady(p)

	p.SYSCTRL.DFLLCTRL.Modify(func(ctrl *chip.SYSCTRL_DFLLCTRL_REG) {
		ctrl.SetENABLE(true)
	})

	if waitsForLock && ref == ReferenceXOSC32K {
		for {
			pclksr := p.SYSCTRL.PCLKSR.Load()
			if pclksr.GetDFLLLCKC() && pclksr.GetDFLLLCKF() {
				break
			}
		}
	}
	waitDFLLReady(p)
}
