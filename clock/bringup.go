package clock

import (
	"strings"

	"github.com/pkg/errors"

	"omibyte.io/clocktree/chip"
)

// Reference is what the DFLL48M locks its 48 MHz output to.
type Reference uint8

const (
	// ReferenceOSC32K locks to the internal 32 kHz oscillator, which also drives GCLK1.
	ReferenceOSC32K Reference = iota
	// ReferenceXOSC32K locks to an external 32 kHz crystal, which also drives GCLK1.
	ReferenceXOSC32K
	// ReferenceUSB recovers the clock from the 1 kHz USB start-of-frame. Without a USB host the
	// DFLL48M effectively runs open loop.
	ReferenceUSB
	// ReferenceNone runs the DFLL48M open loop.
	ReferenceNone
	// ReferenceOSC8M skips the DFLL48M and runs the CPU from the 8 MHz RC oscillator.
	ReferenceOSC8M
)

var referenceNames = []string{
	ReferenceOSC32K:  "osc32k",
	ReferenceXOSC32K: "xosc32k",
	ReferenceUSB:     "usb",
	ReferenceNone:    "none",
	ReferenceOSC8M:   "osc8m",
}

func (r Reference) String() string {
	if int(r) < len(referenceNames) {
		return referenceNames[r]
	}
	return "invalid"
}

// ParseReference parses a reference name as returned by Reference.String.
func ParseReference(s string) (Reference, error) {
	for i, name := range referenceNames {
		if strings.EqualFold(name, s) {
			return Reference(i), nil
		}
	}
	return 0, errors.Errorf("unknown DFLL48M reference %q", s)
}

// oscillator reports whether the reference is a 32 kHz oscillator that drives GCLK1.
func (r Reference) oscillator() bool {
	return r == ReferenceOSC32K || r == ReferenceXOSC32K
}

// New brings the clock tree up for reference. It is New48MHz for every reference except
// ReferenceOSC8M, which selects NewInternal8MHz.
func New(p *chip.Peripherals, ref Reference) (*Controller, error) {
	if ref == ReferenceOSC8M {
		return NewInternal8MHz(p)
	}
	return New48MHz(p, ref)
}

// NewInternal32K runs the CPU at 48 MHz from the DFLL48M locked to the internal 32 kHz oscillator.
func NewInternal32K(p *chip.Peripherals) (*Controller, error) {
	return New48MHz(p, ReferenceOSC32K)
}

// NewExternal32K runs the CPU at 48 MHz from the DFLL48M locked to an external 32 kHz crystal.
func NewExternal32K(p *chip.Peripherals) (*Controller, error) {
	return New48MHz(p, ReferenceXOSC32K)
}

// New48MHz resets the clock tree and runs the CPU at 48 MHz from the DFLL48M. GCLK0 then runs at
// 48 MHz and, for oscillator references, GCLK1 at 32 kHz. All prescalers are reset to 1.
func New48MHz(p *chip.Peripherals, ref Reference) (*Controller, error) {
	if ref > ReferenceNone {
		return nil, errors.Errorf("%s is not a DFLL48M reference", ref)
	}

	c, err := claim(p)
	if err != nil {
		return nil, err
	}
	c.reference = ref

	// Flash needs a wait state above 24 MHz
	p.NVMCTRL.CTRLB.Modify(func(ctrlb *chip.NVMCTRL_CTRLB_REG) {
		ctrlb.SetRWS(chip.NVMCTRL_CTRLB_REG_RWS_HALF)
		if hasManualWrite {
			ctrlb.SetMANW(true)
		}
	})
	enableBusClock(p)

	switch ref {
	case ReferenceOSC32K:
		enableInternal32K(p)
	case ReferenceXOSC32K:
		enableExternal32K(p)
	}

	c.seq.reset()

	switch ref {
	case ReferenceOSC32K:
		c.seq.configureGenerator(GCLK1, 1, SourceOSC32K, false)
		c.record(GCLK1, SourceOSC32K, 1, OSC32K)
	case ReferenceXOSC32K:
		c.seq.configureGenerator(GCLK1, 1, SourceXOSC32K, false)
		c.record(GCLK1, SourceXOSC32K, 1, OSC32K)
	}
	if ref.oscillator() {
		c.seq.enableChannel(DFLL48, GCLK1)
		c.routes[DFLL48] = GCLK1
	}
	// The DFLL48M reference channel counts as used for every reference, so it can never be
	// rerouted.
	c.used = c.used.with(DFLL48)

	enableDFLL48M(p, ref)

	c.seq.configureGenerator(GCLK0, 1, SourceDFLL48M, true)
	c.record(GCLK0, SourceDFLL48M, 1, OSC48M)

	resetPrescalers(p)
	return c, nil
}

// NewInternal8MHz resets the clock tree and runs the CPU at 8 MHz from the internal RC
// oscillator. Flash needs no wait states at this frequency. All prescalers are reset to 1.
func NewInternal8MHz(p *chip.Peripherals) (*Controller, error) {
	c, err := claim(p)
	if err != nil {
		return nil, err
	}
	c.reference = ReferenceOSC8M

	if hasManualWrite {
		p.NVMCTRL.CTRLB.Modify(func(ctrlb *chip.NVMCTRL_CTRLB_REG) {
			ctrlb.SetMANW(true)
		})
	}
	enableBusClock(p)

	c.seq.reset()

	c.seq.configureGenerator(GCLK0, 1, SourceOSC8M, false)
	c.record(GCLK0, SourceOSC8M, 1, OSC8M)

	resetPrescalers(p)
	return c, nil
}

// enableBusClock ungates the APB clock of GCLK. Writes to GCLK are ignored while it is gated.
func enableBusClock(p *chip.Peripherals) {
	p.PM.APBAMASK.Modify(func(apbamask *chip.PM_APBAMASK_REG) {
		apbamask.SetGCLK(true)
	})
}

// enableInternal32K starts OSC32K with its factory calibration and waits until it is ready.
func enableInternal32K(p *chip.Peripherals) {
	var osc32k chip.SYSCTRL_OSC32K_REG
	osc32k.SetONDEMAND(false)
	osc32k.SetCALIB(p.CALIB.OSC32K())
	osc32k.SetSTARTUP(6) // 66 OSC32K cycles
	osc32k.SetEN32K(true)
	osc32k.SetENABLE(true)
	osc32k.SetRUNSTDBY(true)
	p.SYSCTRL.OSC32K.Store(osc32k)
	for !p.SYSCTRL.PCLKSR.Load().GetOSC32KRDY() {
		// Wait for the oscillator to stabilize
	}
}

// enableExternal32K starts XOSC32K on a crystal and waits until it is ready. The oscillator is
// configured first and enabled by a separate write.
func enableExternal32K(p *chip.Peripherals) {
	p.SYSCTRL.XOSC32K.Modify(func(xosc32k *chip.SYSCTRL_XOSC32K_REG) {
		xosc32k.SetSTARTUP(6) // 64k OSCULP32K cycles
		xosc32k.SetONDEMAND(false)
		xosc32k.SetEN32K(true)
		xosc32k.SetXTALEN(true)
		xosc32k.SetRUNSTDBY(true)
	})
	p.SYSCTRL.XOSC32K.Modify(func(xosc32k *chip.SYSCTRL_XOSC32K_REG) {
		xosc32k.SetENABLE(true)
	})
	for !p.SYSCTRL.PCLKSR.Load().GetXOSC32KRDY() {
		// Wait for the oscillator to stabilize
	}
}

// resetPrescalers runs OSC8M undivided and always on, and the CPU and APB buses undivided.
func resetPrescalers(p *chip.Peripherals) {
	p.SYSCTRL.OSC8M.Modify(func(osc8m *chip.SYSCTRL_OSC8M_REG) {
		osc8m.SetPRESC(chip.SYSCTRL_OSC8M_REG_PRESC_0)
		osc8m.SetONDEMAND(false)
	})

	var cpusel chip.PM_CPUSEL_REG
	cpusel.SetCPUDIV(chip.PM_CPUSEL_REG_CPUDIV_DIV1)
	p.PM.CPUSEL.Store(cpusel)

	var apbasel chip.PM_APBASEL_REG
	apbasel.SetAPBADIV(chip.PM_APBASEL_REG_APBADIV_DIV1)
	p.PM.APBASEL.Store(apbasel)

	var apbbsel chip.PM_APBBSEL_REG
	apbbsel.SetAPBBDIV(chip.PM_APBBSEL_REG_APBBDIV_DIV1)
	p.PM.APBBSEL.Store(apbbsel)

	var apbcsel chip.PM_APBCSEL_REG
	apbcsel.SetAPBCDIV(chip.PM_APBCSEL_REG_APBCDIV_DIV1)
	p.PM.APBCSEL.Store(apbcsel)
}
