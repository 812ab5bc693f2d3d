package sim

import (
	"fmt"

	"omibyte.io/clocktree/chip"
)

// Generator is the decoded state of one clock generator.
type Generator struct {
	ID         uint8
	Source     chip.GCLK_GENCTRL_REG_SRC
	Divider    uint16
	DivSel     bool
	Enabled    bool
	RunStandby bool
}

// Channel is the decoded state of one peripheral clock channel.
type Channel struct {
	ID        uint8
	Generator uint8
	Enabled   bool
}

var sourceNames = map[chip.GCLK_GENCTRL_REG_SRC]string{
	chip.GCLK_GENCTRL_REG_SRC_XOSC:      "XOSC",
	chip.GCLK_GENCTRL_REG_SRC_GCLKIN:    "GCLKIN",
	chip.GCLK_GENCTRL_REG_SRC_GCLKGEN1:  "GCLKGEN1",
	chip.GCLK_GENCTRL_REG_SRC_OSCULP32K: "OSCULP32K",
	chip.GCLK_GENCTRL_REG_SRC_OSC32K:    "OSC32K",
	chip.GCLK_GENCTRL_REG_SRC_XOSC32K:   "XOSC32K",
	chip.GCLK_GENCTRL_REG_SRC_OSC8M:     "OSC8M",
	chip.GCLK_GENCTRL_REG_SRC_DFLL48M:   "DFLL48M",
	chip.GCLK_GENCTRL_REG_SRC_FDPLL:     "FDPLL",
}

// SourceName returns the datasheet name of a generator source.
func SourceName(src chip.GCLK_GENCTRL_REG_SRC) string {
	if name, ok := sourceNames[src]; ok {
		return name
	}
	return fmt.Sprintf("SRC(%d)", uint32(src))
}

// Generator decodes generator id without touching the bus.
func (h *Hardware) Generator(id uint8) Generator {
	genctrl := chip.GCLK_GENCTRL_REG(h.bank32(genctrlBankOffset, id))
	gendiv := chip.GCLK_GENDIV_REG(h.bank32(gendivBankOffset, id))
	return Generator{
		ID:         id,
		Source:     genctrl.GetSRC(),
		Divider:    gendiv.GetDIV(),
		DivSel:     genctrl.GetDIVSEL(),
		Enabled:    genctrl.GetGENEN(),
		RunStandby: genctrl.GetRUNSTDBY(),
	}
}

// Generators decodes every generator.
func (h *Hardware) Generators() []Generator {
	gens := make([]Generator, numGenerators)
	for id := range gens {
		gens[id] = h.Generator(uint8(id))
	}
	return gens
}

// Channel decodes channel id without touching the bus.
func (h *Hardware) Channel(id uint8) Channel {
	clkctrl := chip.GCLK_CLKCTRL_REG(h.bank16(id))
	return Channel{
		ID:        id,
		Generator: uint8(clkctrl.GetGEN()),
		Enabled:   clkctrl.GetCLKEN(),
	}
}

// EnabledChannels decodes every channel that has its clock enabled.
func (h *Hardware) EnabledChannels() []Channel {
	var channels []Channel
	for id := uint8(0); id < numChannels; id++ {
		if ch := h.Channel(id); ch.Enabled {
			channels = append(channels, ch)
		}
	}
	return channels
}

// Frequency returns the output frequency in hertz the hardware state gives generator id, or 0 if
// the generator is stopped.
func (h *Hardware) Frequency(id uint8) uint32 {
	return h.frequency(id, 0)
}

func (h *Hardware) frequency(id uint8, depth int) uint32 {
	gen := h.Generator(id)
	if !gen.Enabled || depth > 1 {
		return 0
	}

	var src uint32
	switch gen.Source {
	case chip.GCLK_GENCTRL_REG_SRC_OSC8M:
		osc8m := chip.SYSCTRL_OSC8M_REG(h.load32(sysctrlOSC8M))
		src = 8_000_000 >> osc8m.GetPRESC()
	case chip.GCLK_GENCTRL_REG_SRC_DFLL48M:
		if chip.SYSCTRL_DFLLCTRL_REG(h.load16(sysctrlDFLLCTRL)).GetENABLE() {
			src = 48_000_000
		}
	case chip.GCLK_GENCTRL_REG_SRC_OSC32K, chip.GCLK_GENCTRL_REG_SRC_XOSC32K, chip.GCLK_GENCTRL_REG_SRC_OSCULP32K:
		src = 32_768
	case chip.GCLK_GENCTRL_REG_SRC_GCLKGEN1:
		src = h.frequency(1, depth+1)
	}

	switch {
	case gen.DivSel:
		return src >> (uint32(gen.Divider) + 1)
	case gen.Divider > 1:
		return src / uint32(gen.Divider)
	default:
		return src
	}
}

// CoreDivider returns the CPU clock prescaler as a division factor.
func (h *Hardware) CoreDivider() uint32 {
	return 1 << chip.PM_CPUSEL_REG(h.load8(pmCPUSEL)).GetCPUDIV()
}

// FlashWaitStates returns the configured NVM read wait states.
func (h *Hardware) FlashWaitStates() uint32 {
	return uint32(chip.NVMCTRL_CTRLB_REG(h.load32(nvmctrlCTRLB)).GetRWS())
}
