package chip

// GENCTRL, GENDIV and CLKCTRL are indirectly addressed: the ID field of a full write names the
// generator or channel being configured, while an 8-bit write of only the ID byte selects which
// generator or channel subsequent reads return. A selection is only visible once the GCLK
// synchronization has completed.

// Select makes the configuration of generator id readable through Load.
func (r GCLK_GENCTRL) Select(id uint8) {
	r.bus.Store8(r.addr, id&0b1111)
}

// Select makes the division factor of generator id readable through Load.
func (r GCLK_GENDIV) Select(id uint8) {
	r.bus.Store8(r.addr, id&0b1111)
}

// Select makes the configuration of channel id readable through Load.
func (r GCLK_CLKCTRL) Select(id uint8) {
	r.bus.Store8(r.addr, id&0b111111)
}
