package clock

import (
	"github.com/pkg/errors"

	"omibyte.io/clocktree/chip"
)

// sequencer performs the synchronization aware GCLK primitives every bring-up path is composed of.
type sequencer struct {
	gclk *chip.GCLK_Type
}

// reset puts the generic clock controller in its reset state.
func (s sequencer) reset() {
	var ctrl chip.GCLK_CTRL_REG
	ctrl.SetSWRST(true)
	s.gclk.CTRL.Store(ctrl)
	for s.gclk.CTRL.Load().GetSWRST() || s.gclk.STATUS.Load().GetSYNCBUSY() {
		// Wait for the reset to complete
	}
}

func (s sequencer) waitForSync() {
	for s.gclk.STATUS.Load().GetSYNCBUSY() {
		// Wait for write to complete
	}
}

// configureGenerator makes generator id divide src linearly by divider. An out of range divider
// is a configuration defect and panics before any register is written.
func (s sequencer) configureGenerator(id GeneratorID, divider uint32, src Source, improveDutyCycle bool) {
	if divider == 0 || divider > id.MaxDivider() {
		panic(errors.Wrapf(ErrInvalidDivider, "%d for %s (1..%d)", divider, id, id.MaxDivider()))
	}

	var gendiv chip.GCLK_GENDIV_REG
	gendiv.SetID(uint8(id))
	gendiv.SetDIV(uint16(divider))
	s.gclk.GENDIV.Store(gendiv)
	s.waitForSync()

	var genctrl chip.GCLK_GENCTRL_REG
	genctrl.SetID(uint8(id))
	genctrl.SetSRC(chip.GCLK_GENCTRL_REG_SRC(src))
	genctrl.SetDIVSEL(false)
	genctrl.SetIDC(improveDutyCycle)
	genctrl.SetGENEN(true)
	genctrl.SetOE(true)
	s.gclk.GENCTRL.Store(genctrl)
	s.waitForSync()
}

// enableChannel routes generator gen to channel ch and ungates it.
func (s sequencer) enableChannel(ch ChannelID, gen GeneratorID) {
	var clkctrl chip.GCLK_CLKCTRL_REG
	clkctrl.SetID(chip.GCLK_CLKCTRL_REG_ID(ch))
	clkctrl.SetGEN(chip.GCLK_CLKCTRL_REG_GEN(gen))
	clkctrl.SetCLKEN(true)
	s.gclk.CLKCTRL.Store(clkctrl)
	s.waitForSync()
}

// configureStandby sets whether generator id keeps running in standby. GENCTRL is indirectly
// addressed, so the generator is selected with an 8-bit write before its configuration can be
// read back and modified.
func (s sequencer) configureStandby(id GeneratorID, enabled bool) {
	s.gclk.GENCTRL.Select(uint8(id))
	s.waitForSync()

	s.gclk.GENCTRL.Modify(func(genctrl *chip.GCLK_GENCTRL_REG) {
		genctrl.SetRUNSTDBY(enabled)
	})
	s.waitForSync()
}
