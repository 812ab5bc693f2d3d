// Package clock brings up and manages the clock distribution tree of SAMD21 and SAMD11 devices.
//
// A Controller takes ownership of the clock register blocks, runs exactly one bring-up sequence
// and then hands out generators and peripheral clock channels. Every generator and every channel
// is configured at most once per controller: a second attempt reports false and leaves the
// hardware untouched. Enabling a channel yields a Token whose type names the channel, which
// peripheral drivers take as proof that their clock runs.
package clock

import (
	"github.com/pkg/errors"

	"omibyte.io/clocktree/chip"
)

// GeneratorHandle refers to a configured generator and carries its output frequency.
type GeneratorHandle struct {
	id   GeneratorID
	freq Hertz
}

func (h GeneratorHandle) ID() GeneratorID {
	return h.id
}

func (h GeneratorHandle) Frequency() Hertz {
	return h.freq
}

// Controller owns the clock register blocks of one device.
type Controller struct {
	p         *chip.Peripherals
	seq       sequencer
	reference Reference

	// configured marks claimed generators. A generator divided below 1 Hz is configured with
	// a zero frequency.
	configured uint8
	freqs      [NumGenerators]Hertz
	sources    [NumGenerators]Source
	dividers   [NumGenerators]uint32
	used       UsageSet
	routes     [MaxChannels]GeneratorID
}

func claim(p *chip.Peripherals) (*Controller, error) {
	if !p.Claim() {
		return nil, ErrPeripheralsInUse
	}
	return &Controller{
		p:   p,
		seq: sequencer{gclk: p.GCLK},
	}, nil
}

// Free surrenders the register blocks. Configuring anything through the controller afterwards
// panics with ErrControllerFreed. A new controller built from the returned blocks starts with an
// empty frequency table and usage set.
func (c *Controller) Free() *chip.Peripherals {
	p := c.owner()
	c.p = nil
	c.seq = sequencer{}
	p.Unclaim()
	return p
}

func (c *Controller) owner() *chip.Peripherals {
	if c.p == nil {
		panic(ErrControllerFreed)
	}
	return c.p
}

func (c *Controller) isConfigured(id GeneratorID) bool {
	return c.configured&(1<<id) != 0
}

// record books generator id as configured from src divided by divider.
func (c *Controller) record(id GeneratorID, src Source, divider uint32, freq Hertz) {
	c.configured |= 1 << id
	c.freqs[id] = freq
	c.sources[id] = src
	c.dividers[id] = divider
}

// Reference returns the reference the controller brought the DFLL48M up with.
func (c *Controller) Reference() Reference {
	return c.reference
}

// Generator returns a handle for generator id, or false if it has not been configured.
func (c *Controller) Generator(id GeneratorID) (GeneratorHandle, bool) {
	if id >= NumGenerators || !c.isConfigured(id) {
		return GeneratorHandle{}, false
	}
	return GeneratorHandle{id: id, freq: c.freqs[id]}, true
}

// GCLK0 returns the handle of the generator that clocks the CPU.
func (c *Controller) GCLK0() GeneratorHandle {
	return GeneratorHandle{id: GCLK0, freq: c.freqs[GCLK0]}
}

// GCLK1 returns the handle of generator 1, which runs at 32 kHz when the DFLL48M is referenced
// to a 32 kHz oscillator. It reports false while generator 1 is not configured.
func (c *Controller) GCLK1() (GeneratorHandle, bool) {
	return c.Generator(GCLK1)
}

// ConfigureGenerator makes generator id divide src by divider. It reports false without touching
// the hardware if the generator is already configured. An out of range divider, an unknown
// generator or a source whose frequency cannot be resolved panics. The handle carries the integer
// quotient, so a generator divided below 1 Hz reports 0 Hz.
func (c *Controller) ConfigureGenerator(id GeneratorID, divider uint32, src Source, improveDutyCycle bool) (GeneratorHandle, bool) {
	c.owner()
	if id >= NumGenerators {
		panic(errors.Wrapf(ErrUnknownGenerator, "%d", uint8(id)))
	}
	if c.isConfigured(id) {
		return GeneratorHandle{}, false
	}

	freq := c.resolve(id, src)
	c.seq.configureGenerator(id, divider, src, improveDutyCycle)

	c.record(id, src, divider, freq/Hertz(divider))
	return GeneratorHandle{id: id, freq: c.freqs[id]}, true
}

// resolve returns the frequency src feeds into generator id.
func (c *Controller) resolve(id GeneratorID, src Source) Hertz {
	if src == SourceGCLKGEN1 {
		if id == GCLK1 {
			panic(errors.Wrap(ErrUnsupportedSource, "GCLK1 cannot be sourced from itself"))
		}
		if !c.isConfigured(GCLK1) {
			panic(errors.Wrapf(ErrUnsupportedSource, "%s sourced from GCLK1 before GCLK1 is configured", id))
		}
		return c.freqs[GCLK1]
	}
	freq := src.Frequency()
	if freq == 0 {
		panic(errors.Wrapf(ErrUnsupportedSource, "%s for %s", src, id))
	}
	return freq
}

// EnableChannel routes the generator behind h to channel ch and returns the frequency the channel
// now runs at. It reports false without touching the hardware if the channel was enabled before.
func (c *Controller) EnableChannel(ch ChannelID, h GeneratorHandle) (Hertz, bool) {
	c.owner()
	if ch >= NumChannels {
		panic(errors.Wrapf(ErrUnknownChannel, "%d on %s", uint8(ch), Family))
	}
	if c.used.Has(ch) {
		return 0, false
	}
	c.used = c.used.with(ch)
	c.routes[ch] = h.id

	c.seq.enableChannel(ch, h.id)
	return h.freq, true
}

// ConfigureStandby sets whether generator id keeps running in standby sleep. It may be called any
// number of times and is not tracked.
func (c *Controller) ConfigureStandby(id GeneratorID, enabled bool) {
	c.owner()
	if id >= NumGenerators {
		panic(errors.Wrapf(ErrUnknownGenerator, "%d", uint8(id)))
	}
	c.seq.configureStandby(id, enabled)
}

// Frequencies returns the frequency table. A zero entry is a generator that is not configured or
// runs below 1 Hz.
func (c *Controller) Frequencies() [NumGenerators]Hertz {
	return c.freqs
}

// Used returns the channels enabled so far.
func (c *Controller) Used() UsageSet {
	return c.used
}
