package board

import (
	"github.com/pkg/errors"

	"omibyte.io/clocktree/chip"
	"omibyte.io/clocktree/clock"
)

// Report is the state of the clock tree after a plan was applied.
type Report struct {
	Chip        string
	Reference   clock.Reference
	Frequencies [clock.NumGenerators]clock.Hertz
	Channels    map[clock.ChannelID]clock.Hertz
	Used        clock.UsageSet
}

// Apply configures the plan's generators and channels on c. The controller must have been
// brought up with the plan's reference.
func (pl *Plan) Apply(c *clock.Controller) (*Report, error) {
	if c.Reference() != pl.Reference {
		return nil, errors.Errorf("controller runs on %s, plan needs %s", c.Reference(), pl.Reference)
	}

	for _, g := range pl.Generators {
		h, ok := c.ConfigureGenerator(g.ID, g.Divider, g.Source, g.ImproveDutyCycle)
		if !ok {
			return nil, errors.Errorf("%s is already configured", g.ID)
		}
		if h.Frequency() != g.Frequency {
			return nil, errors.Errorf("%s runs at %s, planned %s", g.ID, h.Frequency(), g.Frequency)
		}
		if g.Standby {
			c.ConfigureStandby(g.ID, true)
		}
	}

	report := &Report{
		Chip:      pl.Target.Series,
		Reference: pl.Reference,
		Channels:  make(map[clock.ChannelID]clock.Hertz, len(pl.Channels)),
	}
	for _, ch := range pl.Channels {
		h, ok := c.Generator(ch.Generator)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownRoute, "%s on %s", ch.ID, ch.Generator)
		}
		freq, ok := c.EnableChannel(ch.ID, h)
		if !ok {
			return nil, errors.Errorf("%s is already enabled", ch.ID)
		}
		report.Channels[ch.ID] = freq
	}

	report.Frequencies = c.Frequencies()
	report.Used = c.Used()
	return report, nil
}

// Bringup claims p, brings the clock tree up for the plan's reference and applies the plan.
func (pl *Plan) Bringup(p *chip.Peripherals) (*clock.Controller, *Report, error) {
	c, err := clock.New(p, pl.Reference)
	if err != nil {
		return nil, nil, err
	}
	report, err := pl.Apply(c)
	if err != nil {
		c.Free()
		return nil, nil, err
	}
	return c, report, nil
}
