package clock_test

import (
	"testing"

	"omibyte.io/clocktree/chip"
	"omibyte.io/clocktree/clock"
	"omibyte.io/clocktree/sim"
	"omibyte.io/clocktree/sim/simtest"
)

func TestConfigureGenerator(t *testing.T) {
	tests := []struct {
		name    string
		ref     clock.Reference
		id      clock.GeneratorID
		divider uint32
		src     clock.Source
		want    clock.Hertz
	}{
		{name: "OSC8M undivided", ref: clock.ReferenceOSC32K, id: clock.GCLK2, divider: 1, src: clock.SourceOSC8M, want: 8_000_000},
		{name: "DFLL48M halved", ref: clock.ReferenceOSC32K, id: clock.GCLK3, divider: 2, src: clock.SourceDFLL48M, want: 24_000_000},
		{name: "GCLK1 undivided", ref: clock.ReferenceOSC32K, id: clock.GCLK2, divider: 1, src: clock.SourceGCLKGEN1, want: 32_768},
		{name: "GCLK1 quartered", ref: clock.ReferenceXOSC32K, id: clock.GCLK4, divider: 4, src: clock.SourceGCLKGEN1, want: 8_192},
		{name: "ultra low power", ref: clock.ReferenceOSC8M, id: clock.GCLK5, divider: 32, src: clock.SourceOSCULP32K, want: 1_024},
		{name: "GCLK1 maximum divider", ref: clock.ReferenceOSC8M, id: clock.GCLK1, divider: 65_535, src: clock.SourceOSC8M, want: 122},
		{name: "GCLK1 below 1 Hz", ref: clock.ReferenceUSB, id: clock.GCLK1, divider: 65_535, src: clock.SourceOSCULP32K, want: 0},
		{name: "GCLK2 maximum divider", ref: clock.ReferenceOSC8M, id: clock.GCLK2, divider: 31, src: clock.SourceOSC8M, want: 258_064},
		{name: "GCLK7 maximum divider", ref: clock.ReferenceOSC8M, id: clock.GCLK7, divider: 255, src: clock.SourceOSC8M, want: 31_372},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hw, c := newController(t, tt.ref)

			if _, ok := c.Generator(tt.id); ok {
				t.Fatalf("%s configured before ConfigureGenerator", tt.id)
			}

			h, ok := c.ConfigureGenerator(tt.id, tt.divider, tt.src, false)
			if !ok {
				t.Fatalf("ConfigureGenerator(%s) = false", tt.id)
			}
			simtest.NoViolations(t, hw)

			if h.ID() != tt.id || h.Frequency() != tt.want {
				t.Errorf("handle = %s at %s, want %s at %s", h.ID(), h.Frequency(), tt.id, tt.want)
			}
			if got, ok := c.Generator(tt.id); !ok || got != h {
				t.Errorf("Generator(%s) = %v, %v; want %v, true", tt.id, got, ok, h)
			}
			if got := c.Frequencies()[tt.id]; got != tt.want {
				t.Errorf("frequency table holds %s, want %s", got, tt.want)
			}

			gen := hw.Generator(uint8(tt.id))
			if !gen.Enabled || gen.DivSel || uint32(gen.Divider) != tt.divider {
				t.Errorf("hardware generator = %+v", gen)
			}
			if gen.Source != chip.GCLK_GENCTRL_REG_SRC(tt.src) {
				t.Errorf("hardware source = %s, want %s", sim.SourceName(gen.Source), tt.src)
			}
			if got := clock.Hertz(hw.Frequency(uint8(tt.id))); got != tt.want {
				t.Errorf("hardware runs %s at %s, want %s", tt.id, got, tt.want)
			}

			writes := simtest.Writes(hw, "GCLK.GENCTRL")
			genctrl := chip.GCLK_GENCTRL_REG(writes[len(writes)-1].Value)
			if !genctrl.GetOE() {
				t.Error("output not enabled")
			}
		})
	}
}

func TestConfigureGeneratorTwice(t *testing.T) {
	hw, c := newController(t, clock.ReferenceOSC32K)

	first, ok := c.ConfigureGenerator(clock.GCLK3, 4, clock.SourceOSC8M, false)
	if !ok {
		t.Fatal("first ConfigureGenerator = false")
	}
	freqs := c.Frequencies()
	writes := hw.WriteCount()

	if _, ok := c.ConfigureGenerator(clock.GCLK3, 1, clock.SourceDFLL48M, true); ok {
		t.Error("second ConfigureGenerator = true")
	}
	if _, ok := c.ConfigureGenerator(clock.GCLK0, 1, clock.SourceOSC8M, false); ok {
		t.Error("GCLK0 reconfigured after bring-up")
	}
	if _, ok := c.ConfigureGenerator(clock.GCLK1, 1, clock.SourceOSC8M, false); ok {
		t.Error("GCLK1 reconfigured after bring-up")
	}

	if got := hw.WriteCount(); got != writes {
		t.Errorf("%d writes after rejected configuration", got-writes)
	}
	if c.Frequencies() != freqs {
		t.Errorf("frequency table changed to %v", c.Frequencies())
	}
	if h, _ := c.Generator(clock.GCLK3); h != first {
		t.Errorf("Generator(GCLK3) = %v, want %v", h, first)
	}
}

func TestConfigureGeneratorRejects(t *testing.T) {
	tests := []struct {
		name    string
		ref     clock.Reference
		id      clock.GeneratorID
		divider uint32
		src     clock.Source
		err     error
	}{
		{name: "zero divider", ref: clock.ReferenceOSC8M, id: clock.GCLK3, divider: 0, src: clock.SourceOSC8M, err: clock.ErrInvalidDivider},
		{name: "GCLK1 divider", ref: clock.ReferenceOSC8M, id: clock.GCLK1, divider: 65_536, src: clock.SourceOSC8M, err: clock.ErrInvalidDivider},
		{name: "GCLK2 divider", ref: clock.ReferenceOSC8M, id: clock.GCLK2, divider: 32, src: clock.SourceOSC8M, err: clock.ErrInvalidDivider},
		{name: "GCLK3 divider", ref: clock.ReferenceOSC8M, id: clock.GCLK3, divider: 256, src: clock.SourceOSC8M, err: clock.ErrInvalidDivider},
		{name: "external input", ref: clock.ReferenceOSC32K, id: clock.GCLK2, divider: 1, src: clock.SourceGCLKIN, err: clock.ErrUnsupportedSource},
		{name: "external crystal", ref: clock.ReferenceOSC32K, id: clock.GCLK2, divider: 1, src: clock.SourceXOSC, err: clock.ErrUnsupportedSource},
		{name: "GCLK1 unconfigured", ref: clock.ReferenceOSC8M, id: clock.GCLK2, divider: 1, src: clock.SourceGCLKGEN1, err: clock.ErrUnsupportedSource},
		{name: "GCLK1 from itself", ref: clock.ReferenceUSB, id: clock.GCLK1, divider: 1, src: clock.SourceGCLKGEN1, err: clock.ErrUnsupportedSource},
		{name: "unknown generator", ref: clock.ReferenceOSC8M, id: clock.NumGenerators, divider: 1, src: clock.SourceOSC8M, err: clock.ErrUnknownGenerator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hw, c := newController(t, tt.ref)
			writes := hw.WriteCount()

			mustPanic(t, tt.err, func() {
				c.ConfigureGenerator(tt.id, tt.divider, tt.src, false)
			})

			if got := hw.WriteCount(); got != writes {
				t.Errorf("%d writes before panicking", got-writes)
			}
			if _, ok := c.Generator(tt.id); ok && tt.id > clock.GCLK1 {
				t.Errorf("%s recorded as configured", tt.id)
			}
		})
	}
}

func TestConfigureGeneratorBelowOneHertz(t *testing.T) {
	hw, c := newController(t, clock.ReferenceOSC8M)

	h, ok := c.ConfigureGenerator(clock.GCLK1, 65_535, clock.SourceOSC32K, false)
	if !ok {
		t.Fatal("ConfigureGenerator(GCLK1, 65535) = false")
	}
	if h.ID() != clock.GCLK1 || h.Frequency() != 0 {
		t.Errorf("handle = %s at %s, want GCLK1 at 0 Hz", h.ID(), h.Frequency())
	}
	if got, ok := c.Generator(clock.GCLK1); !ok || got != h {
		t.Errorf("Generator(GCLK1) = %v, %v; want %v, true", got, ok, h)
	}
	if gen := hw.Generator(uint8(clock.GCLK1)); !gen.Enabled || gen.Divider != 65_535 {
		t.Errorf("hardware generator = %+v", gen)
	}

	writes := hw.WriteCount()
	if _, ok := c.ConfigureGenerator(clock.GCLK1, 1, clock.SourceOSC8M, false); ok {
		t.Error("GCLK1 configured twice")
	}
	if got := hw.WriteCount(); got != writes {
		t.Errorf("%d writes after rejected configuration", got-writes)
	}

	// Dividing it further is legal too.
	if h, ok := c.ConfigureGenerator(clock.GCLK2, 2, clock.SourceGCLKGEN1, false); !ok || h.Frequency() != 0 {
		t.Errorf("GCLK2 from GCLK1 = %v, %v", h, ok)
	}
}

func TestConfigureStandby(t *testing.T) {
	hw, c := newController(t, clock.ReferenceOSC32K)
	if _, ok := c.ConfigureGenerator(clock.GCLK2, 1, clock.SourceOSC32K, false); !ok {
		t.Fatal("configure GCLK2")
	}
	hw.ResetTrace()

	c.ConfigureStandby(clock.GCLK2, true)
	simtest.NoViolations(t, hw)

	writes := simtest.Writes(hw, "GCLK.GENCTRL")
	if len(writes) != 2 {
		t.Fatalf("GENCTRL written %d times, want 2\n%s", len(writes), simtest.Dump(hw))
	}
	if writes[0].Width != 8 || writes[0].Value != uint32(clock.GCLK2) {
		t.Errorf("selection = %s, want an 8-bit write of the generator id", writes[0])
	}
	if writes[1].Width != 32 {
		t.Errorf("update = %s, want a 32-bit write", writes[1])
	}

	gen := hw.Generator(uint8(clock.GCLK2))
	if !gen.RunStandby || !gen.Enabled || gen.Source != chip.GCLK_GENCTRL_REG_SRC_OSC32K {
		t.Errorf("hardware generator = %+v", gen)
	}

	// Not tracked, so it can be undone.
	c.ConfigureStandby(clock.GCLK2, false)
	if hw.Generator(uint8(clock.GCLK2)).RunStandby {
		t.Error("standby still enabled")
	}
	if other := hw.Generator(uint8(clock.GCLK1)); other.RunStandby {
		t.Errorf("GCLK1 = %+v, touched by GCLK2 standby", other)
	}
}

func TestConfigureStandbyUnknownGenerator(t *testing.T) {
	hw, c := newController(t, clock.ReferenceOSC8M)
	writes := hw.WriteCount()

	for _, id := range []clock.GeneratorID{clock.NumGenerators, 9, 15} {
		mustPanic(t, clock.ErrUnknownGenerator, func() {
			c.ConfigureStandby(id, true)
		})
	}
	if got := hw.WriteCount(); got != writes {
		t.Errorf("%d writes before panicking", got-writes)
	}
}
