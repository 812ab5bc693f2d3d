package clock_test

import (
	"testing"

	"omibyte.io/clocktree/clock"
	"omibyte.io/clocktree/sim/simtest"
)

func TestEnableChannel(t *testing.T) {
	hw, c := newController(t, clock.ReferenceOSC32K)

	h, ok := c.ConfigureGenerator(clock.GCLK3, 6, clock.SourceDFLL48M, false)
	if !ok {
		t.Fatal("configure GCLK3")
	}

	freq, ok := c.EnableChannel(clock.SERCOM0Core, h)
	if !ok {
		t.Fatal("EnableChannel = false")
	}
	simtest.NoViolations(t, hw)
	if freq != 8_000_000 {
		t.Errorf("channel runs at %s, want 8 MHz", freq)
	}
	if !c.Used().Has(clock.SERCOM0Core) {
		t.Error("channel not marked used")
	}

	ch := hw.Channel(uint8(clock.SERCOM0Core))
	if !ch.Enabled || ch.Generator != uint8(clock.GCLK3) {
		t.Errorf("hardware channel = %+v, want enabled on GCLK3", ch)
	}

	used := c.Used()
	writes := hw.WriteCount()
	if _, ok := c.EnableChannel(clock.SERCOM0Core, c.GCLK0()); ok {
		t.Error("channel enabled twice")
	}
	if got := hw.WriteCount(); got != writes {
		t.Errorf("%d writes after rejected channel", got-writes)
	}
	if c.Used() != used {
		t.Errorf("used = %v, want %v", c.Used().Channels(), used.Channels())
	}
	if ch := hw.Channel(uint8(clock.SERCOM0Core)); ch.Generator != uint8(clock.GCLK3) {
		t.Errorf("channel rerouted to GCLK%d", ch.Generator)
	}
}

func TestEnableReferenceChannel(t *testing.T) {
	for _, ref := range []clock.Reference{clock.ReferenceOSC32K, clock.ReferenceXOSC32K, clock.ReferenceUSB, clock.ReferenceNone} {
		t.Run(ref.String(), func(t *testing.T) {
			hw, c := newController(t, ref)
			writes := hw.WriteCount()
			if _, ok := c.EnableChannel(clock.DFLL48, c.GCLK0()); ok {
				t.Error("DFLL48M reference channel enabled after bring-up")
			}
			if got := hw.WriteCount(); got != writes {
				t.Errorf("%d writes after rejected channel", got-writes)
			}
		})
	}

	// The 8 MHz path leaves the DFLL48M alone.
	_, c := newController(t, clock.ReferenceOSC8M)
	if _, ok := c.EnableChannel(clock.DFLL48, c.GCLK0()); !ok {
		t.Error("DFLL48 channel unavailable on the 8 MHz path")
	}
}

func TestEnableUnknownChannel(t *testing.T) {
	_, c := newController(t, clock.ReferenceOSC8M)
	mustPanic(t, clock.ErrUnknownChannel, func() {
		c.EnableChannel(clock.NumChannels, c.GCLK0())
	})
}

func TestTokens(t *testing.T) {
	hw, c := newController(t, clock.ReferenceOSC32K)

	adc, ok := clock.Enable[clock.ADCClock](c, c.GCLK0())
	if !ok {
		t.Fatal("Enable[ADCClock] = false")
	}
	if adc.Channel() != clock.ADC || adc.Frequency() != 48_000_000 {
		t.Errorf("token = %s at %s", adc.Channel(), adc.Frequency())
	}

	gclk1, ok := c.GCLK1()
	if !ok {
		t.Fatal("GCLK1 not configured by bring-up")
	}
	rtc, ok := c.RTC(gclk1)
	if !ok {
		t.Fatal("RTC = false")
	}
	if rtc.Channel() != clock.RTC || rtc.Frequency() != 32_768 {
		t.Errorf("token = %s at %s", rtc.Channel(), rtc.Frequency())
	}

	if _, ok := c.ADC(gclk1); ok {
		t.Error("second ADC token issued")
	}
	if _, ok := clock.Enable[clock.RTCClock](c, c.GCLK0()); ok {
		t.Error("second RTC token issued")
	}

	for _, ch := range []clock.ChannelID{clock.ADC, clock.RTC} {
		if !hw.Channel(uint8(ch)).Enabled {
			t.Errorf("%s not enabled in hardware", ch)
		}
	}
	simtest.NoViolations(t, hw)
}

func TestTree(t *testing.T) {
	_, c := newController(t, clock.ReferenceOSC32K)
	h, _ := c.ConfigureGenerator(clock.GCLK2, 4, clock.SourceGCLKGEN1, false)
	c.EnableChannel(clock.RTC, h)
	c.EnableChannel(clock.EIC, c.GCLK0())

	order, err := c.Tree().Order()
	if err != nil {
		t.Fatal(err)
	}

	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n.Name] = i
	}
	before := [][2]string{
		{"OSC32K", "GCLK1"},
		{"GCLK1", "DFLL48"},
		{"DFLL48", "DFLL48M"},
		{"DFLL48M", "GCLK0"},
		{"GCLK1", "GCLK2"},
		{"GCLK2", "RTC"},
		{"GCLK0", "EIC"},
	}
	for _, b := range before {
		i, ok := pos[b[0]]
		j, ok2 := pos[b[1]]
		if !ok || !ok2 {
			t.Errorf("missing %s or %s in %v", b[0], b[1], order)
			continue
		}
		if i >= j {
			t.Errorf("%s ordered after %s", b[0], b[1])
		}
	}

	for _, n := range order {
		if n.Name == "GCLK2" && n.Frequency != 8_192 {
			t.Errorf("GCLK2 at %s, want 8192 Hz", n.Frequency)
		}
	}
}

func TestTreeOpenLoop(t *testing.T) {
	_, c := newController(t, clock.ReferenceNone)
	order, err := c.Tree().Order()
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range order {
		if n.Kind == clock.KindChannel {
			t.Errorf("unexpected channel %s", n.Name)
		}
	}
	if len(order) != 2 {
		t.Errorf("tree = %v, want DFLL48M feeding GCLK0", order)
	}
}
