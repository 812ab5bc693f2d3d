//go:build !samd11

package board_test

import (
	"errors"
	"strings"
	"testing"

	"omibyte.io/clocktree/board"
	"omibyte.io/clocktree/clock"
	"omibyte.io/clocktree/sim/simtest"
)

func plan(t *testing.T, path string) *board.Plan {
	t.Helper()
	p, err := board.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	pl, err := p.Plan()
	if err != nil {
		t.Fatal(err)
	}
	return pl
}

func TestBringup(t *testing.T) {
	pl := plan(t, "testdata/feather_m0.yaml")
	if pl.Name != "feather-m0" || pl.Reference != clock.ReferenceXOSC32K {
		t.Fatalf("plan = %s on %s", pl.Name, pl.Reference)
	}

	hw, p := simtest.Take(t)
	c, report, err := pl.Bringup(p)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Free()
	simtest.NoViolations(t, hw)

	wantGenerators := [clock.NumGenerators]clock.Hertz{
		clock.GCLK0: 48_000_000,
		clock.GCLK1: 32_768,
		clock.GCLK3: 8_000_000,
		clock.GCLK4: 8_192,
		clock.GCLK5: 1_024,
	}
	if report.Frequencies != wantGenerators {
		t.Errorf("frequencies = %v, want %v", report.Frequencies, wantGenerators)
	}

	wantChannels := map[clock.ChannelID]clock.Hertz{
		clock.SERCOM0Core: 48_000_000,
		clock.SERCOM1Core: 8_000_000,
		clock.SERCOMxSlow: 32_768,
		clock.RTC:         8_192,
		clock.WDT:         1_024,
		clock.ADC:         8_000_000,
		clock.EIC:         48_000_000,
	}
	for ch, want := range wantChannels {
		if got := report.Channels[ch]; got != want {
			t.Errorf("%s at %s, want %s", ch, got, want)
		}
		if !report.Used.Has(ch) {
			t.Errorf("%s not used", ch)
		}
		if got := clock.Hertz(hw.Frequency(hw.Channel(uint8(ch)).Generator)); got != want {
			t.Errorf("hardware runs %s at %s, want %s", ch, got, want)
		}
	}
	if n := report.Used.Len(); n != len(wantChannels)+1 {
		t.Errorf("%d channels used, want %d", n, len(wantChannels)+1)
	}

	if !hw.Generator(5).RunStandby {
		t.Error("GCLK5 does not run in standby")
	}
	if hw.Generator(3).RunStandby {
		t.Error("GCLK3 runs in standby")
	}
}

func TestGeneratorOrder(t *testing.T) {
	pl := plan(t, "testdata/qtpy_usb.yaml")

	var order []clock.GeneratorID
	for _, g := range pl.Generators {
		order = append(order, g.ID)
	}
	if len(order) != 2 || order[0] != clock.GCLK1 || order[1] != clock.GCLK5 {
		t.Fatalf("order = %v, want [GCLK1 GCLK5]", order)
	}

	hw, p := simtest.Take(t)
	c, report, err := pl.Bringup(p)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Free()
	simtest.NoViolations(t, hw)

	if got := report.Channels[clock.RTC]; got != 1_024 {
		t.Errorf("RTC at %s, want 1024 Hz", got)
	}
	if got := report.Channels[clock.USB]; got != 48_000_000 {
		t.Errorf("USB at %s, want 48 MHz", got)
	}
}

func TestApplyReferenceMismatch(t *testing.T) {
	pl := plan(t, "testdata/qtpy_usb.yaml")

	_, p := simtest.Take(t)
	c, err := clock.NewInternal8MHz(p)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Free()
	if _, err := pl.Apply(c); err == nil {
		t.Error("plan for usb applied to an 8 MHz controller")
	}
}

func TestTree(t *testing.T) {
	pl := plan(t, "testdata/feather_m0.yaml")
	b, err := pl.Tree().MarshalDOT("feather")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"XOSC32K", "OSCULP32K", "GCLK4", "RTC", "DFLL48"} {
		if !strings.Contains(string(b), want) {
			t.Errorf("missing %s in\n%s", want, b)
		}
	}
}

func TestPlanRejects(t *testing.T) {
	tests := []struct {
		name    string
		profile string
	}{
		{name: "unknown chip", profile: "chip: atsamd51j19a"},
		{name: "other family", profile: "chip: atsamd11c14a"},
		{name: "unknown reference", profile: "chip: atsamd21g18a\nreference: crystal"},
		{name: "GCLK0 reserved", profile: "chip: atsamd21g18a\ngenerators:\n  GCLK0: {source: OSC8M}"},
		{name: "GCLK1 reserved", profile: "chip: atsamd21g18a\nreference: osc32k\ngenerators:\n  GCLK1: {source: OSC8M}"},
		{name: "generator out of range", profile: "chip: atsamd21g18a\ngenerators:\n  GCLK9: {source: OSC8M}"},
		{name: "divider", profile: "chip: atsamd21g18a\ngenerators:\n  GCLK2: {source: OSC8M, divider: 32}"},
		{name: "GCLK1 divider", profile: "chip: atsamd21g18a\nreference: usb\ngenerators:\n  GCLK1: {source: OSCULP32K, divider: 65536}"},
		{name: "external input", profile: "chip: atsamd21g18a\ngenerators:\n  GCLK2: {source: GCLKIN}"},
		{name: "stopped oscillator", profile: "chip: atsamd21g18a\nreference: usb\ngenerators:\n  GCLK2: {source: OSC32K}"},
		{name: "stopped multiplier", profile: "chip: atsamd21g18a\nreference: osc8m\ngenerators:\n  GCLK2: {source: DFLL48M}"},
		{name: "GCLK1 not running", profile: "chip: atsamd21g18a\nreference: none\ngenerators:\n  GCLK3: {source: GCLKGEN1}"},
		{name: "GCLK1 from itself", profile: "chip: atsamd21g18a\nreference: none\ngenerators:\n  GCLK1: {source: GCLKGEN1}"},
		{name: "duplicate generator", profile: "chip: atsamd21g18a\ngenerators:\n  GCLK3: {source: OSC8M}\n  gclk3: {source: OSC8M}"},
		{name: "unknown channel", profile: "chip: atsamd21g18a\nchannels:\n  TC1_TC2: GCLK0"},
		{name: "unrouted channel", profile: "chip: atsamd21g18a\nchannels:\n  ADC: GCLK3"},
		{name: "reference channel", profile: "chip: atsamd21g18a\nreference: usb\nchannels:\n  DFLL48: GCLK0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := board.Load(strings.NewReader(tt.profile))
			if err != nil {
				t.Fatal(err)
			}
			if _, err := p.Plan(); !errors.Is(err, board.ErrInvalidProfile) {
				t.Errorf("err = %v, want %v", err, board.ErrInvalidProfile)
			}
		})
	}
}

func TestPlanBelowOneHertz(t *testing.T) {
	p, err := board.Load(strings.NewReader(`chip: atsamd21g18a
reference: usb
generators:
  GCLK1: {source: OSCULP32K, divider: 65535}
  GCLK5: {source: GCLKGEN1, divider: 2}
channels:
  RTC: GCLK1
  WDT: GCLK5
`))
	if err != nil {
		t.Fatal(err)
	}
	pl, err := p.Plan()
	if err != nil {
		t.Fatal(err)
	}

	hw, periph := simtest.Take(t)
	c, report, err := pl.Bringup(periph)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Free()
	simtest.NoViolations(t, hw)

	for _, id := range []clock.GeneratorID{clock.GCLK1, clock.GCLK5} {
		if h, ok := c.Generator(id); !ok || h.Frequency() != 0 {
			t.Errorf("Generator(%s) = %v, %v; want 0 Hz, true", id, h, ok)
		}
	}
	for _, ch := range []clock.ChannelID{clock.RTC, clock.WDT} {
		if !report.Used.Has(ch) || !hw.Channel(uint8(ch)).Enabled {
			t.Errorf("%s not enabled", ch)
		}
	}
	if gen := hw.Generator(1); gen.Divider != 65_535 {
		t.Errorf("GCLK1 = %+v", gen)
	}
}

func TestPlanRejectsLoop(t *testing.T) {
	p, err := board.LoadFile("testdata/pll_loop.yaml")
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Plan()
	if !errors.Is(err, board.ErrInvalidProfile) || !strings.Contains(err.Error(), clock.ErrClockLoop.Error()) {
		t.Errorf("err = %v, want a clock loop", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	if _, err := board.Load(strings.NewReader("chip: atsamd21g18a\nclocks: {}")); err == nil {
		t.Error("unknown key accepted")
	}
	if _, err := board.Load(strings.NewReader("")); !errors.Is(err, board.ErrInvalidProfile) {
		t.Errorf("empty profile: err = %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	p, err := board.Load(strings.NewReader("chip: atsamd21g18a\ngenerators:\n  GCLK3: {source: osc8m}"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Reference != "osc32k" {
		t.Errorf("reference = %q, want osc32k", p.Reference)
	}
	pl, err := p.Plan()
	if err != nil {
		t.Fatal(err)
	}
	if g := pl.Generators[0]; g.Divider != 1 || g.Frequency != 8_000_000 {
		t.Errorf("GCLK3 = %+v", g)
	}

	b, err := p.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "source: osc8m") {
		t.Errorf("marshalled profile:\n%s", b)
	}
}
