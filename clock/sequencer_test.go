package clock

import (
	"testing"

	"omibyte.io/clocktree/chip"
	"omibyte.io/clocktree/sim"
	"omibyte.io/clocktree/sim/simtest"
)

func TestSequencerConfigureGenerator(t *testing.T) {
	for _, latency := range []int{0, 1, 5} {
		hw, p := simtest.Take(t, sim.WithLatency(latency))
		seq := sequencer{gclk: p.GCLK}

		seq.reset()
		seq.configureGenerator(GCLK4, 3, SourceOSC8M, true)
		seq.enableChannel(EIC, GCLK4)
		simtest.NoViolations(t, hw)

		want := []string{"GCLK.CTRL", "GCLK.GENDIV", "GCLK.GENCTRL", "GCLK.CLKCTRL"}
		got := simtest.Sequence(hw)
		if len(got) != len(want) {
			t.Fatalf("latency %d: sequence = %v, want %v", latency, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("latency %d: write %d = %s, want %s", latency, i, got[i], want[i])
			}
		}

		genctrl := chip.GCLK_GENCTRL_REG(simtest.Writes(hw, "GCLK.GENCTRL")[0].Value)
		if genctrl.GetID() != 4 || !genctrl.GetIDC() || !genctrl.GetOE() || genctrl.GetDIVSEL() {
			t.Errorf("latency %d: GENCTRL = %#x", latency, uint32(genctrl))
		}
		// OSC8M keeps its power-on prescaler of 8.
		if got := hw.Frequency(4); got != 333_333 {
			t.Errorf("latency %d: GCLK4 at %d Hz", latency, got)
		}
	}
}

func TestSequencerReset(t *testing.T) {
	hw, p := simtest.Take(t)
	seq := sequencer{gclk: p.GCLK}

	seq.configureGenerator(GCLK2, 2, SourceOSC8M, false)
	seq.enableChannel(WDT, GCLK2)
	seq.reset()
	simtest.NoViolations(t, hw)

	if hw.Generator(2).Enabled {
		t.Error("GCLK2 enabled after reset")
	}
	if hw.Channel(uint8(WDT)).Enabled {
		t.Error("WDT channel enabled after reset")
	}
	if gen := hw.Generator(0); !gen.Enabled || gen.Source != chip.GCLK_GENCTRL_REG_SRC_OSC8M {
		t.Errorf("GCLK0 = %+v after reset", gen)
	}
}
