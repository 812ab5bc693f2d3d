package targets

import (
	"testing"

	"github.com/pkg/errors"

	"omibyte.io/clocktree/clock"
)

func TestFind(t *testing.T) {
	tests := []struct {
		chip   string
		series string
		err    error
	}{
		{chip: "ATSAMD21G18A", series: "samd21"},
		{chip: "atsamd21e15a", series: "samd21"},
		{chip: "atsamd11c14a", series: "samd11"},
		{chip: "ATSAMD11D14AM", series: "samd11"},
		{chip: "atsamd51j19a", err: ErrUnknownChip},
	}

	for _, tt := range tests {
		t.Run(tt.chip, func(t *testing.T) {
			target, err := All().FindByChip(tt.chip)
			if tt.err != nil {
				if errors.Cause(err) != tt.err {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if target.Series != tt.series {
				t.Errorf("series = %s, want %s", target.Series, tt.series)
			}
		})
	}

	if _, err := All().FindBySeries("SAMD21"); err != nil {
		t.Error(err)
	}
	if _, err := All().FindBySeries("samd51"); errors.Cause(err) != ErrUnknownSeries {
		t.Errorf("err = %v, want %v", err, ErrUnknownSeries)
	}
}

func TestCurrentMatchesBuild(t *testing.T) {
	target := Current()
	if !target.Supported() {
		t.Fatalf("%s not supported by its own build", target.Series)
	}
	if len(target.Channels) != clock.NumChannels {
		t.Fatalf("%d channels listed, build has %d", len(target.Channels), clock.NumChannels)
	}
	for _, ch := range clock.Channels() {
		info, err := target.Channel(ch.String())
		if err != nil {
			t.Errorf("%s: %v", ch, err)
			continue
		}
		if info.ID != uint8(ch) {
			t.Errorf("%s has id %d, build uses %d", ch, info.ID, uint8(ch))
		}
	}
	for ref := clock.ReferenceOSC32K; ref <= clock.ReferenceOSC8M; ref++ {
		if !target.HasReference(ref) {
			t.Errorf("reference %s missing", ref)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, target := range All() {
		_, err := All().Lookup(target.Chips[0])
		switch {
		case target.Supported() && err != nil:
			t.Errorf("%s: %v", target.Chips[0], err)
		case !target.Supported() && errors.Cause(err) != ErrWrongFamily:
			t.Errorf("%s: err = %v, want %v", target.Chips[0], err, ErrWrongFamily)
		}
	}
}

func TestGenerators(t *testing.T) {
	samd11, err := All().FindBySeries("samd11")
	if err != nil {
		t.Fatal(err)
	}
	if !samd11.HasGenerator(clock.GCLK5) || samd11.HasGenerator(clock.GCLK6) {
		t.Errorf("samd11 has %d generators, want GCLK0 to GCLK5", samd11.Generators)
	}

	samd21, err := All().FindBySeries("samd21")
	if err != nil {
		t.Fatal(err)
	}
	if !samd21.HasGenerator(clock.GCLK7) {
		t.Error("samd21 lacks GCLK7")
	}
	if _, err := samd21.Channel("tcc0_tcc1"); err != nil {
		t.Error(err)
	}
	if _, err := samd21.Channel("TC1_TC2"); errors.Cause(err) != ErrUnknownChannel {
		t.Errorf("err = %v, want %v", err, ErrUnknownChannel)
	}
}
