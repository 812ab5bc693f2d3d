package clock

import (
	"errors"
	"testing"
)

func TestParseGenerator(t *testing.T) {
	tests := []struct {
		in   string
		want GeneratorID
		err  bool
	}{
		{in: "GCLK0", want: GCLK0},
		{in: "gclk7", want: GCLK7},
		{in: "GCLK8", err: true},
		{in: "GCLK", err: true},
		{in: "CLK1", err: true},
		{in: "GCLK-1", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGenerator(tt.in)
			if tt.err {
				if !errors.Is(err, ErrUnknownGenerator) {
					t.Errorf("err = %v, want %v", err, ErrUnknownGenerator)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseGenerator(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
			}
			if got.String() != "GCLK"+tt.in[4:] {
				t.Errorf("String() = %s", got)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	for src := SourceXOSC; src <= SourceDPLL96M; src++ {
		got, err := ParseSource(src.String())
		if err != nil || got != src {
			t.Errorf("ParseSource(%q) = %v, %v", src.String(), got, err)
		}
	}
	if _, err := ParseSource("dfll96m"); !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("err = %v, want %v", err, ErrUnsupportedSource)
	}
	if got, _ := ParseSource("osc8m"); got != SourceOSC8M {
		t.Errorf("ParseSource(osc8m) = %s", got)
	}
}

func TestParseChannel(t *testing.T) {
	for _, ch := range Channels() {
		got, err := ParseChannel(ch.String())
		if err != nil || got != ch {
			t.Errorf("ParseChannel(%q) = %v, %v", ch.String(), got, err)
		}
	}
	if _, err := ParseChannel("SERCOM9_CORE"); !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("err = %v, want %v", err, ErrUnknownChannel)
	}
	if got, _ := ParseChannel("sercom0_core"); got != SERCOM0Core {
		t.Errorf("ParseChannel(sercom0_core) = %s", got)
	}
}

func TestParseReference(t *testing.T) {
	for ref := ReferenceOSC32K; ref <= ReferenceOSC8M; ref++ {
		got, err := ParseReference(ref.String())
		if err != nil || got != ref {
			t.Errorf("ParseReference(%q) = %v, %v", ref.String(), got, err)
		}
	}
	if _, err := ParseReference("crystal"); err == nil {
		t.Error("ParseReference(crystal) succeeded")
	}
}

func TestUsageSet(t *testing.T) {
	var u UsageSet
	if u.Len() != 0 || len(u.Channels()) != 0 {
		t.Fatalf("empty set = %v", u.Channels())
	}

	u = u.with(EIC).with(DFLL48).with(EIC).with(63)
	if u.Len() != 3 {
		t.Errorf("Len() = %d, want 3", u.Len())
	}
	want := []ChannelID{DFLL48, EIC, 63}
	got := u.Channels()
	if len(got) != len(want) {
		t.Fatalf("Channels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Channels()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if !u.Has(EIC) || u.Has(RTC) || u.Has(64) {
		t.Error("Has() disagrees with the members")
	}
}

func TestMaxDivider(t *testing.T) {
	want := map[GeneratorID]uint32{
		GCLK0: 255,
		GCLK1: 65_535,
		GCLK2: 31,
		GCLK7: 255,
	}
	for id, max := range want {
		if got := id.MaxDivider(); got != max {
			t.Errorf("%s.MaxDivider() = %d, want %d", id, got, max)
		}
	}
}

func TestHertz(t *testing.T) {
	tests := []struct {
		in   Hertz
		want string
	}{
		{in: OSC48M, want: "48 MHz"},
		{in: KHz(500), want: "500 kHz"},
		{in: OSC32K, want: "32768 Hz"},
		{in: Hz(0), want: "0 Hz"},
		{in: MHz(8), want: "8 MHz"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Hertz(%d).String() = %q, want %q", uint32(tt.in), got, tt.want)
		}
	}
}
