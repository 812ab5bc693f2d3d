package clock

import (
	"errors"
	"strings"
	"testing"
)

func TestTreeLoop(t *testing.T) {
	tree := NewTree()
	if err := tree.SetGenerator(GCLK1, SourceDFLL48M, 1, OSC48M); err != nil {
		t.Fatal(err)
	}
	// DFLL48M locked to GCLK1, which runs from DFLL48M.
	tree.SetChannel(DFLL48, GCLK1, OSC48M)

	if _, err := tree.Order(); !errors.Is(err, ErrClockLoop) {
		t.Fatalf("Order() err = %v, want %v", err, ErrClockLoop)
	}
}

func TestTreeSelfLoop(t *testing.T) {
	tree := NewTree()
	if err := tree.SetGenerator(GCLK1, SourceGCLKGEN1, 1, 0); !errors.Is(err, ErrClockLoop) {
		t.Errorf("SetGenerator err = %v, want %v", err, ErrClockLoop)
	}
}

func TestTreeOrderIsStable(t *testing.T) {
	build := func() *Tree {
		tree := NewTree()
		_ = tree.SetGenerator(GCLK4, SourceOSC8M, 1, OSC8M)
		_ = tree.SetGenerator(GCLK2, SourceOSC8M, 2, OSC8M/2)
		_ = tree.SetGenerator(GCLK3, SourceOSC32K, 1, OSC32K)
		tree.SetChannel(EIC, GCLK2, OSC8M/2)
		tree.SetChannel(WDT, GCLK3, OSC32K)
		return tree
	}

	var want []string
	for i := 0; i < 5; i++ {
		order, err := build().Order()
		if err != nil {
			t.Fatal(err)
		}
		var names []string
		for _, n := range order {
			names = append(names, n.Name)
		}
		if want == nil {
			want = names
			continue
		}
		if strings.Join(names, " ") != strings.Join(want, " ") {
			t.Fatalf("order %v, then %v", want, names)
		}
	}
	if len(want) != 7 {
		t.Errorf("order = %v, want 7 nodes", want)
	}
}

func TestMarshalDOT(t *testing.T) {
	tree := NewTree()
	_ = tree.SetGenerator(GCLK0, SourceDFLL48M, 1, OSC48M)
	_ = tree.SetGenerator(GCLK3, SourceOSC8M, 8, OSC8M/8)
	tree.SetChannel(ADC, GCLK3, OSC8M/8)

	b, err := tree.MarshalDOT("clocks")
	if err != nil {
		t.Fatal(err)
	}
	dot := string(b)
	for _, want := range []string{
		"digraph clocks {",
		"DFLL48M",
		"GCLK3",
		"ADC",
		"/8",
		"1 MHz",
		"shape=box",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %q in\n%s", want, dot)
		}
	}
}
