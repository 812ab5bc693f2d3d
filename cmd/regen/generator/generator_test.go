package generator

import (
	"errors"
	"os"
	"strings"
	"testing"

	"omibyte.io/clocktree/cmd/regen/svd"
)

func readDevice(t *testing.T) *svd.DeviceElement {
	t.Helper()
	device, err := svd.ReadFile("../testdata/ATSAMD21G18A_clocks.svd")
	if err != nil {
		t.Fatal(err)
	}
	return device
}

func TestGenerate(t *testing.T) {
	device := readDevice(t)

	g := New(device, "chip")
	if g.Filename() != "samd21.go" {
		t.Errorf("Filename() = %s", g.Filename())
	}

	out, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)

	for _, want := range []string{
		"// Code generated by regen from ATSAMD21G18A. DO NOT EDIT.",
		"package chip",
		"const GCLK_BASE uintptr = 0x40000c00",
		"const PM_BASE uintptr = 0x40000400",
		"type GCLK_Type struct",
		"func newGCLK(bus Bus) *GCLK_Type",
		"func (v GCLK_GENCTRL_REG) GetSRC() GCLK_GENCTRL_REG_SRC",
		"func (v *GCLK_CLKCTRL_REG) SetCLKEN(value bool)",
		"func (v PM_APBAMASK_REG) GetGCLK() bool",
		"GCLK_CLKCTRL_REG_ID_DFLL48",
		"func (r GCLK_STATUS) Load() GCLK_STATUS_REG",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("missing %q", want)
		}
	}

	// Read-only registers get no write accessors.
	for _, unwanted := range []string{
		"func (r GCLK_STATUS) Store(",
		"func (v *GCLK_STATUS_REG) SetSYNCBUSY(",
	} {
		if strings.Contains(src, unwanted) {
			t.Errorf("unexpected %q", unwanted)
		}
	}
}

func TestGenerateOnly(t *testing.T) {
	out, err := New(readDevice(t), "chip", "PM").Generate()
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)
	if !strings.Contains(src, "type PM_Type struct") {
		t.Error("PM missing")
	}
	if strings.Contains(src, "GCLK_Type") {
		t.Error("GCLK generated although only PM was requested")
	}

	if _, err := New(readDevice(t), "chip", "USB").Generate(); !errors.Is(err, ErrNoPeripherals) {
		t.Errorf("err = %v, want %v", err, ErrNoPeripherals)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	fname, err := New(readDevice(t), "regs").WriteFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "package regs") {
		t.Errorf("%s does not declare package regs", fname)
	}
}

func TestCleanIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "GENCTRL", want: "GENCTRL"},
		{in: "EVSYS_0", want: "EVSYS_0"},
		{in: "%s_CORE", want: "s_CORE"},
		{in: "DIV[%s]", want: "DIV"},
	}
	for _, tt := range tests {
		if got := cleanIdentifier(tt.in); got != tt.want {
			t.Errorf("cleanIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
