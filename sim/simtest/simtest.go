// Package simtest wires simulated hardware into tests.
package simtest

import (
	"strings"
	"testing"

	"omibyte.io/clocktree/chip"
	"omibyte.io/clocktree/sim"
)

// Take powers on a simulated device and takes its register blocks. The blocks are released when
// the test finishes.
func Take(t testing.TB, options ...sim.Option) (*sim.Hardware, *chip.Peripherals) {
	t.Helper()

	hw := sim.New(options...)
	p, err := chip.Take(hw)
	if err != nil {
		t.Fatalf("take peripherals: %v", err)
	}
	t.Cleanup(func() {
		p.Unclaim()
		if err := p.Release(); err != nil {
			t.Errorf("release peripherals: %v", err)
		}
	})
	return hw, p
}

// NoViolations fails the test if hw recorded any protocol violation.
func NoViolations(t testing.TB, hw *sim.Hardware) {
	t.Helper()
	for _, err := range hw.Violations() {
		t.Errorf("violation: %v", err)
	}
}

// Writes returns the writes to register name, such as "GCLK.GENCTRL", in trace order.
func Writes(hw *sim.Hardware, name string) []sim.Access {
	var writes []sim.Access
	for _, a := range hw.Writes() {
		if a.Register() == name {
			writes = append(writes, a)
		}
	}
	return writes
}

// Sequence returns the registers written, in trace order, with consecutive duplicates collapsed.
func Sequence(hw *sim.Hardware) []string {
	var seq []string
	for _, a := range hw.Writes() {
		if n := len(seq); n > 0 && seq[n-1] == a.Register() {
			continue
		}
		seq = append(seq, a.Register())
	}
	return seq
}

// Before reports whether the first write to register a precedes the first write to register b.
// Registers that were never written are ordered last.
func Before(hw *sim.Hardware, a, b string) bool {
	first := func(name string) int {
		for i, access := range hw.Writes() {
			if access.Register() == name {
				return i
			}
		}
		return len(hw.Trace())
	}
	return first(a) < first(b)
}

// Dump formats the trace for failure messages.
func Dump(hw *sim.Hardware) string {
	var sb strings.Builder
	for _, a := range hw.Trace() {
		sb.WriteString(a.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
