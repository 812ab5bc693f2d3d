package clock

import "fmt"

// Hertz is a frequency in cycles per second.
type Hertz uint32

func Hz(n uint32) Hertz  { return Hertz(n) }
func KHz(n uint32) Hertz { return Hertz(n * 1_000) }
func MHz(n uint32) Hertz { return Hertz(n * 1_000_000) }

const (
	OSC48M  Hertz = 48_000_000
	OSC8M   Hertz = 8_000_000
	OSC32K  Hertz = 32_768
	DPLL96M Hertz = 96_000_000
)

func (h Hertz) String() string {
	switch {
	case h != 0 && h%1_000_000 == 0:
		return fmt.Sprintf("%d MHz", h/1_000_000)
	case h != 0 && h%1_000 == 0:
		return fmt.Sprintf("%d kHz", h/1_000)
	default:
		return fmt.Sprintf("%d Hz", uint32(h))
	}
}
