package chip

// CALIBRATION_BASE is the address of the NVM software calibration area.
const CALIBRATION_BASE uintptr = 0x806020

// Calibration is the factory programmed software calibration row. The row is 128 bits wide; only
// the word holding the oscillator trims is exposed.
type Calibration struct {
	word1 reg32
}

func newCalibration(bus Bus) Calibration {
	return Calibration{
		word1: reg32{bus, CALIBRATION_BASE + 0x4},
	}
}

// OSC32K returns the OSC32K calibration value (row bits 44:38).
func (c Calibration) OSC32K() uint8 {
	return uint8((c.word1.load() >> 6) & 0b1111111)
}

// DFLL48MCoarse returns the DFLL48M coarse calibration value (row bits 63:58).
func (c Calibration) DFLL48MCoarse() uint8 {
	return uint8((c.word1.load() >> 26) & 0b111111)
}
