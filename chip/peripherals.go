package chip

import (
	"sync"
	"sync/atomic"
)

// Peripherals are the register blocks that make up the clock distribution of one device. There is
// at most one Peripherals value per Bus at any time, see Take.
type Peripherals struct {
	GCLK    *GCLK_Type
	PM      *PM_Type
	SYSCTRL *SYSCTRL_Type
	NVMCTRL *NVMCTRL_Type
	CALIB   Calibration

	bus     Bus
	claimed atomic.Bool
}

var (
	takenMu sync.Mutex
	taken   = map[Bus]*Peripherals{}
)

// Take returns the register blocks reachable through bus. It fails with ErrBusTaken while a
// previously taken Peripherals value for the same bus has not been released. bus must be a
// comparable value, typically a pointer.
func Take(bus Bus) (*Peripherals, error) {
	takenMu.Lock()
	defer takenMu.Unlock()

	if _, ok := taken[bus]; ok {
		return nil, ErrBusTaken
	}

	p := &Peripherals{
		GCLK:    newGCLK(bus),
		PM:      newPM(bus),
		SYSCTRL: newSYSCTRL(bus),
		NVMCTRL: newNVMCTRL(bus),
		CALIB:   newCalibration(bus),
		bus:     bus,
	}
	taken[bus] = p
	return p, nil
}

// Release gives the register blocks back so that the bus can be taken again. It fails while a
// driver still holds a claim on p.
func (p *Peripherals) Release() error {
	if p.claimed.Load() {
		return ErrPeripheralsClaimed
	}

	takenMu.Lock()
	defer takenMu.Unlock()
	if taken[p.bus] == p {
		delete(taken, p.bus)
	}
	return nil
}

// Bus returns the bus the register blocks are reached through.
func (p *Peripherals) Bus() Bus {
	return p.bus
}

// Claim marks p as exclusively owned by one driver. It reports false if another driver already
// holds the claim.
func (p *Peripherals) Claim() bool {
	return p.claimed.CompareAndSwap(false, true)
}

// Unclaim drops the claim taken by Claim.
func (p *Peripherals) Unclaim() {
	p.claimed.Store(false)
}
