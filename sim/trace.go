package sim

import "fmt"

type Op uint8

const (
	Read Op = iota
	Write
)

func (o Op) String() string {
	if o == Write {
		return "W"
	}
	return "R"
}

// Access is one bus transaction seen by the device.
type Access struct {
	Op    Op
	Width uint8
	Addr  uintptr
	Value uint32
	// Ignored is set for writes the device dropped.
	Ignored bool
}

func (a Access) String() string {
	s := fmt.Sprintf("%s%-2d %-16s %#08x", a.Op, a.Width, registerName(a.Addr), a.Value)
	if a.Ignored {
		s += " (ignored)"
	}
	return s
}

// Register returns the name of the register the access targets.
func (a Access) Register() string {
	return registerName(a.Addr)
}

var registerNames = map[uintptr]string{
	gclkCTRL:        "GCLK.CTRL",
	gclkSTATUS:      "GCLK.STATUS",
	gclkCLKCTRL:     "GCLK.CLKCTRL",
	gclkGENCTRL:     "GCLK.GENCTRL",
	gclkGENDIV:      "GCLK.GENDIV",
	pmCPUSEL:        "PM.CPUSEL",
	pmAPBASEL:       "PM.APBASEL",
	pmAPBBSEL:       "PM.APBBSEL",
	pmAPBCSEL:       "PM.APBCSEL",
	pmAPBAMASK:      "PM.APBAMASK",
	sysctrlPCLKSR:   "SYSCTRL.PCLKSR",
	sysctrlXOSC32K:  "SYSCTRL.XOSC32K",
	sysctrlOSC32K:   "SYSCTRL.OSC32K",
	sysctrlOSC8M:    "SYSCTRL.OSC8M",
	sysctrlDFLLCTRL: "SYSCTRL.DFLLCTRL",
	sysctrlDFLLVAL:  "SYSCTRL.DFLLVAL",
	sysctrlDFLLMUL:  "SYSCTRL.DFLLMUL",
	nvmctrlCTRLB:    "NVMCTRL.CTRLB",
	calibWord1:      "CALIB[1]",
}

func registerName(addr uintptr) string {
	if name, ok := registerNames[addr]; ok {
		return name
	}
	return fmt.Sprintf("%#08x", addr)
}

func (h *Hardware) record(op Op, width uint8, addr uintptr, value uint32, ignored bool) {
	h.trace = append(h.trace, Access{
		Op:      op,
		Width:   width,
		Addr:    addr,
		Value:   value,
		Ignored: ignored,
	})
}

// Trace returns every access since the device was created or the trace was last reset.
func (h *Hardware) Trace() []Access {
	return h.trace
}

// Writes returns the trace filtered to writes.
func (h *Hardware) Writes() []Access {
	var writes []Access
	for _, a := range h.trace {
		if a.Op == Write {
			writes = append(writes, a)
		}
	}
	return writes
}

// WriteCount returns the number of stores the device has received since it was created.
func (h *Hardware) WriteCount() int {
	return h.writes
}

func (h *Hardware) ResetTrace() {
	h.trace = nil
}

// Violations returns the protocol violations recorded so far.
func (h *Hardware) Violations() []error {
	return h.violations
}
