package chip

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryBus(t *testing.T) {
	img := NewImage()

	tests := []struct {
		name   string
		addr   uintptr
		offset int
	}{
		{name: "PM", addr: PM_BASE + 0x18, offset: 0x418},
		{name: "GCLK", addr: GCLK_BASE + 0x4, offset: 0xc04},
		{name: "SYSCTRL", addr: SYSCTRL_BASE + 0x24, offset: 0x824},
		{name: "NVMCTRL", addr: NVMCTRL_BASE + 0x4, offset: ImageNVMCTRLOffset + 0x4},
		{name: "calibration", addr: CALIBRATION_BASE + 0x4, offset: ImageCalibOffset + 0x4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img.Store32(tt.addr, 0x11223344)
			b := img.Bytes()[tt.offset : tt.offset+4]
			if b[0] != 0x44 || b[3] != 0x11 {
				t.Errorf("image bytes = % x, want little endian", b)
			}
			if got := img.Load16(tt.addr + 2); got != 0x1122 {
				t.Errorf("Load16 = %#x, want 0x1122", got)
			}
			img.Store8(tt.addr+1, 0xff)
			if got := img.Load32(tt.addr); got != 0x1122ff44 {
				t.Errorf("Load32 = %#x, want 0x1122ff44", got)
			}
		})
	}
}

func TestMemoryBusUnmapped(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unmapped access did not panic")
		}
	}()
	NewImage().Load32(0x20000000)
}

func TestTake(t *testing.T) {
	bus := NewImage()

	p, err := Take(bus)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Take(bus); !errors.Is(err, ErrBusTaken) {
		t.Errorf("second Take: err = %v, want %v", err, ErrBusTaken)
	}

	if !p.Claim() {
		t.Fatal("Claim = false")
	}
	if p.Claim() {
		t.Error("claimed twice")
	}
	if err := p.Release(); !errors.Is(err, ErrPeripheralsClaimed) {
		t.Errorf("Release while claimed: err = %v, want %v", err, ErrPeripheralsClaimed)
	}

	p.Unclaim()
	if err := p.Release(); err != nil {
		t.Fatal(err)
	}
	p, err = Take(bus)
	if err != nil {
		t.Fatalf("Take after Release: %v", err)
	}
	if p.Bus() != bus {
		t.Error("Bus() is not the bus taken")
	}
	p.Release()
}

func TestAccessors(t *testing.T) {
	bus := NewImage()
	p, err := Take(bus)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Release()

	p.GCLK.GENDIV.Modify(func(gendiv *GCLK_GENDIV_REG) {
		gendiv.SetID(3)
		gendiv.SetDIV(0x1234)
	})
	if got := bus.Load32(GCLK_BASE + 0x8); got != 0x123403 {
		t.Errorf("GENDIV = %#x, want 0x123403", got)
	}
	if got := p.GCLK.GENDIV.Address(); got != GCLK_BASE+0x8 {
		t.Errorf("GENDIV at %#x", got)
	}

	p.GCLK.GENCTRL.Select(0x12)
	if got := bus.Load8(GCLK_BASE + 0x4); got != 0x2 {
		t.Errorf("GENCTRL selection = %#x, want the id masked to 4 bits", got)
	}
	p.GCLK.CLKCTRL.Select(0xff)
	if got := bus.Load8(GCLK_BASE + 0x2); got != 0x3f {
		t.Errorf("CLKCTRL selection = %#x, want the id masked to 6 bits", got)
	}

	var cpusel PM_CPUSEL_REG
	cpusel.SetCPUDIV(PM_CPUSEL_REG_CPUDIV_DIV4)
	p.PM.CPUSEL.Store(cpusel)
	if got := p.PM.CPUSEL.Load().GetCPUDIV(); got != PM_CPUSEL_REG_CPUDIV_DIV4 {
		t.Errorf("CPUDIV = %d", got)
	}

	bus.Store32(CALIBRATION_BASE+0x4, 0x4a<<6|0x22<<26)
	if p.CALIB.OSC32K() != 0x4a || p.CALIB.DFLL48MCoarse() != 0x22 {
		t.Errorf("calibration = %#x, %#x", p.CALIB.OSC32K(), p.CALIB.DFLL48MCoarse())
	}
}

func TestMapImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regs.img")

	img, err := MapImage(path)
	if err != nil {
		t.Fatal(err)
	}
	img.Store32(SYSCTRL_BASE+0x2c, 0xdeadbeef)
	if err := img.Close(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != ImageSize {
		t.Errorf("image is %d bytes, want %d", info.Size(), ImageSize)
	}

	img, err = MapImage(path)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	if got := img.Load32(SYSCTRL_BASE + 0x2c); got != 0xdeadbeef {
		t.Errorf("reopened image holds %#x", got)
	}
}

func TestMapImageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.img")
	if err := os.WriteFile(path, make([]byte, 16), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := MapImage(path); !errors.Is(err, ErrImageSize) {
		t.Errorf("err = %v, want %v", err, ErrImageSize)
	}
}
