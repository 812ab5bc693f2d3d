package chip

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// Layout of a register image. The APB-A bridge window holds PM, SYSCTRL and GCLK, followed by the
// NVMCTRL block, the calibration row and a private area that bus implementations may use for state
// that is not directly addressable, such as indirectly addressed register banks.
const (
	APBA_BASE uintptr = 0x40000000

	ImageSize          = 0x2000
	ImageNVMCTRLOffset = 0x1000
	ImageCalibOffset   = 0x1100
	ImagePrivateOffset = 0x1200
)

// ImageRegions maps the clock distribution registers onto a register image.
var ImageRegions = []Region{
	{Base: APBA_BASE, Size: 0x1000, Offset: 0},
	{Base: NVMCTRL_BASE, Size: 0x100, Offset: ImageNVMCTRLOffset},
	{Base: CALIBRATION_BASE, Size: 0x10, Offset: ImageCalibOffset},
}

// NewImage returns a zeroed, heap backed register image.
func NewImage() *MemoryBus {
	return NewMemoryBus(make([]byte, ImageSize), ImageRegions)
}

// MappedImage is a register image backed by a memory mapped file, so register state outlives the
// process that wrote it.
type MappedImage struct {
	*MemoryBus
	mm mmap.MMap
}

// MapImage maps the register image stored at path, creating a zeroed image if the file does not
// exist yet.
func MapImage(path string) (*MappedImage, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open register image")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat register image")
	}

	switch info.Size() {
	case 0:
		if err = f.Truncate(ImageSize); err != nil {
			return nil, errors.Wrap(err, "size register image")
		}
	case ImageSize:
	default:
		return nil, errors.Wrapf(ErrImageSize, "%s is %d bytes", path, info.Size())
	}

	mm, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't map %s", path)
	}

	return &MappedImage{
		MemoryBus: NewMemoryBus(mm, ImageRegions),
		mm:        mm,
	}, nil
}

// Flush writes the image back to its file.
func (m *MappedImage) Flush() error {
	return m.mm.Flush()
}

// Close flushes and unmaps the image. The image must not be used afterwards.
func (m *MappedImage) Close() error {
	if err := m.mm.Flush(); err != nil {
		return err
	}
	return m.mm.Unmap()
}
