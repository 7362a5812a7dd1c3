// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"
)

// SPIFrequency is the encoding of a SPI clock frequency in FLCOMP.
type SPIFrequency uint32

// SPI frequency encodings. 50MHz on version 1 and 30MHz on version 2 share
// the same value.
const (
	Freq20MHz      SPIFrequency = 0
	Freq33MHz      SPIFrequency = 1
	Freq48MHz      SPIFrequency = 2
	Freq50MHz30MHz SPIFrequency = 4
	Freq17MHz      SPIFrequency = 6
)

// Describe returns a human readable frequency for the descriptor version.
func (f SPIFrequency) Describe(v Version) string {
	switch f {
	case Freq20MHz:
		return "20MHz"
	case Freq33MHz:
		return "33MHz"
	case Freq48MHz:
		return "48MHz"
	case Freq50MHz30MHz:
		if v >= Version2 {
			return "30MHz"
		}
		return "50MHz"
	case Freq17MHz:
		return "17MHz"
	}
	return fmt.Sprintf("unknown<%x>MHz", uint32(f))
}

// ParseSPIFrequency maps a frequency in MHz to its encoding.
func ParseSPIFrequency(mhz int) (SPIFrequency, error) {
	switch mhz {
	case 17:
		return Freq17MHz, nil
	case 20:
		return Freq20MHz, nil
	case 30, 50:
		return Freq50MHz30MHz, nil
	case 33:
		return Freq33MHz, nil
	case 48:
		return Freq48MHz, nil
	}
	return 0, fmt.Errorf("invalid SPI frequency: %d", mhz)
}

// Density is the encoding of a flash chip size in FLCOMP.
type Density uint32

// Flash chip densities.
const (
	Density512KB  Density = 0
	Density1MB    Density = 1
	Density2MB    Density = 2
	Density4MB    Density = 3
	Density8MB    Density = 4
	Density16MB   Density = 5
	Density32MB   Density = 6
	Density64MB   Density = 7
	DensityUnused Density = 0xf
)

// Bytes returns the chip size, or 0 for unused and unknown values.
func (d Density) Bytes() uint64 {
	if d > Density64MB {
		return 0
	}
	return 512 << 10 << uint(d)
}

func (d Density) String() string {
	switch {
	case d == DensityUnused:
		return "UNUSED"
	case d == Density512KB:
		return "512KB"
	case d <= Density64MB:
		return fmt.Sprintf("%dMB", d.Bytes()>>20)
	}
	return fmt.Sprintf("unknown<%x>MB", uint32(d))
}

// ParseDensity maps a chip size to its encoding: 512 is in KiB, 0 means
// unused and everything else is in MiB.
func ParseDensity(size int) (Density, error) {
	switch size {
	case 512:
		return Density512KB, nil
	case 1:
		return Density1MB, nil
	case 2:
		return Density2MB, nil
	case 4:
		return Density4MB, nil
	case 8:
		return Density8MB, nil
	case 16:
		return Density16MB, nil
	case 32:
		return Density32MB, nil
	case 64:
		return Density64MB, nil
	case 0:
		return DensityUnused, nil
	}
	return 0, fmt.Errorf("unknown density: %d", size)
}

// Component is the flash component section.
type Component struct {
	FLCOMP uint32
	FLILL  uint32
	FLPB   uint32
}

func readClockFrequency(flcomp uint32) SPIFrequency {
	return SPIFrequency((flcomp >> 17) & 0x7)
}

// DualOutputFastReadSupported reports bit 30 of FLCOMP.
func (c *Component) DualOutputFastReadSupported() bool {
	return c.FLCOMP&(1<<30) != 0
}

// ReadIDStatusFrequency returns the read ID and read status clock frequency.
func (c *Component) ReadIDStatusFrequency() SPIFrequency {
	return SPIFrequency((c.FLCOMP >> 27) & 0x7)
}

// WriteEraseFrequency returns the write and erase clock frequency.
func (c *Component) WriteEraseFrequency() SPIFrequency {
	return SPIFrequency((c.FLCOMP >> 24) & 0x7)
}

// FastReadFrequency returns the fast read clock frequency.
func (c *Component) FastReadFrequency() SPIFrequency {
	return SPIFrequency((c.FLCOMP >> 21) & 0x7)
}

// FastReadSupported reports bit 20 of FLCOMP.
func (c *Component) FastReadSupported() bool {
	return c.FLCOMP&(1<<20) != 0
}

// ReadClockFrequency returns the read clock frequency, which also tells the
// descriptor version apart.
func (c *Component) ReadClockFrequency() SPIFrequency {
	return readClockFrequency(c.FLCOMP)
}

// Density returns the density of chip 1 or 2.
func (c *Component) Density(ctx Context, chip int) Density {
	width, mask := uint(3), uint32(0x7)
	if ctx.Version >= Version2 {
		width, mask = 4, 0xf
	}
	shift := uint(0)
	if chip == 2 {
		shift = width
	}
	return Density((c.FLCOMP >> shift) & mask)
}

// InvalidInstructions returns the four invalid instruction opcodes of FLILL.
func (c *Component) InvalidInstructions() [4]uint8 {
	return [4]uint8{
		uint8(c.FLILL),
		uint8(c.FLILL >> 8),
		uint8(c.FLILL >> 16),
		uint8(c.FLILL >> 24),
	}
}

// ProtectedRangeBase returns the flash partition boundary from FLPB.
func (c *Component) ProtectedRangeBase() uint32 {
	return (c.FLPB & 0xfff) << 12
}

// Component returns the component section of the image.
func (im *Image) Component() (*Component, error) {
	var c Component
	if err := readStruct(im.buf, im.Descriptor.ComponentBase(), &c); err != nil {
		return nil, fmt.Errorf("unable to read component section: %w", err)
	}
	return &c, nil
}

func (im *Image) updateFLCOMP(update func(flcomp uint32) uint32) error {
	offset := im.Descriptor.ComponentBase()
	flcomp, err := readUint32(im.buf, offset)
	if err != nil {
		return err
	}
	return writeUint32(im.buf, offset, update(flcomp))
}

// SetSPIFrequency sets the read ID/status, write/erase and fast read clock
// frequencies. The read clock frequency is left alone.
func (im *Image) SetSPIFrequency(freq SPIFrequency) error {
	return im.updateFLCOMP(func(flcomp uint32) uint32 {
		flcomp &^= 0x3fe00000
		flcomp |= uint32(freq) << 27
		flcomp |= uint32(freq) << 24
		flcomp |= uint32(freq) << 21
		return flcomp
	})
}

// SetEM100Mode makes the image usable with an EM100 emulator: dual output
// fast read is disabled and all frequencies drop to the version default.
func (im *Image) SetEM100Mode() error {
	freq := Freq17MHz
	if im.Context.Version == Version1 {
		freq = Freq20MHz
	}
	if err := im.updateFLCOMP(func(flcomp uint32) uint32 {
		return flcomp &^ (1 << 30)
	}); err != nil {
		return err
	}
	return im.SetSPIFrequency(freq)
}

// SetChipDensity sets the density of chip 1, chip 2 or both (chip 0). Only
// version 1 descriptors are supported.
func (im *Image) SetChipDensity(chip int, density Density) error {
	const op = "set chip density"
	switch im.Context.Version {
	case Version1:
		if density == Density32MB || density == Density64MB || density == DensityUnused {
			return &ErrUnsupported{Operation: op, Reason: fmt.Sprintf("density %v is not supported by %v", density, im.Context.Version)}
		}
	case Version2:
		return &ErrUnsupported{Operation: op, Reason: fmt.Sprintf("not implemented for %v", im.Context.Version)}
	default:
		return &ErrUnsupported{Operation: op, Reason: "unknown descriptor version"}
	}
	if chip < 0 || chip > 2 {
		return &ErrUnsupported{Operation: op, Reason: fmt.Sprintf("invalid chip %d", chip)}
	}

	return im.updateFLCOMP(func(flcomp uint32) uint32 {
		switch chip {
		case 1:
			flcomp &^= 0x7
		case 2:
			flcomp &^= 0x7 << 3
		default:
			flcomp &^= 0x3f
		}
		if chip == 0 || chip == 1 {
			flcomp |= uint32(density)
		}
		if chip == 0 || chip == 2 {
			flcomp |= uint32(density) << 3
		}
		return flcomp
	})
}
