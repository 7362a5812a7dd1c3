// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ifd reads and rewrites the Intel Flash Descriptor (IFD) of a
// flash image: the region map, the master access permissions and the flash
// component parameters.
package ifd

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/linuxboot/ifdtool/pkg/check"
	"github.com/linuxboot/ifdtool/pkg/log"
	"github.com/xaionaro-go/bytesextra"
)

// Signature is the value of FLVALSIG, the first word of the descriptor.
const Signature uint32 = 0x0ff0a55a

const (
	// HeaderSize is the size of FLVALSIG and the three FLMAP registers.
	HeaderSize = 16

	// FLUMAP1 lives at the end of the descriptor, 0xefc bytes into the
	// image when the signature is at 0x10.
	flumap1Offset = 0xeec

	// OEMSectionOffset is the image offset of the OEM section.
	OEMSectionOffset = 0xf00
	// OEMSectionSize is the size of the OEM section.
	OEMSectionSize = 0x40
)

// FindDescriptor scans the image at 4-byte aligned offsets for the flash
// descriptor signature and returns its offset.
func FindDescriptor(image []byte) (int, error) {
	for offset := 0; offset+HeaderSize <= len(image); offset += 4 {
		if binary.LittleEndian.Uint32(image[offset:]) == Signature {
			return offset, nil
		}
	}
	return -1, &ErrDescriptorNotFound{ImageSize: len(image)}
}

// Descriptor is the descriptor map: the registers pointing to all other
// descriptor sections. Section bases are offsets from the start of the image.
type Descriptor struct {
	Offset  uint32
	FLMAP0  uint32
	FLMAP1  uint32
	FLMAP2  uint32
	FLUMAP1 uint32
}

// ParseDescriptor locates and decodes the descriptor map of the image.
func ParseDescriptor(image []byte) (*Descriptor, error) {
	offset, err := FindDescriptor(image)
	if err != nil {
		return nil, err
	}
	d := Descriptor{Offset: uint32(offset)}
	var header struct {
		FLVALSIG uint32
		FLMAP0   uint32
		FLMAP1   uint32
		FLMAP2   uint32
	}
	if err := readStruct(image, d.Offset, &header); err != nil {
		return nil, fmt.Errorf("unable to read descriptor map: %w", err)
	}
	d.FLMAP0, d.FLMAP1, d.FLMAP2 = header.FLMAP0, header.FLMAP1, header.FLMAP2

	// Truncated images may end before the upper map; there is just no VSCC
	// table then.
	if v, err := readUint32(image, d.Offset+flumap1Offset); err == nil {
		d.FLUMAP1 = v
	} else {
		log.Debugf("no FLUMAP1 in image: %v", err)
	}
	return &d, nil
}

func sectionBase(v uint32) uint32 {
	return (v & 0xff) << 4
}

// ComponentBase returns FCBA, the offset of the component section.
func (d *Descriptor) ComponentBase() uint32 {
	return sectionBase(d.FLMAP0)
}

// NumberOfComponents returns the number of flash chips (NC + 1).
func (d *Descriptor) NumberOfComponents() uint32 {
	return (d.FLMAP0>>8)&0x3 + 1
}

// RegionBase returns FRBA, the offset of the region section.
func (d *Descriptor) RegionBase() uint32 {
	return sectionBase(d.FLMAP0 >> 16)
}

// MasterBase returns FMBA, the offset of the master section.
func (d *Descriptor) MasterBase() uint32 {
	return sectionBase(d.FLMAP1)
}

// PCHStrapBase returns FPSBA, the offset of the PCH strap section.
func (d *Descriptor) PCHStrapBase() uint32 {
	return sectionBase(d.FLMAP1 >> 16)
}

// ProcessorStrapBase returns FMSBA, the offset of the processor strap section.
func (d *Descriptor) ProcessorStrapBase() uint32 {
	return sectionBase(d.FLMAP2)
}

// VSCCTableBase returns VTBA, the offset of the VSCC table.
func (d *Descriptor) VSCCTableBase() uint32 {
	return sectionBase(d.FLUMAP1)
}

// VSCCTableLength returns VTL, the length of the VSCC table in dwords.
func (d *Descriptor) VSCCTableLength() uint32 {
	return (d.FLUMAP1 >> 8) & 0xff
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("Descriptor{Offset=%#x, FLMAP0=%#08x, FLMAP1=%#08x, FLMAP2=%#08x, FLUMAP1=%#08x}",
		d.Offset, d.FLMAP0, d.FLMAP1, d.FLMAP2, d.FLUMAP1)
}

func readUint32(b []byte, offset uint32) (uint32, error) {
	if err := check.Field(b, uint64(offset), 4); err != nil {
		return 0, fmt.Errorf("unable to read register at %#x: %w", offset, err)
	}
	return binary.LittleEndian.Uint32(b[offset:]), nil
}

func writeUint32(b []byte, offset, value uint32) error {
	if err := check.Field(b, uint64(offset), 4); err != nil {
		return fmt.Errorf("unable to write register at %#x: %w", offset, err)
	}
	binary.LittleEndian.PutUint32(b[offset:], value)
	return nil
}

// readStruct decodes a fixed-size little-endian structure at offset.
func readStruct(b []byte, offset uint32, data interface{}) error {
	if err := check.Field(b, uint64(offset), uint64(binary.Size(data))); err != nil {
		return err
	}
	r := bytesextra.NewReadWriteSeeker(b)
	if _, err := r.Seek(int64(offset), io.SeekStart); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, data)
}
