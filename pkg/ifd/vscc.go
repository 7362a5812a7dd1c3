// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"
)

// MaxVSCCEntries is the capacity of the VSCC table.
const MaxVSCCEntries = 8

// VSCCEntry describes the SPI parameters of one flash chip model.
type VSCCEntry struct {
	JID  uint32
	VSCC uint32
}

// VendorID returns the SPI vendor id.
func (e VSCCEntry) VendorID() uint8 {
	return uint8(e.JID)
}

// DeviceID returns the two SPI device id bytes.
func (e VSCCEntry) DeviceID() (uint8, uint8) {
	return uint8(e.JID >> 8), uint8(e.JID >> 16)
}

// EraseParams holds the half of a VSCC register that applies to either the
// upper or the lower flash partition.
type EraseParams struct {
	EraseOpcode        uint8
	WriteEnableOpcode  uint8
	WriteStatusRequire bool
	WriteGranularity   uint
	BlockEraseSize     string
}

var blockEraseSizes = [4]string{"256 Byte", "4KB", "8KB", "64KB"}

func decodeEraseParams(v uint16) EraseParams {
	p := EraseParams{
		EraseOpcode:        uint8(v >> 8),
		WriteEnableOpcode:  0x50,
		WriteStatusRequire: v&(1<<3) != 0,
		WriteGranularity:   1,
		BlockEraseSize:     blockEraseSizes[v&0x3],
	}
	if v&(1<<4) != 0 {
		p.WriteEnableOpcode = 0x06
	}
	if v&(1<<2) != 0 {
		p.WriteGranularity = 64
	}
	return p
}

// Upper returns the parameters of the upper flash partition.
func (e VSCCEntry) Upper() EraseParams {
	return decodeEraseParams(uint16(e.VSCC >> 16))
}

// Lower returns the parameters of the lower flash partition.
func (e VSCCEntry) Lower() EraseParams {
	return decodeEraseParams(uint16(e.VSCC))
}

// VSCCTable returns the VSCC table. VTL counts dwords, two per entry.
func (im *Image) VSCCTable() ([]VSCCEntry, error) {
	n := im.Descriptor.VSCCTableLength() >> 1
	if n > MaxVSCCEntries {
		n = MaxVSCCEntries
	}
	entries := make([]VSCCEntry, n)
	if n == 0 {
		return entries, nil
	}
	if err := readStruct(im.buf, im.Descriptor.VSCCTableBase(), entries); err != nil {
		return nil, fmt.Errorf("unable to read VSCC table: %w", err)
	}
	return entries, nil
}

// PCHStraps are the PCH soft straps.
type PCHStraps [18]uint32

// ProcessorStraps are the processor soft straps.
type ProcessorStraps [8]uint32

// PCHStraps returns the PCH strap section.
func (im *Image) PCHStraps() (*PCHStraps, error) {
	var s PCHStraps
	if err := readStruct(im.buf, im.Descriptor.PCHStrapBase(), &s); err != nil {
		return nil, fmt.Errorf("unable to read PCH straps: %w", err)
	}
	return &s, nil
}

// ProcessorStraps returns the processor strap section.
func (im *Image) ProcessorStraps() (*ProcessorStraps, error) {
	var s ProcessorStraps
	if err := readStruct(im.buf, im.Descriptor.ProcessorStrapBase(), &s); err != nil {
		return nil, fmt.Errorf("unable to read processor straps: %w", err)
	}
	return &s, nil
}

// OEMSection returns a copy of the OEM section.
func (im *Image) OEMSection() ([]byte, error) {
	oem := make([]byte, OEMSectionSize)
	if err := readStruct(im.buf, OEMSectionOffset, oem); err != nil {
		return nil, fmt.Errorf("unable to read OEM section: %w", err)
	}
	return oem, nil
}
