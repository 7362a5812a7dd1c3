// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"
)

// Master is a bus master with its own FLMSTR access register.
type Master int

// Bus masters, in FLMSTR register order.
const (
	MasterHost Master = iota
	MasterME
	MasterGbE
	MasterPlatformData
	MasterEC
)

var masterNames = map[Master]string{
	MasterHost:         "Host CPU/BIOS",
	MasterME:           "Intel ME",
	MasterGbE:          "GbE",
	MasterPlatformData: "Platform Data",
	MasterEC:           "EC",
}

func (m Master) String() string {
	if s, ok := masterNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Master (%d)", int(m))
}

// Masters returns the bus masters present in this descriptor version.
func (ctx Context) Masters() []Master {
	if ctx.Version >= Version2 {
		return []Master{MasterHost, MasterME, MasterGbE, MasterPlatformData, MasterEC}
	}
	return []Master{MasterHost, MasterME, MasterGbE}
}

// Permissions applied by Lock. Bit n stands for region n.
const (
	lockHostRead  = 1<<RegionDescriptor | 1<<RegionBIOS | 1<<RegionGbE
	lockHostWrite = 1<<RegionBIOS | 1<<RegionGbE
	lockMERead    = 1<<RegionDescriptor | 1<<RegionME | 1<<RegionGbE
	lockMEWrite   = 1<<RegionME | 1<<RegionGbE
	lockGbE       = 1 << RegionGbE

	// Requester ID of the GbE master on version 1 descriptors.
	gbeRequesterIDV1 = 0x118

	unlockedV1    = 0xffff0000
	unlockedGbEV1 = 0x08080118
	unlockedV2    = 0xffffff00
	reservedV2    = 0xff
)

// MasterAccess is the decoded FLMSTR register of one master.
type MasterAccess struct {
	Master Master
	Raw    uint32
	// Read and Write are indexed by region.
	Read  []bool
	Write []bool
	// RequesterID only exists on version 1 descriptors.
	RequesterID    uint16
	HasRequesterID bool
}

// DecodeMasterAccess unpacks a FLMSTR register value.
func DecodeMasterAccess(ctx Context, m Master, flmstr uint32) MasterAccess {
	readShift, writeShift := ctx.accessShifts()
	a := MasterAccess{
		Master: m,
		Raw:    flmstr,
		Read:   make([]bool, ctx.RegionCount),
		Write:  make([]bool, ctx.RegionCount),
	}
	for i := 0; i < ctx.RegionCount; i++ {
		a.Read[i] = flmstr&(1<<(readShift+uint(i))) != 0
		a.Write[i] = flmstr&(1<<(writeShift+uint(i))) != 0
	}
	if ctx.Version < Version2 {
		a.RequesterID = uint16(flmstr & 0xffff)
		a.HasRequesterID = true
	}
	return a
}

func (im *Image) masterRegister(m Master) uint32 {
	return im.Descriptor.MasterBase() + uint32(m)*4
}

// MasterAccess returns the access permissions of every master.
func (im *Image) MasterAccess() ([]MasterAccess, error) {
	var result []MasterAccess
	for _, m := range im.Context.Masters() {
		flmstr, err := readUint32(im.buf, im.masterRegister(m))
		if err != nil {
			return nil, fmt.Errorf("unable to read FLMSTR%d: %w", int(m)+1, err)
		}
		result = append(result, DecodeMasterAccess(im.Context, m, flmstr))
	}
	return result, nil
}

func (im *Image) accessRegisters() ([3]uint32, error) {
	var regs [3]uint32
	for i, m := range []Master{MasterHost, MasterME, MasterGbE} {
		v, err := readUint32(im.buf, im.masterRegister(m))
		if err != nil {
			return regs, err
		}
		regs[i] = v
	}
	return regs, nil
}

func (im *Image) setAccessRegisters(regs [3]uint32) error {
	for i, m := range []Master{MasterHost, MasterME, MasterGbE} {
		if err := writeUint32(im.buf, im.masterRegister(m), regs[i]); err != nil {
			return err
		}
	}
	return nil
}

// Lock restricts the host, ME and GbE masters to the regions they need:
// the host reads the descriptor, BIOS and GbE and writes BIOS and GbE, the
// ME reads the descriptor, ME and GbE and writes ME and GbE, and GbE only
// accesses itself.
func (im *Image) Lock() error {
	regs, err := im.accessRegisters()
	if err != nil {
		return fmt.Errorf("unable to lock descriptor: %w", err)
	}
	readShift, writeShift := im.Context.accessShifts()

	if im.Context.Version >= Version2 {
		for i := range regs {
			regs[i] &= reservedV2
		}
	} else {
		regs[0] = 0
		regs[1] = 0
		regs[2] = gbeRequesterIDV1
	}

	regs[0] |= lockHostRead << readShift
	regs[0] |= lockHostWrite << writeShift
	regs[1] |= lockMERead << readShift
	regs[1] |= lockMEWrite << writeShift
	regs[2] |= lockGbE << readShift
	regs[2] |= lockGbE << writeShift

	return im.setAccessRegisters(regs)
}

// Unlock grants the host, ME and GbE masters read and write access to all
// regions.
func (im *Image) Unlock() error {
	regs, err := im.accessRegisters()
	if err != nil {
		return fmt.Errorf("unable to unlock descriptor: %w", err)
	}

	if im.Context.Version >= Version2 {
		for i := range regs {
			regs[i] = unlockedV2 | regs[i]&reservedV2
		}
	} else {
		regs = [3]uint32{unlockedV1, unlockedV1, unlockedGbEV1}
	}

	return im.setAccessRegisters(regs)
}
