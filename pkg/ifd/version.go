// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"
)

// Version is the flash descriptor format version.
type Version int

// Descriptor versions.
const (
	VersionUnknown Version = iota
	Version1
	Version2
)

func (v Version) String() string {
	switch v {
	case Version1:
		return "IFDv1"
	case Version2:
		return "IFDv2"
	}
	return fmt.Sprintf("Unknown Version (%d)", int(v))
}

// Number of region slots per version.
const (
	MaxRegionsV1 = 5
	MaxRegions   = 9
)

// Access bit positions within the FLMSTR registers.
const (
	flmstrReadShiftV1  = 16
	flmstrWriteShiftV1 = 24
	flmstrReadShiftV2  = 8
	flmstrWriteShiftV2 = 20
)

// Context carries everything that depends on the descriptor version. It is
// detected once per image and passed to every codec function.
type Context struct {
	Version     Version
	RegionCount int
}

// NewContext returns the context of a known descriptor version.
func NewContext(v Version) (Context, error) {
	switch v {
	case Version1:
		return Context{Version: v, RegionCount: MaxRegionsV1}, nil
	case Version2:
		return Context{Version: v, RegionCount: MaxRegions}, nil
	}
	return Context{}, fmt.Errorf("no context for descriptor version %v", v)
}

// DetectVersion infers the descriptor version. There is no version field, so
// the read clock frequency is used: it is hardcoded to 20MHz on version 1
// descriptors and to 17MHz on version 2.
func DetectVersion(image []byte, d *Descriptor) (Context, error) {
	flcomp, err := readUint32(image, d.ComponentBase())
	if err != nil {
		return Context{}, fmt.Errorf("unable to read component section: %w", err)
	}
	switch freq := readClockFrequency(flcomp); freq {
	case Freq20MHz:
		return NewContext(Version1)
	case Freq17MHz:
		return NewContext(Version2)
	default:
		return Context{}, &ErrUnrecognizedVersion{ReadFrequency: freq}
	}
}

func (ctx Context) baseMask() uint32 {
	if ctx.Version >= Version2 {
		return 0x7fff
	}
	return 0xfff
}

func (ctx Context) accessShifts() (read, write uint) {
	if ctx.Version >= Version2 {
		return flmstrReadShiftV2, flmstrWriteShiftV2
	}
	return flmstrReadShiftV1, flmstrWriteShiftV1
}

func (ctx Context) checkIndex(index int) error {
	if index < 0 || index >= ctx.RegionCount {
		return &ErrInvalidRegionIndex{Index: index, RegionCount: ctx.RegionCount}
	}
	return nil
}
