// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"

	"github.com/linuxboot/ifdtool/pkg/bytes"
	"golang.org/x/text/cases"
)

// Region indexes. This also corresponds to their slot in the region section.
const (
	RegionDescriptor = iota
	RegionBIOS
	RegionME
	RegionGbE
	RegionPlatformData
	RegionReserved1
	RegionReserved2
	RegionReserved3
	RegionEC
)

const (
	// RegionBlockSize is the granularity of region bases and limits.
	RegionBlockSize = 0x1000

	// Only FLREG0-FLREG4 can be written.
	encodableRegions = 5
)

// Region is the placement of one flash region. Limit is the last byte of the
// region. A region with Limit below Base is disabled and has Size 0.
type Region struct {
	Index int
	Base  uint32
	Limit uint32
	Size  uint32
}

// NewRegion returns a region spanning [base, limit].
func NewRegion(index int, base, limit uint32) Region {
	r := Region{Index: index, Base: base, Limit: limit}
	if limit >= base {
		r.Size = limit - base + 1
	}
	return r
}

// Enabled reports whether the region covers any byte.
func (r Region) Enabled() bool {
	return r.Size > 0
}

// Range returns the bytes covered by the region.
func (r Region) Range() bytes.Range {
	if r.Size == 0 {
		return bytes.Range{Offset: uint64(r.Base)}
	}
	return bytes.InclusiveRange(uint64(r.Base), uint64(r.Limit))
}

func (r Region) String() string {
	return fmt.Sprintf("[%#08x, %#08x]", r.Base, r.Limit)
}

var regionCatalog = [MaxRegions]struct {
	name      string
	shortName string
	filename  string
}{
	{"Flash Descriptor", "fd", "flashregion_0_flashdescriptor.bin"},
	{"BIOS", "bios", "flashregion_1_bios.bin"},
	{"Intel ME", "me", "flashregion_2_intel_me.bin"},
	{"GbE", "gbe", "flashregion_3_gbe.bin"},
	{"Platform Data", "pd", "flashregion_4_platform_data.bin"},
	{"Reserved", "res1", "flashregion_5_reserved.bin"},
	{"Reserved", "res2", "flashregion_6_reserved.bin"},
	{"Reserved", "res3", "flashregion_7_reserved.bin"},
	{"EC", "ec", "flashregion_8_ec.bin"},
}

func inCatalog(index int) bool {
	return index >= 0 && index < len(regionCatalog)
}

// RegionName returns the long name of the region.
func RegionName(index int) string {
	if !inCatalog(index) {
		return fmt.Sprintf("Unknown Region (%d)", index)
	}
	return regionCatalog[index].name
}

// RegionShortName returns the name used in layout files.
func RegionShortName(index int) string {
	if !inCatalog(index) {
		return fmt.Sprintf("region%d", index)
	}
	return regionCatalog[index].shortName
}

// RegionFilename returns the file name a region is extracted to.
func RegionFilename(index int) string {
	if !inCatalog(index) {
		return fmt.Sprintf("flashregion_%d_unknown.bin", index)
	}
	return regionCatalog[index].filename
}

// RegionByName looks up a region index by its long or short name, ignoring
// case. Only regions present in this descriptor version are matched.
func (ctx Context) RegionByName(name string) (int, bool) {
	fold := cases.Fold()
	want := fold.String(name)
	for i := 0; i < ctx.RegionCount && i < len(regionCatalog); i++ {
		if fold.String(regionCatalog[i].name) == want || fold.String(regionCatalog[i].shortName) == want {
			return i, true
		}
	}
	return -1, false
}

// DecodeRegion unpacks the FLREG register of region index.
func DecodeRegion(ctx Context, flreg uint32, index int) (Region, error) {
	if err := ctx.checkIndex(index); err != nil {
		return Region{}, err
	}
	baseMask := ctx.baseMask()
	limitMask := baseMask << 16

	base := (flreg & baseMask) << 12
	limit := ((flreg & limitMask) >> 4) | 0xfff
	return NewRegion(index, base, limit), nil
}

// EncodeRegion packs a region into its FLREG register value. Only the first
// five region slots are supported.
func EncodeRegion(index int, r Region) (uint32, error) {
	if index < 0 || index >= encodableRegions {
		return 0, &ErrRegionNotEncodable{Index: index}
	}
	return ((r.Limit>>12)&0x7fff)<<16 | (r.Base>>12)&0x7fff, nil
}

func (im *Image) regionRegister(index int) uint32 {
	return im.Descriptor.RegionBase() + uint32(index)*4
}

// Region returns the placement of region index.
func (im *Image) Region(index int) (Region, error) {
	if err := im.Context.checkIndex(index); err != nil {
		return Region{}, err
	}
	flreg, err := readUint32(im.buf, im.regionRegister(index))
	if err != nil {
		return Region{}, fmt.Errorf("unable to read FLREG%d: %w", index, err)
	}
	return DecodeRegion(im.Context, flreg, index)
}

// Regions returns all regions of the descriptor in index order.
func (im *Image) Regions() ([]Region, error) {
	regions := make([]Region, 0, im.Context.RegionCount)
	for i := 0; i < im.Context.RegionCount; i++ {
		r, err := im.Region(i)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// SetRegion writes the placement of region index to its FLREG register.
func (im *Image) SetRegion(index int, r Region) error {
	if err := im.Context.checkIndex(index); err != nil {
		return err
	}
	flreg, err := EncodeRegion(index, r)
	if err != nil {
		return err
	}
	return writeUint32(im.buf, im.regionRegister(index), flreg)
}
