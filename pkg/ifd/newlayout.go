// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/linuxboot/ifdtool/pkg/check"
	"github.com/linuxboot/ifdtool/pkg/log"
)

// NextPow2 returns the smallest power of two greater than x, or 0 for 0.
func NextPow2(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	y := uint64(1)
	for y <= x {
		y <<= 1
	}
	return y
}

// Collide reports whether two regions share at least one byte. Disabled
// regions never collide.
func Collide(a, b Region) bool {
	return a.Range().Intersect(b.Range())
}

// MergeLayout returns the current regions with the placements of the layout
// applied on top. Regions not named in the layout keep their placement.
func MergeLayout(current []Region, layout []LayoutLine) []Region {
	merged := make([]Region, len(current))
	copy(merged, current)
	for _, l := range layout {
		if l.Index < 0 || l.Index >= len(merged) {
			continue
		}
		merged[l.Index] = l.Region()
	}
	return merged
}

// CheckOverlaps returns an error for the first pair of colliding regions.
func CheckOverlaps(regions []Region) error {
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			if Collide(regions[i], regions[j]) {
				return &ErrOverlappingRegions{A: regions[i], B: regions[j]}
			}
		}
	}
	return nil
}

func samePlacement(a, b Region) bool {
	if !a.Enabled() && !b.Enabled() {
		return true
	}
	return a.Base == b.Base && a.Limit == b.Limit
}

func (im *Image) checkLayout(current, next []Region) error {
	if err := CheckOverlaps(next); err != nil {
		return err
	}
	maxLimit := im.Context.baseMask()<<12 | 0xfff
	for i, r := range next {
		if r.Enabled() && r.Limit > maxLimit {
			return &ErrUnsupported{
				Operation: "new layout",
				Reason: fmt.Sprintf("region %s ends at %#x, %v addresses up to %#x",
					RegionName(i), r.Limit, im.Context.Version, maxLimit),
			}
		}
		if i >= encodableRegions && !samePlacement(r, current[i]) {
			return &ErrRegionNotEncodable{Index: i}
		}
	}
	return nil
}

// copyRegion moves the content of a region to its new placement. A growing
// region gets padding in front and keeps its content at the end, a shrinking
// one loses bytes from the front.
func copyRegion(dst, src []byte, cur, next Region) error {
	size := next.Size
	var offsetCur, offsetNext uint32
	if next.Size > cur.Size {
		size = cur.Size
		offsetNext = next.Size - cur.Size
	}
	if next.Size < cur.Size {
		offsetCur = cur.Size - next.Size
	}
	if size == 0 {
		return nil
	}

	from := uint64(cur.Base) + uint64(offsetCur)
	to := uint64(next.Base) + uint64(offsetNext)
	if err := check.Field(src, from, uint64(size)); err != nil {
		return fmt.Errorf("region %s is outside of the current image: %w", RegionName(cur.Index), err)
	}
	if err := check.Field(dst, to, uint64(size)); err != nil {
		return fmt.Errorf("region %s is outside of the new image: %w", RegionName(next.Index), err)
	}
	log.Debugf("copy region %d (%s) (%d bytes) from %#x to %#x",
		cur.Index, RegionName(cur.Index), size, from, to)
	copy(dst[to:to+uint64(size)], src[from:from+uint64(size)])
	return nil
}

// ApplyLayout builds a new image with the regions placed as in layout. The
// new image size is the smallest power of two above the last region byte.
// Region contents are copied from the current image; the receiver is never
// modified.
func (im *Image) ApplyLayout(layout []LayoutLine) (*Image, error) {
	current, err := im.Regions()
	if err != nil {
		return nil, err
	}
	next := MergeLayout(current, layout)

	for i, r := range next {
		if r.Enabled() && r.Size < current[i].Size {
			log.Warnf("DANGER: region %s is shrinking from %s to %s",
				RegionName(i), humanize.IBytes(uint64(current[i].Size)), humanize.IBytes(uint64(r.Size)))
		}
	}
	if err := im.checkLayout(current, next); err != nil {
		return nil, err
	}
	if !samePlacement(current[RegionDescriptor], next[RegionDescriptor]) {
		log.Warnf("region %s is moved, but its own register is kept", RegionName(RegionDescriptor))
	}

	var extent uint64
	for _, r := range next {
		if r.Enabled() && uint64(r.Limit) > extent {
			extent = uint64(r.Limit)
		}
	}
	newSize := NextPow2(extent)
	if newSize != uint64(len(im.buf)) {
		log.Infof("the image has changed in size: %d bytes before, %d bytes now", len(im.buf), newSize)
	}

	buf := make([]byte, newSize)
	for i := range buf {
		buf[i] = 0xff
	}
	for i, r := range next {
		if !r.Enabled() {
			continue
		}
		if err := copyRegion(buf, im.buf, current[i], r); err != nil {
			return nil, err
		}
	}

	d, err := ParseDescriptor(buf)
	if err != nil {
		return nil, fmt.Errorf("unable to locate the descriptor in the new image: %w", err)
	}
	result := &Image{buf: buf, Descriptor: d, Context: im.Context}
	for i := RegionDescriptor + 1; i < len(next) && i < encodableRegions; i++ {
		if err := result.SetRegion(i, next[i]); err != nil {
			return nil, fmt.Errorf("unable to update region %s: %w", RegionName(i), err)
		}
	}
	return result, nil
}
