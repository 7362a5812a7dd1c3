// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"

	"github.com/linuxboot/ifdtool/pkg/check"
	"github.com/linuxboot/ifdtool/pkg/log"
)

// ExtractedRegion is the content of one region.
type ExtractedRegion struct {
	Region   Region
	Filename string
	Data     []byte
}

// ExtractRegions copies out the content of every enabled region.
func (im *Image) ExtractRegions() ([]ExtractedRegion, error) {
	regions, err := im.Regions()
	if err != nil {
		return nil, err
	}
	var result []ExtractedRegion
	for _, r := range regions {
		if !r.Enabled() {
			log.Infof("region %d (%s) is unused, skipping", r.Index, RegionName(r.Index))
			continue
		}
		if err := check.Field(im.buf, uint64(r.Base), uint64(r.Size)); err != nil {
			return nil, fmt.Errorf("region %s %v is outside of the image: %w", RegionName(r.Index), r, err)
		}
		data := make([]byte, r.Size)
		copy(data, im.buf[r.Base:uint64(r.Base)+uint64(r.Size)])
		result = append(result, ExtractedRegion{
			Region:   r,
			Filename: RegionFilename(r.Index),
			Data:     data,
		})
	}
	return result, nil
}

// InjectRegion replaces the content of region index. The content must fit
// the region; only the BIOS region accepts smaller content, which is then
// aligned to the end of the region and padded with 0xff in front.
func (im *Image) InjectRegion(index int, content []byte) error {
	r, err := im.Region(index)
	if err != nil {
		return err
	}
	if r.Size <= 0xfff {
		return &ErrRegionDisabled{Region: r}
	}
	if uint64(len(content)) > uint64(r.Size) {
		return &ErrContentTooLarge{Region: r, ContentSize: len(content)}
	}

	var offset uint64
	if index == RegionBIOS && uint64(len(content)) < uint64(r.Size) {
		offset = uint64(r.Size) - uint64(len(content))
		log.Warnf("region %s is %d(%#x) bytes, content is %d(%#x) bytes, padding before injecting",
			RegionName(index), r.Size, r.Size, len(content), len(content))
	}

	end := uint64(r.Base) + offset + uint64(len(content))
	if uint64(len(im.buf)) < end {
		return &ErrOutputTooSmall{ImageSize: len(im.buf), Required: end}
	}

	base := uint64(r.Base)
	for i := base; i < base+offset; i++ {
		im.buf[i] = 0xff
	}
	copy(im.buf[base+offset:end], content)
	return nil
}
