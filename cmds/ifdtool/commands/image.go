// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"strings"

	"github.com/linuxboot/ifdtool/pkg/ifd"
	"github.com/linuxboot/ifdtool/pkg/imageio"
)

// LoadImage reads an image for inspection. Compressed images are accepted.
func LoadImage(path string) (*ifd.Image, error) {
	buf, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	im, err := ifd.NewImage(buf)
	if err != nil {
		return nil, fmt.Errorf("unable to parse the flash image '%s': %w", path, err)
	}
	return im, nil
}

// LoadImageForUpdate reads an image that is going to be written back.
func LoadImageForUpdate(path string) (*ifd.Image, error) {
	buf, err := imageio.LoadRaw(path)
	if err != nil {
		return nil, err
	}
	im, err := ifd.NewImage(buf)
	if err != nil {
		return nil, fmt.Errorf("unable to parse the flash image '%s': %w", path, err)
	}
	return im, nil
}

// SaveImage writes the image next to the input as "<path>.new".
func SaveImage(path string, im *ifd.Image) error {
	_, err := imageio.WriteNew(path, im.Buf())
	return err
}

var regionAliases = map[string]int{
	"descriptor": ifd.RegionDescriptor,
	"platform":   ifd.RegionPlatformData,
}

// RegionIndex resolves a region name given on the command line.
func RegionIndex(ctx ifd.Context, name string) (int, error) {
	if index, ok := ctx.RegionByName(name); ok {
		return index, nil
	}
	if index, ok := regionAliases[strings.ToLower(name)]; ok {
		return index, nil
	}
	return -1, ErrArgs{Err: fmt.Errorf("unknown region '%s' for %v", name, ctx.Version)}
}
