// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxboot/ifdtool/pkg/compression"
	"github.com/linuxboot/ifdtool/pkg/ifd"
	"github.com/linuxboot/ifdtool/pkg/ifd/ifdtest"
	"github.com/stretchr/testify/require"
)

func TestRegionIndex(t *testing.T) {
	v1, err := ifd.NewContext(ifd.Version1)
	require.NoError(t, err)
	v2, err := ifd.NewContext(ifd.Version2)
	require.NoError(t, err)

	for name, want := range map[string]int{
		"bios":       ifd.RegionBIOS,
		"Intel ME":   ifd.RegionME,
		"GbE":        ifd.RegionGbE,
		"Descriptor": ifd.RegionDescriptor,
		"platform":   ifd.RegionPlatformData,
	} {
		index, err := RegionIndex(v1, name)
		require.NoError(t, err, name)
		require.Equal(t, want, index, name)
	}

	_, err = RegionIndex(v1, "ec")
	require.True(t, errors.As(err, &ErrArgs{}))
	index, err := RegionIndex(v2, "EC")
	require.NoError(t, err)
	require.Equal(t, ifd.RegionEC, index)
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	buf := ifdtest.Build(true, 0x4000, ifdtest.DefaultSpans...)
	path := filepath.Join(dir, "image.bin.zst")
	encoded, err := (&compression.Zstd{}).Encode(buf)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, encoded, 0644))

	im, err := LoadImage(path)
	require.NoError(t, err)
	require.Equal(t, ifd.Version2, im.Context.Version)

	_, err = LoadImageForUpdate(path)
	require.Error(t, err)

	garbage := filepath.Join(dir, "garbage.bin")
	require.NoError(t, os.WriteFile(garbage, make([]byte, 0x1000), 0644))
	_, err = LoadImage(garbage)
	var notFound *ifd.ErrDescriptorNotFound
	require.True(t, errors.As(err, &notFound))
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")
	require.NoError(t, os.WriteFile(path, ifdtest.Build(false, 0x4000, ifdtest.DefaultSpans...), 0644))

	im, err := LoadImageForUpdate(path)
	require.NoError(t, err)
	require.NoError(t, im.Unlock())
	require.NoError(t, SaveImage(path, im))

	saved, err := os.ReadFile(path + ".new")
	require.NoError(t, err)
	require.Equal(t, im.Buf(), saved)
}
