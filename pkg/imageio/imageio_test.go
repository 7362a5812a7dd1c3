// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imageio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxboot/ifdtool/pkg/compression"
	"github.com/linuxboot/ifdtool/pkg/ifd"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	want := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 0x400)

	raw := filepath.Join(dir, "image.bin")
	require.NoError(t, os.WriteFile(raw, want, 0644))
	got, err := Load(raw)
	require.NoError(t, err)
	require.Equal(t, want, got)

	for _, name := range []string{"image.bin.xz", "image.bin.zst", "image.bin.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			encoded, err := compression.FromFilename(path).Encode(want)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(path, encoded, 0644))

			require.True(t, IsCompressed(path))
			got, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, want, got)

			_, err = LoadRaw(path)
			require.Error(t, err)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteNew(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "coreboot.rom")
	require.NoError(t, os.WriteFile(input, []byte("old"), 0644))

	path, err := WriteNew(input, []byte("new content"))
	require.NoError(t, err)
	require.Equal(t, input+".new", path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("new content"), got)
	got, err = os.ReadFile(input)
	require.NoError(t, err)
	require.Equal(t, []byte("old"), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestWriteFileMissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "nope", "image.bin"), []byte{1})
	require.Error(t, err)
}

func TestWriteRegionFiles(t *testing.T) {
	dir := t.TempDir()
	regions := []ifd.ExtractedRegion{
		{
			Region:   ifd.NewRegion(ifd.RegionDescriptor, 0, 0xfff),
			Filename: ifd.RegionFilename(ifd.RegionDescriptor),
			Data:     []byte{1, 2, 3},
		},
		{
			Region:   ifd.NewRegion(ifd.RegionBIOS, 0x1000, 0x1fff),
			Filename: ifd.RegionFilename(ifd.RegionBIOS),
			Data:     []byte{4, 5},
		},
	}
	paths, err := WriteRegionFiles(dir, regions)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "flashregion_0_flashdescriptor.bin"),
		filepath.Join(dir, "flashregion_1_bios.bin"),
	}, paths)

	got, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	require.Equal(t, []byte{4, 5}, got)
}
