// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPow2(t *testing.T) {
	for in, out := range map[uint64]uint64{
		0:          0,
		1:          2,
		0xfff:      0x1000,
		0x1000:     0x2000,
		0x3fff:     0x4000,
		0x00ffffff: 0x01000000,
		0xffffffff: 0x100000000,
	} {
		assert.Equal(t, out, NextPow2(in), "NextPow2(%#x)", in)
	}
}

func TestCollide(t *testing.T) {
	fd := NewRegion(RegionDescriptor, 0, 0xfff)
	testCases := []struct {
		name    string
		a, b    Region
		collide bool
	}{
		{"overlap", fd, NewRegion(RegionBIOS, 0x800, 0x1800), true},
		{"adjacent", fd, NewRegion(RegionBIOS, 0x1000, 0x1fff), false},
		{"contained", NewRegion(RegionBIOS, 0, 0x3fff), NewRegion(RegionME, 0x1000, 0x1fff), true},
		{"same", fd, fd, true},
		{"disabled", NewRegion(RegionGbE, 0x1000, 0xfff), NewRegion(RegionPlatformData, 0x1000, 0xfff), false},
		{"disabled_inside", NewRegion(RegionGbE, 0x1000, 0xfff), NewRegion(RegionBIOS, 0, 0x3fff), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.collide, Collide(tc.a, tc.b))
			assert.Equal(t, tc.collide, Collide(tc.b, tc.a))
		})
	}
}

func TestApplyLayoutGrow(t *testing.T) {
	logs := recordLogs(t)
	im := newTestImage(t, Version1, 0x2000, map[int]span{
		RegionDescriptor: {0x0000, 0x0fff},
		RegionBIOS:       {0x1000, 0x1fff},
	})
	before := append([]byte(nil), im.Buf()...)

	layout, err := ParseLayout(strings.NewReader("00002000:00003fff bios\n"), im.Context)
	require.NoError(t, err)
	result, err := im.ApplyLayout(layout)
	require.NoError(t, err)

	require.Equal(t, before, im.Buf())
	require.Equal(t, 0x4000, result.Size())
	// The descriptor region is copied as is, except for the BIOS register.
	require.Equal(t, before[:testFRBA+4], result.Buf()[:testFRBA+4])
	require.Equal(t, before[testFRBA+8:0x1000], result.Buf()[testFRBA+8:0x1000])
	require.Equal(t, uint32(0x00010001), binary.LittleEndian.Uint32(before[testFRBA+4:]))
	for off := 0x1000; off < 0x3000; off++ {
		require.Equal(t, byte(0xff), result.Buf()[off], "offset %#x", off)
	}
	for off := 0x3000; off < 0x4000; off++ {
		require.Equal(t, byte(RegionBIOS), result.Buf()[off], "offset %#x", off)
	}
	require.Equal(t, uint32(0x00030002), binary.LittleEndian.Uint32(result.Buf()[testFRBA+4:]))

	bios, err := result.Region(RegionBIOS)
	require.NoError(t, err)
	require.Equal(t, NewRegion(RegionBIOS, 0x2000, 0x3fff), bios)
	require.Len(t, logs.infos, 1)
	require.Empty(t, logs.warnings)
}

func TestApplyLayoutShrink(t *testing.T) {
	logs := recordLogs(t)
	im := newTestImage(t, Version2, 0x4000, defaultRegions())
	buf := im.Buf()
	buf[0x2000] = 0xaa
	buf[0x3fff] = 0xbb

	result, err := im.ApplyLayout([]LayoutLine{{Index: RegionME, Base: 0x2000, Limit: 0x2fff}})
	require.NoError(t, err)
	require.Equal(t, 0x4000, result.Size())
	require.Empty(t, logs.infos)
	require.Len(t, logs.warnings, 1)
	require.Contains(t, logs.warnings[0], "DANGER")
	require.Contains(t, logs.warnings[0], "Intel ME")

	// The tail of the old region is kept.
	require.Equal(t, byte(RegionME), result.Buf()[0x2000])
	require.Equal(t, byte(0xbb), result.Buf()[0x2fff])
	require.Equal(t, byte(0xff), result.Buf()[0x3000])

	me, err := result.Region(RegionME)
	require.NoError(t, err)
	require.Equal(t, uint32(0x1000), me.Size)
}

func TestApplyLayoutOverlap(t *testing.T) {
	im := newTestImage(t, Version1, 0x4000, defaultRegions())
	_, err := im.ApplyLayout([]LayoutLine{
		{Index: RegionBIOS, Base: 0x1000, Limit: 0x1fff},
		{Index: RegionME, Base: 0x1800, Limit: 0x2800},
	})
	var overlap *ErrOverlappingRegions
	require.True(t, errors.As(err, &overlap), "%v", err)
	require.Equal(t, RegionBIOS, overlap.A.Index)
	require.Equal(t, RegionME, overlap.B.Index)
}

func TestApplyLayoutUnencodable(t *testing.T) {
	im := newTestImage(t, Version2, 0x4000, defaultRegions())

	_, err := im.ApplyLayout([]LayoutLine{{Index: RegionEC, Base: 0x4000, Limit: 0x4fff}})
	var notEncodable *ErrRegionNotEncodable
	require.True(t, errors.As(err, &notEncodable), "%v", err)
	require.Equal(t, RegionEC, notEncodable.Index)

	// Keeping a region in place is fine.
	result, err := im.ApplyLayout([]LayoutLine{{Index: RegionEC, Base: 0x7fff000, Limit: 0xfff}})
	require.NoError(t, err)
	require.Equal(t, im.Buf(), result.Buf())
}

func TestApplyLayoutTooLarge(t *testing.T) {
	im := newTestImage(t, Version1, 0x4000, defaultRegions())
	_, err := im.ApplyLayout([]LayoutLine{{Index: RegionGbE, Base: 0x1000000, Limit: 0x1ffffff}})
	var unsupported *ErrUnsupported
	require.True(t, errors.As(err, &unsupported), "%v", err)
}

func TestMergeLayout(t *testing.T) {
	current := []Region{
		NewRegion(RegionDescriptor, 0, 0xfff),
		NewRegion(RegionBIOS, 0x1000, 0x1fff),
	}
	merged := MergeLayout(current, []LayoutLine{
		{Index: RegionBIOS, Base: 0x2000, Limit: 0x2fff},
		{Index: RegionEC, Base: 0x3000, Limit: 0x3fff},
	})
	require.Equal(t, []Region{
		NewRegion(RegionDescriptor, 0, 0xfff),
		NewRegion(RegionBIOS, 0x2000, 0x2fff),
	}, merged)
	require.Equal(t, uint32(0x1000), current[RegionBIOS].Base)
}
