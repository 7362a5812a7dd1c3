// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportLayout(t *testing.T) {
	im := newTestImage(t, Version1, 0x4000, defaultRegions())
	var out bytes.Buffer
	require.NoError(t, im.ExportLayout(&out))
	require.Equal(t, ""+
		"00000000:00000fff fd\n"+
		"00001000:00001fff bios\n"+
		"00002000:00003fff me\n"+
		"00fff000:00000fff gbe\n"+
		"00fff000:00000fff pd\n", out.String())
}

func TestLayoutRoundTrip(t *testing.T) {
	for _, v := range []Version{Version1, Version2} {
		t.Run(v.String(), func(t *testing.T) {
			im := newTestImage(t, v, 0x4000, defaultRegions())
			before := append([]byte(nil), im.Buf()...)

			var out bytes.Buffer
			require.NoError(t, im.ExportLayout(&out))
			layout, err := ParseLayout(&out, im.Context)
			require.NoError(t, err)
			require.Len(t, layout, im.Context.RegionCount)

			for _, l := range layout {
				if l.Index >= encodableRegions {
					continue
				}
				require.NoError(t, im.SetRegion(l.Index, l.Region()))
			}
			require.Equal(t, before, im.Buf())
		})
	}
}

func TestParseLayout(t *testing.T) {
	ctx := mustContext(t, Version1)

	testCases := []struct {
		name     string
		input    string
		expected []LayoutLine
	}{
		{
			name:  "plain",
			input: "00000000:00000fff fd\n00001000:00001fff bios\n",
			expected: []LayoutLine{
				{Index: RegionDescriptor, Base: 0, Limit: 0xfff},
				{Index: RegionBIOS, Base: 0x1000, Limit: 0x1fff},
			},
		},
		{
			name:  "prefixed_and_long_name",
			input: "0x2000:0x3fff Intel\n0x2000:0X3FFF ME\n",
			expected: []LayoutLine{
				{Index: RegionME, Base: 0x2000, Limit: 0x3fff},
			},
		},
		{
			name:  "skipped",
			input: "\n# comment\n00000000:00000fff ec\nbogus unknown\n00001000:00001fff BIOS trailing\n",
			expected: []LayoutLine{
				{Index: RegionBIOS, Base: 0x1000, Limit: 0x1fff},
			},
		},
		{
			name:  "truncated",
			input: "100001000:1ffffffff bios\n",
			expected: []LayoutLine{
				{Index: RegionBIOS, Base: 0x1000, Limit: 0xffffffff},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			layout, err := ParseLayout(strings.NewReader(tc.input), ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, layout)
		})
	}
}

func TestParseLayoutMalformed(t *testing.T) {
	ctx := mustContext(t, Version2)
	for _, input := range []string{
		"00001000 bios",
		"00001000: bios",
		":00001fff bios",
		"00001000:zzzz bios",
		"xx:00000fff fd",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLayout(strings.NewReader("00000000:00000fff fd\n"+input+"\n"), ctx)
			var malformed *ErrMalformedLayoutLine
			require.True(t, errors.As(err, &malformed), "%v", err)
			require.Equal(t, 2, malformed.Line)
			require.Equal(t, input, malformed.Text)
		})
	}
}
