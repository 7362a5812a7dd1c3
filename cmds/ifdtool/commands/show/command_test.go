// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package show

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/linuxboot/ifdtool/pkg/ifd"
	"github.com/linuxboot/ifdtool/pkg/ifd/ifdtest"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	buf := ifdtest.Build(false, 0x4000, ifdtest.DefaultSpans...)
	// FLILL and the first processor strap (FMSBA 0x200).
	binary.LittleEndian.PutUint32(buf[ifdtest.FCBA+4:], 0x9f05ab02)
	binary.LittleEndian.PutUint32(buf[0x200:], 0x12345678)
	im, err := ifd.NewImage(buf)
	require.NoError(t, err)

	d, err := Collect(im)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), d.ProcStraps[0])
	require.Equal(t, [4]uint8{0x02, 0xab, 0x05, 0x9f}, d.Component.InvalidInstructions())

	var out bytes.Buffer
	WriteText(&out, im.Context, d)
	s := out.String()
	require.Contains(t, s, "IFDv1 found at 0x10")
	require.Contains(t, s, "Number of Components")
	require.Contains(t, s, "0x02 0xab 0x05 0x9f")
	require.Contains(t, s, "PCHSTRP17")
	require.Contains(t, s, "PROCSTRP0: 0x12345678")
	require.Contains(t, s, "OEM Section:")
}

func TestParseFormat(t *testing.T) {
	require.Equal(t, FormatJSON, ParseFormat(" JSON"))
	require.Equal(t, FormatText, ParseFormat("text"))
	require.Equal(t, FormatUndefined, ParseFormat("yaml"))
}
