// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/linuxboot/ifdtool/pkg/log"
	"github.com/stretchr/testify/require"
)

// Section offsets of the test descriptors, the same as most real images.
const (
	testSigOffset = 0x10
	testFCBA      = 0x30
	testFRBA      = 0x40
	testFMBA      = 0x80
	testFPSBA     = 0x100
	testFMSBA     = 0x200
	testVTBA      = 0xdf0

	testFLMAP0  = 0x02040003
	testFLMAP1  = 0x12100208
	testFLMAP2  = 0x00210020
	testFLUMAP1 = 0x000004df
)

type span struct {
	base, limit uint32
}

// rawRegister packs a region without going through EncodeRegion.
func rawRegister(s span) uint32 {
	return (s.limit>>12)<<16 | s.base>>12
}

// newTestBuf builds an image of size bytes with a descriptor at 0x10 and
// the given regions; every other region is disabled. Each enabled region
// except the descriptor is filled with its index.
func newTestBuf(t *testing.T, v Version, size int, regions map[int]span) []byte {
	t.Helper()
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0xff
	}
	le := binary.LittleEndian
	le.PutUint32(buf[testSigOffset:], Signature)
	le.PutUint32(buf[testSigOffset+4:], testFLMAP0)
	le.PutUint32(buf[testSigOffset+8:], testFLMAP1)
	le.PutUint32(buf[testSigOffset+12:], testFLMAP2)
	le.PutUint32(buf[testSigOffset+flumap1Offset:], testFLUMAP1)

	count, disabled := MaxRegionsV1, uint32(0x00000fff)
	flcomp := uint32(Freq20MHz)<<17 | 0x24
	if v == Version2 {
		count, disabled = MaxRegions, 0x00007fff
		flcomp = uint32(Freq17MHz)<<17 | 0x44
	}
	le.PutUint32(buf[testFCBA:], flcomp)
	le.PutUint32(buf[testFCBA+4:], 0x00000000)
	le.PutUint32(buf[testFCBA+8:], 0x00000000)

	for i := 0; i < count; i++ {
		reg := disabled
		if s, ok := regions[i]; ok {
			reg = rawRegister(s)
			if i != RegionDescriptor {
				for off := s.base; off <= s.limit; off++ {
					buf[off] = byte(i)
				}
			}
		}
		le.PutUint32(buf[testFRBA+4*i:], reg)
	}

	for i := 0; i < 5; i++ {
		le.PutUint32(buf[testFMBA+4*i:], 0x0000005a)
	}
	le.PutUint32(buf[testVTBA:], 0x001740ef)
	le.PutUint32(buf[testVTBA+4:], 0x20052005)
	le.PutUint32(buf[testVTBA+8:], 0x001840c2)
	le.PutUint32(buf[testVTBA+12:], 0x20152015)
	return buf
}

func newTestImage(t *testing.T, v Version, size int, regions map[int]span) *Image {
	t.Helper()
	im, err := NewImage(newTestBuf(t, v, size, regions))
	require.NoError(t, err)
	require.Equal(t, v, im.Context.Version)
	return im
}

// defaultRegions is a small image: descriptor, BIOS and ME.
func defaultRegions() map[int]span {
	return map[int]span{
		RegionDescriptor: {0x0000, 0x0fff},
		RegionBIOS:       {0x1000, 0x1fff},
		RegionME:         {0x2000, 0x3fff},
	}
}

type recordingLogger struct {
	infos    []string
	warnings []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {}

func (l *recordingLogger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

func recordLogs(t *testing.T) *recordingLogger {
	t.Helper()
	l := &recordingLogger{}
	saved := log.DefaultLogger
	log.DefaultLogger = l
	t.Cleanup(func() { log.DefaultLogger = saved })
	return l
}
