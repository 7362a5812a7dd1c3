// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ifdtest builds synthetic flash images for tests.
package ifdtest

import (
	"encoding/binary"
)

// Offsets of the sections in built images.
const (
	SignatureOffset = 0x10
	FCBA            = 0x30
	FRBA            = 0x40
	FMBA            = 0x80
)

// Span places region Index at [Base, Limit].
type Span struct {
	Index int
	Base  uint32
	Limit uint32
}

// DefaultSpans are a descriptor, a BIOS and an ME region in 16KiB.
var DefaultSpans = []Span{
	{Index: 0, Base: 0x0000, Limit: 0x0fff},
	{Index: 1, Base: 0x1000, Limit: 0x1fff},
	{Index: 2, Base: 0x2000, Limit: 0x3fff},
}

// Build returns an image of size bytes filled with 0xff and a descriptor
// at SignatureOffset. v2 selects the descriptor version. Regions not in
// spans are disabled, every region but the descriptor is filled with its
// index.
func Build(v2 bool, size int, spans ...Span) []byte {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0xff
	}
	le := binary.LittleEndian
	le.PutUint32(buf[SignatureOffset:], 0x0ff0a55a)
	le.PutUint32(buf[SignatureOffset+4:], 0x02040003)
	le.PutUint32(buf[SignatureOffset+8:], 0x12100208)
	le.PutUint32(buf[SignatureOffset+12:], 0x00210020)

	count, disabled, flcomp := 5, uint32(0x0fff), uint32(0x24)
	if v2 {
		count, disabled, flcomp = 9, 0x7fff, 6<<17|0x44
	}
	le.PutUint32(buf[FCBA:], flcomp)
	for i := 0; i < count; i++ {
		le.PutUint32(buf[FRBA+4*i:], disabled)
	}
	for _, s := range spans {
		le.PutUint32(buf[FRBA+4*s.Index:], (s.Limit>>12)<<16|s.Base>>12)
		if s.Index == 0 {
			continue
		}
		for off := s.Base; off <= s.Limit; off++ {
			buf[off] = byte(s.Index)
		}
	}
	for i := 0; i < 5; i++ {
		le.PutUint32(buf[FMBA+4*i:], 0x5a)
	}
	return buf
}
