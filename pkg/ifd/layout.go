// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LayoutLine is one "<base>:<limit> <name>" entry of a layout file.
type LayoutLine struct {
	Index int
	Base  uint32
	Limit uint32
}

// Region returns the region described by the line.
func (l LayoutLine) Region() Region {
	return NewRegion(l.Index, l.Base, l.Limit)
}

// ExportLayout writes one layout line per region.
func ExportLayout(w io.Writer, regions []Region) error {
	for _, r := range regions {
		if _, err := fmt.Fprintf(w, "%08x:%08x %s\n", r.Base, r.Limit, RegionShortName(r.Index)); err != nil {
			return err
		}
	}
	return nil
}

// ExportLayout writes the region table of the image as a layout file.
func (im *Image) ExportLayout(w io.Writer) error {
	regions, err := im.Regions()
	if err != nil {
		return err
	}
	return ExportLayout(w, regions)
}

func parseLayoutHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, err
	}
	// Wider values are truncated, they are rejected later on if they do
	// not fit the descriptor.
	return uint32(v), nil
}

// ParseLayout reads a layout file. Lines naming regions unknown to the
// descriptor version are skipped, as are lines without a name.
func ParseLayout(r io.Reader, ctx Context) ([]LayoutLine, error) {
	var lines []LayoutLine
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) < 2 {
			continue
		}
		index, ok := ctx.RegionByName(fields[1])
		if !ok {
			continue
		}

		bounds := strings.SplitN(fields[0], ":", 2)
		if len(bounds) != 2 || bounds[0] == "" || bounds[1] == "" {
			return nil, &ErrMalformedLayoutLine{Line: lineNo, Text: text}
		}
		base, err := parseLayoutHex(bounds[0])
		if err != nil {
			return nil, &ErrMalformedLayoutLine{Line: lineNo, Text: text}
		}
		limit, err := parseLayoutHex(bounds[1])
		if err != nil {
			return nil, &ErrMalformedLayoutLine{Line: lineNo, Text: text}
		}
		lines = append(lines, LayoutLine{Index: index, Base: base, Limit: limit})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read layout: %w", err)
	}
	return lines, nil
}
