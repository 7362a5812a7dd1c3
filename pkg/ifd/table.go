// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RegionsTable renders regions with their registers' placement.
func RegionsTable(regions []Region) string {
	t := table.NewWriter()
	t.SetTitle("Flash Regions")
	t.AppendHeader(table.Row{"#", "Name", "Short Name", "Base", "Limit", "Size"})
	for _, r := range regions {
		size := "unused"
		if r.Enabled() {
			size = humanize.IBytes(uint64(r.Size))
		}
		t.AppendRow(table.Row{
			r.Index,
			RegionName(r.Index),
			RegionShortName(r.Index),
			fmt.Sprintf("%#08x", r.Base),
			fmt.Sprintf("%#08x", r.Limit),
			size,
		})
	}
	return t.Render()
}

func accessString(bits []bool) string {
	var s strings.Builder
	for _, b := range bits {
		if b {
			s.WriteByte('x')
		} else {
			s.WriteByte('-')
		}
	}
	return s.String()
}

// MastersTable renders the access permissions of every master. Read and
// write columns have one character per region, in region index order.
func MastersTable(ctx Context, access []MasterAccess) string {
	t := table.NewWriter()
	t.SetTitle("Flash Masters (%v)", ctx.Version)
	t.AppendHeader(table.Row{"Master", "FLMSTR", "Read", "Write", "Requester ID"})
	for _, a := range access {
		requester := "-"
		if a.HasRequesterID {
			requester = fmt.Sprintf("%#04x", a.RequesterID)
		}
		t.AppendRow(table.Row{
			a.Master,
			fmt.Sprintf("%#08x", a.Raw),
			accessString(a.Read),
			accessString(a.Write),
			requester,
		})
	}
	return t.Render()
}

// VSCCTable renders the VSCC table.
func VSCCTable(entries []VSCCEntry) string {
	t := table.NewWriter()
	t.SetTitle("ME VSCC Table")
	t.AppendHeader(table.Row{"#", "JID", "VSCC", "Vendor", "Device", "Upper Erase", "Lower Erase"})
	for i, e := range entries {
		dev0, dev1 := e.DeviceID()
		upper, lower := e.Upper(), e.Lower()
		t.AppendRow(table.Row{
			i,
			fmt.Sprintf("%#08x", e.JID),
			fmt.Sprintf("%#08x", e.VSCC),
			fmt.Sprintf("%#02x", e.VendorID()),
			fmt.Sprintf("%#02x %#02x", dev0, dev1),
			fmt.Sprintf("%#02x/%s", upper.EraseOpcode, upper.BlockEraseSize),
			fmt.Sprintf("%#02x/%s", lower.EraseOpcode, lower.BlockEraseSize),
		})
	}
	return t.Render()
}

func invalidInstructions(ops [4]uint8) string {
	s := make([]string, len(ops))
	for i, op := range ops {
		s[i] = fmt.Sprintf("0x%02x", op)
	}
	return strings.Join(s, " ")
}

// ComponentTable renders the component section. The number of components
// comes from the descriptor map.
func ComponentTable(ctx Context, d *Descriptor, c *Component) string {
	t := table.NewWriter()
	t.SetTitle("Flash Component (FLCOMP %#08x)", c.FLCOMP)
	t.AppendHeader(table.Row{"Parameter", "Value"})
	supported := func(b bool) string {
		if b {
			return "supported"
		}
		return "not supported"
	}
	t.AppendRows([]table.Row{
		{"Number of Components", d.NumberOfComponents()},
		{"Dual Output Fast Read", supported(c.DualOutputFastReadSupported())},
		{"Read ID/Read Status Clock Frequency", c.ReadIDStatusFrequency().Describe(ctx.Version)},
		{"Write/Erase Clock Frequency", c.WriteEraseFrequency().Describe(ctx.Version)},
		{"Fast Read Clock Frequency", c.FastReadFrequency().Describe(ctx.Version)},
		{"Fast Read", supported(c.FastReadSupported())},
		{"Read Clock Frequency", c.ReadClockFrequency().Describe(ctx.Version)},
		{"Component 1 Density", c.Density(ctx, 1)},
		{"Component 2 Density", c.Density(ctx, 2)},
		{"Flash Partition Boundary", fmt.Sprintf("%#08x", c.ProtectedRangeBase())},
		{"Invalid Instructions", invalidInstructions(c.InvalidInstructions())},
	})
	return t.Render()
}
