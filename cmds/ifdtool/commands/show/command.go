// Copyright 2017-2018 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package show

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
	"github.com/linuxboot/ifdtool/pkg/ifd"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
	Format *string `long:"format" description:"output format [text, json]"`
}

type Format int

const (
	FormatUndefined = Format(iota)
	FormatText
	FormatJSON
)

func ParseFormat(s string) Format {
	switch strings.Trim(strings.ToLower(s), " ") {
	case "text":
		return FormatText
	case "json":
		return FormatJSON
	}
	return FormatUndefined
}

// Descriptor is everything show prints about a flash descriptor.
type Descriptor struct {
	Version    string
	Descriptor *ifd.Descriptor
	Component  *ifd.Component
	Regions    []ifd.Region
	Masters    []ifd.MasterAccess
	VSCC       []ifd.VSCCEntry
	PCHStraps  *ifd.PCHStraps
	ProcStraps *ifd.ProcessorStraps
	OEMSection []byte
}

// Collect reads all descriptor sections of the image.
func Collect(im *ifd.Image) (*Descriptor, error) {
	d := &Descriptor{
		Version:    im.Context.Version.String(),
		Descriptor: im.Descriptor,
	}
	var err error
	if d.Component, err = im.Component(); err != nil {
		return nil, err
	}
	if d.Regions, err = im.Regions(); err != nil {
		return nil, err
	}
	if d.Masters, err = im.MasterAccess(); err != nil {
		return nil, err
	}
	if d.VSCC, err = im.VSCCTable(); err != nil {
		return nil, err
	}
	if d.PCHStraps, err = im.PCHStraps(); err != nil {
		return nil, err
	}
	if d.ProcStraps, err = im.ProcessorStraps(); err != nil {
		return nil, err
	}
	if d.OEMSection, err = im.OEMSection(); err != nil {
		return nil, err
	}
	return d, nil
}

// WriteText prints the descriptor as tables.
func WriteText(w io.Writer, ctx ifd.Context, d *Descriptor) {
	fmt.Fprintf(w, "%v found at %#x\n\n", ctx.Version, d.Descriptor.Offset)
	fmt.Fprintf(w, "%s\n\n", ifd.ComponentTable(ctx, d.Descriptor, d.Component))
	fmt.Fprintf(w, "%s\n\n", ifd.RegionsTable(d.Regions))
	fmt.Fprintf(w, "%s\n\n", ifd.MastersTable(ctx, d.Masters))
	if len(d.VSCC) > 0 {
		fmt.Fprintf(w, "%s\n\n", ifd.VSCCTable(d.VSCC))
	}
	for i, strap := range d.PCHStraps {
		fmt.Fprintf(w, "PCHSTRP%-2d: %#08x\n", i, strap)
	}
	fmt.Fprintln(w)
	for i, strap := range d.ProcStraps {
		fmt.Fprintf(w, "PROCSTRP%d: %#08x\n", i, strap)
	}
	fmt.Fprintf(w, "\nOEM Section:\n")
	for off := 0; off < len(d.OEMSection); off += 16 {
		fmt.Fprintf(w, "%02x:% x\n", off, d.OEMSection[off:off+16])
	}
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "prints the flash descriptor"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Prints the component section, the regions, the master access permissions, the VSCC table, the PCH straps and the OEM section."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if err := commands.CheckNoArgs(args); err != nil {
		return err
	}

	format := FormatText
	if cmd.Format != nil {
		format = ParseFormat(*cmd.Format)
		if format == FormatUndefined {
			return commands.ErrArgs{Err: fmt.Errorf("unknown format '%s'", *cmd.Format)}
		}
	}

	im, err := commands.LoadImage(cmd.ImagePath)
	if err != nil {
		return err
	}
	d, err := Collect(im)
	if err != nil {
		return fmt.Errorf("unable to read the flash descriptor: %w", err)
	}

	switch format {
	case FormatText:
		fmt.Printf("File %s is %d bytes\n", cmd.ImagePath, im.Size())
		WriteText(os.Stdout, im.Context, d)
	case FormatJSON:
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", b)
	}
	return nil
}
