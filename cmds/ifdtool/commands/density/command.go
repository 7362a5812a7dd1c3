// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
	"github.com/linuxboot/ifdtool/pkg/ifd"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
	Size int `short:"s" long:"size" description:"chip size in MiB [1, 2, 4, 8, 16, 32, 64], 512 for 512KiB, 0 for unused" required:"true"`
	Chip int `short:"c" long:"chip" description:"flash chip to modify [1, 2], 0 for both" default:"0"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "sets the flash chip density"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Only IFDv1 descriptors are supported."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if err := commands.CheckNoArgs(args); err != nil {
		return err
	}
	density, err := ifd.ParseDensity(cmd.Size)
	if err != nil {
		return commands.ErrArgs{Err: err}
	}

	im, err := commands.LoadImageForUpdate(cmd.ImagePath)
	if err != nil {
		return err
	}
	if err := im.SetChipDensity(cmd.Chip, density); err != nil {
		return err
	}
	return commands.SaveImage(cmd.ImagePath, im)
}
