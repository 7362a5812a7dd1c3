// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em100

import (
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "sets the SPI frequency and read mode suitable for an EM100 emulator"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Disables dual output fast read and sets all SPI frequencies to 20MHz (IFDv1) or 17MHz (IFDv2)."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if err := commands.CheckNoArgs(args); err != nil {
		return err
	}

	im, err := commands.LoadImageForUpdate(cmd.ImagePath)
	if err != nil {
		return err
	}
	if err := im.SetEM100Mode(); err != nil {
		return err
	}
	return commands.SaveImage(cmd.ImagePath, im)
}
