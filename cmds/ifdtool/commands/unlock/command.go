// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unlock

import (
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "unlocks the flash regions"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Grants the host CPU/BIOS, Intel ME and GbE masters read and write access to every region. The result is written to <image>.new."
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
	if err := im.Unlock(); err != nil {
		return err
	}
	return commands.SaveImage(cmd.ImagePath, im)
}
