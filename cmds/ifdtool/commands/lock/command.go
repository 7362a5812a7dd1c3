// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lock

import (
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "locks the flash regions"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Restricts the host CPU/BIOS, Intel ME and GbE masters to the regions they own. The result is written to <image>.new."
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
	if err := im.Lock(); err != nil {
		return err
	}
	return commands.SaveImage(cmd.ImagePath, im)
}
