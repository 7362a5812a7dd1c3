// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spifreq

import (
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
	"github.com/linuxboot/ifdtool/pkg/ifd"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
	Frequency int `short:"s" long:"freq" description:"SPI frequency in MHz [17, 20, 30, 33, 48, 50]" required:"true"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "sets the SPI frequency"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return ""
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if err := commands.CheckNoArgs(args); err != nil {
		return err
	}
	freq, err := ifd.ParseSPIFrequency(cmd.Frequency)
	if err != nil {
		return commands.ErrArgs{Err: err}
	}

	im, err := commands.LoadImageForUpdate(cmd.ImagePath)
	if err != nil {
		return err
	}
	if err := im.SetSPIFrequency(freq); err != nil {
		return err
	}
	return commands.SaveImage(cmd.ImagePath, im)
}
