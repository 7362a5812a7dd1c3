// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package newlayout

import (
	"fmt"
	"os"

	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
	"github.com/linuxboot/ifdtool/pkg/ifd"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
	Layout string `short:"l" long:"layout" description:"path to the layout file" required:"true"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "moves and resizes regions according to a layout file"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Regions not named in the layout file keep their placement. Region content is kept aligned to the end of the region. The result is written to <image>.new and may differ in size."
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

	f, err := os.Open(cmd.Layout)
	if err != nil {
		return fmt.Errorf("unable to open the layout file '%s': %w", cmd.Layout, err)
	}
	defer f.Close()
	layout, err := ifd.ParseLayout(f, im.Context)
	if err != nil {
		return fmt.Errorf("unable to parse the layout file '%s': %w", cmd.Layout, err)
	}

	result, err := im.ApplyLayout(layout)
	if err != nil {
		return err
	}
	return commands.SaveImage(cmd.ImagePath, result)
}
