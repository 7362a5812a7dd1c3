// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"fmt"

	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
	"github.com/linuxboot/ifdtool/pkg/imageio"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
	Dir string `short:"d" long:"dir" description:"directory to write the region files to" default:"."`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "extracts every region into its own file"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Writes flashregion_<index>_<name>.bin for every region in use."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if err := commands.CheckNoArgs(args); err != nil {
		return err
	}

	im, err := commands.LoadImage(cmd.ImagePath)
	if err != nil {
		return err
	}
	regions, err := im.ExtractRegions()
	if err != nil {
		return fmt.Errorf("unable to extract regions: %w", err)
	}
	if _, err := imageio.WriteRegionFiles(cmd.Dir, regions); err != nil {
		return err
	}
	return nil
}
