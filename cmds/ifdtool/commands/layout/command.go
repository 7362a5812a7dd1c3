// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"bytes"
	"fmt"

	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
	"github.com/linuxboot/ifdtool/pkg/imageio"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
	Output string `short:"o" long:"output" description:"path of the layout file to write" required:"true"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "dumps the regions into a layout file"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Writes one \"<base>:<limit> <name>\" line per region. The file can be edited and applied with newlayout."
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

	var buf bytes.Buffer
	if err := im.ExportLayout(&buf); err != nil {
		return fmt.Errorf("unable to export the layout: %w", err)
	}
	if err := imageio.WriteFile(cmd.Output, buf.Bytes()); err != nil {
		return fmt.Errorf("unable to write the layout file '%s': %w", cmd.Output, err)
	}
	fmt.Printf("Wrote layout to %s\n", cmd.Output)
	return nil
}
