// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inject

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
	"github.com/linuxboot/ifdtool/pkg/ifd"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.ImageOptions
	Inject string `short:"i" long:"inject" description:"region and file to inject, as <region>:<file>" required:"true"`
}

// ParseInject splits a "<region>:<file>" argument.
func ParseInject(s string) (region, path string, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", commands.ErrArgs{Err: fmt.Errorf("expected <region>:<file>, got '%s'", s)}
	}
	return parts[0], parts[1], nil
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "replaces the content of a region with a file"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "The file must fit the region. A BIOS file smaller than its region is aligned to the end of the region and padded with 0xff. The result is written to <image>.new."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if err := commands.CheckNoArgs(args); err != nil {
		return err
	}
	regionName, path, err := ParseInject(cmd.Inject)
	if err != nil {
		return err
	}

	im, err := commands.LoadImageForUpdate(cmd.ImagePath)
	if err != nil {
		return err
	}
	index, err := commands.RegionIndex(im.Context, regionName)
	if err != nil {
		return err
	}
	// Region files are raw, whatever their extension.
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", path, err)
	}

	fmt.Printf("File %s is %s\n", path, humanize.IBytes(uint64(len(content))))
	if err := im.InjectRegion(index, content); err != nil {
		return fmt.Errorf("unable to inject %s: %w", ifd.RegionName(index), err)
	}
	return commands.SaveImage(cmd.ImagePath, im)
}
