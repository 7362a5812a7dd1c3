// Copyright 2017-2018 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ifdtool inspects and modifies the Intel Flash Descriptor of a flash image.
//
// Synopsis:
//     ifdtool show -f IMAGE [--format=text|json]
//     ifdtool layout -f IMAGE -o LAYOUT_FILE
//     ifdtool extract -f IMAGE [-d DIR]
//     ifdtool inject -f IMAGE -i REGION:FILE
//     ifdtool newlayout -f IMAGE -l LAYOUT_FILE
//     ifdtool spifreq -f IMAGE -s MHZ
//     ifdtool em100 -f IMAGE
//     ifdtool density -f IMAGE -s SIZE [-c CHIP]
//     ifdtool lock -f IMAGE
//     ifdtool unlock -f IMAGE
//
// An example:
//     ifdtool layout -f coreboot.rom -o layout.txt
//     $EDITOR layout.txt
//     ifdtool newlayout -f coreboot.rom -l layout.txt
//     ifdtool inject -f coreboot.rom.new -i bios:bios.bin
//
// Description:
//     show:      Print the flash descriptor
//     layout:    Dump the regions into a layout file
//     extract:   Write every region into flashregion_<index>_<name>.bin
//     inject:    Replace the content of a region
//     newlayout: Move and resize regions according to a layout file
//     spifreq:   Set the SPI frequency
//     em100:     Set the SPI frequency and read mode for an EM100 emulator
//     density:   Set the flash chip density (IFDv1 only)
//     lock:      Restrict the masters to their own regions
//     unlock:    Grant every master access to every region
//
// Verbs that modify the image never touch the input file, they write
// <image>.new instead. Compressed images (.xz, .zst, .lz4) can only be
// inspected.
package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/density"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/em100"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/extract"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/inject"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/layout"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/lock"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/newlayout"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/show"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/spifreq"
	"github.com/linuxboot/ifdtool/cmds/ifdtool/commands/unlock"
	"github.com/linuxboot/ifdtool/pkg/log"
)

var (
	knownCommands = map[string]commands.Command{
		"show":      &show.Command{},
		"layout":    &layout.Command{},
		"extract":   &extract.Command{},
		"inject":    &inject.Command{},
		"newlayout": &newlayout.Command{},
		"spifreq":   &spifreq.Command{},
		"em100":     &em100.Command{},
		"density":   &density.Command{},
		"lock":      &lock.Command{},
		"unlock":    &unlock.Command{},
	}
)

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"print debug messages"`
}

func newParser(opts *options) *flags.Parser {
	flagsParser := flags.NewParser(opts, flags.Default)
	for commandName, command := range knownCommands {
		_, err := flagsParser.AddCommand(commandName, command.ShortDescription(), command.LongDescription(), command)
		if err != nil {
			panic(err)
		}
	}
	flagsParser.CommandHandler = func(command flags.Commander, args []string) error {
		log.SetVerbose(opts.Verbose)
		return command.Execute(args)
	}
	return flagsParser
}

func main() {
	var opts options

	// parse arguments and execute the appropriate command
	if _, err := newParser(&opts).Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatalf("%v", err)
	}
}
