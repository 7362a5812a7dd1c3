// Copyright 2017-2018 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Command is an interface of implementations of verbs
// (like "lock", "inject" etc of "ifdtool lock"/"ifdtool inject")
type Command interface {
	flags.Commander

	// ShortDescription explains what this command does in one line
	ShortDescription() string

	// LongDescription explains what this verb does (without limitation in amount of lines)
	LongDescription() string
}

// ImageOptions are the options every verb takes.
type ImageOptions struct {
	ImagePath string `short:"f" long:"image" description:"path to flash image" required:"true"`
}

// CheckNoArgs returns ErrArgs if a verb got positional arguments.
func CheckNoArgs(args []string) error {
	if len(args) != 0 {
		return ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}
	return nil
}
