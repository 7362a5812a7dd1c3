// Copyright 2018-2021 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ifdinfo prints the flash regions of an image.
//
// Synopsis:
//     ifdinfo [-d] [-j] IMAGE [regions|masters|layout]
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/linuxboot/ifdtool/pkg/ifd"
	"github.com/linuxboot/ifdtool/pkg/imageio"
	"github.com/linuxboot/ifdtool/pkg/log"
	flag "github.com/spf13/pflag"
)

var (
	debug    = flag.BoolP("debug", "d", false, "enable debug prints")
	jsonOut  = flag.BoolP("json", "j", false, "print JSON instead of tables")
	errUsage = errors.New("usage: ifdinfo [-d] [-j] IMAGE [regions|masters|layout]")
)

type info struct {
	Size    int
	Version string
	Regions []ifd.Region       `json:",omitempty"`
	Masters []ifd.MasterAccess `json:",omitempty"`
}

func run(w io.Writer, asJSON bool, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	what := "regions"
	if len(args) == 2 {
		what = args[1]
	}

	buf, err := imageio.Load(args[0])
	if err != nil {
		return err
	}
	im, err := ifd.NewImage(buf)
	if err != nil {
		return err
	}
	out := info{Size: im.Size(), Version: im.Context.Version.String()}

	switch what {
	case "regions":
		if out.Regions, err = im.Regions(); err != nil {
			return err
		}
	case "masters":
		if out.Masters, err = im.MasterAccess(); err != nil {
			return err
		}
	case "layout":
		if asJSON {
			return fmt.Errorf("layout has no JSON form: %w", errUsage)
		}
		return im.ExportLayout(w)
	default:
		return errUsage
	}

	if asJSON {
		j, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", j)
		return err
	}
	fmt.Fprintf(w, "%v descriptor at %#x, %d bytes\n", im.Context.Version, im.Descriptor.Offset, im.Size())
	if out.Regions != nil {
		fmt.Fprintf(w, "%s\n", ifd.RegionsTable(out.Regions))
	}
	if out.Masters != nil {
		fmt.Fprintf(w, "%s\n", ifd.MastersTable(im.Context, out.Masters))
	}
	return nil
}

func main() {
	flag.Parse()
	log.SetVerbose(*debug)

	if err := run(os.Stdout, *jsonOut, flag.Args()); err != nil {
		log.Fatalf("%v", err)
	}
}
