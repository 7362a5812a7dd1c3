// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
)

// ErrArgs means the command line of a verb can not be used: extra
// arguments, an unknown region or an out of range value.
type ErrArgs struct {
	Err error
}

func (err ErrArgs) Error() string {
	return fmt.Sprintf("bad command line: %v (see --help)", err.Err)
}

func (err ErrArgs) Unwrap() error {
	return err.Err
}
