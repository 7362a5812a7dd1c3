// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"fmt"
)

// ErrFieldOverflow means the end of a field does not fit into 64 bits.
type ErrFieldOverflow struct {
	Offset uint64
	Size   uint64
}

func (err *ErrFieldOverflow) Error() string {
	return fmt.Sprintf("field at %#x with size %#x wraps around", err.Offset, err.Size)
}

// ErrOutsideImage means a field ends past the last byte of the image.
type ErrOutsideImage struct {
	Offset    uint64
	Size      uint64
	ImageSize int
}

func (err *ErrOutsideImage) Error() string {
	return fmt.Sprintf("field [%#x, %#x) is outside of the %#x bytes image",
		err.Offset, err.Offset+err.Size, err.ImageSize)
}
