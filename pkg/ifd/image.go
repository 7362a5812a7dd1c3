// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"
)

// Image is a flash image with a located descriptor. It owns its buffer:
// register updates are applied in place, operations that resize the image
// return a new Image.
type Image struct {
	buf        []byte
	Descriptor *Descriptor
	Context    Context
}

// NewImage locates the descriptor in buf and detects its version.
func NewImage(buf []byte) (*Image, error) {
	d, err := ParseDescriptor(buf)
	if err != nil {
		return nil, err
	}
	ctx, err := DetectVersion(buf, d)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf, Descriptor: d, Context: ctx}, nil
}

// Buf returns the buffer.
func (im *Image) Buf() []byte {
	return im.buf
}

// Size returns the image size in bytes.
func (im *Image) Size() int {
	return len(im.buf)
}

func (im *Image) String() string {
	return fmt.Sprintf("Image{Size=%#x, Version=%v, %v}", len(im.buf), im.Context.Version, im.Descriptor)
}
