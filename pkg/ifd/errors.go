// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifd

import (
	"fmt"
)

// ErrDescriptorNotFound means no flash descriptor signature was found in
// the image.
type ErrDescriptorNotFound struct {
	ImageSize int
}

func (err *ErrDescriptorNotFound) Error() string {
	return fmt.Sprintf("no flash descriptor found in %d bytes", err.ImageSize)
}

// ErrUnrecognizedVersion means the read clock frequency of the component
// section matches neither descriptor version.
type ErrUnrecognizedVersion struct {
	ReadFrequency SPIFrequency
}

func (err *ErrUnrecognizedVersion) Error() string {
	return fmt.Sprintf("unknown descriptor version: read clock frequency %d", uint32(err.ReadFrequency))
}

// ErrInvalidRegionIndex means the region index is not addressable with the
// active descriptor version.
type ErrInvalidRegionIndex struct {
	Index       int
	RegionCount int
}

func (err *ErrInvalidRegionIndex) Error() string {
	return fmt.Sprintf("invalid region index %d (descriptor has %d regions)", err.Index, err.RegionCount)
}

// ErrRegionNotEncodable means the region register can not be written; only
// the first five region slots can be relocated.
type ErrRegionNotEncodable struct {
	Index int
}

func (err *ErrRegionNotEncodable) Error() string {
	return fmt.Sprintf("relocating region %d is not supported, only regions 0-%d can be written",
		err.Index, encodableRegions-1)
}

// ErrMalformedLayoutLine means a layout line has a range that can not be
// parsed as "<hex>:<hex>".
type ErrMalformedLayoutLine struct {
	Line int
	Text string
}

func (err *ErrMalformedLayoutLine) Error() string {
	return fmt.Sprintf("could not parse layout line %d: %q", err.Line, err.Text)
}

// ErrOverlappingRegions means two regions of a layout share at least one byte.
type ErrOverlappingRegions struct {
	A, B Region
}

func (err *ErrOverlappingRegions) Error() string {
	return fmt.Sprintf("regions would overlap: %s %s and %s %s",
		RegionName(err.A.Index), err.A, RegionName(err.B.Index), err.B)
}

// ErrRegionDisabled means the target region of an injection is not in use.
type ErrRegionDisabled struct {
	Region Region
}

func (err *ErrRegionDisabled) Error() string {
	return fmt.Sprintf("region %s is disabled in target", RegionName(err.Region.Index))
}

// ErrContentTooLarge means the injected content does not fit into the region.
type ErrContentTooLarge struct {
	Region      Region
	ContentSize int
}

func (err *ErrContentTooLarge) Error() string {
	return fmt.Sprintf("region %s is %d(%#x) bytes, content is %d(%#x) bytes",
		RegionName(err.Region.Index), err.Region.Size, err.Region.Size, err.ContentSize, err.ContentSize)
}

// ErrOutputTooSmall means the image ends before the injected content would.
type ErrOutputTooSmall struct {
	ImageSize int
	Required  uint64
}

func (err *ErrOutputTooSmall) Error() string {
	return fmt.Sprintf("output image is too small: %d < %d", err.ImageSize, err.Required)
}

// ErrUnsupported means the operation is not available for the descriptor
// version or argument.
type ErrUnsupported struct {
	Operation string
	Reason    string
}

func (err *ErrUnsupported) Error() string {
	return fmt.Sprintf("%s: %s", err.Operation, err.Reason)
}
