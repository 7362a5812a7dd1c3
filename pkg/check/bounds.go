// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check validates that descriptor fields lie inside an image
// before they are sliced out of it.
package check

import (
	"github.com/hashicorp/go-multierror"
)

// Field checks that `size` bytes starting at `offset` fit into `b`, the
// same as `b[offset:offset+size]` would. Every violated condition is
// reported.
func Field(b []byte, offset, size uint64) error {
	var result *multierror.Error
	end := offset + size
	if end < offset {
		result = multierror.Append(result, &ErrFieldOverflow{Offset: offset, Size: size})
	}
	if offset > uint64(len(b)) || size > uint64(len(b))-offset {
		result = multierror.Append(result, &ErrOutsideImage{Offset: offset, Size: size, ImageSize: len(b)})
	}
	return result.ErrorOrNil()
}
