// Copyright 2019 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytes contains helpers for byte ranges inside a flash image.
package bytes

import (
	"fmt"
)

// Range defines a generic bytes range.
type Range struct {
	Offset uint64
	Length uint64
}

// InclusiveRange returns the range [first, last]. If last is less than
// first the range is empty.
func InclusiveRange(first, last uint64) Range {
	if last < first {
		return Range{Offset: first}
	}
	return Range{Offset: first, Length: last - first + 1}
}

func (r Range) String() string {
	return fmt.Sprintf(`{"Offset":"0x%x", "Length":"0x%x"}`, r.Offset, r.Length)
}

// End returns the offset right after the last byte of the range.
func (r Range) End() uint64 {
	return r.Offset + r.Length
}

// Intersect returns True if ranges "r" and "cmp" has at least
// one byte with the same offset. Empty ranges never intersect.
func (r Range) Intersect(cmp Range) bool {
	if r.Length == 0 || cmp.Length == 0 {
		return false
	}

	if r.End() <= cmp.Offset {
		return false
	}
	if r.Offset >= cmp.End() {
		return false
	}

	return true
}
