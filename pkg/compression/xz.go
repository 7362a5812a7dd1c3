// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compression

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

// XZ implements Compressor for .xz streams.
type XZ struct{}

// Name returns the type of compression employed.
func (c *XZ) Name() string {
	return "XZ"
}

// Decode decodes an XZ stream.
func (c *XZ) Decode(encodedData []byte) ([]byte, error) {
	return decodeStream(xz.NewReader(bytes.NewReader(encodedData)))
}

// Encode encodes a byte slice into an XZ stream.
func (c *XZ) Encode(decodedData []byte) ([]byte, error) {
	return encodeStream(decodedData, func(w io.Writer) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	})
}
