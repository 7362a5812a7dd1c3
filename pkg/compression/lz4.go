// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compression

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"
)

// LZ4 implements Compressor for LZ4 frames, as written by `lz4 image.bin`.
type LZ4 struct{}

// Name returns the type of compression employed.
func (c *LZ4) Name() string {
	return "LZ4"
}

// Decode decodes an LZ4 frame.
func (c *LZ4) Decode(encodedData []byte) ([]byte, error) {
	return decodeStream(lz4.NewReader(bytes.NewReader(encodedData)), nil)
}

// Encode encodes a byte slice into a single LZ4 frame.
func (c *LZ4) Encode(decodedData []byte) ([]byte, error) {
	return encodeStream(decodedData, func(w io.Writer) (io.WriteCloser, error) {
		return lz4.NewWriter(w), nil
	})
}
