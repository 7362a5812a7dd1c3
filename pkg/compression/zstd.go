// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compression

import (
	"github.com/klauspost/compress/zstd"
)

// Zstd implements Compressor for Zstandard frames.
type Zstd struct{}

// Name returns the type of compression employed.
func (c *Zstd) Name() string {
	return "Zstd"
}

// Decode decodes a byte slice of Zstandard data.
func (c *Zstd) Decode(encodedData []byte) ([]byte, error) {
	reader, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return reader.DecodeAll(encodedData, nil)
}

// Encode encodes a byte slice with Zstandard.
func (c *Zstd) Encode(decodedData []byte) ([]byte, error) {
	writer, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer writer.Close()
	return writer.EncodeAll(decodedData, nil), nil
}
