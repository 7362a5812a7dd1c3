// Copyright 2018 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compression implements the compression formats flash images are
// commonly archived in.
package compression

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Compressor defines a single compression scheme (such as XZ).
type Compressor interface {
	// Name is typically the name of a class.
	Name() string

	// Decode and Encode obey "x == Decode(Encode(x))".
	Decode(encodedData []byte) ([]byte, error)
	Encode(decodedData []byte) ([]byte, error)
}

// FromFilename returns the Compressor matching the extension of path, or
// nil if the file is not compressed.
func FromFilename(path string) Compressor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return &XZ{}
	case ".zst", ".zstd":
		return &Zstd{}
	case ".lz4":
		return &LZ4{}
	}
	return nil
}

// encodeStream compresses data through the writer returned by newWriter.
// Closing the writer terminates the stream.
func encodeStream(data []byte, newWriter func(w io.Writer) (io.WriteCloser, error)) ([]byte, error) {
	var buf bytes.Buffer
	w, err := newWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeStream reads a whole stream out of reader.
func decodeStream(r io.Reader, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
