// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imageio reads and writes flash image files.
package imageio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/linuxboot/ifdtool/pkg/compression"
	"github.com/linuxboot/ifdtool/pkg/ifd"
	"github.com/linuxboot/ifdtool/pkg/log"
)

// NewSuffix is appended to the input path to name a modified image.
const NewSuffix = ".new"

// IsCompressed reports whether Load decompresses the file at path.
func IsCompressed(path string) bool {
	return compression.FromFilename(path) != nil
}

// Load reads a whole image. Compressed images are decompressed according
// to their file extension.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read image '%s': %w", path, err)
	}
	c := compression.FromFilename(path)
	if c == nil {
		return data, nil
	}
	decoded, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s image '%s': %w", c.Name(), path, err)
	}
	log.Debugf("decompressed %s image '%s': %d -> %d bytes", c.Name(), path, len(data), len(decoded))
	return decoded, nil
}

// LoadRaw reads an image that is going to be modified. Compressed images
// are refused, the result is always written back uncompressed.
func LoadRaw(path string) ([]byte, error) {
	if IsCompressed(path) {
		return nil, fmt.Errorf("refusing to modify compressed image '%s', decompress it first", path)
	}
	return Load(path)
}

// WriteFile writes buf to path through a temporary file in the same
// directory, so path either keeps its old content or gets all of buf.
func WriteFile(path string, buf []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".ifdtool-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// WriteNew writes a modified image next to the input, as "<input>.new",
// and returns the path written.
func WriteNew(input string, buf []byte) (string, error) {
	path := input + NewSuffix
	log.Infof("writing new image to %s", path)
	if err := WriteFile(path, buf); err != nil {
		return "", fmt.Errorf("unable to write '%s': %w", path, err)
	}
	return path, nil
}

// WriteRegionFiles writes every region to its own file in dir and returns
// the paths written.
func WriteRegionFiles(dir string, regions []ifd.ExtractedRegion) ([]string, error) {
	var paths []string
	for _, r := range regions {
		path := filepath.Join(dir, r.Filename)
		log.Infof("  Flash Region %d (%s): %08x - %08x -> %s",
			r.Region.Index, ifd.RegionName(r.Region.Index), r.Region.Base, r.Region.Limit, r.Filename)
		if err := WriteFile(path, r.Data); err != nil {
			return paths, fmt.Errorf("unable to write region %s: %w", ifd.RegionName(r.Region.Index), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
