// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// maxDecompressedSize bounds the decoded size of a compressed definition.
var maxDecompressedSize = 8 << 20

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

// decompress returns the plain contents of a definition file together with
// its path minus any compression suffix. Compressed files are recognised by
// suffix (.zst, .gz) or by their magic bytes; anything else is returned
// unchanged.
func decompress(path string, data []byte) (string, []byte, error) {
	encoding := ""
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		encoding = "zstd"
		path = strings.TrimSuffix(path, filepath.Ext(path))
	case ".gz":
		encoding = "gzip"
		path = strings.TrimSuffix(path, filepath.Ext(path))
	default:
		switch {
		case bytes.HasPrefix(data, zstdMagic):
			encoding = "zstd"
		case bytes.HasPrefix(data, gzipMagic):
			encoding = "gzip"
		}
	}

	var (
		out []byte
		err error
	)
	switch encoding {
	case "zstd":
		var dec *zstd.Decoder
		dec, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(maxDecompressedSize)))
		if err != nil {
			break
		}
		defer dec.Close()
		out, err = dec.DecodeAll(data, nil)
	case "gzip":
		var zr *gzip.Reader
		zr, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			break
		}
		defer zr.Close()
		out, err = io.ReadAll(io.LimitReader(zr, int64(maxDecompressedSize)+1))
		if err == nil && len(out) > maxDecompressedSize {
			err = fmt.Errorf("decompressed size exceeds %d bytes", maxDecompressedSize)
		}
	default:
		return path, data, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to decompress %s definition: %w", encoding, err)
	}
	return path, out, nil
}
