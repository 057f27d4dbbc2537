// SPDX-License-Identifier: MIT
//
// File: encode.go
// Role: network JSON encoding and output files with optional gzip.

package export

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

// WriteNetworkJSON writes n to w as indented JSON. Map keys are sorted by
// encoding/json, so equal networks encode to equal bytes.
func WriteNetworkJSON(w io.Writer, n *Network) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(n)
}

// ReadNetworkJSON decodes a network written by WriteNetworkJSON.
func ReadNetworkJSON(r io.Reader) (*Network, error) {
	var n Network
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, err
	}

	return &n, nil
}

// gzipFile closes the gzip stream before the file beneath it.
type gzipFile struct {
	*gzip.Writer
	f *os.File
}

func (g *gzipFile) Close() error {
	if err := g.Writer.Close(); err != nil {
		g.f.Close()
		return pfx.Err(err)
	}

	if err := g.f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// CreateFile creates path for writing. Paths ending in ".gz" are written
// through a gzip compressor. The caller must Close the result.
func CreateFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}

	return &gzipFile{Writer: gzip.NewWriter(f), f: f}, nil
}
