// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: streaming VCF reader implementing genotype.Source.

package vcf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/katalvlaran/genonet/genotype"
	"github.com/klauspost/compress/gzip"
)

// Fixed VCF column layout.
const (
	colChrom     = 0
	colPos       = 1
	colID        = 2
	colFormat    = 8
	firstSample  = 9
	headerPrefix = "#CHROM"
	gtKey        = "GT"
)

// gzipMagic are the first two bytes of any gzip (and BGZF) member.
var gzipMagic = []byte{0x1f, 0x8b}

// Reader streams variant records from VCF text.
// It is not safe for concurrent use.
type Reader struct {
	br      *bufio.Reader
	closers []io.Closer // closed in reverse order by Close
	samples []string
	line    int // 1-based number of the last line read
}

var _ genotype.Source = (*Reader)(nil)

// Open opens the VCF file at path (plain, gzip or BGZF).
// The caller must Close the returned Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closers = append([]io.Closer{f}, r.closers...)

	return r, nil
}

// NewReader wraps src and consumes the meta-information and header lines.
//
// Steps:
//  1. Peek at the first two bytes; wrap in a gzip reader on a gzip magic.
//  2. Skip "##" meta lines.
//  3. Parse sample names from the "#CHROM" line.
//
// Returns ErrNoHeader if the stream ends before the header line.
func NewReader(src io.Reader) (*Reader, error) {
	r := &Reader{}

	br := bufio.NewReader(src)
	magic, err := br.Peek(len(gzipMagic))
	if err == nil && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, pfx.Err(err)
		}
		r.closers = append(r.closers, zr)
		br = bufio.NewReader(zr)
	}
	r.br = br

	for {
		line, err := r.readLine()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(line, "##") || line == "" {
			continue
		}
		if !strings.HasPrefix(line, headerPrefix) {
			return nil, fmt.Errorf("vcf: line %d: %w", r.line, ErrNoHeader)
		}

		cols := strings.Split(line, "\t")
		if len(cols) > firstSample {
			r.samples = append([]string(nil), cols[firstSample:]...)
		}

		return r, nil
	}
}

// Samples returns the sample names in column order.
func (r *Reader) Samples() []string {
	return append([]string(nil), r.samples...)
}

// Next parses the next data line into a genotype.Record.
// It returns io.EOF once the stream is exhausted.
func (r *Reader) Next() (genotype.Record, error) {
	var line string
	for {
		var err error
		line, err = r.readLine()
		if err != nil {
			return genotype.Record{}, err
		}
		if line != "" {
			break
		}
	}

	cols := strings.Split(line, "\t")
	if len(cols) != firstSample+len(r.samples) && !(len(r.samples) == 0 && len(cols) >= colFormat) {
		return genotype.Record{}, fmt.Errorf("vcf: line %d has %d columns, want %d: %w",
			r.line, len(cols), firstSample+len(r.samples), ErrMalformedLine)
	}

	rec := genotype.Record{
		ID:    variantID(cols),
		Calls: make([]genotype.Call, len(r.samples)),
	}
	if len(r.samples) == 0 {
		return rec, nil
	}

	gtIdx := fieldIndex(cols[colFormat], gtKey)
	for s := range r.samples {
		if gtIdx < 0 {
			rec.Calls[s] = genotype.Missing
			continue
		}
		c, err := parseGT(subfield(cols[firstSample+s], gtIdx))
		if err != nil {
			return genotype.Record{}, fmt.Errorf("vcf: line %d sample %q: %w", r.line, r.samples[s], err)
		}
		rec.Calls[s] = c
	}

	return rec, nil
}

// Close releases the decompressor and the underlying file, if any.
func (r *Reader) Close() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil && first == nil {
			first = pfx.Err(err)
		}
	}
	r.closers = nil

	return first
}

// readLine returns the next line without its trailing newline.
// A final line without a newline is returned before io.EOF.
func (r *Reader) readLine() (string, error) {
	s, err := r.br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", pfx.Err(err)
	}
	r.line++

	return strings.TrimRight(s, "\r\n"), nil
}

// variantID prefers the ID column and falls back to CHROM:POS.
func variantID(cols []string) string {
	if id := cols[colID]; id != "" && id != "." {
		return id
	}

	return cols[colChrom] + ":" + cols[colPos]
}

// fieldIndex returns the position of key in a colon-separated FORMAT column.
func fieldIndex(format, key string) int {
	for i, f := range strings.Split(format, ":") {
		if f == key {
			return i
		}
	}

	return -1
}

// subfield returns the idx-th colon-separated subfield, or "." when absent.
func subfield(sample string, idx int) string {
	for i := 0; i < idx; i++ {
		cut := strings.IndexByte(sample, ':')
		if cut < 0 {
			return "."
		}
		sample = sample[cut+1:]
	}
	if cut := strings.IndexByte(sample, ':'); cut >= 0 {
		sample = sample[:cut]
	}

	return sample
}

// parseGT converts a GT value into a diploid call following the package call policy.
func parseGT(gt string) (genotype.Call, error) {
	alleles := strings.FieldsFunc(gt, func(r rune) bool { return r == '/' || r == '|' })
	if len(alleles) != 2 {
		return genotype.Missing, nil
	}

	var out [2]int
	for i, a := range alleles {
		if a == "." {
			return genotype.Missing, nil
		}
		// Allele indices are stored as int32; wider values are malformed, not truncated.
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil || v < 0 {
			return genotype.Missing, fmt.Errorf("%q: %w", gt, ErrMalformedGenotype)
		}
		out[i] = int(v)
	}

	return genotype.NewCall(out[0], out[1]), nil
}
