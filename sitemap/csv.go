// SPDX-License-Identifier: MIT

package sitemap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// LoadCSV reads the delimited site table at path. See ReadCSV.
func LoadCSV(path string, opts ...Option) (*SiteMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return ReadCSV(f, opts...)
}

// ReadCSV reads a delimited table whose header names an ID column and a site
// column (default "id" and "site"); other columns are ignored.
//
// Steps:
//  1. Parse the header and locate both required columns (ErrMissingColumn otherwise).
//  2. Read each row, trimming surrounding spaces from ID and site.
//  3. Reject empty IDs and conflicting duplicate IDs; identical duplicates collapse.
func ReadCSV(r io.Reader, opts ...Option) (*SiteMap, error) {
	o := gatherOptions(opts)

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("sitemap: empty table: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, pfx.Err(err)
	}

	idCol, siteCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case o.idColumn:
			idCol = i
		case o.siteColumn:
			siteCol = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("sitemap: column %q: %w", o.idColumn, ErrMissingColumn)
	}
	if siteCol < 0 {
		return nil, fmt.Errorf("sitemap: column %q: %w", o.siteColumn, ErrMissingColumn)
	}

	sm := &SiteMap{sites: make(map[string]string)}
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}
		if len(rec) <= idCol || len(rec) <= siteCol {
			return nil, fmt.Errorf("sitemap: row %d has %d fields: %w", row, len(rec), ErrMissingColumn)
		}
		id := strings.TrimSpace(rec[idCol])
		if err = sm.add(id, strings.TrimSpace(rec[siteCol])); err != nil {
			return nil, fmt.Errorf("sitemap: row %d: %w", row, err)
		}
	}

	return sm, nil
}
