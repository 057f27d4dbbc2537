// SPDX-License-Identifier: MIT

// Package sitemap maps sample identifiers to collection-site labels.
//
// A SiteMap is built once (from a table with "id" and "site" columns, a
// SQLite table, or an in-memory map) and is immutable afterwards. Lookups of
// unmapped samples fall back to the Unknown sentinel label.
package sitemap

import (
	"errors"
	"fmt"
	"sort"
)

// Unknown is the site label attached to samples absent from the map.
const Unknown = "Unknown"

// Default column names of a site table.
const (
	DefaultIDColumn   = "id"
	DefaultSiteColumn = "site"
)

// Sentinel errors for site map construction.
var (
	// ErrMissingColumn indicates the table header lacks a required column.
	ErrMissingColumn = errors.New("sitemap: required column missing")

	// ErrEmptyID indicates a row whose sample identifier is empty.
	ErrEmptyID = errors.New("sitemap: empty sample ID")

	// ErrConflictingSite indicates one sample ID mapped to two different sites.
	ErrConflictingSite = errors.New("sitemap: conflicting site labels")

	// ErrBadTableName indicates a SQLite table name that is not a plain identifier.
	ErrBadTableName = errors.New("sitemap: invalid table name")
)

// SiteMap is an immutable sample ID → site label lookup.
type SiteMap struct {
	sites map[string]string
}

// New copies entries into a SiteMap. Empty IDs are rejected.
func New(entries map[string]string) (*SiteMap, error) {
	sm := &SiteMap{sites: make(map[string]string, len(entries))}
	for id, site := range entries {
		if id == "" {
			return nil, ErrEmptyID
		}
		sm.sites[id] = site
	}

	return sm, nil
}

// add inserts id→site; identical duplicates are ignored, conflicting ones rejected.
func (sm *SiteMap) add(id, site string) error {
	if id == "" {
		return ErrEmptyID
	}
	if prev, ok := sm.sites[id]; ok && prev != site {
		return fmt.Errorf("sitemap: sample %q mapped to %q and %q: %w", id, prev, site, ErrConflictingSite)
	}
	sm.sites[id] = site

	return nil
}

// Lookup returns the site of id and whether it is mapped. A nil map maps nothing.
func (sm *SiteMap) Lookup(id string) (string, bool) {
	if sm == nil {
		return "", false
	}
	site, ok := sm.sites[id]

	return site, ok
}

// Site returns the site of id, or Unknown when id is unmapped.
func (sm *SiteMap) Site(id string) string {
	if site, ok := sm.Lookup(id); ok {
		return site
	}

	return Unknown
}

// IDs returns all mapped sample IDs in ascending order.
func (sm *SiteMap) IDs() []string {
	if sm == nil {
		return nil
	}
	out := make([]string, 0, len(sm.sites))
	for id := range sm.sites {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of mapped samples.
func (sm *SiteMap) Len() int {
	if sm == nil {
		return 0
	}

	return len(sm.sites)
}
