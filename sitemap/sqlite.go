// SPDX-License-Identifier: MIT

package sitemap

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

// sqliteDriver is the database/sql driver name registered by modernc.org/sqlite.
const sqliteDriver = "sqlite"

// identRE restricts table and column names to plain SQL identifiers,
// since they are interpolated into the query text.
var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// siteRow is one row of a site table as scanned by sqlx.
type siteRow struct {
	ID   string         `db:"id"`
	Site sql.NullString `db:"site"`
}

// LoadSQLite reads the site map from table in the SQLite database at path.
//
// The table must expose the ID and site columns (default "id" and "site",
// see WithColumns). Rows with a NULL site are skipped, leaving the sample
// unmapped.
func LoadSQLite(ctx context.Context, path, table string, opts ...Option) (*SiteMap, error) {
	o := gatherOptions(opts)
	for _, name := range []string{table, o.idColumn, o.siteColumn} {
		if !identRE.MatchString(name) {
			return nil, fmt.Errorf("sitemap: %q: %w", name, ErrBadTableName)
		}
	}

	// URI filenames have to begin with 'file:'; see https://www.sqlite.org/c3ref/open.html
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.ConnectContext(ctx, sqliteDriver, path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer db.Close()

	var rows []siteRow
	query := fmt.Sprintf(`SELECT %s AS id, %s AS site FROM %s`, o.idColumn, o.siteColumn, table)
	if err = db.SelectContext(ctx, &rows, query); err != nil {
		return nil, pfx.Err(err)
	}

	sm := &SiteMap{sites: make(map[string]string, len(rows))}
	for _, r := range rows {
		if !r.Site.Valid {
			continue
		}
		if err = sm.add(strings.TrimSpace(r.ID), strings.TrimSpace(r.Site.String)); err != nil {
			return nil, err
		}
	}

	return sm, nil
}
