// SPDX-License-Identifier: MIT

package sitemap

// Option configures how a site table is read.
type Option func(o *options)

type options struct {
	comma      rune
	idColumn   string
	siteColumn string
}

func defaultOptions() options {
	return options{comma: ',', idColumn: DefaultIDColumn, siteColumn: DefaultSiteColumn}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithComma sets the field delimiter of a delimited table ('\t' for TSV).
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithColumns overrides the sample ID and site column names
// (e.g. "id" and "groups" for population files).
func WithColumns(idColumn, siteColumn string) Option {
	return func(o *options) {
		if idColumn != "" {
			o.idColumn = idColumn
		}
		if siteColumn != "" {
			o.siteColumn = siteColumn
		}
	}
}
