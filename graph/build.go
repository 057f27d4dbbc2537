// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: complete-graph construction from a distance matrix and a site map.

package graph

import (
	"io"
	"log"
	"strconv"

	"github.com/katalvlaran/genonet/distance"
	"github.com/katalvlaran/genonet/sitemap"
)

// Option configures Build.
type Option func(o *options)

type options struct {
	logger *log.Logger
}

// WithLogger routes Build warnings to logger. A nil logger keeps the default,
// which discards output.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Build returns the complete relationship graph of dm, labelling vertices via sites.
//
// Steps:
//  1. Validate dm; a nil sites map labels every sample Unknown.
//  2. Add one vertex per matrix row, attaching its site or Unknown
//     (recording and logging a MissingSite warning).
//  3. Record UnusedSite warnings for site-map IDs absent from dm, in ID order.
//  4. Emit each unordered pair {i, j}, i < j, once in index order, with
//     endpoints ordered lexicographically and weight D[i][j].
//
// Complexity: O(N²) time and memory for the edge list.
func Build(dm *distance.Matrix, sites *sitemap.SiteMap, opts ...Option) (*Graph, error) {
	if dm == nil {
		return nil, ErrNilMatrix
	}
	o := options{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(&o)
	}

	ids := dm.Samples()
	n := len(ids)
	g := &Graph{
		vertices: make([]Vertex, n),
		index:    make(map[string]int, n),
		edges:    make([]Edge, 0, n*(n-1)/2+1),
		dm:       dm,
	}

	// Vertices with site attributes.
	for i, id := range ids {
		site, ok := sites.Lookup(id)
		if !ok {
			site = sitemap.Unknown
			g.warn(o.logger, Warning{Kind: MissingSite, SampleID: id})
		}
		g.vertices[i] = Vertex{ID: id, Site: site}
		g.index[id] = i
	}

	// Site-map entries without genotype data.
	for _, id := range sites.IDs() {
		if _, ok := g.index[id]; !ok {
			g.warn(o.logger, Warning{Kind: UnusedSite, SampleID: id})
		}
	}

	// Complete edge set in (i, j) order.
	for i := 0; i < n; i++ {
		row := dm.Row(i)
		for j := i + 1; j < n; j++ {
			from, to := ids[i], ids[j]
			if to < from {
				from, to = to, from
			}
			g.edges = append(g.edges, Edge{
				ID:     "e" + strconv.Itoa(len(g.edges)+1),
				From:   from,
				To:     to,
				Weight: row[j],
			})
		}
	}

	return g, nil
}

// warn records w and logs it.
func (g *Graph) warn(logger *log.Logger, w Warning) {
	g.warnings = append(g.warnings, w)
	logger.Printf("Warning: %s", w)
}
