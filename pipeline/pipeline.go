// SPDX-License-Identifier: MIT

// Package pipeline wires the engine end to end: genotype source → distance
// matrix → relationship graph → minimum spanning network → export.
//
// The raw-matrix path (Matrix) stops after the distance computation. The
// network path (Network) runs every stage. Both read their settings from a
// config.Config and log progress through an injected *log.Logger.
package pipeline

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/genonet/config"
	"github.com/katalvlaran/genonet/distance"
	"github.com/katalvlaran/genonet/export"
	"github.com/katalvlaran/genonet/genotype"
	"github.com/katalvlaran/genonet/graph"
	"github.com/katalvlaran/genonet/prim_kruskal"
	"github.com/katalvlaran/genonet/sitemap"
	"github.com/katalvlaran/genonet/vcf"
)

// NetworkSuffix is appended to the VCF base name for the default network output.
const NetworkSuffix = "_MSN.json"

// Pipeline runs configured engine passes. It holds no per-run state and may
// be reused.
type Pipeline struct {
	cfg    *config.Config
	logger *log.Logger
}

// Option configures a Pipeline.
type Option func(p *Pipeline)

// WithLogger routes progress and warnings to logger; nil keeps the discard default.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New validates cfg and returns a Pipeline. A nil cfg selects config.Default().
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{cfg: cfg, logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Result carries every stage output of a network run.
type Result struct {
	Genotypes *genotype.Matrix
	Distances *distance.Matrix
	Graph     *graph.Graph
	Tree      *prim_kruskal.Tree
	Network   *export.Network
}

// Genotypes reads the VCF at path into a matrix and logs its missingness.
func (p *Pipeline) Genotypes(ctx context.Context, path string) (*genotype.Matrix, error) {
	r, err := vcf.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	gm, err := genotype.Collect(ctx, r)
	if err != nil {
		return nil, err
	}
	p.logger.Printf("Read %s variants for %s samples from %s",
		humanize.Comma(int64(gm.NumVariants())), humanize.Comma(int64(gm.NumSamples())), path)
	p.logMissingness(gm)

	return gm, nil
}

// logMissingness reports the overall missing-call rate and every sample
// above the configured warning rate.
func (p *Pipeline) logMissingness(gm *genotype.Matrix) {
	ms := gm.Missingness()
	cells := gm.NumSamples() * gm.NumVariants()
	if cells == 0 {
		return
	}
	p.logger.Printf("Missing calls: %s of %s (%.2f%%)",
		humanize.Comma(int64(ms.Total)), humanize.Comma(int64(cells)), 100*float64(ms.Total)/float64(cells))
	ids := gm.Samples()
	for i := range ids {
		if rate := ms.SampleRate(i); rate > p.cfg.MissingWarnRate {
			p.logger.Printf("Warning: sample %q has %.1f%% missing calls", ids[i], 100*rate)
		}
	}
}

// Sites loads the site map at path. Files ending in .db, .sqlite or .sqlite3
// are read as SQLite databases from the configured table; .tsv files default
// to tab-delimited; anything else is CSV.
func (p *Pipeline) Sites(ctx context.Context, path string) (*sitemap.SiteMap, error) {
	opts, err := p.cfg.SiteOptions()
	if err != nil {
		return nil, err
	}

	var sm *sitemap.SiteMap
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		sm, err = sitemap.LoadSQLite(ctx, path, p.cfg.Sites.Table, opts...)
	case ".tsv":
		if p.cfg.Sites.Delimiter == "" {
			opts = append(opts, sitemap.WithComma('\t'))
		}
		sm, err = sitemap.LoadCSV(path, opts...)
	default:
		sm, err = sitemap.LoadCSV(path, opts...)
	}
	if err != nil {
		return nil, err
	}
	p.logger.Printf("Loaded %s site assignments from %s", humanize.Comma(int64(sm.Len())), path)

	return sm, nil
}

// Distances computes the configured distance matrix of gm.
func (p *Pipeline) Distances(ctx context.Context, gm *genotype.Matrix) (*distance.Matrix, error) {
	opts, err := p.cfg.DistanceOptions()
	if err != nil {
		return nil, err
	}
	dm, err := distance.Compute(ctx, gm, opts...)
	if err != nil {
		return nil, err
	}
	pairs := int64(dm.Size()) * int64(dm.Size()-1) / 2
	p.logger.Printf("Computed %s distances for %s pairs", p.cfg.Metric, humanize.Comma(pairs))

	return dm, nil
}

// Run executes the network stages over in-memory inputs.
//
// Steps:
//  1. Distance matrix with the configured metric.
//  2. Complete relationship graph with site labels (warnings logged).
//  3. Kruskal minimum spanning network.
//  4. Layout and color assignment.
func (p *Pipeline) Run(ctx context.Context, gm *genotype.Matrix, sites *sitemap.SiteMap) (*Result, error) {
	dm, err := p.Distances(ctx, gm)
	if err != nil {
		return nil, err
	}

	g, err := graph.Build(dm, sites, graph.WithLogger(p.logger))
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	p.logger.Printf("Relationship graph: %s vertices, %s edges, %d sites",
		humanize.Comma(int64(st.VertexCount)), humanize.Comma(int64(st.EdgeCount)), st.SiteCount)

	tree, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return nil, err
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	p.logger.Printf("Minimum spanning network: %d edges, total weight %g", len(tree.Edges), tree.TotalWeight)

	layout, err := p.cfg.NetworkLayout()
	if err != nil {
		return nil, err
	}
	n, err := export.NewNetwork(tree, layout)
	if err != nil {
		return nil, err
	}

	return &Result{Genotypes: gm, Distances: dm, Graph: g, Tree: tree, Network: n}, nil
}

// Matrix runs the raw-matrix path: VCF → distance matrix → CSV at outPath.
func (p *Pipeline) Matrix(ctx context.Context, vcfPath, outPath string) (*distance.Matrix, error) {
	gm, err := p.Genotypes(ctx, vcfPath)
	if err != nil {
		return nil, err
	}
	dm, err := p.Distances(ctx, gm)
	if err != nil {
		return nil, err
	}
	if err := writeTo(outPath, func(w io.Writer) error { return export.WriteMatrixCSV(w, dm) }); err != nil {
		return nil, err
	}
	p.logger.Printf("Distance matrix saved to %s", outPath)

	return dm, nil
}

// Network runs the full path and writes the network to outPath, or to
// DefaultNetworkPath(vcfPath) when outPath is empty. Paths ending in .nwk or
// .newick (optionally .gz) get Newick; anything else gets JSON.
func (p *Pipeline) Network(ctx context.Context, vcfPath, sitesPath, outPath string) (*Result, error) {
	gm, err := p.Genotypes(ctx, vcfPath)
	if err != nil {
		return nil, err
	}
	sites, err := p.Sites(ctx, sitesPath)
	if err != nil {
		return nil, err
	}
	res, err := p.Run(ctx, gm, sites)
	if err != nil {
		return nil, err
	}

	if outPath == "" {
		outPath = DefaultNetworkPath(vcfPath)
	}
	write := func(w io.Writer) error { return export.WriteNetworkJSON(w, res.Network) }
	if isNewick(outPath) {
		write = func(w io.Writer) error { return export.WriteNewick(w, res.Tree) }
	}
	if err := writeTo(outPath, write); err != nil {
		return nil, err
	}
	p.logger.Printf("Minimum spanning network saved to %s", outPath)

	return res, nil
}

// DefaultNetworkPath places <name>_MSN.json next to the VCF, with name the
// file name stripped of .gz, .bgz and .vcf.
func DefaultNetworkPath(vcfPath string) string {
	dir, name := filepath.Split(vcfPath)
	for _, ext := range []string{".gz", ".bgz", ".vcf"} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
		}
	}

	return filepath.Join(dir, name+NetworkSuffix)
}

func isNewick(path string) bool {
	name := strings.TrimSuffix(strings.ToLower(path), ".gz")

	return strings.HasSuffix(name, ".nwk") || strings.HasSuffix(name, ".newick")
}

// writeTo creates path, runs write and closes it, keeping the first error.
func writeTo(path string, write func(io.Writer) error) error {
	w, err := export.CreateFile(path)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}
