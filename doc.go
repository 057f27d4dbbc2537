// Package genonet is a genetic relationship engine: it turns multi-sample
// variant calls into a pairwise genetic distance matrix and reduces the
// complete sample graph to a deterministic minimum spanning network,
// annotated with each sample's collection site.
//
// Pipeline
//
//	genotype/     per-sample diploid calls (Call, Matrix, Source, Collect)
//	vcf/          Source adapter for plain or gzip/BGZF VCF text
//	sitemap/      sample → collection-site lookup from CSV/TSV or SQLite
//	distance/     parallel O(N²·V) distance matrix (allelic, Euclidean, Hamming)
//	graph/        complete relationship graph with site labels and warnings
//	prim_kruskal/ minimum spanning network (Kruskal, with a Prim cross-check)
//	export/       matrix CSV, network JSON, layouts and site colors
//	pipeline/     end-to-end runs driven by config/
//	cmd/genonet   command-line front end
//
// Control flow:
//
//	genotype.Matrix + sitemap.SiteMap → distance.Compute → graph.Build →
//	prim_kruskal.Kruskal → export.NewNetwork
//
// The raw-matrix path stops after distance.Compute and writes CSV.
//
// Guarantees
//
//   - The distance matrix is exactly symmetric with a zero diagonal; each
//     pair is computed once and mirrored. Missing calls never produce NaN.
//   - Spanning-tree ties are broken by a total order over (weight, from, to),
//     so the same input always yields the same network.
//   - Site colors are a pure function of the site labels.
//   - Fewer than two samples is a valid, degenerate input.
package genonet
