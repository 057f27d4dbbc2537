// Command genonet computes genetic distance matrices and minimum spanning
// networks from multi-sample VCF files.
//
// Usage:
//
//	genonet [flags] matrix  <calls.vcf[.gz]> <out.csv[.gz]>
//	genonet [flags] network <calls.vcf[.gz]> <sites.csv|.tsv|.db> [out.json|out.nwk][.gz]
//
// The network output defaults to <name>_MSN.json next to the VCF; .nwk and
// .newick outputs are written in Newick format.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carbocation/pfx"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/genonet/config"
	"github.com/katalvlaran/genonet/pipeline"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $GENONET_CONFIG)")
	metric := flag.String("metric", "", "distance metric: allelic, euclidean or hamming")
	workers := flag.Int("workers", -1, "distance workers (0 = GOMAXPROCS)")
	layout := flag.String("layout", "", "network layout: spring or circle")
	unordered := flag.Bool("unordered", false, "compare genotypes as unordered allele pairs")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "metric":
			cfg.Metric = *metric
		case "workers":
			cfg.Workers = *workers
		case "layout":
			cfg.Layout = *layout
		case "unordered":
			cfg.UnorderedGenotypes = *unordered
		}
	})

	p, err := pipeline.New(cfg, pipeline.WithLogger(log.Default()))
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	switch cmd := args[0]; {
	case cmd == "matrix" && len(args) == 3:
		if _, err := p.Matrix(ctx, args[1], args[2]); err != nil {
			log.Fatalln(err)
		}
	case cmd == "network" && (len(args) == 3 || len(args) == 4):
		out := ""
		if len(args) == 4 {
			out = args[3]
		}
		if _, err := p.Network(ctx, args[1], args[2], out); err != nil {
			log.Fatalln(err)
		}
	default:
		usage()
		log.Fatalln(pfx.Err(fmt.Errorf("%q with %d arguments is not recognized", cmd, len(args)-1)))
	}
	log.Printf("Done in %s (started %s)", time.Since(started).Round(time.Millisecond), humanize.Time(started))
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage:
  %[1]s [flags] matrix  <calls.vcf[.gz]> <out.csv[.gz]>
  %[1]s [flags] network <calls.vcf[.gz]> <sites.csv|.tsv|.db> [out.json|out.nwk][.gz]

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}
