// 1brc-mmap aggregates a measurements file with one worker per CPU, reading
// the file through a memory mapping.
//
// data:
//
// Tamale;27.5
// Bergen;9.6
// Lodwar;37.1
// Whitehorse;-3.8
// Ouarzazate;19.1
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/pkg/profile"

	"github.com/miku/1brcmmap/internal/baseline"
	"github.com/miku/1brcmmap/internal/chunk"
	"github.com/miku/1brcmmap/internal/pipeline"
	"github.com/miku/1brcmmap/internal/report"
	"github.com/miku/1brcmmap/internal/view"
)

var (
	chunkSize   = flag.Int("chunk", chunk.DefaultSize, "target chunk size in bytes")
	workers     = flag.Int("workers", runtime.GOMAXPROCS(0), "number of workers")
	viewMode    = flag.String("mode", view.ZeroCopy.String(), "file view: zerocopy or copy")
	runBaseline = flag.Bool("baseline", false, "run the line by line scan first and log its duration")
	verify      = flag.Bool("verify", false, "compare with the line by line scan, exit 1 on any difference")
	profileKind = flag.String("profile", "", "write a cpu, mem or trace profile to the current directory")
	verbose     = flag.Bool("v", false, "log every chunk")
)

var errMismatch = errors.New("parallel result differs from line by line scan")

// startProfile starts a pkg/profile session of the given kind, if any.
func startProfile(kind string) (interface{ Stop() }, error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return nil, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "trace":
		mode = profile.TraceProfile
	default:
		return nil, fmt.Errorf("unknown profile %q", kind)
	}
	return profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook), nil
}

func run(fn string) error {
	mode, err := view.ParseMode(*viewMode)
	if err != nil {
		return err
	}
	p, err := startProfile(*profileKind)
	if err != nil {
		return err
	}
	if p != nil {
		defer p.Stop()
	}
	var base *baseline.Result
	if *runBaseline || *verify {
		base, err = baseline.ScanFile(fn, baseline.Options{})
		if err != nil {
			return err
		}
		log.Printf("Duration simple file read: %v", base.Elapsed)
	}
	res, err := pipeline.Run(context.Background(), fn, pipeline.Options{
		ChunkSize: *chunkSize,
		Workers:   *workers,
		Mode:      mode,
		Logger:    log.Default(),
		Verbose:   *verbose,
	})
	if err != nil {
		return err
	}
	snap := res.Table.Snapshot()
	if err := report.Format(os.Stdout, snap); err != nil {
		return err
	}
	log.Printf("Duration parallel mmap read: %v", res.Elapsed)
	if *verify {
		if d := report.Diff(report.Lines(base.Table.Snapshot()), report.Lines(snap)); d != "" {
			fmt.Fprint(os.Stderr, d)
			return errMismatch
		}
		log.Printf("verified %d stations against line by line scan", len(snap))
	}
	return nil
}

func main() {
	flag.Parse()
	fn := "measurements.txt"
	if flag.NArg() > 0 {
		fn = flag.Arg(0)
	}
	if err := run(fn); err != nil {
		log.Fatal(err)
	}
}
