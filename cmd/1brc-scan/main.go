// 1brc-scan aggregates measurements line by line, from a file or stdin. It is
// slow on purpose and serves as the reference for 1brc-mmap.
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
	"flag"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/miku/1brcmmap/internal/baseline"
	"github.com/miku/1brcmmap/internal/report"
)

var (
	lenient    = flag.Bool("lenient", false, "skip lines that do not parse instead of failing")
	cpuprofile = flag.Bool("cpuprofile", false, "write a cpu profile to the current directory")
)

func main() {
	flag.Parse()
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}
	var (
		opts = baseline.Options{Lenient: *lenient}
		res  *baseline.Result
		err  error
	)
	if fn := flag.Arg(0); fn != "" && fn != "-" {
		res, err = baseline.ScanFile(fn, opts)
	} else {
		res, err = baseline.Scan(os.Stdin, opts)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := report.Format(os.Stdout, res.Table.Snapshot()); err != nil {
		log.Fatal(err)
	}
	if res.Skipped > 0 {
		log.Printf("skipped %d unparsable lines", res.Skipped)
	}
	log.Printf("Duration simple file read: %v", res.Elapsed)
}
