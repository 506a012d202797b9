// Package baseline is the straightforward line by line aggregation. It is the
// reference the parallel pipeline is checked against.
package baseline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/miku/1brcmmap/internal/measure"
)

// maxRecord is the longest line the scanner accepts.
const maxRecord = 1 << 20

// Options for a scan.
type Options struct {
	// Lenient skips records that fail to parse instead of failing.
	Lenient bool
}

type Result struct {
	Table   *measure.Table
	Skipped int
	Elapsed time.Duration
}

// ScanFile opens path and scans it.
func ScanFile(path string, opts Options) (*Result, error) {
	started := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", measure.ErrIO, err)
	}
	defer f.Close()
	res, err := Scan(f, opts)
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(started)
	return res, nil
}

// Scan aggregates all records read from r.
func Scan(r io.Reader, opts Options) (*Result, error) {
	started := time.Now()
	var (
		res     = &Result{Table: measure.NewTable(0)}
		scanner = bufio.NewScanner(r)
		offset  int64
	)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecord)
	scanner.Split(scanRecords)
	for scanner.Scan() {
		line := scanner.Bytes()
		key, v, err := measure.ParseRecord(line)
		switch {
		case err == nil:
			res.Table.Add(key, v)
		case opts.Lenient:
			res.Skipped++
		default:
			return nil, measure.NewRecordError(offset, line, err)
		}
		offset += int64(len(line)) + 1
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", measure.ErrIO, err)
	}
	res.Elapsed = time.Since(started)
	return res, nil
}

// scanRecords is bufio.ScanLines without the carriage return handling, so
// records are cut exactly where the chunk scanner cuts them.
func scanRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, measure.EOL); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}
