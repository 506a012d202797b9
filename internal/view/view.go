// Package view provides read-only random access to the contents of a file.
//
// Two modes exist. ZeroCopy maps the file and hands out chunks that alias the
// mapping: a chunk is valid only until the view is closed and must never be
// written to. Copy reads every chunk into a private buffer, which costs a copy
// but leaves the caller free to keep the chunk.
package view

import (
	"fmt"

	"github.com/miku/1brcmmap/internal/chunk"
	"github.com/miku/1brcmmap/internal/measure"
)

type Mode int

const (
	ZeroCopy Mode = iota
	Copy
)

func (m Mode) String() string {
	switch m {
	case ZeroCopy:
		return "zerocopy"
	case Copy:
		return "copy"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "zerocopy":
		return ZeroCopy, nil
	case "copy":
		return Copy, nil
	}
	return 0, fmt.Errorf("unknown view mode %q", s)
}

// View is an open file. It is safe for concurrent readers.
type View interface {
	chunk.Source
	// Chunk returns the bytes of s. See the package documentation for how
	// long they stay valid.
	Chunk(s chunk.Span) (chunk.Chunk, error)
	Close() error
}

// Open opens path in the given mode. Errors wrap measure.ErrIO.
func Open(path string, mode Mode) (View, error) {
	var (
		v   View
		err error
	)
	switch mode {
	case ZeroCopy:
		v, err = openMapped(path)
	case Copy:
		v, err = openCopied(path)
	default:
		return nil, fmt.Errorf("open %s: unknown view mode %v", path, mode)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", measure.ErrIO, err)
	}
	return v, nil
}
