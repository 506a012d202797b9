// Package chunk cuts a file into record aligned spans and aggregates them.
package chunk

import (
	"errors"
	"fmt"

	"github.com/miku/1brcmmap/internal/measure"
)

// DefaultSize gives many chunks per worker for load balancing while keeping
// per chunk overhead small.
const DefaultSize = 2 << 15

var ErrChunkSize = errors.New("chunk size must be positive")

// Source is random access to the bytes of a file. *mmap.ReaderAt from
// golang.org/x/exp satisfies it, as does Bytes.
type Source interface {
	Len() int
	At(i int) byte
}

// Bytes adapts a byte slice to Source.
type Bytes []byte

func (b Bytes) Len() int { return len(b) }

func (b Bytes) At(i int) byte { return b[i] }

// Span is the half open byte range [Start, End) of a chunk. A span ends one
// past a line terminator, or at the end of the file.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int { return s.End - s.Start }

// Split partitions src into spans of at least size bytes, each extended to
// the next line terminator. The spans cover src exactly once and in order.
// An empty source yields no spans.
func Split(src Source, size int) ([]Span, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrChunkSize, size)
	}
	n := src.Len()
	spans := make([]Span, 0, n/size+1)
	var i, j int // start and stop index
	for i < n {
		j = n
		if size < n-i {
			j = i + size - 1
			for j < n && src.At(j) != measure.EOL {
				j++
			}
			if j < n {
				j++ // keep the terminator
			}
		}
		spans = append(spans, Span{Start: i, End: j})
		i = j
	}
	return spans, nil
}
