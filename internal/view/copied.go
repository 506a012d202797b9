package view

import (
	"fmt"

	"golang.org/x/exp/mmap"

	"github.com/miku/1brcmmap/internal/chunk"
)

// copied reads chunks out of the file into fresh buffers.
type copied struct {
	r *mmap.ReaderAt
}

var _ chunk.Source = (*mmap.ReaderAt)(nil)

func openCopied(path string) (*copied, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &copied{r: r}, nil
}

func (v *copied) Len() int { return v.r.Len() }

func (v *copied) At(i int) byte { return v.r.At(i) }

func (v *copied) Chunk(s chunk.Span) (chunk.Chunk, error) {
	if s.Start < 0 || s.End > v.r.Len() || s.Start > s.End {
		return chunk.Chunk{}, fmt.Errorf("span %d-%d out of range [0, %d)", s.Start, s.End, v.r.Len())
	}
	buf := make([]byte, s.Len())
	if _, err := v.r.ReadAt(buf, int64(s.Start)); err != nil {
		return chunk.Chunk{}, fmt.Errorf("read span %d-%d: %w", s.Start, s.End, err)
	}
	return chunk.Chunk{Offset: int64(s.Start), Data: buf}, nil
}

func (v *copied) Close() error {
	return v.r.Close()
}
