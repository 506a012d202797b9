package view

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/miku/1brcmmap/internal/chunk"
)

// mapped is a zero-copy view backed by a read-only memory mapping.
type mapped struct {
	m mmap.MMap
}

func openMapped(path string) (*mapped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// The mapping stays valid after the file is closed.
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		// Zero length mappings are rejected by the kernel.
		return &mapped{}, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	_ = advise(m) // a hint, failure is harmless
	return &mapped{m: m}, nil
}

func (v *mapped) Len() int { return len(v.m) }

func (v *mapped) At(i int) byte { return v.m[i] }

func (v *mapped) Chunk(s chunk.Span) (chunk.Chunk, error) {
	if s.Start < 0 || s.End > len(v.m) || s.Start > s.End {
		return chunk.Chunk{}, fmt.Errorf("span %d-%d out of range [0, %d)", s.Start, s.End, len(v.m))
	}
	return chunk.Chunk{
		Offset: int64(s.Start),
		Data:   v.m[s.Start:s.End:s.End],
	}, nil
}

func (v *mapped) Close() error {
	if v.m == nil {
		return nil
	}
	err := v.m.Unmap()
	v.m = nil
	return err
}
