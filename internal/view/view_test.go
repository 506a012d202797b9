package view

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/miku/1brcmmap/internal/chunk"
	"github.com/miku/1brcmmap/internal/measure"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.txt")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

var modes = []Mode{ZeroCopy, Copy}

func TestOpenChunk(t *testing.T) {
	data := "Tamale;27.5\nBergen;9.6\nLodwar;37.1"
	path := writeFile(t, data)
	for _, mode := range modes {
		v, err := Open(path, mode)
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		if v.Len() != len(data) {
			t.Fatalf("%v: got len %d, want %d", mode, v.Len(), len(data))
		}
		if v.At(6) != ';' {
			t.Fatalf("%v: got %q at 6", mode, v.At(6))
		}
		spans, err := chunk.Split(v, 4)
		if err != nil {
			t.Fatal(err)
		}
		var got string
		for _, s := range spans {
			c, err := v.Chunk(s)
			if err != nil {
				t.Fatalf("%v: %v", mode, err)
			}
			if c.Offset != int64(s.Start) {
				t.Fatalf("%v: got offset %d, want %d", mode, c.Offset, s.Start)
			}
			got += string(c.Data)
		}
		if got != data {
			t.Fatalf("%v: chunks reassemble to %q", mode, got)
		}
		if _, err := v.Chunk(chunk.Span{Start: 0, End: len(data) + 1}); err == nil {
			t.Fatalf("%v: expected out of range error", mode)
		}
		if err := v.Close(); err != nil {
			t.Fatalf("%v: close: %v", mode, err)
		}
	}
}

func TestOpenEmpty(t *testing.T) {
	path := writeFile(t, "")
	for _, mode := range modes {
		v, err := Open(path, mode)
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		if v.Len() != 0 {
			t.Fatalf("%v: got len %d", mode, v.Len())
		}
		if err := v.Close(); err != nil {
			t.Fatalf("%v: close: %v", mode, err)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	for _, mode := range modes {
		_, err := Open(path, mode)
		if !errors.Is(err, measure.ErrIO) || !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("%v: got %v, want ErrIO wrapping ErrNotExist", mode, err)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range modes {
		got, err := ParseMode(mode.String())
		if err != nil || got != mode {
			t.Fatalf("ParseMode(%q): got %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseMode("mmap"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
