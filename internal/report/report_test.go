package report

import (
	"strings"
	"testing"

	"github.com/miku/1brcmmap/internal/measure"
)

var example = map[string]measure.Stats{
	"Paris":  {Min: 12.3, Max: 15.0, Sum: 12.3 + 15.0, Count: 2},
	"London": {Min: 9.5, Max: 9.5, Sum: 9.5, Count: 1},
}

func TestFormat(t *testing.T) {
	var sb strings.Builder
	if err := Format(&sb, example); err != nil {
		t.Fatal(err)
	}
	want := "{London=9.5/9.5/9.5, Paris=12.3/13.7/15.0}\n"
	if sb.String() != want {
		t.Fatalf("got %q, want %q", sb.String(), want)
	}
}

func TestFormatEmpty(t *testing.T) {
	var sb strings.Builder
	if err := Format(&sb, nil); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "{}\n" {
		t.Fatalf("got %q", sb.String())
	}
}

func TestRound(t *testing.T) {
	var cases = []struct {
		v, want float64
	}{
		{13.65, 13.7},
		{-3.84, -3.8},
		{-0.04, 0},
		{0.05, 0.1},
		{-12.25, -12.3},
	}
	for _, c := range cases {
		if got := round(c.v); got != c.want {
			t.Fatalf("round(%v): got %v, want %v", c.v, got, c.want)
		}
	}
	if got := Lines(map[string]measure.Stats{"x": {Min: -0.01, Max: -0.01, Sum: -0.01, Count: 1}}); got != "x=0.0/0.0/0.0\n" {
		t.Fatalf("got %q", got)
	}
}

func TestDiff(t *testing.T) {
	a := Lines(example)
	if d := Diff(a, a); d != "" {
		t.Fatalf("unexpected diff for equal input: %q", d)
	}
	b := Lines(map[string]measure.Stats{"London": example["London"]})
	d := Diff(a, b)
	if !strings.Contains(d, "Paris=12.3/13.7/15.0") {
		t.Fatalf("diff does not mention the missing line: %q", d)
	}
}
