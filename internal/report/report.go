// Package report renders aggregated statistics.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/andreyvit/diff"
	"golang.org/x/exp/maps"

	"github.com/miku/1brcmmap/internal/measure"
)

// Format writes all stations in key order as {name=min/mean/max, ...}.
func Format(w io.Writer, snap map[string]measure.Stats) error {
	_, err := io.WriteString(w, "{"+strings.Join(entries(snap), ", ")+"}\n")
	return err
}

// Lines renders one name=min/mean/max line per station, in key order.
func Lines(snap map[string]measure.Stats) string {
	var sb strings.Builder
	for _, e := range entries(snap) {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Diff returns a line diff of two renderings, or the empty string if they
// match.
func Diff(want, got string) string {
	want, got = diff.TrimLinesInString(want), diff.TrimLinesInString(got)
	if want == got {
		return ""
	}
	return diff.LineDiff(want, got)
}

func entries(snap map[string]measure.Stats) []string {
	keys := maps.Keys(snap)
	sort.Strings(keys)
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		s := snap[k]
		result = append(result, fmt.Sprintf("%s=%.1f/%.1f/%.1f", k, round(s.Min), round(s.Mean()), round(s.Max)))
	}
	return result
}

// round rounds half away from zero to one decimal; negative zero becomes 0.
func round(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0
	}
	return r
}
