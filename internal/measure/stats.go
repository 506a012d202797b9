// Package measure holds the per-station statistics, the aggregate table they
// live in and the record parser feeding it.
package measure

// Stats, as there is no need to keep all numbers around, we can compute them
// on the fly. Min, Max and Count do not depend on the order values arrive in;
// Sum does, in its last bits.
type Stats struct {
	Min   float64
	Max   float64
	Sum   float64
	Count uint32
}

// NewStats returns the statistics of a single observation.
func NewStats(v float64) *Stats {
	return &Stats{
		Min:   v,
		Max:   v,
		Sum:   v,
		Count: 1,
	}
}

func (s *Stats) Add(v float64) {
	if v > s.Max {
		s.Max = v
	}
	if v < s.Min {
		s.Min = v
	}
	s.Sum = s.Sum + v
	s.Count++
}

func (s *Stats) Merge(o *Stats) {
	if o.Min < s.Min {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.Sum = s.Sum + o.Sum
	s.Count = s.Count + o.Count
}

// Mean returns Sum / Count.
func (s Stats) Mean() float64 {
	return s.Sum / float64(s.Count)
}
