package measure

// Stats, as there is no need to keep all numbers around, we can compute them
// on the fly. All temperatures are in tenths of a degree.
type Stats struct {
	Min   int32
	Max   int32
	Sum   int64
	Count uint64
}

func newStats(v int) Stats {
	return Stats{Min: int32(v), Max: int32(v), Sum: int64(v), Count: 1}
}

func (s *Stats) Add(v int) {
	t := int32(v)
	if t < s.Min {
		s.Min = t
	}
	if t > s.Max {
		s.Max = t
	}
	s.Sum += int64(v)
	s.Count++
}

func (s *Stats) Merge(o *Stats) {
	if o.Min < s.Min {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.Sum += o.Sum
	s.Count += o.Count
}

// Mean returns Sum/Count in tenths, rounded half away from zero.
func (s *Stats) Mean() int64 {
	if s.Count == 0 {
		return 0
	}
	n := int64(s.Count)
	sum := s.Sum
	if sum < 0 {
		return -((-2*sum + n) / (2 * n))
	}
	return (2*sum + n) / (2 * n)
}
