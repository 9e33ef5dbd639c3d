// Package stats keeps the running counters of a chunk cache.
//
// A nil *Stats is valid and records nothing, so callers never branch on
// whether statistics are enabled.
package stats

type Stats struct {
	hits      *counter
	misses    *counter
	loads     *counter
	unloads   *counter
	evictions *counter
}

func New() *Stats {
	return &Stats{
		hits:      newCounter(),
		misses:    newCounter(),
		loads:     newCounter(),
		unloads:   newCounter(),
		evictions: newCounter(),
	}
}

func (s *Stats) IncHits() {
	if s == nil {
		return
	}

	s.hits.increment()
}

func (s *Stats) Hits() int64 {
	if s == nil {
		return 0
	}

	return s.hits.value()
}

func (s *Stats) IncMisses() {
	if s == nil {
		return
	}

	s.misses.increment()
}

func (s *Stats) Misses() int64 {
	if s == nil {
		return 0
	}

	return s.misses.value()
}

func (s *Stats) IncLoads() {
	if s == nil {
		return
	}

	s.loads.increment()
}

func (s *Stats) Loads() int64 {
	if s == nil {
		return 0
	}

	return s.loads.value()
}

func (s *Stats) IncUnloads() {
	if s == nil {
		return
	}

	s.unloads.increment()
}

func (s *Stats) Unloads() int64 {
	if s == nil {
		return 0
	}

	return s.unloads.value()
}

func (s *Stats) IncEvictions() {
	if s == nil {
		return
	}

	s.evictions.increment()
}

func (s *Stats) Evictions() int64 {
	if s == nil {
		return 0
	}

	return s.evictions.value()
}

// Ratio is the share of provide calls that found a stored chunk.
func (s *Stats) Ratio() float64 {
	if s == nil {
		return 0.0
	}

	hits := s.hits.value()
	misses := s.misses.value()
	if hits == 0 && misses == 0 {
		return 0.0
	}
	return float64(hits) / float64(hits+misses)
}

func (s *Stats) Clear() {
	if s == nil {
		return
	}

	s.hits.reset()
	s.misses.reset()
	s.loads.reset()
	s.unloads.reset()
	s.evictions.reset()
}
