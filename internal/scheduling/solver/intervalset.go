package solver

import (
	"sort"

	"smuggr.xyz/courtplanner/internal/scheduling/model"
)

// IntervalSet is the per-court ordered collection of disjoint, non-adjacent
// free intervals the solver books and unbooks during search. It owns its
// slice exclusively for the lifetime of one Solve call.
//
// Invariant (kept by Book and Unbook; intervalset_test.go checks it):
// free is sorted by Start, pairwise disjoint, and no two adjacent entries
// touch — free[i].End < free[i+1].Start for all i.
type IntervalSet struct {
	free []model.TimePeriod
}

// NewIntervalSet copies and sorts the given opening periods into a fresh
// free-list.
func NewIntervalSet(opening []model.TimePeriod) *IntervalSet {
	free := make([]model.TimePeriod, len(opening))
	copy(free, opening)
	sort.Slice(free, func(i, j int) bool { return free[i].Less(free[j]) })
	return &IntervalSet{free: free}
}

// Snapshot returns a defensive copy of the current free-list, for tests
// that assert a court's free periods round-trip exactly after a matched
// book/unbook pair.
func (s *IntervalSet) Snapshot() []model.TimePeriod {
	out := make([]model.TimePeriod, len(s.free))
	copy(out, s.free)
	return out
}

// bisectLeft returns the index of the first free interval whose Start is
// >= period.Start, mirroring Python's bisect.bisect_left against the
// TimePeriod ordering.
func (s *IntervalSet) bisectLeft(period model.TimePeriod) int {
	return sort.Search(len(s.free), func(i int) bool {
		return !s.free[i].Less(period)
	})
}

// Book attempts to reserve period. It binary-searches for the free interval
// with the greatest Start <= period.Start; the booking succeeds iff that
// interval fully contains period. On success the containing interval is
// split into zero, one, or two remainders depending on which endpoints
// coincide. Returns false without mutation if no containing interval exists.
func (s *IntervalSet) Book(period model.TimePeriod) bool {
	idx := s.bisectLeft(period)
	if idx >= len(s.free) || s.free[idx].Start > period.Start {
		idx--
	}
	if idx < 0 {
		return false
	}
	candidate := s.free[idx]
	if candidate.Start > period.Start || candidate.End < period.End {
		return false
	}

	switch {
	case candidate.Equal(period):
		// exact match: remove the interval entirely
		s.free = append(s.free[:idx], s.free[idx+1:]...)
	case candidate.End == period.End:
		// aligned at the right edge: shrink end down to period.Start
		s.free[idx].End = period.Start
	case candidate.Start == period.Start:
		// aligned at the left edge: raise start up to period.End
		s.free[idx].Start = period.End
	default:
		// strictly interior: shrink to the left remainder, insert the right
		right := model.TimePeriod{Start: period.End, End: candidate.End}
		s.free[idx].End = period.Start
		s.free = append(s.free, model.TimePeriod{})
		copy(s.free[idx+2:], s.free[idx+1:])
		s.free[idx+1] = right
	}
	return true
}

// Unbook reinserts period as available. It must be called as the exact
// inverse of a prior successful Book; calling it on anything else yields
// unspecified results (the data structure has no way to tell a legitimate
// inverse from an arbitrary period).
func (s *IntervalSet) Unbook(period model.TimePeriod) {
	idx := s.bisectLeft(period)

	// Idempotence guard: already contained in an existing free interval.
	if idx > 0 && s.free[idx-1].Contains(period) {
		return
	}
	if idx < len(s.free) && s.free[idx].Contains(period) {
		return
	}

	insert := period
	if idx > 0 && s.free[idx-1].End >= period.Start {
		insert.Start = s.free[idx-1].Start
		s.free = append(s.free[:idx-1], s.free[idx:]...)
		idx--
	}

	// Absorb every following interval that overlaps or touches insert, so a
	// right-side remnant left by a split re-merges.
	for idx < len(s.free) && s.free[idx].Start <= insert.End {
		if s.free[idx].End > insert.End {
			insert.End = s.free[idx].End
		}
		s.free = append(s.free[:idx], s.free[idx+1:]...)
	}

	s.free = append(s.free, model.TimePeriod{})
	copy(s.free[idx+1:], s.free[idx:])
	s.free[idx] = insert
}
