// Package solver implements the backtracking scheduler: a depth-first
// search over (start-time x court) assignments for every group, with a
// conflict-driven backjump that distinguishes "this group is its own
// blocker" from "a group further up the stack is the blocker" instead of
// backtracking chronologically.
//
// The search is single-threaded and synchronous; a Solve call owns its
// interval sets and group cursors exclusively for its duration and performs
// no I/O. Concurrent searches require independent inputs — nothing here is
// safe to share across goroutines mid-search.
package solver

import (
	"fmt"

	"smuggr.xyz/courtplanner/internal/scheduling/model"
)

// failMarker is the datum a failed search branch carries back up the
// stack: who could not be placed (groupIdx) and in what remaining window
// (period). A nil *failMarker means success.
type failMarker struct {
	groupIdx int
	period   model.TimePeriod
}

// state is the solver's mutable working set for one Solve call: group
// cursors and per-court interval sets, both owned exclusively for the
// search's lifetime and restored on every backtrack.
type state struct {
	groups       []model.Group
	courts       []*IntervalSet
	restTime     int
	evaluateTime int
	stageLimits  model.StageLimits
	durations    model.ActivityDurations
	timetable    []model.TimetableEntry
}

// Solve searches for a feasible timetable. It returns (nil, nil) when
// either input set is empty or no assignment exists (Infeasible and
// EmptyInput are not errors, per the core's error-handling contract); it
// returns a non-nil error only for the fatal, input-rejecting kinds
// (invalid period, non-positive count, unknown activity).
func Solve(input model.Input) ([]model.TimetableEntry, error) {
	if len(input.Groups) == 0 || len(input.Courts) == 0 {
		return nil, nil
	}

	st := &state{
		groups:       make([]model.Group, len(input.Groups)),
		courts:       make([]*IntervalSet, len(input.Courts)),
		restTime:     input.RestTime,
		evaluateTime: input.EvaluateTime,
		stageLimits:  input.StageLimits,
		durations:    input.ActivityDurations,
	}
	copy(st.groups, input.Groups)
	for i, court := range input.Courts {
		st.courts[i] = NewIntervalSet(court.Opening)
	}

	for _, g := range st.groups {
		if _, err := Duration(g, st.durations, st.evaluateTime); err != nil {
			return nil, err
		}
	}
	for _, limit := range st.stageLimits {
		if limit <= 0 {
			return nil, fmt.Errorf("%w: stage limit %d", model.ErrNonPositiveCount, limit)
		}
	}

	if fail := st.search(0); fail != nil {
		return nil, nil
	}
	return st.timetable, nil
}

// duration computes a group's performance length, trusting the
// pre-validation Solve already performed — any error here would mean an
// invariant the caller was supposed to guarantee has been violated.
func (st *state) duration(g model.Group) int {
	d, err := Duration(g, st.durations, st.evaluateTime)
	if err != nil {
		panic(fmt.Sprintf("courtplanner: solver invariant violated: %v", err))
	}
	return d
}

// stageIndex returns the index of the largest stage cap strictly below
// count, and whether any such cap exists. A group has a next elimination
// stage iff at least one stage cap is below its current count; its count
// then resets to that cap for the next round, so a group steps down
// through the nearest applicable cap each round (e.g. 20 -> 10 -> 5, never
// straight to the smallest cap that happens to qualify).
func (st *state) stageIndex(count int) (idx int, hasNext bool) {
	idx = -1
	best := 0
	for i, limit := range st.stageLimits {
		if limit < count && (idx == -1 || limit > best) {
			best = limit
			idx = i
		}
	}
	return idx, idx != -1
}

// search recursively assigns group st.groups[idx] onward. It returns nil on
// success (everyone from idx onward is placed) or a failMarker describing
// who blocked and where.
func (st *state) search(idx int) *failMarker {
	if idx >= len(st.groups) {
		return nil
	}

	group := &st.groups[idx]
	stageIdx, hasNext := st.stageIndex(group.Count)
	duration := st.duration(*group)

	fail := &failMarker{
		groupIdx: idx,
		period:   model.TimePeriod{Start: group.NextAvailable, End: group.Limit.End},
	}

	for start := group.NextAvailable; start < group.Limit.End; start++ {
		if start+duration > group.Limit.End {
			return fail
		}
		booked := model.TimePeriod{Start: start, End: start + duration}

		for courtIdx, court := range st.courts {
			if !court.Book(booked) {
				continue
			}

			prevCount, prevNextAvailable := group.Count, group.NextAvailable
			if hasNext {
				group.Count = st.stageLimits[stageIdx]
			}
			group.NextAvailable = start + duration + st.restTime

			nextIdx := idx + 1
			if hasNext {
				nextIdx = idx
			}
			result := st.search(nextIdx)

			if result == nil {
				st.timetable = append(st.timetable, model.TimetableEntry{
					GroupIdx: idx,
					CourtIdx: courtIdx,
					Period:   booked,
				})
				return nil
			}

			group.Count = prevCount
			group.NextAvailable = prevNextAvailable
			court.Unbook(booked)

			switch {
			case result.groupIdx == idx:
				// self-block: no later start for this group can help either;
				// someone further up the stack has to move instead.
				return fail
			case booked.End < result.period.Start || booked.Start >= result.period.End:
				// disjoint-block: our placement didn't cause the downstream
				// failure, so backjump past this group's remaining search.
				return result
			}
			// overlap-block: our choice did interfere, try other courts/starts.
		}
	}
	return fail
}
