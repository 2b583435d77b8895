package solver

import (
	"sort"

	"smuggr.xyz/courtplanner/internal/clock"
	"smuggr.xyz/courtplanner/internal/scheduling/model"
)

// Slot is a timetable entry decorated for external consumption: HH:MM
// times, court/group names instead of indices, the activity, and reserved
// (currently always empty) judge/comment fields.
type Slot struct {
	Start    string
	End      string
	Court    string
	Group    string
	Activity string
	Judge    string
	Comment  string
}

// Assemble converts a solver result into chronologically ordered Slots.
// Solve appends entries in reverse recursion order (deepest placement
// first); Assemble is the one place that imposes the chronological order
// most callers expect.
func Assemble(input model.Input, entries []model.TimetableEntry) []Slot {
	ordered := make([]model.TimetableEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Period.Start < ordered[j].Period.Start
	})

	slots := make([]Slot, len(ordered))
	for i, e := range ordered {
		group := input.Groups[e.GroupIdx]
		slots[i] = Slot{
			Start:    clock.MinutesToHHMM(e.Period.Start),
			End:      clock.MinutesToHHMM(e.Period.End),
			Court:    input.Courts[e.CourtIdx].Name,
			Group:    group.Name,
			Activity: group.Activity,
		}
	}
	return slots
}
