package solver

import (
	"fmt"
	"math"

	"smuggr.xyz/courtplanner/internal/scheduling/model"
)

// Duration computes the integer minute length of one performance by group,
// given the per-participant rate for its activity and a fixed per-judge
// evaluation overhead shared by every performance.
//
//	duration = ceil(count * perParticipantMinutes[activity] + evaluateTime)
//
// The per-participant rate is real-valued; the result is rounded up to an
// integer minute count so it composes with the integer interval arithmetic
// elsewhere in the solver.
func Duration(group model.Group, durations model.ActivityDurations, evaluateTime int) (int, error) {
	if group.Count <= 0 {
		return 0, fmt.Errorf("%w: got %d", model.ErrNonPositiveCount, group.Count)
	}
	rate, ok := durations[group.Activity]
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrUnknownActivity, group.Activity)
	}
	return int(math.Ceil(float64(group.Count)*rate + float64(evaluateTime))), nil
}
