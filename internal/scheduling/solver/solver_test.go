package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smuggr.xyz/courtplanner/internal/scheduling/model"
)

func mustCourt(t *testing.T, name string, periods ...model.TimePeriod) model.Court {
	t.Helper()
	return model.Court{Name: name, Opening: periods}
}

func TestSolveSingleGroupTrivialFit(t *testing.T) {
	g := mustGroup(t, "G1", "A", 5, 540, 600)
	court := mustCourt(t, "C1", period(t, 540, 600))

	entries, err := Solve(model.Input{
		Groups:            []model.Group{g},
		Courts:            []model.Court{court},
		ActivityDurations: model.ActivityDurations{"A": 3},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, period(t, 540, 555), entries[0].Period)
	assert.Equal(t, 0, entries[0].GroupIdx)
	assert.Equal(t, 0, entries[0].CourtIdx)
}

func TestSolveTwoGroupsSameCourt(t *testing.T) {
	g1 := mustGroup(t, "G1", "A", 4, 540, 600)
	g2 := mustGroup(t, "G2", "A", 4, 540, 600)
	court := mustCourt(t, "C1", period(t, 540, 600))

	entries, err := Solve(model.Input{
		Groups:            []model.Group{g1, g2},
		Courts:            []model.Court{court},
		ActivityDurations: model.ActivityDurations{"A": 3},
	})
	require.NoError(t, err)
	slots := Assemble(model.Input{
		Groups: []model.Group{g1, g2},
		Courts: []model.Court{court},
	}, entries)
	require.Len(t, slots, 2)
	assert.Equal(t, "G1", slots[0].Group)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "09:12", slots[0].End)
	assert.Equal(t, "G2", slots[1].Group)
	assert.Equal(t, "09:12", slots[1].Start)
	assert.Equal(t, "09:24", slots[1].End)
}

// A court whose opening hours are split into two fragments never accepts a
// booking that straddles the gap between them; the placement must land
// entirely inside one fragment.
func TestSolveNeverStraddlesCourtGap(t *testing.T) {
	g := mustGroup(t, "G1", "A", 20, 540, 720)
	court := mustCourt(t, "C1", period(t, 540, 600), period(t, 660, 720))

	entries, err := Solve(model.Input{
		Groups:            []model.Group{g},
		Courts:            []model.Court{court},
		ActivityDurations: model.ActivityDurations{"A": 1},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	p := entries[0].Period
	inFirst := p.Start >= 540 && p.End <= 600
	inSecond := p.Start >= 660 && p.End <= 720
	assert.True(t, inFirst || inSecond, "period %+v must fit within one opening fragment", p)
}

func TestSolveInfeasibleByWindow(t *testing.T) {
	g := mustGroup(t, "G1", "A", 10, 540, 580)
	court := mustCourt(t, "C1", period(t, 540, 580))

	entries, err := Solve(model.Input{
		Groups:            []model.Group{g},
		Courts:            []model.Court{court},
		ActivityDurations: model.ActivityDurations{"A": 5},
	})
	require.NoError(t, err)
	assert.Nil(t, entries)
}

// Elimination through stage limits produces exactly three placements with
// strictly increasing starts separated by duration + rest, and participant
// counts stepping down 20 -> 10 -> 5.
func TestSolveEliminationStages(t *testing.T) {
	g := mustGroup(t, "G1", "A", 20, 0, 1440)
	court := mustCourt(t, "C1", period(t, 0, 1440))

	entries, err := Solve(model.Input{
		Groups:            []model.Group{g},
		Courts:            []model.Court{court},
		StageLimits:       model.StageLimits{10, 5},
		ActivityDurations: model.ActivityDurations{"A": 1},
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	ordered := make([]model.TimetableEntry, len(entries))
	copy(ordered, entries)
	// Solve appends deepest-first; reverse to chronological order.
	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}

	wantDurations := []int{20, 10, 5}
	prevStart, prevEnd := -1, -1
	for i, e := range ordered {
		assert.Equal(t, wantDurations[i], e.Period.End-e.Period.Start)
		assert.Greater(t, e.Period.Start, prevStart)
		if i > 0 {
			assert.GreaterOrEqual(t, e.Period.Start, prevEnd)
		}
		prevStart, prevEnd = e.Period.Start, e.Period.End
	}
}

// G2's own window can never fit its duration regardless of where G1 lands,
// so every G1 start immediately produces G2's self-block fail marker; the
// search must resolve to infeasible in time linear in G1's window, never
// trying to satisfy G2 by varying G1 beyond what the marker already rules
// out.
func TestSolveBackjumpOnSelfBlock(t *testing.T) {
	g1 := mustGroup(t, "G1", "A", 60, 0, 600) // duration 60, window 600 wide
	g2 := mustGroup(t, "G2", "A", 1000, 0, 600)
	court := mustCourt(t, "C1", period(t, 0, 600))

	entries, err := Solve(model.Input{
		Groups:            []model.Group{g1, g2},
		Courts:            []model.Court{court},
		ActivityDurations: model.ActivityDurations{"A": 1},
	})
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestSolveEmptyInputs(t *testing.T) {
	entries, err := Solve(model.Input{})
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestSolveUnknownActivityIsFatal(t *testing.T) {
	g := mustGroup(t, "G1", "missing", 1, 0, 100)
	court := mustCourt(t, "C1", period(t, 0, 100))
	_, err := Solve(model.Input{
		Groups:            []model.Group{g},
		Courts:            []model.Court{court},
		ActivityDurations: model.ActivityDurations{"A": 1},
	})
	assert.Error(t, err)
}

// On success, no two entries on the same court may overlap.
func TestSolveNoOverlapOnSameCourt(t *testing.T) {
	g1 := mustGroup(t, "G1", "A", 4, 540, 600)
	g2 := mustGroup(t, "G2", "A", 4, 540, 600)
	g3 := mustGroup(t, "G3", "A", 4, 540, 600)
	court := mustCourt(t, "C1", period(t, 540, 600))

	entries, err := Solve(model.Input{
		Groups:            []model.Group{g1, g2, g3},
		Courts:            []model.Court{court},
		ActivityDurations: model.ActivityDurations{"A": 3},
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i].Period, entries[j].Period
			overlap := a.End > b.Start && b.End > a.Start
			assert.False(t, overlap, "entries %+v and %+v overlap", a, b)
		}
	}
}
