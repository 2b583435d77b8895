// Package ingest converts the tabular input the upload/storage collaborator
// hands the core into model.Input, reproducing the table layout and
// edge-case handling of original_source/planner/planner.py's parse_excel:
// an activities table, a stage-limits table, a courts table, and a groups
// table.
//
// The retrieval pack carries no Go spreadsheet-reader library, so each
// table is expressed as CSV — the closest stdlib-native stand-in for the
// original's per-sheet rows (see DESIGN.md for why this one component uses
// encoding/csv rather than a third-party reader).
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"smuggr.xyz/courtplanner/internal/clock"
	"smuggr.xyz/courtplanner/internal/scheduling/model"
)

// Tables bundles the four CSV sheets that make up one upload.
type Tables struct {
	Activities io.Reader // columns: name, minutes_per_participant
	Stages     io.Reader // columns: max_participants
	Courts     io.Reader // columns: court, opening (HH:MM:SS), closing (HH:MM:SS)
	Groups     io.Reader // columns: name, count, activity, start (HH:MM, optional), end (HH:MM, optional)

	RestTime     int
	EvaluateTime int
}

// Parse reads every table and assembles a model.Input.
func Parse(t Tables) (model.Input, error) {
	durations, err := parseActivities(t.Activities)
	if err != nil {
		return model.Input{}, fmt.Errorf("ingest: activities: %w", err)
	}
	stages, err := parseStages(t.Stages)
	if err != nil {
		return model.Input{}, fmt.Errorf("ingest: stages: %w", err)
	}
	courts, minOpen, maxClose, err := parseCourts(t.Courts)
	if err != nil {
		return model.Input{}, fmt.Errorf("ingest: courts: %w", err)
	}
	groups, err := parseGroups(t.Groups, minOpen, maxClose)
	if err != nil {
		return model.Input{}, fmt.Errorf("ingest: groups: %w", err)
	}

	return model.Input{
		Groups:            groups,
		Courts:            courts,
		RestTime:          t.RestTime,
		EvaluateTime:      t.EvaluateTime,
		StageLimits:       stages,
		ActivityDurations: durations,
	}, nil
}

func readRows(r io.Reader) ([]map[string]string, error) {
	if r == nil {
		return nil, nil
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[strings.TrimSpace(col)] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseActivities(r io.Reader) (model.ActivityDurations, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	out := make(model.ActivityDurations, len(rows))
	for _, row := range rows {
		name := row["name"]
		rate, err := strconv.ParseFloat(row["minutes_per_participant"], 64)
		if err != nil {
			return nil, fmt.Errorf("activity %q: %w", name, err)
		}
		out[name] = rate
	}
	return out, nil
}

func parseStages(r io.Reader) (model.StageLimits, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	out := make(model.StageLimits, 0, len(rows))
	for _, row := range rows {
		v, err := strconv.Atoi(row["max_participants"])
		if err != nil {
			return nil, fmt.Errorf("stage limit %q: %w", row["max_participants"], err)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseCourts returns the parsed courts plus the earliest opening and
// latest closing minute across all of them, used to default blank group
// windows (see parseGroups).
func parseCourts(r io.Reader) ([]model.Court, int, int, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, 0, 0, err
	}

	byName := map[string][]model.TimePeriod{}
	order := []string{}
	minOpen := math.MaxInt
	maxClose := 0
	for _, row := range rows {
		name := row["court"]
		// Opening rounds up (ceiling), closing truncates down.
		start, err := clock.CeilHHMMSSToMinutes(row["opening"])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("court %q opening: %w", name, err)
		}
		end, err := clock.HHMMSSToMinutes(row["closing"])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("court %q closing: %w", name, err)
		}
		if _, seen := byName[name]; !seen {
			order = append(order, name)
		}
		byName[name] = append(byName[name], model.TimePeriod{Start: start, End: end})
		if start < minOpen {
			minOpen = start
		}
		if end > maxClose {
			maxClose = end
		}
	}
	if len(rows) == 0 {
		minOpen, maxClose = 0, 0
	}

	courts := make([]model.Court, 0, len(order))
	for _, name := range order {
		courts = append(courts, model.Court{Name: name, Opening: byName[name]})
	}
	return courts, minOpen, maxClose, nil
}

// parseGroups fills blank start/end group-window bounds with the global
// earliest opening / latest closing time. original_source/planner/planner.py
// calls pandas' fillna without assigning its (non-mutating) result, so the
// defaulting never actually happens there; this port implements the clear
// intent explicitly instead.
func parseGroups(r io.Reader, minOpen, maxClose int) ([]model.Group, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	groups := make([]model.Group, 0, len(rows))
	for _, row := range rows {
		name := row["name"]
		count, err := strconv.Atoi(row["count"])
		if err != nil {
			return nil, fmt.Errorf("group %q count: %w", name, err)
		}
		activity := row["activity"]

		start := minOpen
		if v := row["start"]; v != "" {
			start, err = clock.HHMMToMinutes(v)
			if err != nil {
				return nil, fmt.Errorf("group %q start: %w", name, err)
			}
		}
		end := maxClose
		if v := row["end"]; v != "" {
			end, err = clock.HHMMToMinutes(v)
			if err != nil {
				return nil, fmt.Errorf("group %q end: %w", name, err)
			}
		}

		limit, err := model.NewTimePeriod(start, end)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		group, err := model.NewGroup(name, activity, count, limit)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}
