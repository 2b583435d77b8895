package httpapi

import "smuggr.xyz/courtplanner/internal/scheduling/solver"

// slotDTO is the wire shape of one timetable slot, matching
// original_source/api_adapter.py's Slot pydantic model field-for-field.
type slotDTO struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	CourtID string `json:"courtId"`
	GroupID string `json:"groupId"`
	Item    string `json:"item,omitempty"`
	Judge   string `json:"judge"`
	Comment string `json:"comment"`
}

func slotDTOs(slots []solver.Slot) []slotDTO {
	out := make([]slotDTO, len(slots))
	for i, s := range slots {
		out[i] = slotDTO{
			Start:   s.Start,
			End:     s.End,
			CourtID: s.Court,
			GroupID: s.Group,
			Item:    s.Activity,
			Judge:   s.Judge,
			Comment: s.Comment,
		}
	}
	return out
}

// planResponse is the wire shape of a computed or retrieved plan, matching
// original_source/api_adapter.py's PlanResponse.
type planResponse struct {
	ID    string    `json:"id"`
	Date  string    `json:"date"`
	Slots []slotDTO `json:"slots"`
}
