package httpapi

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// timeWindow names the calendar date a plan is for. original_source's
// TimeWindow also carried startTime/endTime strings that neither
// generate_schedule nor the solver ever consulted; they are dropped here
// rather than ported as unused fields.
type timeWindow struct {
	Date string `json:"date" validate:"required"`
}

// planRequest mirrors original_source/api_adapter.py's PlanRequest.
// slotMinutes and parallelLimit are accepted for wire compatibility but,
// exactly as in the original, are not consulted by the solver: duration is
// derived per-activity, not from a fixed slot grid, and the core has no
// notion of parallel-placement limits beyond "one court at a time".
type planRequest struct {
	Window        timeWindow     `json:"window" validate:"required"`
	SlotMinutes   int            `json:"slotMinutes" validate:"omitempty,gte=5,lte=180"`
	ParallelLimit int            `json:"parallelLimit" validate:"omitempty,gte=1"`
	RestTime      int            `json:"restTime" validate:"gte=0"`
	EvaluateTime  int            `json:"evaluateTime" validate:"gte=0"`
	Options       map[string]any `json:"options"`
}
