package points

import (
	"fmt"

	"github.com/google/uuid"
)

type PointRange struct {
	Min int
	Max int
}

// Per-type point policy. Types without an entry fall back to defaultRange.
var pointRanges = map[string]PointRange{
	"Seminar":     {Min: 1, Max: 3},
	"Course":      {Min: 2, Max: 8},
	"Program":     {Min: 3, Max: 10},
	"Research":    {Min: 5, Max: 15},
	"Achievement": {Min: 2, Max: 20},
}

var defaultRange = PointRange{Min: 1, Max: 10}

type ValidationResult struct {
	IsValid         bool   `json:"isValid"`
	Message         string `json:"message,omitempty"`
	SuggestedPoints *int   `json:"suggestedPoints,omitempty"`
}

// ValidatePointAssignment checks a proposed point award against the
// per-type range table. It is advisory only: verification accepts
// whatever point value the admin submits.
func (c *Calculator) ValidatePointAssignment(activityTypeID, competencyID uuid.UUID, proposedPoints int) (*ValidationResult, error) {
	activityType, err := c.store.ActivityTypeByID(activityTypeID)
	if err != nil {
		return nil, err
	}
	competency, err := c.store.CompetencyByID(competencyID)
	if err != nil {
		return nil, err
	}

	if activityType == nil || competency == nil {
		return &ValidationResult{
			IsValid: false,
			Message: "Invalid activity type or competency",
		}, nil
	}

	rng, ok := pointRanges[activityType.Name]
	if !ok {
		if proposedPoints < defaultRange.Min || proposedPoints > defaultRange.Max {
			suggested := clamp(proposedPoints, defaultRange.Min, defaultRange.Max)
			return &ValidationResult{
				IsValid:         false,
				Message:         fmt.Sprintf("Points should be between %d and %d", defaultRange.Min, defaultRange.Max),
				SuggestedPoints: &suggested,
			}, nil
		}
		return &ValidationResult{IsValid: true}, nil
	}

	if proposedPoints < rng.Min || proposedPoints > rng.Max {
		suggested := clamp(proposedPoints, rng.Min, rng.Max)
		return &ValidationResult{
			IsValid:         false,
			Message:         fmt.Sprintf("Points for %s should be between %d and %d", activityType.Name, rng.Min, rng.Max),
			SuggestedPoints: &suggested,
		}, nil
	}

	return &ValidationResult{IsValid: true}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
