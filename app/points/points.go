package points

import (
	"math"

	"github.com/google/uuid"
)

// TargetPoints is the number of competency points a student needs to
// be considered complete.
const TargetPoints = 36

type StudentProgress struct {
	TotalPoints          int     `json:"totalPoints"`
	TargetPoints         int     `json:"targetPoints"`
	CompletionPercentage float64 `json:"completionPercentage"`
	RemainingPoints      int     `json:"remainingPoints"`
	IsCompleted          bool    `json:"isCompleted"`
}

type CompetencyPoints struct {
	Competency   string    `json:"competency"`
	CompetencyID uuid.UUID `json:"competencyId"`
	Points       int       `json:"points"`
}

type Calculator struct {
	store  Store
	target int
}

func NewCalculator(store Store, target int) *Calculator {
	if target <= 0 {
		target = TargetPoints
	}
	return &Calculator{store: store, target: target}
}

func (c *Calculator) Target() int {
	return c.target
}

// ComputeProgress sums the approved points of a user against the target.
// Only APPROVED activities count; a missing point value counts as 0.
func (c *Calculator) ComputeProgress(userID uuid.UUID) (*StudentProgress, error) {
	activities, err := c.store.ApprovedActivities(userID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, a := range activities {
		total += a.PointValue()
	}

	return c.ProgressFromTotal(total), nil
}

// ProgressFromTotal builds a StudentProgress from an already-known point
// total. Listing endpoints that preload activities use this to avoid one
// query per student.
func (c *Calculator) ProgressFromTotal(total int) *StudentProgress {
	percentage := math.Min(float64(total)/float64(c.target)*100, 100)

	return &StudentProgress{
		TotalPoints:          total,
		TargetPoints:         c.target,
		CompletionPercentage: round2(percentage),
		RemainingPoints:      maxInt(c.target-total, 0),
		IsCompleted:          total >= c.target,
	}
}

// PointsByCompetency groups a user's approved points per competency. A
// competency row that no longer resolves keeps its sum under the label
// "Unknown" instead of failing the aggregation.
func (c *Calculator) PointsByCompetency(userID uuid.UUID) ([]CompetencyPoints, error) {
	sums, err := c.store.ApprovedPointsByCompetency(userID)
	if err != nil {
		return nil, err
	}

	details := make([]CompetencyPoints, 0, len(sums))
	for _, sum := range sums {
		name := "Unknown"
		competency, err := c.store.CompetencyByID(sum.CompetencyID)
		if err != nil {
			return nil, err
		}
		if competency != nil {
			name = competency.Name
		}

		details = append(details, CompetencyPoints{
			Competency:   name,
			CompetencyID: sum.CompetencyID,
			Points:       sum.Points,
		})
	}

	return details, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
