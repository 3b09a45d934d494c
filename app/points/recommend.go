package points

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
)

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

const recommendationLimit = 5

type CompetencyRecommendation struct {
	Competency                  string    `json:"competency"`
	CompetencyID                uuid.UUID `json:"competencyId"`
	CurrentPoints               int       `json:"currentPoints"`
	RecommendedAdditionalPoints int       `json:"recommendedAdditionalPoints"`
	Priority                    string    `json:"priority"`

	needed float64
}

type Recommendations struct {
	Progress                  *StudentProgress           `json:"progress"`
	CompetencyRecommendations []CompetencyRecommendation `json:"competencyRecommendations"`
	RecommendedCourses        []model.RecognizedCourse   `json:"recommendedCourses"`
	UpcomingEvents            []model.Event              `json:"upcomingEvents"`
}

// RecommendedActivities composes progress and per-competency sums into
// priority recommendations, with the highest-value courses and the next
// upcoming events. The target is split evenly across all competencies.
func (c *Calculator) RecommendedActivities(userID uuid.UUID, now time.Time) (*Recommendations, error) {
	progress, err := c.ComputeProgress(userID)
	if err != nil {
		return nil, err
	}

	byCompetency, err := c.PointsByCompetency(userID)
	if err != nil {
		return nil, err
	}

	competencies, err := c.store.AllCompetencies()
	if err != nil {
		return nil, err
	}

	currentPoints := make(map[uuid.UUID]int, len(byCompetency))
	for _, cp := range byCompetency {
		currentPoints[cp.CompetencyID] = cp.Points
	}

	recommendations := make([]CompetencyRecommendation, 0, len(competencies))
	if len(competencies) > 0 {
		targetPerCompetency := float64(c.target) / float64(len(competencies))

		for _, competency := range competencies {
			current := currentPoints[competency.ID]
			needed := targetPerCompetency - float64(current)
			if needed < 0 {
				needed = 0
			}

			priority := PriorityLow
			switch {
			case needed > targetPerCompetency*0.5:
				priority = PriorityHigh
			case needed > 0:
				priority = PriorityMedium
			}

			recommendations = append(recommendations, CompetencyRecommendation{
				Competency:                  competency.Name,
				CompetencyID:                competency.ID,
				CurrentPoints:               current,
				RecommendedAdditionalPoints: int(math.Ceil(needed)),
				Priority:                    priority,
				needed:                      needed,
			})
		}
	}

	// High first, then the biggest gap, then name for a stable order.
	sort.SliceStable(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if (a.Priority == PriorityHigh) != (b.Priority == PriorityHigh) {
			return a.Priority == PriorityHigh
		}
		if a.needed != b.needed {
			return a.needed > b.needed
		}
		return a.Competency < b.Competency
	})

	courses, err := c.store.TopRecognizedCourses(recommendationLimit)
	if err != nil {
		return nil, err
	}

	events, err := c.store.UpcomingEvents(now, recommendationLimit)
	if err != nil {
		return nil, err
	}

	return &Recommendations{
		Progress:                  progress,
		CompetencyRecommendations: recommendations,
		RecommendedCourses:        courses,
		UpcomingEvents:            events,
	}, nil
}
