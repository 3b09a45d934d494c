package points

import (
	"time"

	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
)

// CompetencySum is one row of a grouped point aggregation.
type CompetencySum struct {
	CompetencyID uuid.UUID
	Points       int
}

// Store is the narrow view of the data layer the point engine needs.
// Lookup methods return (nil, nil) when the record does not exist; a
// non-nil error always means a storage failure and is propagated as-is.
type Store interface {
	ApprovedActivities(userID uuid.UUID) ([]model.Activity, error)
	ApprovedPointsByCompetency(userID uuid.UUID) ([]CompetencySum, error)
	AllCompetencies() ([]model.Competency, error)
	CompetencyByID(id uuid.UUID) (*model.Competency, error)
	ActivityTypeByID(id uuid.UUID) (*model.ActivityType, error)
	TopRecognizedCourses(limit int) ([]model.RecognizedCourse, error)
	UpcomingEvents(from time.Time, limit int) ([]model.Event, error)
}
