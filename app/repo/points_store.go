package repo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/app/points"
)

// PointsStore adapts the database to the points.Store interface.
type PointsStore struct {
	DB *gorm.DB
}

func NewPointsStore(db *gorm.DB) *PointsStore {
	return &PointsStore{DB: db}
}

var _ points.Store = (*PointsStore)(nil)

func (s *PointsStore) ApprovedActivities(userID uuid.UUID) ([]model.Activity, error) {
	var activities []model.Activity
	err := s.DB.
		Where("user_id = ? AND status = ?", userID, model.StatusApproved).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *PointsStore) ApprovedPointsByCompetency(userID uuid.UUID) ([]points.CompetencySum, error) {
	var rows []struct {
		CompetencyID uuid.UUID
		Points       int
	}
	err := s.DB.Model(&model.Activity{}).
		Select("competency_id, COALESCE(SUM(point), 0) AS points").
		Where("user_id = ? AND status = ?", userID, model.StatusApproved).
		Group("competency_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make([]points.CompetencySum, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, points.CompetencySum{CompetencyID: row.CompetencyID, Points: row.Points})
	}
	return sums, nil
}

func (s *PointsStore) AllCompetencies() ([]model.Competency, error) {
	var competencies []model.Competency
	if err := s.DB.Find(&competencies).Error; err != nil {
		return nil, err
	}
	return competencies, nil
}

func (s *PointsStore) CompetencyByID(id uuid.UUID) (*model.Competency, error) {
	var competency model.Competency
	err := s.DB.First(&competency, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &competency, nil
}

func (s *PointsStore) ActivityTypeByID(id uuid.UUID) (*model.ActivityType, error) {
	var activityType model.ActivityType
	err := s.DB.First(&activityType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activityType, nil
}

func (s *PointsStore) TopRecognizedCourses(limit int) ([]model.RecognizedCourse, error) {
	var courses []model.RecognizedCourse
	err := s.DB.Order("point_value DESC").Limit(limit).Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *PointsStore) UpcomingEvents(from time.Time, limit int) ([]model.Event, error) {
	var events []model.Event
	err := s.DB.
		Where("date >= ?", from).
		Order("date ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
