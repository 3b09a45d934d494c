package repo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/najib3112/tifpoint/app/model"
)

type ActivityRepository interface {
	Create(activity *model.Activity) error
	FindByID(id uuid.UUID) (*model.Activity, error)
	FindAll(userID *uuid.UUID) ([]model.Activity, error)
	FindFiltered(filter model.ActivityFilter) ([]model.Activity, int64, error)
	FindByUser(userID uuid.UUID, limit int) ([]model.Activity, error)
	FindApprovedByUser(userID uuid.UUID) ([]model.Activity, error)
	Update(activity *model.Activity) error
	Verify(id uuid.UUID, status model.ActivityStatus, point *int, comment *string, verifierID uuid.UUID, at time.Time) (*model.Activity, error)
	Delete(id uuid.UUID) error
	Count(userID *uuid.UUID, status *model.ActivityStatus) (int64, error)
	RecentPending(limit int) ([]model.Activity, error)
	StatsByCompetency(approvedOnly bool) ([]GroupStat, error)
	StatsByType() ([]GroupStat, error)
	CreatedSince(since time.Time) ([]model.MonthlyActivity, error)
}

// GroupStat is one row of a grouped count+sum aggregation over activities.
type GroupStat struct {
	GroupID     uuid.UUID
	Count       int64
	TotalPoints int
}

type ActivityRepo struct {
	DB *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *ActivityRepo {
	return &ActivityRepo{DB: db}
}

func (r *ActivityRepo) withPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("User").
		Preload("Competency").
		Preload("ActivityType").
		Preload("RecognizedCourse").
		Preload("Event").
		Preload("Verifier")
}

func (r *ActivityRepo) Create(activity *model.Activity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepo) FindByID(id uuid.UUID) (*model.Activity, error) {
	var activity model.Activity
	err := r.withPreloads(r.DB).First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// FindAll returns every activity when userID is nil, otherwise only the
// user's own.
func (r *ActivityRepo) FindAll(userID *uuid.UUID) ([]model.Activity, error) {
	q := r.withPreloads(r.DB).Order("created_at DESC")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var activities []model.Activity
	if err := q.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepo) FindFiltered(filter model.ActivityFilter) ([]model.Activity, int64, error) {
	base := r.DB.Model(&model.Activity{})

	if filter.UserID != nil {
		base = base.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.CompetencyID != "" {
		base = base.Where("competency_id = ?", filter.CompetencyID)
	}
	if filter.ActivityTypeID != "" {
		base = base.Where("activity_type_id = ?", filter.ActivityTypeID)
	}
	if filter.NIM != "" {
		base = base.Joins("JOIN users ON users.id = activities.user_id").
			Where("users.nim ILIKE ?", "%"+filter.NIM+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var activities []model.Activity
	err := r.withPreloads(base.Session(&gorm.Session{})).
		Order("activities.created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

func (r *ActivityRepo) FindByUser(userID uuid.UUID, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.
		Preload("Competency").
		Preload("ActivityType").
		Preload("Verifier").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepo) FindApprovedByUser(userID uuid.UUID) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.withPreloads(r.DB).
		Where("user_id = ? AND status = ?", userID, model.StatusApproved).
		Order("verified_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepo) Update(activity *model.Activity) error {
	return r.DB.Save(activity).Error
}

func (r *ActivityRepo) Verify(id uuid.UUID, status model.ActivityStatus, point *int, comment *string, verifierID uuid.UUID, at time.Time) (*model.Activity, error) {
	updates := map[string]interface{}{
		"status":         status,
		"point":          point,
		"comment":        comment,
		"verified_by_id": verifierID,
		"verified_at":    at,
		"updated_at":     at,
	}
	if err := r.DB.Model(&model.Activity{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ActivityRepo) Delete(id uuid.UUID) error {
	return r.DB.Delete(&model.Activity{}, "id = ?", id).Error
}

func (r *ActivityRepo) Count(userID *uuid.UUID, status *model.ActivityStatus) (int64, error) {
	q := r.DB.Model(&model.Activity{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *ActivityRepo) RecentPending(limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.
		Preload("User").
		Preload("Competency").
		Preload("ActivityType").
		Where("status = ?", model.StatusPending).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepo) StatsByCompetency(approvedOnly bool) ([]GroupStat, error) {
	q := r.DB.Model(&model.Activity{}).
		Select("competency_id AS group_id, COUNT(id) AS count, COALESCE(SUM(point), 0) AS total_points").
		Group("competency_id")
	if approvedOnly {
		q = q.Where("status = ?", model.StatusApproved)
	}

	var stats []GroupStat
	if err := q.Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *ActivityRepo) StatsByType() ([]GroupStat, error) {
	var stats []GroupStat
	err := r.DB.Model(&model.Activity{}).
		Select("activity_type_id AS group_id, COUNT(id) AS count, COALESCE(SUM(point), 0) AS total_points").
		Group("activity_type_id").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *ActivityRepo) CreatedSince(since time.Time) ([]model.MonthlyActivity, error) {
	var rows []model.MonthlyActivity
	err := r.DB.Model(&model.Activity{}).
		Select("created_at, status").
		Where("created_at >= ?", since).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
