package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityStatus string

const (
	StatusPending  ActivityStatus = "PENDING"
	StatusApproved ActivityStatus = "APPROVED"
	StatusRejected ActivityStatus = "REJECTED"
)

type Activity struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title              string         `gorm:"size:200;not null" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null" json:"userId"`
	CompetencyID       uuid.UUID      `gorm:"type:uuid;not null" json:"competencyId"`
	ActivityTypeID     uuid.UUID      `gorm:"type:uuid;not null" json:"activityTypeId"`
	DocumentURL        string         `gorm:"not null" json:"documentUrl"`
	DocumentPublicID   *string        `json:"documentPublicId"`
	RecognizedCourseID *uuid.UUID     `gorm:"type:uuid" json:"recognizedCourseId"`
	EventID            *uuid.UUID     `gorm:"type:uuid" json:"eventId"`
	Point              *int           `json:"point"`
	Status             ActivityStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	Comment            *string        `gorm:"type:text" json:"comment"`
	VerifiedByID       *uuid.UUID     `gorm:"type:uuid" json:"verifiedById"`
	VerifiedAt         *time.Time     `json:"verifiedAt"`
	CreatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`

	// Relasi
	User             *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Competency       *Competency       `gorm:"foreignKey:CompetencyID" json:"competency,omitempty"`
	ActivityType     *ActivityType     `gorm:"foreignKey:ActivityTypeID" json:"activityType,omitempty"`
	RecognizedCourse *RecognizedCourse `gorm:"foreignKey:RecognizedCourseID" json:"recognizedCourse,omitempty"`
	Event            *Event            `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Verifier         *User             `gorm:"foreignKey:VerifiedByID" json:"verifier,omitempty"`
}

// PointValue is the canonical nil-to-zero coercion for the optional point
// column. Use it everywhere points are summed.
func (a Activity) PointValue() int {
	if a.Point == nil {
		return 0
	}
	return *a.Point
}

type CreateActivityRequest struct {
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description"`
	CompetencyID       uuid.UUID  `json:"competencyId" validate:"required"`
	ActivityTypeID     uuid.UUID  `json:"activityTypeId" validate:"required"`
	DocumentURL        string     `json:"documentUrl" validate:"required"`
	DocumentPublicID   *string    `json:"documentPublicId"`
	RecognizedCourseID *uuid.UUID `json:"recognizedCourseId"`
	EventID            *uuid.UUID `json:"eventId"`
}

type UpdateActivityRequest struct {
	Title              *string    `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	CompetencyID       *uuid.UUID `json:"competencyId,omitempty"`
	ActivityTypeID     *uuid.UUID `json:"activityTypeId,omitempty"`
	DocumentURL        *string    `json:"documentUrl,omitempty"`
	DocumentPublicID   *string    `json:"documentPublicId,omitempty"`
	RecognizedCourseID *uuid.UUID `json:"recognizedCourseId,omitempty"`
	EventID            *uuid.UUID `json:"eventId,omitempty"`
}

type VerifyActivityRequest struct {
	Status  string  `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Point   *int    `json:"point,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

type ValidatePointsRequest struct {
	ActivityTypeID uuid.UUID `json:"activityTypeId" validate:"required"`
	CompetencyID   uuid.UUID `json:"competencyId" validate:"required"`
	Points         *int      `json:"points" validate:"required"`
}

type ActivityFilter struct {
	UserID         *uuid.UUID
	Status         string
	CompetencyID   string
	ActivityTypeID string
	NIM            string
	Page           int
	Limit          int
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

type ActivityListResponse struct {
	Activities []Activity `json:"activities"`
	Pagination Pagination `json:"pagination"`
}
