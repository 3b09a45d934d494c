package model

import (
	"time"

	"github.com/google/uuid"
)

type Competency struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"size:100;unique;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type ActivityType struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"size:100;unique;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type RecognizedCourse struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name       string    `gorm:"size:200;not null" json:"name"`
	Provider   string    `gorm:"size:100" json:"provider"`
	Duration   int       `json:"duration"`
	PointValue int       `gorm:"not null" json:"pointValue"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `gorm:"size:200" json:"location"`
	PointValue  int       `gorm:"not null" json:"pointValue"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type CompetencyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type ActivityTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type RecognizedCourseRequest struct {
	Name       string `json:"name" validate:"required"`
	Provider   string `json:"provider"`
	Duration   *int   `json:"duration,omitempty"`
	PointValue *int   `json:"pointValue" validate:"required"`
	URL        string `json:"url"`
}

type EventRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Date        *time.Time `json:"date" validate:"required"`
	Location    string     `json:"location"`
	PointValue  *int       `json:"pointValue" validate:"required"`
}
