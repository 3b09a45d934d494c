package repo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/najib3112/tifpoint/app/model"
)

type CompetencyRepository interface {
	FindAll() ([]model.Competency, error)
	FindByID(id uuid.UUID) (*model.Competency, error)
	Create(competency *model.Competency) error
	Update(competency *model.Competency) error
	Delete(id uuid.UUID) error
}

type ActivityTypeRepository interface {
	FindAll() ([]model.ActivityType, error)
	FindByID(id uuid.UUID) (*model.ActivityType, error)
	Create(activityType *model.ActivityType) error
	Update(activityType *model.ActivityType) error
	Delete(id uuid.UUID) error
}

type RecognizedCourseRepository interface {
	FindAll() ([]model.RecognizedCourse, error)
	FindByID(id uuid.UUID) (*model.RecognizedCourse, error)
	Create(course *model.RecognizedCourse) error
	Update(course *model.RecognizedCourse) error
	Delete(id uuid.UUID) error
}

type EventRepository interface {
	FindAll() ([]model.Event, error)
	FindByID(id uuid.UUID) (*model.Event, error)
	Create(event *model.Event) error
	Update(event *model.Event) error
	Delete(id uuid.UUID) error
}

type CompetencyRepo struct {
	DB *gorm.DB
}

func NewCompetencyRepo(db *gorm.DB) *CompetencyRepo {
	return &CompetencyRepo{DB: db}
}

func (r *CompetencyRepo) FindAll() ([]model.Competency, error) {
	var competencies []model.Competency
	err := r.DB.Order("name ASC").Find(&competencies).Error
	return competencies, err
}

func (r *CompetencyRepo) FindByID(id uuid.UUID) (*model.Competency, error) {
	var competency model.Competency
	if err := r.DB.First(&competency, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &competency, nil
}

func (r *CompetencyRepo) Create(competency *model.Competency) error {
	return r.DB.Create(competency).Error
}

func (r *CompetencyRepo) Update(competency *model.Competency) error {
	return r.DB.Save(competency).Error
}

func (r *CompetencyRepo) Delete(id uuid.UUID) error {
	return r.DB.Delete(&model.Competency{}, "id = ?", id).Error
}

type ActivityTypeRepo struct {
	DB *gorm.DB
}

func NewActivityTypeRepo(db *gorm.DB) *ActivityTypeRepo {
	return &ActivityTypeRepo{DB: db}
}

func (r *ActivityTypeRepo) FindAll() ([]model.ActivityType, error) {
	var types []model.ActivityType
	err := r.DB.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *ActivityTypeRepo) FindByID(id uuid.UUID) (*model.ActivityType, error) {
	var activityType model.ActivityType
	if err := r.DB.First(&activityType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &activityType, nil
}

func (r *ActivityTypeRepo) Create(activityType *model.ActivityType) error {
	return r.DB.Create(activityType).Error
}

func (r *ActivityTypeRepo) Update(activityType *model.ActivityType) error {
	return r.DB.Save(activityType).Error
}

func (r *ActivityTypeRepo) Delete(id uuid.UUID) error {
	return r.DB.Delete(&model.ActivityType{}, "id = ?", id).Error
}

type RecognizedCourseRepo struct {
	DB *gorm.DB
}

func NewRecognizedCourseRepo(db *gorm.DB) *RecognizedCourseRepo {
	return &RecognizedCourseRepo{DB: db}
}

func (r *RecognizedCourseRepo) FindAll() ([]model.RecognizedCourse, error) {
	var courses []model.RecognizedCourse
	err := r.DB.Order("name ASC").Find(&courses).Error
	return courses, err
}

func (r *RecognizedCourseRepo) FindByID(id uuid.UUID) (*model.RecognizedCourse, error) {
	var course model.RecognizedCourse
	if err := r.DB.First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *RecognizedCourseRepo) Create(course *model.RecognizedCourse) error {
	return r.DB.Create(course).Error
}

func (r *RecognizedCourseRepo) Update(course *model.RecognizedCourse) error {
	return r.DB.Save(course).Error
}

func (r *RecognizedCourseRepo) Delete(id uuid.UUID) error {
	return r.DB.Delete(&model.RecognizedCourse{}, "id = ?", id).Error
}

type EventRepo struct {
	DB *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{DB: db}
}

func (r *EventRepo) FindAll() ([]model.Event, error) {
	var events []model.Event
	err := r.DB.Order("date DESC").Find(&events).Error
	return events, err
}

func (r *EventRepo) FindByID(id uuid.UUID) (*model.Event, error) {
	var event model.Event
	if err := r.DB.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepo) Create(event *model.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepo) Update(event *model.Event) error {
	return r.DB.Save(event).Error
}

func (r *EventRepo) Delete(id uuid.UUID) error {
	return r.DB.Delete(&model.Event{}, "id = ?", id).Error
}
