package repo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/najib3112/tifpoint/app/model"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uuid.UUID) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByNIM(nim string) (*model.User, error)
	FindAll(filter model.UserFilter) ([]model.User, error)
	Update(user *model.User) error
	Delete(id uuid.UUID) error
	FindByResetToken(tokenHash string, now time.Time) (*model.User, error)
	CountByRole(role string) (int64, error)
	StudentsWithApprovedActivities() ([]model.User, error)
}

type UserRepo struct {
	DB *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{DB: db}
}

func (r *UserRepo) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByEmail(email string) (*model.User, error) {
	return r.findOne("email = ?", email)
}

func (r *UserRepo) FindByUsername(username string) (*model.User, error) {
	return r.findOne("username = ?", username)
}

func (r *UserRepo) FindByNIM(nim string) (*model.User, error) {
	return r.findOne("nim = ?", nim)
}

// findOne returns (nil, nil) when no row matches so callers can treat
// uniqueness checks and lookups uniformly.
func (r *UserRepo) findOne(query string, args ...interface{}) (*model.User, error) {
	var user model.User
	err := r.DB.Where(query, args...).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindAll(filter model.UserFilter) ([]model.User, error) {
	q := r.DB.Model(&model.User{}).Order("created_at DESC")

	if filter.NIM != "" {
		q = q.Where("nim ILIKE ?", "%"+filter.NIM+"%")
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR username ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var users []model.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepo) Delete(id uuid.UUID) error {
	return r.DB.Delete(&model.User{}, "id = ?", id).Error
}

func (r *UserRepo) FindByResetToken(tokenHash string, now time.Time) (*model.User, error) {
	var user model.User
	err := r.DB.
		Where("reset_password_token = ? AND reset_password_expires > ?", tokenHash, now).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) CountByRole(role string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// StudentsWithApprovedActivities preloads only APPROVED activities so
// callers can total points without a query per student.
func (r *UserRepo) StudentsWithApprovedActivities() ([]model.User, error) {
	var students []model.User
	err := r.DB.
		Where("role = ?", model.RoleMahasiswa).
		Preload("Activities", "status = ?", model.StatusApproved).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}
