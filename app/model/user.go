package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleAdmin     = "ADMIN"
	RoleMahasiswa = "MAHASISWA"
)

type User struct {
	ID                   uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username             string     `gorm:"size:50;unique;not null" json:"username"`
	Email                string     `gorm:"size:100;unique;not null" json:"email"`
	Password             string     `gorm:"not null" json:"-"`
	Name                 string     `gorm:"size:100;not null" json:"name"`
	NIM                  *string    `gorm:"column:nim;size:20;unique" json:"nim"`
	Role                 string     `gorm:"size:20;default:'MAHASISWA'" json:"role"`
	ResetPasswordToken   *string    `gorm:"size:64" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relasi
	Activities []Activity `gorm:"foreignKey:UserID" json:"activities,omitempty"`
}

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required"`
	NIM      *string `json:"nim,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	NIM      *string `json:"nim,omitempty"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN MAHASISWA"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	NIM       *string   `json:"nim"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		NIM:       u.NIM,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type JWTClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

type UserFilter struct {
	NIM    string
	Role   string
	Search string
}
