package service

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/app/points"
	"github.com/najib3112/tifpoint/app/repo"
	"github.com/najib3112/tifpoint/helper"
)

type AuthService struct {
	repo   repo.UserRepository
	calc   *points.Calculator
	mailer *helper.Mailer
}

func NewAuthService(userRepo repo.UserRepository, calc *points.Calculator, mailer *helper.Mailer) *AuthService {
	return &AuthService{repo: userRepo, calc: calc, mailer: mailer}
}

// POST /api/auth/register
func (s *AuthService) Register(c *fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	existing, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Email already in use"})
	}

	existing, err = s.repo.FindByUsername(req.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Username already in use"})
	}

	if req.NIM != nil && *req.NIM != "" {
		existing, err = s.repo.FindByNIM(*req.NIM)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
		}
		if existing != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "NIM already in use"})
		}
	}

	hashed, err := helper.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	user := model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		NIM:      req.NIM,
		Role:     model.RoleMahasiswa,
	}
	if err := s.repo.Create(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.UserResponse]{
		Success: true,
		Message: "User registered successfully",
		Data:    user.ToResponse(),
	})
}

// POST /api/auth/login
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	user, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if user == nil || !helper.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid credentials"})
	}

	token, err := helper.GenerateToken(*user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Failed to generate token"})
	}

	return c.JSON(model.SuccessResponse[model.LoginResponse]{
		Success: true,
		Message: "Login successful",
		Data: model.LoginResponse{
			Token: token,
			User:  user.ToResponse(),
		},
	})
}

// GET /api/auth/profile
func (s *AuthService) Profile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	user, err := s.repo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "User not found"})
	}

	if user.Role != model.RoleMahasiswa {
		return c.JSON(model.SuccessResponse[model.UserResponse]{Success: true, Data: user.ToResponse()})
	}

	progress, err := s.calc.ComputeProgress(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	type profileWithStats struct {
		model.UserResponse
		Statistics *points.StudentProgress `json:"statistics"`
	}

	return c.JSON(model.SuccessResponse[profileWithStats]{
		Success: true,
		Data: profileWithStats{
			UserResponse: user.ToResponse(),
			Statistics:   progress,
		},
	})
}

// POST /api/auth/forgot-password
func (s *AuthService) ForgotPassword(c *fiber.Ctx) error {
	var req model.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Email is required"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	user, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if user == nil {
		// Do not reveal whether the email is registered.
		return c.JSON(model.SuccessMessageResponse{
			Success: true,
			Message: "If your email is registered, you will receive a password reset link",
		})
	}

	token, hash, err := helper.GenerateResetToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	expires := time.Now().Add(helper.ResetTokenTTL)
	user.ResetPasswordToken = &hash
	user.ResetPasswordExpires = &expires
	if err := s.repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	if !s.mailer.Configured() {
		// Development fallback: no SMTP configured yet.
		return c.JSON(model.SuccessResponse[fiber.Map]{
			Success: true,
			Message: "Email service not configured. Here is your reset token for development:",
			Data:    fiber.Map{"resetToken": token},
		})
	}

	if err := s.mailer.SendPasswordResetEmail(user.Email, user.Name, token); err != nil {
		log.Printf("password reset email failed for %s: %v", user.Email, err)
		return c.JSON(model.SuccessResponse[fiber.Map]{
			Success: true,
			Message: "Email service error. Here is your reset token for development:",
			Data:    fiber.Map{"resetToken": token},
		})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Password reset link has been sent to your email",
	})
}

// POST /api/auth/reset-password
func (s *AuthService) ResetPassword(c *fiber.Ctx) error {
	var req model.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Token and new password are required"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	hash := helper.HashResetToken(req.Token)
	user, err := s.repo.FindByResetToken(hash, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if user == nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid or expired reset token"})
	}

	hashed, err := helper.HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	user.Password = hashed
	user.ResetPasswordToken = nil
	user.ResetPasswordExpires = nil
	if err := s.repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Password has been reset successfully",
	})
}
