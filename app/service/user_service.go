package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/app/repo"
	"github.com/najib3112/tifpoint/helper"
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(userRepo repo.UserRepository) *UserService {
	return &UserService{repo: userRepo}
}

// GET /api/users
func (s *UserService) List(c *fiber.Ctx) error {
	filter := model.UserFilter{
		NIM:    c.Query("nim"),
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}

	users, err := s.repo.FindAll(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}

	return c.JSON(model.SuccessResponse[[]model.UserResponse]{Success: true, Data: responses})
}

// GET /api/users/:id
func (s *UserService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid user ID"})
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "User not found"})
	}

	return c.JSON(model.SuccessResponse[model.UserResponse]{Success: true, Data: user.ToResponse()})
}

// PATCH /api/users/:id
func (s *UserService) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid user ID"})
	}

	requesterID := c.Locals("user_id").(uuid.UUID)
	role := c.Locals("role").(string)
	if role != model.RoleAdmin && requesterID != id {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{Success: false, Message: "You can only update your own profile"})
	}

	var req model.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "User not found"})
	}

	if req.Username != nil && *req.Username != user.Username {
		existing, err := s.repo.FindByUsername(*req.Username)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
		}
		if existing != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Username already in use"})
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.repo.FindByEmail(*req.Email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
		}
		if existing != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Email already in use"})
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.NIM != nil {
		user.NIM = req.NIM
	}
	// Role changes are admin only.
	if req.Role != nil && role == model.RoleAdmin {
		user.Role = *req.Role
	}
	if req.Password != nil {
		hashed, err := helper.HashPassword(*req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
		}
		user.Password = hashed
	}

	if err := s.repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[model.UserResponse]{
		Success: true,
		Message: "User updated successfully",
		Data:    user.ToResponse(),
	})
}

// DELETE /api/users/:id
func (s *UserService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid user ID"})
	}

	if _, err := s.repo.FindByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "User not found"})
	}

	if err := s.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "User deleted successfully"})
}
