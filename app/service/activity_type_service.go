package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/app/repo"
	"github.com/najib3112/tifpoint/helper"
)

type ActivityTypeService struct {
	repo repo.ActivityTypeRepository
}

func NewActivityTypeService(activityTypeRepo repo.ActivityTypeRepository) *ActivityTypeService {
	return &ActivityTypeService{repo: activityTypeRepo}
}

// GET /api/activity-types
func (s *ActivityTypeService) List(c *fiber.Ctx) error {
	types, err := s.repo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	return c.JSON(model.SuccessResponse[[]model.ActivityType]{Success: true, Data: types})
}

// GET /api/activity-types/:id
func (s *ActivityTypeService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid activity type ID"})
	}

	activityType, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Activity type not found"})
	}
	return c.JSON(model.SuccessResponse[*model.ActivityType]{Success: true, Data: activityType})
}

// POST /api/activity-types
func (s *ActivityTypeService) Create(c *fiber.Ctx) error {
	var req model.ActivityTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	activityType := model.ActivityType{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(&activityType); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.ActivityType]{
		Success: true,
		Message: "Activity type created successfully",
		Data:    activityType,
	})
}

// PUT /api/activity-types/:id
func (s *ActivityTypeService) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid activity type ID"})
	}

	activityType, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Activity type not found"})
	}

	var req model.ActivityTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	activityType.Name = req.Name
	activityType.Description = req.Description
	if err := s.repo.Update(activityType); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[*model.ActivityType]{
		Success: true,
		Message: "Activity type updated successfully",
		Data:    activityType,
	})
}

// DELETE /api/activity-types/:id
func (s *ActivityTypeService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid activity type ID"})
	}

	if _, err := s.repo.FindByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Activity type not found"})
	}

	if err := s.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Activity type deleted successfully"})
}
