package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/app/repo"
	"github.com/najib3112/tifpoint/helper"
)

type CompetencyService struct {
	repo repo.CompetencyRepository
}

func NewCompetencyService(competencyRepo repo.CompetencyRepository) *CompetencyService {
	return &CompetencyService{repo: competencyRepo}
}

// GET /api/competencies
func (s *CompetencyService) List(c *fiber.Ctx) error {
	competencies, err := s.repo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	return c.JSON(model.SuccessResponse[[]model.Competency]{Success: true, Data: competencies})
}

// GET /api/competencies/:id
func (s *CompetencyService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid competency ID"})
	}

	competency, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Competency not found"})
	}
	return c.JSON(model.SuccessResponse[*model.Competency]{Success: true, Data: competency})
}

// POST /api/competencies
func (s *CompetencyService) Create(c *fiber.Ctx) error {
	var req model.CompetencyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	competency := model.Competency{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(&competency); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.Competency]{
		Success: true,
		Message: "Competency created successfully",
		Data:    competency,
	})
}

// PUT /api/competencies/:id
func (s *CompetencyService) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid competency ID"})
	}

	competency, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Competency not found"})
	}

	var req model.CompetencyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	competency.Name = req.Name
	competency.Description = req.Description
	if err := s.repo.Update(competency); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[*model.Competency]{
		Success: true,
		Message: "Competency updated successfully",
		Data:    competency,
	})
}

// DELETE /api/competencies/:id
func (s *CompetencyService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid competency ID"})
	}

	if _, err := s.repo.FindByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Competency not found"})
	}

	if err := s.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Competency deleted successfully"})
}
