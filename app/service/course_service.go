package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/app/repo"
	"github.com/najib3112/tifpoint/helper"
)

type RecognizedCourseService struct {
	repo repo.RecognizedCourseRepository
}

func NewRecognizedCourseService(courseRepo repo.RecognizedCourseRepository) *RecognizedCourseService {
	return &RecognizedCourseService{repo: courseRepo}
}

// GET /api/recognized-courses
func (s *RecognizedCourseService) List(c *fiber.Ctx) error {
	courses, err := s.repo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	return c.JSON(model.SuccessResponse[[]model.RecognizedCourse]{Success: true, Data: courses})
}

// GET /api/recognized-courses/:id
func (s *RecognizedCourseService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid course ID"})
	}

	course, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Recognized course not found"})
	}
	return c.JSON(model.SuccessResponse[*model.RecognizedCourse]{Success: true, Data: course})
}

// POST /api/recognized-courses
func (s *RecognizedCourseService) Create(c *fiber.Ctx) error {
	var req model.RecognizedCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	course := model.RecognizedCourse{
		Name:       req.Name,
		Provider:   req.Provider,
		PointValue: *req.PointValue,
		URL:        req.URL,
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if err := s.repo.Create(&course); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.RecognizedCourse]{
		Success: true,
		Message: "Recognized course created successfully",
		Data:    course,
	})
}

// PUT /api/recognized-courses/:id
func (s *RecognizedCourseService) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid course ID"})
	}

	course, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Recognized course not found"})
	}

	var req model.RecognizedCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	course.Name = req.Name
	course.Provider = req.Provider
	course.PointValue = *req.PointValue
	course.URL = req.URL
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if err := s.repo.Update(course); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[*model.RecognizedCourse]{
		Success: true,
		Message: "Recognized course updated successfully",
		Data:    course,
	})
}

// DELETE /api/recognized-courses/:id
func (s *RecognizedCourseService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid course ID"})
	}

	if _, err := s.repo.FindByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Recognized course not found"})
	}

	if err := s.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Recognized course deleted successfully"})
}
