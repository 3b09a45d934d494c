package service

import (
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/app/points"
	"github.com/najib3112/tifpoint/app/repo"
	"github.com/najib3112/tifpoint/helper"
)

type ActivityService struct {
	repo             repo.ActivityRepository
	competencyRepo   repo.CompetencyRepository
	activityTypeRepo repo.ActivityTypeRepository
	courseRepo       repo.RecognizedCourseRepository
	eventRepo        repo.EventRepository
	calc             *points.Calculator
	cld              *cloudinary.Cloudinary
}

func NewActivityService(
	activityRepo repo.ActivityRepository,
	competencyRepo repo.CompetencyRepository,
	activityTypeRepo repo.ActivityTypeRepository,
	courseRepo repo.RecognizedCourseRepository,
	eventRepo repo.EventRepository,
	calc *points.Calculator,
	cld *cloudinary.Cloudinary,
) *ActivityService {
	return &ActivityService{
		repo:             activityRepo,
		competencyRepo:   competencyRepo,
		activityTypeRepo: activityTypeRepo,
		courseRepo:       courseRepo,
		eventRepo:        eventRepo,
		calc:             calc,
		cld:              cld,
	}
}

// GET /api/activities
// Students see their own submissions, admins see everything.
func (s *ActivityService) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)
	role := c.Locals("role").(string)

	var filterUser *uuid.UUID
	if role != model.RoleAdmin {
		filterUser = &userID
	}

	activities, err := s.repo.FindAll(filterUser)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[[]model.Activity]{Success: true, Data: activities})
}

// GET /api/activities/filter
func (s *ActivityService) Filter(c *fiber.Ctx) error {
	filter := model.ActivityFilter{
		Status:         c.Query("status"),
		CompetencyID:   c.Query("competencyId"),
		ActivityTypeID: c.Query("activityTypeId"),
		NIM:            c.Query("nim"),
		Page:           c.QueryInt("page", 1),
		Limit:          c.QueryInt("limit", 10),
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	if userID := c.Query("userId"); userID != "" {
		id, err := uuid.Parse(userID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid user ID"})
		}
		filter.UserID = &id
	}

	activities, total, err := s.repo.FindFiltered(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}

	return c.JSON(model.SuccessResponse[model.ActivityListResponse]{
		Success: true,
		Data: model.ActivityListResponse{
			Activities: activities,
			Pagination: model.Pagination{
				CurrentPage: filter.Page,
				TotalPages:  totalPages,
				TotalCount:  total,
				HasNext:     filter.Page < totalPages,
				HasPrev:     filter.Page > 1,
			},
		},
	})
}

// GET /api/activities/:id
func (s *ActivityService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid activity ID"})
	}

	activity, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Activity not found"})
	}

	userID := c.Locals("user_id").(uuid.UUID)
	role := c.Locals("role").(string)
	if role != model.RoleAdmin && activity.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{Success: false, Message: "You can only view your own activities"})
	}

	return c.JSON(model.SuccessResponse[*model.Activity]{Success: true, Data: activity})
}

// POST /api/activities
func (s *ActivityService) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	var req model.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	if _, err := s.competencyRepo.FindByID(req.CompetencyID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Competency not found"})
	}
	if _, err := s.activityTypeRepo.FindByID(req.ActivityTypeID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Activity type not found"})
	}
	if req.RecognizedCourseID != nil {
		if _, err := s.courseRepo.FindByID(*req.RecognizedCourseID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Recognized course not found"})
		}
	}
	if req.EventID != nil {
		if _, err := s.eventRepo.FindByID(*req.EventID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Event not found"})
		}
	}

	activity := model.Activity{
		Title:              req.Title,
		Description:        req.Description,
		UserID:             userID,
		CompetencyID:       req.CompetencyID,
		ActivityTypeID:     req.ActivityTypeID,
		DocumentURL:        req.DocumentURL,
		DocumentPublicID:   req.DocumentPublicID,
		RecognizedCourseID: req.RecognizedCourseID,
		EventID:            req.EventID,
		Status:             model.StatusPending,
	}
	if err := s.repo.Create(&activity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	created, err := s.repo.FindByID(activity.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.Activity]{
		Success: true,
		Message: "Activity submitted successfully",
		Data:    created,
	})
}

// PUT /api/activities/:id
// Only the owner can edit, and only while the submission is still PENDING.
func (s *ActivityService) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid activity ID"})
	}

	activity, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Activity not found"})
	}

	userID := c.Locals("user_id").(uuid.UUID)
	if activity.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{Success: false, Message: "You can only update your own activities"})
	}
	if activity.Status != model.StatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Only pending activities can be updated"})
	}

	var req model.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.CompetencyID != nil {
		if _, err := s.competencyRepo.FindByID(*req.CompetencyID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Competency not found"})
		}
		activity.CompetencyID = *req.CompetencyID
	}
	if req.ActivityTypeID != nil {
		if _, err := s.activityTypeRepo.FindByID(*req.ActivityTypeID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Activity type not found"})
		}
		activity.ActivityTypeID = *req.ActivityTypeID
	}
	if req.DocumentURL != nil {
		activity.DocumentURL = *req.DocumentURL
		activity.DocumentPublicID = req.DocumentPublicID
	}
	if req.RecognizedCourseID != nil {
		if _, err := s.courseRepo.FindByID(*req.RecognizedCourseID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Recognized course not found"})
		}
		activity.RecognizedCourseID = req.RecognizedCourseID
	}
	if req.EventID != nil {
		if _, err := s.eventRepo.FindByID(*req.EventID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Event not found"})
		}
		activity.EventID = req.EventID
	}

	if err := s.repo.Update(activity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[*model.Activity]{
		Success: true,
		Message: "Activity updated successfully",
		Data:    activity,
	})
}

// DELETE /api/activities/:id
func (s *ActivityService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid activity ID"})
	}

	activity, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Activity not found"})
	}

	userID := c.Locals("user_id").(uuid.UUID)
	role := c.Locals("role").(string)
	if role != model.RoleAdmin {
		if activity.UserID != userID {
			return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{Success: false, Message: "You can only delete your own activities"})
		}
		if activity.Status != model.StatusPending {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Only pending activities can be deleted"})
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	// Best-effort cleanup of the evidence file. The record is already gone.
	if s.cld != nil && activity.DocumentPublicID != nil {
		if _, err := s.cld.Upload.Destroy(c.Context(), uploader.DestroyParams{PublicID: *activity.DocumentPublicID}); err != nil {
			log.Printf("cloudinary destroy failed for %s: %v", *activity.DocumentPublicID, err)
		}
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Activity deleted successfully"})
}

// PATCH /api/activities/:id/verify
func (s *ActivityService) Verify(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid activity ID"})
	}

	var req model.VerifyActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	status := model.ActivityStatus(req.Status)
	if status == model.StatusApproved && req.Point == nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Point is required when approving an activity"})
	}

	activity, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Activity not found"})
	}

	point := req.Point
	if status == model.StatusRejected {
		point = nil
	}

	verifierID := c.Locals("user_id").(uuid.UUID)
	verified, err := s.repo.Verify(activity.ID, status, point, req.Comment, verifierID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[*model.Activity]{
		Success: true,
		Message: "Activity verified successfully",
		Data:    verified,
	})
}

// POST /api/activities/validate-points
// Advisory check against the per-type point ranges before verifying.
func (s *ActivityService) ValidatePoints(c *fiber.Ctx) error {
	var req model.ValidatePointsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	result, err := s.calc.ValidatePointAssignment(req.ActivityTypeID, req.CompetencyID, *req.Points)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[*points.ValidationResult]{Success: true, Data: result})
}
