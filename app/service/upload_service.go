package service

import (
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"

	"github.com/najib3112/tifpoint/app/model"
)

const (
	uploadFolder  = "tifpoint-evidence"
	maxUploadSize = 5 * 1024 * 1024
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

type UploadService struct {
	cld *cloudinary.Cloudinary
}

func NewUploadService(cld *cloudinary.Cloudinary) *UploadService {
	return &UploadService{cld: cld}
}

// POST /api/upload
// Accepts a single "file" form field with activity evidence and stores it
// on Cloudinary.
func (s *UploadService) Upload(c *fiber.Ctx) error {
	if s.cld == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(model.ErrorResponse{Success: false, Message: "Upload service is not configured"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "No file uploaded"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Only JPG, PNG, and PDF files are allowed"})
	}
	if fileHeader.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "File size must not exceed 5MB"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Failed to read file"})
	}
	defer file.Close()

	result, err := s.cld.Upload.Upload(c.Context(), file, uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Failed to upload file"})
	}

	return c.JSON(model.SuccessResponse[fiber.Map]{
		Success: true,
		Message: "File uploaded successfully",
		Data: fiber.Map{
			"url":      result.SecureURL,
			"publicId": result.PublicID,
		},
	})
}
