package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/httperr"
	"blog-backend/internal/storage"
)

// UploadHandler stores featured images and returns the URL a post can
// reference.
type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return httperr.BadRequest("image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return httperr.BadRequest("failed to open uploaded file")
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s_%s", primitive.NewObjectID().Hex(), fileHeader.Filename)
	url, err := h.uploader.Upload(c.Context(), objectName, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"url": url},
	})
}
