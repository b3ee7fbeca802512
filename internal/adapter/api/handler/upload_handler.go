package handler

import (
	"context"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"charlygames/pkg/errors"
	"charlygames/pkg/response"
)

// ImageUploader is the object-storage slice the upload endpoint needs.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, fileType string) (string, error)
}

var uploadHandler *UploadHandler

type UploadHandler struct {
	uploader ImageUploader
}

func SetupUploadHandler(uploader ImageUploader) {
	uploadHandler = &UploadHandler{uploader: uploader}
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

// Upload stores a listing image and returns the public URL the admin form
// writes into imageUrl.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}

	fileType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(fileType, "image/") {
		return response.Error(c, errors.BadRequest("Only image uploads are allowed", nil))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request().Context(), file, fileType)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to upload image", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}
