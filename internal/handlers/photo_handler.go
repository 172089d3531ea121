package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/httperr"
	"github.com/homevista/realtor-api/internal/models"
	"github.com/homevista/realtor-api/internal/storage"
)

const maxPhotoBytes = 10 << 20 // 10 MiB

// PhotoHandler accepts multipart photo uploads for a home and attaches the
// stored object's URL as a new image row.
type PhotoHandler struct {
	repo  domain.Repository
	store *storage.PhotoStore
}

func NewPhotoHandler(repo domain.Repository, store *storage.PhotoStore) *PhotoHandler {
	return &PhotoHandler{
		repo:  repo,
		store: store,
	}
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	id, ok := homeIDParam(c)
	if !ok {
		return
	}

	if _, err := h.repo.GetHomeByID(c.Request.Context(), id); err != nil {
		httperr.NotFound(c, httperr.CodeHomeNotFound, "Home not found.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field 'photo' is required.")
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "Photo exceeds the 10 MiB limit.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read upload.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read upload.")
		return
	}

	url, err := h.store.Save(c.Request.Context(), data)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Photo must be a decodable JPEG or PNG.")
		return
	}

	img := &models.Image{HomeID: id, URL: url}
	if err := h.repo.AddImage(c.Request.Context(), img); err != nil {
		httperr.Internal(c, "failed_to_save_photo", "Could not attach photo.")
		return
	}

	c.JSON(http.StatusCreated, img)
}
