package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/catalog-api/internal/core/domain"
	"github.com/lojinha/catalog-api/internal/core/ports"
)

// PhotoHandler handles HTTP requests for product photo uploads.
type PhotoHandler struct {
	service ports.PhotoService
}

func NewPhotoHandler(service ports.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// Index handles GET /products/:id/photos.
//
// @Summary      List a product's photos
// @Tags         photos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /products/{id}/photos [get]
func (h *PhotoHandler) Index(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	photos, err := h.service.List(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataEnvelope{Data: toPhotoResponses(photos)})
}

// Store handles POST /products/:id/photos (multipart, field "photos[]").
// All files persist or none do.
//
// @Summary      Upload product photos
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int     true  "Product id"
// @Param        photos  formData  file    true  "Image files"
// @Success      201     {object}  map[string]any
// @Failure      401     {object}  map[string]string
// @Failure      422     {object}  map[string]any
// @Router       /products/{id}/photos [post]
func (h *PhotoHandler) Store(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	headers := form.File["photos[]"]
	if len(headers) == 0 {
		headers = form.File["photos"]
	}
	if len(headers) == 0 {
		return domain.NewValidationError(map[string][]string{
			"photos": {domain.MsgRequired},
		})
	}

	files := make([]ports.FileUpload, 0, len(headers))
	for _, fh := range headers {
		src, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open upload %q: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return fmt.Errorf("read upload %q: %w", fh.Filename, err)
		}
		files = append(files, ports.FileUpload{Filename: fh.Filename, Data: data})
	}

	photos, err := h.service.Upload(c.Request().Context(), productID, files)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataEnvelope{Data: toPhotoResponses(photos)})
}

// Destroy handles DELETE /products/:id/photos/:photo_id. Removes the blob
// and the row together.
//
// @Summary      Delete a product photo
// @Tags         photos
// @Security     BearerAuth
// @Param        id        path  int  true  "Product id"
// @Param        photo_id  path  int  true  "Photo id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /products/{id}/photos/{photo_id} [delete]
func (h *PhotoHandler) Destroy(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	photoID, err := strconv.ParseInt(c.Param("photo_id"), 10, 64)
	if err != nil {
		return domain.ErrPhotoNotFound
	}

	if err := h.service.Delete(c.Request().Context(), productID, photoID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
