package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/josecarlosjccf/crud-clientes/internal/api/metrics"
	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// AssetHandler exposes the icon housekeeping endpoints used by the web
// client when a record's id changes or an icon is uploaded outside the
// regular create/update flow.
type AssetHandler struct {
	assets ports.AssetStore
}

func NewAssetHandler(assets ports.AssetStore) *AssetHandler {
	return &AssetHandler{assets: assets}
}

type renameImageRequest struct {
	OldID string `json:"old_id" validate:"required"`
	NewID string `json:"new_id" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Upload handles POST /upload-image/:id (multipart "image" file).
//
// @Summary      Store an icon for a record id
// @Tags         assets
// @Accept       mpfd
// @Produce      json
// @Param        id     path      string  true  "Owning record id"
// @Param        image  formData  file    true  "Image file"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  errorResponse
// @Router       /upload-image/{id} [post]
func (h *AssetHandler) Upload(c echo.Context) error {
	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid image upload"})
	}
	defer closeUpload()
	if upload == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no file sent"})
	}

	if _, err := h.assets.Save(c.Request().Context(), c.Param("id"), *upload); err != nil {
		metrics.IconUploadsTotal.WithLabelValues("rejected").Inc()
		if errors.Is(err, domain.ErrNotAnImage) || errors.Is(err, domain.ErrImageTooLarge) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.IconUploadsTotal.WithLabelValues("stored").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "image stored successfully"})
}

// Rename handles POST /rename-image.
//
// @Summary      Relocate an icon to a new record id
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        body  body      renameImageRequest  true  "Old and new record ids"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /rename-image [post]
func (h *AssetHandler) Rename(c echo.Context) error {
	var req renameImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, found, err := h.assets.Rename(c.Request().Context(), req.OldID, req.NewID)
	if err != nil {
		return err
	}
	if !found {
		// Not every record has an icon; the rename flow continues either way.
		return c.JSON(http.StatusOK, messageResponse{Message: "no image found, nothing to rename"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "image renamed successfully"})
}
