package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// ClientHandler handles HTTP requests for client CRUD operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /clients.
//
// @Summary      List all clients with resolved state and city names
// @Tags         clients
// @Produce      json
// @Success      200  {array}   ports.DecoratedClient
// @Failure      500  {object}  errorResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /clients/:id.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "client not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /clients (multipart: "client" JSON part + optional
// "icon" image file).
//
// @Summary      Register a new client
// @Tags         clients
// @Accept       mpfd
// @Produce      json
// @Param        client  formData  string  true   "Client JSON payload"
// @Param        icon    formData  file    false  "Client icon image"
// @Success      201     {object}  clientMutationResponse
// @Failure      400     {object}  errorResponse
// @Failure      409     {object}  errorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	req, err := bindClientPart(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid client payload"})
	}

	upload, closeUpload, err := formUpload(c, "icon")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid icon upload"})
	}
	defer closeUpload()

	client, err := h.service.Create(c.Request().Context(), req.toInput(), upload)
	if err != nil {
		return clientError(c, err)
	}

	return c.JSON(http.StatusCreated, clientMutationResponse{
		Message: "client registered successfully",
		Client:  client,
	})
}

// Update handles PUT /clients/:id (multipart, same shape as Create).
//
// @Summary      Update an existing client
// @Tags         clients
// @Accept       mpfd
// @Produce      json
// @Param        id      path      string  true   "Client id"
// @Param        client  formData  string  true   "Client JSON payload"
// @Param        icon    formData  file    false  "Replacement icon image"
// @Success      200     {object}  clientMutationResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      409     {object}  errorResponse
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	req, err := bindClientPart(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid client payload"})
	}

	upload, closeUpload, err := formUpload(c, "icon")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid icon upload"})
	}
	defer closeUpload()

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput(), upload)
	if err != nil {
		return clientError(c, err)
	}

	return c.JSON(http.StatusOK, clientMutationResponse{
		Message: "client updated successfully",
		Client:  client,
	})
}

// Delete handles DELETE /clients/:id.
//
// @Summary      Delete a client and its icon
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  clientMutationResponse
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	client, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return clientError(c, err)
	}

	return c.JSON(http.StatusOK, clientMutationResponse{
		Message: "client removed successfully",
		Client:  client,
	})
}

// bindClientPart decodes the "client" JSON form field.
func bindClientPart(c echo.Context) (clientRequest, error) {
	var req clientRequest
	payload := c.FormValue("client")
	if payload == "" {
		return req, errors.New("missing client part")
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return req, err
	}
	return req, nil
}

// formUpload opens the named multipart file if present. The returned close
// func is a no-op when no file was sent.
func formUpload(c echo.Context, field string) (*ports.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Echo surfaces both "no multipart form" and "missing file" here;
		// either way the upload is simply absent.
		return nil, func() {}, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}

	upload := &ports.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}
	return upload, func() { _ = f.Close() }, nil
}

// clientError maps service errors onto the expected status codes.
func clientError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrNotAnImage),
		errors.Is(err, domain.ErrImageTooLarge):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrClientNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "client not found"})
	}
	return err
}
