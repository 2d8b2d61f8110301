package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// ReferenceHandler serves the state and city lookup tables.
type ReferenceHandler struct {
	service ports.ReferenceService
}

func NewReferenceHandler(service ports.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// States handles GET /states.
//
// @Summary      List states, alphabetically sorted
// @Tags         reference
// @Produce      json
// @Success      200  {array}   domain.State
// @Failure      500  {object}  errorResponse
// @Router       /states [get]
func (h *ReferenceHandler) States(c echo.Context) error {
	states, err := h.service.States(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, states)
}

// Cities handles GET /cities/:stateId.
//
// @Summary      List a state's cities, alphabetically sorted
// @Tags         reference
// @Produce      json
// @Param        stateId  path      string  true  "State id"
// @Success      200      {array}   domain.City
// @Failure      500      {object}  errorResponse
// @Router       /cities/{stateId} [get]
func (h *ReferenceHandler) Cities(c echo.Context) error {
	cities, err := h.service.Cities(c.Request().Context(), c.Param("stateId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cities)
}
