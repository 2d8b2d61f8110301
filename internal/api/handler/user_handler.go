package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// UserHandler handles sign-up, login, and the edit-profile flow.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	ID       int64  `json:"id"       validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// PasswordIsHash marks Password as an already-stored digest to carry
	// over unchanged, instead of a new plaintext password to hash.
	PasswordIsHash bool `json:"password_is_hash"`
}

type userMutationResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

// Signup handles POST /signup.
//
// @Summary      Register a new user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account details"
// @Success      201   {object}  userMutationResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(http.StatusCreated, userMutationResponse{
		Message: "user registered successfully",
		User:    user,
	})
}

// Login handles POST /login.
//
// @Summary      Authenticate with email and password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.service.Authenticate(c.Request().Context(), req.Email, req.Password); err != nil {
		return userError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "login successful"})
}

// Update handles PUT /users.
//
// @Summary      Edit the user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "Updated profile"
// @Success      200   {object}  userMutationResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), req.ID, ports.UserUpdateInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		PasswordIsHash: req.PasswordIsHash,
	})
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(http.StatusOK, userMutationResponse{
		Message: "user updated successfully",
		User:    user,
	})
}

// Current handles GET /users/current.
//
// @Summary      Fetch the most recently created user
// @Tags         users
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/current [get]
func (h *UserHandler) Current(c echo.Context) error {
	user, err := h.service.Current(c.Request().Context())
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// userError maps service errors onto the expected status codes.
func userError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	}
	return err
}
