package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esatic/assignment-app/internal/core/ports"
)

// UserHandler handles user management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// profilePatchRequest is a partial update: absent fields are left untouched.
type profilePatchRequest struct {
	FirstName          *string  `json:"firstName"`
	LastName           *string  `json:"lastName"`
	Email              *string  `json:"email" validate:"omitempty,email"`
	PhotoURL           *string  `json:"photoUrl"`
	ClassID            *string  `json:"classId"`
	TeachingSubjectIDs []string `json:"teachingSubjects"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.UserView
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get one user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  ports.UserView
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	view, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Me handles GET /api/users/me.
//
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.UserView
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}
	view, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateProfile handles PATCH /api/users/:id.
//
// @Summary      Partially update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "User id"
// @Param        body  body      profilePatchRequest  true  "Fields to update"
// @Success      200   {object}  ports.UserView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{id} [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req profilePatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.UpdateProfile(c.Request().Context(), c.Param("id"), ports.ProfilePatch{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		PhotoURL:           req.PhotoURL,
		ClassID:            req.ClassID,
		TeachingSubjectIDs: req.TeachingSubjectIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// ChangePassword handles POST /api/users/me/password. Users can only change
// their own password; the id is taken from the token, never from the path.
//
// @Summary      Change the authenticated user's password
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/users/me/password [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ChangePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
