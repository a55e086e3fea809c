package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esatic/assignment-app/internal/core/ports"
)

// SubjectHandler handles subject CRUD.
type SubjectHandler struct {
	service ports.SubjectService
}

func NewSubjectHandler(service ports.SubjectService) *SubjectHandler {
	return &SubjectHandler{service: service}
}

// subjectRequest uses a pointer TeacherID so an absent field (keep the
// current teacher) is distinguishable from an empty one (clear it).
type subjectRequest struct {
	Name        string  `json:"name" validate:"required"`
	ImageURL    string  `json:"imageUrl"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	TeacherID   *string `json:"teacherId"`
}

// List handles GET /api/subjects.
//
// @Summary      List subjects
// @Tags         subjects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.SubjectView
// @Router       /api/subjects [get]
func (h *SubjectHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /api/subjects/:id.
//
// @Summary      Get one subject
// @Tags         subjects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Subject id"
// @Success      200  {object}  ports.SubjectView
// @Failure      404  {object}  map[string]string
// @Router       /api/subjects/{id} [get]
func (h *SubjectHandler) Get(c echo.Context) error {
	view, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /api/subjects. An unresolvable teacher id leaves the
// subject without a teacher.
//
// @Summary      Create a subject
// @Tags         subjects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      subjectRequest  true  "Subject"
// @Success      201   {object}  ports.SubjectView
// @Failure      400   {object}  map[string]string
// @Router       /api/subjects [post]
func (h *SubjectHandler) Create(c echo.Context) error {
	var req subjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), ports.SubjectInput{
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Color:       req.Color,
		Description: req.Description,
		TeacherID:   req.TeacherID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// Update handles PUT /api/subjects/:id.
//
// @Summary      Update a subject
// @Tags         subjects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Subject id"
// @Param        body  body      subjectRequest  true  "Subject"
// @Success      200   {object}  ports.SubjectView
// @Failure      404   {object}  map[string]string
// @Router       /api/subjects/{id} [put]
func (h *SubjectHandler) Update(c echo.Context) error {
	var req subjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.SubjectInput{
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Color:       req.Color,
		Description: req.Description,
		TeacherID:   req.TeacherID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /api/subjects/:id. Teaching lists and assignments
// referencing the subject have their reference cleared first.
//
// @Summary      Delete a subject
// @Tags         subjects
// @Security     BearerAuth
// @Param        id  path  string  true  "Subject id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/subjects/{id} [delete]
func (h *SubjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
