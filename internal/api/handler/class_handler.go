package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esatic/assignment-app/internal/core/ports"
)

// ClassHandler handles class CRUD and roster management.
type ClassHandler struct {
	service ports.ClassService
}

func NewClassHandler(service ports.ClassService) *ClassHandler {
	return &ClassHandler{service: service}
}

type classRequest struct {
	Name        string `json:"name" validate:"required"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// List handles GET /api/classes.
//
// @Summary      List classes with their rosters
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.ClassView
// @Router       /api/classes [get]
func (h *ClassHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /api/classes/:id.
//
// @Summary      Get one class with its roster
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Class id"
// @Success      200  {object}  ports.ClassView
// @Failure      404  {object}  map[string]string
// @Router       /api/classes/{id} [get]
func (h *ClassHandler) Get(c echo.Context) error {
	view, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /api/classes.
//
// @Summary      Create a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      classRequest  true  "Class"
// @Success      201   {object}  ports.ClassView
// @Failure      400   {object}  map[string]string
// @Router       /api/classes [post]
func (h *ClassHandler) Create(c echo.Context) error {
	var req classRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), ports.ClassInput{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// Update handles PUT /api/classes/:id.
//
// @Summary      Update a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Class id"
// @Param        body  body      classRequest  true  "Class"
// @Success      200   {object}  ports.ClassView
// @Failure      404   {object}  map[string]string
// @Router       /api/classes/{id} [put]
func (h *ClassHandler) Update(c echo.Context) error {
	var req classRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ClassInput{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /api/classes/:id. Students still pointing at the
// class and assignments referencing it have their reference cleared first.
//
// @Summary      Delete a class
// @Tags         classes
// @Security     BearerAuth
// @Param        id  path  string  true  "Class id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/classes/{id} [delete]
func (h *ClassHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddStudent handles POST /api/classes/:id/students/:studentId.
//
// @Summary      Add a student to the class roster
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true  "Class id"
// @Param        studentId  path      string  true  "Student id"
// @Success      200        {object}  ports.ClassView
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/classes/{id}/students/{studentId} [post]
func (h *ClassHandler) AddStudent(c echo.Context) error {
	view, err := h.service.AddStudent(c.Request().Context(), c.Param("id"), c.Param("studentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// RemoveStudent handles DELETE /api/classes/:id/students/:studentId.
//
// @Summary      Remove a student from the class roster
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true  "Class id"
// @Param        studentId  path      string  true  "Student id"
// @Success      200        {object}  ports.ClassView
// @Failure      404        {object}  map[string]string
// @Router       /api/classes/{id}/students/{studentId} [delete]
func (h *ClassHandler) RemoveStudent(c echo.Context) error {
	view, err := h.service.RemoveStudent(c.Request().Context(), c.Param("id"), c.Param("studentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
