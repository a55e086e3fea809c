package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/esatic/assignment-app/internal/core/ports"
)

// AssignmentHandler handles HTTP requests for the assignment lifecycle.
type AssignmentHandler struct {
	service ports.AssignmentService
}

func NewAssignmentHandler(service ports.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// --- Request types ---

// createAssignmentRequest keeps the historical French wire names.
type createAssignmentRequest struct {
	Name        string    `json:"nom" validate:"required"`
	DueDate     time.Time `json:"dateDeRendu" validate:"required"`
	Submitted   bool      `json:"rendu"`
	Grade       *float64  `json:"note"`
	Remarks     string    `json:"remarques"`
	Attachments []string  `json:"attachments"`
	AuthorID    string    `json:"auteur"`
	SubjectID   string    `json:"matiere"`
	ClassID     string    `json:"classId"`
}

// updateAssignmentRequest distinguishes an absent reference (keep) from an
// empty one (clear) via pointer fields.
type updateAssignmentRequest struct {
	Name      string    `json:"nom" validate:"required"`
	DueDate   time.Time `json:"dateDeRendu" validate:"required"`
	Submitted bool      `json:"rendu"`
	Grade     *float64  `json:"note"`
	Remarks   string    `json:"remarques"`
	AuthorID  *string   `json:"auteur"`
	SubjectID *string   `json:"matiere"`
	ClassID   *string   `json:"classId"`
}

type submitRequest struct {
	StudentID   string   `json:"studentId" validate:"required"`
	Attachments []string `json:"attachments"`
}

type gradeRequest struct {
	Grade   float64 `json:"note" validate:"min=0,max=20"`
	Remarks string  `json:"remarques"`
}

// List handles GET /api/assignments.
//
// @Summary      List assignments (paginated)
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "1-based page number"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  ports.Page[ports.AssignmentView]
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// ListSubmitted handles GET /api/assignments/submitted.
//
// @Summary      List submitted assignments, most recent due date first
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "1-based page number"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  ports.Page[ports.AssignmentView]
// @Router       /api/assignments/submitted [get]
func (h *AssignmentHandler) ListSubmitted(c echo.Context) error {
	page, err := h.service.ListSubmitted(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// ListPending handles GET /api/assignments/pending.
//
// @Summary      List pending assignments, soonest due date first
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "1-based page number"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  ports.Page[ports.AssignmentView]
// @Router       /api/assignments/pending [get]
func (h *AssignmentHandler) ListPending(c echo.Context) error {
	page, err := h.service.ListPending(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// ListBySubject handles GET /api/assignments/subject/:subjectId.
//
// @Summary      List assignments of one subject
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        subjectId  path      string  true   "Subject id"
// @Param        page       query     int     false  "1-based page number"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Success      200        {object}  ports.Page[ports.AssignmentView]
// @Router       /api/assignments/subject/{subjectId} [get]
func (h *AssignmentHandler) ListBySubject(c echo.Context) error {
	page, err := h.service.ListBySubject(c.Request().Context(), c.Param("subjectId"), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// ListByStudent handles GET /api/assignments/student/:studentId.
//
// @Summary      List assignments authored by one student
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        studentId  path      string  true   "Student id"
// @Param        page       query     int     false  "1-based page number"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Success      200        {object}  ports.Page[ports.AssignmentView]
// @Router       /api/assignments/student/{studentId} [get]
func (h *AssignmentHandler) ListByStudent(c echo.Context) error {
	page, err := h.service.ListByStudent(c.Request().Context(), c.Param("studentId"), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// ListByTeacher handles GET /api/assignments/teacher/:teacherId.
//
// @Summary      List assignments across all subjects taught by one teacher
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        teacherId  path      string  true   "Teacher id"
// @Param        page       query     int     false  "1-based page number"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Success      200        {object}  ports.Page[ports.AssignmentView]
// @Router       /api/assignments/teacher/{teacherId} [get]
func (h *AssignmentHandler) ListByTeacher(c echo.Context) error {
	page, err := h.service.ListByTeacher(c.Request().Context(), c.Param("teacherId"), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// ListByClass handles GET /api/assignments/class/:classId.
//
// @Summary      List assignments of one class
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        classId  path      string  true   "Class id"
// @Param        page     query     int     false  "1-based page number"
// @Param        limit    query     int     false  "Page size (max 100)"
// @Success      200      {object}  ports.Page[ports.AssignmentView]
// @Router       /api/assignments/class/{classId} [get]
func (h *AssignmentHandler) ListByClass(c echo.Context) error {
	page, err := h.service.ListByClass(c.Request().Context(), c.Param("classId"), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/assignments/:id.
//
// @Summary      Get one assignment
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assignment id"
// @Success      200  {object}  ports.AssignmentView
// @Failure      404  {object}  map[string]string
// @Router       /api/assignments/{id} [get]
func (h *AssignmentHandler) Get(c echo.Context) error {
	view, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /api/assignments. Reference ids that do not resolve
// leave the reference unset; creation never fails because of them.
//
// @Summary      Create an assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAssignmentRequest  true  "Assignment"
// @Success      201   {object}  ports.AssignmentView
// @Failure      400   {object}  map[string]string
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c echo.Context) error {
	var req createAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), ports.AssignmentCreateInput{
		Name:        req.Name,
		DueDate:     req.DueDate,
		Submitted:   req.Submitted,
		Grade:       req.Grade,
		Remarks:     req.Remarks,
		Attachments: req.Attachments,
		AuthorID:    req.AuthorID,
		SubjectID:   req.SubjectID,
		ClassID:     req.ClassID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, view)
}

// Update handles PUT /api/assignments/:id. Scalars are overwritten; for each
// reference, null keeps the current value, "" clears it and an unresolvable
// id keeps the current value.
//
// @Summary      Update an assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Assignment id"
// @Param        body  body      updateAssignmentRequest  true  "Assignment"
// @Success      200   {object}  ports.AssignmentView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/assignments/{id} [put]
func (h *AssignmentHandler) Update(c echo.Context) error {
	var req updateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AssignmentUpdateInput{
		Name:      req.Name,
		DueDate:   req.DueDate,
		Submitted: req.Submitted,
		Grade:     req.Grade,
		Remarks:   req.Remarks,
		AuthorID:  req.AuthorID,
		SubjectID: req.SubjectID,
		ClassID:   req.ClassID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /api/assignments/:id.
//
// @Summary      Delete an assignment
// @Tags         assignments
// @Security     BearerAuth
// @Param        id  path  string  true  "Assignment id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Submit handles POST /api/assignments/:id/submit.
//
// @Summary      Submit an assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Assignment id"
// @Param        body  body      submitRequest  true  "Submission"
// @Success      200   {object}  ports.AssignmentView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/assignments/{id}/submit [post]
func (h *AssignmentHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Submit(c.Request().Context(), c.Param("id"), ports.SubmitInput{
		StudentID:   req.StudentID,
		Attachments: req.Attachments,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Grade handles POST /api/assignments/:id/grade.
//
// @Summary      Grade an assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Assignment id"
// @Param        body  body      gradeRequest  true  "Grade and remarks"
// @Success      200   {object}  ports.AssignmentView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/assignments/{id}/grade [post]
func (h *AssignmentHandler) Grade(c echo.Context) error {
	var req gradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Grade(c.Request().Context(), c.Param("id"), ports.GradeInput{
		Grade:   req.Grade,
		Remarks: req.Remarks,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}
