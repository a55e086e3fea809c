package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esatic/assignment-app/internal/infrastructure/seed"
)

// SetupHandler exposes the bulk demo-data entry point.
type SetupHandler struct {
	seeder *seed.Seeder
}

func NewSetupHandler(seeder *seed.Seeder) *SetupHandler {
	return &SetupHandler{seeder: seeder}
}

type seedRequest struct {
	Dataset             string `json:"dataset"`
	Classes             int    `json:"classes" validate:"min=0,max=50"`
	StudentsPerClass    int    `json:"studentsPerClass" validate:"min=0,max=100"`
	Subjects            int    `json:"subjects" validate:"min=0,max=50"`
	AssignmentsPerClass int    `json:"assignmentsPerClass" validate:"min=0,max=100"`
}

// Seed handles POST /api/setup/seed. The job runs in the background; the
// response only acknowledges that it was accepted.
//
// @Summary      Generate demo data in the background
// @Tags         setup
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  seedRequest  false  "Seed parameters"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/setup/seed [post]
func (h *SetupHandler) Seed(c echo.Context) error {
	var req seedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accepted := h.seeder.Enqueue(seed.Job{
		Dataset:             req.Dataset,
		Classes:             req.Classes,
		StudentsPerClass:    req.StudentsPerClass,
		Subjects:            req.Subjects,
		AssignmentsPerClass: req.AssignmentsPerClass,
	})
	if !accepted {
		return echo.NewHTTPError(http.StatusTooManyRequests, "seed queue full")
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}
