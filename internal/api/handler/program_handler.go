package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careledger/clinic-api/internal/api/metrics"
	"github.com/careledger/clinic-api/internal/core/ports"
)

type ProgramHandler struct {
	registry ports.RegistryService
}

func NewProgramHandler(registry ports.RegistryService) *ProgramHandler {
	return &ProgramHandler{registry: registry}
}

// Create defines a new program.
//
// @Summary      Create a program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProgramRequest  true  "Program details"
// @Success      201   {object}  createProgramResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /programs [post]
func (h *ProgramHandler) Create(c echo.Context) error {
	var req createProgramRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	program, err := h.registry.CreateProgram(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	metrics.ProgramsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, createProgramResponse{
		Message: "Program created successfully",
		Program: toProgramResponse(*program),
	})
}

// List returns every program ordered by id.
//
// @Summary      List programs
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   programResponse
// @Failure      401  {object}  errorResponse
// @Router       /programs [get]
func (h *ProgramHandler) List(c echo.Context) error {
	programs, err := h.registry.ListPrograms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProgramResponses(programs))
}
