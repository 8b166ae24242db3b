package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careledger/clinic-api/internal/api/metrics"
	"github.com/careledger/clinic-api/internal/core/ports"
)

type EnrollmentHandler struct {
	registry ports.RegistryService
}

func NewEnrollmentHandler(registry ports.RegistryService) *EnrollmentHandler {
	return &EnrollmentHandler{registry: registry}
}

// Enroll adds a client to a program. Repeating the call is a no-op that
// still answers 200.
//
// @Summary      Enroll a client in a program
// @Tags         enrollment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      enrollRequest  true  "Client and program ids"
// @Success      200   {object}  enrollResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /enroll [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	var req enrollRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	actor, err := ctxUsername(c)
	if err != nil {
		return err
	}

	result, err := h.registry.Enroll(c.Request().Context(), ports.EnrollInput{
		ClientID:  req.ClientID,
		ProgramID: req.ProgramID,
		Actor:     actor,
	})
	if err != nil {
		return err
	}

	if result.AlreadyEnrolled {
		metrics.EnrollmentsTotal.WithLabelValues("existing").Inc()
	} else {
		metrics.EnrollmentsTotal.WithLabelValues("created").Inc()
		metrics.ActivityEntriesTotal.WithLabelValues("enrollment").Inc()
	}

	return c.JSON(http.StatusOK, toEnrollResponse(result))
}
