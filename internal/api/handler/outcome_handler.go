package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careledger/clinic-api/internal/api/metrics"
	"github.com/careledger/clinic-api/internal/core/ports"
)

type OutcomeHandler struct {
	outcomes ports.OutcomeService
}

func NewOutcomeHandler(outcomes ports.OutcomeService) *OutcomeHandler {
	return &OutcomeHandler{outcomes: outcomes}
}

// Add records an outcome for a client in a program.
//
// @Summary      Record a program outcome
// @Tags         outcomes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addOutcomeRequest  true  "Outcome details"
// @Success      201   {object}  addOutcomeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /outcomes [post]
func (h *OutcomeHandler) Add(c echo.Context) error {
	var req addOutcomeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	actor, err := ctxUsername(c)
	if err != nil {
		return err
	}

	outcome, err := h.outcomes.AddOutcome(c.Request().Context(), ports.AddOutcomeInput{
		ClientID:  req.ClientID,
		ProgramID: req.ProgramID,
		Outcome:   req.Outcome,
		Notes:     req.Notes,
		Actor:     actor,
	})
	if err != nil {
		return err
	}
	metrics.OutcomesRecordedTotal.Inc()
	metrics.ActivityEntriesTotal.WithLabelValues("outcome").Inc()

	return c.JSON(http.StatusCreated, addOutcomeResponse{
		Message: "Outcome recorded successfully",
		Outcome: toOutcomeResponse(outcome),
	})
}
