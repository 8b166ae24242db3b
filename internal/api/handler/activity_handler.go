package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careledger/clinic-api/internal/core/ports"
)

type ActivityHandler struct {
	activity ports.ActivityService
}

func NewActivityHandler(activity ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List returns the activity trail, newest first.
//
// @Summary      List activity logs
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   activityLogResponse
// @Failure      401  {object}  errorResponse
// @Router       /logs [get]
func (h *ActivityHandler) List(c echo.Context) error {
	entries, err := h.activity.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActivityLogResponses(entries))
}
