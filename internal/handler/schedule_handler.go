package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/schedule"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/service"
	"github.com/Josh-Abbott/timeline-schedule-go/pkg/response"
)

// ScheduleHandler handles HTTP requests for the weekly schedule.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(service *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Weekly handles GET /api/v1/schedule/weekly?start=...&end=...&maxNameLength=...
func (h *ScheduleHandler) Weekly(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		response.BadRequest(c, "start and end query parameters are required (YYYY-MM-DD)", nil)
		return
	}

	maxNameLen := schedule.DefaultMaxNameLength
	if raw := c.Query("maxNameLength"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.BadRequest(c, "maxNameLength must be a positive integer", err)
			return
		}
		maxNameLen = n
	}

	result, err := h.service.WeeklySchedule(start, end, maxNameLen)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNoVisits):
			response.NotFound(c, "No place visits in the requested window")
		case errors.Is(err, service.ErrBadPeriod):
			response.BadRequest(c, "Invalid reporting period", err)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to build weekly schedule", err)
		}
		return
	}

	response.Success(c, result)
}
