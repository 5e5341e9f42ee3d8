package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/repository"
	"github.com/Josh-Abbott/timeline-schedule-go/pkg/response"
)

// SegmentHandler handles HTTP requests for activity segments.
type SegmentHandler struct {
	repo *repository.SegmentRepository
}

// NewSegmentHandler creates a new segment handler.
func NewSegmentHandler(repo *repository.SegmentRepository) *SegmentHandler {
	return &SegmentHandler{repo: repo}
}

// List handles GET /api/v1/segments.
func (h *SegmentHandler) List(c *gin.Context) {
	var filter models.SegmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	segments, total, err := h.repo.List(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list activity segments", err)
		return
	}

	page, pageSize, totalPages := pagination(total, filter.Page, filter.PageSize)
	response.Success(c, models.SegmentsResponse{
		Data:       segments,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// pagination normalizes the requested page bounds and derives the page count.
func pagination(total int64, page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 100
	}
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return page, pageSize, totalPages
}
