package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/repository"
	"github.com/Josh-Abbott/timeline-schedule-go/pkg/response"
)

// VisitHandler handles HTTP requests for place visits.
type VisitHandler struct {
	repo          *repository.VisitRepository
	minConfidence float64
}

// NewVisitHandler creates a new visit handler. minConfidence is the configured
// threshold applied when a request does not pick its own; it makes the listing
// a confidence-curated view of the full stored set.
func NewVisitHandler(repo *repository.VisitRepository, minConfidence float64) *VisitHandler {
	return &VisitHandler{repo: repo, minConfidence: minConfidence}
}

// List handles GET /api/v1/visits. Pass minConfidence=0 to see every stored
// visit, including those below the configured threshold.
func (h *VisitHandler) List(c *gin.Context) {
	var filter models.VisitFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	if c.Query("minConfidence") == "" {
		filter.MinConfidence = h.minConfidence
	}

	visits, total, err := h.repo.List(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list place visits", err)
		return
	}

	page, pageSize, totalPages := pagination(total, filter.Page, filter.PageSize)
	response.Success(c, models.VisitsResponse{
		Data:       visits,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// Places handles GET /api/v1/visits/places.
func (h *VisitHandler) Places(c *gin.Context) {
	places, err := h.repo.DistinctPlaces()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list places", err)
		return
	}

	response.Success(c, gin.H{
		"places": places,
		"count":  len(places),
	})
}
