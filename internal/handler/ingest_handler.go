package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/config"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/service"
	"github.com/Josh-Abbott/timeline-schedule-go/pkg/response"
)

// IngestHandler handles HTTP-triggered ingest runs.
type IngestHandler struct {
	service *service.IngestService
	cfg     *config.Config
}

// NewIngestHandler creates a new ingest handler.
func NewIngestHandler(service *service.IngestService, cfg *config.Config) *IngestHandler {
	return &IngestHandler{service: service, cfg: cfg}
}

// Run handles POST /api/v1/ingest. The configured data dir is scanned for
// export bundles and loose timeline documents.
func (h *IngestHandler) Run(c *gin.Context) {
	report, err := h.service.Run(service.IngestOptions{
		DataDir:           h.cfg.DataDir,
		VisitConfidence:   h.cfg.VisitConfidence,
		DropLowConfidence: h.cfg.DropLowConfidence,
		KeepExtracted:     h.cfg.KeepExtractedBundles,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Ingest run failed", err)
		return
	}

	response.Success(c, report)
}
