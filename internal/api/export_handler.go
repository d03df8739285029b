package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/metrics"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportHandler uploads log snapshots to object storage.
type ExportHandler struct {
	exportService service.LogExportService
	log           *zap.Logger
}

func NewExportHandler(exportService service.LogExportService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{exportService: exportService, log: log}
}

type ExportResponse struct {
	ID        string `json:"_id"`
	Count     int    `json:"count"`
	ObjectKey string `json:"objectKey"`
	URL       string `json:"url"`
}

type ExportSummaryResponse struct {
	ID        string    `json:"_id"`
	Count     int       `json:"count"`
	ObjectKey string    `json:"objectKey"`
	CreatedAt time.Time `json:"createdAt"`
}

func MapExportToSummary(e *domain.LogExport) ExportSummaryResponse {
	return ExportSummaryResponse{
		ID:        e.ID.Hex(),
		Count:     e.Count,
		ObjectKey: e.ObjectKey,
		CreatedAt: e.CreatedAt,
	}
}

func mapExportResult(result *service.ExportResult) ExportResponse {
	return ExportResponse{
		ID:        result.Export.ID.Hex(),
		Count:     result.Export.Count,
		ObjectKey: result.Export.ObjectKey,
		URL:       result.URL,
	}
}

// ExportLog godoc
// @Summary Export a user's log to object storage
// @Tags Exercises
// @Produce json
// @Param _id path string true "User ID"
// @Param from query string false "Earliest date, inclusive"
// @Param to query string false "Latest date, inclusive"
// @Param limit query int false "Maximum number of entries"
// @Success 201 {object} ExportResponse
// @Failure 400 {object} gin.H "Invalid filter or storage failure"
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{_id}/logs/export [post]
func (h *ExportHandler) ExportLog(c *gin.Context) {
	var req LogQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.exportService.ExportLog(c.Request.Context(), c.Param("_id"), req.toQuery())
	if err != nil {
		metrics.LogExports.WithLabelValues("error").Inc()
		respondServiceError(c, h.log, err, "Error exporting log")
		return
	}
	metrics.LogExports.WithLabelValues("ok").Inc()

	c.JSON(http.StatusCreated, mapExportResult(result))
}

// ListExports godoc
// @Summary List a user's log exports, newest first
// @Tags Exercises
// @Produce json
// @Param _id path string true "User ID"
// @Success 200 {array} ExportSummaryResponse
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{_id}/logs/exports [get]
func (h *ExportHandler) ListExports(c *gin.Context) {
	exports, err := h.exportService.ListExports(c.Request.Context(), c.Param("_id"))
	if err != nil {
		respondServiceError(c, h.log, err, "Error fetching exports")
		return
	}

	resp := make([]ExportSummaryResponse, len(exports))
	for i := range exports {
		resp[i] = MapExportToSummary(&exports[i])
	}
	c.JSON(http.StatusOK, resp)
}

// GetExport godoc
// @Summary Get a fresh download URL for an earlier export
// @Tags Exercises
// @Produce json
// @Param _id path string true "User ID"
// @Param exportId path string true "Export ID"
// @Success 200 {object} ExportResponse
// @Failure 404 {object} gin.H "User or export not found"
// @Router /users/{_id}/logs/exports/{exportId} [get]
func (h *ExportHandler) GetExport(c *gin.Context) {
	result, err := h.exportService.GetExport(c.Request.Context(), c.Param("_id"), c.Param("exportId"))
	if err != nil {
		respondServiceError(c, h.log, err, "Error fetching export")
		return
	}
	c.JSON(http.StatusOK, mapExportResult(result))
}
