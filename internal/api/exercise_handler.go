package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/metrics"
	"alcyxob/exercise-tracker/internal/service"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	log             *zap.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, log *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, log: log}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest accepts JSON or form bodies. Duration may be a JSON
// number or a numeric string; coercion to minutes happens in the service.
type CreateExerciseRequest struct {
	Description string      `json:"description" form:"description" binding:"required"`
	Duration    json.Number `json:"duration" form:"duration" binding:"required"`
	Date        string      `json:"date" form:"date" binding:"omitempty,calendardate"`
}

// ExerciseResponse echoes the stored exercise together with its owner.
// ID is the user's id, not the exercise's.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogQueryRequest holds the optional query string filters of the log endpoint.
type LogQueryRequest struct {
	From  string `form:"from" binding:"omitempty,calendardate"`
	To    string `form:"to" binding:"omitempty,calendardate"`
	Limit string `form:"limit" binding:"omitempty,numeric"`
}

func (q LogQueryRequest) toQuery() service.LogQuery {
	return service.LogQuery{From: q.From, To: q.To, Limit: q.Limit}
}

type LogResponse struct {
	Username string            `json:"username"`
	Count    int               `json:"count"`
	ID       string            `json:"_id"`
	Log      []domain.LogEntry `json:"log"`
}

// MapLogToResponse converts a domain.ExerciseLog to LogResponse DTO.
func MapLogToResponse(l *domain.ExerciseLog) LogResponse {
	entries := make([]domain.LogEntry, len(l.Entries))
	for i := range l.Entries {
		entries[i] = l.Entries[i].ToLogEntry()
	}
	return LogResponse{
		Username: l.User.Username,
		Count:    len(entries),
		ID:       l.User.ID.Hex(),
		Log:      entries,
	}
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Log an exercise for a user
// @Tags Exercises
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param _id path string true "User ID"
// @Param exercise body CreateExerciseRequest true "Exercise details"
// @Success 200 {object} ExerciseResponse
// @Failure 400 {object} gin.H "Invalid input or storage failure"
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{_id}/exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, exercise, err := h.exerciseService.AddExercise(c.Request.Context(), c.Param("_id"), service.NewExercise{
		Description: req.Description,
		Duration:    req.Duration.String(),
		Date:        req.Date,
	})
	if err != nil {
		respondServiceError(c, h.log, err, "Error adding exercise")
		return
	}
	metrics.ExercisesLogged.Inc()

	c.JSON(http.StatusOK, ExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        domain.FormatDate(exercise.Date),
		ID:          user.ID.Hex(),
	})
}

// GetLog godoc
// @Summary Get a user's exercise log
// @Tags Exercises
// @Produce json
// @Param _id path string true "User ID"
// @Param from query string false "Earliest date, inclusive"
// @Param to query string false "Latest date, inclusive"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} LogResponse
// @Failure 400 {object} gin.H "Invalid filter or storage failure"
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{_id}/logs [get]
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	var req LogQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exerciseLog, err := h.exerciseService.GetLog(c.Request.Context(), c.Param("_id"), req.toQuery())
	if err != nil {
		respondServiceError(c, h.log, err, "Error fetching logs")
		return
	}

	c.JSON(http.StatusOK, MapLogToResponse(exerciseLog))
}
