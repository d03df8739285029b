package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/metrics"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
	log         *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// --- Request/Response Structs ---

// CreateUserRequest accepts JSON or form bodies.
type CreateUserRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
}

type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

func MapUserToResponse(u *domain.User) UserResponse {
	return UserResponse{Username: u.Username, ID: u.ID.Hex()}
}

// --- Handler Methods ---

// CreateUser godoc
// @Summary Register a user
// @Tags Users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param user body CreateUserRequest true "Username"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Missing username or storage failure"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		respondServiceError(c, h.log, err, "Error creating User")
		return
	}
	metrics.UsersCreated.Inc()

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListUsers godoc
// @Summary List every user
// @Tags Users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 400 {object} gin.H "Storage failure"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err, "Error fetching users")
		return
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	c.JSON(http.StatusOK, responses)
}
