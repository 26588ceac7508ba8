package controller

import (
	"ctchen222/exercise-tracker/internal/api/models"
	"ctchen222/exercise-tracker/internal/api/response"
	"ctchen222/exercise-tracker/internal/api/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Create handles POST /api/users with a form or JSON body.
func (uc *UserController) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := uc.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, false)
		return
	}

	response.SuccessResponse(c, user)
}

// List handles GET /api/users.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err, false)
		return
	}

	response.SuccessResponse(c, users)
}

// DeleteAll handles GET /api/users/delete.
func (uc *UserController) DeleteAll(c *gin.Context) {
	result, err := uc.userService.DeleteAllUsers(c.Request.Context())
	if err != nil {
		writeError(c, err, false)
		return
	}

	response.SuccessResponse(c, result)
}
