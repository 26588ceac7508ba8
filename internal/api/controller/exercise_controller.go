package controller

import (
	"ctchen222/exercise-tracker/internal/api/models"
	"ctchen222/exercise-tracker/internal/api/response"
	"ctchen222/exercise-tracker/internal/api/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseController handles exercise logging and log retrieval.
type ExerciseController struct {
	exerciseService service.ExerciseService
	// strictStatus answers unknown users with 404 instead of 200.
	strictStatus bool
}

// NewExerciseController creates a new ExerciseController.
func NewExerciseController(exerciseService service.ExerciseService, strictStatus bool) *ExerciseController {
	return &ExerciseController{
		exerciseService: exerciseService,
		strictStatus:    strictStatus,
	}
}

// Add handles POST /api/users/:id/exercises.
func (ec *ExerciseController) Add(c *gin.Context) {
	var req models.ExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	exercise, err := ec.exerciseService.AddExercise(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err, ec.strictStatus)
		return
	}

	response.SuccessResponse(c, exercise)
}

// Logs handles GET /api/users/:id/logs.
func (ec *ExerciseController) Logs(c *gin.Context) {
	var query models.LogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	log, err := ec.exerciseService.GetLog(c.Request.Context(), c.Param("id"), &query)
	if err != nil {
		writeError(c, err, ec.strictStatus)
		return
	}

	response.SuccessResponse(c, log)
}

// DeleteAll handles GET /api/exercises/delete.
func (ec *ExerciseController) DeleteAll(c *gin.Context) {
	result, err := ec.exerciseService.DeleteAllExercises(c.Request.Context())
	if err != nil {
		writeError(c, err, ec.strictStatus)
		return
	}

	response.SuccessResponse(c, result)
}
