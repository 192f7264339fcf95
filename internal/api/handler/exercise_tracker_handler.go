package handler

import (
	"ExerciseTracker/internal/api/dto"
	"ExerciseTracker/internal/pkg/response"
	"ExerciseTracker/internal/service"

	"github.com/gin-gonic/gin"
)

type ExerciseTrackerHandler struct {
	trackerSvc service.ExerciseTrackerService
}

func NewExerciseTrackerHandler(trackerSvc service.ExerciseTrackerService) *ExerciseTrackerHandler {
	return &ExerciseTrackerHandler{
		trackerSvc: trackerSvc,
	}
}

// CreateUser POST /api/users
func (s *ExerciseTrackerHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, service.ErrParamInvalid, service.ErrInternalServer)
		return
	}

	user, err := s.trackerSvc.CreateOrGetUser(c.Request.Context(), req.Username.String())
	if err != nil {
		response.Error(c, err, service.ErrInternalServer)
		return
	}
	response.Success(c, user)
}

// AddExercise POST /api/users/:_id/exercises
func (s *ExerciseTrackerHandler) AddExercise(c *gin.Context) {
	var req dto.AddExerciseDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, service.ErrParamInvalid, service.ErrInternalServer)
		return
	}

	exercise, err := s.trackerSvc.AddExercise(c.Request.Context(), c.Param("_id"), &req)
	if err != nil {
		response.Error(c, err, service.ErrInternalServer)
		return
	}
	response.Success(c, exercise)
}

// ListUsers GET /api/users
func (s *ExerciseTrackerHandler) ListUsers(c *gin.Context) {
	users, err := s.trackerSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err, service.ErrInternalService)
		return
	}
	response.Success(c, users)
}

// GetLogs GET /api/users/:_id/logs?from=&to=&limit=
func (s *ExerciseTrackerHandler) GetLogs(c *gin.Context) {
	var query dto.LogQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid, service.ErrInternalService)
		return
	}

	logs, err := s.trackerSvc.GetLogs(c.Request.Context(), c.Param("_id"), &query)
	if err != nil {
		response.Error(c, err, service.ErrInternalService)
		return
	}
	response.Success(c, logs)
}
