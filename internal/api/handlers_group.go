package api

import "ExerciseTracker/internal/api/handler"

// HandlersGroup 路由用到的 Handler 实例
type HandlersGroup struct {
	ExerciseTrackerHandler *handler.ExerciseTrackerHandler
}
