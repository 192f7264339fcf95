package api

import (
	"ExerciseTracker/internal/api/config"
	"ExerciseTracker/internal/api/middleware"
	"ExerciseTracker/internal/pkg/logger"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, cfg.Logstash)

	// 落地页与静态资源，public 下的文件同时挂在根路径与 /public 下
	r.StaticFile("/", filepath.Join(cfg.Server.ViewsPath, "index.html"))
	r.Static("/public", cfg.Server.PublicPath)
	r.NoRoute(publicFallback(cfg.Server.PublicPath))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("", group.ExerciseTrackerHandler.CreateUser)
			userGroup.GET("", group.ExerciseTrackerHandler.ListUsers)
			userGroup.POST("/:_id/exercises", group.ExerciseTrackerHandler.AddExercise)
			userGroup.GET("/:_id/logs", group.ExerciseTrackerHandler.GetLogs)
		}
	}

	return r
}
