package wire

import (
	"ExerciseTracker/internal/api"
	"ExerciseTracker/internal/api/config"
	"ExerciseTracker/internal/api/handler"
	"ExerciseTracker/internal/job"
	"ExerciseTracker/internal/pkg/cron"
	"ExerciseTracker/internal/pkg/kafka"
	"ExerciseTracker/internal/pkg/mongo"
	redisCache "ExerciseTracker/internal/pkg/redis"
	"ExerciseTracker/internal/service"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router     *gin.Engine
	DB         *mongoDriver.Database
	RecordRepo mongo.UserRecordRepo
	Publisher  kafka.ExercisePublisher
	CronMgr    *cron.Manager
}

// BuildApplication rdb 为 nil 时不启用用户列表缓存
func BuildApplication(db *mongoDriver.Database, rdb *redis.Client, cfg *config.Config) (*ApplicationContainer, error) {
	loc, err := time.LoadLocation(cfg.Server.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.Server.TimeZone, err)
	}

	recordRepo := mongo.NewUserRecordRepo(db, cfg.Mongo.Collection)
	userCache := redisCache.NewUserListCache(rdb, time.Duration(cfg.Redis.UsersTTL)*time.Second)

	publisher, err := kafka.NewExercisePublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	trackerService := service.NewExerciseTrackerService(recordRepo, userCache, publisher, service.Options{
		LegacyToDefault: cfg.Logs.LegacyToDefault,
		Location:        loc,
	})

	handlers := &api.HandlersGroup{
		ExerciseTrackerHandler: handler.NewExerciseTrackerHandler(trackerService),
	}

	router := api.SetupRouter(handlers, cfg)

	countAuditJob := job.NewCountAuditJob(recordRepo, time.Duration(cfg.Audit.Timeout)*time.Second)
	cronMgr := cron.NewCronManager(cfg.Audit.Schedule, countAuditJob)

	return &ApplicationContainer{
		Router:     router,
		DB:         db,
		RecordRepo: recordRepo,
		Publisher:  publisher,
		CronMgr:    cronMgr,
	}, nil
}
