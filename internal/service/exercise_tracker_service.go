package service

import (
	"ExerciseTracker/internal/api/dto"
	"ExerciseTracker/internal/pkg/kafka"
	"ExerciseTracker/internal/pkg/mongo"
	"ExerciseTracker/internal/pkg/redis"
	"ExerciseTracker/internal/pkg/util"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
)

type ExerciseTrackerService interface {
	CreateOrGetUser(ctx context.Context, username string) (*dto.UserDTO, error)
	AddExercise(ctx context.Context, userID string, req *dto.AddExerciseDTO) (*dto.ExerciseDTO, error)
	ListUsers(ctx context.Context) ([]*dto.UserDTO, error)
	GetLogs(ctx context.Context, userID string, query *dto.LogQueryDTO) (*dto.UserLogDTO, error)
}

// Options 服务行为开关
type Options struct {
	LegacyToDefault bool
	Location        *time.Location
	Now             func() time.Time
}

type exerciseTrackerServiceImpl struct {
	recordRepo mongo.UserRecordRepo
	userCache  redis.UserListCache
	publisher  kafka.ExercisePublisher
	opts       Options
}

func NewExerciseTrackerService(
	recordRepo mongo.UserRecordRepo,
	userCache redis.UserListCache,
	publisher kafka.ExercisePublisher,
	opts Options,
) ExerciseTrackerService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = func() time.Time {
			// Mongo 只保存到毫秒
			return time.Now().Truncate(time.Millisecond)
		}
	}
	return &exerciseTrackerServiceImpl{
		recordRepo: recordRepo,
		userCache:  userCache,
		publisher:  publisher,
		opts:       opts,
	}
}

// CreateOrGetUser 用户名已存在时原样返回，否则新建
func (s *exerciseTrackerServiceImpl) CreateOrGetUser(ctx context.Context, username string) (*dto.UserDTO, error) {
	record, err := s.recordRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return toUserDTO(record), nil
	}

	record = mongo.NewUserRecord(username)
	if err = s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err = s.userCache.InvalidateUserList(ctx); err != nil {
		log.WarnContext(ctx, "failed to invalidate user list cache", "err", err)
	}

	log.InfoContext(ctx, "user created", "user_id", record.ID.Hex(), "username", record.Username)
	return toUserDTO(record), nil
}

// AddExercise 先确认用户存在，再原子地追加记录并累加 count
func (s *exerciseTrackerServiceImpl) AddExercise(ctx context.Context, userID string, req *dto.AddExerciseDTO) (*dto.ExerciseDTO, error) {
	record, err := s.recordRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongoDB.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	date, ok := util.ParseEntryDate(req.Date.String(), s.opts.Now(), s.opts.Location)
	if !ok {
		return nil, fmt.Errorf("%w: log.date %q is not a valid date", mongo.ErrRequiredField, req.Date.String())
	}

	entry := &mongo.ExerciseEntry{
		Description: req.Description.String(),
		Duration:    util.ParseDuration(req.Duration.String()),
		Date:        date,
	}

	updated, err := s.recordRepo.AppendExercise(ctx, record.ID, entry)
	if err != nil {
		if errors.Is(err, mongoDB.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	res := &dto.ExerciseDTO{
		Username:    updated.Username,
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        util.FormatDateString(entry.Date, s.opts.Location),
		ID:          updated.ID.Hex(),
	}

	// 事件发布失败不影响本次写入
	evt := &dto.ExerciseLoggedEvent{
		UserID:   res.ID,
		Count:    updated.Count,
		LoggedAt: s.opts.Now().Unix(),
	}
	if err = copier.Copy(evt, res); err != nil {
		log.WarnContext(ctx, "failed to build exercise event", "user_id", res.ID, "err", err)
		return res, nil
	}
	if err = s.publisher.PublishExerciseLogged(ctx, evt); err != nil {
		log.WarnContext(ctx, "failed to publish exercise event", "user_id", res.ID, "err", err)
	}

	return res, nil
}

// ListUsers 优先读缓存，缓存异常时回源。
// 回源结果写回读缓存时的代际，期间有新用户创建则该快照不会再被读到。
func (s *exerciseTrackerServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	cached, generation, hit, cacheErr := s.userCache.GetUserList(ctx)
	if cacheErr != nil {
		log.WarnContext(ctx, "failed to read user list cache", "err", cacheErr)
	}
	if hit {
		return cached, nil
	}

	records, err := s.recordRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*dto.UserDTO, 0, len(records))
	for _, record := range records {
		users = append(users, toUserDTO(record))
	}

	if cacheErr == nil {
		if err = s.userCache.SetUserList(ctx, generation, users); err != nil {
			log.WarnContext(ctx, "failed to write user list cache", "err", err)
		}
	}

	return users, nil
}

// GetLogs count 始终是累计总数，与过滤后的条数无关
func (s *exerciseTrackerServiceImpl) GetLogs(ctx context.Context, userID string, query *dto.LogQueryDTO) (*dto.UserLogDTO, error) {
	record, err := s.recordRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongoDB.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	filter := &LogFilter{
		From:            query.From,
		To:              query.To,
		Limit:           query.Limit,
		LegacyToDefault: s.opts.LegacyToDefault,
		Location:        s.opts.Location,
	}
	entries := filter.Apply(record.Log)

	res := &dto.UserLogDTO{
		Username: record.Username,
		Count:    record.Count,
		ID:       record.ID.Hex(),
		Log:      make([]*dto.LogEntryDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		res.Log = append(res.Log, &dto.LogEntryDTO{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        util.FormatDateString(entry.Date, s.opts.Location),
		})
	}

	return res, nil
}

func toUserDTO(record *mongo.UserRecord) *dto.UserDTO {
	return &dto.UserDTO{
		Username: record.Username,
		ID:       record.ID.Hex(),
	}
}
