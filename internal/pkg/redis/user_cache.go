package redis

import (
	"ExerciseTracker/internal/api/dto"
	"ExerciseTracker/internal/pkg/consts"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// UserListCache 缓存 GET /api/users 的结果。
// 列表按代际存放，失效只递增代际号，旧快照写回旧代际的 key 后不会再被读到。
type UserListCache interface {
	// GetUserList 返回缓存的列表、读取时的代际号以及是否命中
	GetUserList(ctx context.Context) ([]*dto.UserDTO, int64, bool, error)
	// SetUserList 写入 generation 对应的 key，generation 须来自回源前的 GetUserList
	SetUserList(ctx context.Context, generation int64, users []*dto.UserDTO) error
	InvalidateUserList(ctx context.Context) error
}

type userListCacheImpl struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewUserListCache rdb 为 nil 时返回不缓存的实现
func NewUserListCache(rdb *redis.Client, ttl time.Duration) UserListCache {
	if rdb == nil {
		return disabledUserListCache{}
	}
	return &userListCacheImpl{rdb: rdb, ttl: ttl}
}

func userListKey(generation int64) string {
	return consts.UserListKey + ":" + strconv.FormatInt(generation, 10)
}

func (s *userListCacheImpl) generation(ctx context.Context) (int64, error) {
	gen, err := s.rdb.Get(ctx, consts.UserListGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (s *userListCacheImpl) GetUserList(ctx context.Context) ([]*dto.UserDTO, int64, bool, error) {
	gen, err := s.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	value, err := s.rdb.Get(ctx, userListKey(gen)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, false, nil
		}
		return nil, gen, false, err
	}

	users := make([]*dto.UserDTO, 0)
	if err = json.Unmarshal(value, &users); err != nil {
		// 脏数据直接丢弃
		_ = s.rdb.Del(ctx, userListKey(gen)).Err()
		return nil, gen, false, nil
	}
	return users, gen, true, nil
}

func (s *userListCacheImpl) SetUserList(ctx context.Context, generation int64, users []*dto.UserDTO) error {
	value, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, userListKey(generation), value, s.ttl).Err()
}

// InvalidateUserList 递增代际号，旧 key 由 TTL 回收
func (s *userListCacheImpl) InvalidateUserList(ctx context.Context) error {
	return s.rdb.Incr(ctx, consts.UserListGenKey).Err()
}

type disabledUserListCache struct{}

func (disabledUserListCache) GetUserList(context.Context) ([]*dto.UserDTO, int64, bool, error) {
	return nil, 0, false, nil
}

func (disabledUserListCache) SetUserList(context.Context, int64, []*dto.UserDTO) error { return nil }

func (disabledUserListCache) InvalidateUserList(context.Context) error { return nil }
