package mongo

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrRequiredField 必填字段缺失或取值非法，写入前校验
	ErrRequiredField = errors.New("exercise tracker validation failed")
	// ErrInvalidID 用户 ID 不是合法的 ObjectID，查询前即失败
	ErrInvalidID = errors.New("invalid user id")
)

// UserRecord 用户文档，内嵌全部运动记录
type UserRecord struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Username string             `bson:"username" json:"username"`
	Count    int                `bson:"count" json:"count"` // 累计追加次数，不由 len(Log) 推算
	Log      []ExerciseEntry    `bson:"log" json:"log"`
}

// ExerciseEntry 单条运动记录，没有独立 ID
type ExerciseEntry struct {
	Description string    `bson:"description" json:"description"`
	Duration    *int      `bson:"duration" json:"duration"` // nil 表示非数字输入
	Date        time.Time `bson:"date" json:"date"`
}

// CountDrift count 与 log 长度不一致的用户
type CountDrift struct {
	ID       primitive.ObjectID `bson:"_id"`
	Username string             `bson:"username"`
	Count    int                `bson:"count"`
	LogSize  int                `bson:"log_size"`
}

// NewUserRecord 新用户 count 为 0、log 为空
func NewUserRecord(username string) *UserRecord {
	return &UserRecord{
		ID:       primitive.NewObjectID(),
		Username: username,
		Count:    0,
		Log:      []ExerciseEntry{},
	}
}

// Validate 校验必填字段
func (r *UserRecord) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("%w: username is required", ErrRequiredField)
	}
	for i := range r.Log {
		if err := r.Log[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExerciseEntry) Validate() error {
	if e.Description == "" {
		return fmt.Errorf("%w: log.description is required", ErrRequiredField)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: log.date is required", ErrRequiredField)
	}
	return nil
}

// ParseUserID 解析十六进制 ObjectID
func ParseUserID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
