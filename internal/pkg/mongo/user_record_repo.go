package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRecordRepo interface {
	EnsureIndexes(ctx context.Context) error
	FindByUsername(ctx context.Context, username string) (*UserRecord, error)
	FindByID(ctx context.Context, id string) (*UserRecord, error)
	Create(ctx context.Context, record *UserRecord) error
	AppendExercise(ctx context.Context, id primitive.ObjectID, entry *ExerciseEntry) (*UserRecord, error)
	ListUsers(ctx context.Context) ([]*UserRecord, error)
	FindCountDrift(ctx context.Context) ([]*CountDrift, error)
}

type userRecordRepoImpl struct {
	col *mongo.Collection
}

func NewUserRecordRepo(db *mongo.Database, collection string) UserRecordRepo {
	return &userRecordRepoImpl{
		col: db.Collection(collection),
	}
}

// EnsureIndexes username 上建普通索引，唯一性由先查后建保证
func (s *userRecordRepoImpl) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("username_1"),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

// FindByUsername 精确匹配，不存在时返回 nil, nil
func (s *userRecordRepoImpl) FindByUsername(ctx context.Context, username string) (*UserRecord, error) {
	var record UserRecord
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// FindByID 不存在时返回 mongo.ErrNoDocuments，ID 非法时返回 ErrInvalidID
func (s *userRecordRepoImpl) FindByID(ctx context.Context, id string) (*UserRecord, error) {
	oid, err := ParseUserID(id)
	if err != nil {
		return nil, err
	}

	var record UserRecord
	if err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *userRecordRepoImpl) Create(ctx context.Context, record *UserRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.Log == nil {
		record.Log = []ExerciseEntry{}
	}
	_, err := s.col.InsertOne(ctx, record)
	return err
}

// AppendExercise 追加记录并累加 count，单文档原子更新，返回更新后的文档
func (s *userRecordRepoImpl) AppendExercise(ctx context.Context, id primitive.ObjectID, entry *ExerciseEntry) (*UserRecord, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	update := bson.M{
		"$push": bson.M{"log": entry},
		"$inc":  bson.M{"count": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record UserRecord
	if err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListUsers 只投影 username 与 _id，顺序由存储决定
func (s *userRecordRepoImpl) ListUsers(ctx context.Context) ([]*UserRecord, error) {
	opts := options.Find().SetProjection(bson.M{"username": 1, "_id": 1})

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	records := make([]*UserRecord, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindCountDrift 找出 count 与 log 长度不一致的文档（只可能来自库外修改）
func (s *userRecordRepoImpl) FindCountDrift(ctx context.Context) ([]*CountDrift, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "count", Value: 1},
			{Key: "log_size", Value: bson.D{{Key: "$size", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$log", bson.A{}}},
			}}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
			{Key: "$ne", Value: bson.A{"$count", "$log_size"}},
		}}}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	drifts := make([]*CountDrift, 0)
	if err = cursor.All(ctx, &drifts); err != nil {
		return nil, err
	}
	return drifts, nil
}
