package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateVideo вставляет ролик с пустыми likes/comments.
func (m *Mongo) CreateVideo(ctx context.Context, video models.Video) (*models.Video, error) {
	const op = "storage/mongo/CreateVideo"

	now := toMS(time.Now())
	video.ID = primitive.NilObjectID
	video.Likes = []primitive.ObjectID{}
	video.LikesCount = 0
	video.Comments = []primitive.ObjectID{}
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := m.videos.InsertOne(ctx, video)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	video.ID = oid

	return &video, nil
}

// VideoByID возвращает ролик с автором и скалодромом.
func (m *Mongo) VideoByID(ctx context.Context, id string) (*models.VideoDetails, error) {
	const op = "storage/mongo/VideoByID"

	oid, ok := objectID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	out, err := m.aggregateVideos(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &out[0], nil
}

// ListVideos возвращает ролики по фильтру; created_at DESC, _id DESC.
// Некорректный id в фильтре — storage.ErrNotFound.
func (m *Mongo) ListVideos(ctx context.Context, filter storage.VideoFilter) ([]models.VideoDetails, error) {
	const op = "storage/mongo/ListVideos"

	match := bson.D{}

	if strings.TrimSpace(filter.ProfileID) != "" {
		oid, ok := objectID(filter.ProfileID)
		if !ok {
			return nil, fmt.Errorf("%s: profile: %w", op, storage.ErrNotFound)
		}
		match = append(match, bson.E{Key: "profile", Value: oid})
	}

	if strings.TrimSpace(filter.GymID) != "" {
		oid, ok := objectID(filter.GymID)
		if !ok {
			return nil, fmt.Errorf("%s: gym: %w", op, storage.ErrNotFound)
		}
		match = append(match, bson.E{Key: "gym", Value: oid})
	}

	out, err := m.aggregateVideos(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// UpdateVideo применяет непустые поля update и возвращает новое состояние.
func (m *Mongo) UpdateVideo(ctx context.Context, id string, update models.VideoUpdate) (*models.Video, error) {
	const op = "storage/mongo/UpdateVideo"

	oid, ok := objectID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	set := bson.D{{Key: "updated_at", Value: toMS(time.Now())}}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.GradingSystem != nil {
		set = append(set, bson.E{Key: "grading_system", Value: *update.GradingSystem})
	}
	if update.DifficultyLevel != nil {
		set = append(set, bson.E{Key: "difficulty_level", Value: *update.DifficultyLevel})
	}
	if update.Gym != nil {
		set = append(set, bson.E{Key: "gym", Value: *update.Gym})
	}

	var out models.Video
	err := m.videos.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&out)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// DeleteVideo удаляет ролик и возвращает удалённый документ.
// Комментарии удаляются отдельным вызовом DeleteCommentsByVideo.
func (m *Mongo) DeleteVideo(ctx context.Context, id string) (*models.Video, error) {
	const op = "storage/mongo/DeleteVideo"

	oid, ok := objectID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var out models.Video
	if err := m.videos.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// ToggleVideoLike переключает лайк пользователя одним атомарным обновлением документа.
func (m *Mongo) ToggleVideoLike(ctx context.Context, id, userID string) (*models.LikeResult, error) {
	return toggleLike(ctx, m.videos, "storage/mongo/ToggleVideoLike", id, userID)
}

// AttachComment добавляет ссылку на комментарий в ролик.
func (m *Mongo) AttachComment(ctx context.Context, videoID, commentID string) error {
	return m.updateCommentRefs(ctx, "storage/mongo/AttachComment", "$push", videoID, commentID)
}

// DetachComment убирает ссылку на комментарий из ролика.
func (m *Mongo) DetachComment(ctx context.Context, videoID, commentID string) error {
	return m.updateCommentRefs(ctx, "storage/mongo/DetachComment", "$pull", videoID, commentID)
}

func (m *Mongo) updateCommentRefs(ctx context.Context, op, operator, videoID, commentID string) error {
	vid, ok := objectID(videoID)
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	cid, ok := objectID(commentID)
	if !ok {
		return fmt.Errorf("%s: comment id: %w", op, storage.ErrInvalidArgument)
	}

	res, err := m.videos.UpdateByID(ctx, vid, bson.D{
		{Key: operator, Value: bson.D{{Key: "comments", Value: cid}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: toMS(time.Now())}}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (m *Mongo) aggregateVideos(ctx context.Context, match bson.D) ([]models.VideoDetails, error) {
	cur, err := m.videos.Aggregate(ctx, videoDetailsPipeline(match))
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	return decodeAll[models.VideoDetails](ctx, cur)
}
