package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// CreateComment вставляет комментарий. Заранее выделенный ID сохраняется,
// пустой генерируется драйвером.
func (m *Mongo) CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/CreateComment"

	now := toMS(time.Now())
	comment.Likes = []primitive.ObjectID{}
	comment.LikesCount = 0
	comment.CreatedAt = now
	comment.UpdatedAt = now

	res, err := m.comments.InsertOne(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	comment.ID = oid

	return &comment, nil
}

// ListCommentsByVideo возвращает комментарии ролика с авторами: created_at ASC, _id ASC.
func (m *Mongo) ListCommentsByVideo(ctx context.Context, videoID string) ([]models.CommentDetails, error) {
	const op = "storage/mongo/ListCommentsByVideo"

	oid, ok := objectID(videoID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	pipeline := mongodriver.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: oid}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}}},
	}
	pipeline = append(pipeline, authorStages("profile", "author")...)

	cur, err := m.comments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}

	out, err := decodeAll[models.CommentDetails](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// DeleteCommentsByVideo удаляет все комментарии ролика.
func (m *Mongo) DeleteCommentsByVideo(ctx context.Context, videoID string) (int64, error) {
	const op = "storage/mongo/DeleteCommentsByVideo"

	oid, ok := objectID(videoID)
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.comments.DeleteMany(ctx, bson.D{{Key: "video", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.DeletedCount, nil
}

// ToggleCommentLike переключает лайк комментария.
func (m *Mongo) ToggleCommentLike(ctx context.Context, id, userID string) (*models.LikeResult, error) {
	return toggleLike(ctx, m.comments, "storage/mongo/ToggleCommentLike", id, userID)
}
