package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/pkg/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxCommentRunes — максимальная длина текста комментария.
const maxCommentRunes = 2000

// AddComment добавляет комментарий к ролику от имени профиля пользователя.
//
// Порядок: проверка текста и userId -> профиль по пользователю -> ссылка в ролике
// (нет ролика — ErrNotFound) -> вставка комментария. Если вставка не удалась,
// ссылка из ролика убирается.
func (s *Service) AddComment(ctx context.Context, videoID, userID, text string) (*models.Comment, error) {
	const op = "service/comments/AddComment"

	lg := log.From(ctx).With("op", op, "video_id", videoID, "user_id", userID)

	text = strings.TrimSpace(text)
	if text == "" {
		lg.Warn("invalid argument: empty text")

		return nil, invalid(op, "comment text is required")
	}

	if utf8.RuneCountInString(text) > maxCommentRunes {
		lg.Warn("invalid argument: text too long")

		return nil, invalid(op, "text must be at most %d characters", maxCommentRunes)
	}

	if strings.TrimSpace(userID) == "" {
		lg.Warn("invalid argument: empty user_id")

		return nil, invalid(op, "userId is required")
	}

	profile, err := s.storage.ProfileByUser(ctx, userID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "ProfileByUser", "profile not found", err)
	}

	videoOID, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		lg.Warn("video not found: malformed id")

		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	commentID := primitive.NewObjectID()

	if err := s.storage.AttachComment(ctx, videoID, commentID.Hex()); err != nil {
		return nil, mapStorageErr(lg, op, "AttachComment", "video not found", err)
	}

	comment, err := s.storage.CreateComment(ctx, models.Comment{
		ID:      commentID,
		Video:   videoOID,
		Profile: profile.ID,
		Text:    text,
	})
	if err != nil {
		lg.Error("storage error on CreateComment", "err", err)

		if derr := s.storage.DetachComment(ctx, videoID, commentID.Hex()); derr != nil {
			lg.Error("storage error on DetachComment", "err", derr)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("comment_added", "comment_id", comment.ID.Hex())

	return comment, nil
}

// ListComments возвращает комментарии существующего ролика, старые первыми.
func (s *Service) ListComments(ctx context.Context, videoID string) ([]models.CommentDetails, error) {
	const op = "service/comments/ListComments"

	lg := log.From(ctx).With("op", op, "video_id", videoID)

	if _, err := s.storage.VideoByID(ctx, videoID); err != nil {
		return nil, mapStorageErr(lg, op, "VideoByID", "video not found", err)
	}

	comments, err := s.storage.ListCommentsByVideo(ctx, videoID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "ListCommentsByVideo", "video not found", err)
	}

	return comments, nil
}

// ToggleCommentLike добавляет или снимает лайк пользователя с комментария.
func (s *Service) ToggleCommentLike(ctx context.Context, commentID, userID string) (*models.LikeResult, error) {
	const op = "service/comments/ToggleCommentLike"

	lg := log.From(ctx).With("op", op, "comment_id", commentID, "user_id", userID)

	if err := checkLiker(op, userID); err != nil {
		lg.Warn("invalid argument: user_id")

		return nil, err
	}

	res, err := s.storage.ToggleCommentLike(ctx, commentID, userID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "ToggleCommentLike", "comment not found", err)
	}

	return res, nil
}
