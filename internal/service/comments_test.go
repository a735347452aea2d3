package service

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestService_AddComment_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	vid := primitive.NewObjectID()
	uid := primitive.NewObjectID().Hex()
	profile := &models.Profile{ID: primitive.NewObjectID()}

	var attached string
	gomock.InOrder(
		ms.EXPECT().ProfileByUser(gomock.Any(), uid).Return(profile, nil),
		ms.EXPECT().
			AttachComment(gomock.Any(), vid.Hex(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, commentID string) error {
				attached = commentID
				return nil
			}),
		ms.EXPECT().
			CreateComment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.Comment) (*models.Comment, error) {
				require.Equal(t, attached, c.ID.Hex())
				require.Equal(t, vid, c.Video)
				require.Equal(t, profile.ID, c.Profile)
				require.Equal(t, "Nice send!", c.Text)

				return &c, nil
			}),
	)

	got, err := s.AddComment(context.Background(), vid.Hex(), uid, "  Nice send!  ")
	require.NoError(t, err)
	require.Equal(t, attached, got.ID.Hex())
}

func TestService_AddComment_Errors(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	vid := primitive.NewObjectID().Hex()
	uid := primitive.NewObjectID().Hex()

	t.Run("empty_text", func(t *testing.T) {
		_, err := s.AddComment(context.Background(), vid, uid, "   ")
		requireValidation(t, err, "comment text is required")
	})

	t.Run("too_long", func(t *testing.T) {
		_, err := s.AddComment(context.Background(), vid, uid, strings.Repeat("я", maxCommentRunes+1))
		requireValidation(t, err, "at most")
	})

	t.Run("no_user", func(t *testing.T) {
		_, err := s.AddComment(context.Background(), vid, "", "hi")
		requireValidation(t, err, "userId is required")
	})

	t.Run("no_profile", func(t *testing.T) {
		ms.EXPECT().ProfileByUser(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

		_, err := s.AddComment(context.Background(), vid, uid, "hi")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("video_missing", func(t *testing.T) {
		ms.EXPECT().ProfileByUser(gomock.Any(), uid).Return(&models.Profile{}, nil)
		ms.EXPECT().AttachComment(gomock.Any(), vid, gomock.Any()).Return(storage.ErrNotFound)

		_, err := s.AddComment(context.Background(), vid, uid, "hi")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed_video_id", func(t *testing.T) {
		ms.EXPECT().ProfileByUser(gomock.Any(), uid).Return(&models.Profile{}, nil)

		_, err := s.AddComment(context.Background(), "bad", uid, "hi")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("insert_failed_detaches", func(t *testing.T) {
		ms.EXPECT().ProfileByUser(gomock.Any(), uid).Return(&models.Profile{}, nil)
		ms.EXPECT().AttachComment(gomock.Any(), vid, gomock.Any()).Return(nil)
		ms.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(nil, errDB)
		ms.EXPECT().DetachComment(gomock.Any(), vid, gomock.Any()).Return(nil)

		_, err := s.AddComment(context.Background(), vid, uid, "hi")
		require.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_ListComments(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	vid := primitive.NewObjectID().Hex()

	ms.EXPECT().VideoByID(gomock.Any(), vid).Return(nil, storage.ErrNotFound)
	_, err := s.ListComments(context.Background(), vid)
	require.ErrorIs(t, err, ErrNotFound)

	want := []models.CommentDetails{{Comment: models.Comment{Text: "first"}}}
	ms.EXPECT().VideoByID(gomock.Any(), vid).Return(&models.VideoDetails{}, nil)
	ms.EXPECT().ListCommentsByVideo(gomock.Any(), vid).Return(want, nil)

	got, err := s.ListComments(context.Background(), vid)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_ToggleCommentLike(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	cid := primitive.NewObjectID().Hex()
	uid := primitive.NewObjectID().Hex()

	ms.EXPECT().ToggleCommentLike(gomock.Any(), cid, uid).Return(&models.LikeResult{Liked: false, LikesCount: 0}, nil)
	got, err := s.ToggleCommentLike(context.Background(), cid, uid)
	require.NoError(t, err)
	require.False(t, got.Liked)

	ms.EXPECT().ToggleCommentLike(gomock.Any(), cid, uid).Return(nil, storage.ErrInvalidArgument)
	_, err = s.ToggleCommentLike(context.Background(), cid, uid)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
