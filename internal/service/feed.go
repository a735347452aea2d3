package service

import (
	"context"

	"github.com/pribylovaa/climbhub/internal/feed"
	"github.com/pribylovaa/climbhub/internal/storage"
	"github.com/pribylovaa/climbhub/pkg/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feed собирает персональную ленту пользователя.
//
// Каталог читается одним запросом, затем разбивается в памяти:
// каждый ролик попадает ровно в одну из частей.
func (s *Service) Feed(ctx context.Context, userID string) (*feed.Feed, error) {
	const op = "service/feed/Feed"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if !primitive.IsValidObjectID(userID) {
		lg.Warn("invalid argument: user_id")

		return nil, invalid(op, "userId must be a valid id")
	}

	profile, err := s.storage.ProfileByUser(ctx, userID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "ProfileByUser", "profile not found", err)
	}

	catalog, err := s.storage.ListVideos(ctx, storage.VideoFilter{})
	if err != nil {
		return nil, mapStorageErr(lg, op, "ListVideos", "videos not found", err)
	}

	out := feed.Assemble(catalog, feed.CriteriaFor(*profile))

	lg.Debug("feed assembled",
		"skill_level", profile.SkillLevel,
		"preferred", len(out.Preferred),
		"other", len(out.Other),
	)

	return &out, nil
}
