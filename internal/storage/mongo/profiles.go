package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateProfile вставляет профиль. Второй профиль пользователя — storage.ErrAlreadyExists.
func (m *Mongo) CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	const op = "storage/mongo/CreateProfile"

	now := toMS(time.Now())
	profile.ID = primitive.NilObjectID
	profile.PreferredStyles = nonNil(profile.PreferredStyles)
	profile.Gyms = nonNil(profile.Gyms)
	profile.SavedVideos = nonNil(profile.SavedVideos)
	profile.UploadedVideos = nonNil(profile.UploadedVideos)
	profile.CreatedAt = now
	profile.UpdatedAt = now

	res, err := m.profiles.InsertOne(ctx, profile)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	profile.ID = oid

	return &profile, nil
}

// ProfileByID возвращает профиль по его id.
func (m *Mongo) ProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	const op = "storage/mongo/ProfileByID"

	oid, ok := objectID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return m.findProfile(ctx, op, bson.D{{Key: "_id", Value: oid}})
}

// ProfileByUser возвращает профиль пользователя.
func (m *Mongo) ProfileByUser(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "storage/mongo/ProfileByUser"

	oid, ok := objectID(userID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return m.findProfile(ctx, op, bson.D{{Key: "user", Value: oid}})
}

// ProfileDetailsByUser возвращает профиль пользователя с подтянутыми связями.
func (m *Mongo) ProfileDetailsByUser(ctx context.Context, userID string) (*models.ProfileDetails, error) {
	const op = "storage/mongo/ProfileDetailsByUser"

	oid, ok := objectID(userID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	pipeline := mongodriver.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user", Value: oid}}}},
		{{Key: "$limit", Value: 1}},
		lookup(usersCollection, "user", "user_info"),
		unwindOptional("user_info"),
		hidePassword("user_info"),
		lookup(gymsCollection, "gyms", "gyms_info"),
		lookup(videosCollection, "saved_videos", "saved_videos_info"),
	}

	cur, err := m.profiles.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}

	out, err := decodeAll[models.ProfileDetails](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &out[0], nil
}

// UpdateProfileByUser применяет непустые поля update к профилю пользователя.
func (m *Mongo) UpdateProfileByUser(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error) {
	const op = "storage/mongo/UpdateProfileByUser"

	oid, ok := objectID(userID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	set := bson.D{{Key: "updated_at", Value: toMS(time.Now())}}
	if update.SkillLevel != nil {
		set = append(set, bson.E{Key: "skill_level", Value: *update.SkillLevel})
	}
	if update.PreferredStyles != nil {
		set = append(set, bson.E{Key: "preferred_styles", Value: nonNil(*update.PreferredStyles)})
	}
	if update.Gyms != nil {
		set = append(set, bson.E{Key: "gyms", Value: nonNil(*update.Gyms)})
	}
	if update.SavedVideos != nil {
		set = append(set, bson.E{Key: "saved_videos", Value: nonNil(*update.SavedVideos)})
	}
	if update.UploadedVideos != nil {
		set = append(set, bson.E{Key: "uploaded_videos", Value: nonNil(*update.UploadedVideos)})
	}

	var out models.Profile
	err := m.profiles.FindOneAndUpdate(ctx, bson.D{{Key: "user", Value: oid}}, bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&out)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// DeleteProfileByUser удаляет профиль пользователя. Ролики и комментарии профиля не трогаются.
func (m *Mongo) DeleteProfileByUser(ctx context.Context, userID string) error {
	const op = "storage/mongo/DeleteProfileByUser"

	oid, ok := objectID(userID)
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.profiles.DeleteOne(ctx, bson.D{{Key: "user", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SearchProfiles ищет подстроку (без учёта регистра) в имени пользователя или skill_level.
// Результат отсортирован по имени пользователя.
func (m *Mongo) SearchProfiles(ctx context.Context, query string) ([]models.ProfileDetails, error) {
	const op = "storage/mongo/SearchProfiles"

	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	pipeline := mongodriver.Pipeline{
		lookup(usersCollection, "user", "user_info"),
		unwindOptional("user_info"),
		{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "user_info.name", Value: re}},
			bson.D{{Key: "skill_level", Value: re}},
		}}}}},
		hidePassword("user_info"),
		{{Key: "$sort", Value: bson.D{{Key: "user_info.name", Value: 1}, {Key: "_id", Value: 1}}}},
	}

	cur, err := m.profiles.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}

	out, err := decodeAll[models.ProfileDetails](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (m *Mongo) findProfile(ctx context.Context, op string, filter bson.D) (*models.Profile, error) {
	var out models.Profile
	if err := m.profiles.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}
