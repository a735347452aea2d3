package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateGym вставляет скалодром.
func (m *Mongo) CreateGym(ctx context.Context, gym models.Gym) (*models.Gym, error) {
	const op = "storage/mongo/CreateGym"

	now := toMS(time.Now())
	gym.ID = primitive.NilObjectID
	gym.CreatedAt = now
	gym.UpdatedAt = now

	res, err := m.gyms.InsertOne(ctx, gym)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	gym.ID = oid

	return &gym, nil
}

// GymByID возвращает скалодром по id.
func (m *Mongo) GymByID(ctx context.Context, id string) (*models.Gym, error) {
	const op = "storage/mongo/GymByID"

	oid, ok := objectID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var out models.Gym
	if err := m.gyms.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// ListGyms возвращает все скалодромы по имени (ASC).
func (m *Mongo) ListGyms(ctx context.Context) ([]models.Gym, error) {
	const op = "storage/mongo/ListGyms"

	cur, err := m.gyms.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	out, err := decodeAll[models.Gym](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// UpdateGym применяет непустые поля update и возвращает новое состояние.
func (m *Mongo) UpdateGym(ctx context.Context, id string, update models.GymUpdate) (*models.Gym, error) {
	const op = "storage/mongo/UpdateGym"

	oid, ok := objectID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	set := bson.D{{Key: "updated_at", Value: toMS(time.Now())}}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Location != nil {
		set = append(set, bson.E{Key: "location", Value: *update.Location})
	}

	var out models.Gym
	err := m.gyms.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&out)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// DeleteGym удаляет скалодром.
func (m *Mongo) DeleteGym(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteGym"

	oid, ok := objectID(id)
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.gyms.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// GymInUse проверяет ссылки на скалодром из роликов и профилей.
func (m *Mongo) GymInUse(ctx context.Context, id string) (bool, error) {
	const op = "storage/mongo/GymInUse"

	oid, ok := objectID(id)
	if !ok {
		return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	one := options.Count().SetLimit(1)

	n, err := m.videos.CountDocuments(ctx, bson.D{{Key: "gym", Value: oid}}, one)
	if err != nil {
		return false, fmt.Errorf("%s: videos: %w", op, err)
	}
	if n > 0 {
		return true, nil
	}

	n, err = m.profiles.CountDocuments(ctx, bson.D{{Key: "gyms", Value: oid}}, one)
	if err != nil {
		return false, fmt.Errorf("%s: profiles: %w", op, err)
	}

	return n > 0, nil
}
