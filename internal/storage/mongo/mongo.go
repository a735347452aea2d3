// mongo реализует storage.Storage поверх MongoDB.
//
// mongo.go — подключение, коллекции и индексы;
// users.go, gyms.go, profiles.go, videos.go, comments.go — операции над коллекциями;
// pipelines.go — общие стадии агрегаций (подтягивание связей, переключение лайка).
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/climbhub/internal/config"
	"github.com/pribylovaa/climbhub/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection    = "users"
	gymsCollection     = "gyms"
	profilesCollection = "profiles"
	videosCollection   = "videos"
	commentsCollection = "comments"
	defaultDBName      = "climbhub"
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	client   *mongodriver.Client
	db       *mongodriver.Database
	users    *mongodriver.Collection
	gyms     *mongodriver.Collection
	profiles *mongodriver.Collection
	videos   *mongodriver.Collection
	comments *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции и индексы.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.DB.URL))

	m := &Mongo{
		client:   cli,
		db:       db,
		users:    db.Collection(usersCollection),
		gyms:     db.Collection(gymsCollection),
		profiles: db.Collection(profilesCollection),
		videos:   db.Collection(videosCollection),
		comments: db.Collection(commentsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

// Close закрывает соединение с MongoDB.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping проверяет доступность primary (для readiness).
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// ensureIndexes создаёт индексы:
//   - users: уникальный email;
//   - profiles: уникальный user, поиск по gyms;
//   - videos: лента (created_at DESC, _id DESC), выборки по автору и скалодрому;
//   - comments: комментарии ролика (video + created_at ASC);
//   - gyms: сортировка по имени.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	indexes := map[*mongodriver.Collection][]mongodriver.IndexModel{
		m.users: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("email_unique").SetUnique(true),
			},
		},
		m.profiles: {
			{
				Keys:    bson.D{{Key: "user", Value: 1}},
				Options: options.Index().SetName("user_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "gyms", Value: 1}},
				Options: options.Index().SetName("gyms"),
			},
		},
		m.videos: {
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("created_desc"),
			},
			{
				Keys:    bson.D{{Key: "profile", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("profile_created_desc"),
			},
			{
				Keys:    bson.D{{Key: "gym", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("gym_created_desc"),
			},
		},
		m.comments: {
			{
				Keys:    bson.D{{Key: "video", Value: 1}, {Key: "created_at", Value: 1}},
				Options: options.Index().SetName("video_created_asc"),
			},
		},
		m.gyms: {
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetName("name"),
			},
		},
	}

	for coll, models := range indexes {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo ensure indexes on %s: %w", coll.Name(), err)
		}
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддается расшифровке, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}

	return defaultDBName
}

// toMS приводит время к точности MongoDB DateTime (миллисекунды, UTC).
func toMS(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// objectID разбирает hex-идентификатор; ok=false для некорректного формата.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, false
	}

	return oid, true
}

// nonNil подменяет nil-срез пустым, чтобы в документе хранился [] а не null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

// decodeAll вычитывает курсор целиком и закрывает его.
func decodeAll[T any](ctx context.Context, cur *mongodriver.Cursor) ([]T, error) {
	defer cur.Close(ctx)

	out := make([]T, 0)
	for cur.Next(ctx) {
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, item)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return out, nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Mongo)(nil)
