package mongo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/climbhub/internal/config"
	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"github.com/stretchr/testify/require"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Интеграционные тесты MongoDB-хранилища.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/mongo -v -race -count=1
//
// Без GO_TEST_INTEGRATION выполняются только unit-тесты пакета.

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на весь пакет тестов.
// Каждый тест создаёт свою БД с уникальным именем (см. newTestConfig).
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	_ = os.Setenv("DATABASE_URL", fmt.Sprintf("mongodb://%s:%s", host, port.Port()))

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

// newTestConfig создаёт конфиг с отдельной тестовой БД.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	baseURL := strings.TrimRight(os.Getenv("DATABASE_URL"), "/")
	if baseURL == "" {
		baseURL = "mongodb://localhost:27017"
	}

	return &config.Config{
		DB: config.DBConfig{URL: baseURL + "/climbhub_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")},
	}
}

// mustNewMongo подключается к тестовой БД и регистрирует её удаление.
func mustNewMongo(t *testing.T) *Mongo {
	t.Helper()
	cfg := newTestConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	require.NoError(t, err, "cannot connect to MongoDB (DATABASE_URL=%s)", cfg.DB.URL)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)
	return ctx
}

// seed — пользователь, профиль и скалодром для сценариев с роликами.
type seed struct {
	user    *models.User
	profile *models.Profile
	gym     *models.Gym
}

func mustSeed(t *testing.T, m *Mongo, name string) seed {
	t.Helper()
	ctx := testCtx(t)

	u, err := m.CreateUser(ctx, models.User{
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		PasswordHash: []byte("hash"),
		Role:         models.RoleClimber,
	})
	require.NoError(t, err)

	g, err := m.CreateGym(ctx, models.Gym{Name: name + " Boulders", Location: "Berlin"})
	require.NoError(t, err)

	p, err := m.CreateProfile(ctx, models.Profile{
		User:       u.ID,
		SkillLevel: models.SkillBeginner,
		Gyms:       []primitive.ObjectID{g.ID},
	})
	require.NoError(t, err)

	return seed{user: u, profile: p, gym: g}
}

func mustVideo(t *testing.T, m *Mongo, s seed, level string) *models.Video {
	t.Helper()
	v, err := m.CreateVideo(testCtx(t), models.Video{
		Description:     "problem " + level,
		GradingSystem:   models.GradingV,
		DifficultyLevel: level,
		Gym:             s.gym.ID,
		Profile:         s.profile.ID,
		VideoURL:        "https://cdn.local/videos/" + level,
		ObjectKey:       level,
	})
	require.NoError(t, err)
	return v
}

// TestDatabaseFromURI — имя БД из пути URI или значение по умолчанию.
func TestDatabaseFromURI(t *testing.T) {
	t.Parallel()

	require.Equal(t, "climbs", databaseFromURI("mongodb://localhost:27017/climbs"))
	require.Equal(t, "climbs", databaseFromURI("mongodb://u:p@h:1/climbs?replicaSet=rs0"))
	require.Equal(t, defaultDBName, databaseFromURI("mongodb://localhost:27017"))
	require.Equal(t, defaultDBName, databaseFromURI("://bad"))
}

func TestObjectID(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	got, ok := objectID(" " + oid.Hex() + " ")
	require.True(t, ok)
	require.Equal(t, oid, got)

	_, ok = objectID("not-an-id")
	require.False(t, ok)
}

func TestUsers_CreateDuplicateAndLookup(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	u, err := m.CreateUser(ctx, models.User{Name: "Alexandra", Email: "alex@example.com", PasswordHash: []byte("h"), Role: models.RoleClimber})
	require.NoError(t, err)
	require.False(t, u.ID.IsZero())
	require.False(t, u.CreatedAt.IsZero())

	_, err = m.CreateUser(ctx, models.User{Name: "Other", Email: "alex@example.com", Role: models.RoleClimber})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	byEmail, err := m.UserByEmail(ctx, "  ALEX@example.com ")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, []byte("h"), byEmail.PasswordHash)

	updated, err := m.SetUserImage(ctx, u.ID.Hex(), "https://cdn.local/img.png")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.local/img.png", updated.Image)

	_, err = m.UserByID(ctx, "bad-id")
	require.ErrorIs(t, err, storage.ErrNotFound)
	_, err = m.UserByID(ctx, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, storage.ErrNotFound)
	_, err = m.SetUserImage(ctx, primitive.NewObjectID().Hex(), "x")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGyms_CRUDAndInUse(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	b, err := m.CreateGym(ctx, models.Gym{Name: "Bouldergarten", Location: "Berlin"})
	require.NoError(t, err)
	a, err := m.CreateGym(ctx, models.Gym{Name: "Arco Wall", Location: "Arco"})
	require.NoError(t, err)

	list, err := m.ListGyms(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, a.ID, list[0].ID, "сортировка по имени")

	name := "Bouldergarten Nord"
	upd, err := m.UpdateGym(ctx, b.ID.Hex(), models.GymUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, upd.Name)
	require.Equal(t, "Berlin", upd.Location)

	inUse, err := m.GymInUse(ctx, b.ID.Hex())
	require.NoError(t, err)
	require.False(t, inUse)

	_, err = m.CreateProfile(ctx, models.Profile{User: primitive.NewObjectID(), Gyms: []primitive.ObjectID{b.ID}})
	require.NoError(t, err)

	inUse, err = m.GymInUse(ctx, b.ID.Hex())
	require.NoError(t, err)
	require.True(t, inUse)

	require.NoError(t, m.DeleteGym(ctx, a.ID.Hex()))
	require.ErrorIs(t, m.DeleteGym(ctx, a.ID.Hex()), storage.ErrNotFound)
	_, err = m.GymByID(ctx, a.ID.Hex())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProfiles_UniquePerUserDetailsAndUpdate(t *testing.T) {
	m := mustNewMongo(t)
	s := mustSeed(t, m, "Alexandra")
	ctx := testCtx(t)

	_, err := m.CreateProfile(ctx, models.Profile{User: s.user.ID})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	v := mustVideo(t, m, s, "V2")
	saved := []primitive.ObjectID{v.ID}
	skill := models.SkillAdvanced
	upd, err := m.UpdateProfileByUser(ctx, s.user.ID.Hex(), models.ProfileUpdate{SkillLevel: &skill, SavedVideos: &saved})
	require.NoError(t, err)
	require.Equal(t, models.SkillAdvanced, upd.SkillLevel)
	require.Equal(t, saved, upd.SavedVideos)
	require.Equal(t, []primitive.ObjectID{s.gym.ID}, upd.Gyms)

	details, err := m.ProfileDetailsByUser(ctx, s.user.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, details.UserInfo)
	require.Equal(t, "Alexandra", details.UserInfo.Name)
	require.Empty(t, details.UserInfo.PasswordHash)
	require.Len(t, details.GymsInfo, 1)
	require.Equal(t, s.gym.Name, details.GymsInfo[0].Name)
	require.Len(t, details.SavedVideosInfo, 1)
	require.Equal(t, v.ID, details.SavedVideosInfo[0].ID)

	require.NoError(t, m.DeleteProfileByUser(ctx, s.user.ID.Hex()))
	_, err = m.ProfileByUser(ctx, s.user.ID.Hex())
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, m.DeleteProfileByUser(ctx, s.user.ID.Hex()), storage.ErrNotFound)
}

// "alex" находит "Alexandra" по имени; "INTER" находит профиль по уровню; спецсимволы экранируются.
func TestProfiles_Search(t *testing.T) {
	m := mustNewMongo(t)
	alex := mustSeed(t, m, "Alexandra")
	bob := mustSeed(t, m, "Bob")
	ctx := testCtx(t)

	skill := models.SkillIntermediate
	_, err := m.UpdateProfileByUser(ctx, bob.user.ID.Hex(), models.ProfileUpdate{SkillLevel: &skill})
	require.NoError(t, err)

	res, err := m.SearchProfiles(ctx, "alex")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, alex.profile.ID, res[0].ID)
	require.Empty(t, res[0].UserInfo.PasswordHash)

	res, err = m.SearchProfiles(ctx, "INTER")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, bob.profile.ID, res[0].ID)

	res, err = m.SearchProfiles(ctx, ".*")
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestVideos_ListSortedAndPopulated(t *testing.T) {
	m := mustNewMongo(t)
	s := mustSeed(t, m, "Alexandra")
	other := mustSeed(t, m, "Bob")
	ctx := testCtx(t)

	v1 := mustVideo(t, m, s, "V1")
	time.Sleep(5 * time.Millisecond)
	v2 := mustVideo(t, m, other, "V2")
	time.Sleep(5 * time.Millisecond)
	v3 := mustVideo(t, m, s, "V3")

	all, err := m.ListVideos(ctx, storage.VideoFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []primitive.ObjectID{v3.ID, v2.ID, v1.ID}, []primitive.ObjectID{all[0].ID, all[1].ID, all[2].ID})

	require.NotNil(t, all[0].GymInfo)
	require.Equal(t, s.gym.Name, all[0].GymInfo.Name)
	require.NotNil(t, all[0].Uploader)
	require.Equal(t, s.profile.ID, all[0].Uploader.ID)
	require.NotNil(t, all[0].Uploader.User)
	require.Equal(t, "Alexandra", all[0].Uploader.User.Name)
	require.Empty(t, all[0].Uploader.User.PasswordHash)

	byProfile, err := m.ListVideos(ctx, storage.VideoFilter{ProfileID: s.profile.ID.Hex()})
	require.NoError(t, err)
	require.Len(t, byProfile, 2)

	byGym, err := m.ListVideos(ctx, storage.VideoFilter{GymID: other.gym.ID.Hex()})
	require.NoError(t, err)
	require.Len(t, byGym, 1)
	require.Equal(t, v2.ID, byGym[0].ID)

	_, err = m.ListVideos(ctx, storage.VideoFilter{GymID: "bad"})
	require.ErrorIs(t, err, storage.ErrNotFound)

	one, err := m.VideoByID(ctx, v1.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "V1", one.DifficultyLevel)
	require.Equal(t, "V1", one.ObjectKey)
}

// Двойное переключение лайка возвращает исходные likes и likes_count.
func TestVideos_ToggleLikeTwiceRestores(t *testing.T) {
	m := mustNewMongo(t)
	s := mustSeed(t, m, "Alexandra")
	v := mustVideo(t, m, s, "V4")
	ctx := testCtx(t)

	u1, u2 := primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()

	res, err := m.ToggleVideoLike(ctx, v.ID.Hex(), u1)
	require.NoError(t, err)
	require.Equal(t, models.LikeResult{Liked: true, LikesCount: 1}, *res)

	before, err := m.VideoByID(ctx, v.ID.Hex())
	require.NoError(t, err)

	res, err = m.ToggleVideoLike(ctx, v.ID.Hex(), u2)
	require.NoError(t, err)
	require.Equal(t, models.LikeResult{Liked: true, LikesCount: 2}, *res)

	res, err = m.ToggleVideoLike(ctx, v.ID.Hex(), u2)
	require.NoError(t, err)
	require.Equal(t, models.LikeResult{Liked: false, LikesCount: 1}, *res)

	after, err := m.VideoByID(ctx, v.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, before.Likes, after.Likes)
	require.Equal(t, before.LikesCount, after.LikesCount)
	require.Equal(t, len(after.Likes), after.LikesCount)

	_, err = m.ToggleVideoLike(ctx, primitive.NewObjectID().Hex(), u1)
	require.ErrorIs(t, err, storage.ErrNotFound)
	_, err = m.ToggleVideoLike(ctx, v.ID.Hex(), "not-a-user")
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestVideos_UpdateAndDeleteCascadesComments(t *testing.T) {
	m := mustNewMongo(t)
	s := mustSeed(t, m, "Alexandra")
	v := mustVideo(t, m, s, "V5")
	keep := mustVideo(t, m, s, "V6")
	ctx := testCtx(t)

	desc := "flash attempt"
	upd, err := m.UpdateVideo(ctx, v.ID.Hex(), models.VideoUpdate{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, desc, upd.Description)
	require.Equal(t, "V5", upd.DifficultyLevel)

	for i := 0; i < 3; i++ {
		cid := primitive.NewObjectID()
		require.NoError(t, m.AttachComment(ctx, v.ID.Hex(), cid.Hex()))
		_, err := m.CreateComment(ctx, models.Comment{ID: cid, Video: v.ID, Profile: s.profile.ID, Text: fmt.Sprintf("nice %d", i)})
		require.NoError(t, err)
	}
	_, err = m.CreateComment(ctx, models.Comment{Video: keep.ID, Profile: s.profile.ID, Text: "keep me"})
	require.NoError(t, err)

	deleted, err := m.DeleteVideo(ctx, v.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "V5", deleted.ObjectKey)
	require.Len(t, deleted.Comments, 3)

	n, err := m.DeleteCommentsByVideo(ctx, v.ID.Hex())
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	left, err := m.ListCommentsByVideo(ctx, v.ID.Hex())
	require.NoError(t, err)
	require.Empty(t, left)

	kept, err := m.ListCommentsByVideo(ctx, keep.ID.Hex())
	require.NoError(t, err)
	require.Len(t, kept, 1)

	_, err = m.DeleteVideo(ctx, v.ID.Hex())
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, m.AttachComment(ctx, v.ID.Hex(), primitive.NewObjectID().Hex()), storage.ErrNotFound)
}

func TestComments_ListPopulatedOldestFirstAndLike(t *testing.T) {
	m := mustNewMongo(t)
	s := mustSeed(t, m, "Alexandra")
	v := mustVideo(t, m, s, "V7")
	ctx := testCtx(t)

	first, err := m.CreateComment(ctx, models.Comment{Video: v.ID, Profile: s.profile.ID, Text: "first"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := m.CreateComment(ctx, models.Comment{Video: v.ID, Profile: s.profile.ID, Text: "second"})
	require.NoError(t, err)

	list, err := m.ListCommentsByVideo(ctx, v.ID.Hex())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)
	require.NotNil(t, list[0].Author)
	require.Equal(t, "Alexandra", list[0].Author.User.Name)

	res, err := m.ToggleCommentLike(ctx, first.ID.Hex(), s.user.ID.Hex())
	require.NoError(t, err)
	require.True(t, res.Liked)
	require.Equal(t, 1, res.LikesCount)
}
